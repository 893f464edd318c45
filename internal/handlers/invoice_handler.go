package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/billow-app/billow/internal/logger"
	"github.com/billow-app/billow/internal/middleware"
	"github.com/billow-app/billow/internal/models"
	"github.com/billow-app/billow/internal/pdf"
	"github.com/billow-app/billow/internal/service"
	"github.com/go-chi/chi/v5"
)

type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	log            *logger.Logger
}

func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		log:            logger.New("invoice-handler"),
	}
}

func (h *InvoiceHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoiceService.ListAll(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, invoices)
}

func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	sortDirection := r.URL.Query().Get("sortDirection")
	page := queryInt(r, "page", service.DefaultPage)
	limit := queryInt(r, "limit", service.DefaultLimit)

	res, err := h.invoiceService.ListForUser(r.Context(), middleware.CallerID(r.Context()), sortDirection, page, limit)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, res)
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	inv, err := h.invoiceService.Get(r.Context(), middleware.CallerID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, inv)
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inv, err := h.invoiceService.Create(r.Context(), middleware.CallerID(r.Context()), &req)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusCreated, inv)
}

func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inv, err := h.invoiceService.Update(r.Context(), middleware.CallerID(r.Context()), chi.URLParam(r, "id"), &req)
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	respondJSON(w, http.StatusOK, inv)
}

func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.invoiceService.Delete(r.Context(), middleware.CallerID(r.Context()), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *InvoiceHandler) PDF(w http.ResponseWriter, r *http.Request) {
	inv, err := h.invoiceService.Get(r.Context(), middleware.CallerID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, h.log, err)
		return
	}

	doc, err := pdf.RenderInvoice(inv)
	if err != nil {
		h.log.Error("Failed to render PDF: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to render PDF")
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", inv.ID))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.Write(doc)
}

func queryInt(r *http.Request, key string, defaultValue int) int {
	if value := r.URL.Query().Get(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
