package ui

import "github.com/billow-app/billow/internal/models"

// StatusFilter narrows the visible rows by derived status.
type StatusFilter string

const (
	FilterAll     StatusFilter = "ALL"
	FilterPaid    StatusFilter = "PAID"
	FilterPending StatusFilter = "PENDING"
	FilterOverdue StatusFilter = "OVERDUE"
)

// SortField is the client-side ordering applied to the fetched page.
type SortField string

const (
	SortByDate    SortField = "date"
	SortByAmount  SortField = "amount"
	SortByDueDate SortField = "dueDate"
)

// ViewState holds the list view's selection, filter, and sort choices.
// Transitions are plain synchronous mutations; no transition validates
// its input against the loaded rows.
type ViewState struct {
	selected      map[string]struct{}
	Filter        StatusFilter
	SortBy        SortField
	SortAscending bool
}

func NewViewState() *ViewState {
	return &ViewState{
		selected: make(map[string]struct{}),
		Filter:   FilterAll,
		SortBy:   SortByDate,
	}
}

func (s *ViewState) ToggleSelect(id string) {
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
	} else {
		s.selected[id] = struct{}{}
	}
}

// SelectAll replaces the selection with exactly the given ids.
func (s *ViewState) SelectAll(ids []string) {
	s.selected = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.selected[id] = struct{}{}
	}
}

func (s *ViewState) ClearSelection() {
	s.selected = make(map[string]struct{})
}

func (s *ViewState) IsSelected(id string) bool {
	_, ok := s.selected[id]
	return ok
}

func (s *ViewState) SelectedCount() int {
	return len(s.selected)
}

func (s *ViewState) SetFilter(f StatusFilter) {
	s.Filter = f
}

// CycleFilter advances ALL -> PAID -> PENDING -> OVERDUE -> ALL.
func (s *ViewState) CycleFilter() {
	switch s.Filter {
	case FilterAll:
		s.Filter = FilterPaid
	case FilterPaid:
		s.Filter = FilterPending
	case FilterPending:
		s.Filter = FilterOverdue
	default:
		s.Filter = FilterAll
	}
}

func (s *ViewState) SetSortBy(f SortField) {
	s.SortBy = f
}

// CycleSortBy advances date -> amount -> dueDate -> date.
func (s *ViewState) CycleSortBy() {
	switch s.SortBy {
	case SortByDate:
		s.SortBy = SortByAmount
	case SortByAmount:
		s.SortBy = SortByDueDate
	default:
		s.SortBy = SortByDate
	}
}

func (s *ViewState) ToggleSortDirection() {
	s.SortAscending = !s.SortAscending
}

// Matches reports whether a row with the given status passes the filter.
func (s *ViewState) Matches(status models.Status) bool {
	switch s.Filter {
	case FilterPaid:
		return status == models.StatusPaid
	case FilterPending:
		return status == models.StatusPending
	case FilterOverdue:
		return status == models.StatusOverdue
	default:
		return true
	}
}
