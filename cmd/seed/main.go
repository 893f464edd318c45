package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/billow-app/billow/internal/auth"
	"github.com/billow-app/billow/internal/config"
	"github.com/billow-app/billow/internal/database"
	"github.com/billow-app/billow/internal/logger"
	"github.com/billow-app/billow/internal/models"
	usermodel "github.com/billow-app/billow/internal/models/user"
	"github.com/billow-app/billow/internal/storage"
	"github.com/google/uuid"
)

const (
	demoEmail    = "demo@billow.app"
	demoName     = "Demo User"
	demoPassword = "password123"

	invoiceCount = 100
)

var industries = []string{
	"Technology", "Healthcare", "Finance", "Education", "Retail",
	"Manufacturing", "Consulting", "Marketing", "Real Estate", "Food Service",
}

var vendors = []string{
	"Acme Corp", "Globex", "Initech", "Umbrella Corp", "Stark Industries",
	"Wayne Enterprises", "Cyberdyne Systems", "Soylent Corp", "Massive Dynamic",
	"Hooli", "Pied Piper", "Dunder Mifflin", "Los Pollos Hermanos",
	"Oceanic Airlines", "Sterling Cooper", "Bluth Company", "Vandelay Industries",
	"Prestige Worldwide", "Wernham Hogg", "Gekko & Co", "Nakatomi Trading",
	"Weyland-Yutani", "Tyrell Corp", "Oscorp", "Alias Investigations",
	"Cheers Bar", "Paper Street Soap", "Beneke Fabricators", "Krusty Krab",
	"Wonka Industries",
}

var descriptions = []string{
	"Consulting services", "Software license", "Hardware purchase",
	"Cloud services", "Marketing services", "Office supplies", "IT support",
	"Training services", "Maintenance contract", "Legal services",
	"Accounting services", "Design services", "Security services",
	"Cleaning services", "Subscription fees", "Equipment rental",
	"Travel expenses", "Professional development", "Advertising",
	"Insurance premium", "Facilities maintenance", "Shipping costs",
	"Printing services", "Telecommunications", "Utilities",
	"Research services", "Recruitment services", "Event planning",
	"Content creation", "Building lease",
}

func main() {
	log := logger.New("billow-seed")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	if err := database.Migrate(ctx, cfg.Database.PrimaryDSN); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}

	dbManager, err := database.NewDBManager(ctx, database.Config{
		PrimaryDSN:      cfg.Database.PrimaryDSN,
		ReplicaDSNs:     cfg.Database.ReplicaDSNs,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	})
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer dbManager.Close()

	users := storage.NewPostgresUserStorage(dbManager)
	invoices := storage.NewPostgresInvoiceStorage(dbManager)

	user, err := ensureDemoUser(ctx, users)
	if err != nil {
		log.Fatal("Failed to create demo user: %v", err)
	}
	log.Info("Demo user ready: %s", user.Email)

	if _, err := dbManager.Write().Exec(ctx, "DELETE FROM invoices"); err != nil {
		log.Fatal("Failed to clear invoices: %v", err)
	}

	for i := 0; i < invoiceCount; i++ {
		inv := randomInvoice(user.ID)
		if err := invoices.Create(ctx, inv); err != nil {
			log.Fatal("Failed to insert invoice %d: %v", i, err)
		}
	}

	log.Info("Seeded %d invoices for %s", invoiceCount, user.Email)
}

func ensureDemoUser(ctx context.Context, users storage.UserStorage) (*usermodel.User, error) {
	existing, err := users.GetUserByEmail(ctx, demoEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		return nil, err
	}

	return users.CreateUser(ctx, &usermodel.CreateUserRequest{
		Email: demoEmail,
		Name:  demoName,
	}, hash)
}

func randomInvoice(userID string) *models.Invoice {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	dueDate := start.Add(time.Duration(rand.Int63n(int64(end.Sub(start)))))

	// Invoices are issued one to three months before they fall due.
	created := dueDate.AddDate(0, -(rand.Intn(3) + 1), 0)

	description := fmt.Sprintf("%s (%s)",
		descriptions[rand.Intn(len(descriptions))],
		industries[rand.Intn(len(industries))],
	)

	return &models.Invoice{
		ID:          uuid.New().String(),
		UserID:      userID,
		VendorName:  vendors[rand.Intn(len(vendors))],
		Amount:      randomAmount(50, 2000),
		DueDate:     dueDate,
		Description: description,
		Paid:        rand.Float64() > 0.3,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func randomAmount(min, max float64) float64 {
	v := rand.Float64()*(max-min) + min
	return float64(int(v*100)) / 100
}
