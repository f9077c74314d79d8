package service

import (
	"context"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rentalops/vehicle_rental/internal/models"
	"github.com/rentalops/vehicle_rental/internal/repo"
)

var testJWTSecret = []byte("test-jwt-secret")

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A fresh :memory: database exists per connection, so keep exactly one.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.VehicleSpecification{},
		&models.Vehicle{},
		&models.Booking{},
		&models.Payment{},
		&models.SupportTicket{},
	))

	t.Cleanup(func() { _ = sqlDB.Close() })

	return &repo.GormRepo{DB: db}
}

// fakePublisher records published events instead of talking to a broker.
type fakePublisher struct {
	mu     sync.Mutex
	topics []string
	events []map[string]any
}

func (f *fakePublisher) PublishEvent(_ context.Context, topic, _ string, event any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.topics = append(f.topics, topic)
	if m, ok := event.(map[string]any); ok {
		f.events = append(f.events, m)
	} else {
		f.events = append(f.events, nil)
	}
	return nil
}

func (f *fakePublisher) last(t *testing.T) (string, map[string]any) {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.events, "expected at least one published event")
	return f.topics[len(f.topics)-1], f.events[len(f.events)-1]
}
