package services

import (
	"context"
	"encoding/base64"
	"sync"
	"testing"
	"time"

	"github.com/AdisornNangnoi/foodtracker-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// gormModel presets CreatedAt so ordering tests control the tie-break.
func gormModel(createdAt time.Time) gorm.Model {
	return gorm.Model{CreatedAt: createdAt}
}

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.FoodEntry{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// fakeStore records every upload and remove so tests can assert the
// upload-then-commit ordering and compensation behavior.
type fakeStore struct {
	mu      sync.Mutex
	uploads map[string][]string // bucket -> keys
	removes map[string][]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		uploads: make(map[string][]string),
		removes: make(map[string][]string),
	}
}

func (f *fakeStore) Upload(_ context.Context, bucket, key string, _ []byte, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads[bucket] = append(f.uploads[bucket], key)
	return nil
}

func (f *fakeStore) PublicURL(bucket, key string) string {
	return "https://cdn.test/" + bucket + "/" + key
}

func (f *fakeStore) Remove(_ context.Context, bucket string, keys []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removes[bucket] = append(f.removes[bucket], keys...)
	return nil
}

func (f *fakeStore) uploaded(bucket string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.uploads[bucket]...)
}

func (f *fakeStore) removed(bucket string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.removes[bucket]...)
}

func pngDataURL() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("fake png bytes"))
}
