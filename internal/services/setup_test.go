package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shortlyhq/shortly-backend/internal/models"
	"github.com/shortlyhq/shortly-backend/internal/repository"
)

// newTestDB opens a per-test in-memory SQLite database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.ShortLink{}))

	return db
}

func newURLRepo(t *testing.T) *repository.URLRepository {
	return repository.NewURLRepository(newTestDB(t))
}

// fakeCache is an in-memory LinkCache used so service tests need no Redis.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string]*models.ShortLink
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]*models.ShortLink)}
}

func (f *fakeCache) Get(_ context.Context, code string) (*models.ShortLink, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	link, ok := f.entries[code]
	return link, ok
}

func (f *fakeCache) Set(_ context.Context, code string, link *models.ShortLink) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *link
	f.entries[code] = &copied
}

func (f *fakeCache) Invalidate(_ context.Context, code string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, code)
}

func (f *fakeCache) has(code string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.entries[code]
	return ok
}

func strPtr(s string) *string {
	return &s
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
