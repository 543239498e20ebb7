package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shortlyhq/shortly-backend/internal/models"
	"github.com/shortlyhq/shortly-backend/pkg/apperrors"
)

func TestResolvePopulatesCacheOnMiss(t *testing.T) {
	repo := newURLRepo(t)
	c := newFakeCache()
	svc := NewRedirectService(repo, c, testLogger())

	created, err := repo.CreateAnonymous(context.Background(), "https://b.com", "abc123")
	require.NoError(t, err)

	link, err := svc.Resolve(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://b.com", link.OriginalURL)
	assert.True(t, c.has("abc123"))

	// Fire-and-forget increment settles shortly after the response path.
	assert.Eventually(t, func() bool {
		fresh, err := repo.FindByID(context.Background(), created.ID)
		return err == nil && fresh != nil && fresh.AccessCount == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestResolveIdempotentWithoutMutation(t *testing.T) {
	repo := newURLRepo(t)
	svc := NewRedirectService(repo, newFakeCache(), testLogger())

	_, err := repo.CreateAnonymous(context.Background(), "https://same.com", "same01")
	require.NoError(t, err)

	first, err := svc.Resolve(context.Background(), "same01")
	require.NoError(t, err)
	second, err := svc.Resolve(context.Background(), "same01")
	require.NoError(t, err)

	assert.Equal(t, first.OriginalURL, second.OriginalURL)
}

// A cache hit serves the cached record even when the store has moved on;
// staleness is bounded by the TTL or an explicit invalidation.
func TestResolveServesCachedRecordOnHit(t *testing.T) {
	repo := newURLRepo(t)
	c := newFakeCache()
	svc := NewRedirectService(repo, c, testLogger())

	created, err := repo.CreateAnonymous(context.Background(), "https://old.com", "stale1")
	require.NoError(t, err)

	_, err = svc.Resolve(context.Background(), "stale1")
	require.NoError(t, err)

	_, err = repo.UpdateOriginalURL(context.Background(), created.ID, "https://new.com")
	require.NoError(t, err)

	link, err := svc.Resolve(context.Background(), "stale1")
	require.NoError(t, err)
	assert.Equal(t, "https://old.com", link.OriginalURL)

	// After invalidation the store is authoritative again.
	svc.Invalidate(context.Background(), "stale1")
	link, err = svc.Resolve(context.Background(), "stale1")
	require.NoError(t, err)
	assert.Equal(t, "https://new.com", link.OriginalURL)
}

func TestResolveUnknownCodeNotFound(t *testing.T) {
	svc := NewRedirectService(newURLRepo(t), newFakeCache(), testLogger())

	_, err := svc.Resolve(context.Background(), "nosuch")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestResolveSoftDeletedCodeNotFound(t *testing.T) {
	repo := newURLRepo(t)
	svc := NewRedirectService(repo, newFakeCache(), testLogger())

	created, err := repo.CreateAnonymous(context.Background(), "https://gone.com", "gone01")
	require.NoError(t, err)
	require.NoError(t, repo.SoftDelete(context.Background(), created.ID))

	_, err = svc.Resolve(context.Background(), "gone01")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestResolveByCustomAlias(t *testing.T) {
	repo := newURLRepo(t)
	svc := NewRedirectService(repo, newFakeCache(), testLogger())

	_, err := repo.Create(context.Background(), "https://aliased.com", "xyz789", strPtr("my-alias"), "u1")
	require.NoError(t, err)

	link, err := svc.Resolve(context.Background(), "my-alias")
	require.NoError(t, err)
	assert.Equal(t, "https://aliased.com", link.OriginalURL)

	link, err = svc.Resolve(context.Background(), "xyz789")
	require.NoError(t, err)
	assert.Equal(t, "https://aliased.com", link.OriginalURL)
}

func TestAccessCountMonotonic(t *testing.T) {
	repo := newURLRepo(t)
	svc := NewRedirectService(repo, newFakeCache(), testLogger())

	created, err := repo.CreateAnonymous(context.Background(), "https://counted.com", "count1")
	require.NoError(t, err)

	const n = 5
	for i := 0; i < n; i++ {
		_, err := svc.Resolve(context.Background(), "count1")
		require.NoError(t, err)
	}

	assert.Eventually(t, func() bool {
		fresh, err := repo.FindByID(context.Background(), created.ID)
		return err == nil && fresh != nil && fresh.AccessCount == n
	}, 2*time.Second, 10*time.Millisecond)
}

func TestAccessCodePrefersAlias(t *testing.T) {
	withAlias := &models.ShortLink{ShortCode: "abc123", CustomAlias: strPtr("pretty")}
	assert.Equal(t, "pretty", withAlias.AccessCode())

	plain := &models.ShortLink{ShortCode: "abc123"}
	assert.Equal(t, "abc123", plain.AccessCode())
}
