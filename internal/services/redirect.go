package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shortlyhq/shortly-backend/internal/models"
	"github.com/shortlyhq/shortly-backend/internal/repository"
	"github.com/shortlyhq/shortly-backend/pkg/apperrors"
)

// LinkCache is what the redirect path needs from the cache layer. The Redis
// implementation lives in internal/cache; tests substitute an in-memory one.
type LinkCache interface {
	Get(ctx context.Context, code string) (*models.ShortLink, bool)
	Set(ctx context.Context, code string, link *models.ShortLink)
	Invalidate(ctx context.Context, code string)
}

// RedirectService resolves access codes on the hot path, cache first, store
// on miss. The store is always the system of record; a cached record may be
// stale up to the cache TTL.
type RedirectService struct {
	urls  *repository.URLRepository
	cache LinkCache
	log   zerolog.Logger
}

func NewRedirectService(urls *repository.URLRepository, cache LinkCache, log zerolog.Logger) *RedirectService {
	return &RedirectService{
		urls:  urls,
		cache: cache,
		log:   log.With().Str("component", "redirect_service").Logger(),
	}
}

// Resolve returns the active link behind code, populating the cache on a
// miss. The access counter is incremented in a detached goroutine: its
// failure is logged, never surfaced, and it completes independently of the
// redirect response.
func (s *RedirectService) Resolve(ctx context.Context, code string) (*models.ShortLink, error) {
	if link, ok := s.cache.Get(ctx, code); ok {
		s.countAccess(link.ID, code)
		return link, nil
	}

	link, err := s.urls.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, apperrors.NotFound("URL not found")
	}

	s.cache.Set(ctx, code, link)
	s.countAccess(link.ID, code)

	return link, nil
}

// Invalidate drops the cache entry for code. Best-effort.
func (s *RedirectService) Invalidate(ctx context.Context, code string) {
	s.cache.Invalidate(ctx, code)
}

// countAccess fires the atomic +1 without tying it to the request lifetime.
// A fresh context keeps the increment alive after the response is sent.
func (s *RedirectService) countAccess(id, code string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.urls.IncrementAccessCount(ctx, id); err != nil {
			s.log.Error().Err(err).
				Str("url_id", id).
				Str("code", code).
				Msg("Failed to increment access count")
		}
	}()
}
