package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shortlyhq/shortly-backend/internal/models"
	"github.com/shortlyhq/shortly-backend/internal/repository"
	"github.com/shortlyhq/shortly-backend/pkg/apperrors"
)

// MyURLsService is the ownership-scoped management surface. Every mutation
// re-fetches the record before acting; a read cached earlier in the request
// is never trusted for an ownership decision.
type MyURLsService struct {
	urls  *repository.URLRepository
	cache LinkCache
	log   zerolog.Logger
}

func NewMyURLsService(urls *repository.URLRepository, cache LinkCache, log zerolog.Logger) *MyURLsService {
	return &MyURLsService{
		urls:  urls,
		cache: cache,
		log:   log.With().Str("component", "myurls_service").Logger(),
	}
}

// List returns the user's active links, newest first.
func (s *MyURLsService) List(ctx context.Context, userID string) ([]models.ShortLink, error) {
	return s.urls.FindByUserID(ctx, userID)
}

// Get fetches one link with the three-step check: missing or soft-deleted
// reads as NotFound before ownership is even considered, so strangers cannot
// probe which ids exist.
func (s *MyURLsService) Get(ctx context.Context, id, userID string) (*models.ShortLink, error) {
	link, err := s.urls.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if link == nil || link.IsDeleted() {
		return nil, apperrors.NotFound("URL not found")
	}
	if !link.BelongsTo(userID) {
		return nil, apperrors.Forbidden("This URL does not belong to you")
	}
	return link, nil
}

// Update changes the destination URL. Cache entries for both the short code
// and the alias are invalidated: the code did not change, but the cached
// redirect target did.
func (s *MyURLsService) Update(ctx context.Context, id, userID, originalURL string) (*models.ShortLink, error) {
	link, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	updated, err := s.urls.UpdateOriginalURL(ctx, id, originalURL)
	if err != nil {
		return nil, err
	}

	s.invalidateLink(ctx, link)

	s.log.Info().
		Str("url_id", id).
		Str("user_id", userID).
		Msg("URL updated")

	return updated, nil
}

// Remove soft-deletes the link. A second delete on the same id is an error,
// not a no-op. Ownership is checked before the already-deleted state, so a
// stranger hitting a deleted link still gets Forbidden rather than a hint
// that it once existed for them.
func (s *MyURLsService) Remove(ctx context.Context, id, userID string) error {
	link, err := s.urls.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if link == nil {
		return apperrors.NotFound("URL not found")
	}
	if !link.BelongsTo(userID) {
		return apperrors.Forbidden("This URL does not belong to you")
	}
	if link.IsDeleted() {
		return apperrors.BadRequest("URL has already been deleted")
	}

	if err := s.urls.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.invalidateLink(ctx, link)

	s.log.Info().
		Str("url_id", id).
		Str("user_id", userID).
		Str("short_code", link.ShortCode).
		Msg("URL deleted")

	return nil
}

// invalidateLink drops both cache entries a link may be reachable through.
func (s *MyURLsService) invalidateLink(ctx context.Context, link *models.ShortLink) {
	s.cache.Invalidate(ctx, link.ShortCode)
	if link.CustomAlias != nil && *link.CustomAlias != "" {
		s.cache.Invalidate(ctx, *link.CustomAlias)
	}
}
