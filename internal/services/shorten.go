package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/shortlyhq/shortly-backend/internal/models"
	"github.com/shortlyhq/shortly-backend/internal/repository"
	"github.com/shortlyhq/shortly-backend/pkg/apperrors"
	"github.com/shortlyhq/shortly-backend/pkg/shortcode"
)

// ReservedRoutes are path segments that collide with system endpoints and can
// never be claimed as a custom alias.
var ReservedRoutes = []string{"auth", "docs", "my-urls", "shorten", "healthcheck", "api", "swagger"}

// ShortenService creates short links, owned or anonymous. It owns the
// collision-retry loop around code generation; the generator itself never
// checks uniqueness.
type ShortenService struct {
	urls *repository.URLRepository
	log  zerolog.Logger
}

func NewShortenService(urls *repository.URLRepository, log zerolog.Logger) *ShortenService {
	return &ShortenService{
		urls: urls,
		log:  log.With().Str("component", "shorten_service").Logger(),
	}
}

// Create makes an owned short link, optionally under a custom alias. The
// alias pre-checks are advisory: a concurrent insert racing on the same alias
// is ultimately decided by the unique index, which surfaces as a conflict.
func (s *ShortenService) Create(ctx context.Context, userID, originalURL string, customAlias *string) (*models.ShortLink, error) {
	if customAlias != nil {
		alias := *customAlias

		if IsReservedRoute(alias) {
			s.log.Warn().Str("alias", alias).Str("user_id", userID).Msg("Attempted to use reserved route as alias")
			return nil, apperrors.BadRequest(fmt.Sprintf("The alias '%s' is a reserved route and cannot be used", alias))
		}

		exists, err := s.urls.CustomAliasExists(ctx, alias)
		if err != nil {
			return nil, err
		}
		if exists {
			s.log.Warn().Str("alias", alias).Str("user_id", userID).Msg("Attempted to use existing alias")
			return nil, apperrors.Conflict("This alias is already in use")
		}
	}

	code, err := s.generateUniqueShortCode(ctx)
	if err != nil {
		return nil, err
	}

	link, err := s.urls.Create(ctx, originalURL, code, customAlias, userID)
	if err != nil {
		// The alias pre-check above is optimistic. If a concurrent create
		// won the race, the unique index rejects this insert; surface that
		// as the same conflict the pre-check would have reported.
		if customAlias != nil {
			if dup, checkErr := s.urls.CustomAliasExists(ctx, *customAlias); checkErr == nil && dup {
				return nil, apperrors.Conflict("This alias is already in use")
			}
		}
		return nil, err
	}

	s.log.Info().
		Str("url_id", link.ID).
		Str("short_code", link.ShortCode).
		Str("user_id", userID).
		Bool("has_alias", customAlias != nil).
		Msg("URL created")

	return link, nil
}

// CreateAnonymous makes an ownerless short link. Anonymous links never carry
// a custom alias; the handler rejects that combination before reaching here.
func (s *ShortenService) CreateAnonymous(ctx context.Context, originalURL string) (*models.ShortLink, error) {
	code, err := s.generateUniqueShortCode(ctx)
	if err != nil {
		return nil, err
	}

	link, err := s.urls.CreateAnonymous(ctx, originalURL, code)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("url_id", link.ID).
		Str("short_code", link.ShortCode).
		Msg("Anonymous URL created")

	return link, nil
}

// generateUniqueShortCode retries until a free code turns up. No retry cap:
// with 62^6 combinations the loop terminates quickly in practice.
func (s *ShortenService) generateUniqueShortCode(ctx context.Context) (string, error) {
	for {
		code, err := shortcode.Generate()
		if err != nil {
			return "", err
		}
		exists, err := s.urls.ShortCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
		s.log.Debug().Str("short_code", code).Msg("Short code collision, retrying")
	}
}

// IsReservedRoute reports whether alias shadows a system endpoint.
// Comparison is case-insensitive.
func IsReservedRoute(alias string) bool {
	lowered := strings.ToLower(alias)
	for _, route := range ReservedRoutes {
		if lowered == route {
			return true
		}
	}
	return false
}
