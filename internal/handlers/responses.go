package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shortlyhq/shortly-backend/internal/models"
	"github.com/shortlyhq/shortly-backend/pkg/apperrors"
)

// URLResponse is the wire shape for a short link, embedding the fully
// qualified short URL composed from the configured base URL.
type URLResponse struct {
	ID          string    `json:"id"`
	OriginalURL string    `json:"originalUrl"`
	ShortCode   string    `json:"shortCode"`
	CustomAlias *string   `json:"customAlias"`
	UserID      *string   `json:"userId"`
	AccessCount int64     `json:"accessCount"`
	ShortURL    string    `json:"shortUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newURLResponse(link *models.ShortLink, baseURL string) URLResponse {
	return URLResponse{
		ID:          link.ID,
		OriginalURL: link.OriginalURL,
		ShortCode:   link.ShortCode,
		CustomAlias: link.CustomAlias,
		UserID:      link.UserID,
		AccessCount: link.AccessCount,
		ShortURL:    baseURL + "/" + link.AccessCode(),
		CreatedAt:   link.CreatedAt,
		UpdatedAt:   link.UpdatedAt,
	}
}

// fail hands the error to the boundary translator middleware.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func failValidation(c *gin.Context, errs []FieldError) {
	fail(c, apperrors.BadRequest(joinFieldErrors(errs)))
}
