package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shortlyhq/shortly-backend/internal/auth"
	"github.com/shortlyhq/shortly-backend/internal/services"
	"github.com/shortlyhq/shortly-backend/pkg/apperrors"
)

// ShortenHandler serves POST /shorten for both anonymous and authenticated
// callers.
type ShortenHandler struct {
	shorten *services.ShortenService
	baseURL string
}

func NewShortenHandler(shorten *services.ShortenService, baseURL string) *ShortenHandler {
	return &ShortenHandler{shorten: shorten, baseURL: baseURL}
}

func (h *ShortenHandler) Create(c *gin.Context) {
	var req CreateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.BadRequest("Invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		failValidation(c, errs)
		return
	}

	identity := auth.IdentityFrom(c)

	if identity.Anonymous() {
		if req.CustomAlias != nil {
			fail(c, apperrors.BadRequest("customAlias is not allowed for unauthenticated users. Sign in to use custom aliases."))
			return
		}

		link, err := h.shorten.CreateAnonymous(c.Request.Context(), req.OriginalURL)
		if err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusCreated, newURLResponse(link, h.baseURL))
		return
	}

	link, err := h.shorten.Create(c.Request.Context(), identity.UserID, req.OriginalURL, req.CustomAlias)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, newURLResponse(link, h.baseURL))
}
