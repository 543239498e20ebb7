package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shortlyhq/shortly-backend/internal/services"
)

// RedirectHandler serves GET /:code, the public hot path. Registered last so
// the static routes win.
type RedirectHandler struct {
	redirect *services.RedirectService
}

func NewRedirectHandler(redirect *services.RedirectService) *RedirectHandler {
	return &RedirectHandler{redirect: redirect}
}

func (h *RedirectHandler) Redirect(c *gin.Context) {
	link, err := h.redirect.Resolve(c.Request.Context(), c.Param("code"))
	if err != nil {
		fail(c, err)
		return
	}

	c.Redirect(http.StatusFound, link.OriginalURL)
}
