package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shortlyhq/shortly-backend/internal/auth"
	"github.com/shortlyhq/shortly-backend/internal/services"
	"github.com/shortlyhq/shortly-backend/pkg/apperrors"
)

// MyURLsHandler serves the owner-scoped /my-urls surface. RequireAuth runs in
// front of every route here, so the identity is never anonymous.
type MyURLsHandler struct {
	myURLs  *services.MyURLsService
	baseURL string
}

func NewMyURLsHandler(myURLs *services.MyURLsService, baseURL string) *MyURLsHandler {
	return &MyURLsHandler{myURLs: myURLs, baseURL: baseURL}
}

func (h *MyURLsHandler) List(c *gin.Context) {
	identity := auth.IdentityFrom(c)

	links, err := h.myURLs.List(c.Request.Context(), identity.UserID)
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]URLResponse, len(links))
	for i := range links {
		out[i] = newURLResponse(&links[i], h.baseURL)
	}
	c.JSON(http.StatusOK, out)
}

func (h *MyURLsHandler) Get(c *gin.Context) {
	identity := auth.IdentityFrom(c)

	link, err := h.myURLs.Get(c.Request.Context(), c.Param("id"), identity.UserID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newURLResponse(link, h.baseURL))
}

func (h *MyURLsHandler) Update(c *gin.Context) {
	var req UpdateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.BadRequest("Invalid request body"))
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		failValidation(c, errs)
		return
	}

	identity := auth.IdentityFrom(c)

	link, err := h.myURLs.Update(c.Request.Context(), c.Param("id"), identity.UserID, req.OriginalURL)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newURLResponse(link, h.baseURL))
}

func (h *MyURLsHandler) Delete(c *gin.Context) {
	identity := auth.IdentityFrom(c)

	if err := h.myURLs.Remove(c.Request.Context(), c.Param("id"), identity.UserID); err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
