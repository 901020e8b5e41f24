package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ituna-edu/portal-api/internal/routes"
	appErrors "github.com/ituna-edu/portal-api/pkg/errors"
	"github.com/ituna-edu/portal-api/pkg/response"
)

// NavigationHandler resolves hash fragments for the web client. Keeping the
// rule table server-side means every client agrees on the same routing.
type NavigationHandler struct {
	resolver *routes.Resolver
}

// NewNavigationHandler constructs NavigationHandler.
func NewNavigationHandler(resolver *routes.Resolver) *NavigationHandler {
	return &NavigationHandler{resolver: resolver}
}

type resolveRequest struct {
	Hash string `json:"hash"`
}

type resolveResponse struct {
	View        routes.View `json:"view"`
	ID          string      `json:"id,omitempty"`
	ScrollToTop bool        `json:"scroll_to_top"`
}

// Resolve godoc
// @Summary Resolve a hash fragment to a view
// @Tags Navigation
// @Accept json
// @Produce json
// @Param payload body resolveRequest true "Hash fragment"
// @Success 200 {object} response.Envelope
// @Router /navigation/resolve [post]
func (h *NavigationHandler) Resolve(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	route := h.resolver.Resolve(req.Hash)
	response.JSON(c, http.StatusOK, resolveResponse{
		View:        route.View,
		ID:          route.ID,
		ScrollToTop: routes.IsPageNavigation(req.Hash),
	}, nil)
}
