package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ituna-edu/portal-api/internal/service"
	"github.com/ituna-edu/portal-api/pkg/response"
)

// SearchHandler exposes the global search overlay endpoint.
type SearchHandler struct {
	search *service.SearchService
}

// NewSearchHandler constructs SearchHandler.
func NewSearchHandler(search *service.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// Query godoc
// @Summary Search across news, resources, teachers and students
// @Tags Search
// @Produce json
// @Param q query string false "Search term"
// @Param newsFrom query string false "News published on or after"
// @Param newsTo query string false "News published on or before"
// @Param resourceSubject query string false "Resource subject filter"
// @Success 200 {object} response.Envelope
// @Router /search [get]
func (h *SearchHandler) Query(c *gin.Context) {
	req := service.SearchRequest{
		Term:            strings.TrimSpace(c.Query("q")),
		NewsStartDate:   c.Query("newsFrom"),
		NewsEndDate:     c.Query("newsTo"),
		ResourceSubject: c.Query("resourceSubject"),
	}
	response.JSON(c, http.StatusOK, h.search.Query(c.Request.Context(), req), nil)
}
