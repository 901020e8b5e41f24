package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ituna-edu/portal-api/internal/models"
	"github.com/ituna-edu/portal-api/internal/service"
	appErrors "github.com/ituna-edu/portal-api/pkg/errors"
	"github.com/ituna-edu/portal-api/pkg/response"
)

// ResourceHandler exposes the learning resource library endpoints.
type ResourceHandler struct {
	resources *service.ResourceService
}

// NewResourceHandler constructs ResourceHandler.
func NewResourceHandler(resources *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resources: resources}
}

// List godoc
// @Summary List learning resources
// @Tags Resources
// @Produce json
// @Param search query string false "Search file name, subject or uploader"
// @Param subject query string false "Filter by subject"
// @Param sort query string false "Sort column (fileName, subject, uploader, date)"
// @Param order query string false "Sort order (asc, desc)"
// @Success 200 {object} response.Envelope
// @Router /resources [get]
func (h *ResourceHandler) List(c *gin.Context) {
	filter := models.ResourceFilter{
		Search:    strings.TrimSpace(c.Query("search")),
		Subject:   c.Query("subject"),
		SortBy:    c.Query("sort"),
		SortOrder: c.Query("order"),
	}
	resources := h.resources.List(c.Request.Context(), filter)
	response.JSON(c, http.StatusOK, resources, nil)
}

// Subjects godoc
// @Summary List distinct resource subjects
// @Tags Resources
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /resources/subjects [get]
func (h *ResourceHandler) Subjects(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.resources.Subjects(c.Request.Context()), nil)
}

// Delete godoc
// @Summary Delete a resource
// @Tags Resources
// @Param id path int true "Resource ID"
// @Success 204
// @Security BearerAuth
// @Router /resources/{id} [delete]
func (h *ResourceHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid resource id"))
		return
	}
	if err := h.resources.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
