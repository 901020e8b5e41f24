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

// ArticleHandler exposes the news feed endpoints.
type ArticleHandler struct {
	articles *service.ArticleService
}

// NewArticleHandler constructs ArticleHandler.
func NewArticleHandler(articles *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

// List godoc
// @Summary List news articles
// @Tags News
// @Produce json
// @Param search query string false "Search title, excerpt or subject"
// @Param grade query string false "Filter by grade level (or 'all')"
// @Param subject query string false "Filter by subject"
// @Param from query string false "Published on or after"
// @Param to query string false "Published on or before"
// @Success 200 {object} response.Envelope
// @Router /news [get]
func (h *ArticleHandler) List(c *gin.Context) {
	filter := models.ArticleFilter{
		Search:    strings.TrimSpace(c.Query("search")),
		Grade:     c.Query("grade"),
		Subject:   c.Query("subject"),
		StartDate: c.Query("from"),
		EndDate:   c.Query("to"),
	}
	articles := h.articles.List(c.Request.Context(), filter)
	response.JSON(c, http.StatusOK, articles, nil)
}

// Get godoc
// @Summary Get a news article
// @Tags News
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} response.Envelope
// @Router /news/{id} [get]
func (h *ArticleHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid article id"))
		return
	}
	article, err := h.articles.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, article, nil)
}
