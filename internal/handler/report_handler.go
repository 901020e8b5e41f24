package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ituna-edu/portal-api/internal/service"
	appErrors "github.com/ituna-edu/portal-api/pkg/errors"
	"github.com/ituna-edu/portal-api/pkg/response"
)

// ReportHandler exposes the progress-report export endpoints.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

type createReportRequest struct {
	StudentID   int `json:"student_id" binding:"required"`
	ReportIndex int `json:"report_index"`
}

// Create godoc
// @Summary Queue a progress report PDF export
// @Tags Reports
// @Accept json
// @Produce json
// @Param payload body createReportRequest true "Report selection"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /reports [post]
func (h *ReportHandler) Create(c *gin.Context) {
	var req createReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	job, err := h.reports.CreateJob(c.Request.Context(), req.StudentID, req.ReportIndex)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, job)
}

// Status godoc
// @Summary Report job status
// @Tags Reports
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.Envelope
// @Router /reports/{id} [get]
func (h *ReportHandler) Status(c *gin.Context) {
	job, err := h.reports.Status(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, job, nil)
}

// Download godoc
// @Summary Download a rendered report
// @Tags Reports
// @Produce application/pdf
// @Param token path string true "Signed download token"
// @Success 200
// @Router /reports/download/{token} [get]
func (h *ReportHandler) Download(c *gin.Context) {
	download, err := h.reports.ResolveDownload(c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer download.File.Close()

	info, err := download.File.Stat()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stat report file"))
		return
	}
	c.Header("Content-Disposition", "attachment; filename=progress-report.pdf")
	c.DataFromReader(http.StatusOK, info.Size(), "application/pdf", download.File, nil)
}
