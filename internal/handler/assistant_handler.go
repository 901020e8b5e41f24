package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ituna-edu/portal-api/internal/service"
	appErrors "github.com/ituna-edu/portal-api/pkg/errors"
	"github.com/ituna-edu/portal-api/pkg/response"
)

// AssistantHandler exposes the Konkcee AI endpoints.
type AssistantHandler struct {
	assistant *service.AssistantService
	metrics   *service.MetricsService
}

// NewAssistantHandler constructs AssistantHandler.
func NewAssistantHandler(assistant *service.AssistantService, metrics *service.MetricsService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant, metrics: metrics}
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

// Chat godoc
// @Summary Send a chat message to the assistant
// @Tags Assistant
// @Accept json
// @Produce json
// @Param payload body chatRequest true "Chat message"
// @Success 200 {object} response.Envelope
// @Router /assistant/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	h.metrics.RecordAssistantRequest()

	reply, err := h.assistant.Chat(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, reply, nil)
}

// EndChat godoc
// @Summary Discard a chat session
// @Tags Assistant
// @Param id path string true "Session ID"
// @Success 204
// @Router /assistant/chat/{id} [delete]
func (h *AssistantHandler) EndChat(c *gin.Context) {
	h.assistant.EndChat(c.Param("id"))
	response.NoContent(c)
}

// AnalyzeImage godoc
// @Summary Analyze an uploaded image
// @Tags Assistant
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Param prompt formData string false "Question about the image"
// @Success 200 {object} response.Envelope
// @Router /assistant/image [post]
func (h *AssistantHandler) AnalyzeImage(c *gin.Context) {
	data, mimeType, err := h.readUpload(c, "image")
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.RecordAssistantRequest()

	text, err := h.assistant.AnalyzeImage(c.Request.Context(), c.PostForm("prompt"), mimeType, data)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"text": text}, nil)
}

// Transcribe godoc
// @Summary Transcribe an uploaded audio clip
// @Tags Assistant
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio file"
// @Success 200 {object} response.Envelope
// @Router /assistant/transcribe [post]
func (h *AssistantHandler) Transcribe(c *gin.Context) {
	data, mimeType, err := h.readUpload(c, "audio")
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.RecordAssistantRequest()

	text, err := h.assistant.Transcribe(c.Request.Context(), mimeType, data)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"text": text}, nil)
}

func (h *AssistantHandler) readUpload(c *gin.Context, field string) ([]byte, string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, "", appErrors.Clone(appErrors.ErrValidation, field+" file required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "failed to read upload")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "failed to read upload")
	}
	return data, fileHeader.Header.Get("Content-Type"), nil
}
