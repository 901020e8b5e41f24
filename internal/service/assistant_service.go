package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/ituna-edu/portal-api/pkg/config"
	appErrors "github.com/ituna-edu/portal-api/pkg/errors"
)

const chatSystemInstruction = "You are Konkcee AI, a helpful and friendly assistant for the Ituna secondary School Portal. Your name is spelled K-O-N-K-C-E-E. Always introduce yourself in the first message. Keep your responses concise and informative, suitable for students, teachers, and parents."

// ChatReply is one assistant turn returned to the client.
type ChatReply struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

// AssistantService fronts the generative AI features: the portal chatbot,
// image analysis and audio transcription. Upstream failures are surfaced as
// a single generic error and never retried.
type AssistantService struct {
	client *genai.Client
	cfg    config.AssistantConfig
	logger *zap.Logger

	mu       sync.Mutex
	sessions map[string][]*genai.Content
}

// NewAssistantService constructs the service and its API client.
func NewAssistantService(ctx context.Context, cfg config.AssistantConfig, logger *zap.Logger) (*AssistantService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ChatModel == "" {
		cfg.ChatModel = "gemini-2.5-flash-lite"
	}
	if cfg.VisionModel == "" {
		cfg.VisionModel = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, err
	}

	return &AssistantService{
		client:   client,
		cfg:      cfg,
		logger:   logger,
		sessions: make(map[string][]*genai.Content),
	}, nil
}

// Chat appends the user message to the session history and returns the
// model's reply. An empty session id starts a new conversation.
func (s *AssistantService) Chat(ctx context.Context, sessionID, message string) (*ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "message required")
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	s.mu.Lock()
	history := append([]*genai.Content{}, s.sessions[sessionID]...)
	s.mu.Unlock()

	contents := append(history, genai.NewContentFromText(message, genai.RoleUser))

	result, err := s.client.Models.GenerateContent(ctx, s.cfg.ChatModel, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(chatSystemInstruction, genai.RoleUser),
	})
	if err != nil {
		s.logger.Warn("assistant chat failed", zap.Error(err))
		return nil, appErrors.Clone(appErrors.ErrAssistant, "")
	}

	text := result.Text()
	if text == "" {
		return nil, appErrors.Clone(appErrors.ErrAssistant, "")
	}

	s.mu.Lock()
	s.sessions[sessionID] = append(contents, genai.NewContentFromText(text, genai.RoleModel))
	s.mu.Unlock()

	return &ChatReply{SessionID: sessionID, Text: text}, nil
}

// EndChat drops a conversation's history.
func (s *AssistantService) EndChat(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

// AnalyzeImage answers a prompt about an uploaded image.
func (s *AssistantService) AnalyzeImage(ctx context.Context, prompt, mimeType string, data []byte) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", appErrors.Clone(appErrors.ErrValidation, "prompt required")
	}
	if len(data) == 0 {
		return "", appErrors.Clone(appErrors.ErrValidation, "image required")
	}
	if int64(len(data)) > s.cfg.MaxInline {
		return "", appErrors.Clone(appErrors.ErrValidation, "image too large")
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(data, mimeType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	result, err := s.client.Models.GenerateContent(ctx, s.cfg.VisionModel, contents, nil)
	if err != nil {
		s.logger.Warn("assistant image analysis failed", zap.Error(err))
		return "", appErrors.Clone(appErrors.ErrAssistant, "")
	}
	return result.Text(), nil
}

// Transcribe converts an uploaded audio recording into text.
func (s *AssistantService) Transcribe(ctx context.Context, mimeType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", appErrors.Clone(appErrors.ErrValidation, "audio required")
	}
	if int64(len(data)) > s.cfg.MaxInline {
		return "", appErrors.Clone(appErrors.ErrValidation, "recording too large")
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(data, mimeType),
			genai.NewPartFromText("Transcribe this audio recording."),
		}, genai.RoleUser),
	}

	result, err := s.client.Models.GenerateContent(ctx, s.cfg.VisionModel, contents, nil)
	if err != nil {
		s.logger.Warn("assistant transcription failed", zap.Error(err))
		return "", appErrors.Clone(appErrors.ErrAssistant, "")
	}
	return result.Text(), nil
}
