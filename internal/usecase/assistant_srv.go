package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hostel-booking/internal/dto/request"
	"hostel-booking/internal/dto/response"
	"hostel-booking/pkg/apperrors"
	"hostel-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

	assistantPrompt = `You are the help assistant for a student hostel. Answer questions about
rooms, bookings, rent, security deposits and hostel policies. Bookings start
as Pending and must be approved by the warden before a room is assigned.
Rent is charged monthly and the security deposit equals one month of rent.
Keep answers short and practical. If a question is unrelated to hostel life,
politely decline.`
)

// AssistantService proxies student questions to the Gemini API. The API key
// stays on the server; clients only ever see the generated answer.
type AssistantService interface {
	Ask(ctx context.Context, req *request.ChatRequest) (*response.ChatResponse, error)
}

type assistantService struct {
	cfg    utils.GeminiConfig
	client *http.Client
	log    *zap.Logger
}

func NewAssistantService(cfg utils.GeminiConfig, log *zap.Logger) AssistantService {
	return &assistantService{
		cfg: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log.With(zap.String("service", "assistant")),
	}
}

type geminiRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (s *assistantService) Ask(ctx context.Context, req *request.ChatRequest) (*response.ChatResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperrors.NewValidation(utils.FormatValidationErrors(errs))
	}

	if s.cfg.APIKey == "" {
		return nil, fmt.Errorf("assistant is not configured")
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: assistantPrompt}},
		},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: req.Question}}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal assistant request: %w", err)
	}

	url := fmt.Sprintf(geminiEndpoint, s.cfg.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build assistant request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", s.cfg.APIKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		s.log.Error("Assistant upstream request failed", zap.Error(err))
		return nil, fmt.Errorf("assistant request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		s.log.Error("Assistant upstream returned error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw),
		)
		return nil, fmt.Errorf("assistant upstream status %d", resp.StatusCode)
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode assistant response: %w", err)
	}

	var sb strings.Builder
	if len(result.Candidates) > 0 {
		for _, part := range result.Candidates[0].Content.Parts {
			sb.WriteString(part.Text)
		}
	}
	answer := strings.TrimSpace(sb.String())
	if answer == "" {
		return nil, fmt.Errorf("assistant returned no answer")
	}

	s.log.Info("Assistant answered", zap.Int("answer_len", len(answer)))

	return &response.ChatResponse{Response: answer}, nil
}
