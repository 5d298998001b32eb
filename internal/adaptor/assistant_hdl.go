package adaptor

import (
	"encoding/json"
	"net/http"

	"hostel-booking/internal/dto/request"
	"hostel-booking/internal/usecase"
	"hostel-booking/pkg/utils"

	"go.uber.org/zap"
)

type AssistantHandler struct {
	service usecase.AssistantService
	log     *zap.Logger
}

func NewAssistantHandler(service usecase.AssistantService, log *zap.Logger) *AssistantHandler {
	return &AssistantHandler{
		service: service,
		log:     log.With(zap.String("handler", "assistant")),
	}
}

// Ask handles POST /api/assistant/chat (protected)
func (h *AssistantHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req request.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	answer, err := h.service.Ask(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "ask assistant")
		return
	}

	utils.ResponseSuccess(w, "success", answer)
}
