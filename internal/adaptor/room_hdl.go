package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hostel-booking/internal/dto/request"
	"hostel-booking/internal/usecase"
	"hostel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// Create handles POST /api/rooms (protected)
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create room")
		return
	}

	utils.ResponseCreated(w, "success", room)
}

// List handles GET /api/rooms (public)
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.RoomListRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:  utils.ParseInt(query.Get("page"), 1),
			Limit: utils.ParseInt(query.Get("limit"), 10),
		},
		Status:   query.Get("status"),
		RoomType: query.Get("roomType"),
		Gender:   query.Get("gender"),
	}
	if raw := query.Get("floor"); raw != "" {
		floor := utils.ParseInt(raw, 0)
		req.Floor = &floor
	}
	if raw := query.Get("available"); raw != "" {
		if available, err := strconv.ParseBool(raw); err == nil {
			req.Available = available
		}
	}

	rooms, err := h.service.List(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// GetByID handles GET /api/rooms/{id} (public)
func (h *RoomHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	room, err := h.service.GetByID(r.Context(), roomID)
	if err != nil {
		handleServiceError(w, h.log, err, "get room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// Update handles PUT /api/rooms/{id} (protected)
func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	var req request.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.Update(r.Context(), roomID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// Delete handles DELETE /api/rooms/{id} (protected)
func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), roomID); err != nil {
		handleServiceError(w, h.log, err, "delete room")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// Stats handles GET /api/rooms/stats (protected)
func (h *RoomHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get room stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}
