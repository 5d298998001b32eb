package adaptor

import (
	"encoding/json"
	"net/http"

	"hostel-booking/internal/dto/request"
	"hostel-booking/internal/usecase"
	"hostel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Create handles POST /api/bookings (protected)
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// List handles GET /api/bookings (protected)
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.BookingListRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:  utils.ParseInt(query.Get("page"), 1),
			Limit: utils.ParseInt(query.Get("limit"), 10),
		},
		Status:    query.Get("status"),
		StudentID: query.Get("studentId"),
		RoomID:    query.Get("roomId"),
	}

	bookings, err := h.service.List(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetByID handles GET /api/bookings/{id} (protected)
func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// SetStatus handles PUT /api/bookings/{id}/status (protected)
func (h *BookingHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.SetStatus(r.Context(), bookingID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// Delete handles DELETE /api/bookings/{id} (protected)
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), bookingID); err != nil {
		handleServiceError(w, h.log, err, "delete booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// Stats handles GET /api/bookings/stats (protected)
func (h *BookingHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get booking stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}
