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

type StudentHandler struct {
	service usecase.StudentService
	log     *zap.Logger
}

func NewStudentHandler(service usecase.StudentService, log *zap.Logger) *StudentHandler {
	return &StudentHandler{
		service: service,
		log:     log.With(zap.String("handler", "student")),
	}
}

// List handles GET /api/students (protected)
func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.StudentListRequest{
		PaginatedRequest: request.PaginatedRequest{
			Page:  utils.ParseInt(query.Get("page"), 1),
			Limit: utils.ParseInt(query.Get("limit"), 10),
		},
		Course: query.Get("course"),
		Year:   utils.ParseInt(query.Get("year"), 0),
		Gender: query.Get("gender"),
	}
	if raw := query.Get("hasRoom"); raw != "" {
		if hasRoom, err := strconv.ParseBool(raw); err == nil {
			req.HasRoom = &hasRoom
		}
	}

	students, err := h.service.List(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list students")
		return
	}

	utils.ResponseSuccess(w, "success", students)
}

// GetByID handles GET /api/students/{id} (protected)
func (h *StudentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "id")
	if studentID == "" {
		utils.ResponseBadRequest(w, "Student ID is required", nil)
		return
	}

	student, err := h.service.GetByID(r.Context(), studentID)
	if err != nil {
		handleServiceError(w, h.log, err, "get student")
		return
	}

	utils.ResponseSuccess(w, "success", student)
}

// Update handles PUT /api/students/{id} (protected)
func (h *StudentHandler) Update(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "id")
	if studentID == "" {
		utils.ResponseBadRequest(w, "Student ID is required", nil)
		return
	}

	var req request.UpdateStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	student, err := h.service.Update(r.Context(), studentID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update student")
		return
	}

	utils.ResponseSuccess(w, "success", student)
}

// Delete handles DELETE /api/students/{id} (protected)
func (h *StudentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "id")
	if studentID == "" {
		utils.ResponseBadRequest(w, "Student ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), studentID); err != nil {
		handleServiceError(w, h.log, err, "delete student")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// Stats handles GET /api/students/stats (protected)
func (h *StudentHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get student stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}
