package admission

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"school-system/internal/httputil"
	"school-system/internal/models"
)

type Handler struct {
	service  *Service
	validate *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) CreateApplicant(w http.ResponseWriter, r *http.Request) {
	var in ApplicantInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&in); err != nil {
		httputil.ValidationError(w, httputil.FieldErrors(err))
		return
	}

	applicant, err := h.service.CreateApplicant(&in)
	if err != nil {
		httputil.Error(w, http.StatusInternalServerError, "failed to register applicant")
		return
	}

	httputil.JSON(w, http.StatusCreated, map[string]interface{}{
		"id":     applicant.ID,
		"number": applicant.Number,
		"status": applicant.Status,
	})
}

func (h *Handler) GetApplicant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid applicant id")
		return
	}

	applicant, err := h.service.GetApplicant(id)
	if err != nil {
		if errors.Is(err, ErrApplicantNotFound) {
			httputil.Error(w, http.StatusNotFound, "applicant not found")
			return
		}
		httputil.Error(w, http.StatusInternalServerError, "failed to load applicant")
		return
	}
	httputil.JSON(w, http.StatusOK, applicant)
}

func (h *Handler) ListApplicants(w http.ResponseWriter, r *http.Request) {
	applicants, err := h.service.ListApplicants(r.URL.Query().Get("status"))
	if err != nil {
		httputil.Error(w, http.StatusInternalServerError, "failed to list applicants")
		return
	}
	httputil.JSON(w, http.StatusOK, applicants)
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected"`
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid applicant id")
		return
	}

	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		httputil.ValidationError(w, httputil.FieldErrors(err))
		return
	}

	if err := h.service.UpdateStatus(id, req.Status); err != nil {
		if errors.Is(err, ErrApplicantNotFound) {
			httputil.Error(w, http.StatusNotFound, "applicant not found")
			return
		}
		httputil.Error(w, http.StatusInternalServerError, "failed to update applicant")
		return
	}
	httputil.JSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

func (h *Handler) DeleteApplicant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid applicant id")
		return
	}

	if err := h.service.DeleteApplicant(id); err != nil {
		if errors.Is(err, ErrApplicantNotFound) {
			httputil.Error(w, http.StatusNotFound, "applicant not found")
			return
		}
		httputil.Error(w, http.StatusInternalServerError, "failed to delete applicant")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdmissionStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.AdmissionStats()
	if err != nil {
		httputil.Error(w, http.StatusInternalServerError, "failed to load admission stats")
		return
	}
	if stats == nil {
		stats = []models.AdmissionStat{}
	}
	httputil.JSON(w, http.StatusOK, stats)
}

func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
