package exam

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"school-system/internal/httputil"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateExam(w http.ResponseWriter, r *http.Request) {
	var in ExamInput
	if err := decodeNormalized(r, &in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validateExamInput(&in); errs != nil {
		httputil.ValidationError(w, errs)
		return
	}

	exam, err := h.service.CreateExam(&in)
	if err != nil {
		httputil.Error(w, http.StatusInternalServerError, "failed to create exam")
		return
	}

	httputil.JSON(w, http.StatusCreated, map[string]interface{}{
		"id":     exam.ID,
		"title":  exam.Title,
		"status": exam.Status,
	})
}

func (h *Handler) ListExams(w http.ResponseWriter, r *http.Request) {
	exams, err := h.service.ListExams()
	if err != nil {
		httputil.Error(w, http.StatusInternalServerError, "failed to list exams")
		return
	}
	httputil.JSON(w, http.StatusOK, exams)
}

// GetExam is the candidate-facing read: answer correctness stays hidden.
func (h *Handler) GetExam(w http.ResponseWriter, r *http.Request) {
	h.getExam(w, r, false)
}

// GetExamStaff includes is_correct on every answer.
func (h *Handler) GetExamStaff(w http.ResponseWriter, r *http.Request) {
	h.getExam(w, r, true)
}

func (h *Handler) getExam(w http.ResponseWriter, r *http.Request, staff bool) {
	id, ok := pathID(r)
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid exam id")
		return
	}

	exam, err := h.service.GetExam(id)
	if err != nil {
		if errors.Is(err, ErrExamNotFound) {
			httputil.Error(w, http.StatusNotFound, "exam not found")
			return
		}
		httputil.Error(w, http.StatusInternalServerError, "failed to load exam")
		return
	}

	httputil.JSON(w, http.StatusOK, h.service.BuildView(exam, staff))
}

func (h *Handler) UpdateExam(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid exam id")
		return
	}

	var in ExamUpdateInput
	if err := decodeNormalized(r, &in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if errs := validateExamUpdate(&in); errs != nil {
		httputil.ValidationError(w, errs)
		return
	}

	exam, err := h.service.UpdateExam(id, &in)
	if err != nil {
		if errors.Is(err, ErrExamNotFound) {
			httputil.Error(w, http.StatusNotFound, "exam not found")
			return
		}
		httputil.Error(w, http.StatusInternalServerError, "failed to update exam")
		return
	}
	httputil.JSON(w, http.StatusOK, exam)
}

func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid exam id")
		return
	}

	exam, err := h.service.ToggleStatus(id)
	if err != nil {
		if errors.Is(err, ErrExamNotFound) {
			httputil.Error(w, http.StatusNotFound, "exam not found")
			return
		}
		httputil.Error(w, http.StatusInternalServerError, "failed to toggle exam status")
		return
	}
	httputil.JSON(w, http.StatusOK, map[string]interface{}{
		"id":     exam.ID,
		"status": exam.Status,
	})
}

func (h *Handler) DeleteExam(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid exam id")
		return
	}

	if err := h.service.DeleteExam(id); err != nil {
		if errors.Is(err, ErrExamNotFound) {
			httputil.Error(w, http.StatusNotFound, "exam not found")
			return
		}
		httputil.Error(w, http.StatusInternalServerError, "failed to delete exam")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid exam id")
		return
	}

	var in SubmitInput
	if err := decodeNormalized(r, &in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Submit(id, &in)
	if err != nil {
		if errors.Is(err, ErrExamNotFound) {
			httputil.Error(w, http.StatusNotFound, "exam not found")
			return
		}
		httputil.Error(w, http.StatusInternalServerError, "failed to record submission")
		return
	}
	httputil.JSON(w, http.StatusCreated, result)
}

func (h *Handler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid submission id")
		return
	}

	sub, err := h.service.GetSubmission(id)
	if err != nil {
		if errors.Is(err, ErrSubmissionNotFound) {
			httputil.Error(w, http.StatusNotFound, "submission not found")
			return
		}
		httputil.Error(w, http.StatusInternalServerError, "failed to load submission")
		return
	}
	httputil.JSON(w, http.StatusOK, sub)
}

func (h *Handler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid exam id")
		return
	}

	subs, err := h.service.ListSubmissions(id)
	if err != nil {
		if errors.Is(err, ErrExamNotFound) {
			httputil.Error(w, http.StatusNotFound, "exam not found")
			return
		}
		httputil.Error(w, http.StatusInternalServerError, "failed to list submissions")
		return
	}
	httputil.JSON(w, http.StatusOK, subs)
}

// decodeNormalized runs the body through key normalization before decoding
// it into the typed input, so either client naming convention lands on the
// canonical field names.
func decodeNormalized(r *http.Request, dst interface{}) error {
	var raw map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return err
	}
	normalized, err := json.Marshal(NormalizeKeys(raw))
	if err != nil {
		return err
	}
	return json.Unmarshal(normalized, dst)
}

func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
