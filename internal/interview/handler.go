package interview

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

func (h *Handler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	var in SlotInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&in); err != nil {
		httputil.ValidationError(w, httputil.FieldErrors(err))
		return
	}

	slot, err := h.service.CreateSlot(&in)
	if err != nil {
		httputil.Error(w, http.StatusInternalServerError, "failed to create interview slot")
		return
	}
	httputil.JSON(w, http.StatusCreated, slot)
}

func (h *Handler) ListSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.service.ListSlots()
	if err != nil {
		httputil.Error(w, http.StatusInternalServerError, "failed to list interview slots")
		return
	}
	if slots == nil {
		slots = []models.InterviewSlot{}
	}
	httputil.JSON(w, http.StatusOK, slots)
}

func (h *Handler) GetSlot(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid slot id")
		return
	}

	slot, err := h.service.GetSlot(id)
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			httputil.Error(w, http.StatusNotFound, "interview slot not found")
			return
		}
		httputil.Error(w, http.StatusInternalServerError, "failed to load interview slot")
		return
	}
	httputil.JSON(w, http.StatusOK, slot)
}

func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid slot id")
		return
	}

	var in BookingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&in); err != nil {
		httputil.ValidationError(w, httputil.FieldErrors(err))
		return
	}

	booking, err := h.service.Book(id, &in)
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			httputil.Error(w, http.StatusNotFound, "interview slot not found")
			return
		}
		if errors.Is(err, ErrSlotFull) {
			httputil.Error(w, http.StatusConflict, "interview slot is full")
			return
		}
		httputil.Error(w, http.StatusInternalServerError, "failed to book interview slot")
		return
	}
	httputil.JSON(w, http.StatusCreated, booking)
}

func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
