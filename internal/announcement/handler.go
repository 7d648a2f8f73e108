package announcement

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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decode(w, r)
	if !ok {
		return
	}

	a, err := h.service.Create(in)
	if err != nil {
		httputil.Error(w, http.StatusInternalServerError, "failed to create announcement")
		return
	}
	httputil.JSON(w, http.StatusCreated, a)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List()
	if err != nil {
		httputil.Error(w, http.StatusInternalServerError, "failed to list announcements")
		return
	}
	httputil.JSON(w, http.StatusOK, items)
}

// PublicFeed serves only published announcements, cache-first.
func (h *Handler) PublicFeed(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.PublicFeed()
	if err != nil {
		httputil.Error(w, http.StatusInternalServerError, "failed to load announcements")
		return
	}
	if items == nil {
		items = []models.Announcement{}
	}
	httputil.JSON(w, http.StatusOK, items)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid announcement id")
		return
	}
	in, ok := h.decode(w, r)
	if !ok {
		return
	}

	a, err := h.service.Update(id, in)
	if err != nil {
		if errors.Is(err, ErrAnnouncementNotFound) {
			httputil.Error(w, http.StatusNotFound, "announcement not found")
			return
		}
		httputil.Error(w, http.StatusInternalServerError, "failed to update announcement")
		return
	}
	httputil.JSON(w, http.StatusOK, a)
}

func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid announcement id")
		return
	}

	a, err := h.service.Publish(id)
	if err != nil {
		if errors.Is(err, ErrAnnouncementNotFound) {
			httputil.Error(w, http.StatusNotFound, "announcement not found")
			return
		}
		httputil.Error(w, http.StatusInternalServerError, "failed to publish announcement")
		return
	}
	httputil.JSON(w, http.StatusOK, a)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid announcement id")
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrAnnouncementNotFound) {
			httputil.Error(w, http.StatusNotFound, "announcement not found")
			return
		}
		httputil.Error(w, http.StatusInternalServerError, "failed to delete announcement")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (*AnnouncementInput, bool) {
	var in AnnouncementInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	if err := h.validate.Struct(&in); err != nil {
		httputil.ValidationError(w, httputil.FieldErrors(err))
		return nil, false
	}
	return &in, true
}

func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
