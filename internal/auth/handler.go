package auth

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

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name"`
	Role     string `json:"role" validate:"omitempty,oneof=admin staff"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		httputil.ValidationError(w, httputil.FieldErrors(err))
		return
	}

	token, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		httputil.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	httputil.JSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		httputil.ValidationError(w, httputil.FieldErrors(err))
		return
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     req.Role,
	}
	if err := h.service.Register(user); err != nil {
		httputil.Error(w, http.StatusInternalServerError, "registration failed")
		return
	}

	httputil.JSON(w, http.StatusCreated, map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}

func (h *Handler) ListStaff(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListStaff()
	if err != nil {
		httputil.Error(w, http.StatusInternalServerError, "failed to list staff")
		return
	}
	httputil.JSON(w, http.StatusOK, users)
}

type SetActiveRequest struct {
	Active bool `json:"active"`
}

func (h *Handler) SetStaffActive(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid staff id")
		return
	}

	var req SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.SetStaffActive(uint(id), req.Active); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			httputil.Error(w, http.StatusNotFound, "staff member not found")
			return
		}
		httputil.Error(w, http.StatusInternalServerError, "failed to update staff member")
		return
	}
	httputil.JSON(w, http.StatusOK, map[string]bool{"active": req.Active})
}
