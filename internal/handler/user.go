package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/userdesk/userdesk/internal/apperr"
	"github.com/userdesk/userdesk/internal/handler/dto"
	"github.com/userdesk/userdesk/internal/service"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	svc    *service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ListUsers(r.Context())
	if err != nil {
		h.respondError(w, err, "UserHandler.List")
		return
	}

	writeJSON(w, http.StatusOK, dto.ToListUsersResponse(out.Data, out.Count))
}

// Get handles GET /api/users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.respondError(w, err, "UserHandler.Get")
		return
	}

	user, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		h.respondError(w, err, "UserHandler.Get")
		return
	}

	writeJSON(w, http.StatusOK, dto.UserEnvelope{Data: dto.ToUserResponse(user)})
}

// Create handles POST /api/users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, apperr.BadRequest("Invalid request body"), "UserHandler.Create")
		return
	}

	user, err := h.svc.CreateUser(r.Context(), service.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	})
	if err != nil {
		h.respondError(w, err, "UserHandler.Create")
		return
	}

	h.logger.Info("user_created", "user_id", user.ID, "email", user.Email)

	resp := dto.ToUserResponse(user)
	writeJSON(w, http.StatusCreated, dto.MutationResponse{
		Message: "User created successfully",
		Data:    &resp,
	})
}

// Update handles PUT /api/users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.respondError(w, err, "UserHandler.Update")
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, apperr.BadRequest("Invalid request body"), "UserHandler.Update")
		return
	}

	user, err := h.svc.UpdateUser(r.Context(), id, service.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	})
	if err != nil {
		h.respondError(w, err, "UserHandler.Update")
		return
	}

	h.logger.Info("user_updated", "user_id", user.ID)

	resp := dto.ToUserResponse(user)
	writeJSON(w, http.StatusOK, dto.MutationResponse{
		Message: "User updated successfully",
		Data:    &resp,
	})
}

// Delete handles DELETE /api/users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.respondError(w, err, "UserHandler.Delete")
		return
	}

	if err := h.svc.DeleteUser(r.Context(), id); err != nil {
		h.respondError(w, err, "UserHandler.Delete")
		return
	}

	h.logger.Info("user_deleted", "user_id", id)

	writeJSON(w, http.StatusOK, dto.MutationResponse{
		Message: "User deleted successfully",
	})
}

// parseID extracts the integer id path parameter.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("Invalid user ID")
	}
	return id, nil
}

// respondError is the single place status codes are decided. Every error
// reaching the handler is logged with its operation name; conflicts are
// deliberately reported as 400 rather than 409.
func (h *UserHandler) respondError(w http.ResponseWriter, err error, op string) {
	kind := apperr.KindOf(err)
	message := apperr.MessageOf(err)

	switch kind {
	case apperr.KindValidation, apperr.KindBadRequest, apperr.KindConflict:
		h.logger.Warn("request rejected", "operation", op, "error", err)
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error:   true,
			Message: message,
		})
	case apperr.KindNotFound:
		h.logger.Warn("resource missing", "operation", op, "error", err)
		writeJSON(w, http.StatusNotFound, dto.ErrorResponse{
			Error:   true,
			Message: message,
		})
	default:
		h.logger.Error("internal error", "operation", op, "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
			Error:   true,
			Message: message,
			Context: op,
		})
	}
}
