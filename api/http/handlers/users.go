package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/nurbekov/user-service/api/http/presenter"
	"github.com/nurbekov/user-service/pkg/user"
)

type UserHandler struct {
	useCase user.UseCase
	log     *slog.Logger
}

func NewUserHandler(useCase user.UseCase, log *slog.Logger) *UserHandler {
	return &UserHandler{useCase: useCase, log: log}
}

// userResponse projects a user for transport; the password hash never
// leaves the service.
type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserResponse(u user.User) userResponse {
	return userResponse{ID: u.ID.String(), Name: u.Name, Email: u.Email}
}

// List returns all users.
// @Summary Get all users
// @Tags    users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} userResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.useCase.List(c.Context())
	if err != nil {
		h.log.Error("list users failed", "err", err)
		return presenter.Error(c, http.StatusInternalServerError, "Server error")
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// GetByID returns a single user.
// @Summary Get user by ID
// @Tags    users
// @Produce json
// @Param   id path string true "user ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} userResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid user ID")
	}

	u, err := h.useCase.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "User not found")
		}
		h.log.Error("get user failed", "id", id, "err", err)
		return presenter.Error(c, http.StatusInternalServerError, "Server error")
	}
	return presenter.JSON(c, http.StatusOK, toUserResponse(u))
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Update applies a partial update. Omitted fields are left unchanged;
// a supplied empty string is rejected with 400.
// @Summary Update user
// @Tags    users
// @Accept  json
// @Produce json
// @Param   id path string true "user ID (UUID)"
// @Param   input body updateUserRequest true "fields to change"
// @Security BearerAuth
// @Success 200 {object} presenter.MessageResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid user ID")
	}
	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	params := user.UpdateParams{Name: req.Name, Email: req.Email, Password: req.Password}
	if err := h.useCase.Update(c.Context(), id, params); err != nil {
		var verr user.ErrValidation
		switch {
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		case errors.Is(err, user.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "User not found")
		case errors.Is(err, user.ErrEmailTaken):
			return presenter.Error(c, http.StatusBadRequest, "Email is already in use")
		default:
			h.log.Error("update user failed", "id", id, "err", err)
			return presenter.Error(c, http.StatusInternalServerError, "Server error")
		}
	}
	return presenter.Message(c, http.StatusOK, "User updated successfully")
}

// Delete removes a user.
// @Summary Delete user
// @Tags    users
// @Produce json
// @Param   id path string true "user ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} presenter.MessageResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid user ID")
	}

	if err := h.useCase.Delete(c.Context(), id); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "User not found")
		}
		h.log.Error("delete user failed", "id", id, "err", err)
		return presenter.Error(c, http.StatusInternalServerError, "Server error")
	}
	return presenter.Message(c, http.StatusOK, "User deleted successfully")
}
