package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/nurbekov/user-service/api/http/presenter"
	"github.com/nurbekov/user-service/pkg/user"
)

type AuthHandler struct {
	useCase user.UseCase
	log     *slog.Logger
}

func NewAuthHandler(useCase user.UseCase, log *slog.Logger) *AuthHandler {
	return &AuthHandler{useCase: useCase, log: log}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Login handles user login.
// @Summary User login
// @Description Logs in a user and returns a JWT token.
// @Tags    users
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "credentials"
// @Success 200 {object} loginResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /users/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	token, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		var verr user.ErrValidation
		switch {
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		case errors.Is(err, user.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "User not found")
		case errors.Is(err, user.ErrInvalidCredentials):
			return presenter.Error(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			h.log.Error("login failed", "err", err)
			return presenter.Error(c, http.StatusInternalServerError, "Server error")
		}
	}

	return presenter.JSON(c, http.StatusOK, loginResponse{Message: "Login successful", Token: token})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration. The endpoint is deliberately
// unauthenticated: it is the account-creation entry point.
// @Summary User registration
// @Description Registers a new user.
// @Tags    users
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} presenter.MessageResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /users/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	if _, err := h.useCase.Register(c.Context(), req.Name, req.Email, req.Password); err != nil {
		var verr user.ErrValidation
		switch {
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		case errors.Is(err, user.ErrEmailTaken):
			return presenter.Error(c, http.StatusBadRequest, "Email already registered")
		default:
			h.log.Error("register failed", "err", err)
			return presenter.Error(c, http.StatusInternalServerError, "Server error")
		}
	}

	return presenter.Message(c, http.StatusCreated, "User registered")
}
