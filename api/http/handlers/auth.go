package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/users/api/http/presenter"
	"github.com/artem13815/users/pkg/auth"
)

type AuthHandler struct {
	useCase auth.UseCase
}

func NewAuthHandler(useCase auth.UseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	ID    int64  `json:"id"`
	UUID  string `json:"uuid"`
	Email string `json:"email"`
	Token string `json:"token"`
}

func newTokenResponse(r auth.Result) tokenResponse {
	return tokenResponse{
		ID:    r.User.ID,
		UUID:  r.User.UUID.String(),
		Email: r.User.Email,
		Token: r.Token,
	}
}

func parseCredentials(c *fiber.Ctx) (credentialsRequest, error) {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return req, fiber.NewError(http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return req, fiber.NewError(http.StatusBadRequest, "email and password are required")
	}
	return req, nil
}

// Register handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "registration payload"
// @Success 201 {object} tokenResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	req, err := parseCredentials(c)
	if err != nil {
		return presenter.HandleErr(c, err)
	}
	result, err := h.useCase.Register(c.Context(), req.Email, req.Password)
	if err != nil {
		return presenter.HandleErr(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, newTokenResponse(result))
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body credentialsRequest true "login payload"
// @Success 200 {object} tokenResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	req, err := parseCredentials(c)
	if err != nil {
		return presenter.HandleErr(c, err)
	}
	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return presenter.HandleErr(c, err)
	}
	return presenter.JSON(c, http.StatusOK, newTokenResponse(result))
}
