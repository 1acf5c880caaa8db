package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	"github.com/artem13815/users/api/http/presenter"
	"github.com/artem13815/users/pkg/security/jwt"
	"github.com/artem13815/users/pkg/user"
)

type UserHandler struct {
	uc user.UseCase
}

func NewUserHandler(uc user.UseCase) *UserHandler { return &UserHandler{uc: uc} }

// Self returns the caller's own record with its roles.
// @Summary  Read own user
// @Tags     Users
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} user.Complete
// @Failure  401 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /users/self [get]
func (h *UserHandler) Self(c *fiber.Ctx) error {
	uid, ok := jwt.UserUUID(c)
	if !ok {
		return presenter.Unauthorized(c)
	}
	res, err := h.uc.Self(c.Context(), uid)
	if err != nil {
		return presenter.HandleErr(c, err)
	}
	return presenter.Found(c, res)
}

// GetByID returns another user's record. Admins only.
// @Summary  Read a user
// @Tags     Users
// @Produce  json
// @Param    id path int true "User ID"
// @Security BearerAuth
// @Success  200 {object} user.Complete
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  401 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	uid, ok := jwt.UserUUID(c)
	if !ok {
		return presenter.Unauthorized(c)
	}
	id, err := parseUserID(c)
	if err != nil {
		return h.badRequest(c, uid, "invalid user id")
	}
	res, err := h.uc.GetByID(c.Context(), uid, id)
	switch {
	case errors.Is(err, user.ErrNotFound):
		return presenter.NotFound(c)
	case errors.Is(err, user.ErrUnauthorized):
		return presenter.Unauthorized(c)
	case err != nil:
		return presenter.HandleErr(c, err)
	}
	return presenter.Found(c, res)
}

// AssignRole grants a role to a user. Admins only.
// @Summary  Assign role
// @Tags     Users
// @Param    id   path int    true "User ID"
// @Param    role path string true "Role name" Enums(admin, owner, member)
// @Security BearerAuth
// @Success  204
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  401 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Failure  409 {object} presenter.ErrorResponse
// @Router   /users/{id}/roles/{role} [put]
func (h *UserHandler) AssignRole(c *fiber.Ctx) error {
	return h.changeRole(c, h.uc.AssignRole)
}

// RevokeRole removes a role from a user. Admins only.
// @Summary  Revoke role
// @Tags     Users
// @Param    id   path int    true "User ID"
// @Param    role path string true "Role name" Enums(admin, owner, member)
// @Security BearerAuth
// @Success  204
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  401 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /users/{id}/roles/{role} [delete]
func (h *UserHandler) RevokeRole(c *fiber.Ctx) error {
	return h.changeRole(c, h.uc.RevokeRole)
}

type roleChange func(ctx context.Context, requester uuid.UUID, id int64, role user.Role) error

func (h *UserHandler) changeRole(c *fiber.Ctx, apply roleChange) error {
	uid, ok := jwt.UserUUID(c)
	if !ok {
		return presenter.Unauthorized(c)
	}
	id, err := parseUserID(c)
	if err != nil {
		return h.badRequest(c, uid, "invalid user id")
	}
	// Params point into the request buffer, which fasthttp reuses.
	role, err := user.ParseRole(utils.CopyString(c.Params("role")))
	if err != nil {
		return h.badRequest(c, uid, "unknown role")
	}
	if err := apply(c.Context(), uid, id, role); err != nil {
		return presenter.HandleErr(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// badRequest rejects malformed input, but only once the requester is known to
// be an admin; everybody else gets the same answer as for a well-formed request.
func (h *UserHandler) badRequest(c *fiber.Ctx, requester uuid.UUID, msg string) error {
	if err := h.uc.RequireAdmin(c.Context(), requester); err != nil {
		return presenter.HandleErr(c, err)
	}
	return presenter.Error(c, http.StatusBadRequest, msg)
}

func parseUserID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
