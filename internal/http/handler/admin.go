package handler

import (
	"github.com/gofiber/fiber/v2"

	"newsapi/internal/http/middleware"
	"newsapi/internal/model"
	"newsapi/internal/service"
)

type messageResponse struct {
	Message string `json:"message"`
}

// Login exchanges admin credentials for a bearer token.
//
//	@Summary	Admin login
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		body	body		model.Credentials	true	"credentials"
//	@Success	200		{object}	model.Session
//	@Failure	401		{object}	errorPayload
//	@Failure	422		{object}	errorPayload
//	@Router		/admin/login [post]
func Login(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Credentials
		if err := bindJSON(c, &in); err != nil {
			return err
		}
		sess, err := svc.Login(c.UserContext(), in.Email, in.Password)
		if err != nil {
			return err
		}
		return c.JSON(sess)
	}
}

// CreateSeedAdmin creates the admin account unless one with the email exists.
// Both outcomes are 200.
//
//	@Summary	Create seed admin
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		body	body		model.Credentials	true	"credentials"
//	@Success	200		{object}	messageResponse
//	@Failure	422		{object}	errorPayload
//	@Router		/admin/create_seed_admin [post]
func CreateSeedAdmin(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Credentials
		if err := bindJSON(c, &in); err != nil {
			return err
		}
		created, err := svc.CreateSeedAdmin(c.UserContext(), in.Email, in.Password)
		if err != nil {
			return err
		}
		if !created {
			return c.JSON(messageResponse{Message: "Admin already exists"})
		}
		return c.JSON(messageResponse{Message: "Admin created successfully"})
	}
}

// VerifySession echoes the identity stored by middleware.RequireAuth.
//
//	@Summary	Verify session token
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	model.Identity
//	@Failure	401	{object}	errorPayload
//	@Router		/admin/verify [get]
func VerifySession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := c.Locals(middleware.IdentityLocalKey).(*model.Identity)
		if !ok || id == nil {
			return service.ErrUnauthenticated
		}
		return c.JSON(id)
	}
}
