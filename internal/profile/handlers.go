package profile

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req Profile
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		req.UserID, _ = c.Locals("user_id").(string)
		if req.DisplayName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "display_name required")
		}
		created, err := svc.CreateProfile(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		p, err := svc.GetProfile(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "profile not found")
		}
		return c.JSON(p)
	})

	r.Patch("/", authMiddleware, func(c *fiber.Ctx) error {
		var patch UpdateParams
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		userID, _ := c.Locals("user_id").(string)
		if patch.Empty() {
			p, err := svc.GetProfile(c.Context(), userID)
			if err != nil {
				return fiber.NewError(fiber.StatusNotFound, "profile not found")
			}
			return c.JSON(p)
		}
		p, err := svc.UpdateProfile(c.Context(), userID, patch)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(p)
	})

	r.Delete("/", authMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		if err := svc.DeleteProfile(c.Context(), userID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
