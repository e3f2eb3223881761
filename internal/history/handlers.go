package history

import (
	"time"

	"backend-runcity/internal/goal"

	"github.com/gofiber/fiber/v2"
)

type statsResponse struct {
	Stats
	DailyGoalRatio   float64      `json:"daily_goal_ratio"`
	DailyGoalSeconds int          `json:"daily_goal_seconds"`
	City             CityProgress `json:"city"`
}

func RegisterRoutes(r fiber.Router, svc *Service, goals *goal.Service, authMiddleware fiber.Handler) {
	r.Get("/stats", authMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		stats, err := svc.Stats(c.Context(), userID, time.Now())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		progress := goals.Load(c.Context(), userID)
		return c.JSON(statsResponse{
			Stats:            stats,
			DailyGoalRatio:   progress.Ratio(),
			DailyGoalSeconds: goal.DailyGoalSeconds,
			City:             CityFor(stats.TotalWorkouts),
		})
	})

	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		sessions, err := svc.List(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(sessions)
	})

	r.Get("/:id/route", authMiddleware, func(c *fiber.Ctx) error {
		route, err := svc.Route(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(route)
	})
}
