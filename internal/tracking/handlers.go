package tracking

import (
	"time"

	"backend-runcity/internal/workout"

	"github.com/gofiber/fiber/v2"
)

type startRequest struct {
	WorkoutType workout.Type `json:"workout_type"`
}

type endRequest struct {
	AvgHeartRate int `json:"avg_heart_rate"`
	MaxHeartRate int `json:"max_heart_rate"`
}

type ingestResponse struct {
	Accepted bool             `json:"accepted"`
	Metrics  workout.Snapshot `json:"metrics"`
}

func userID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/start", authMiddleware, func(c *fiber.Ctx) error {
		var req startRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if !req.WorkoutType.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "valid workout_type required")
		}

		session, created := svc.Start(userID(c), req.WorkoutType)
		if !created {
			// session already running; return it unchanged
			return c.JSON(session)
		}
		return c.Status(fiber.StatusCreated).JSON(session)
	})

	r.Post("/pause", authMiddleware, func(c *fiber.Ctx) error {
		snap, _ := svc.Pause(userID(c))
		return c.JSON(snap)
	})

	r.Post("/resume", authMiddleware, func(c *fiber.Ctx) error {
		snap, _ := svc.Resume(userID(c))
		return c.JSON(snap)
	})

	r.Post("/end", authMiddleware, func(c *fiber.Ctx) error {
		var req endRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
		}

		session, ok := svc.End(c.Context(), userID(c), req.AvgHeartRate, req.MaxHeartRate)
		if !ok {
			return c.JSON(fiber.Map{"state": workout.StateIdle})
		}
		return c.JSON(session)
	})

	r.Post("/locations", authMiddleware, func(c *fiber.Ctx) error {
		var sample workout.LocationSample
		if err := c.BodyParser(&sample); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if sample.Timestamp.IsZero() {
			sample.Timestamp = time.Now()
		}

		accepted, snap := svc.Ingest(userID(c), sample)
		return c.JSON(ingestResponse{Accepted: accepted, Metrics: snap})
	})

	r.Get("/current", authMiddleware, func(c *fiber.Ctx) error {
		snap, active := svc.Current(userID(c))
		if !active {
			return fiber.NewError(fiber.StatusNotFound, "no active workout")
		}
		return c.JSON(snap)
	})
}
