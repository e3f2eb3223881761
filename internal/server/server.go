package server

import (
	"backend-runcity/internal/auth"
	"backend-runcity/internal/config"
	"backend-runcity/internal/goal"
	"backend-runcity/internal/history"
	"backend-runcity/internal/notify"
	"backend-runcity/internal/profile"
	"backend-runcity/internal/stream"
	"backend-runcity/internal/tracking"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App    *fiber.App
	Cfg    config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Stream *stream.Hub
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     db,
		Redis:  redisClient,
		Stream: stream.NewHub(redisClient),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)

	goals := goal.NewService(s.Redis)
	historySvc := history.NewService(s.DB)
	trackingSvc := tracking.NewService(historySvc, goals, notify.NewService(s.Redis), s.Stream)

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, s.DB))
	profile.RegisterRoutes(s.App.Group("/profiles"), profile.NewService(s.DB), jwtMiddleware)
	tracking.RegisterRoutes(s.App.Group("/workouts"), trackingSvc, jwtMiddleware)
	history.RegisterRoutes(s.App.Group("/history"), historySvc, goals, jwtMiddleware)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}
