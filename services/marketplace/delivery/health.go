package delivery

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type healthHandler struct {
	db *pgxpool.Pool
}

func NewHealthDelivery(app *fiber.App, db *pgxpool.Pool) {
	handler := &healthHandler{
		db: db,
	}

	app.Get("/healthz", handler.deliveryHealthz)
}

func (hh *healthHandler) deliveryHealthz(c *fiber.Ctx) error {
	if err := hh.db.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"error":  err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ok",
	})
}
