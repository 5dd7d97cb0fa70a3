package delivery

import (
	"errors"
	"strconv"

	"daansetu/config"
	"daansetu/domain"

	"github.com/gofiber/fiber/v2"
)

// respondError maps the error taxonomy onto the wire contract: validation
// errors are 400 with a code, not-found is 404 (code only where the resource
// defines one), everything else is a 500 that echoes the failure text.
func respondError(c *fiber.Ctx, err error, functionName string) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		config.PrintLogInfo(fiber.StatusBadRequest, functionName)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": vErr.Message,
			"code":  vErr.Code,
		})
	}

	var nfErr *domain.NotFoundError
	if errors.As(err, &nfErr) {
		config.PrintLogInfo(fiber.StatusNotFound, functionName)
		body := fiber.Map{"error": nfErr.Error()}
		if nfErr.Code != "" {
			body["code"] = nfErr.Code
		}
		return c.Status(fiber.StatusNotFound).JSON(body)
	}

	config.PrintLogInfo(fiber.StatusInternalServerError, functionName)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error: " + err.Error(),
	})
}

// respondErrorBare is respondError for the query-addressed request routes,
// whose 404 bodies never carried a code.
func respondErrorBare(c *fiber.Ctx, err error, functionName string) error {
	var nfErr *domain.NotFoundError
	if errors.As(err, &nfErr) {
		config.PrintLogInfo(fiber.StatusNotFound, functionName)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": nfErr.Error()})
	}
	return respondError(c, err, functionName)
}

var errInvalidID = domain.Invalid("INVALID_ID", "Valid ID is required")

func parsePathID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}

func parseQueryID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}

// parsePage applies the listing defaults: limit 10 capped at 100, offset 0.
func parsePage(c *fiber.Ctx) (int, int) {
	limit := 10
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		limit = v
	}
	if limit > 100 {
		limit = 100
	}
	if limit < 0 {
		limit = 0
	}

	offset := 0
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		offset = v
	}

	return limit, offset
}
