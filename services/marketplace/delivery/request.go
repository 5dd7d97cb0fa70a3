package delivery

import (
	"strconv"

	"daansetu/config"
	"daansetu/domain"

	"github.com/gofiber/fiber/v2"
)

type requestHandler struct {
	ruc domain.RequestUseCase
}

// NewRequestDelivery registers both addressing schemes the request resource
// has always exposed: the collection root driven by an ?id= query parameter,
// and the /:id path form.
func NewRequestDelivery(app *fiber.App, uc domain.RequestUseCase) {
	handler := &requestHandler{
		ruc: uc,
	}

	route := app.Group("/requests")

	route.Get("/", handler.deliveryGetAllRequest)
	route.Post("/", handler.deliveryCreateRequest)
	route.Put("/", handler.deliveryReplaceRequest)
	route.Delete("/", handler.deliveryRemoveRequest)
	route.Get("/:id", handler.deliveryGetRequestByID)
	route.Patch("/:id", handler.deliveryPatchRequest)
	route.Delete("/:id", handler.deliveryDeleteRequest)
}

func (rh *requestHandler) deliveryGetAllRequest(c *fiber.Ctx) error {
	// Single-record fetch via ?id= predates the path form and is kept for
	// compatibility.
	if c.Query("id") != "" {
		id, err := parseQueryID(c)
		if err != nil {
			return respondError(c, err, "GetRequest")
		}

		request, err := rh.ruc.GetRequestSummaryByIDUC(c.Context(), id)
		if err != nil {
			return respondErrorBare(c, err, "GetRequest")
		}

		config.PrintLogInfo(fiber.StatusOK, "GetRequest")
		return c.Status(fiber.StatusOK).JSON(request)
	}

	limit, offset := parsePage(c)
	filter := domain.RequestFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Sort:   c.Query("sort", "createdAt"),
		Order:  c.Query("order", "desc"),
		Limit:  limit,
		Offset: offset,
	}

	if raw := c.Query("donationId"); raw != "" {
		donationID, err := strconv.Atoi(raw)
		if err != nil {
			config.PrintLogInfo(fiber.StatusBadRequest, "GetAllRequest")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Valid donation ID is required",
				"code":  "INVALID_DONATION_ID",
			})
		}
		filter.DonationID = &donationID
	}

	requests, err := rh.ruc.GetAllRequestUC(c.Context(), filter)
	if err != nil {
		return respondError(c, err, "GetAllRequest")
	}

	config.PrintLogInfo(fiber.StatusOK, "GetAllRequest")
	return c.Status(fiber.StatusOK).JSON(requests)
}

func (rh *requestHandler) deliveryCreateRequest(c *fiber.Ctx) error {
	var input domain.RequestInput
	if err := c.BodyParser(&input); err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "CreateRequest")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
			"code":  "INVALID_BODY",
		})
	}

	request, err := rh.ruc.CreateRequestUC(c.Context(), &input)
	if err != nil {
		return respondError(c, err, "CreateRequest")
	}

	config.PrintLogInfo(fiber.StatusCreated, "CreateRequest")
	return c.Status(fiber.StatusCreated).JSON(request)
}

func (rh *requestHandler) deliveryReplaceRequest(c *fiber.Ctx) error {
	id, err := parseQueryID(c)
	if err != nil {
		return respondError(c, err, "ReplaceRequest")
	}

	var payload domain.RequestUpdate
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "ReplaceRequest")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
			"code":  "INVALID_BODY",
		})
	}

	request, err := rh.ruc.UpdateRequestUC(c.Context(), id, &payload)
	if err != nil {
		return respondErrorBare(c, err, "ReplaceRequest")
	}

	config.PrintLogInfo(fiber.StatusOK, "ReplaceRequest")
	return c.Status(fiber.StatusOK).JSON(request)
}

func (rh *requestHandler) deliveryRemoveRequest(c *fiber.Ctx) error {
	id, err := parseQueryID(c)
	if err != nil {
		return respondError(c, err, "RemoveRequest")
	}

	request, err := rh.ruc.DeleteRequestUC(c.Context(), id)
	if err != nil {
		return respondErrorBare(c, err, "RemoveRequest")
	}

	config.PrintLogInfo(fiber.StatusOK, "RemoveRequest")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "Request deleted successfully",
		"deletedRecord": request,
	})
}

func (rh *requestHandler) deliveryGetRequestByID(c *fiber.Ctx) error {
	id, err := parsePathID(c)
	if err != nil {
		return respondError(c, err, "GetRequestByID")
	}

	request, err := rh.ruc.GetRequestByIDUC(c.Context(), id)
	if err != nil {
		return respondError(c, err, "GetRequestByID")
	}

	config.PrintLogInfo(fiber.StatusOK, "GetRequestByID")
	return c.Status(fiber.StatusOK).JSON(request)
}

func (rh *requestHandler) deliveryPatchRequest(c *fiber.Ctx) error {
	id, err := parsePathID(c)
	if err != nil {
		return respondError(c, err, "PatchRequest")
	}

	var payload domain.RequestUpdate
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "PatchRequest")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
			"code":  "INVALID_BODY",
		})
	}

	request, err := rh.ruc.PatchRequestUC(c.Context(), id, &payload)
	if err != nil {
		return respondError(c, err, "PatchRequest")
	}

	config.PrintLogInfo(fiber.StatusOK, "PatchRequest")
	return c.Status(fiber.StatusOK).JSON(request)
}

func (rh *requestHandler) deliveryDeleteRequest(c *fiber.Ctx) error {
	id, err := parsePathID(c)
	if err != nil {
		return respondError(c, err, "DeleteRequest")
	}

	request, err := rh.ruc.DeleteRequestUC(c.Context(), id)
	if err != nil {
		return respondError(c, err, "DeleteRequest")
	}

	config.PrintLogInfo(fiber.StatusOK, "DeleteRequest")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":        "Request deleted successfully",
		"deletedRequest": request,
	})
}
