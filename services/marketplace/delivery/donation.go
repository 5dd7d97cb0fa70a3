package delivery

import (
	"daansetu/config"
	"daansetu/domain"

	"github.com/gofiber/fiber/v2"
)

type donationHandler struct {
	duc domain.DonationUseCase
}

func NewDonationDelivery(app *fiber.App, uc domain.DonationUseCase) {
	handler := &donationHandler{
		duc: uc,
	}

	route := app.Group("/donations")

	route.Get("/", handler.deliveryGetAllDonation)
	route.Post("/", handler.deliveryCreateDonation)
	route.Get("/:id", handler.deliveryGetDonationByID)
	route.Put("/:id", handler.deliveryModifyDonation)
	route.Delete("/:id", handler.deliveryDeleteDonation)
}

func (dh *donationHandler) deliveryGetAllDonation(c *fiber.Ctx) error {
	limit, offset := parsePage(c)
	filter := domain.DonationFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Limit:    limit,
		Offset:   offset,
	}

	donations, err := dh.duc.GetAllDonationUC(c.Context(), filter)
	if err != nil {
		return respondError(c, err, "GetAllDonation")
	}

	config.PrintLogInfo(fiber.StatusOK, "GetAllDonation")
	return c.Status(fiber.StatusOK).JSON(donations)
}

func (dh *donationHandler) deliveryCreateDonation(c *fiber.Ctx) error {
	var input domain.DonationInput
	if err := c.BodyParser(&input); err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "CreateDonation")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
			"code":  "INVALID_BODY",
		})
	}

	donation, err := dh.duc.CreateDonationUC(c.Context(), &input)
	if err != nil {
		return respondError(c, err, "CreateDonation")
	}

	config.PrintLogInfo(fiber.StatusCreated, "CreateDonation")
	return c.Status(fiber.StatusCreated).JSON(donation)
}

func (dh *donationHandler) deliveryGetDonationByID(c *fiber.Ctx) error {
	id, err := parsePathID(c)
	if err != nil {
		return respondError(c, err, "GetDonationByID")
	}

	donation, err := dh.duc.GetDonationByIDUC(c.Context(), id)
	if err != nil {
		return respondError(c, err, "GetDonationByID")
	}

	config.PrintLogInfo(fiber.StatusOK, "GetDonationByID")
	return c.Status(fiber.StatusOK).JSON(donation)
}

func (dh *donationHandler) deliveryModifyDonation(c *fiber.Ctx) error {
	id, err := parsePathID(c)
	if err != nil {
		return respondError(c, err, "ModifyDonation")
	}

	var payload domain.DonationUpdate
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(fiber.StatusBadRequest, "ModifyDonation")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
			"code":  "INVALID_BODY",
		})
	}

	donation, err := dh.duc.UpdateDonationUC(c.Context(), id, &payload)
	if err != nil {
		return respondError(c, err, "ModifyDonation")
	}

	config.PrintLogInfo(fiber.StatusOK, "ModifyDonation")
	return c.Status(fiber.StatusOK).JSON(donation)
}

func (dh *donationHandler) deliveryDeleteDonation(c *fiber.Ctx) error {
	id, err := parsePathID(c)
	if err != nil {
		return respondError(c, err, "DeleteDonation")
	}

	donation, err := dh.duc.DeleteDonationUC(c.Context(), id)
	if err != nil {
		return respondError(c, err, "DeleteDonation")
	}

	config.PrintLogInfo(fiber.StatusOK, "DeleteDonation")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Donation deleted successfully",
		"donation": donation,
	})
}
