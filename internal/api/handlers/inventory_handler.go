package handlers

import (
	"strconv"

	"ecotrack/domain"
	"ecotrack/internal/api/presenters"
	"ecotrack/pkg/inventory"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InventoryHandler interface {
		AddItem(c *fiber.Ctx) error
		GetItems(c *fiber.Ctx) error
		GetItem(c *fiber.Ctx) error
		GetWarnings(c *fiber.Ctx) error
		MarkConsumed(c *fiber.Ctx) error
		MarkWasted(c *fiber.Ctx) error
	}

	inventoryHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewInventoryHandler(inventoryService inventory.InventoryService, validator *validator.Validate) InventoryHandler {
	return &inventoryHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *inventoryHandler) AddItem(c *fiber.Ctx) error {
	req := new(domain.AddInventoryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddInventoryItem, err)
	}

	res, err := h.inventoryService.AddItem(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedAddInventoryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddInventoryItem)
}

func (h *inventoryHandler) GetItems(c *fiber.Ctx) error {
	includeConsumed := c.QueryBool("include_consumed", false)

	items, err := h.inventoryService.ListItems(c.UserContext(), includeConsumed)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetInventoryItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetInventoryItems)
}

func (h *inventoryHandler) GetItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	item, err := h.inventoryService.GetItem(c.UserContext(), itemID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetInventoryItem, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetInventoryItem)
}

func (h *inventoryHandler) GetWarnings(c *fiber.Ctx) error {
	window, err := strconv.Atoi(c.Query("window", strconv.Itoa(domain.DefaultWarningWindowDays)))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetExpiryWarnings, domain.ErrInvalidWarningWindow)
	}

	warnings, err := h.inventoryService.UpcomingWarnings(c.UserContext(), window)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetExpiryWarnings, err)
	}

	return presenters.SuccessResponse(c, warnings, fiber.StatusOK, domain.MessageSuccessGetExpiryWarnings)
}

func (h *inventoryHandler) MarkConsumed(c *fiber.Ctx) error {
	itemID := c.Params("id")

	item, err := h.inventoryService.MarkConsumed(c.UserContext(), itemID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedMarkConsumed, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessMarkConsumed)
}

func (h *inventoryHandler) MarkWasted(c *fiber.Ctx) error {
	itemID := c.Params("id")

	entry, err := h.inventoryService.MarkWasted(c.UserContext(), itemID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedMarkWasted, err)
	}

	return presenters.SuccessResponse(c, entry, fiber.StatusOK, domain.MessageSuccessMarkWasted)
}
