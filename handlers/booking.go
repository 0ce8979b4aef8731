package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"booking-api/errors"
	"booking-api/model"
	"booking-api/repository"
	"booking-api/schema"
)

// BookingHandler is the HTTP glue for the bookings collection.
type BookingHandler struct {
	repo *repository.BookingRepository
}

func NewBookingHandler(repo *repository.BookingRepository) *BookingHandler {
	return &BookingHandler{repo: repo}
}

func (h *BookingHandler) List(c *fiber.Ctx) error {
	opt, err := parseListOptions(c, "date")
	if err != nil {
		return errors.Respond(c, err)
	}

	filter := repository.BookingFilter{
		ServiceID:    c.Query("service_id"),
		CustomerName: c.Query("customer_name"),
	}
	if raw := c.Query("status"); raw != "" {
		status := model.BookingStatus(raw)
		if !status.Valid() {
			return errors.RaiseUnprocessableError(c, fmt.Sprintf("unknown booking status %q", raw))
		}
		filter.Status = status
	}
	if filter.DateFrom, err = parseDateQuery(c, "date_from"); err != nil {
		return errors.Respond(c, err)
	}
	if filter.DateTo, err = parseDateQuery(c, "date_to"); err != nil {
		return errors.Respond(c, err)
	}

	bookings, total, err := h.repo.List(c.Context(), opt, filter)
	if err != nil {
		return errors.Respond(c, err)
	}

	return c.JSON(schema.NewBookingList(bookings, total, pageNumber(opt), int(opt.Limit)))
}

// ListByService serves GET /services/:id/bookings, ordered by date.
func (h *BookingHandler) ListByService(c *fiber.Ctx) error {
	opt, err := parseListOptions(c, "date")
	if err != nil {
		return errors.Respond(c, err)
	}

	bookings, total, err := h.repo.ListByService(c.Context(), c.Params("id"), opt.Skip, opt.Limit)
	if err != nil {
		return errors.Respond(c, err)
	}

	return c.JSON(schema.NewBookingList(bookings, total, pageNumber(opt), int(opt.Limit)))
}

func (h *BookingHandler) Create(c *fiber.Ctx) error {
	body := new(schema.BookingCreate)
	if err := c.BodyParser(body); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable booking parameters: %v", err))
	}
	if err := body.Validate(); err != nil {
		return errors.Respond(c, err)
	}

	booking, err := h.repo.Create(c.Context(), *body)
	if err != nil {
		return errors.Respond(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(schema.NewBookingResponse(booking))
}

func (h *BookingHandler) Get(c *fiber.Ctx) error {
	booking, err := h.repo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(schema.NewBookingResponse(booking))
}

func (h *BookingHandler) Update(c *fiber.Ctx) error {
	body := new(schema.BookingUpdate)
	if err := c.BodyParser(body); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable booking parameters: %v", err))
	}
	if err := body.Validate(); err != nil {
		return errors.Respond(c, err)
	}

	booking, err := h.repo.Update(c.Context(), c.Params("id"), *body)
	if err != nil {
		return errors.Respond(c, err)
	}

	return c.JSON(schema.NewBookingResponse(booking))
}

// UpdateStatus serves PATCH /bookings/:id/status, a status-only update.
func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	body := new(schema.BookingStatusUpdate)
	if err := c.BodyParser(body); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable booking parameters: %v", err))
	}
	if err := body.Validate(); err != nil {
		return errors.Respond(c, err)
	}

	booking, err := h.repo.UpdateStatus(c.Context(), c.Params("id"), body.Status)
	if err != nil {
		return errors.Respond(c, err)
	}

	return c.JSON(schema.NewBookingResponse(booking))
}

func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Context(), c.Params("id")); err != nil {
		return errors.Respond(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
