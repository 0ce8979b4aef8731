package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"booking-api/errors"
	"booking-api/repository"
	"booking-api/schema"
)

// ServiceHandler is the HTTP glue for the services collection: it enforces
// input shape, delegates to the repository and maps outcomes to status codes.
type ServiceHandler struct {
	repo *repository.ServiceRepository
}

func NewServiceHandler(repo *repository.ServiceRepository) *ServiceHandler {
	return &ServiceHandler{repo: repo}
}

func (h *ServiceHandler) List(c *fiber.Ctx) error {
	opt, err := parseListOptions(c, "name")
	if err != nil {
		return errors.Respond(c, err)
	}
	filter := repository.ServiceFilter{Category: c.Query("category")}

	services, total, err := h.repo.List(c.Context(), opt, filter)
	if err != nil {
		return errors.Respond(c, err)
	}

	return c.JSON(schema.NewServiceList(services, total, pageNumber(opt), int(opt.Limit)))
}

func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	body := new(schema.ServiceCreate)
	if err := c.BodyParser(body); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable service parameters: %v", err))
	}
	if err := body.Validate(); err != nil {
		return errors.Respond(c, err)
	}

	service, err := h.repo.Create(c.Context(), *body)
	if err != nil {
		return errors.Respond(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(schema.NewServiceResponse(service))
}

func (h *ServiceHandler) Get(c *fiber.Ctx) error {
	service, err := h.repo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return errors.Respond(c, err)
	}
	return c.JSON(schema.NewServiceResponse(service))
}

func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	body := new(schema.ServiceUpdate)
	if err := c.BodyParser(body); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("unacceptable service parameters: %v", err))
	}
	if err := body.Validate(); err != nil {
		return errors.Respond(c, err)
	}

	service, err := h.repo.Update(c.Context(), c.Params("id"), *body)
	if err != nil {
		return errors.Respond(c, err)
	}

	return c.JSON(schema.NewServiceResponse(service))
}

func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Context(), c.Params("id")); err != nil {
		return errors.Respond(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
