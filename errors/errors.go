package errors

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"booking-api/model"
	"booking-api/repository"
	"booking-api/schema"
)

// Raise writes the error body shape all endpoints share.
func Raise(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(fiber.Map{"detail": detail})
}

func RaiseBadRequestError(c *fiber.Ctx, detail string) error {
	return Raise(c, fiber.StatusBadRequest, detail)
}

func RaiseNotFoundError(c *fiber.Ctx, detail string) error {
	return Raise(c, fiber.StatusNotFound, detail)
}

func RaiseConflictError(c *fiber.Ctx, detail string) error {
	return Raise(c, fiber.StatusConflict, detail)
}

func RaiseUnprocessableError(c *fiber.Ctx, detail string) error {
	return Raise(c, fiber.StatusUnprocessableEntity, detail)
}

func RaiseInternalServerError(c *fiber.Ctx, detail string) error {
	return Raise(c, fiber.StatusInternalServerError, detail)
}

// Respond maps a repository or validation outcome to its status code:
// invalid identifier 400, not found 404, duplicate key 409, failed
// validation 422, anything else 500.
func Respond(c *fiber.Ctx, err error) error {
	var validationErr *schema.ValidationError
	switch {
	case stderrors.Is(err, model.ErrInvalidID):
		return RaiseBadRequestError(c, err.Error())
	case stderrors.Is(err, repository.ErrNotFound):
		return RaiseNotFoundError(c, err.Error())
	case stderrors.Is(err, repository.ErrDuplicateKey):
		return RaiseConflictError(c, err.Error())
	case stderrors.As(err, &validationErr):
		return RaiseUnprocessableError(c, validationErr.Detail)
	default:
		return RaiseInternalServerError(c, "internal server error")
	}
}
