package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"booking-api/repository"
	"booking-api/schema"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

// parseListOptions reads the shared pagination and sorting query
// parameters; out-of-range values fail validation.
func parseListOptions(c *fiber.Ctx, defaultSort string) (repository.ListOptions, error) {
	opt := repository.ListOptions{
		Skip:          int64(queryInt(c, "skip", 0)),
		Limit:         int64(queryInt(c, "limit", defaultLimit)),
		SortBy:        c.Query("sort_by", defaultSort),
		SortDirection: queryInt(c, "sort_direction", 1),
	}

	if opt.Skip < 0 {
		return opt, schema.Invalidf("skip must be non-negative")
	}
	if opt.Limit < 1 || opt.Limit > maxLimit {
		return opt, schema.Invalidf("limit must be between 1 and %d", maxLimit)
	}
	if opt.SortDirection != 1 && opt.SortDirection != -1 {
		return opt, schema.Invalidf("sort_direction must be 1 or -1")
	}

	return opt, nil
}

// queryInt reads an integer query parameter, falling back when the
// parameter is absent or not a number.
func queryInt(c *fiber.Ctx, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return val
}

func pageNumber(opt repository.ListOptions) int {
	return int(opt.Skip/opt.Limit) + 1
}

// parseDateQuery reads an optional RFC 3339 timestamp query parameter.
func parseDateQuery(c *fiber.Ctx, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, schema.Invalidf("%s must be an RFC 3339 timestamp", key)
	}
	return &t, nil
}
