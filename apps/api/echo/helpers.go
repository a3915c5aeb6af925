package echoapi

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

type MessageResponse struct {
	Message string `json:"message"`
}

// paramID reads a positive integer path parameter. Anything else cannot name an existing
// entity, so notFound is returned instead.
func paramID(ctx echo.Context, name string, notFound error) (int, error) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id <= 0 {
		return 0, notFound
	}
	return id, nil
}
