package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rentalops/vehicle_rental/internal/middleware"
)

// HTTPErrorHandler renders every failure as {"error": ...} JSON; validation
// failures additionally carry the field-level details list. Internals never
// reach the client.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var verr *middleware.ValidationError
	if errors.As(err, &verr) {
		_ = c.JSON(http.StatusBadRequest, echo.Map{
			"error":   verr.Error(),
			"details": verr.Details,
		})
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, ok := he.Message.(string)
		if !ok {
			msg = fmt.Sprint(he.Message)
		}
		_ = c.JSON(he.Code, echo.Map{"error": msg})
		return
	}

	_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error"})
}

func parseID(c echo.Context, name string) (uint, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	return uint(v), nil
}
