package httpserver

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/rentalops/vehicle_rental/internal/logging"
	"github.com/rentalops/vehicle_rental/internal/service/search"
	"github.com/rentalops/vehicle_rental/internal/util"
)

type SearchHTTP struct {
	ES    *elasticsearch.Client
	Index string
}

func NewSearchHTTP(es *elasticsearch.Client) *SearchHTTP {
	return &SearchHTTP{ES: es, Index: search.VehicleIndex}
}

func (h *SearchHTTP) SearchVehicles(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "vehicles_search")

	if h.ES == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "search is not configured")
	}

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q query parameter is required")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, limit := util.Calculate(page, size)

	total, vehicles, err := search.Search(ctx, h.ES, h.Index, q, from, limit)
	if err != nil {
		l.Error("vehicles_search_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search unavailable")
	}

	return c.JSON(http.StatusOK, echo.Map{"total": total, "vehicles": vehicles})
}
