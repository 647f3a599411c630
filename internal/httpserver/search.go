package httpserver

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/labstack/echo/v4"

	"github.com/trendyfy/storefront/internal/logging"
	"github.com/trendyfy/storefront/internal/service/search"
	"github.com/trendyfy/storefront/internal/util"
)

type SearchHTTP struct {
	ES    *elasticsearch.Client
	Index string
}

func (h *SearchHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	q := c.QueryParam("q")
	if q == "" {
		return errorJSON(c, http.StatusBadRequest, "Query is required")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, limit := util.Calculate(page, size)

	total, products, err := search.Products(ctx, h.ES, h.Index, q, from, limit)
	if err != nil {
		l.Error("search_error", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "Server error searching products")
	}

	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
}
