package handler

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtracker-api/internal/core/domain"
)

// pageParams reads page/limit from the query string. Zero values are
// normalized to the defaults by the service layer.
func pageParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}

// sortParams reads the sort field and direction from the query string.
func sortParams(c echo.Context) (field, order string) {
	return c.QueryParam("sort"), c.QueryParam("order")
}

// filterParam resolves an enum-valued filter parameter. An omitted parameter
// or the value "all" both mean "no filter". An explicitly empty value is
// rejected: it must not silently match everything.
func filterParam(c echo.Context, name string) (string, error) {
	if !c.QueryParams().Has(name) {
		return "", nil
	}
	v := c.QueryParam(name)
	if v == "all" {
		return "", nil
	}
	if v == "" {
		return "", domain.NewValidationError(domain.FieldError{
			Field:   name,
			Message: fmt.Sprintf(`%s must not be empty; omit it or pass "all"`, name),
		})
	}
	return v, nil
}

func statusParam(c echo.Context) (string, error) {
	return filterParam(c, "status")
}

// ratingParam reads the optional rating filter; 0 means no filter.
func ratingParam(c echo.Context) int {
	rating, _ := strconv.Atoi(c.QueryParam("rating"))
	return rating
}
