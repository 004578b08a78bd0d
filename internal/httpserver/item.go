package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ufo_delivery/internal/logging"
	"github.com/Skotchmaster/ufo_delivery/internal/search"
	"github.com/Skotchmaster/ufo_delivery/internal/service"
	"github.com/Skotchmaster/ufo_delivery/internal/transport"
)

type ItemHTTP struct {
	Svc    *service.CatalogService
	Search *search.Service
}

func (h *ItemHTTP) GetItems(c echo.Context) error {
	ctx := c.Request().Context()

	var categoryID *uint
	if raw := c.QueryParam("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid category_id")
		}
		v := uint(id)
		categoryID = &v
	}

	items, err := h.Svc.GetAll(ctx, categoryID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, transport.ItemsToDTO(items))
}

func (h *ItemHTTP) GetCategories(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := h.Svc.GetCategories(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, transport.CategoriesToDTO(categories))
}

func (h *ItemHTTP) GetItem(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := itemID(c)
	if err != nil {
		return err
	}

	item, err := h.Svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Item not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, transport.ItemToDTO(item))
}

func (h *ItemHTTP) SearchItems(c echo.Context) error {
	ctx := c.Request().Context()

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}
	from := intQueryDefault(c, "from", 0)
	size := intQueryDefault(c, "size", 20)

	total, items, err := h.Search.Search(ctx, q, from, size)
	if err != nil {
		if errors.Is(err, search.ErrUnavailable) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "search is not configured")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, transport.SearchItemsResponse{
		Total: total,
		Items: items,
	})
}

func (h *ItemHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "item.create")

	var req transport.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.Create(ctx, req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, transport.ItemToDTO(item))
}

func (h *ItemHTTP) Edit(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "item.edit")

	id, err := itemID(c)
	if err != nil {
		return err
	}

	var req transport.EditItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("edit_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.Edit(ctx, id, req)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Item not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, transport.ItemToDTO(item))
}

func (h *ItemHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := itemID(c)
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Item not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, transport.DeleteItemResponse{Success: true})
}

func itemID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid item id")
	}
	return uint(id), nil
}

func intQueryDefault(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}
