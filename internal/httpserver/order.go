package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/ufo_delivery/internal/logging"
	middleware "github.com/Skotchmaster/ufo_delivery/internal/middleware/auth"
	"github.com/Skotchmaster/ufo_delivery/internal/service"
	"github.com/Skotchmaster/ufo_delivery/internal/transport"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "failed to validate credentials")
	}

	order, err := h.Svc.GetOrCreate(ctx, user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, transport.OrderToDTO(order))
}

func (h *OrderHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.add_item")

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "failed to validate credentials")
	}

	var req transport.AddItemToOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.AddItem(ctx, user.ID, req.ItemID)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Item not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, transport.OrderToDTO(order))
}

func (h *OrderHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.remove_item")

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "failed to validate credentials")
	}

	var req transport.RemoveItemFromOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("remove_item_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Svc.GetOrCreate(ctx, user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	order, err = h.Svc.RemoveItem(ctx, order.ID, req.ItemID)
	if err != nil {
		if errors.Is(err, service.ErrItemNotInOrder) {
			return echo.NewHTTPError(http.StatusNotFound, "Item not in Order")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, transport.OrderToDTO(order))
}

func (h *OrderHTTP) Place(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.place")

	user, err := middleware.CurrentUser(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "failed to validate credentials")
	}

	order, err := h.Svc.Place(ctx, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrOrderIsEmpty) {
			l.Warn("place_error", "status", 400, "reason", "order is empty")
			return echo.NewHTTPError(http.StatusBadRequest, "Order is empty")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, transport.OrderToDTO(order))
}
