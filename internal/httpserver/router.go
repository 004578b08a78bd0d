package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	middleware "github.com/Skotchmaster/ufo_delivery/internal/middleware/auth"
)

type Deps struct {
	AuthHandler  *AuthHTTP
	UserHandler  *UserHTTP
	ItemHandler  *ItemHTTP
	OrderHandler *OrderHTTP
	Auth         *middleware.AuthMiddleware
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	auth := e.Group("/auth")
	auth.POST("/login", d.AuthHandler.Login)

	user := e.Group("/user")
	user.POST("/create", d.UserHandler.Create)
	user.POST("/login", d.AuthHandler.Login)
	user.GET("", d.UserHandler.Get, d.Auth.RequireUser)
	user.PUT("", d.UserHandler.Edit, d.Auth.RequireUser)
	user.GET("/address", d.UserHandler.GetAddress, d.Auth.RequireUser)
	user.PUT("/address", d.UserHandler.EditAddress, d.Auth.RequireUser)

	item := e.Group("/item")
	item.GET("/items", d.ItemHandler.GetItems)
	item.GET("/categories", d.ItemHandler.GetCategories)
	item.GET("/search", d.ItemHandler.SearchItems)
	item.GET("/:id", d.ItemHandler.GetItem)

	admin := item.Group("", d.Auth.RequireSuperuser)
	admin.POST("", d.ItemHandler.Create)
	admin.PUT("/:id", d.ItemHandler.Edit)
	admin.DELETE("/:id", d.ItemHandler.Delete)

	order := e.Group("/order", d.Auth.RequireUser)
	order.GET("", d.OrderHandler.Get)
	order.PUT("/add-item", d.OrderHandler.AddItem)
	order.PUT("/remove-item", d.OrderHandler.RemoveItem)
	order.POST("/place", d.OrderHandler.Place)
}
