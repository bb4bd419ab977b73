package routes

import "github.com/gin-gonic/gin"

const (
	PathAuth     = "/auth"
	PathOrders   = "/orders"
	PathExpenses = "/expenses"
	PathSettings = "/settings"
)

func addLaundryRoutes(rg *gin.RouterGroup, h Handlers) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", h.Auth.Login)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", h.Orders.CreateOrder)
		orders.GET("", h.Orders.ListOrders)
		orders.GET("/:id", h.Orders.GetOrder)
		orders.PATCH("/:id/status", h.Orders.TransitionOrder)
		orders.POST("/:id/notification/refresh", h.Orders.RefreshNotification)
	}

	expenses := rg.Group(PathExpenses)
	{
		expenses.POST("", h.Expenses.CreateExpense)
		expenses.GET("", h.Expenses.ListExpenses)
	}

	rg.GET("/summary", h.Dashboard.GetSummary)
	rg.GET("/pricing", h.Dashboard.GetPricing)

	settings := rg.Group(PathSettings)
	{
		settings.GET("/integration", h.Settings.GetIntegration)
		settings.PUT("/integration", h.Settings.UpdateIntegration)
	}
}
