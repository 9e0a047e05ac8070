package api

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"realty/internal/api/handlers"
)

func SetupRoutes(e *echo.Echo, db *sqlx.DB) {
	e.GET("/health", healthCheck)

	e.Validator = NewValidator()

	apiGroup := e.Group("/api")

	customerHandler := handlers.NewCustomerHandler(db)
	customers := apiGroup.Group("/customers")
	customers.GET("", customerHandler.GetAll)
	customers.GET("/:id", customerHandler.GetByID)
	customers.POST("", customerHandler.Create)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)

	categoryHandler := handlers.NewCategoryHandler(db)
	categories := apiGroup.Group("/categories")
	categories.GET("", categoryHandler.GetAll)
	categories.GET("/:id", categoryHandler.GetByID)
	categories.POST("", categoryHandler.Create)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)

	locationHandler := handlers.NewLocationHandler(db)
	locations := apiGroup.Group("/locations")
	locations.GET("", locationHandler.GetAll)
	locations.GET("/:id", locationHandler.GetByID)
	locations.POST("", locationHandler.Create)
	locations.PUT("/:id", locationHandler.Update)
	locations.DELETE("/:id", locationHandler.Delete)

	propertyHandler := handlers.NewPropertyHandler(db)
	properties := apiGroup.Group("/properties")
	properties.GET("", propertyHandler.GetAll)
	properties.GET("/:id", propertyHandler.GetByID)
	properties.POST("", propertyHandler.Create)
	properties.PUT("/:id", propertyHandler.Update)
	properties.DELETE("/:id", propertyHandler.Delete)

	invoiceHandler := handlers.NewInvoiceHandler(db)
	invoices := apiGroup.Group("/invoices")
	invoices.GET("", invoiceHandler.GetAll)
	invoices.GET("/:id", invoiceHandler.GetByID)
	invoices.POST("", invoiceHandler.Create)
	invoices.PUT("/:id", invoiceHandler.Update)
	invoices.DELETE("/:id", invoiceHandler.Delete)
}

func healthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
