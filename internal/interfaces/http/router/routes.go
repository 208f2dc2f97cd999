package router

import (
	"github.com/gin-gonic/gin"
	"github.com/merza/backend/internal/interfaces/http/handler"
)

// APIRoutes bundles all business handlers into a single registrar.
type APIRoutes struct {
	Leads     *handler.LeadHandler
	Customers *handler.CustomerHandler
	Invoices  *handler.InvoiceHandler
	Payments  *handler.PaymentHandler
	Accounts  *handler.AccountHandler
	Dashboard *handler.DashboardHandler
	Contact   *handler.ContactHandler
}

// RegisterRoutes implements RouteRegistrar.
func (r *APIRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	leads := rg.Group("/leads")
	{
		leads.GET("", r.Leads.List)
		leads.POST("", r.Leads.Add)
		leads.POST("/edit", r.Leads.Edit)
		leads.DELETE("/:id", r.Leads.Delete)
		leads.POST("/:id/convert", r.Leads.Convert)
	}

	customers := rg.Group("/customers")
	{
		customers.GET("", r.Customers.List)
		customers.POST("", r.Customers.Add)
		customers.POST("/edit", r.Customers.Edit)
		customers.DELETE("/:id", r.Customers.Delete)
	}

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", r.Invoices.List)
		invoices.POST("", r.Invoices.Add)
		invoices.POST("/custom", r.Invoices.AddCustom)
		invoices.POST("/edit", r.Invoices.Edit)
		invoices.GET("/summary", r.Invoices.Summary)
		invoices.DELETE("/:id", r.Invoices.Delete)
		invoices.POST("/:id/mark-sent", r.Invoices.MarkSent)
		invoices.POST("/:id/mark-paid", r.Invoices.MarkPaid)
	}

	payments := rg.Group("/payments")
	{
		payments.GET("", r.Payments.List)
		payments.POST("", r.Payments.Add)
	}

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", r.Accounts.List)
		accounts.POST("", r.Accounts.Add)
		accounts.POST("/:id/edit", r.Accounts.Edit)
		accounts.DELETE("/:id", r.Accounts.Delete)
	}

	rg.GET("/dashboard/metrics", r.Dashboard.Metrics)
	rg.POST("/contact", r.Contact.Submit)
}
