package routes

import (
	"easydrive_booking/internal/adapter/http/handlers"
	"easydrive_booking/internal/adapter/http/middleware"
	"easydrive_booking/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes      = "/quotes"
	PathExtractions = "/extractions"
	PathDrafts      = "/drafts"
	PathOrders      = "/orders"
	PathTrack       = "/track"
	PathPayments    = "/payments"
	PathReceipts    = "/receipts"
	PathPricing     = "/pricing"
)

type bookingHandlers struct {
	quotes     *handlers.QuoteHandler
	extraction *handlers.ExtractionHandler
	drafts     *handlers.DraftHandler
	orders     *handlers.OrderHandler
	payments   *handlers.PaymentHandler
	receipts   *handlers.ReceiptHandler
	pricing    *handlers.PricingHandler
}

func addBookingRoutes(rg *gin.RouterGroup, h bookingHandlers, identityProvider interfaces.IIdentityProvider) {
	auth := middleware.RequireAuth(identityProvider)
	staff := middleware.RequireStaff()

	rg.POST(PathQuotes, h.quotes.CreateQuote)
	rg.POST(PathExtractions, h.extraction.ExtractDocument)
	rg.GET(PathTrack, h.orders.Track)

	drafts := rg.Group(PathDrafts, auth)
	{
		drafts.POST("", h.drafts.SaveDraft)
		drafts.GET("", h.drafts.ListDrafts)
		drafts.GET("/:id", h.drafts.GetDraft)
		drafts.DELETE("/:id", h.drafts.DeleteDraft)
		drafts.PUT("/:id/documents", h.drafts.AttachDocuments)
		drafts.GET("/:id/documents", h.drafts.ListDocuments)
	}

	orders := rg.Group(PathOrders, auth)
	{
		orders.POST("", h.orders.CreateOrder)
		orders.GET("", h.orders.ListOrders)
		orders.GET("/staff", staff, h.orders.ListAllOrders)
		orders.PATCH("/:id/status", staff, h.orders.UpdateStatus)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/checkout-session", auth, h.payments.CreateCheckoutSession)
		// Webhook is authenticated by its signature, not a bearer token.
		payments.POST("/webhook", h.payments.Webhook)
	}

	receipts := rg.Group(PathReceipts, auth)
	{
		receipts.GET("", h.receipts.ListReceipts)
		receipts.DELETE("/:order_code", h.receipts.DeleteReceipt)
	}

	pricing := rg.Group(PathPricing)
	{
		pricing.GET("/regions", h.pricing.ListRegions)
		pricing.GET("/overrides", auth, staff, h.pricing.ListOverrides)
		pricing.PUT("/overrides", auth, staff, h.pricing.PutOverride)
		pricing.DELETE("/overrides", auth, staff, h.pricing.DeleteOverride)
	}
}
