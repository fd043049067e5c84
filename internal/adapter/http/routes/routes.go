package routes

import (
	"log"
	"os"
	"strconv"

	_ "easydrive_booking/docs" // This will be auto-generated
	"easydrive_booking/internal/adapter/http/handlers"
	repository2 "easydrive_booking/internal/adapter/persistence/repository"
	"easydrive_booking/internal/infrastructure/database"
	"easydrive_booking/internal/infrastructure/extraction"
	"easydrive_booking/internal/infrastructure/geo"
	"easydrive_booking/internal/infrastructure/identity"
	"easydrive_booking/internal/infrastructure/payments"
	"easydrive_booking/internal/infrastructure/storage"
	"easydrive_booking/internal/usecase"
	"easydrive_booking/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := PORT
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		port = v
	}
	err := router.Run(":" + strconv.Itoa(port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	s3Client := database.ConnectS3()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	draftRepo := repository2.NewDraftDynamoRepository(ddb)
	overrideRepo := repository2.NewPricingOverrideDynamoRepository(ddb)
	receiptRepo := repository2.NewReceiptDynamoRepository(ddb)
	profileRepo := repository2.NewBillingProfileDynamoRepository(ddb)
	documentStore := storage.NewS3DocumentStore(s3Client)

	geocoder := geo.NewArcGISGeocoder()
	routers := []interfaces.IRouter{geo.NewOSRMRouter()}
	if token := os.Getenv("MAPBOX_ACCESS_TOKEN"); token != "" {
		routers = append(routers, geo.NewMapboxRouter(token))
	}
	routers = append(routers, geo.NewHaversineRouter())

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), os.Getenv("MERCADOPAGO_WEBHOOK_SECRET"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	quoteUseCase := usecase.NewQuoteUseCase(overrideRepo, geocoder, routers...)
	extractionUseCase := usecase.NewExtractionUseCase(extraction.NewWebhookClient())
	draftUseCase := usecase.NewDraftUseCase(draftRepo, documentStore)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, draftRepo, documentStore)
	paymentUseCase := usecase.NewPaymentUseCase(orderUseCase, paymentGateway, receiptRepo, profileRepo,
		os.Getenv("CHECKOUT_SUCCESS_URL"), os.Getenv("CHECKOUT_FAILURE_URL"))
	receiptUseCase := usecase.NewReceiptUseCase(receiptRepo)
	pricingUseCase := usecase.NewPricingUseCase(overrideRepo)

	identityProvider := identity.NewHTTPProvider()

	h := bookingHandlers{
		quotes:     handlers.NewQuoteHandler(quoteUseCase),
		extraction: handlers.NewExtractionHandler(extractionUseCase),
		drafts:     handlers.NewDraftHandler(draftUseCase),
		orders:     handlers.NewOrderHandler(orderUseCase, draftUseCase),
		payments:   handlers.NewPaymentHandler(paymentUseCase, paymentGateway),
		receipts:   handlers.NewReceiptHandler(receiptUseCase),
		pricing:    handlers.NewPricingHandler(pricingUseCase),
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBookingRoutes(v1, h, identityProvider)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
