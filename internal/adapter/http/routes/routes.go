package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/UntamedK1ddo/internet-smart-bill-kenya/docs" // swagger docs
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/adapter/http/handlers"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/adapter/persistence/repository"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/infrastructure/database"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/infrastructure/notify"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/infrastructure/payments"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/metrics"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
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
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ctx := context.Background()

	customerRepo := repository.NewMemoryCustomerRepository()
	packageRepo := repository.NewMemoryPackageRepository()

	var (
		ledger      interfaces.IPaymentLedger
		invoiceRepo interfaces.IInvoiceRepository
	)
	switch strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_BACKEND"))) {
	case "dynamodb":
		ddb := database.ConnectDynamoDB()
		ledger = repository.NewPaymentDynamoLedger(ddb)
		invoiceRepo = repository.NewInvoiceDynamoRepository(ddb)
		if _, err := repository.SeedCatalogDemoData(ctx, customerRepo, packageRepo); err != nil {
			log.Fatalf("Failed to seed catalog data: %v", err)
		}
	default:
		memLedger := repository.NewMemoryPaymentLedger()
		memInvoices := repository.NewMemoryInvoiceRepository()
		if err := repository.SeedDemoData(ctx, customerRepo, packageRepo, memInvoices, memLedger); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		ledger = memLedger
		invoiceRepo = memInvoices
	}

	gateways := map[entities.PaymentMethod]interfaces.IPromptGateway{
		entities.PaymentMethodMpesa:  payments.NewMpesaGatewayFromEnv(),
		entities.PaymentMethodAirtel: payments.NewOfflineGateway(entities.PaymentMethodAirtel),
		entities.PaymentMethodTkash:  payments.NewOfflineGateway(entities.PaymentMethodTkash),
	}
	notifier := notify.NewNotifierFromEnv()

	paymentUseCase := usecase.NewPaymentUseCase(ledger, customerRepo, invoiceRepo, gateways, notifier, paymentPolicyFromEnv())
	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	packageUseCase := usecase.NewPackageUseCase(packageRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, customerRepo, packageRepo)
	reportUseCase := usecase.NewReportUseCase(ledger, invoiceRepo)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	packageHandler := handlers.NewPackageHandler(packageUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
	addCatalogRoutes(v1, customerHandler, packageHandler, invoiceHandler)
	addReportRoutes(v1, reportHandler)
}

func paymentPolicyFromEnv() usecase.PaymentPolicy {
	policy := usecase.PaymentPolicy{}

	switch strings.ToLower(strings.TrimSpace(os.Getenv("RECORD_FAILED_ATTEMPTS"))) {
	case "1", "true", "yes", "on":
		policy.RecordFailedAttempts = true
	}

	if v := strings.TrimSpace(os.Getenv("PROMPT_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("Invalid PROMPT_TIMEOUT %q, ignoring: %v", v, err)
		} else {
			policy.PromptTimeout = d
		}
	}
	return policy
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(metricsMiddleware())
}

func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
