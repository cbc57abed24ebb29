package routes

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	_ "payplan/docs"
	"payplan/internal/adapter/http/handlers"
	"payplan/internal/adapter/persistence/cache"
	"payplan/internal/adapter/persistence/repository"
	infracache "payplan/internal/infrastructure/cache"
	"payplan/internal/infrastructure/database"
	"payplan/internal/infrastructure/payments"
	"payplan/internal/usecase"
	"payplan/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + port())
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	planRepo := repository.NewPaymentPlanDynamoRepository(ddb)
	paymentRepo := repository.NewPlanPaymentDynamoRepository(ddb)

	var quoteCache interfaces.IQuoteCache
	if rdb := infracache.ConnectRedis(context.Background()); rdb != nil {
		quoteCache = cache.NewRedisQuoteCache(rdb)
	} else {
		log.Printf("[routes] redis unavailable; using in-memory quote cache")
		quoteCache = cache.NewMemoryQuoteCache()
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	mortgageUseCase := usecase.NewMortgageUseCase(quoteCache, quoteCacheTTL())
	planUseCase := usecase.NewPaymentPlanUseCase(planRepo)
	paymentUseCase := usecase.NewPlanPaymentUseCase(paymentRepo, planRepo, paymentGateway)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMortgageRoutes(v1, handlers.NewMortgageHandler(mortgageUseCase))
	addAllocationRoutes(v1, handlers.NewAllocationHandler(planUseCase))
	addPlanRoutes(v1, handlers.NewPaymentPlanHandler(planUseCase), handlers.NewPlanPaymentHandler(paymentUseCase))
}

func setMiddlewares(r *gin.Engine) {
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	r.Use(cors.New(corsConfig()))
}

func corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	origins := make([]string, 0)
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func port() string {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if _, err := strconv.Atoi(v); err == nil {
			return v
		}
		log.Printf("[routes] invalid PORT=%q; using %d", v, defaultPort)
	}
	return strconv.Itoa(defaultPort)
}

func quoteCacheTTL() time.Duration {
	v := strings.TrimSpace(os.Getenv("QUOTE_CACHE_TTL"))
	if v == "" {
		return usecase.DefaultQuoteCacheTTL
	}
	ttl, err := time.ParseDuration(v)
	if err != nil || ttl <= 0 {
		log.Printf("[routes] invalid QUOTE_CACHE_TTL=%q; using %s", v, usecase.DefaultQuoteCacheTTL)
		return usecase.DefaultQuoteCacheTTL
	}
	return ttl
}
