package routes

import (
	"context"
	"strconv"

	_ "visionpos/docs" // swag-generated API docs
	"visionpos/internal/adapter/http/handlers"
	"visionpos/internal/adapter/persistence/repository"
	"visionpos/internal/config"
	"visionpos/internal/infrastructure/database"
	"visionpos/internal/infrastructure/logging"
	"visionpos/internal/infrastructure/sweeper"
	"visionpos/internal/usecase"
	"visionpos/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run wires the engine together and starts the server. It blocks until the
// server exits.
func Run() {
	logger := logging.GetLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.App.Port)); err != nil {
		logger.Fatalf("failed to start the application: %v", err)
	}
}

func getRoutes(cfg *config.Config) {
	logger := logging.GetLogger()
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	sigRepo := repository.NewSignatureDynamoRepository(ddb)
	auditRepo := repository.NewAuditEventDynamoRepository(ddb)

	clock := interfaces.ClockFunc(timeNowUTC)

	lifecycle := usecase.NewQuoteLifecycleUseCase(quoteRepo, sigRepo, auditRepo, clock)
	vault := usecase.NewSignatureVaultUseCase(sigRepo, quoteRepo, clock, cfg.Signature.DuplicateWindow)
	expiration := usecase.NewExpirationUseCase(lifecycle, quoteRepo, clock, cfg.ExpirationThreshold(), logger)

	go sweeper.New(expiration, cfg.Expiration.SweepInterval, logger).Run(context.Background())

	quoteHandler := handlers.NewQuoteHandler(lifecycle)
	signatureHandler := handlers.NewSignatureHandler(vault)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, signatureHandler)
}

func setMiddlewares() {
	logger := logging.GetLogger()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Errorf("recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
