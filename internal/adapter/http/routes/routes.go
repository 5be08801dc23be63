package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/web-source-dev/Vos-backend-sub000/docs" // This will be auto-generated
	"github.com/web-source-dev/Vos-backend-sub000/internal/adapter/http/handlers"
	repository2 "github.com/web-source-dev/Vos-backend-sub000/internal/adapter/persistence/repository"
	"github.com/web-source-dev/Vos-backend-sub000/internal/infrastructure/database"
	"github.com/web-source-dev/Vos-backend-sub000/internal/infrastructure/documents"
	"github.com/web-source-dev/Vos-backend-sub000/internal/infrastructure/notifications"
	"github.com/web-source-dev/Vos-backend-sub000/internal/usecase"

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

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	caseRepo := repository2.NewCaseDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	inspectionRepo := repository2.NewInspectionDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	transactionRepo := repository2.NewTransactionDynamoRepository(ddb)
	timeTrackingRepo := repository2.NewTimeTrackingDynamoRepository(ddb)
	signingRepo := repository2.NewSigningSessionDynamoRepository(ddb)

	notifier := notifications.NewWebhookNotifier()
	renderer := documents.NewRenderClient()
	dispatcher := usecase.NewSideEffectDispatcher(notifier, renderer, os.Getenv("PUBLIC_BASE_URL"))

	caseUseCase := usecase.NewCaseUseCase(caseRepo, customerRepo, vehicleRepo, inspectionRepo, quoteRepo, transactionRepo, timeTrackingRepo, dispatcher)
	inspectionUseCase := usecase.NewInspectionUseCase(inspectionRepo, caseRepo, customerRepo, timeTrackingRepo, dispatcher)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, caseRepo, customerRepo, vehicleRepo, transactionRepo, signingRepo, timeTrackingRepo, dispatcher)

	caseHandler := handlers.NewCaseHandler(caseUseCase)
	inspectionHandler := handlers.NewInspectionHandler(inspectionUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCaseRoutes(v1, caseHandler, inspectionHandler, quoteHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
