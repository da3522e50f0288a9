package routes

import (
	"context"
	"log"
	_ "portail_immigration/docs" // swagger spec registration
	"portail_immigration/internal/adapter/http/handlers"
	repository2 "portail_immigration/internal/adapter/persistence/repository"
	"portail_immigration/internal/config"
	"portail_immigration/internal/infrastructure/database"
	"portail_immigration/internal/infrastructure/mail"
	"portail_immigration/internal/infrastructure/storage"
	"portail_immigration/internal/usecase"
	"portail_immigration/internal/usecase/interfaces"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	env := config.Load()
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(env)

	err := router.Run(":" + strconv.Itoa(env.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(env config.Env) {
	awsCfg := database.MustLoadAWSConfig(context.Background(), env)
	ddb := database.ConnectDynamoDB(awsCfg)

	caseRepo := repository2.NewCaseDynamoRepository(ddb)
	historyRepo := repository2.NewHistoryDynamoRepository(ddb)
	documentRepo := repository2.NewDocumentDynamoRepository(ddb)
	documentTypeRepo := repository2.NewDocumentTypeDynamoRepository(ddb)
	detailsRepo := repository2.NewPermanentResidenceDynamoRepository(ddb)
	dependentRepo := repository2.NewDependentDynamoRepository(ddb)

	var mailer interfaces.IMailer
	if m, err := mail.New(awsCfg, env); err != nil {
		log.Printf("Mailer not configured, approvals will report email failures: %v", err)
	} else {
		mailer = m
	}

	var presigner interfaces.IUploadPresigner
	if p, err := storage.NewS3UploadPresigner(awsCfg, env); err != nil {
		log.Printf("Upload presigner not configured: %v", err)
	} else {
		presigner = p
	}

	caseUseCase := usecase.NewCaseUseCase(caseRepo, documentRepo, documentTypeRepo, historyRepo, mailer)
	documentUseCase := usecase.NewDocumentUseCase(documentRepo, presigner)
	permanentResidenceUseCase := usecase.NewPermanentResidenceUseCase(caseRepo, detailsRepo, dependentRepo)

	caseHandler := handlers.NewCaseHandler(caseUseCase)
	documentHandler := handlers.NewDocumentHandler(documentUseCase)
	permanentResidenceHandler := handlers.NewPermanentResidenceHandler(permanentResidenceUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCaseRoutes(v1, caseHandler, documentHandler, permanentResidenceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
