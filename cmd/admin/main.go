package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"portail_immigration/internal/adapter/cli"
	"portail_immigration/internal/adapter/notification"
	"portail_immigration/internal/adapter/persistence/repository"
	"portail_immigration/internal/config"
	"portail_immigration/internal/infrastructure/database"
	"portail_immigration/internal/infrastructure/mail"
	"portail_immigration/internal/usecase"
	"portail_immigration/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	env := config.Load()
	awsCfg := database.MustLoadAWSConfig(context.Background(), env)
	ddb := database.ConnectDynamoDB(awsCfg)

	caseRepo := repository.NewCaseDynamoRepository(ddb)
	documentTypeRepo := repository.NewDocumentTypeDynamoRepository(ddb)

	var mailer interfaces.IMailer
	if m, err := mail.New(awsCfg, env); err != nil {
		log.Printf("Mailer not configured, approvals will report email failures: %v", err)
	} else {
		mailer = m
	}

	caseUseCase := usecase.NewCaseUseCase(
		caseRepo,
		repository.NewDocumentDynamoRepository(ddb),
		documentTypeRepo,
		repository.NewHistoryDynamoRepository(ddb),
		mailer,
	)

	permanentResidenceUseCase := usecase.NewPermanentResidenceUseCase(
		caseRepo,
		repository.NewPermanentResidenceDynamoRepository(ddb),
		repository.NewDependentDynamoRepository(ddb),
	)

	cli.Configure(cli.Services{
		Cases:              caseUseCase,
		PermanentResidence: permanentResidenceUseCase,
		DocumentTypes:      documentTypeRepo,
		Notifier:           notification.LogNotifier{Area: "admin"},
		CatalogPath:        env.CatalogPath,
	})
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
