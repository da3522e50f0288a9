// Package cli is the operator command line: catalog sync, progress report,
// out-of-band approvals, audit history and dependent cleanup.
package cli

import (
	"errors"

	"portail_immigration/internal/usecase"
	"portail_immigration/internal/usecase/interfaces"

	"github.com/spf13/cobra"
)

var errNotConfigured = errors.New("admin services not configured")

var (
	caseService      usecase.ICaseUseCase
	residenceService usecase.IPermanentResidenceUseCase
	documentTypeRepo interfaces.IDocumentTypeRepository
	notifier         interfaces.INotifier
	catalogPath      string
)

// Services are the collaborators the commands run against.
type Services struct {
	Cases              usecase.ICaseUseCase
	PermanentResidence usecase.IPermanentResidenceUseCase
	DocumentTypes      interfaces.IDocumentTypeRepository
	Notifier           interfaces.INotifier
	CatalogPath        string
}

var rootCmd = &cobra.Command{
	Use:           "admin",
	Short:         "Portail immigration operator commands",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Configure(s Services) {
	caseService = s.Cases
	residenceService = s.PermanentResidence
	documentTypeRepo = s.DocumentTypes
	notifier = s.Notifier
	catalogPath = s.CatalogPath
}

func Execute() error {
	return rootCmd.Execute()
}
