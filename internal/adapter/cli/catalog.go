package cli

import (
	"strconv"

	"portail_immigration/internal/infrastructure/catalog"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var syncCatalogFile string

var syncCatalogCmd = &cobra.Command{
	Use:   "sync-catalog",
	Short: "Load the document type catalog and upsert it into DynamoDB",
	Args:  cobra.NoArgs,
	RunE:  runSyncCatalog,
}

func init() {
	syncCatalogCmd.Flags().StringVarP(&syncCatalogFile, "file", "f", "", "Catalog TOML file (default DOCUMENT_CATALOG_PATH)")
	rootCmd.AddCommand(syncCatalogCmd)
}

func runSyncCatalog(cmd *cobra.Command, _ []string) error {
	if documentTypeRepo == nil {
		return errNotConfigured
	}
	path := syncCatalogFile
	if path == "" {
		path = catalogPath
	}

	types, err := catalog.Load(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Name", "Visa category", "Required"})
	for _, t := range types {
		table.Append([]string{t.ID, t.Name, string(t.VisaCategory), strconv.FormatBool(t.Required)})
	}
	table.Render()

	n, err := catalog.Sync(cmd.Context(), documentTypeRepo, types)
	if err != nil {
		color.New(color.FgRed).Fprintf(out, "%d of %d document types synchronised\n", n, len(types))
		return err
	}
	color.New(color.FgGreen).Fprintf(out, "%d document types synchronised from %s\n", n, path)
	return nil
}
