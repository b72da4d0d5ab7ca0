package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rmks1216/mobicheck/pkg/app"
	"github.com/rmks1216/mobicheck/pkg/printers"
)

func addCatalog(topLevel *cobra.Command) {
	showID := false

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Show the catalog tree",
		Long:  "Show the full catalog tree, with live marks for rows tracked by the active checklist.",
		Example: `
mobicheck catalog
mobicheck catalog --ids
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := app.New(context.Background(), nil)
			if err != nil {
				return err
			}
			pp := &printers.PrettyPrint{ShowID: showID}
			pp.Catalog(s.Index, s.Forest, s.State.Active())
			return nil
		},
	}
	cmd.Flags().BoolVar(&showID, "ids", false, "Show catalog ids next to names.")

	topLevel.AddCommand(cmd)
}
