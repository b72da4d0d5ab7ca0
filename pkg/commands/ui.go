package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rmks1216/mobicheck/pkg/app"
	"github.com/rmks1216/mobicheck/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive checklist UI",
		Example: `
mobicheck ui
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			s, err := app.New(ctx, nil)
			if err != nil {
				return err
			}
			return tui.Run(ctx, s)
		},
	}

	topLevel.AddCommand(cmd)
}
