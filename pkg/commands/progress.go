package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rmks1216/mobicheck/pkg/app"
	"github.com/rmks1216/mobicheck/pkg/commands/options"
	"github.com/rmks1216/mobicheck/pkg/printers"
)

func addProgress(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	po := &options.OutputOptions{}
	stats := false

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show a checklist's progress",
		Example: `
mobicheck progress
mobicheck progress --stats
mobicheck progress --json
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := app.New(context.Background(), nil)
			if err != nil {
				return err
			}
			c, err := resolveList(s, lo)
			if err != nil {
				return po.HandleError(err)
			}

			info := s.ProgressInfo(c.ID)
			if po.JSON {
				if stats {
					return po.Print(struct {
						Checklist string      `json:"checklist"`
						Info      interface{} `json:"info"`
						Stats     interface{} `json:"stats"`
					}{c.Name, info, s.ModeStats(c.ID)})
				}
				return po.Print(info)
			}

			pp := &printers.PrettyPrint{}
			pp.Title(c.Name)
			pp.ProgressBar(info)
			if stats {
				pp.NewLine()
				pp.ModeStats(s.ModeStats(c.ID))
			}
			return nil
		},
	}
	options.AddListArg(cmd, lo)
	options.AddOutputArg(cmd, po)
	cmd.Flags().BoolVar(&stats, "stats", false, "Show the per-mode breakdown.")

	topLevel.AddCommand(cmd)
}
