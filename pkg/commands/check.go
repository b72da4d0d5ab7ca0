package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/rmks1216/mobicheck/pkg/app"
	"github.com/rmks1216/mobicheck/pkg/commands/options"
	"github.com/rmks1216/mobicheck/pkg/printers"
)

func addCheck(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "check <catalog id>",
		Aliases: []string{"toggle", "done"},
		Short:   "Toggle an item, cascading through the tree",
		Long:    "Flip an item's checked state. The new state cascades down to every present descendant, and every present ancestor is recomputed from its present descendants.",
		Example: `
mobicheck check daily-dungeon
mobicheck check daily-login
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one catalog id")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := app.New(context.Background(), nil)
			if err != nil {
				return err
			}
			c, err := s.Active()
			if err != nil {
				return err
			}
			s.Toggle(args[0])
			pp := &printers.PrettyPrint{}
			pp.Checklist(s.Index, c)
			pp.ProgressBar(s.ProgressInfo(c.ID))
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func addUncheckAll(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "uncheck-all",
		Short: "Reset every item of a checklist to unchecked",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := app.New(context.Background(), nil)
			if err != nil {
				return err
			}
			c, err := resolveList(s, lo)
			if err != nil {
				return err
			}
			if !co.Confirmed("uncheck every item of " + c.Name + "?") {
				return nil
			}
			s.UncheckAll(c.ID)
			return nil
		},
	}
	options.AddListArg(cmd, lo)
	options.AddConfirmArg(cmd, co)

	topLevel.AddCommand(cmd)
}
