package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/rmks1216/mobicheck/pkg/app"
	"github.com/rmks1216/mobicheck/pkg/commands/options"
	"github.com/rmks1216/mobicheck/pkg/printers"
)

func addAdd(topLevel *cobra.Command) {
	so := &options.SubtreeOptions{}

	cmd := &cobra.Command{
		Use:   "add <catalog id>...",
		Short: "Add catalog nodes to the active checklist",
		Long:  "Add catalog nodes to the active checklist. With --subtree (the default), a category brings its whole subtree and a leaf brings its ancestor path, so the checklist stays a connected branch.",
		Example: `
mobicheck add daily-dungeon
mobicheck add daily-login weekly-raid --subtree=false
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires at least one catalog id")
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
			if so.Subtree {
				for _, id := range args {
					s.AddSubtree(id)
				}
			} else {
				s.AddItems(args...)
			}
			pp := &printers.PrettyPrint{}
			pp.Checklist(s.Index, c)
			return nil
		},
	}
	options.AddSubtreeArg(cmd, so)

	topLevel.AddCommand(cmd)
}

func addRemove(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "remove <catalog id>",
		Aliases: []string{"rm-item"},
		Short:   "Remove an item (and its present sub-items)",
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
			if !co.Confirmed("remove " + s.Index.Name(args[0]) + " from " + c.Name + "?") {
				return nil
			}
			s.RemoveItem(args[0])
			return nil
		},
	}
	options.AddConfirmArg(cmd, co)

	topLevel.AddCommand(cmd)
}
