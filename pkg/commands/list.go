package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rmks1216/mobicheck/pkg/app"
	"github.com/rmks1216/mobicheck/pkg/checklist"
	"github.com/rmks1216/mobicheck/pkg/commands/options"
	"github.com/rmks1216/mobicheck/pkg/printers"
)

func addList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"lists", "checklist"},
		Short:   "Manage checklists",
		Example: `
mobicheck list
mobicheck list new 주간 숙제
mobicheck list use 주간 숙제
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := app.New(context.Background(), nil)
			if err != nil {
				return err
			}
			pp := &printers.PrettyPrint{}
			pp.Checklists(s.State, s.Index)
			return nil
		},
	}

	addListNew(cmd)
	addListShow(cmd)
	addListUse(cmd)
	addListRename(cmd)
	addListRemove(cmd)
	addListClear(cmd)

	topLevel.AddCommand(cmd)
}

func addListNew(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a checklist and make it active",
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := app.New(context.Background(), nil)
			if err != nil {
				return err
			}
			c := s.NewChecklist(strings.Join(args, " "))
			pp := &printers.PrettyPrint{}
			pp.Title(c.Name)
			return nil
		},
	}
	parent.AddCommand(cmd)
}

func addListShow(parent *cobra.Command) {
	lo := &options.ListOptions{}
	showID := false

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a checklist's items",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := app.New(context.Background(), nil)
			if err != nil {
				return err
			}
			c, err := resolveList(s, lo)
			if err != nil {
				return err
			}
			pp := &printers.PrettyPrint{ShowID: showID}
			pp.Checklist(s.Index, c)
			pp.ProgressBar(s.ProgressInfo(c.ID))
			return nil
		},
	}
	options.AddListArg(cmd, lo)
	cmd.Flags().BoolVar(&showID, "ids", false, "Show catalog ids.")
	parent.AddCommand(cmd)
}

func addListUse(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "use <checklist>",
		Short: "Make a checklist active",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a checklist id or name")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := app.New(context.Background(), nil)
			if err != nil {
				return err
			}
			c, err := s.Resolve(strings.Join(args, " "))
			if err != nil {
				return err
			}
			s.SetActive(c.ID)
			return nil
		},
	}
	parent.AddCommand(cmd)
}

func addListRename(parent *cobra.Command) {
	lo := &options.ListOptions{}

	cmd := &cobra.Command{
		Use:   "rename <new name>",
		Short: "Rename a checklist",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a new name")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := app.New(context.Background(), nil)
			if err != nil {
				return err
			}
			c, err := resolveList(s, lo)
			if err != nil {
				return err
			}
			s.RenameChecklist(c.ID, strings.Join(args, " "))
			return nil
		},
	}
	options.AddListArg(cmd, lo)
	parent.AddCommand(cmd)
}

func addListRemove(parent *cobra.Command) {
	lo := &options.ListOptions{}
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"delete"},
		Short:   "Delete a checklist",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := app.New(context.Background(), nil)
			if err != nil {
				return err
			}
			c, err := resolveList(s, lo)
			if err != nil {
				return err
			}
			if !co.Confirmed("delete checklist " + c.Name + "?") {
				return nil
			}
			s.DeleteChecklist(c.ID)
			return nil
		},
	}
	options.AddListArg(cmd, lo)
	options.AddConfirmArg(cmd, co)
	parent.AddCommand(cmd)
}

func addListClear(parent *cobra.Command) {
	lo := &options.ListOptions{}
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every item from a checklist",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := app.New(context.Background(), nil)
			if err != nil {
				return err
			}
			c, err := resolveList(s, lo)
			if err != nil {
				return err
			}
			if !co.Confirmed("clear every item of " + c.Name + "?") {
				return nil
			}
			s.ClearChecklist(c.ID)
			return nil
		},
	}
	options.AddListArg(cmd, lo)
	options.AddConfirmArg(cmd, co)
	parent.AddCommand(cmd)
}

// resolveList picks the checklist from -c, falling back to the active
// one.
func resolveList(s *app.Service, lo *options.ListOptions) (*checklist.Checklist, error) {
	if lo.Checklist != "" {
		return s.Resolve(lo.Checklist)
	}
	return s.Active()
}
