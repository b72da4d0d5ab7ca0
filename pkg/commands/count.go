package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rmks1216/mobicheck/pkg/app"
	"github.com/rmks1216/mobicheck/pkg/checklist"
	"github.com/rmks1216/mobicheck/pkg/printers"
)

func addMode(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mode <catalog id> <simple|repeat>",
		Short: "Switch an item's counting semantics",
		Long:  "Switch an item between simple checked/unchecked and repeat current/target counting. Switching always resets the item's progress.",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			mode, err := checklist.ParseMode(args[1])
			if err != nil {
				return err
			}
			s, err := app.New(context.Background(), nil)
			if err != nil {
				return err
			}
			c, err := s.Active()
			if err != nil {
				return err
			}
			s.SetItemMode(args[0], mode)
			pp := &printers.PrettyPrint{}
			pp.Checklist(s.Index, c)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func addTarget(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "target <catalog id> <n>",
		Short: "Set a repeat item's target count",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.New("target must be a number")
			}
			s, err := app.New(context.Background(), nil)
			if err != nil {
				return err
			}
			if _, err := s.Active(); err != nil {
				return err
			}
			s.SetTargetCount(args[0], n)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func addCount(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Adjust a repeat item's current count",
		Example: `
mobicheck count inc daily-arena
mobicheck count dec daily-arena
mobicheck count set daily-arena 2
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "inc <catalog id>",
		Short: "Increase the count by one",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return withActive(func(s *app.Service) {
				s.IncrementCount(args[0])
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "dec <catalog id>",
		Short: "Decrease the count by one",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return withActive(func(s *app.Service) {
				s.DecrementCount(args[0])
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <catalog id> <n>",
		Short: "Set the count",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.New("count must be a number")
			}
			return withActive(func(s *app.Service) {
				s.SetCurrentCount(args[0], n)
			})
		},
	})

	topLevel.AddCommand(cmd)
}

// withActive loads the service, requires an active checklist, runs the
// mutation, and prints the refreshed checklist.
func withActive(mutate func(*app.Service)) error {
	s, err := app.New(context.Background(), nil)
	if err != nil {
		return err
	}
	c, err := s.Active()
	if err != nil {
		return err
	}
	mutate(s)
	pp := &printers.PrettyPrint{}
	pp.Checklist(s.Index, c)
	return nil
}
