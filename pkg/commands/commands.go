// Package commands wires the mobicheck CLI.
package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

// New builds the root mobicheck command.
func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "mobicheck",
		Short: base.Wrap80("Game-task checklists over a fixed catalog tree, on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

// AddCommands registers every subcommand on the root.
func AddCommands(topLevel *cobra.Command) {
	addCatalog(topLevel)
	addList(topLevel)
	addAdd(topLevel)
	addRemove(topLevel)
	addCheck(topLevel)
	addUncheckAll(topLevel)
	addMode(topLevel)
	addTarget(topLevel)
	addCount(topLevel)
	addProgress(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
