// Package options defines shared flag helpers for CLI commands.
package options

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// ConfirmOptions gates destructive commands behind a prompt. The core
// deletes unconditionally once invoked; confirmation lives out here.
type ConfirmOptions struct {
	Yes bool
}

// AddConfirmArg registers the --yes flag.
func AddConfirmArg(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Skip the confirmation prompt.")
}

// Confirmed prompts on stdin unless --yes was given.
func (o *ConfirmOptions) Confirmed(what string) bool {
	if o.Yes {
		return true
	}
	fmt.Printf("%s [y/N]: ", what)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// ListOptions selects which checklist a command operates on; empty means
// the active one.
type ListOptions struct {
	Checklist string
}

// AddListArg wires the checklist selection flag.
func AddListArg(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().StringVarP(&o.Checklist, "checklist", "c", "",
		"Checklist id or name. Defaults to the active checklist.")
}

// IDOptions captures free-form id arguments.
type IDOptions struct {
	IDs []string
}

// SubtreeOptions toggles whole-subtree selection when adding items.
type SubtreeOptions struct {
	Subtree bool
}

// AddSubtreeArg wires the subtree flag.
func AddSubtreeArg(cmd *cobra.Command, o *SubtreeOptions) {
	cmd.Flags().BoolVarP(&o.Subtree, "subtree", "s", true,
		"Also add the node's descendants (or a leaf's ancestor path).")
}
