package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/mydehq/stampname/internal/types"
)

// Interactive reports whether both stdin and stdout are terminals
func Interactive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ConfirmRenames lists the pending renames and asks before applying them.
// Any abort counts as a no.
func ConfirmRenames(ops []types.RenameOperation) bool {
	confirmed := true
	err := RunForm(huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Planned renames").
				Description("\n"+RenderPlan(ops)+"\n"),

			huh.NewConfirm().
				Title("Apply these renames?").
				Value(&confirmed),
		),
	).WithTheme(Theme()).WithKeyMap(KeyMap()))
	if err != nil {
		return false
	}
	return confirmed
}

// RenderPlan formats the pending operations one per line
func RenderPlan(ops []types.RenameOperation) string {
	var b strings.Builder
	for _, op := range ops {
		if op.Status != types.StatusPending {
			continue
		}
		fmt.Fprintf(&b, "%s %s %s\n",
			StyleDim.Render(filepath.Base(op.SourcePath)),
			StyleDim.Render("→"),
			StyleCommand.Render(filepath.Base(op.TargetPath)),
		)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Pause waits for Enter so a double-clicked console window stays open.
// It returns immediately when not attached to a terminal.
func Pause() {
	if !Interactive() {
		return
	}
	err := RunForm(huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Press Enter to exit..."),
		),
	).WithTheme(Theme()).WithKeyMap(KeyMap()))
	if errors.Is(err, huh.ErrUserAborted) && interceptedKey == "ctrl+c" {
		// ctrl+c leaves the cursor on the prompt line
		fmt.Println()
	}
}
