package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Adaptive Color definitions
	colorHeader = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#00af00", ANSI256: "34", ANSI: "2"},
		Light: lipgloss.CompleteColor{TrueColor: "#008700", ANSI256: "28", ANSI: "2"},
	}
	colorCommand = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#5fffff", ANSI256: "86", ANSI: "6"},
		Light: lipgloss.CompleteColor{TrueColor: "#008787", ANSI256: "30", ANSI: "6"},
	}
	colorPath = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#5f5fff", ANSI256: "63", ANSI: "4"},
		Light: lipgloss.CompleteColor{TrueColor: "#0000af", ANSI256: "19", ANSI: "4"},
	}
	colorPattern = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#d7ff87", ANSI256: "192", ANSI: "11"},
		Light: lipgloss.CompleteColor{TrueColor: "#5f8700", ANSI256: "64", ANSI: "10"},
	}
	colorDim = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#bdbdbd", ANSI256: "250", ANSI: "8"},
		Light: lipgloss.CompleteColor{TrueColor: "#626262", ANSI256: "241", ANSI: "0"},
	}
	colorFlag = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#ff5faf", ANSI256: "204", ANSI: "13"},
		Light: lipgloss.CompleteColor{TrueColor: "#af005f", ANSI256: "125", ANSI: "5"},
	}

	// Exported Styles for CLI and prompts
	StyleHeader  = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
	StyleCommand = lipgloss.NewStyle().Bold(true).Foreground(colorCommand)
	StylePath    = lipgloss.NewStyle().Foreground(colorPath)
	StylePattern = lipgloss.NewStyle().Foreground(colorPattern)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleFlag    = lipgloss.NewStyle().Italic(true).Foreground(colorFlag)

	// StyleBanner frames the program title
	StyleBanner = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCommand).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorHeader).
			Padding(0, 4).
			Align(lipgloss.Center)

	// StyleFatal frames an error that stopped the run
	StyleFatal = lipgloss.NewStyle().
			Foreground(colorFlag).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorFlag).
			Padding(0, 2)
)

// Theme returns the Catppuccin theme for huh forms.
func Theme() *huh.Theme {
	return huh.ThemeCatppuccin()
}

// KeyMap maps esc and ctrl+c to quit; RunForm tells them apart.
func KeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()

	km.Quit.SetKeys("esc", "ctrl+c")
	km.Quit.SetHelp("ctrl+c", "quit")

	km.Confirm.Submit.SetHelp("enter", "confirm • esc: cancel • ctrl+c: quit")
	km.Note.Submit.SetHelp("enter", "exit")

	return km
}

// interceptedKey tracks the last key that triggered an abort (esc vs ctrl+c).
var interceptedKey string

// formFilter is a Bubble Tea filter that intercepts esc and ctrl+c to distinguish them.
func formFilter(m tea.Model, msg tea.Msg) tea.Msg {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEsc:
			interceptedKey = "esc"
		case tea.KeyCtrlC:
			interceptedKey = "ctrl+c"
		}
	}
	return msg
}

// RunForm runs a huh form with the key filter installed
func RunForm(f *huh.Form) error {
	interceptedKey = ""
	return f.WithProgramOptions(tea.WithFilter(formFilter)).Run()
}

// PrintBanner writes the program header
func PrintBanner(w io.Writer, dryRun bool) {
	fmt.Fprintln(w, StyleBanner.Render("TIMESTAMP FILENAME NORMALIZER"))
	fmt.Fprintln(w)
	if dryRun {
		fmt.Fprintln(w, StyleFlag.Render("  [DRY RUN]"))
		fmt.Fprintln(w)
	}
}

// RenderFatal frames err in the fatal error block
func RenderFatal(err error) string {
	title := StyleHeader.Foreground(colorFlag).Render("FATAL ERROR")
	return StyleFatal.Render(title + "\n\n" + err.Error())
}

// ColorizeEvent adds CLI styling to known event message patterns.
func ColorizeEvent(msg string) string {
	// Renames: "Legacy: old.mp4 → new.mp4" (dry run) or "Legacy → new.mp4"
	if left, right, ok := strings.Cut(msg, " → "); ok {
		var label, oldName string
		if idx := strings.Index(left, ": "); idx >= 0 {
			label = StyleHeader.Render(left[:idx+1]) + " "
			oldName = StyleDim.Render(left[idx+2:]) + " "
		} else {
			label = StyleHeader.Render(left) + " "
		}

		return fmt.Sprintf("%s%s%s %s",
			label,
			oldName,
			StyleDim.Render("→"),
			StyleCommand.Render(right),
		)
	}

	// Pass headers
	if strings.HasPrefix(msg, "PASS ") {
		return StyleCommand.Render(msg)
	}

	// Labelled values: "No date found: clip.mp4"
	if idx := strings.Index(msg, ": "); idx >= 0 {
		return fmt.Sprintf("%s %s", StyleHeader.Render(msg[:idx+1]), StylePath.Render(msg[idx+2:]))
	}

	return msg
}

// HighlightYAML applies simple syntax highlighting to a YAML string.
func HighlightYAML(input string) string {
	keyStyle := lipgloss.NewStyle().Foreground(colorCommand).Bold(true)
	valStyle := lipgloss.NewStyle().Foreground(colorPattern)

	lines := strings.Split(input, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if idx := strings.Index(line, "#"); idx >= 0 {
			lines[i] = line[:idx] + StyleDim.Render(line[idx:])
			continue
		}

		// List items without a key: "  - mp4"
		if trimmed := strings.TrimSpace(line); strings.HasPrefix(trimmed, "- ") && !strings.Contains(trimmed, ":") {
			pIdx := strings.Index(line, "- ")
			lines[i] = line[:pIdx+2] + valStyle.Render(line[pIdx+2:])
			continue
		}

		key, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if strings.TrimSpace(val) == "" {
			lines[i] = keyStyle.Render(key) + ":"
		} else {
			lines[i] = keyStyle.Render(key) + ":" + valStyle.Render(val)
		}
	}
	return strings.Join(lines, "\n")
}
