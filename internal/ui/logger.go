package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/mydehq/stampname/internal/types"
)

// Logger wraps the standard charmbracelet logger to add custom levels
type Logger struct {
	*log.Logger
}

var successLabel = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("86")).
	SetString("SUCCESS")

// NewLogger creates a styled logger writing to w
func NewLogger(w io.Writer) *Logger {
	l := &Logger{Logger: log.New(w)}
	l.ConfigureStyles()
	return l
}

// Success prints a success message with a green prefix
func (l *Logger) Success(msg interface{}, keyvals ...interface{}) {
	l.Helper()
	// Print instead of Info to avoid the default "INFO" prefix
	l.Print(fmt.Sprintf("%s %v", successLabel.String(), msg), keyvals...)
}

// SetVerbosity maps the quiet and verbose flags to a log level
func (l *Logger) SetVerbosity(quiet, verbose bool) {
	switch {
	case quiet:
		l.SetLevel(log.ErrorLevel)
	case verbose:
		l.SetLevel(log.DebugLevel)
	default:
		l.SetLevel(log.InfoLevel)
	}
}

// HandleEvent logs a renamer event at the level matching its type.
// Per-file classification is progress and only shows with --verbose.
func (l *Logger) HandleEvent(e types.Event) {
	msg := ColorizeEvent(e.Message)
	switch e.Type {
	case types.EventSuccess:
		if l.GetLevel() <= log.InfoLevel {
			l.Success(msg)
		}
	case types.EventWarning:
		l.Warn(msg)
	case types.EventError:
		l.Error(msg)
	case types.EventProgress:
		l.Debug(msg)
	default:
		l.Info(msg)
	}
}

// ConfigureStyles applies the lipgloss level styling
func (l *Logger) ConfigureStyles() {
	styles := log.DefaultStyles()

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Bold(true).
		Foreground(lipgloss.Color("63"))

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO ").
		Bold(true).
		Foreground(lipgloss.Color("86"))

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN ").
		Bold(true).
		Foreground(lipgloss.Color("192"))

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("204"))

	l.SetStyles(styles)
}
