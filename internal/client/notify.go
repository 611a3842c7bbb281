package client

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	loadingStyle = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Notifier - пользовательские уведомления об исходе операций
type Notifier interface {
	Loading(message string)
	Success(message string)
	Error(message string)
}

type TerminalNotifier struct {
	out io.Writer
}

func NewTerminalNotifier(out io.Writer) *TerminalNotifier {
	return &TerminalNotifier{out: out}
}

func (n *TerminalNotifier) Loading(message string) {
	fmt.Fprintln(n.out, loadingStyle.Render(message))
}

func (n *TerminalNotifier) Success(message string) {
	fmt.Fprintln(n.out, successStyle.Render("✔ "+message))
}

func (n *TerminalNotifier) Error(message string) {
	fmt.Fprintln(n.out, errorStyle.Render("✘ "+message))
}
