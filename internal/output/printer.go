package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss/v2"
)

// Printer writes the human-facing chrome around a standup run: banner,
// per-repository progress, the rendered report preview, and the clipboard
// notice. The report body itself is produced elsewhere and printed
// verbatim, so pasting from the terminal still yields clean text.
type Printer struct {
	w io.Writer

	titleStyle  lipgloss.Style
	dimStyle    lipgloss.Style
	okStyle     lipgloss.Style
	warnStyle   lipgloss.Style
	labelStyle  lipgloss.Style
	headerStyle lipgloss.Style
}

// isDarkMode detects if the terminal is using a dark theme
func isDarkMode() bool {
	if theme := os.Getenv("THEME"); theme == "dark" {
		return true
	}
	if theme := os.Getenv("TERMINAL_THEME"); theme == "dark" {
		return true
	}

	// COLORFGBG format is usually "foreground;background"; low background
	// numbers indicate dark themes
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			return bg == "0" || bg == "1" || bg == "8"
		}
	}

	return false
}

func NewPrinter() *Printer {
	return newPrinter(os.Stdout)
}

func newPrinter(w io.Writer) *Printer {
	if isDarkMode() {
		// Use Catppuccin Mocha colors for dark mode
		mocha := catppuccin.Mocha
		return &Printer{
			w: w,
			titleStyle: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(mocha.Mauve().Hex)),
			dimStyle: lipgloss.NewStyle().
				Foreground(lipgloss.Color(mocha.Overlay1().Hex)),
			okStyle: lipgloss.NewStyle().
				Foreground(lipgloss.Color(mocha.Green().Hex)),
			warnStyle: lipgloss.NewStyle().
				Foreground(lipgloss.Color(mocha.Yellow().Hex)),
			labelStyle: lipgloss.NewStyle().
				Foreground(lipgloss.Color(mocha.Pink().Hex)),
			headerStyle: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(mocha.Green().Hex)),
		}
	}

	// Light mode colors (default - Catppuccin Latte)
	latte := catppuccin.Latte
	return &Printer{
		w: w,
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(latte.Mauve().Hex)),
		dimStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(latte.Overlay1().Hex)),
		okStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(latte.Green().Hex)),
		warnStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(latte.Yellow().Hex)),
		labelStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(latte.Pink().Hex)),
		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(latte.Green().Hex)),
	}
}

func (p *Printer) Banner() {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.titleStyle.Render("  standup"))
	fmt.Fprintln(p.w, p.dimStyle.Render("  Generate your daily standup in seconds"))
	fmt.Fprintln(p.w)
}

func (p *Printer) Scanning() {
	fmt.Fprintln(p.w, p.dimStyle.Render("  Scanning git commits from the last 24 hours..."))
}

func (p *Printer) Scanned(name string, commits, filesChanged int) {
	line := fmt.Sprintf("  %s: %d commit(s), %d file(s) changed", name, commits, filesChanged)
	fmt.Fprintln(p.w, p.okStyle.Render(line))
}

func (p *Printer) Skipped(path string) {
	fmt.Fprintln(p.w, p.warnStyle.Render("  Warning: skipped non-git repo "+path))
}

func (p *Printer) Blank() {
	fmt.Fprintln(p.w)
}

// Report prints the rendered standup between dividers, indented two
// spaces, with a format tag on the header.
func (p *Printer) Report(text, format string) {
	divider := p.dimStyle.Render("  " + strings.Repeat("-", 50))

	fmt.Fprintln(p.w, divider)
	fmt.Fprintln(p.w, p.headerStyle.Render("  Your Standup ")+p.labelStyle.Render("["+format+"]"))
	fmt.Fprintln(p.w)
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintln(p.w, "  "+line)
	}
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, divider)
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.dimStyle.Render("  Tip: use --format slack | markdown | plain"))
	fmt.Fprintln(p.w)
}

func (p *Printer) Copied() {
	fmt.Fprintln(p.w, p.okStyle.Render("  Copied standup to clipboard"))
	fmt.Fprintln(p.w)
}

func (p *Printer) CopyFailed() {
	fmt.Fprintln(p.w, p.warnStyle.Render("  Warning: clipboard copy unavailable"))
	fmt.Fprintln(p.w)
}
