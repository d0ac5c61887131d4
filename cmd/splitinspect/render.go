package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/gomlx/loopnest/pkg/lower"
	"github.com/gomlx/loopnest/pkg/schedule"
)

// Renderer prints loop nests and reports, colored if writing to a terminal.
type Renderer struct {
	w     io.Writer
	color bool
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	boundStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	letStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	guardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	siteStyle  = lipgloss.NewStyle().Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	forTypeStyles = map[schedule.ForType]lipgloss.Style{
		schedule.ForTypeParallel:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		schedule.ForTypeVectorized: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		schedule.ForTypeUnrolled:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
)

// NewRenderer writes to w. If color is true, it is only used if os.Stdout is a terminal.
func NewRenderer(w io.Writer, color bool) *Renderer {
	return &Renderer{
		w:     w,
		color: color && term.IsTerminal(os.Stdout.Fd()),
	}
}

func (r *Renderer) render(style lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return style.Render(text)
}

// Nest prints the lowered loop nest.
func (r *Renderer) Nest(nest *lower.StageNest) error {
	_, _ = fmt.Fprintln(r.w, r.render(titleStyle, fmt.Sprintf("%s stage %d", nest.Func, nest.Stage)))
	var buf bytes.Buffer
	if err := nest.Write(&buf); err != nil {
		return err
	}
	inBody := false
	for line := range strings.Lines(buf.String()) {
		line = strings.TrimSuffix(line, "\n")
		trimmed := strings.TrimLeft(line, " ")
		style := siteStyle
		switch {
		case strings.HasPrefix(trimmed, "for "):
			inBody = true
			style = lipgloss.NewStyle()
			for forType, s := range forTypeStyles {
				if strings.HasSuffix(trimmed, ": "+forType.String()) {
					style = s
				}
			}
		case strings.HasPrefix(trimmed, "let ") && !inBody:
			style = boundStyle
		case strings.HasPrefix(trimmed, "let "):
			style = letStyle
		case strings.HasPrefix(trimmed, "if "):
			style = guardStyle
		}
		indent := line[:len(line)-len(trimmed)]
		if _, err := fmt.Fprintln(r.w, indent+r.render(style, trimmed)); err != nil {
			return err
		}
	}
	return nil
}

// Report prints the result of a run.
func (r *Renderer) Report(report *Report) {
	style := okStyle
	if !report.Complete() {
		style = errorStyle
	}
	_, _ = fmt.Fprintf(r.w, "%s: %s\n\n", report.Nest.Prefix, r.render(style, report.String()))
}

// Error prints a scheduling error.
func (r *Renderer) Error(err error) {
	_, _ = fmt.Fprintln(r.w, r.render(errorStyle, "Error:"), err)
}
