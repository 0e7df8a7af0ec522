package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pashkovdenis/thoughtmodel"
)

var (
	validStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// printChecks writes one line per check: "Valid" or "False", the stimulus, then the answer given
// and the one expected. It returns the number that failed.
func printChecks(w io.Writer, results []thoughtmodel.CheckResult) (failed int) {
	for _, r := range results {
		status := validStyle.Render("Valid")
		if !r.Valid {
			status = failStyle.Render("False")
			failed++
		}

		fmt.Fprintf(w, "%s %s %s\n", status, strings.Join(r.Stimulus, " "),
			dimStyle.Render(fmt.Sprintf("→ %s (want %s)", r.Got.Answer, r.Expect)))
	}

	if failed == 0 {
		fmt.Fprintln(w, "Ready for action")
	}

	return failed
}

func printOutputs(w io.Writer, stimulus string, outs []thoughtmodel.Output) {
	fmt.Fprintln(w, dimStyle.Render("stimulus: "+stimulus))
	for i, o := range outs {
		fmt.Fprintf(w, "%d. %s\n", i+1, o)
	}
}
