// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package selfcheck

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	passStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Render writes one line per case followed by a summary line.
func Render(w io.Writer, r Report, color bool) error {
	paint := func(s lipgloss.Style, text string) string {
		if !color {
			return text
		}
		return s.Render(text)
	}

	for _, res := range r.Results {
		var line string
		switch {
		case res.Pass:
			line = fmt.Sprintf("%s %s", paint(passStyle, "PASS"), res.Case.Name)
		case res.Err != nil:
			line = fmt.Sprintf("%s %s %s", paint(failStyle, "FAIL"), res.Case.Name,
				paint(dimStyle, "error: "+res.Err.Error()))
		default:
			line = fmt.Sprintf("%s %s %s", paint(failStyle, "FAIL"), res.Case.Name,
				paint(dimStyle, fmt.Sprintf("got %s, want %s", res.Got, res.Case.Want)))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%d passed, %d failed\n", r.Passed(), r.Failed())
	return err
}
