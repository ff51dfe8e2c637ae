// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/krls/fit"
	"github.com/katalvlaran/krls/internal/dataset"
	"github.com/katalvlaran/krls/mfx"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#2C4A54")
	colorError  = lipgloss.Color("#E74C3C")
	colorOK     = lipgloss.Color("#2CD7C7")
)

var styles = struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Header  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	Label:   lipgloss.NewStyle().Foreground(colorMuted).Width(12),
	Header:  lipgloss.NewStyle().Bold(true).Padding(0, 1),
	Success: lipgloss.NewStyle().Foreground(colorOK),
	Error:   lipgloss.NewStyle().Foreground(colorError),
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', 6, 64) }

// writeFitReport prints the fit summary followed by a table of average marginal
// effects with their standard errors, one row per covariate.
func writeFitReport(w io.Writer, ds *dataset.Dataset, m *fit.Model, eff mfx.Effects) error {
	lossLabel := "loo loss"
	if m.Kind == fit.KindLogistic {
		lossLabel = "objective"
	}
	summary := [][2]string{
		{"model", m.Kind.String()},
		{"response", ds.Response},
		{"n", strconv.Itoa(ds.X.Rows())},
		{"bandwidth", num(m.Bandwidth)},
		{"lambda", num(m.Lambda)},
		{"rank", strconv.Itoa(m.Rank)},
		{"intercept", num(m.Beta0)},
		{lossLabel, num(m.Loss)},
	}
	if _, err := fmt.Fprintln(w, styles.Title.Render("KRLS fit")); err != nil {
		return err
	}
	for _, kv := range summary {
		if _, err := fmt.Fprintln(w, styles.Label.Render(kv[0])+kv[1]); err != nil {
			return err
		}
	}

	avg, se := eff.Average(), eff.StdErr()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("covariate", "avg effect", "std err")
	for j, name := range ds.Names {
		t.Row(name, num(avg[j]), num(se[j]))
	}
	_, err := fmt.Fprintln(w, t.Render())

	return err
}
