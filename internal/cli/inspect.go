package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flamegraph/pkg/render/flame/layout"
	"github.com/matzehuels/flamegraph/pkg/render/flame/styles"
	"github.com/matzehuels/flamegraph/pkg/tree"
)

const defaultInspectDepth = 2

type inspectOpts struct {
	depth       int
	width       float64
	palette     string
	interactive bool
}

// inspectCommand creates the inspect command for summarizing a tree.
func (c *CLI) inspectCommand() *cobra.Command {
	opts := inspectOpts{
		depth:   defaultInspectDepth,
		width:   layout.DefaultWidth,
		palette: styles.PaletteOrange,
	}

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Summarize a metric tree or browse it interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := importTree(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if opts.interactive {
				return c.runBrowser(cmd.Context(), root, opts)
			}
			return writeSummary(cmd.OutOrStdout(), root, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.depth, "depth", "d", opts.depth, "levels listed in the frame table")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "canvas width used for the visible depth")
	cmd.Flags().StringVar(&opts.palette, "palette", opts.palette, "palette for the interactive bars")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse the tree in a zoomable terminal view")

	return cmd
}

func (c *CLI) runBrowser(ctx context.Context, root tree.Node, opts inspectOpts) error {
	colors, err := styles.Palette(opts.palette)
	if err != nil {
		return err
	}
	p := tea.NewProgram(NewTreeBrowserModel(root, colors), tea.WithContext(ctx), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// writeSummary prints key figures, metric warnings, and a table of the
// widest frames down to opts.depth.
func writeSummary(w io.Writer, root tree.Node, opts inspectOpts) error {
	budget := opts.width - 2*layout.GraphMargin
	visible := layout.EvaluateDepth(root, budget, nil)

	kv := func(k, v string) { printKeyValue(w, k, v) }

	fmt.Fprintln(w, StyleTitle.Render(root.Label()))
	kv("metric", formatMetric(root.Metric()))
	kv("nodes", fmt.Sprint(tree.Count(root)))
	kv("height", fmt.Sprint(tree.Height(root)))
	kv("visible depth", fmt.Sprintf("%d at %.0fpx", visible, opts.width))
	kv("auto height", fmt.Sprintf("%.0fpx", float64(visible+1)*layout.DefaultRowHeight+layout.DefaultHeaderHeight))

	for _, v := range tree.Check(root) {
		msg := fmt.Sprintf("%s: children sum %s exceeds metric %s", v.Path, formatMetric(v.ChildSum), formatMetric(v.Metric))
		if v.Negative {
			msg = fmt.Sprintf("%s: invalid metric %s", v.Path, formatMetric(v.Metric))
		}
		printWarning(w, "%s", msg)
	}

	rows := frameRows(root, opts.depth)
	if len(rows) == 0 {
		return nil
	}
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Frame", "Metric", "Share", "Depth").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col > 0 {
				return lipgloss.NewStyle().Foreground(colorGray).Align(lipgloss.Right)
			}
			return lipgloss.NewStyle()
		})
	fmt.Fprintln(w)
	fmt.Fprintln(w, t.Render())
	return nil
}

// frameRows lists root's descendants pre-order down to maxDepth levels.
func frameRows(root tree.Node, maxDepth int) [][]string {
	total := root.Metric()
	var rows [][]string
	tree.Walk(root, func(n tree.Node, depth int) bool {
		if depth == 0 {
			return true
		}
		if depth > maxDepth {
			return false
		}
		share := "-"
		if total > 0 {
			share = fmt.Sprintf("%.1f%%", n.Metric()/total*100)
		}
		rows = append(rows, []string{
			strings.Repeat("  ", depth-1) + n.Label(),
			formatMetric(n.Metric()),
			share,
			fmt.Sprint(depth),
		})
		return true
	})
	return rows
}
