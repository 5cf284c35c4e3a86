package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/flamegraph/pkg/pipeline"
	"github.com/matzehuels/flamegraph/pkg/render/flame/styles"
	"github.com/matzehuels/flamegraph/pkg/tree"
)

const (
	defaultExampleDir = "examples"
	exampleTitle      = "Hello Flame Graph"
	chainLength       = 20
)

// example is a bundled flame graph written by the example command.
type example struct {
	name  string
	build func() (tree.Node, error)
	opts  pipeline.Options
}

// examples returns the bundled examples in write order.
func examples() []example {
	return []example{
		{
			name:  "simple",
			build: func() (tree.Node, error) { return chain("Node", chainLength), nil },
			opts:  pipeline.Options{Title: exampleTitle, Width: 800, Height: 600},
		},
		{
			name:  "adapter",
			build: adapterTree,
			opts:  pipeline.Options{Title: exampleTitle, Width: 800, Height: 800, AutoHeight: true},
		},
		{
			name:  "colorizer",
			build: func() (tree.Node, error) { return chain("Node", chainLength), nil },
			opts: pipeline.Options{
				Title:      exampleTitle,
				Width:      800,
				Height:     600,
				FrameColor: styles.Threshold(styles.DefaultThreshold, styles.OrangeRed, styles.DarkOrange),
			},
		},
	}
}

type exampleOpts struct {
	dir   string
	force bool
}

// exampleCommand creates the example command that writes the bundled graphs.
func (c *CLI) exampleCommand() *cobra.Command {
	opts := exampleOpts{dir: defaultExampleDir}

	cmd := &cobra.Command{
		Use:   "example [dir]",
		Short: "Write the bundled example flame graphs",
		Long: `Write three example flame graphs as SVG:

  simple     a chain of 20 nested frames
  adapter    two chains under one root, built from a foreign tree type, auto height
  colorizer  the simple chain with frames above metric 10 drawn orange-red`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.dir = args[0]
			}
			return c.runExamples(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.force, "force", false, "remove existing example files first")
	return cmd
}

func (c *CLI) runExamples(ctx context.Context, opts exampleOpts) error {
	runner := c.newRunner()
	for _, ex := range examples() {
		base := filepath.Join(opts.dir, ex.name)
		if opts.force {
			if err := os.Remove(base + "." + pipeline.FormatSVG); err != nil && !os.IsNotExist(err) {
				return err
			}
		}

		root, err := ex.build()
		if err != nil {
			return fmt.Errorf("%s: %w", ex.name, err)
		}
		result, err := runner.Execute(ctx, root, ex.opts)
		if err != nil {
			return fmt.Errorf("%s: %w", ex.name, err)
		}
		paths, err := runner.WriteArtifacts(ctx, result, base)
		if err != nil {
			return fmt.Errorf("%s: %w", ex.name, err)
		}
		printSuccess(c.Out, "Wrote %s example", StyleHighlight.Render(ex.name))
		for _, p := range paths {
			printFile(c.Out, p)
		}
	}
	printNextStep(c.Out, "Render your own", "flamegraph render examples/profile.json")
	return nil
}

// chain builds prefix n → prefix n-1 → … → prefix 1, each metric equal to
// its number.
func chain(prefix string, n int) *tree.Simple {
	root := tree.New(fmt.Sprintf("%s %d", prefix, n), float64(n))
	cur := root
	for i := n - 1; i > 0; i-- {
		child := tree.New(fmt.Sprintf("%s %d", prefix, i), float64(i))
		cur.Add(child)
		cur = child
	}
	return root
}

// sampleNode stands in for a caller-owned tree type.
type sampleNode struct {
	text     string
	value    float64
	children []*sampleNode
}

func sampleChain(text string, levels int) *sampleNode {
	root := &sampleNode{text: text, value: float64(levels)}
	cur := root
	for i := levels - 1; i > 0; i-- {
		child := &sampleNode{text: fmt.Sprintf("Node %d", i), value: float64(i)}
		cur.children = append(cur.children, child)
		cur = child
	}
	return root
}

// adapterTree converts a foreign tree through tree.Adapt: a "Full Tree" root
// over chains of 80 and 20 levels.
func adapterTree() (tree.Node, error) {
	const levels = 20
	full := &sampleNode{
		text:  "Full Tree",
		value: levels*4 + levels,
		children: []*sampleNode{
			sampleChain("Root", levels*4),
			sampleChain("Root2", levels),
		},
	}
	return tree.Adapt(full,
		func(n *sampleNode) string { return n.text },
		func(n *sampleNode) float64 { return n.value },
		func(n *sampleNode) []*sampleNode { return n.children },
	)
}
