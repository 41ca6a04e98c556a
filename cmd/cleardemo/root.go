package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/clearpass"
	"github.com/gogpu/clearpass/backend"
	"github.com/gogpu/clearpass/config"
	"github.com/gogpu/clearpass/graph"
	"github.com/gogpu/clearpass/render"
)

// demo is the state shared by the commands after PersistentPreRunE.
type demo struct {
	cfg   config.Config
	frame *config.Frame
	world *graph.World
	graph *graph.Graph
}

func newRootCmd() *cobra.Command {
	d := &demo{}

	root := &cobra.Command{
		Use:   "cleardemo",
		Short: "Clear every render destination of a scene once and save the result",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := baseLogger(cmd)
			if err != nil {
				return fmt.Errorf("could not retrieve logger: %w", err)
			}
			clearpass.SetLogger(logger)

			path, _ := cmd.Flags().GetString("config")
			return d.setup(path)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, _ := cmd.Flags().GetString("output")
			frames, _ := cmd.Flags().GetInt("frames")
			return d.run(cmd.Context(), out, frames)
		},
		SilenceUsage:      true,
		DisableAutoGenTag: true,
	}
	root.PersistentFlags().StringP("config", "c", "", "configuration file (default: ./clearpass.toml)")
	root.Flags().StringP("output", "o", ".", "directory the PNGs are written to")
	root.Flags().Int("frames", 1, "number of frames to run")
	registerLoggingFlags(root)

	root.AddCommand(&cobra.Command{
		Use:   "plan",
		Short: "Print the clears of one frame without running it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return d.printPlan(cmd)
		},
	})
	return root
}

func (d *demo) setup(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	cc, err := cfg.ClearColor.Build()
	if err != nil {
		return err
	}
	frame, err := cfg.Scene.Build()
	if err != nil {
		return err
	}

	w := graph.NewWorld()
	graph.InsertResource(w, cc)
	w.Views = frame.Views
	w.Windows = frame.Windows
	w.Resolver = frame.Resolver()

	g := graph.New()
	if err := g.AddNode(clearpass.DefaultLabel, clearpass.NewClearPassNode()); err != nil {
		return err
	}
	if err := g.Validate(w); err != nil {
		return err
	}

	d.cfg, d.frame, d.world, d.graph = cfg, frame, w, g
	return nil
}

func (d *demo) run(ctx context.Context, out string, frames int) error {
	b := backend.Get(d.cfg.Backend)
	if b == nil {
		return fmt.Errorf("backend %q not available (have %s)", d.cfg.Backend, strings.Join(backend.Available(), ", "))
	}
	if err := b.Init(); err != nil {
		return fmt.Errorf("init %s backend: %w", b.Name(), err)
	}
	defer b.Close()

	for i := 0; i < frames; i++ {
		if err := graph.RunFrame(ctx, d.graph, b, d.world); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}

	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, dst := range d.targets() {
		path := filepath.Join(out, strings.ReplaceAll(dst.String(), ":", "-")+".png")
		if err := savePNG(path, d.frame.Targets[dst]); err != nil {
			return err
		}
		clearpass.Logger().Info("wrote target", "destination", dst.String(), "path", path)
	}
	return nil
}

func (d *demo) printPlan(cmd *cobra.Command) error {
	p, err := clearpass.NewClearPassNode().Plan(d.world)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, op := range p.Ops() {
		target := "-"
		if op.Destination != nil {
			target = op.Destination.String()
		}
		var aspects []string
		if op.ColorView != nil {
			aspects = append(aspects, "color="+op.Color.Hex())
		}
		if op.DepthView != nil {
			aspects = append(aspects, fmt.Sprintf("depth=%g", op.Depth))
		}
		fmt.Fprintf(w, "%-6s %-10s %-12s %s\n", op.Source, op.Label, target, strings.Join(aspects, " "))
	}
	return nil
}

// targets returns the destinations of the frame's windows and images in
// destination order.
func (d *demo) targets() []render.Destination {
	out := make([]render.Destination, 0, len(d.frame.Targets))
	for dst := range d.frame.Targets {
		out = append(out, dst)
	}
	slices.SortFunc(out, render.Destination.Compare)
	return out
}

func savePNG(path string, view *render.PixmapView) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, view.Image()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
