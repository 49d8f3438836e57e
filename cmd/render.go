package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantaops/pulsekit/core/program"
	"github.com/quantaops/pulsekit/infra/logger"
	"github.com/quantaops/pulsekit/infra/render"
)

var (
	renderFormat string
	renderOut    string
)

var renderCmd = &cobra.Command{
	Use:   "render <program file>",
	Short: "Build a pulse program and render its schedule",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "output format: text or html")
	renderCmd.Flags().StringVarP(&renderOut, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logg := logger.New("render-command")

	p, err := program.Load(args[0])
	if err != nil {
		return fmt.Errorf("load program: %w", err)
	}
	sched, err := p.Build()
	if err != nil {
		return fmt.Errorf("build program: %w", err)
	}

	format := render.Format(cfg.Render.Format)
	if renderFormat != "" {
		format = render.Format(renderFormat)
	}
	var rdr render.Renderer
	switch format {
	case render.FormatText:
		rdr = &render.TextRenderer{}
	case render.FormatHTML:
		rdr = &render.ChartRenderer{
			Theme:     cfg.Render.Theme,
			Width:     cfg.Render.Width,
			Height:    cfg.Render.Height,
			MaxPoints: cfg.Render.MaxPoints,
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	out := os.Stdout
	if renderOut != "" {
		f, err := os.Create(renderOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				logg.Errorf("close output: %v", err)
			}
		}()
		out = f
	}

	start := time.Now()
	if err := rdr.Render(out, sched); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	logg.Debugw("rendered", map[string]any{
		"schedule": sched.Name(),
		"format":   string(format),
		"elapsed":  time.Since(start).String(),
	})
	return nil
}
