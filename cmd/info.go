package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantaops/pulsekit/core/program"
	"github.com/quantaops/pulsekit/infra/render"
	"github.com/quantaops/pulsekit/pkg/export"
)

var infoExport string

var infoCmd = &cobra.Command{
	Use:   "info <program file>",
	Short: "Summarise a pulse program's schedule",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().StringVar(&infoExport, "export", "", "also export flattened entries: json or csv")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	p, err := program.Load(args[0])
	if err != nil {
		return fmt.Errorf("load program: %w", err)
	}
	sched, err := p.Build()
	if err != nil {
		return fmt.Errorf("build program: %w", err)
	}
	if err := (&render.TextRenderer{}).Render(os.Stdout, sched); err != nil {
		return err
	}
	switch infoExport {
	case "":
	case "json":
		return export.WriteJSON(os.Stdout, sched)
	case "csv":
		return export.WriteCSV(os.Stdout, sched)
	default:
		return fmt.Errorf("unknown export format %q", infoExport)
	}
	return nil
}
