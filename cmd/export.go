package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/studyplan/internal/export"
	"github.com/abhisek/studyplan/internal/filter"
	"github.com/abhisek/studyplan/internal/sessions"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export sessions to a calendar (ics) or spreadsheet (xlsx)",
	Example: `  studyplan export --format ics --out plan.ics
  studyplan export --format xlsx --out progress.xlsx --filter 'completed'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("out")
		expr, _ := cmd.Flags().GetString("filter")

		if format != "ics" && format != "xlsx" {
			return fmt.Errorf("unknown format %q: use ics or xlsx", format)
		}
		f, err := filter.Compile(expr)
		if err != nil {
			return err
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		all, err := d.sessions.List(cmd.Context())
		if err != nil {
			return err
		}
		list, err := f.Apply(all)
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if outPath != "" && outPath != "-" {
			file, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer file.Close()
			w = file
		}

		if err := write(w, format, list, d); err != nil {
			return err
		}

		d.logger.Info("sessions exported",
			zap.String("format", format),
			zap.Int("count", len(list)),
			zap.String("out", outPath))
		if outPath != "" && outPath != "-" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d sessions to %s\n", len(list), outPath)
		}
		return nil
	},
}

func write(w io.Writer, format string, list []sessions.Session, d *deps) error {
	if format == "xlsx" {
		return export.XLSX(w, list)
	}
	loc, err := d.cfg.Export.Location()
	if err != nil {
		return err
	}
	return export.ICS(w, list, loc)
}

func init() {
	exportCmd.Flags().String("format", "ics", "Output format: ics or xlsx")
	exportCmd.Flags().StringP("out", "o", "-", "Output file (- for stdout)")
	exportCmd.Flags().String("filter", "", "Only export sessions matching this CEL expression")
}
