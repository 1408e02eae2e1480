package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/jt828/perfmon/internal/bootstrap"
	"github.com/jt828/perfmon/internal/workload"
	"github.com/jt828/perfmon/pkg/perf"
	obsImpl "github.com/jt828/perfmon/pkg/observability/implementation"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	reportIterations int
	reportOutput     string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the workload a few times and print one report",
	Long: `Runs the sample workload --iterations times with instrumentation enabled
and prints the resulting report as a table, JSON or YAML.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().IntVarP(&reportIterations, "iterations", "n", 3, "number of workload batches")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "table", "output format: table, json or yaml")
}

func runReport(c *cobra.Command, args []string) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	cfg.Enabled = true
	cfg.MetricsAddr = ""

	obs, err := obsImpl.NewObservability(obsImpl.Config{Development: cfg.Development})
	if err != nil {
		return err
	}
	defer obs.Close(context.Background())

	inst, err := bootstrap.InitializeInstrumentation(cfg, obs, workload.NewLoader(5*time.Millisecond, 10*time.Millisecond))
	if err != nil {
		return err
	}
	defer inst.Close()

	w := workload.New(inst.Monitor, inst.Cache, obs.Logger())
	for i := 0; i < reportIterations; i++ {
		if err := w.RunOnce(c.Context()); err != nil {
			return err
		}
	}

	return writeReport(c.OutOrStdout(), reportOutput, inst.Monitor.Report())
}

func writeReport(out io.Writer, format string, report *perf.Report) error {
	if report == nil {
		_, err := fmt.Fprintln(out, "instrumentation disabled")
		return err
	}

	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(report)
	case "table":
		return writeReportTable(out, report)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func writeReportTable(out io.Writer, report *perf.Report) error {
	fmt.Fprintf(out, "Cache: %+v\n\n", report.Cache)

	averages := tablewriter.NewWriter(out)
	averages.Header("Label", "Average")
	for _, label := range slices.Sorted(maps.Keys(report.AverageDurations)) {
		if err := averages.Append(label, report.AverageDurations[label]); err != nil {
			return err
		}
	}
	if err := averages.Render(); err != nil {
		return err
	}

	fmt.Fprintln(out)

	recent := tablewriter.NewWriter(out)
	recent.Header("ID", "Label", "Duration", "Completed")
	for _, m := range report.RecentMeasures {
		err := recent.Append(
			strconv.FormatInt(m.ID, 10),
			m.Label,
			perf.Millis(m.Duration).StringFixed(2)+"ms",
			m.CompletedAt.Format(time.RFC3339Nano),
		)
		if err != nil {
			return err
		}
	}
	if err := recent.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "\nTotal measures: %d\n", report.TotalMeasures)
	return err
}
