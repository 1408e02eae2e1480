package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/jt828/perfmon/internal/bootstrap"
	"github.com/jt828/perfmon/internal/interceptor"
	"github.com/jt828/perfmon/internal/workload"
	"github.com/jt828/perfmon/pkg/observability"
	obsImpl "github.com/jt828/perfmon/pkg/observability/implementation"
	"github.com/spf13/cobra"
)

var runInterval time.Duration

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the sample workload and log a report periodically",
	Long: `Runs the sample workload every --interval, logs the performance report
every report_interval and serves Prometheus metrics on metrics_addr until
interrupted.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().DurationVar(&runInterval, "interval", time.Second, "workload interval")
}

func runRun(c *cobra.Command, args []string) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if runInterval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", runInterval)
	}

	ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	obs, err := obsImpl.NewObservability(obsImpl.Config{
		Development: cfg.Development,
		MetricsAddr: cfg.MetricsAddr,
	})
	if err != nil {
		return err
	}
	log := obs.Logger()

	inst, err := bootstrap.InitializeInstrumentation(cfg, obs, workload.NewLoader(20*time.Millisecond, 40*time.Millisecond))
	if err != nil {
		return err
	}
	defer inst.Close()

	obs.Use(interceptor.TimingInterceptor(inst.Monitor, log))
	if err := obs.Start(ctx); err != nil {
		log.Error("failed to start observability", observability.Err(err))
	}

	w := workload.New(inst.Monitor, inst.Cache, log)

	log.Info("workload running",
		observability.Duration("interval", runInterval),
		observability.Duration("report_interval", cfg.ReportInterval),
	)
	err = w.Run(ctx, runInterval, cfg.ReportInterval, inst.Monitor.LogReport)
	inst.Monitor.LogReport()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if cerr := obs.Close(shutdownCtx); cerr != nil {
		log.Error("failed to close observability", observability.Err(cerr))
	}

	log.Info("workload stopped")
	return err
}
