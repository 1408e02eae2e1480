package cmd

import (
	"github.com/jt828/perfmon/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "perfmon",
	Short:         "In-process performance instrumentation demo",
	Long:          `perfmon drives a sample workload through the performance monitor and reports per-label timings together with cache statistics.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().Bool("development", false, "diagnostic build: enables instrumentation and debug output")
	rootCmd.PersistentFlags().String("log-level", "", "minimum console level: error, warn, info or debug")
	rootCmd.PersistentFlags().Bool("debug", false, "force debug output for this session")
}

// loadConfig merges flags over file and PERFMON_* environment values.
func loadConfig(c *cobra.Command) (config.Config, error) {
	v, err := config.NewViper(cfgFile)
	if err != nil {
		return config.Config{}, err
	}
	if err := bindFlags(v, c); err != nil {
		return config.Config{}, err
	}
	cfg := config.Load(v)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func bindFlags(v *viper.Viper, c *cobra.Command) error {
	flags := c.Root().PersistentFlags()
	for key, name := range map[string]string{
		"development":    "development",
		"log_level":      "log-level",
		"debug_override": "debug",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}
