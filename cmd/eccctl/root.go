package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/joshuapare/ecckit/ecc"
	"github.com/joshuapare/ecckit/ecc/metrics"
	"github.com/joshuapare/ecckit/internal/logger"
	"github.com/joshuapare/ecckit/pkg/eccmem"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	configPath string
	modeFlag   string
	logFormat  string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "eccctl",
	Short: "Exercise an ECC-protected memory region",
	Long: `eccctl drives an in-process ECC-protected memory region: it allocates
blocks, writes payloads, injects bit faults and reports how reads and scrubs
detect and correct them.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Close()
	},
	SilenceUsage: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML region config file")
	rootCmd.PersistentFlags().StringVar(&modeFlag, "mode", "", "Decode mode override (hamming, reference)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Event log format (text, json); empty disables logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Event log level (debug, info, warn, error)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// fileConfig returns the config file contents, or the defaults.
func fileConfig() (eccmem.FileConfig, error) {
	if configPath == "" {
		return eccmem.DefaultFileConfig(), nil
	}
	return eccmem.LoadConfig(configPath)
}

// initLogging points the global logger at stderr or the configured file.
func initLogging() error {
	fc, err := fileConfig()
	if err != nil {
		return err
	}
	format, level, path := fc.Log.Format, fc.Log.Level, fc.Log.Path
	enabled := configPath != "" && path != ""
	if logFormat != "" {
		format, enabled = logFormat, true
	}
	if logLevel != "" {
		level = logLevel
	}
	lvl, err := logger.ParseLevel(level)
	if err != nil {
		return err
	}
	_, err = logger.Init(logger.Options{
		Enabled: enabled,
		Path:    path,
		Format:  format,
		Level:   lvl,
	})
	return err
}

// openMemory builds a region from the config file, mode flag and global
// logger. The returned registry holds metrics for every region event.
func openMemory() (*eccmem.Memory, *prometheus.Registry, error) {
	fc, err := fileConfig()
	if err != nil {
		return nil, nil, err
	}
	if modeFlag != "" {
		fc.Mode = modeFlag
	}
	rc, err := fc.RegionConfig()
	if err != nil {
		return nil, nil, err
	}
	reg := prometheus.NewRegistry()
	rc.Logger = logger.L
	rc.Observer = metrics.New(reg)
	mem, err := eccmem.Open(rc)
	if err != nil {
		return nil, nil, err
	}
	printVerbose("Region: %s, %d-byte blocks, %s decoding\n",
		humanize.Bytes(uint64(rc.Capacity)), rc.BlockSize, rc.Mode)
	return mem, reg, nil
}

// currentMode resolves the effective decode mode without opening a region.
func currentMode() (ecc.Mode, error) {
	fc, err := fileConfig()
	if err != nil {
		return 0, err
	}
	if modeFlag != "" {
		fc.Mode = modeFlag
	}
	return ecc.ParseMode(fc.Mode)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// printMetrics writes every counter and gauge in reg as "name value" lines.
func printMetrics(reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				printInfo("%s %g\n", mf.GetName(), m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				printInfo("%s %g\n", mf.GetName(), m.GetGauge().GetValue())
			}
		}
	}
	return nil
}

// hexBytes renders b as space-separated upper-case hex pairs.
func hexBytes(b []byte) string {
	out := make([]byte, 0, len(b)*3)
	for i, v := range b {
		if i > 0 {
			out = append(out, ' ')
		}
		out = fmt.Appendf(out, "%02X", v)
	}
	return string(out)
}
