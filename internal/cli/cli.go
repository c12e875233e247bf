// Package cli implements the deskenv command tree.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"deskenv/internal/config"
	"deskenv/internal/detector"
)

// Options holds the persistent flags shared by every command.
type Options struct {
	ConfigPath   string
	Verbose      bool
	LogLevel     string
	ProcessTable string
	NoColor      bool
}

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "deskenv",
		Short: "Detect the Linux distro, display session and desktop environment",
		Long: `Detect the Linux distro, display session and desktop environment.

deskenv reads /etc/os-release (or /etc/lsb-release, /etc/arch-release),
the XDG session variables and, when allowed, the running process table,
and prints a short record a configuration tool can switch on.

Configuration Priority:
  1. --config flag
  2. DESKENV_CONFIG environment variable
  3. ~/.config/deskenv/config.yaml
  4. built-in defaults`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, opts, "", false)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Show debug diagnostics")
	flags.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.ProcessTable, "process-table", "",
		"Process table backend (gopsutil, go-ps, none)")
	flags.BoolVar(&opts.NoColor, "no-color", false, "Disable colored text output")

	cmd.AddCommand(newDetectCmd(opts))
	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))

	return cmd
}

// loadConfig resolves the config file and applies flag overrides on top.
func (o *Options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if path := config.ResolvePath(o.ConfigPath); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Root().PersistentFlags()
	if flags.Changed("verbose") {
		cfg.Verbose = o.Verbose
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if flags.Changed("process-table") {
		cfg.ProcessTable = o.ProcessTable
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *Options) color() bool {
	if o.NoColor {
		return false
	}
	_, set := os.LookupEnv("NO_COLOR")
	return !set
}

func newDetector(cfg *config.Config, logger zerolog.Logger) (*detector.Detector, error) {
	procs, err := detector.NewProcessTable(cfg.ProcessTable)
	if err != nil {
		return nil, err
	}

	return detector.New(logger,
		detector.WithRoot(cfg.ReleaseRoot),
		detector.WithProcessTable(procs),
		detector.WithDistroNames(cfg.DistroNames),
		detector.WithDesktopNames(cfg.DesktopNames),
		detector.WithExclusiveSessionFallback(cfg.ExclusiveSessionFallback),
	)
}
