package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"deskenv/internal/config"
	"deskenv/internal/display"
	"deskenv/internal/hostinfo"
	"deskenv/internal/logging"
	"deskenv/internal/model"
)

func newDetectCmd(opts *Options) *cobra.Command {
	var (
		format   string
		withHost bool
	)

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect the environment once and print the result",
		Long: `Detect the environment once and print the result.

Fails when the session type cannot be determined, which means the
process is not running inside an X11 or Wayland session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, opts, format, withHost)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "",
		fmt.Sprintf("Output format (%s); defaults to output_format from config", strings.Join(display.Formats(), ", ")))
	cmd.Flags().BoolVar(&withHost, "host", false, "Include kernel, platform and chassis information")

	return cmd
}

func newShowCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the environment and host information as text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, opts, display.FormatText, true)
		},
	}
}

func runDetect(cmd *cobra.Command, opts *Options, format string, withHost bool) error {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.New(cfg.Logging())

	det, err := newDetector(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create detector: %w", err)
	}

	info, err := det.Detect()
	if err != nil {
		return err
	}

	report := model.Report{Environment: info}
	if withHost {
		report.Host = hostinfo.Collect(logger)
	}

	if format == "" {
		format = cfg.OutputFormat
	}
	return display.Render(cmd.OutOrStdout(), report, format, opts.color())
}

func newConfigCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect deskenv configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "defaults",
		Short: "Print the built-in configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Default().Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate [file]",
		Short: "Load and validate a config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.ConfigPath
			if len(args) == 1 {
				path = args[0]
			}
			path = config.ResolvePath(path)
			if path == "" {
				return fmt.Errorf("no config file given and none found at %s", config.UserConfigPath())
			}

			if _, err := config.Load(path); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			return err
		},
	})

	return cmd
}
