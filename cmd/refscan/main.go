package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lanternworks/refscan"
	"github.com/lanternworks/refscan/filter"
	"github.com/lanternworks/refscan/finding"
	"github.com/lanternworks/refscan/project"
	"github.com/lanternworks/refscan/telemetry"
)

var version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "refscan",
		Short: "Find missing references in scenes and assets",
		Long: `Refscan walks the object trees of a content project (scenes and prefab
assets stored as YAML documents) and reports missing references:
object-reference properties whose recorded target can no longer be
resolved, and parts whose script asset is gone.

Findings are log lines, not failures. The exit status reflects only
whether the scan itself could run; a clean exit with findings on stderr
is the normal shape of a broken project.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("project", "p", ".", "Project directory or manifest path (walks up to find a manifest when unset)")
	rootCmd.PersistentFlags().String("filter", "", "CEL expression selecting nodes to inspect (e.g. 'active && depth < 3')")
	rootCmd.PersistentFlags().Bool("trace", false, "Log one span per scene traversal")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringP("out", "o", "", "Write findings to this file ('-' for stdout)")
	rootCmd.PersistentFlags().String("format", string(finding.FormatJSON), "Findings output format: json|csv")

	sceneCmd := &cobra.Command{
		Use:   "scene [path]",
		Short: "Scan one scene document (default: the manifest's current scene)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScene,
	}

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "Scan every enabled scene from the project manifest",
		Args:  cobra.NoArgs,
		RunE:  runScenes,
	}

	assetsCmd := &cobra.Command{
		Use:   "assets",
		Short: "Scan all prefab documents under the asset root",
		Args:  cobra.NoArgs,
		RunE:  runAssets,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "refscan %s\n", version)
		},
	}

	rootCmd.AddCommand(
		sceneCmd,
		scenesCmd,
		assetsCmd,
		versionCmd,
	)

	return rootCmd
}

func runScene(cmd *cobra.Command, args []string) error {
	return runScan(cmd, func(proj *project.Project) ([]refscan.Source, error) {
		if len(args) > 0 {
			return []refscan.Source{proj.SceneAt(args[0])}, nil
		}
		src, err := proj.CurrentScene()
		if err != nil {
			return nil, err
		}
		return []refscan.Source{src}, nil
	})
}

func runScenes(cmd *cobra.Command, args []string) error {
	return runScan(cmd, func(proj *project.Project) ([]refscan.Source, error) {
		scenes := proj.EnabledScenes()
		if len(scenes) == 0 {
			return nil, errors.New("no enabled scenes in project manifest")
		}
		sources := make([]refscan.Source, 0, len(scenes))
		for _, s := range scenes {
			sources = append(sources, s)
		}
		return sources, nil
	})
}

func runAssets(cmd *cobra.Command, args []string) error {
	return runScan(cmd, func(proj *project.Project) ([]refscan.Source, error) {
		return []refscan.Source{proj.Assets()}, nil
	})
}

type scanFlags struct {
	project string
	filter  string
	trace   bool
	verbose bool
	out     string
	format  finding.ExportFormat
}

func parseScanFlags(cmd *cobra.Command) (*scanFlags, error) {
	flags := &scanFlags{}

	projectPath, err := cmd.Flags().GetString("project")
	if err != nil {
		return nil, fmt.Errorf("failed to read --project flag: %w", err)
	}
	flags.project = projectPath

	filterExpr, err := cmd.Flags().GetString("filter")
	if err != nil {
		return nil, fmt.Errorf("failed to read --filter flag: %w", err)
	}
	flags.filter = filterExpr

	trace, err := cmd.Flags().GetBool("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to read --trace flag: %w", err)
	}
	flags.trace = trace

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, fmt.Errorf("failed to read --verbose flag: %w", err)
	}
	flags.verbose = verbose

	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return nil, fmt.Errorf("failed to read --out flag: %w", err)
	}
	flags.out = out

	rawFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return nil, fmt.Errorf("failed to read --format flag: %w", err)
	}
	format, err := finding.ParseExportFormat(rawFormat)
	if err != nil {
		return nil, err
	}
	flags.format = format

	return flags, nil
}

// runScan is the shared body of the scan subcommands. pick chooses which
// sources of the opened project to walk.
func runScan(cmd *cobra.Command, pick func(*project.Project) ([]refscan.Source, error)) error {
	flags, err := parseScanFlags(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(flags.verbose)

	projectPath := flags.project
	if !cmd.Flags().Changed("project") {
		root, err := project.Find(projectPath)
		if err != nil {
			return err
		}
		projectPath = root
	}

	proj, err := project.Open(projectPath)
	if err != nil {
		return fmt.Errorf("failed to open project at %s: %w", projectPath, err)
	}
	logger.Debug("project opened",
		"root", proj.Root(),
		"name", proj.Config().Name,
		"assets", proj.Catalog().Len())

	sources, err := pick(proj)
	if err != nil {
		return err
	}

	opts := []refscan.Option{refscan.WithLogger(logger)}

	if flags.filter != "" {
		expr, err := filter.Compile(flags.filter)
		if err != nil {
			return err
		}
		opts = append(opts, refscan.WithFilter(expr))
		logger.Debug("node filter compiled", "expr", expr.String())
	}

	if flags.trace {
		tp := telemetry.NewLogTracerProvider(logger)
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Warn("failed to shut down tracer provider", "error", err)
			}
		}()
		opts = append(opts, refscan.WithTracer(tp.Tracer(telemetry.ServiceName)))
	}

	var collector *refscan.Collector
	if flags.out != "" {
		collector = &refscan.Collector{}
		opts = append(opts, refscan.WithReporter(refscan.MultiReporter(
			refscan.NewLogReporter(logger),
			collector,
		)))
	}

	scanner, err := refscan.New(opts...)
	if err != nil {
		return err
	}

	res, err := scanner.ScanSources(cmd.Context(), sources...)
	if err != nil {
		return err
	}

	logger.Info("scan complete",
		"scenes", res.Scenes,
		"skipped_sources", res.SkippedSources,
		"nodes", res.Nodes,
		"parts", res.Parts,
		"refs", res.Refs,
		"findings", res.Findings)

	if collector != nil {
		if err := writeFindings(cmd, logger, flags.out, flags.format, collector.Findings()); err != nil {
			return err
		}
	}
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func writeFindings(cmd *cobra.Command, logger *slog.Logger, path string, format finding.ExportFormat, findings []finding.Finding) error {
	if path == "-" {
		return finding.Write(cmd.OutOrStdout(), format, findings)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create findings file: %w", err)
	}
	defer refscan.CloseWithLog(f, logger, "findings file")

	if err := finding.Write(f, format, findings); err != nil {
		return fmt.Errorf("failed to write findings: %w", err)
	}
	logger.Info("findings written", "path", path, "format", format, "count", len(findings))
	return nil
}
