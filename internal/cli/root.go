package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aryankumar/appwatch/internal/cluster"
	"github.com/aryankumar/appwatch/internal/config"
	"github.com/aryankumar/appwatch/internal/kube"
	"github.com/aryankumar/appwatch/internal/output"
	"github.com/aryankumar/appwatch/internal/render"
	"github.com/aryankumar/appwatch/internal/resolve"
	"github.com/aryankumar/appwatch/internal/util"
	"github.com/aryankumar/appwatch/internal/watch"
)

var (
	cfgFile string
)

// queryTimeout bounds every single cluster call during a pass.
const queryTimeout = 15 * time.Second

// Execute runs the root command with the provided context
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd creates the root command. The dashboard is the root command
// itself: appwatch [flags] [app ...].
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "appwatch [flags] [app ...]",
		Short: "appwatch - live dashboard for application status in a Kubernetes namespace",
		Long: `appwatch polls a Kubernetes namespace for the status of one or more named
applications and renders a continuously refreshing, color-coded summary:
deployments, replica sets, pods, services, pod health, recent events, and
recent logs.

Applications are matched by the app label first, then by name prefix when
label metadata is absent or inconsistent.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args)
		},
	}

	rootCmd.Flags().StringP("namespace", "n", config.DefaultNamespace, "namespace to watch")
	rootCmd.Flags().IntP("interval", "r", config.DefaultInterval, "refresh interval in seconds (must be positive)")
	rootCmd.Flags().Int("tail", config.DefaultTail, "log lines fetched per pod per pass")
	rootCmd.Flags().Bool("once", false, "render a single pass and exit")
	rootCmd.Flags().StringP("output", "o", "table", "output format with --once (table, json, yaml)")
	rootCmd.Flags().Bool("wide", false, "include configmap and secret sections")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.appwatch.yaml)")
	rootCmd.PersistentFlags().String("kubeconfig", "", "path to kubeconfig file (default is $HOME/.kube/config)")
	rootCmd.PersistentFlags().String("context", "", "kubeconfig context (default is the current context)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output with debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// runWatch validates the run parameters, checks the fatal preconditions,
// and hands off to the refresh loop controller.
func runWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	flags := cmd.Flags()

	// Config file and environment supply defaults; flags changed on the
	// command line win.
	manager := config.NewManager(cfgFile)
	cfg, err := manager.Load()
	if err != nil {
		return err
	}
	if manager.ConfigFileUsed() != "" {
		slog.Debug("loaded configuration", "file", manager.ConfigFileUsed())
	}

	if flags.Changed("namespace") {
		cfg.Namespace, _ = flags.GetString("namespace")
	}
	if flags.Changed("interval") {
		cfg.Interval, _ = flags.GetInt("interval")
	}
	if flags.Changed("tail") {
		cfg.Tail, _ = flags.GetInt("tail")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		cfg.NoColor = true
	}
	if len(args) > 0 {
		cfg.Apps = args
	}

	// User errors are rejected here, before any cluster call
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	once, _ := flags.GetBool("once")
	wide, _ := flags.GetBool("wide")
	kubeconfigPath, _ := flags.GetString("kubeconfig")
	contextName, _ := flags.GetString("context")

	logger := slog.Default()

	// Initializing: an unreachable API server or a missing namespace is
	// fatal, nothing else is.
	cl, err := cluster.Connect(kubeconfigPath, contextName, logger)
	if err != nil {
		return util.WrapErrorf(err, "failed to connect to cluster")
	}
	if err := cl.HealthCheck(ctx); err != nil {
		return err
	}
	if err := cl.NamespaceExists(ctx, cfg.Namespace); err != nil {
		return err
	}

	client := kube.NewClient(cl.Clientset, cfg.Namespace, queryTimeout, logger)
	resolver := resolve.New(client, logger)
	sections := buildSections(client, cfg, wide)

	// Machine-readable single-pass output replaces the human display
	// entirely; everything else renders tables to stdout.
	var display io.Writer = os.Stdout
	if once && format != output.FormatTable {
		display = io.Discard
	}
	painter := output.NewColorScheme(display, cfg.NoColor)

	controller := watch.New(resolver, sections, painter, display, watch.Options{
		Namespace:   cfg.Namespace,
		Apps:        cfg.Apps,
		Interval:    time.Duration(cfg.Interval) * time.Second,
		ClearScreen: !once,
		Logger:      logger,
	})

	if once {
		snap := controller.Pass(ctx)
		formatter := output.NewFormatter(format, output.WithNoColor(cfg.NoColor))
		return formatter.FormatSnapshot(os.Stdout, snap)
	}

	return controller.Run(ctx)
}

// buildSections assembles the fixed section order: deployments, replica
// sets, pods, services, pod health, events, logs. Wide mode appends the
// config sections.
func buildSections(client *kube.Client, cfg *config.Config, wide bool) []render.Section {
	sections := []render.Section{
		render.NewTableSection("Deployments", kube.KindDeployment),
		render.NewTableSection("Replica Sets", kube.KindReplicaSet),
		render.NewTableSection("Pods", kube.KindPod),
		render.NewTableSection("Services", kube.KindService),
		render.NewPodHealthSection(client),
		render.NewTableSection("Events", kube.KindEvent),
		render.NewLogsSection(client, int64(cfg.Tail)),
	}

	if wide {
		sections = append(sections,
			render.NewTableSection("ConfigMaps", kube.KindConfigMap),
			render.NewTableSection("Secrets", kube.KindSecret),
		)
	}

	return sections
}

// setupLogging configures structured logging with slog
func setupLogging(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")

	// Set log level based on verbose flag
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if noColor {
		// Use JSON handler for no-color mode
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		// Use text handler for colored output
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	if verbose {
		slog.Debug("verbose logging enabled")
	}
}
