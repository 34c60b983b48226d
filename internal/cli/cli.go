package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridfit/pkg/buildinfo"
	"github.com/matzehuels/gridfit/pkg/config"
	"github.com/matzehuels/gridfit/pkg/dashboard"
	"github.com/matzehuels/gridfit/pkg/errors"
	"github.com/matzehuels/gridfit/pkg/placement"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "gridfit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger and the built-in
// configuration. The config file is read when a command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "gridfit finds where new widgets go on a grid dashboard",
		Long:         `gridfit proposes positions for new widgets on fixed-width grid dashboards, filling gaps in existing rows before opening new ones.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ~/.config/gridfit/config.toml)")

	// Register all subcommands
	root.AddCommand(c.placeCommand())
	root.AddCommand(c.addCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file chosen by --config or the default path.
func (c *CLI) loadConfig() error {
	path, err := c.resolveConfigPath()
	if err != nil {
		c.Logger.Debug("no config directory, using defaults", "err", err)
		c.cfg = config.Default()
		return nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.Logger.Debug("loaded config", "path", path, "columns", cfg.Grid.Columns)
	return nil
}

// resolveConfigPath returns the --config value or the XDG default.
func (c *CLI) resolveConfigPath() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	return config.DefaultPath()
}

// =============================================================================
// Placement Setup
// =============================================================================

// placeOptions are the flags shared by commands that place a widget.
type placeOptions struct {
	Size       string
	WidgetType string
	Columns    int
}

// register adds the shared placement flags and completions to cmd.
func (o *placeOptions) register(c *CLI, cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Size, "size", "s", "", "widget size as WxH (e.g. 6x4)")
	cmd.Flags().StringVarP(&o.WidgetType, "type", "t", "", "widget type from the catalog (uses its default size)")
	cmd.Flags().IntVar(&o.Columns, "columns", 0, "grid columns (default: layout file, then config)")

	_ = cmd.RegisterFlagCompletionFunc("type", c.completeWidgetTypes)
	cmd.ValidArgsFunction = layoutFileCompletion
}

// placementJob bundles everything a command needs to run a search.
type placementJob struct {
	Layout dashboard.Layout
	Size   placement.Size
	Placer *placement.Placer
	Type   string
	Title  string // catalog title of Type
}

// prepare loads the layout and resolves the widget size and grid width.
// With allowMissing set, a missing layout file is treated as an empty one.
func (c *CLI) prepare(layoutPath string, opts placeOptions, allowMissing bool) (*placementJob, error) {
	if err := errors.ValidateLayoutPath(layoutPath); err != nil {
		return nil, err
	}
	l, err := dashboard.ReadLayoutFile(layoutPath)
	if err != nil && !(allowMissing && errors.IsNotFound(err)) {
		return nil, err
	}

	size, err := c.resolveSize(opts)
	if err != nil {
		return nil, err
	}
	if opts.Columns < 0 || opts.Columns > dashboard.MaxColumns {
		return nil, errors.New(errors.ErrCodeInvalidInput, "--columns must be between 1 and %d, got %d", dashboard.MaxColumns, opts.Columns)
	}

	var extra []placement.Option
	switch {
	case opts.Columns > 0:
		extra = append(extra, placement.WithColumns(opts.Columns))
	case l.Columns > 0:
		extra = append(extra, placement.WithColumns(l.Columns))
	}

	job := &placementJob{
		Layout: l,
		Size:   size,
		Placer: c.cfg.Placer(extra...),
		Type:   opts.WidgetType,
	}
	if opts.WidgetType != "" {
		if def, err := c.cfg.Catalog().Lookup(opts.WidgetType); err == nil {
			job.Title = def.Title
		}
	}
	return job, nil
}

// resolveSize returns the --size value, the catalog default for --type, or
// the --size value clamped to the type's bounds when both are given.
func (c *CLI) resolveSize(opts placeOptions) (placement.Size, error) {
	if opts.WidgetType == "" {
		if opts.Size == "" {
			return placement.Size{}, errors.New(errors.ErrCodeInvalidInput, "either --size or --type is required")
		}
		return dashboard.ParseSize(opts.Size)
	}

	if err := errors.ValidateWidgetType(opts.WidgetType); err != nil {
		return placement.Size{}, err
	}
	def, err := c.cfg.Catalog().Lookup(opts.WidgetType)
	if err != nil {
		return placement.Size{}, err
	}
	if opts.Size == "" {
		return def.DefaultSize(), nil
	}
	size, err := dashboard.ParseSize(opts.Size)
	if err != nil {
		return placement.Size{}, err
	}
	return def.Clamp(size), nil
}
