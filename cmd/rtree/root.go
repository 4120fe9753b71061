package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/rtree"
	"github.com/gogpu/rtree/cache"
	"github.com/gogpu/rtree/geom"
	"github.com/gogpu/rtree/internal/config"
	"github.com/gogpu/rtree/internal/fixture"
	"github.com/gogpu/rtree/text"
)

// app is the state shared by all subcommands, built once before any of
// them runs.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer

	lib    *text.Library
	bounds *cache.Cache[rtree.Key, geom.Rect]
	engine *rtree.Engine
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{out: stdout}

	var (
		logLevel      string
		cacheCapacity int
		fontDir       string
		workers       int
	)

	root := &cobra.Command{
		Use:           "rtree",
		Short:         "Query bounding boxes and hit tests of rendering trees",
		Long:          `rtree loads a YAML scene fixture and reports its bounding box, hit-test results or local coordinates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("cache-capacity") {
				cfg.CacheCapacity = cacheCapacity
			}
			if flags.Changed("font-dir") {
				cfg.FontDir = fontDir
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			return a.init(cfg, stderr)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.engine != nil {
				a.engine.Close()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error (default from RTREE_LOG_LEVEL)")
	pf.IntVar(&cacheCapacity, "cache-capacity", 0, "bounding-box cache capacity (default from RTREE_CACHE_CAPACITY)")
	pf.StringVar(&fontDir, "font-dir", "", "directory of extra fonts to register (default from RTREE_FONT_DIR)")
	pf.IntVar(&workers, "workers", 0, "workers for batch hit tests, 0 for GOMAXPROCS (default from RTREE_WORKERS)")

	root.AddCommand(
		newBoundsCmd(a),
		newHitCmd(a),
		newLocalsCmd(a),
		newStatsCmd(a),
	)

	root.SetOut(stdout)
	root.SetErr(stderr)
	return root
}

// init wires the logger, font library and engine from cfg.
func (a *app) init(cfg *config.Config, stderr io.Writer) error {
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	if cfg.CacheCapacity <= 0 {
		return fmt.Errorf("cache capacity must be positive, got %d", cfg.CacheCapacity)
	}

	a.cfg = cfg
	a.logger = newLogger(stderr, level)
	rtree.SetLogger(a.logger)
	text.SetLogger(a.logger)

	a.lib = text.NewLibrary()
	if cfg.FontDir != "" {
		n, err := a.lib.LoadDir(cfg.FontDir)
		if err != nil {
			return err
		}
		a.logger.Info("fonts loaded", "dir", cfg.FontDir, "count", n)
	}

	a.bounds = cache.New[rtree.Key, geom.Rect](cfg.CacheCapacity, cache.WithShards(cfg.CacheShards))
	a.engine = rtree.NewEngine(
		rtree.WithBackend(geom.NewDefaultBackend(cfg.StrokeTolerance)),
		rtree.WithMeasurer(a.lib),
		rtree.WithCache(a.bounds),
		rtree.WithWorkers(cfg.Workers),
	)
	return nil
}

// newLogger writes text logs to w, reporting error attributes as "err".
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == "error" {
				attr.Key = "err"
			}
			return attr
		},
	}))
}

// load reads a fixture and registers its fonts.
func (a *app) load(path string) (*fixture.Fixture, error) {
	fx, err := fixture.Load(path)
	if err != nil {
		return nil, err
	}
	if err := fx.RegisterFonts(a.lib); err != nil {
		return nil, err
	}
	a.logger.Debug("fixture loaded", "path", path, "points", len(fx.Points), "fonts", len(fx.Fonts))
	return fx, nil
}

// points returns the points given with --point, or the fixture's own
// points when none were given.
func points(flags []string, fx *fixture.Fixture) ([]geom.Point, error) {
	if len(flags) == 0 {
		return fx.Points, nil
	}
	pts := make([]geom.Point, 0, len(flags))
	for _, s := range flags {
		p, err := fixture.ParsePoint(s)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

func formatRect(r geom.Rect) string {
	return fmt.Sprintf("[%g %g %g %g]", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

func formatPoint(p geom.Point) string {
	return fmt.Sprintf("%g,%g", p.X, p.Y)
}
