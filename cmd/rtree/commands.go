package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/gogpu/rtree"
	"github.com/gogpu/rtree/cache"
)

func newBoundsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bounds FILE",
		Short: "Print the bounding box of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			fx, err := a.load(args[0])
			if err != nil {
				return err
			}
			r, ok := a.engine.BoundingBox(fx.Scene)
			if !ok {
				fmt.Fprintln(a.out, "none")
				return nil
			}
			fmt.Fprintln(a.out, formatRect(r))
			return nil
		},
	}
}

func newHitCmd(a *app) *cobra.Command {
	var pointFlags []string
	cmd := &cobra.Command{
		Use:   "hit FILE",
		Short: "Hit-test points against a scene",
		Long:  `For each point, prints "hit" with the ids and cursor of the topmost leaf under it, or "miss".`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			fx, err := a.load(args[0])
			if err != nil {
				return err
			}
			pts, err := points(pointFlags, fx)
			if err != nil {
				return err
			}
			if len(pts) == 0 {
				return errors.New("no points: pass --point or list points in the fixture")
			}

			for _, res := range a.engine.TopmostAll(fx.Scene, pts) {
				p, hit := res.Point, res.Hit
				if !res.OK {
					fmt.Fprintf(a.out, "%s miss\n", formatPoint(p))
					continue
				}
				line := fmt.Sprintf("%s hit local=%s", formatPoint(p), formatPoint(hit.Local))
				if ids := hit.IDs(); len(ids) > 0 {
					s := make([]string, len(ids))
					for i, id := range ids {
						s[i] = id.String()
					}
					line += " ids=" + strings.Join(s, ",")
				}
				if c, ok := hit.Cursor(); ok {
					line += " cursor=" + c.String()
				}
				fmt.Fprintln(a.out, line)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&pointFlags, "point", nil, "point to test as x,y (repeatable)")
	return cmd
}

func newLocalsCmd(a *app) *cobra.Command {
	var pointFlag string
	cmd := &cobra.Command{
		Use:   "locals FILE",
		Short: "Print a point in the local coordinates of every leaf",
		Long:  `Leaves are listed in event order: the topmost leaf first.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			fx, err := a.load(args[0])
			if err != nil {
				return err
			}
			pts, err := points([]string{pointFlag}, fx)
			if err != nil {
				return err
			}
			p := pts[0]

			i := 0
			rtree.Visit(fx.Scene, func(node rtree.Tree, ancestors rtree.Ancestors) rtree.VisitControl {
				leaf, ok := node.(rtree.Node)
				if !ok {
					return rtree.Continue
				}
				fmt.Fprintf(a.out, "%d %s %s\n", i, commandKind(leaf.Command), formatPoint(ancestors.ToLocal(p)))
				i++
				return rtree.Continue
			})
			return nil
		},
	}
	cmd.Flags().StringVar(&pointFlag, "point", "", "point in root coordinates as x,y")
	_ = cmd.MarkFlagRequired("point")
	return cmd
}

func commandKind(c rtree.DrawCommand) string {
	switch c.(type) {
	case rtree.PathCommand:
		return "path"
	case rtree.TextCommand:
		return "text"
	case rtree.ImageCommand:
		return "image"
	}
	return "unknown"
}

func newStatsCmd(a *app) *cobra.Command {
	var repeat int
	cmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Measure the bounding-box cache on a scene",
		Long:  `Computes the bounding box repeatedly and prints cache and timing metrics in the Prometheus text format.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if repeat <= 0 {
				return fmt.Errorf("--repeat must be positive, got %d", repeat)
			}
			fx, err := a.load(args[0])
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: "rtree",
				Name:      "query_duration_seconds",
				Help:      "Duration of tree queries.",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
			}, []string{"query"})
			reg.MustRegister(
				cache.NewCollector("rtree", "bounds_cache", a.bounds),
				cache.NewCollector("rtree", "shape_cache", textCacheStats{a}),
				durations,
			)

			for range repeat {
				start := time.Now()
				a.engine.BoundingBox(fx.Scene)
				durations.WithLabelValues("bounds").Observe(time.Since(start).Seconds())

				for _, p := range fx.Points {
					start := time.Now()
					a.engine.Contains(fx.Scene, p)
					durations.WithLabelValues("hit").Observe(time.Since(start).Seconds())
				}
			}

			families, err := reg.Gather()
			if err != nil {
				return err
			}
			for _, mf := range families {
				if _, err := expfmt.MetricFamilyToText(a.out, mf); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&repeat, "repeat", 100, "number of bounding-box queries")
	return cmd
}

// textCacheStats exposes the shaping cache of the app's font library.
type textCacheStats struct{ a *app }

func (s textCacheStats) Stats() cache.Stats {
	return s.a.lib.CacheStats()
}
