// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"cogentcore.org/popup/base/errors"
	"cogentcore.org/popup/base/iox/jsonx"
	"cogentcore.org/popup/popup"
	"cogentcore.org/popup/position"
	"cogentcore.org/popup/scenario"
	"cogentcore.org/popup/scheduler"
	"cogentcore.org/popup/tree"
	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func watchCmd() *cobra.Command {
	var format, metricsAddr string
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "watch <scenario>",
		Short: "Keep the popup of a scenario positioned while the file changes",
		Long: `Watch activates the popup of a scenario and prints a new result each time
the scenario file changes the layout or the config. Changes are coalesced
into at most one pass per frame interval.

With --metrics, the tracker metrics are served at /metrics and the last
result at /result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newWatcher(args[0], format, cmd.OutOrStdout(), interval)
			if err != nil {
				return err
			}
			return w.run(cmd.Context(), metricsAddr)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "yaml", "output format: yaml or json")
	errors.Must(cmd.RegisterFlagCompletionFunc("output", completeFormat))
	cmd.Flags().StringVar(&metricsAddr, "metrics", "", "address to serve metrics and the last result on")
	cmd.Flags().DurationVar(&interval, "interval", 16*time.Millisecond, "frame interval")
	return cmd
}

// watcher runs a popup for a scenario file. All popup calls happen
// on the goroutine of [watcher.loop]; frames are dispatched to it.
type watcher struct {
	file   string
	format string
	out    io.Writer
	term   *termenv.Output

	sc       *scenario.Scenario
	root     *tree.Root
	popup    *popup.Popup
	frames   chan func()
	done     chan struct{}
	registry *prometheus.Registry

	mu   sync.Mutex
	last *scenario.Report
}

func newWatcher(file, format string, out io.Writer, interval time.Duration) (*watcher, error) {
	sc, err := scenario.Open(file)
	if err != nil {
		return nil, err
	}
	root, err := sc.Build()
	if err != nil {
		return nil, err
	}
	w := &watcher{
		file:     errors.Log1(filepath.Abs(file)),
		format:   format,
		out:      out,
		term:     termenv.NewOutput(out),
		sc:       sc,
		root:     root,
		frames:   make(chan func()),
		done:     make(chan struct{}),
		registry: prometheus.NewRegistry(),
	}
	frames := &scheduler.TimerFrames{Interval: interval, Dispatch: w.dispatch}
	w.popup = popup.New(position.NewTreePlatform(root), frames, root.Find(sc.Panel), w)
	w.popup.Tracker.Metrics = scheduler.NewMetrics(scheduler.WithRegistry(w.registry))
	w.popup.Scope = root
	w.popup.Viewport = root
	return w, nil
}

func (w *watcher) run(ctx context.Context, metricsAddr string) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()
	// editors often replace the file, so watch its directory
	if err := fsw.Add(filepath.Dir(w.file)); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return w.loop(ctx, fsw) })
	if metricsAddr != "" {
		srv := &http.Server{Addr: metricsAddr, Handler: w.router()}
		g.Go(func() error {
			slog.Info("serving metrics", "addr", metricsAddr)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			return srv.Shutdown(context.Background())
		})
	}
	return g.Wait()
}

func (w *watcher) start() {
	w.popup.SetConfig(w.sc.Config).SetAnchor(w.sc.Anchor).SetActive(true)
	if w.popup.Anchor() == nil {
		slog.Warn("anchor not found", "scenario", w.sc.Name, "anchor", w.sc.Anchor)
	}
}

// dispatch hands a frame callback to the loop, dropping it once the
// loop has returned.
func (w *watcher) dispatch(fn func()) {
	select {
	case w.frames <- fn:
	case <-w.done:
	}
}

func (w *watcher) loop(ctx context.Context, fsw *fsnotify.Watcher) error {
	defer close(w.done)
	w.start()
	defer w.popup.SetActive(false)
	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-w.frames:
			fn()
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.file || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			w.reload()
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watching scenario", "err", err)
		}
	}
}

// reload rereads the scenario file and applies the changes to the
// tree and the popup. A file that cannot be read or no longer matches
// the tree is ignored.
func (w *watcher) reload() {
	sc, err := scenario.Open(w.file)
	if err != nil {
		slog.Warn("reloading scenario", "err", err)
		return
	}
	if err := sc.Apply(w.root); err != nil {
		slog.Warn("reloading scenario", "err", err)
		return
	}
	prev := w.sc
	w.sc = sc
	w.popup.SetConfig(sc.Config)
	if sc.Anchor != prev.Anchor {
		w.popup.SetAnchor(sc.Anchor)
	}
}

// Show implements [popup.Renderer].
func (w *watcher) Show(res *position.Result) {
	rep := scenario.NewReport(w.sc.Name, res)
	w.mu.Lock()
	w.last = rep
	w.mu.Unlock()
	if w.format == "yaml" {
		fmt.Fprintf(w.out, "---\n%s\n", w.term.String(fmt.Sprintf("# %s: %s", rep.Scenario, rep.Placement)).Faint())
	}
	errors.Log(write(w.out, w.format, rep))
}

// Hide implements [popup.Renderer].
func (w *watcher) Hide() {
	slog.Info("popup hidden", "scenario", w.sc.Name)
}

func (w *watcher) lastReport() *scenario.Report {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

func (w *watcher) router() http.Handler {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(w.registry, promhttp.HandlerOpts{}))
	r.Get("/result", func(rw http.ResponseWriter, req *http.Request) {
		rep := w.lastReport()
		if rep == nil {
			http.Error(rw, "no result", http.StatusNotFound)
			return
		}
		rw.Header().Set("Content-Type", "application/json")
		errors.Log(jsonx.Write(rep, rw))
	})
	return r
}
