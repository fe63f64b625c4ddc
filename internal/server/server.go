// Package server exposes the linked chord diagram and poster gallery over
// HTTP for local exploration. Every request recomputes the view from the
// table, the current filters and the selection, so nothing derived is
// cached between requests.
package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/KaramelBytes/reelviz-cli/internal/analysis"
	"github.com/KaramelBytes/reelviz-cli/internal/chord"
	"github.com/KaramelBytes/reelviz-cli/internal/dataset"
	"github.com/KaramelBytes/reelviz-cli/internal/logger"
	"github.com/KaramelBytes/reelviz-cli/internal/render"
	"github.com/KaramelBytes/reelviz-cli/internal/selection"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Options configures the linked view.
type Options struct {
	Size          render.Size
	Theme         render.Theme
	Chord         chord.Options
	MinEdgeWeight int
	// Participants extracts the chord entities of a record; nil uses
	// analysis.Stars.
	Participants func(*dataset.Movie) []string
	// FromYear and ToYear bound the year filter; both zero disables it.
	FromYear, ToYear int
}

// Filters is the user-adjustable part of Options.
type Filters struct {
	FromYear      int `json:"from_year"`
	ToYear        int `json:"to_year"`
	MinEdgeWeight int `json:"min_edge_weight"`
}

// Handler serves one table. The selection controller is shared by all
// requests and guarded by mu.
type Handler struct {
	mu      sync.Mutex
	table   *dataset.Table
	sel     *selection.Controller
	opt     Options
	filters Filters
}

// NewHandler returns a handler with an idle selection.
func NewHandler(t *dataset.Table, opt Options) *Handler {
	return &Handler{
		table: t,
		sel:   selection.New(),
		opt:   opt,
		filters: Filters{
			FromYear:      opt.FromYear,
			ToYear:        opt.ToYear,
			MinEdgeWeight: opt.MinEdgeWeight,
		},
	}
}

// Router builds the chi router with the handler's routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLog)
	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes mounts the linked view routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Page)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("OK")) })
	r.Get("/chord.svg", h.ChordSVG)
	r.Get("/chord/click", h.ChordClick)
	r.Get("/chord/hover", h.ChordHover)
	r.Get("/select/edge", h.SelectEdge)
	r.Get("/select/record", h.SelectRecord)
	r.Get("/clear", h.Clear)
	r.Get("/filter", h.SetFilter)
	r.Get("/api/view", h.ViewJSON)
}

// Run serves h on addr until ctx is done, then shuts down gracefully.
func Run(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() {
		logger.Info("Starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
		return err
	}
	logger.Info("Server stopped")
	return nil
}

func requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "id", middleware.GetReqID(r.Context()))
	})
}

// snapshot is one fully derived view together with the chord chart drawn
// from it.
type snapshot struct {
	filtered []*dataset.Movie
	view     selection.View
	diagram  chord.Diagram
	chart    *render.Chart
	svg      []byte
}

// derive recomputes everything from the table. Callers hold mu.
func (h *Handler) derive() snapshot {
	var filter func(*dataset.Movie) bool
	if h.filters.FromYear != 0 || h.filters.ToYear != 0 {
		to := h.filters.ToYear
		if to == 0 {
			to = 1<<31 - 1
		}
		filter = analysis.YearRange(h.filters.FromYear, to)
	}
	var filtered []*dataset.Movie
	for _, m := range h.table.Movies {
		if filter == nil || filter(m) {
			filtered = append(filtered, m)
		}
	}
	g := analysis.CoOccurrence(filtered, analysis.CoOccurrenceOptions{
		MinWeight:    h.filters.MinEdgeWeight,
		Participants: h.opt.Participants,
	})
	v := h.sel.View(filtered, g, h.opt.Participants)
	d := chord.Layout(v.Graph, h.opt.Chord)
	var buf bytes.Buffer
	ch := render.Chord(&buf, d, h.opt.Size, h.opt.Theme, v.Props, render.ChordOptions{Labels: true})
	return snapshot{filtered: filtered, view: v, diagram: d, chart: ch, svg: buf.Bytes()}
}
