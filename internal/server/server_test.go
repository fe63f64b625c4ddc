package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/KaramelBytes/reelviz-cli/internal/chord"
	"github.com/KaramelBytes/reelviz-cli/internal/dataset"
	"github.com/KaramelBytes/reelviz-cli/internal/render"
	"github.com/KaramelBytes/reelviz-cli/internal/selection"
)

const sample = `Series_Title,Released_Year,Poster_Link,Star1,Star2,Star3
Heat,1995,https://example.com/heat.jpg,Al Pacino,Robert De Niro,Val Kilmer
The Irishman,2019,,Robert De Niro,Al Pacino,Joe Pesci
Casino,1995,,Robert De Niro,Joe Pesci,Sharon Stone
`

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	tbl, err := dataset.ReadCSV(strings.NewReader(sample), ',', dataset.DefaultSchema())
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	return NewHandler(tbl, Options{
		Size:          render.Size{Width: 640, Height: 480},
		Theme:         render.DefaultTheme(),
		Chord:         chord.DefaultOptions(),
		MinEdgeWeight: 1,
	})
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func view(t *testing.T, h http.Handler) viewResponse {
	t.Helper()
	rec := get(t, h, "/api/view")
	if rec.Code != http.StatusOK {
		t.Fatalf("/api/view status %d", rec.Code)
	}
	var v viewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	return v
}

func TestPageAndSVG(t *testing.T) {
	r := newTestHandler(t).Router()
	rec := get(t, r, "/")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Heat (1995)") || !strings.Contains(rec.Body.String(), "3 of 3 films") {
		t.Fatalf("page: %d %s", rec.Code, rec.Body.String())
	}
	rec = get(t, r, "/chord.svg")
	if rec.Header().Get("Content-Type") != "image/svg+xml" || !strings.Contains(rec.Body.String(), "<path") {
		t.Fatalf("chord svg missing paths")
	}
}

func TestPageDropsStaleHoverResponses(t *testing.T) {
	body := get(t, newTestHandler(t).Router(), "/").Body.String()
	leave := strings.Index(body, "addEventListener('mouseleave'")
	if leave < 0 || !strings.Contains(body[leave:], "hoverSeq++") {
		t.Fatalf("pointer-leave must invalidate pending hover requests")
	}
	move := strings.Index(body, "addEventListener('mousemove'")
	if move < 0 || move > leave {
		t.Fatalf("mousemove handler missing")
	}
	handler := body[move:leave]
	guard := strings.Index(handler, "if (seq !== hoverSeq) return;")
	show := strings.Index(handler, "tip.style.display = 'block'")
	if !strings.Contains(handler, "const seq = ++hoverSeq;") || guard < 0 || show < guard {
		t.Fatalf("hover response must be checked against the latest request before showing the tip:\n%s", handler)
	}
}

func TestLinkedLoop(t *testing.T) {
	h := newTestHandler(t)
	r := h.Router()

	rec := get(t, r, "/select/edge?a=Robert+De+Niro&b=Al+Pacino")
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("select edge status %d", rec.Code)
	}
	v := view(t, r)
	if v.State != "edge(Al Pacino, Robert De Niro)" || len(v.Active) != 2 {
		t.Fatalf("edge view = %+v", v)
	}

	// Clicking a gallery record replaces the edge and re-scopes the diagram.
	get(t, r, "/select/record?id=Casino")
	v = view(t, r)
	if v.State != "record(Casino)" || len(v.Active) != 1 || v.Active[0] != "Casino" {
		t.Fatalf("record view = %+v", v)
	}
	for _, e := range v.Edges {
		if e.A == "Al Pacino" || e.B == "Al Pacino" {
			t.Fatalf("re-scoped graph kept %s-%s", e.A, e.B)
		}
	}

	get(t, r, "/select/record?id=Casino")
	if h.sel.State().Kind != selection.Idle {
		t.Fatalf("second record click should toggle off")
	}

	get(t, r, "/select/record?id=Heat")
	get(t, r, "/clear")
	if h.sel.State().Kind != selection.Idle {
		t.Fatalf("clear should reset selection")
	}
}

func TestChordClickAndHover(t *testing.T) {
	h := newTestHandler(t)
	r := h.Router()

	h.mu.Lock()
	s := h.derive()
	h.mu.Unlock()
	if len(s.diagram.Ribbons) == 0 {
		t.Fatalf("no ribbons drawn")
	}
	// Find a pixel over some ribbon by scanning a coarse grid for a hover.
	var hx, hy float64
	found := false
	for y := 0.0; y < 480 && !found; y += 4 {
		for x := 0.0; x < 640 && !found; x += 4 {
			s.chart.Click(x, y, render.Handlers{OnClick: func(render.Target) {
				hx, hy, found = x, y, true
			}})
		}
	}
	if !found {
		t.Fatalf("no clickable ribbon pixel found")
	}

	rec := get(t, r, "/chord/hover?x="+itoa(hx)+"&y="+itoa(hy))
	var o render.Overlay
	if err := json.Unmarshal(rec.Body.Bytes(), &o); err != nil || !o.Visible || !strings.Contains(o.Title, "&") {
		t.Fatalf("hover overlay = %+v, %v", o, err)
	}
	rec = get(t, r, "/chord/hover?x=1&y=1")
	_ = json.Unmarshal(rec.Body.Bytes(), &o)
	if o.Visible {
		t.Fatalf("hover over empty space should hide overlay")
	}

	// Image-map style query.
	rec = get(t, r, "/chord/click?"+itoa(hx)+","+itoa(hy))
	if rec.Code != http.StatusSeeOther || h.sel.State().Kind != selection.EdgeSelected {
		t.Fatalf("ismap click: %d, state %v", rec.Code, h.sel.State())
	}
	get(t, r, "/chord/click?x="+itoa(hx)+"&y="+itoa(hy))
	if h.sel.State().Kind != selection.Idle {
		t.Fatalf("second click on same ribbon should toggle off")
	}

	if rec := get(t, r, "/chord/click"); rec.Code != http.StatusBadRequest {
		t.Fatalf("click without coordinates: %d", rec.Code)
	}
}

func TestFilter(t *testing.T) {
	h := newTestHandler(t)
	r := h.Router()
	get(t, r, "/filter?from=1990&to=2000&min=2")
	v := view(t, r)
	if len(v.Active) != 2 {
		t.Fatalf("year filter: active = %v", v.Active)
	}
	if len(v.Edges) != 0 || len(v.Nodes) != 0 {
		t.Fatalf("min weight 2 in the 1990s leaves no edges, got %+v", v.Edges)
	}
	if rec := get(t, r, "/filter?min=abc"); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad filter status %d", rec.Code)
	}
	get(t, r, "/filter?from=0&to=0&min=1")
	if v := view(t, r); len(v.Active) != 3 {
		t.Fatalf("cleared filter: active = %v", v.Active)
	}
}

func itoa(f float64) string { return strconv.Itoa(int(f)) }

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, "127.0.0.1:0", newTestHandler(t).Router()) }()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
