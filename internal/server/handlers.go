package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/KaramelBytes/reelviz-cli/internal/logger"
	"github.com/KaramelBytes/reelviz-cli/internal/render"
)

// Page renders the chord diagram next to the gallery of active records.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	s := h.derive()
	data := pageData{
		State:   h.sel.State().String(),
		Filters: h.filters,
		Total:   len(s.filtered),
	}
	for _, m := range s.view.Active {
		data.Gallery = append(data.Gallery, galleryItem{
			ID:       m.ID,
			Title:    m.Title,
			Year:     yearText(m.YearInt()),
			Poster:   m.Poster,
			Stars:    strings.Join(m.Stars, ", "),
			Selected: s.view.Props.RecordHighlighted(m.ID),
			Link:     "/select/record?id=" + url.QueryEscape(m.ID),
		})
	}
	h.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		logger.Error("render page", "err", err)
	}
}

// ChordSVG serves the chord diagram alone.
func (h *Handler) ChordSVG(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	s := h.derive()
	h.mu.Unlock()
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(s.svg)
}

// ChordClick hit-tests a click on the diagram and applies the clicked
// target to the selection. It accepts x and y parameters as well as the
// bare "?x,y" query sent by server-side image maps.
func (h *Handler) ChordClick(w http.ResponseWriter, r *http.Request) {
	x, y, ok := pointerQuery(r)
	if !ok {
		http.Error(w, "missing pointer coordinates", http.StatusBadRequest)
		return
	}
	h.mu.Lock()
	s := h.derive()
	s.chart.Click(x, y, render.Handlers{OnClick: func(t render.Target) {
		st := t.Apply(h.sel)
		logger.Info("selection changed", "state", st.String())
	}})
	h.mu.Unlock()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ChordHover returns the tooltip overlay for the pointer position as JSON.
// A position over nothing returns a hidden overlay.
func (h *Handler) ChordHover(w http.ResponseWriter, r *http.Request) {
	x, y, ok := pointerQuery(r)
	if !ok {
		http.Error(w, "missing pointer coordinates", http.StatusBadRequest)
		return
	}
	h.mu.Lock()
	s := h.derive()
	var overlay render.Overlay
	s.chart.PointerMove(x, y, render.Handlers{OnHover: func(d *render.Datum) {
		overlay = render.NewOverlay(d, h.opt.Size, h.opt.Theme)
	}})
	h.mu.Unlock()
	writeJSON(w, overlay)
}

// SelectEdge toggles the edge between the a and b participants.
func (h *Handler) SelectEdge(w http.ResponseWriter, r *http.Request) {
	a, b := r.URL.Query().Get("a"), r.URL.Query().Get("b")
	if a == "" || b == "" {
		http.Error(w, "a and b are required", http.StatusBadRequest)
		return
	}
	h.mu.Lock()
	st := h.sel.SelectEdge(a, b)
	h.mu.Unlock()
	logger.Info("selection changed", "state", st.String())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// SelectRecord toggles a record.
func (h *Handler) SelectRecord(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}
	h.mu.Lock()
	st := h.sel.SelectRecord(id)
	h.mu.Unlock()
	logger.Info("selection changed", "state", st.String())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Clear drops the selection.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.sel.Clear()
	h.mu.Unlock()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// SetFilter updates the year range and minimum edge weight. Absent
// parameters keep their current value; "0" clears a year bound.
func (h *Handler) SetFilter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.mu.Lock()
	defer h.mu.Unlock()
	f := h.filters
	for key, dst := range map[string]*int{"from": &f.FromYear, "to": &f.ToYear, "min": &f.MinEdgeWeight} {
		v := strings.TrimSpace(q.Get(key))
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, "invalid "+key+": "+v, http.StatusBadRequest)
			return
		}
		*dst = n
	}
	h.filters = f
	logger.Info("filters changed", "from", f.FromYear, "to", f.ToYear, "min_weight", f.MinEdgeWeight)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type viewResponse struct {
	State   string       `json:"state"`
	Filters Filters      `json:"filters"`
	Active  []string     `json:"active"`
	Nodes   []nodeJSON   `json:"nodes"`
	Edges   []edgeJSON   `json:"edges"`
	Ribbons []ribbonJSON `json:"ribbons"`
}

type nodeJSON struct {
	Label       string `json:"label"`
	Weight      int    `json:"weight"`
	Highlighted bool   `json:"highlighted"`
}

type edgeJSON struct {
	A           string   `json:"a"`
	B           string   `json:"b"`
	Weight      int      `json:"weight"`
	Records     []string `json:"records"`
	Highlighted bool     `json:"highlighted"`
}

type ribbonJSON struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Color string `json:"color"`
	Path  string `json:"path"`
}

// ViewJSON returns the derived view for scripted clients.
func (h *Handler) ViewJSON(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	s := h.derive()
	resp := viewResponse{State: h.sel.State().String(), Filters: h.filters}
	h.mu.Unlock()

	resp.Active = make([]string, 0, len(s.view.Active))
	for _, m := range s.view.Active {
		resp.Active = append(resp.Active, m.ID)
	}
	for _, n := range s.view.Graph.Nodes {
		resp.Nodes = append(resp.Nodes, nodeJSON{Label: n.Label, Weight: n.Weight, Highlighted: s.view.Props.NodeHighlighted(n.Label)})
	}
	for _, e := range s.view.Graph.Edges {
		resp.Edges = append(resp.Edges, edgeJSON{A: e.A, B: e.B, Weight: e.Weight, Records: e.Records, Highlighted: s.view.Props.EdgeHighlighted(e)})
	}
	for _, rb := range s.diagram.Ribbons {
		resp.Ribbons = append(resp.Ribbons, ribbonJSON{A: rb.A, B: rb.B, Color: rb.Color, Path: rb.Path(100)})
	}
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode json", "err", err)
	}
}

// pointerQuery reads x,y from named parameters or from an image-map query.
func pointerQuery(r *http.Request) (x, y float64, ok bool) {
	q := r.URL.Query()
	if q.Has("x") && q.Has("y") {
		xv, errx := strconv.ParseFloat(q.Get("x"), 64)
		yv, erry := strconv.ParseFloat(q.Get("y"), 64)
		return xv, yv, errx == nil && erry == nil
	}
	parts := strings.Split(r.URL.RawQuery, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	xi, errx := strconv.Atoi(parts[0])
	yi, erry := strconv.Atoi(parts[1])
	return float64(xi), float64(yi), errx == nil && erry == nil
}

func yearText(y int, ok bool) string {
	if !ok {
		return ""
	}
	return strconv.Itoa(y)
}
