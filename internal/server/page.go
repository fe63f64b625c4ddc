package server

import "html/template"

type galleryItem struct {
	ID       string
	Title    string
	Year     string
	Poster   string
	Stars    string
	Selected bool
	Link     string
}

type pageData struct {
	State   string
	Filters Filters
	Gallery []galleryItem
	Total   int
}

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>reelviz</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 16px; color: #333; }
.layout { display: flex; gap: 24px; align-items: flex-start; }
.chord { position: relative; }
#tip { position: absolute; display: none; pointer-events: none; background: #fff; border: 1px solid #888; padding: 4px 8px; font-size: 12px; }
.gallery { display: flex; flex-wrap: wrap; gap: 8px; max-width: 520px; }
.card { width: 120px; font-size: 12px; text-decoration: none; color: inherit; }
.card img { width: 120px; height: 178px; object-fit: cover; background: #eee; }
.card.selected { outline: 3px solid #111; }
</style>
</head>
<body>
<form action="/filter" method="get">
  years <input name="from" size="5" value="{{if .Filters.FromYear}}{{.Filters.FromYear}}{{end}}">
  to <input name="to" size="5" value="{{if .Filters.ToYear}}{{.Filters.ToYear}}{{end}}">
  min shared films <input name="min" size="3" value="{{.Filters.MinEdgeWeight}}">
  <button>apply</button>
  <a href="/clear">clear selection</a>
  <span>selection: {{.State}} &middot; {{len .Gallery}} of {{.Total}} films</span>
</form>
<div class="layout">
  <div class="chord">
    <a href="/chord/click"><img id="chord" src="/chord.svg" ismap alt="chord diagram"></a>
    <div id="tip"></div>
  </div>
  <div class="gallery">
  {{range .Gallery}}
    <a class="card{{if .Selected}} selected{{end}}" href="{{.Link}}" title="{{.Stars}}">
      {{if .Poster}}<img src="{{.Poster}}" alt="">{{end}}
      <div>{{.Title}}{{if .Year}} ({{.Year}}){{end}}</div>
    </a>
  {{else}}
    <p>No films match the current selection.</p>
  {{end}}
  </div>
</div>
<script>
const img = document.getElementById('chord'), tip = document.getElementById('tip');
// hoverSeq invalidates in-flight hover requests on every move and on leave.
let hoverSeq = 0;
img.addEventListener('mousemove', async (e) => {
  const seq = ++hoverSeq;
  const r = await fetch('/chord/hover?x=' + e.offsetX + '&y=' + e.offsetY);
  const o = await r.json();
  if (seq !== hoverSeq) return;
  if (!o.Visible) { tip.style.display = 'none'; return; }
  tip.style.left = o.Box.X + 'px';
  tip.style.top = o.Box.Y + 'px';
  tip.textContent = '';
  const b = document.createElement('b');
  b.textContent = o.Title;
  tip.appendChild(b);
  for (const l of (o.Lines || [])) { const d = document.createElement('div'); d.textContent = l; tip.appendChild(d); }
  tip.style.display = 'block';
});
img.addEventListener('mouseleave', () => { hoverSeq++; tip.style.display = 'none'; });
</script>
</body>
</html>
`))
