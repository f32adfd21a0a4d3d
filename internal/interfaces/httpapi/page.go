package httpapi

import (
	"html/template"
	"net/http"
)

type boardPageData struct {
	Title     string
	Message   string
	Columns   []string
	Rows      [][]string
	Remaining int
	UndoDepth int
}

// BoardPage renders the live draft board. The page is plain HTML forms so
// it works from any browser in the draft room without a client build.
func (h *Handler) BoardPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BoardPage")
	defer span.End()

	view := h.boardService.View(ctx)
	data := boardPageData{
		Title:     "Fantasy Football Tool",
		Message:   r.URL.Query().Get("msg"),
		Columns:   view.Columns,
		Rows:      view.Rows,
		Remaining: view.Remaining,
		UndoDepth: view.UndoDepth,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := boardPageTemplate.Execute(w, data); err != nil {
		h.logger.ErrorContext(ctx, "render board page failed", "error", err)
	}
}

var boardPageTemplate = template.Must(template.New("board").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 1rem 2rem; color: #1c1c1c; }
h1 { font-size: 1.4rem; }
.msg { background: #eef6ee; border: 1px solid #b6d7b6; padding: .4rem .8rem; border-radius: 4px; display: inline-block; }
.meta { color: #666; font-size: .85rem; margin: .4rem 0 1rem; }
form.remove textarea { width: 36rem; max-width: 100%; height: 6rem; font-family: monospace; }
form button { margin-top: .4rem; padding: .3rem 1rem; }
table { border-collapse: collapse; margin-top: 1rem; font-size: .8rem; }
th, td { border: 1px solid #ccc; padding: .15rem .45rem; text-align: left; white-space: nowrap; }
th { background: #f3f3f3; position: sticky; top: 0; }
tr:nth-child(even) { background: #fafafa; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Message}}<p class="msg">{{.Message}}</p>{{end}}
<p class="meta">{{.Remaining}} players on the board &middot; {{.UndoDepth}} removal(s) undoable</p>
<form class="remove" method="post" action="/board/removals">
<label for="players">Paste drafted players (one per line, name / team / position):</label><br>
<textarea id="players" name="players" placeholder="Travis Etienne Jr. / JAX / RB"></textarea><br>
<button type="submit">Remove Players</button>
</form>
<form method="post" action="/board/undo">
<button type="submit">Undo</button>
</form>
<table>
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</tbody>
</table>
</body>
</html>
`))
