package web

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/jaminalder/tictactoe-history/internal/app"
	"github.com/jaminalder/tictactoe-history/internal/domain"
)

const gameCookie = "game_id"

type templates struct {
	game  *template.Template
	board *template.Template
	index *template.Template
}

func loadTemplates() *templates {
	base := template.Must(template.New("base").Parse(baseTemplate))
	// board is defined inside the set so the game page can embed it
	template.Must(base.New("board").Parse(boardTemplate))
	index := template.Must(template.Must(base.Clone()).New("content").Parse(`<h1>Tic-tac-toe</h1>
<form action="/game" method="post"><button type="submit">New game</button></form>`)).Lookup("base")
	game := template.Must(template.Must(base.Clone()).New("content").Parse(`<h1>Tic-tac-toe</h1>
{{template "board" .}}
<form action="/game" method="post"><button type="submit">New game</button></form>`)).Lookup("base")
	// Standalone board template used for fragment rendering
	board := template.Must(template.New("board_only").Parse(boardTemplate))
	return &templates{game: game, board: board, index: index}
}

func renderTemplate(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const baseTemplate = `<!doctype html><html><head>
<meta charset="utf-8"/>
<title>Tic-tac-toe</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<style>
.board-row { display: flex; }
.board-row form { margin: 0; }
.square { width: 34px; height: 34px; font-size: 24px; font-weight: bold; }
.winner-cell { background: #ffeb3b; }
.selected-item-bold { font-weight: bold; }
.game { display: flex; gap: 20px; }
</style>
</head><body>{{template "content" .}}</body></html>`

const boardTemplate = `
<div id="game" class="game">
  <div class="game-board">
    {{range .Rows}}
    <div class="board-row">
      {{range .}}
      <form hx-post="/game/{{$.ID}}/play" hx-target="#game" hx-swap="outerHTML" action="/game/{{$.ID}}/play" method="post">
        <input type="hidden" name="i" value="{{.Index}}">
        <button type="submit" class="square{{if .Winner}} winner-cell{{end}}">{{.Mark}}</button>
      </form>
      {{end}}
    </div>
    {{end}}
  </div>
  <div class="game-info">
    <div class="status">{{.Status}}</div>
    <form hx-post="/game/{{.ID}}/order" hx-target="#game" hx-swap="outerHTML" action="/game/{{.ID}}/order" method="post">
      <button type="submit">History toggle</button>
    </form>
    <ol>
      {{range .Moves}}
      <li>
        <form hx-post="/game/{{$.ID}}/jump" hx-target="#game" hx-swap="outerHTML" action="/game/{{$.ID}}/jump" method="post">
          <input type="hidden" name="step" value="{{.Step}}">
          <button type="submit" class="{{if .Selected}}selected-item-bold{{end}}">{{.Label}}</button>
        </form>
      </li>
      {{end}}
    </ol>
  </div>
</div>
`

type cellView struct {
	Index  int
	Mark   string
	Winner bool
}

// gameView is everything the board template needs, derived from the viewed
// step on every render.
type gameView struct {
	ID     string
	Rows   [3][3]cellView
	Status string
	Moves  []domain.MoveItem
}

func newGameView(gs *app.Session) gameView {
	board := gs.Game.Board()
	res := gs.Game.Result()
	v := gameView{ID: gs.ID, Status: gs.Game.Status().String(), Moves: gs.Game.MoveList()}
	for i, c := range board {
		v.Rows[i/3][i%3] = cellView{Index: i, Mark: c.String(), Winner: res.Contains(i)}
	}
	return v
}

// setGameCookie remembers the browser's current game so "/" can return to it.
func setGameCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{Name: gameCookie, Value: id, Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
}

func gameFromCookie(r *http.Request) string {
	if c, err := r.Cookie(gameCookie); err == nil {
		return c.Value
	}
	return ""
}
