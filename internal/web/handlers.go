package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jaminalder/tictactoe-history/internal/app"
	"github.com/jaminalder/tictactoe-history/internal/domain"
)

type handlers struct {
	svc *app.Service
	tpl *templates
	log *slog.Logger
}

func (h *handlers) write(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	// resume the browser's game if it is still alive
	if id := gameFromCookie(r); id != "" {
		if _, ok := h.svc.Get(id); ok {
			http.Redirect(w, r, "/game/"+id, http.StatusSeeOther)
			return
		}
	}
	body, err := renderTemplate(h.tpl.index, nil)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.write(w, http.StatusOK, body)
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.CreateGame()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	setGameCookie(w, gs.ID)
	http.Redirect(w, r, "/game/"+gs.ID, http.StatusSeeOther)
}

func (h *handlers) view(w http.ResponseWriter, r *http.Request) {
	gs, ok := h.svc.Get(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	setGameCookie(w, gs.ID)
	body, err := renderTemplate(h.tpl.game, newGameView(gs))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.write(w, http.StatusOK, body)
}

func (h *handlers) play(w http.ResponseWriter, r *http.Request) {
	i, ok := formInt(r, "i")
	if !ok {
		http.Error(w, "invalid cell", http.StatusBadRequest)
		return
	}
	gs, _, err := h.svc.Play(chi.URLParam(r, "id"), i)
	h.respond(w, r, gs, err)
}

func (h *handlers) jump(w http.ResponseWriter, r *http.Request) {
	step, ok := formInt(r, "step")
	if !ok {
		http.Error(w, "invalid step", http.StatusBadRequest)
		return
	}
	gs, err := h.svc.JumpTo(chi.URLParam(r, "id"), step)
	h.respond(w, r, gs, err)
}

func (h *handlers) order(w http.ResponseWriter, r *http.Request) {
	gs, err := h.svc.ToggleOrder(chi.URLParam(r, "id"))
	h.respond(w, r, gs, err)
}

func (h *handlers) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// respond sends the board fragment to htmx requests and redirects plain form
// posts back to the game page.
func (h *handlers) respond(w http.ResponseWriter, r *http.Request, gs *app.Session, err error) {
	switch {
	case errors.Is(err, app.ErrNotFound):
		http.NotFound(w, r)
		return
	case errors.Is(err, domain.ErrInvalidCell):
		http.Error(w, "invalid cell", http.StatusBadRequest)
		return
	case errors.Is(err, domain.ErrInvalidStep):
		http.Error(w, "invalid step", http.StatusBadRequest)
		return
	case err != nil:
		h.fail(w, r, err)
		return
	}
	if r.Header.Get("HX-Request") != "true" {
		http.Redirect(w, r, "/game/"+gs.ID, http.StatusSeeOther)
		return
	}
	body, err := renderTemplate(h.tpl.board, newGameView(gs))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.write(w, http.StatusOK, body)
}

func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func formInt(r *http.Request, key string) (int, bool) {
	if err := r.ParseForm(); err != nil {
		return 0, false
	}
	v, err := strconv.Atoi(r.Form.Get(key))
	if err != nil {
		return 0, false
	}
	return v, true
}
