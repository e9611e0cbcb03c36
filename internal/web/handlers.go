package web

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mseguin/recallbox/internal/deck"
	"github.com/mseguin/recallbox/internal/domain"
	"github.com/mseguin/recallbox/internal/session"
	"github.com/mseguin/recallbox/internal/stats"
)

// indexView feeds the theme list page.
type indexView struct {
	Overall stats.Overall
	Themes  []themeView
}

type themeView struct {
	stats.ThemeProgress
	Flames string
}

// studyView feeds the study page; Result is nil while a card is still
// being presented and set right after grading.
type studyView struct {
	Theme    string
	Token    string
	Position int
	Size     int
	Question string
	Hints    []string
	HintLeft bool
	Result   *session.Result
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	view := indexView{Overall: stats.ForDeck(s.cards, s.store)}
	for _, line := range stats.AllThemes(s.cards, s.store) {
		view.Themes = append(view.Themes, themeView{
			ThemeProgress: line,
			Flames:        strings.Repeat("🔥", line.FlameStreak),
		})
	}
	s.render(w, "index.html", view)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	view := indexView{Overall: stats.ForDeck(s.cards, s.store)}
	for _, line := range stats.AllThemes(s.cards, s.store) {
		view.Themes = append(view.Themes, themeView{
			ThemeProgress: line,
			Flames:        strings.Repeat("🔥", line.FlameStreak),
		})
	}
	s.render(w, "stats.html", view)
}

// handleStudy shows the current card of the theme's session, starting
// one if needed. A finished session redirects home.
func (s *Server) handleStudy(w http.ResponseWriter, r *http.Request) {
	theme, ok := s.theme(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.ensureSession(theme)
	card, ok := ts.sess.Current()
	if !ok {
		delete(s.sessions, theme)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	revealed := ts.sess.RevealedHints()
	s.render(w, "study.html", studyView{
		Theme:    theme,
		Token:    ts.token.String(),
		Position: ts.sess.Index() + 1,
		Size:     ts.sess.Size(),
		Question: card.Question,
		Hints:    revealed,
		HintLeft: len(revealed) < len(card.Hints),
		Result:   ts.result,
	})
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	theme, ok := s.theme(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	if ts := s.current(theme, r); ts != nil && ts.result == nil {
		ts.sess.RevealHint()
	}
	s.mu.Unlock()

	http.Redirect(w, r, studyPath(theme), http.StatusSeeOther)
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	theme, ok := s.theme(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	if ts := s.current(theme, r); ts != nil && ts.result == nil {
		result, err := ts.sess.Submit(r.FormValue("answer"))
		if err != nil {
			s.logger.Warn("answer rejected", slog.String("theme", theme), "error", err)
		} else {
			ts.result = &result
		}
	}
	s.mu.Unlock()

	http.Redirect(w, r, studyPath(theme), http.StatusSeeOther)
}

// handleNext acknowledges a graded card. Completing the pool finishes
// the session (aggregates plus save happen inside the engine) and
// returns to the theme list.
func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	theme, ok := s.theme(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	ts := s.current(theme, r)
	if ts != nil && ts.result != nil {
		ts.result = nil
		if err := ts.sess.Advance(r.Context()); err != nil {
			s.mu.Unlock()
			s.logger.Error("advancing session", "error", err)
			http.Error(w, "failed to save progress", http.StatusInternalServerError)
			return
		}
		if ts.sess.Finished() {
			delete(s.sessions, theme)
			s.mu.Unlock()
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
	}
	s.mu.Unlock()

	http.Redirect(w, r, studyPath(theme), http.StatusSeeOther)
}

func (s *Server) handleQuit(w http.ResponseWriter, r *http.Request) {
	theme, ok := s.theme(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	if ts := s.current(theme, r); ts != nil {
		if err := ts.sess.Quit(r.Context()); err != nil {
			s.mu.Unlock()
			s.logger.Error("quitting session", "error", err)
			http.Error(w, "failed to save progress", http.StatusInternalServerError)
			return
		}
		delete(s.sessions, theme)
	}
	s.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// studyPath builds the study URL for a theme, escaping names with
// spaces or slashes. Themes are free-form strings.
func studyPath(theme string) string {
	return "/study/" + url.PathEscape(theme)
}

// theme extracts and checks the theme route parameter.
func (s *Server) theme(w http.ResponseWriter, r *http.Request) (string, bool) {
	theme, err := url.PathUnescape(chi.URLParam(r, "theme"))
	if err != nil {
		http.NotFound(w, r)
		return "", false
	}
	if _, ok := deck.Themes(s.cards)[theme]; !ok {
		http.NotFound(w, r)
		return "", false
	}
	return theme, true
}

// ensureSession returns the theme's running session, starting one over
// today's pool if none exists. Callers hold the mutex.
func (s *Server) ensureSession(theme string) *themeSession {
	if ts, ok := s.sessions[theme]; ok {
		return ts
	}
	ts := &themeSession{
		token: uuid.New(),
		sess: session.New(theme, domain.Today(), s.cards, s.store,
			s.selector, s.streak, s.saver, s.logger),
	}
	s.sessions[theme] = ts
	return ts
}

// current returns the theme's session only when the request's form
// token matches it, dropping actions from stale tabs. Callers hold the
// mutex.
func (s *Server) current(theme string, r *http.Request) *themeSession {
	ts, ok := s.sessions[theme]
	if !ok || r.FormValue("token") != ts.token.String() {
		return nil
	}
	return ts
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("rendering template", slog.String("template", name), "error", err)
	}
}
