package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/yeonjeyeong/economy-lingo/internal/admin"
	"github.com/yeonjeyeong/economy-lingo/internal/auth"
	"github.com/yeonjeyeong/economy-lingo/internal/calendar"
	"github.com/yeonjeyeong/economy-lingo/internal/history"
	"github.com/yeonjeyeong/economy-lingo/internal/ledger"
	"github.com/yeonjeyeong/economy-lingo/internal/middlewares"
	"github.com/yeonjeyeong/economy-lingo/internal/news"
	"github.com/yeonjeyeong/economy-lingo/internal/post"
	"github.com/yeonjeyeong/economy-lingo/internal/question"
	"github.com/yeonjeyeong/economy-lingo/internal/ranking"
	"github.com/yeonjeyeong/economy-lingo/internal/session"
	"github.com/yeonjeyeong/economy-lingo/internal/user"
)

type RouterConfig struct {
	UserHandler     *user.Handler
	QuestionHandler *question.Handler
	SessionHandler  *session.Handler
	LedgerHandler   *ledger.Handler
	HistoryHandler  *history.Handler
	PostHandler     *post.Handler
	RankingHandler  *ranking.Handler
	NewsHandler     *news.Handler
	CalendarHandler *calendar.Handler
	AdminHandler    *admin.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Route("/auth", func(r chi.Router) {
		r.Get("/login", cfg.UserHandler.LoginURL)
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Mount("/questions", question.Routes(cfg.QuestionHandler))
	r.Mount("/rankings", ranking.Routes(cfg.RankingHandler))
	r.Mount("/news", news.Routes(cfg.NewsHandler))
	r.Mount("/calendar", calendar.Routes(cfg.CalendarHandler))
	r.Mount("/posts", post.Routes(cfg.PostHandler, auth.AuthMiddleware))

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/sessions", session.Routes(cfg.SessionHandler))
		r.Mount("/wrong-answers", ledger.Routes(cfg.LedgerHandler))
		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/quizzes", history.Routes(cfg.HistoryHandler))
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Use(auth.RequireAdmin)

		r.Mount("/admin", admin.Routes(cfg.AdminHandler))
	})
	return r
}
