package main

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/yeonjeyeong/economy-lingo/internal/container"
	"github.com/yeonjeyeong/economy-lingo/internal/router"
)

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:     c.UserContainer.Handler,
		QuestionHandler: c.QuestionContainer.Handler,
		SessionHandler:  c.SessionContainer.Handler,
		LedgerHandler:   c.LedgerContainer.Handler,
		HistoryHandler:  c.HistoryContainer.Handler,
		PostHandler:     c.PostContainer.Handler,
		RankingHandler:  c.RankingContainer.Handler,
		NewsHandler:     c.NewsContainer.Handler,
		CalendarHandler: c.CalendarContainer.Handler,
		AdminHandler:    c.AdminContainer.Handler,
	})

	port := viper.GetString("server.port")
	if port == "" {
		port = "8080"
	}

	logrus.Infof("starting server on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
