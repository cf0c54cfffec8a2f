package container

import (
	"context"
	"log"

	"github.com/yeonjeyeong/economy-lingo/internal/admin"
	"github.com/yeonjeyeong/economy-lingo/internal/auth"
	"github.com/yeonjeyeong/economy-lingo/internal/calendar"
	"github.com/yeonjeyeong/economy-lingo/internal/config"
	"github.com/yeonjeyeong/economy-lingo/internal/history"
	"github.com/yeonjeyeong/economy-lingo/internal/ledger"
	"github.com/yeonjeyeong/economy-lingo/internal/news"
	"github.com/yeonjeyeong/economy-lingo/internal/post"
	"github.com/yeonjeyeong/economy-lingo/internal/question"
	"github.com/yeonjeyeong/economy-lingo/internal/ranking"
	"github.com/yeonjeyeong/economy-lingo/internal/session"
	"github.com/yeonjeyeong/economy-lingo/internal/user"
)

type Container struct {
	UserContainer     *user.UserContainer
	QuestionContainer *question.Container
	SessionContainer  *session.Container
	LedgerContainer   *ledger.Container
	HistoryContainer  *history.Container
	PostContainer     *post.Container
	RankingContainer  *ranking.Container
	NewsContainer     *news.Container
	CalendarContainer *calendar.Container
	AdminContainer    *admin.Container
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	ctx := context.Background()

	db, err := config.Connect()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := db.AutoMigrate(&user.User{}, &post.Post{}, &post.Comment{}, &history.QuizResult{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	redisClient, err := config.ConnectRedis(ctx)
	if err != nil {
		log.Fatalf("failed to connect to Redis: %v", err)
	}

	userRepo := user.NewRepository(db)
	rankingContainer := ranking.NewContainer(redisClient, userRepo)
	userContainer := user.NewUserContainer(db, rankingContainer.Board)

	questionContainer := question.NewContainer(ctx)
	ledgerContainer := ledger.NewContainer(redisClient)
	historyContainer := history.NewContainer(db)
	postContainer := post.NewContainer(db)
	newsContainer := news.NewContainer()
	calendarContainer := calendar.NewContainer()

	sessionContainer := session.NewContainer(
		questionContainer.Source,
		ledgerContainer.Service,
		userContainer.Service,
		historyContainer.Service,
	)

	adminContainer := admin.NewContainer(userContainer.Repo, postContainer.Repo, rankingContainer.Board)

	return &Container{
		UserContainer:     userContainer,
		QuestionContainer: questionContainer,
		SessionContainer:  sessionContainer,
		LedgerContainer:   ledgerContainer,
		HistoryContainer:  historyContainer,
		PostContainer:     postContainer,
		RankingContainer:  rankingContainer,
		NewsContainer:     newsContainer,
		CalendarContainer: calendarContainer,
		AdminContainer:    adminContainer,
	}
}
