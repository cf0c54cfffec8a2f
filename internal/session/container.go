package session

import "github.com/yeonjeyeong/economy-lingo/internal/question"

type Container struct {
	Handler *Handler
	Manager *Manager
}

func NewContainer(source question.Source, ledger Ledger, accruer Accruer, recorder Recorder) *Container {
	manager := NewManager(source, ledger, accruer, recorder, DefaultScoring)
	handler := NewHandler(manager)

	return &Container{
		Handler: handler,
		Manager: manager,
	}
}
