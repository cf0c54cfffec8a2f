package user

import "gorm.io/gorm"

type UserContainer struct {
	Handler *Handler
	Service UserService
	Repo    UserRepository
}

func NewUserContainer(db *gorm.DB, board ScoreBoard) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo, NewGoogleVerifier(), board)
	handler := NewHandler(service)

	return &UserContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
