package course

import (
	"gorm.io/gorm"

	"github.com/abhinav-rai/pathcraft/internal/llm"
)

type Container struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewContainer(db *gorm.DB, provider llm.Provider) *Container {
	repo := NewRepository(db)
	service := NewService(repo, provider)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
