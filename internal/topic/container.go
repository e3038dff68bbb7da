package topic

import (
	"gorm.io/gorm"

	"github.com/abhinav-rai/pathcraft/internal/course"
	"github.com/abhinav-rai/pathcraft/internal/llm"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, courseRepo course.Repository, provider llm.Provider) *Container {
	repo := NewRepository(db)
	service := NewService(repo, courseRepo, provider)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
