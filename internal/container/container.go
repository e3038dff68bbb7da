package container

import (
	"context"
	"log"
	"os"

	"github.com/abhinav-rai/pathcraft/internal/auth"
	"github.com/abhinav-rai/pathcraft/internal/config"
	"github.com/abhinav-rai/pathcraft/internal/course"
	"github.com/abhinav-rai/pathcraft/internal/llm"
	"github.com/abhinav-rai/pathcraft/internal/topic"
	"github.com/abhinav-rai/pathcraft/internal/user"
)

type Container struct {
	UserContainer   *user.Container
	CourseContainer *course.Container
	TopicContainer  *topic.Container
}

func New() *Container {
	ctx := context.Background()

	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn,
		&user.User{},
		&course.Course{},
		&topic.Topic{},
	); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	provider, err := llm.NewGeminiProvider(ctx)
	if err != nil {
		log.Fatalf("failed to create generation provider: %v", err)
	}

	userContainer := user.NewContainer(config.DB)
	courseContainer := course.NewContainer(config.DB, provider)
	topicContainer := topic.NewContainer(config.DB, courseContainer.Repo, provider)

	return &Container{
		UserContainer:   userContainer,
		CourseContainer: courseContainer,
		TopicContainer:  topicContainer,
	}
}
