package course

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abhinav-rai/pathcraft/internal/apperr"
	"github.com/abhinav-rai/pathcraft/internal/config"
	"github.com/abhinav-rai/pathcraft/internal/llm"
	util "github.com/abhinav-rai/pathcraft/internal/utils"
)

// slugAttempts bounds the retry loop on a slug collision.
const slugAttempts = 3

type Service interface {
	CreateFromPrompt(ctx context.Context, userID uuid.UUID, userPrompt string) (*Course, error)
	List(ctx context.Context, userID uuid.UUID) ([]*Course, error)
	GetBySlug(ctx context.Context, userID uuid.UUID, slug string) (*Course, error)
}

type service struct {
	repo     Repository
	provider llm.Provider
}

func NewService(repo Repository, provider llm.Provider) Service {
	return &service{repo: repo, provider: provider}
}

func (s *service) CreateFromPrompt(ctx context.Context, userID uuid.UUID, userPrompt string) (*Course, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(userPrompt) == "" {
		return nil, apperr.Validation("userPrompt is required", nil)
	}

	raw, err := s.provider.GenerateJSON(ctx, systemPrompt, buildUserPrompt(userPrompt), LearningPathSchema)
	if err != nil {
		log.WithError(err).Error("Failed to generate learning path")
		return nil, err
	}

	var path generatedPath
	if err := json.Unmarshal(raw, &path); err != nil {
		return nil, apperr.Generation("model returned invalid output", err)
	}

	course := &Course{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       path.Title,
		Description: path.Description,
		Level:       path.Level,
		Tags:        path.Tags,
		Topics:      catalogFromGenerated(path.Topics),
		TopicsCount: len(path.Topics),
	}

	// The slug carries a short random suffix, so collisions are possible.
	// The unique constraint is the authority; regenerate and retry on conflict.
	for attempt := 0; attempt < slugAttempts; attempt++ {
		course.Slug = util.GenerateSlug(course.Title)
		err = s.repo.Create(course)
		if err == nil {
			log.Infof("Course %s created with %d topics", course.Slug, course.TopicsCount)
			return course, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
		log.Warnf("Slug collision on %q, retrying", course.Slug)
	}

	log.WithError(err).Error("Failed to persist course")
	return nil, apperr.Persistence("failed to create learning path", err)
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]*Course, error) {
	courses, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list courses")
		return nil, apperr.Persistence("failed to list learning paths", err)
	}
	return courses, nil
}

func (s *service) GetBySlug(ctx context.Context, userID uuid.UUID, slug string) (*Course, error) {
	course, err := s.repo.FindBySlug(slug)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to fetch course")
		return nil, apperr.Persistence("failed to fetch learning path", err)
	}
	if course == nil || course.UserID != userID {
		return nil, apperr.NotFound("learning path not found")
	}
	return course, nil
}

// catalogFromGenerated derives stable, deterministic slugs for catalog
// entries. Slugs only need to be unique within the course, so duplicate
// titles get a numeric suffix instead of a random one.
func catalogFromGenerated(topics []generatedTopic) []TopicSpec {
	specs := make([]TopicSpec, 0, len(topics))
	seen := make(map[string]int, len(topics))

	for _, t := range topics {
		slug := util.Slugify(t.Title)
		if slug == "" {
			slug = "topic"
		}
		seen[slug]++
		if n := seen[slug]; n > 1 {
			slug = fmt.Sprintf("%s-%d", slug, n)
		}

		specs = append(specs, TopicSpec{
			Title:       t.Title,
			Description: t.Description,
			Slug:        slug,
			Tags:        t.Tags,
		})
	}
	return specs
}
