package topic

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abhinav-rai/pathcraft/internal/apperr"
	"github.com/abhinav-rai/pathcraft/internal/config"
	"github.com/abhinav-rai/pathcraft/internal/course"
	"github.com/abhinav-rai/pathcraft/internal/llm"
)

type Service interface {
	GenerateNotes(ctx context.Context, userID, courseID uuid.UUID, slug string) (*Topic, error)
	GenerateQuiz(ctx context.Context, userID, courseID uuid.UUID, slug string) (*Topic, error)
	CheckAnswer(ctx context.Context, userID uuid.UUID, dto CheckAnswerDTO) (*AnswerResult, error)
	ListTopics(ctx context.Context, userID, courseID uuid.UUID) ([]TopicView, error)
}

type service struct {
	repo       Repository
	courseRepo course.Repository
	provider   llm.Provider
}

func NewService(repo Repository, courseRepo course.Repository, provider llm.Provider) Service {
	return &service{
		repo:       repo,
		courseRepo: courseRepo,
		provider:   provider,
	}
}

func (s *service) GenerateNotes(ctx context.Context, userID, courseID uuid.UUID, slug string) (*Topic, error) {
	return s.generateArtifact(ctx, userID, courseID, slug, KindNotes)
}

func (s *service) GenerateQuiz(ctx context.Context, userID, courseID uuid.UUID, slug string) (*Topic, error) {
	return s.generateArtifact(ctx, userID, courseID, slug, KindQuiz)
}

// generateArtifact enforces the generate-once cache: at most one external
// generation call per (topic, kind) once an artifact exists. The external
// call happens outside any transaction; persistence re-checks the cache
// under a row lock, so a lost race discards the duplicate result.
func (s *service) generateArtifact(ctx context.Context, userID, courseID uuid.UUID, slug string, kind ArtifactKind) (*Topic, error) {
	log := config.WithContext(ctx)

	spec, err := s.resolveSpec(userID, courseID, slug)
	if err != nil {
		return nil, err
	}

	key := Key{CourseID: courseID, UserID: userID, Slug: slug}
	t, err := s.repo.FindByKey(key)
	if err != nil {
		return nil, apperr.Persistence("failed to load topic", err)
	}
	if t != nil && t.HasArtifact(kind) {
		log.Debugf("Artifact %s for topic %s already generated, returning cached", kind, slug)
		return t, nil
	}

	if t == nil {
		t, err = s.repo.FindOrCreate(&Topic{
			ID:          uuid.New(),
			CourseID:    courseID,
			UserID:      userID,
			Slug:        slug,
			Title:       spec.Title,
			Description: spec.Description,
		})
		if err != nil {
			return nil, apperr.Persistence("failed to create topic", err)
		}
		if t.HasArtifact(kind) {
			return t, nil
		}
	}

	var notes []Note
	var questions []Question
	var solutions []Solution

	switch kind {
	case KindNotes:
		raw, genErr := s.provider.GenerateJSON(ctx, notesSystemPrompt, buildNotesPrompt(spec.Title, spec.Description), NotesSchema)
		if genErr != nil {
			log.WithError(genErr).Error("Notes generation failed")
			return nil, genErr
		}
		if notes, err = notesFromPayload(raw); err != nil {
			return nil, err
		}
	case KindQuiz:
		raw, genErr := s.provider.GenerateJSON(ctx, quizSystemPrompt, buildQuizPrompt(spec.Title, spec.Description), QuizSchema)
		if genErr != nil {
			log.WithError(genErr).Error("Quiz generation failed")
			return nil, genErr
		}
		if questions, solutions, err = quizFromPayload(raw); err != nil {
			return nil, err
		}
	default:
		return nil, apperr.Validation("unknown artifact kind", nil)
	}

	updated, err := s.repo.UpdateLocked(key, func(t *Topic) (bool, error) {
		if t.HasArtifact(kind) {
			// another request generated it first; keep theirs
			return false, nil
		}
		if kind == KindNotes {
			t.Notes = notes
		} else {
			t.Questions = questions
			t.Solutions = solutions
		}
		return true, nil
	})
	if err != nil {
		return nil, apperr.Persistence("failed to persist generated artifact", err)
	}

	log.Infof("Generated %s artifact for topic %s", kind, slug)
	return updated, nil
}

func (s *service) CheckAnswer(ctx context.Context, userID uuid.UUID, dto CheckAnswerDTO) (*AnswerResult, error) {
	log := config.WithContext(ctx)

	var result *AnswerResult
	_, err := s.repo.UpdateLocked(Key{CourseID: dto.CourseID, UserID: userID, Slug: dto.TopicSlug}, func(t *Topic) (bool, error) {
		r, err := applyAnswer(t, dto.QuestionID, dto.OptionID)
		if err != nil {
			return false, err
		}
		result = r
		return true, nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("topic not found")
		}
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		log.WithError(err).Error("Failed to record answer")
		return nil, apperr.Persistence("failed to record answer", err)
	}

	return result, nil
}

func (s *service) ListTopics(ctx context.Context, userID, courseID uuid.UUID) ([]TopicView, error) {
	c, err := s.lookupCourse(userID, courseID)
	if err != nil {
		return nil, err
	}

	materialized, err := s.repo.FindAllByCourseAndUser(courseID, userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list topics")
		return nil, apperr.Persistence("failed to list topics", err)
	}

	return buildTopicViews(c.Topics, materialized), nil
}

func (s *service) lookupCourse(userID, courseID uuid.UUID) (*course.Course, error) {
	c, err := s.courseRepo.FindByID(courseID)
	if err != nil {
		return nil, apperr.Persistence("failed to load learning path", err)
	}
	if c == nil || c.UserID != userID {
		return nil, apperr.NotFound("learning path not found")
	}
	return c, nil
}

func (s *service) resolveSpec(userID, courseID uuid.UUID, slug string) (*course.TopicSpec, error) {
	c, err := s.lookupCourse(userID, courseID)
	if err != nil {
		return nil, err
	}
	for i := range c.Topics {
		if c.Topics[i].Slug == slug {
			return &c.Topics[i], nil
		}
	}
	return nil, apperr.NotFound("topic not found in learning path")
}
