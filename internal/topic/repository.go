package topic

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/abhinav-rai/pathcraft/internal/course"
)

// Key identifies the unique (course, user, slug) triple of a materialized
// topic.
type Key struct {
	CourseID uuid.UUID
	UserID   uuid.UUID
	Slug     string
}

type Repository interface {
	FindByKey(key Key) (*Topic, error)
	FindAllByCourseAndUser(courseID, userID uuid.UUID) ([]*Topic, error)

	// FindOrCreate inserts the topic unless the key already exists, and
	// returns the winning row either way. Safe under concurrent calls.
	FindOrCreate(topic *Topic) (*Topic, error)

	// UpdateLocked loads the topic under a row lock, applies mutate, and
	// persists when mutate reports a change. When a mutation completes the
	// topic, the owning course's completion counters are rolled up in the
	// same transaction. Returns gorm.ErrRecordNotFound if the key is absent.
	UpdateLocked(key Key, mutate func(t *Topic) (bool, error)) (*Topic, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByKey(key Key) (*Topic, error) {
	var t Topic
	err := r.db.
		Where("course_id = ? AND user_id = ? AND slug = ?", key.CourseID, key.UserID, key.Slug).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindAllByCourseAndUser(courseID, userID uuid.UUID) ([]*Topic, error) {
	var topics []*Topic
	if err := r.db.
		Where("course_id = ? AND user_id = ?", courseID, userID).
		Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (r *repository) FindOrCreate(topic *Topic) (*Topic, error) {
	// ON CONFLICT DO NOTHING on the (course_id, user_id, slug) unique index
	// closes the find-then-create race; the re-read returns whichever insert
	// won.
	if err := r.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(topic).Error; err != nil {
		return nil, err
	}
	return r.FindByKey(Key{CourseID: topic.CourseID, UserID: topic.UserID, Slug: topic.Slug})
}

func (r *repository) UpdateLocked(key Key, mutate func(t *Topic) (bool, error)) (*Topic, error) {
	var result *Topic

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var t Topic
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("course_id = ? AND user_id = ? AND slug = ?", key.CourseID, key.UserID, key.Slug).
			First(&t).Error; err != nil {
			return err
		}

		wasCompleted := t.IsCompleted

		changed, err := mutate(&t)
		if err != nil {
			return err
		}
		result = &t
		if !changed {
			return nil
		}

		if err := tx.Save(&t).Error; err != nil {
			return err
		}

		if !wasCompleted && t.IsCompleted {
			return rollupCourseCompletion(tx, t.CourseID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// rollupCourseCompletion bumps the course's completed-topic counter and
// recomputes its aggregate progress. Postgres evaluates both expressions
// against the pre-update row, so the +1 is repeated in the progress formula.
func rollupCourseCompletion(tx *gorm.DB, courseID uuid.UUID) error {
	return tx.Model(&course.Course{}).
		Where("id = ?", courseID).
		Updates(map[string]interface{}{
			"completed_topics_count": gorm.Expr("completed_topics_count + 1"),
			"progress": gorm.Expr(
				"LEAST(100, CAST(ROUND(100.0 * (completed_topics_count + 1) / NULLIF(topics_count, 0)) AS INTEGER))",
			),
		}).Error
}
