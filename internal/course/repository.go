package course

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(course *Course) error
	FindByID(id uuid.UUID) (*Course, error)
	FindBySlug(slug string) (*Course, error)
	FindAllByUserID(userID uuid.UUID) ([]*Course, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(course *Course) error {
	return r.db.Create(course).Error
}

func (r *repository) FindByID(id uuid.UUID) (*Course, error) {
	var course Course
	if err := r.db.First(&course, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (r *repository) FindBySlug(slug string) (*Course, error) {
	var course Course
	if err := r.db.First(&course, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (r *repository) FindAllByUserID(userID uuid.UUID) ([]*Course, error) {
	var courses []*Course
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}
