package match

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type MatchRepository interface {
	Create(m *Match) error
	GetByID(id string) (*Match, error)
	GetAll(page, pageSize int, status Status) ([]Match, int64, error)
	GetCompletedSince(cutoff time.Time) ([]Match, error)
	GetAllCompleted() ([]Match, error)
	Update(m *Match) error
	Delete(id string) error
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(m *Match) error {
	return r.db.Create(m).Error
}

func (r *matchRepository) GetByID(id string) (*Match, error) {
	var m Match
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *matchRepository) GetAll(page, pageSize int, status Status) ([]Match, int64, error) {
	var matches []Match
	var total int64

	query := r.db.Model(&Match{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("scheduled_at desc").Offset(offset).Limit(pageSize).Find(&matches).Error
	if err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

// GetCompletedSince lists completed matches inside the visibility window,
// newest first.
func (r *matchRepository) GetCompletedSince(cutoff time.Time) ([]Match, error) {
	var matches []Match
	err := r.db.
		Where("status = ? AND completed_at >= ?", StatusCompleted, cutoff).
		Order("completed_at desc").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// GetAllCompleted lists every completed match, for fee and finance totals.
func (r *matchRepository) GetAllCompleted() ([]Match, error) {
	var matches []Match
	err := r.db.
		Where("status = ?", StatusCompleted).
		Order("completed_at desc").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) Update(m *Match) error {
	return r.db.Save(m).Error
}

func (r *matchRepository) Delete(id string) error {
	return r.db.Delete(&Match{}, "id = ?", id).Error
}
