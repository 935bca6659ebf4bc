package player

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlayerRepository interface {
	Create(p *Player) error
	Upsert(p *Player) error
	GetByID(id string) (*Player, error)
	GetByEmail(email string) (*Player, error)
	GetByIDs(ids []string) ([]Player, error)
	GetAll(page, pageSize int, searchTerm string) ([]Player, int64, error)
	Update(p *Player) error
	Delete(id string) error
}

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(p *Player) error {
	return r.db.Create(p).Error
}

// Upsert inserts or fully replaces a player row by id. Import uses this so a
// re-imported roster refreshes existing members.
func (r *playerRepository) Upsert(p *Player) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(p).Error
}

func (r *playerRepository) GetByID(id string) (*Player, error) {
	var p Player
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) GetByEmail(email string) (*Player, error) {
	var p Player
	if err := r.db.First(&p, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) GetByIDs(ids []string) ([]Player, error) {
	var players []Player
	if len(ids) == 0 {
		return players, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) GetAll(page, pageSize int, searchTerm string) ([]Player, int64, error) {
	var players []Player
	var total int64

	query := r.db.Model(&Player{})
	if searchTerm != "" {
		like := "%" + searchTerm + "%"
		query = query.Where("full_name ILIKE ? OR email ILIKE ?", like, like)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("full_name asc").Offset(offset).Limit(pageSize).Find(&players).Error
	if err != nil {
		return nil, 0, err
	}
	return players, total, nil
}

func (r *playerRepository) Update(p *Player) error {
	return r.db.Save(p).Error
}

func (r *playerRepository) Delete(id string) error {
	return r.db.Delete(&Player{}, "id = ?", id).Error
}
