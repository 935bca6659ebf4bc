package fees

import "gorm.io/gorm"

type WithdrawalRepository interface {
	Create(w *Withdrawal) error
	GetAll() ([]Withdrawal, error)
	TotalWithdrawn() (float64, error)
}

type withdrawalRepository struct {
	db *gorm.DB
}

func NewWithdrawalRepository(db *gorm.DB) WithdrawalRepository {
	return &withdrawalRepository{db: db}
}

func (r *withdrawalRepository) Create(w *Withdrawal) error {
	return r.db.Create(w).Error
}

func (r *withdrawalRepository) GetAll() ([]Withdrawal, error) {
	var withdrawals []Withdrawal
	err := r.db.Order("withdrawn_at desc").Find(&withdrawals).Error
	if err != nil {
		return nil, err
	}
	return withdrawals, nil
}

func (r *withdrawalRepository) TotalWithdrawn() (float64, error) {
	var total float64
	err := r.db.Model(&Withdrawal{}).
		Select("COALESCE(SUM(amount), 0)").
		Find(&total).Error
	return total, err
}
