package repository

import (
	"errors"

	"fbverify/internal/models"
	"fbverify/internal/settings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ settings.OptionStore = (*OptionRepository)(nil)

type OptionRepository struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) *OptionRepository {
	return &OptionRepository{db: db}
}

// Get returns the value stored under name, or "" when there is none.
func (r *OptionRepository) Get(name string) (string, error) {
	var o models.Option
	if err := r.db.Where("`name` = ?", name).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return o.Value, nil
}

func (r *OptionRepository) Set(name, value string) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&models.Option{Name: name, Value: value}).Error
}
