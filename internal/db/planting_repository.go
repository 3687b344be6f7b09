package db

import (
	"github.com/andreicarpen/planting-calendar/internal/models"
	"gorm.io/gorm"
)

type PlantingRepository struct {
	database *gorm.DB
}

func NewPlantingRepository(database *gorm.DB) *PlantingRepository {
	return &PlantingRepository{database: database}
}

func (repo *PlantingRepository) ListAll() ([]models.Planting, error) {
	plantings := make([]models.Planting, 0)
	if err := repo.database.Order("position ASC, id ASC").Find(&plantings).Error; err != nil {
		return nil, err
	}
	return plantings, nil
}

func (repo *PlantingRepository) ListByYear(year int) ([]models.Planting, error) {
	plantings := make([]models.Planting, 0)
	if err := repo.database.Where("year = ?", year).Order("position ASC, id ASC").Find(&plantings).Error; err != nil {
		return nil, err
	}
	return plantings, nil
}

func (repo *PlantingRepository) FindByID(id int64) (models.Planting, bool, error) {
	planting := models.Planting{}
	result := repo.database.Where("id = ?", id).Limit(1).Find(&planting)
	if result.Error != nil {
		return models.Planting{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Planting{}, false, nil
	}
	return planting, true, nil
}

func (repo *PlantingRepository) Create(planting *models.Planting) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		position, err := nextPosition(tx)
		if err != nil {
			return err
		}
		planting.Position = position
		return tx.Create(planting).Error
	})
}

func (repo *PlantingRepository) Save(planting *models.Planting) error {
	return repo.database.Save(planting).Error
}

func (repo *PlantingRepository) DeleteByID(id int64) error {
	return repo.database.Where("id = ?", id).Delete(&models.Planting{}).Error
}

// ReplaceAll swaps the whole collection for the given records, keeping their
// slice order as the new insertion order. Runs in one transaction so a failed
// import leaves the previous collection intact.
func (repo *PlantingRepository) ReplaceAll(plantings []models.Planting) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Planting{}).Error; err != nil {
			return err
		}
		for index := range plantings {
			plantings[index].Position = int64(index)
			if err := tx.Create(&plantings[index]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (repo *PlantingRepository) MaxID() (int64, error) {
	var maxID *int64
	if err := repo.database.Model(&models.Planting{}).Select("MAX(id)").Scan(&maxID).Error; err != nil {
		return 0, err
	}
	if maxID == nil {
		return 0, nil
	}
	return *maxID, nil
}

func nextPosition(tx *gorm.DB) (int64, error) {
	var maxPosition *int64
	if err := tx.Model(&models.Planting{}).Select("MAX(position)").Scan(&maxPosition).Error; err != nil {
		return 0, err
	}
	if maxPosition == nil {
		return 0, nil
	}
	return *maxPosition + 1, nil
}
