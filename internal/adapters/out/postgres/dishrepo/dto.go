// Package dishrepo persists dish aggregates with GORM.
package dishrepo

import (
	"grubdash/internal/core/domain/model/dish"
)

// DishDTO is the "dishes" row. Seq keeps insertion order; ID is the public identifier.
type DishDTO struct {
	Seq         uint64 `gorm:"primaryKey;autoIncrement"`
	ID          string `gorm:"uniqueIndex;not null"`
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	Price       int    `gorm:"not null"`
	ImageURL    string `gorm:"not null"`
}

// TableName overrides GORM's default naming convention.
func (DishDTO) TableName() string {
	return "dishes"
}

func fromDomain(d *dish.Dish) DishDTO {
	return DishDTO{
		ID:          d.ID(),
		Name:        d.Name(),
		Description: d.Description(),
		Price:       d.Price(),
		ImageURL:    d.ImageURL(),
	}
}

func toDomain(dto DishDTO) (*dish.Dish, error) {
	return dish.NewDish(dto.ID, dto.Name, dto.Description, dto.Price, dto.ImageURL)
}
