package models

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex:idx_category_name"`
	Description string
	CreatedBy   *uint
	UpdatedBy   *uint
}

func (c *Category) MapToJsonStruct() interface{} {
	return struct {
		Id          uint   `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}{
		Id:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

type Product struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex:idx_product_name"`
	Description string
	Price       float64
	CategoryID  uint
	Category    *Category
	CreatedBy   *uint
	UpdatedBy   *uint
}

func (p *Product) MapToJsonStruct() interface{} {
	return struct {
		Id          uint    `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		CategoryID  uint    `json:"category_id"`
	}{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
	}
}

// CategoryPatch and ProductPatch carry optional update fields; nil
// means "leave unchanged".
type CategoryPatch struct {
	Name        *string
	Description *string
}

type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	CategoryID  *uint
}
