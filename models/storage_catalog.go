package models

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

func (db *Database) GetCategories(skip int, limit int) ([]Category, error) {
	var categories []Category
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	err := db.GormDB.Offset(skip).Limit(limit).Find(&categories).Error
	if err != nil {
		slog.Error("error fetching categories", "error", err)
		return nil, err
	}
	return categories, nil
}

func (db *Database) GetCategory(categoryId uint) (*Category, error) {
	var category Category
	err := db.GormDB.First(&category, categoryId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("error fetching category", "categoryId", categoryId, "error", err)
		return nil, err
	}
	return &category, nil
}

func (db *Database) CreateCategory(name string, description string, createdBy uint) (*Category, error) {
	category := &Category{
		Name:        name,
		Description: description,
		CreatedBy:   &createdBy,
	}
	result := db.GormDB.Create(category)
	if result.Error != nil {
		slog.Error("error creating category", "name", name, "error", result.Error)
		return nil, translateStoreError(result.Error,
			fmt.Sprintf("category %v already exists", name),
			"invalid reference on category")
	}
	return category, nil
}

func (db *Database) UpdateCategory(categoryId uint, patch CategoryPatch, updatedBy uint) (*Category, error) {
	var category *Category
	err := db.GormDB.Transaction(func(tx *gorm.DB) error {
		category = &Category{}
		err := tx.First(category, categoryId).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				category = nil
				return nil
			}
			return err
		}
		if patch.Name != nil {
			category.Name = *patch.Name
		}
		if patch.Description != nil {
			category.Description = *patch.Description
		}
		category.UpdatedBy = &updatedBy
		return translateStoreError(tx.Save(category).Error,
			fmt.Sprintf("category %v already exists", category.Name),
			"invalid reference on category")
	})
	if err != nil {
		slog.Error("error updating category", "categoryId", categoryId, "error", err)
		return nil, err
	}
	return category, nil
}

func (db *Database) DeleteCategory(categoryId uint) (bool, error) {
	result := db.GormDB.Delete(&Category{}, categoryId)
	if result.Error != nil {
		slog.Error("error deleting category", "categoryId", categoryId, "error", result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (db *Database) GetProducts(skip int, limit int) ([]Product, error) {
	var products []Product
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	err := db.GormDB.Offset(skip).Limit(limit).Find(&products).Error
	if err != nil {
		slog.Error("error fetching products", "error", err)
		return nil, err
	}
	return products, nil
}

func (db *Database) GetProduct(productId uint) (*Product, error) {
	var product Product
	err := db.GormDB.First(&product, productId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("error fetching product", "productId", productId, "error", err)
		return nil, err
	}
	return &product, nil
}

func (db *Database) CreateProduct(name string, description string, price float64, categoryId uint, createdBy uint) (*Product, error) {
	product := &Product{
		Name:        name,
		Description: description,
		Price:       price,
		CategoryID:  categoryId,
		CreatedBy:   &createdBy,
	}
	err := db.GormDB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Category{}).Where("id = ?", categoryId).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return NewReferentialError(fmt.Sprintf("category %v does not exist", categoryId))
		}
		return translateStoreError(tx.Create(product).Error,
			fmt.Sprintf("product %v already exists", name),
			"invalid category id")
	})
	if err != nil {
		slog.Error("error creating product", "name", name, "error", err)
		return nil, err
	}
	return product, nil
}

func (db *Database) UpdateProduct(productId uint, patch ProductPatch, updatedBy uint) (*Product, error) {
	var product *Product
	err := db.GormDB.Transaction(func(tx *gorm.DB) error {
		product = &Product{}
		err := tx.First(product, productId).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				product = nil
				return nil
			}
			return err
		}
		if patch.Name != nil {
			product.Name = *patch.Name
		}
		if patch.Description != nil {
			product.Description = *patch.Description
		}
		if patch.Price != nil {
			product.Price = *patch.Price
		}
		if patch.CategoryID != nil {
			var count int64
			if err := tx.Model(&Category{}).Where("id = ?", *patch.CategoryID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return NewReferentialError(fmt.Sprintf("category %v does not exist", *patch.CategoryID))
			}
			product.CategoryID = *patch.CategoryID
		}
		product.UpdatedBy = &updatedBy
		return translateStoreError(tx.Save(product).Error,
			fmt.Sprintf("product %v already exists", product.Name),
			"invalid category id")
	})
	if err != nil {
		slog.Error("error updating product", "productId", productId, "error", err)
		return nil, err
	}
	return product, nil
}

func (db *Database) DeleteProduct(productId uint) (bool, error) {
	result := db.GormDB.Delete(&Product{}, productId)
	if result.Error != nil {
		slog.Error("error deleting product", "productId", productId, "error", result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
