package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateCategoryDuplicateNameConflict(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	admin := seedUser(t, db, "admin@example.com", RoleAdmin)

	_, err := db.CreateCategory("hardware", "tools", admin.ID)
	assert.NoError(t, err)

	_, err = db.CreateCategory("hardware", "other tools", admin.ID)
	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, ErrKindConflict, domainErr.Kind)
}

func TestCreateProductDanglingCategory(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	admin := seedUser(t, db, "admin@example.com", RoleAdmin)

	_, err := db.CreateProduct("wrench", "adjustable", 12.5, 9999, admin.ID)
	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, ErrKindReferential, domainErr.Kind)
}

func TestUpdateProductPatch(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	admin := seedUser(t, db, "admin@example.com", RoleAdmin)
	product := seedCatalog(t, db)

	price := 15.0
	updated, err := db.UpdateProduct(product.ID, ProductPatch{Price: &price}, admin.ID)
	assert.NoError(t, err)
	assert.Equal(t, 15.0, updated.Price)
	assert.Equal(t, product.Name, updated.Name)
	assert.Equal(t, admin.ID, *updated.UpdatedBy)
}

func TestDeleteCategory(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	admin := seedUser(t, db, "admin@example.com", RoleAdmin)

	category, err := db.CreateCategory("hardware", "tools", admin.ID)
	assert.NoError(t, err)

	deleted, err := db.DeleteCategory(category.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = db.DeleteCategory(category.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestCreateUserDuplicateEmailConflict(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	_, err := db.CreateUser("dup@example.com", "First", "User", "555-0001", "hash")
	assert.NoError(t, err)

	_, err = db.CreateUser("dup@example.com", "Second", "User", "555-0002", "hash")
	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, ErrKindConflict, domainErr.Kind)
}

func TestTokenRoundTrip(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	user := seedUser(t, db, "svc@example.com", RoleAdmin)

	token, err := db.CreateToken(user.ID, AccessTokenType)
	assert.NoError(t, err)
	assert.Contains(t, token.Value, "t:")

	fetched, err := db.GetToken(token.Value)
	assert.NoError(t, err)
	assert.NotNil(t, fetched)
	assert.Equal(t, user.ID, fetched.User.ID)

	missing, err := db.GetToken("t:unknown")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}
