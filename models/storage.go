package models

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dchest/uniuri"
	"gorm.io/gorm"
)

func (db *Database) GetUsers(skip int, limit int) ([]User, error) {
	var users []User
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	err := db.GormDB.Offset(skip).Limit(limit).Find(&users).Error
	if err != nil {
		slog.Error("error fetching users", "error", err)
		return nil, err
	}
	return users, nil
}

func (db *Database) GetUser(userId uint) (*User, error) {
	var user User
	err := db.GormDB.First(&user, userId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("error fetching user", "userId", userId, "error", err)
		return nil, err
	}
	return &user, nil
}

func (db *Database) GetUserByEmail(email string) (*User, error) {
	var user User
	err := db.GormDB.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("error fetching user by email", "error", err)
		return nil, err
	}
	return &user, nil
}

func (db *Database) CreateUser(email string, firstName string, lastName string, phoneNumber string, hashedPassword string) (*User, error) {
	user := &User{
		Email:          email,
		FirstName:      firstName,
		LastName:       lastName,
		PhoneNumber:    phoneNumber,
		HashedPassword: hashedPassword,
		Status:         UserPending,
		Role:           RoleUser,
	}
	result := db.GormDB.Create(user)
	if result.Error != nil {
		slog.Error("error creating user", "error", result.Error)
		return nil, translateStoreError(result.Error,
			"email or phone number already registered",
			"invalid reference on user")
	}
	slog.Info("created user", "userId", user.ID)
	return user, nil
}

func (db *Database) GetToken(tokenValue string) (*Token, error) {
	var token Token
	err := db.GormDB.Preload("User").Where("value = ?", tokenValue).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("error fetching token", "error", err)
		return nil, err
	}
	return &token, nil
}

func (db *Database) CreateToken(userId uint, tokenType string) (*Token, error) {
	token := &Token{
		Value:  fmt.Sprintf("t:%v", uniuri.NewLen(64)),
		UserID: userId,
		Type:   tokenType,
	}
	result := db.GormDB.Create(token)
	if result.Error != nil {
		slog.Error("error creating token", "error", result.Error)
		return nil, result.Error
	}
	return token, nil
}
