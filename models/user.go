package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser      UserRole = "USER"
	RoleAdmin     UserRole = "ADMIN"
	RoleManager   UserRole = "MANAGER"
	RoleSales     UserRole = "SALES"
	RoleSupport   UserRole = "SUPPORT"
	RoleMarketing UserRole = "MARKETING"
	RoleHR        UserRole = "HR"
)

type UserStatus string

const (
	UserActive    UserStatus = "ACTIVE"
	UserInactive  UserStatus = "INACTIVE"
	UserPending   UserStatus = "PENDING"
	UserSuspended UserStatus = "SUSPENDED"
)

type User struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex:idx_user_email"`
	FirstName      string
	LastName       string
	PhoneNumber    string `gorm:"uniqueIndex:idx_user_phone"`
	HashedPassword string
	Status         UserStatus `gorm:"default:'PENDING'"`
	Role           UserRole   `gorm:"default:'USER'"`
	CreatedBy      *uint
	UpdatedBy      *uint
}

func (u *User) MapToJsonStruct() interface{} {
	return struct {
		Id          uint      `json:"id"`
		Email       string    `json:"email"`
		FirstName   string    `json:"first_name"`
		LastName    string    `json:"last_name"`
		PhoneNumber string    `json:"phone_number"`
		Status      string    `json:"status"`
		Role        string    `json:"role"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}{
		Id:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		Status:      string(u.Status),
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

const (
	AccessTokenType = "access"
	AdminTokenType  = "admin"
)

// Token is an opaque API credential issued by an admin, as an
// alternative to JWT login for service callers.
type Token struct {
	gorm.Model
	Value  string `gorm:"uniqueIndex:idx_token"`
	UserID uint
	User   *User
	Type   string
}
