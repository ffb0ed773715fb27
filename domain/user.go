package domain

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleStudent      = "student"
	RoleClubAdmin    = "club_admin"
	RoleCollegeAdmin = "college_admin"
)

type User struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	FullName   string `gorm:"column:full_name;not null" json:"full_name"`
	Email      string `gorm:"column:email;unique;not null" json:"email"`
	IsVerified bool   `gorm:"column:is_verified;default:false" json:"is_verified"`
	Password   string `gorm:"column:password;not null" json:"-"`
	Role       string `gorm:"column:role;default:student" json:"role"`
	College    string `gorm:"column:college" json:"college"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
