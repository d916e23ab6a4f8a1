// Package model holds the GORM persistence models. They are mapped to and
// from domain entities by the repositories and never leave the infra layer.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex:uq_users_email;not null"`
	Password  string    `gorm:"type:varchar(255);not null"`
	Confirmed bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
