package model

import "time"

type UserModel struct {
	UserID        int       `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	UserName      string    `gorm:"column:user_name;type:varchar(60);not null" json:"user_name"`
	UserEmail     string    `gorm:"column:user_email;type:varchar(120);not null;uniqueIndex:uq_users_email" json:"user_email"`
	UserPassword  string    `gorm:"column:user_password;type:text;not null" json:"-"`
	UserCreatedAt time.Time `gorm:"column:user_created_at;not null;autoCreateTime" json:"user_created_at"`
}

func (UserModel) TableName() string { return "users" }
