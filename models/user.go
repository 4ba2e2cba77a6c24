package models

import (
	"time"
)

type User struct {
	ID          uint64    `gorm:"column:id;primary_key" json:"id"`
	Username    string    `gorm:"column:username;type:varchar(100);uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	FirebaseUID *string   `gorm:"column:firebase_uid;type:varchar(128);uniqueIndex" json:"firebase_uid,omitempty"`
	ProfileURL  string    `gorm:"column:profile_url;type:varchar(1250)" json:"profile_url"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (u User) TableName() string {
	return "users"
}
