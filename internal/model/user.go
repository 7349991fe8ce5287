package model

import "time"

// User — учётная запись пользователя хранилища.
type User struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"size:100"`
	Email string `gorm:"size:100;uniqueIndex;not null"`

	// Password хранит bcrypt-хеш, никогда не исходный пароль.
	Password string `gorm:"size:200;not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
