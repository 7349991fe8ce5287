package model

import "time"

// VaultItem — запись хранилища: учётные данные одного сайта.
type VaultItem struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	UserID int64  `gorm:"not null;index"` // ссылка на users.id

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	SiteName string `gorm:"size:100;not null"`
	Username string `gorm:"size:100"`

	// EncryptedPassword — непрозрачный токен шифра (nonce внутри),
	// см. internal/cipher. Открытый пароль в БД не попадает.
	EncryptedPassword string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
