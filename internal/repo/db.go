package repo

import (
	"FamilyVault/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB открывает подключение к Postgres и прогоняет миграции моделей.
// TranslateError включён, чтобы нарушение уникальности email приходило
// как gorm.ErrDuplicatedKey, а не как сырая ошибка драйвера.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}, &model.VaultItem{}); err != nil {
		return nil, err
	}
	return db, nil
}
