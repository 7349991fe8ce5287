package repo

import (
	"FamilyVault/internal/model"
	"context"

	"gorm.io/gorm"
)

// VaultRepository определяет контракт доступа к VaultItem для слоя сервиса.
// Update и Delete выполняются одним выражением с фильтром по user_id:
// число затронутых строк и есть ответ на вопрос "запись ещё наша и жива".
type VaultRepository interface {
	// Create вставляет новую запись хранилища.
	Create(ctx context.Context, item *model.VaultItem) error

	// ListByUser возвращает записи пользователя в стабильном порядке
	// (по времени создания, затем по id).
	ListByUser(ctx context.Context, userID int64) ([]model.VaultItem, error)

	// GetByID возвращает запись по id без фильтра по владельцу
	// (проверка владельца — дело сервиса) или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (*model.VaultItem, error)

	// Update обновляет поля записи, принадлежащей userID.
	// Возвращает число затронутых строк: 0 — запись исчезла или чужая.
	Update(ctx context.Context, userID int64, id string, updates map[string]any) (int64, error)

	// Delete удаляет запись, принадлежащую userID.
	// Возвращает число затронутых строк.
	Delete(ctx context.Context, userID int64, id string) (int64, error)
}

type vaultRepo struct {
	db *gorm.DB
}

// NewVaultRepository создаёт реализацию репозитория для VaultItem.
func NewVaultRepository(db *gorm.DB) VaultRepository {
	return &vaultRepo{db: db}
}

func (r *vaultRepo) Create(ctx context.Context, item *model.VaultItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *vaultRepo) ListByUser(ctx context.Context, userID int64) ([]model.VaultItem, error) {
	var items []model.VaultItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at, id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *vaultRepo) GetByID(ctx context.Context, id string) (*model.VaultItem, error) {
	var it model.VaultItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&it).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *vaultRepo) Update(ctx context.Context, userID int64, id string, updates map[string]any) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.VaultItem{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (r *vaultRepo) Delete(ctx context.Context, userID int64, id string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.VaultItem{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
