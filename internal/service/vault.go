package service

import (
	"FamilyVault/internal/cipher"
	"FamilyVault/internal/model"
	"FamilyVault/internal/repo"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// VaultService инкапсулирует работу с записями хранилища.
// Каждая операция получает id вызывающего пользователя явно;
// проверка владельца выполняется до любой записи в БД.
type VaultService struct {
	repo   repo.VaultRepository
	cipher *cipher.Service
	logger *zap.SugaredLogger
}

func NewVaultService(r repo.VaultRepository, c *cipher.Service, logger *zap.SugaredLogger) *VaultService {
	return &VaultService{repo: r, cipher: c, logger: logger}
}

// DecryptedItem — запись хранилища с расшифрованным паролем для выдачи.
// Если расшифровка не удалась, Password пуст и DecryptFailed = true.
type DecryptedItem struct {
	ID            string
	SiteName      string
	Username      string
	Password      string
	DecryptFailed bool
	UpdatedAt     time.Time
}

// List возвращает все записи пользователя с расшифрованными паролями.
// Битая запись не валит весь список: она помечается DecryptFailed,
// остальные возвращаются как обычно.
func (s *VaultService) List(ctx context.Context, userID int64) ([]DecryptedItem, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]DecryptedItem, 0, len(items))
	for _, it := range items {
		d := DecryptedItem{
			ID:        it.ID,
			SiteName:  it.SiteName,
			Username:  it.Username,
			UpdatedAt: it.UpdatedAt,
		}
		plain, derr := s.cipher.Decrypt(it.EncryptedPassword)
		if derr != nil {
			s.logger.Warnw("vault: failed to decrypt stored password", "item_id", it.ID, "user_id", userID, "error", derr)
			d.DecryptFailed = true
		} else {
			d.Password = plain
		}
		out = append(out, d)
	}
	return out, nil
}

// Add шифрует пароль и сохраняет новую запись с владельцем userID.
func (s *VaultService) Add(ctx context.Context, userID int64, site, username, password string) (*model.VaultItem, error) {
	token, err := s.cipher.Encrypt(password)
	if err != nil {
		return nil, err
	}
	item := &model.VaultItem{
		ID:                uuid.NewString(),
		UserID:            userID,
		SiteName:          site,
		Username:          username,
		EncryptedPassword: token,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Edit перезаписывает поля записи и заново шифрует пароль.
// ErrNotFound — записи нет; ErrUnauthorized — запись чужая.
func (s *VaultService) Edit(ctx context.Context, userID int64, itemID, site, username, password string) (*model.VaultItem, error) {
	if err := s.authorize(ctx, userID, itemID); err != nil {
		return nil, err
	}

	token, err := s.cipher.Encrypt(password)
	if err != nil {
		return nil, err
	}
	affected, err := s.repo.Update(ctx, userID, itemID, map[string]any{
		"site_name":          site,
		"username":           username,
		"encrypted_password": token,
	})
	if err != nil {
		return nil, err
	}
	// Запись успела исчезнуть между проверкой и UPDATE (конкурентное
	// удаление) — для вызывающего это то же самое, что "нет записи".
	if affected == 0 {
		return nil, ErrNotFound
	}
	return s.repo.GetByID(ctx, itemID)
}

// Delete удаляет запись пользователя.
func (s *VaultService) Delete(ctx context.Context, userID int64, itemID string) error {
	if err := s.authorize(ctx, userID, itemID); err != nil {
		return err
	}
	affected, err := s.repo.Delete(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// authorize проверяет, что запись существует и принадлежит userID.
func (s *VaultService) authorize(ctx context.Context, userID int64, itemID string) error {
	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if item.UserID != userID {
		s.logger.Warnw("vault: access to foreign item denied", "item_id", itemID, "user_id", userID, "owner_id", item.UserID)
		return ErrUnauthorized
	}
	return nil
}
