package handlers_test

import (
	"FamilyVault/internal/cipher"
	"FamilyVault/internal/config"
	"FamilyVault/internal/handlers"
	"FamilyVault/internal/middleware"
	"FamilyVault/internal/model"
	"FamilyVault/internal/repo"
	"FamilyVault/internal/service"
	"context"
	"crypto/rand"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// Minimal mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockVaultRepo struct{ mock.Mock }

func (m *mockVaultRepo) Create(ctx context.Context, item *model.VaultItem) error {
	return m.Called(ctx, item).Error(0)
}
func (m *mockVaultRepo) ListByUser(ctx context.Context, userID int64) ([]model.VaultItem, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.VaultItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockVaultRepo) GetByID(ctx context.Context, id string) (*model.VaultItem, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.VaultItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockVaultRepo) Update(ctx context.Context, userID int64, id string, updates map[string]any) (int64, error) {
	args := m.Called(ctx, userID, id, updates)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockVaultRepo) Delete(ctx context.Context, userID int64, id string) (int64, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.VaultRepository = (*mockVaultRepo)(nil)

// --- Helpers ---

func newTestCipher(t *testing.T) *cipher.Service {
	t.Helper()
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatal(err)
	}
	c, err := cipher.New(key)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// newTestRouter собирает роутер поверх моков репозиториев.
func newTestRouter(t *testing.T, ur repo.UserRepository, vr repo.VaultRepository, c *cipher.Service) http.Handler {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret"}
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(ur)
	vaultSvc := service.NewVaultService(vr, c, logger)

	h := handlers.NewHandler(userSvc, vaultSvc, logger, cfg)
	return h.Router
}

// newSQLiteRouter собирает роутер поверх настоящих репозиториев
// на in-memory SQLite — для сквозных тестов.
func newSQLiteRouter(t *testing.T, c *cipher.Service) (http.Handler, *gorm.DB) {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.VaultItem{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}

	cfg := &config.Config{AuthSecret: "test-secret"}
	logger := zap.NewNop().Sugar()
	userSvc := service.NewUserService(repo.NewUserRepository(db))
	vaultSvc := service.NewVaultService(repo.NewVaultRepository(db), c, logger)
	h := handlers.NewHandler(userSvc, vaultSvc, logger, cfg)
	return h.Router, db
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
