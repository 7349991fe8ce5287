package handlers

import (
	"FamilyVault/internal/middleware"
	"FamilyVault/internal/model"
	"FamilyVault/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// VaultHandler обрабатывает операции с записями хранилища.
type VaultHandler struct {
	VaultService *service.VaultService
	Logger       *zap.SugaredLogger
}

// NewVaultHandler создаёт хендлер vault
func NewVaultHandler(vaultService *service.VaultService, logger *zap.SugaredLogger) *VaultHandler {
	return &VaultHandler{VaultService: vaultService, Logger: logger}
}

type vaultItemRequest struct {
	SiteName string `json:"site_name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// vaultItemDTO — запись в ответе списка: пароль уже расшифрован.
type vaultItemDTO struct {
	ID           string `json:"id"`
	SiteName     string `json:"site_name"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DecryptError bool   `json:"decrypt_error,omitempty"`
	UpdatedAt    string `json:"updated_at"`
}

// storedItemDTO — ответ Add/Edit: без пароля и без токена шифра,
// клиент и так знает, что отправил.
type storedItemDTO struct {
	ID        string `json:"id"`
	SiteName  string `json:"site_name"`
	Username  string `json:"username"`
	UpdatedAt string `json:"updated_at"`
}

func toStoredDTO(it *model.VaultItem) storedItemDTO {
	return storedItemDTO{
		ID:        it.ID,
		SiteName:  it.SiteName,
		Username:  it.Username,
		UpdatedAt: it.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// writeVaultError переводит ошибки сервиса в HTTP-статусы.
// ErrNotFound и ErrUnauthorized дают байт-в-байт одинаковый ответ:
// по ответу нельзя понять, существует ли чужая запись.
func (h *VaultHandler) writeVaultError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrUnauthorized) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	h.Logger.Errorw(op+": service error", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

// List отдаёт все записи пользователя с расшифрованными паролями.
func (h *VaultHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := h.VaultService.List(r.Context(), userID)
	if err != nil {
		h.writeVaultError(w, "List", err)
		return
	}

	resp := make([]vaultItemDTO, 0, len(items))
	for _, it := range items {
		resp = append(resp, vaultItemDTO{
			ID:           it.ID,
			SiteName:     it.SiteName,
			Username:     it.Username,
			Password:     it.Password,
			DecryptError: it.DecryptFailed,
			UpdatedAt:    it.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

// Add сохраняет новую запись.
func (h *VaultHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req vaultItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Add: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.SiteName == "" {
		http.Error(w, "site_name is required", http.StatusBadRequest)
		return
	}

	item, err := h.VaultService.Add(r.Context(), userID, req.SiteName, req.Username, req.Password)
	if err != nil {
		h.writeVaultError(w, "Add", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toStoredDTO(item))
}

// Edit обновляет запись пользователя.
func (h *VaultHandler) Edit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	itemID := chi.URLParam(r, "id")

	var req vaultItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Edit: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.SiteName == "" {
		http.Error(w, "site_name is required", http.StatusBadRequest)
		return
	}

	item, err := h.VaultService.Edit(r.Context(), userID, itemID, req.SiteName, req.Username, req.Password)
	if err != nil {
		h.writeVaultError(w, "Edit", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(toStoredDTO(item))
}

// Delete удаляет запись пользователя.
func (h *VaultHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	itemID := chi.URLParam(r, "id")

	if err := h.VaultService.Delete(r.Context(), userID, itemID); err != nil {
		h.writeVaultError(w, "Delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
