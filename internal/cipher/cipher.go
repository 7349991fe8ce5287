package cipher

import (
	"crypto/aes"
	gocipher "crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

// keyLen — длина ключа для AES‑256 (в байтах).
const keyLen = 32

// ErrInvalidToken возвращается Decrypt на любой некорректный токен:
// битый base64, слишком короткие данные, вскрытие не прошло
// (подмена, другой ключ).
var ErrInvalidToken = errors.New("invalid cipher token")

// Service шифрует и расшифровывает строки единым ключом процесса.
// Ключ после создания не меняется, сервис безопасен для конкурентного
// использования.
type Service struct {
	aead gocipher.AEAD
}

// New создаёт сервис из ключа. Требуется ровно 32 байта (AES-256).
func New(key []byte) (*Service, error) {
	if len(key) != keyLen {
		return nil, errors.New("cipher key must be 32 bytes")
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := gocipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Service{aead: aead}, nil
}

// NewFromBase64 создаёт сервис из ключа в base64 (std-алфавит).
// Используется при старте для значения CIPHER_KEY.
func NewFromBase64(encoded string) (*Service, error) {
	if encoded == "" {
		return nil, errors.New("cipher key is not set")
	}
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.New("cipher key is not valid base64")
	}
	return New(key)
}

// Encrypt шифрует строку AES‑GCM со свежим случайным nonce.
// Токен = base64url(nonce || шифртекст с тегом); два вызова на одном
// и том же тексте дают разные токены.
func (s *Service) Encrypt(plain string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	out := s.aead.Seal(nonce, nonce, []byte(plain), nil)
	return base64.RawURLEncoding.EncodeToString(out), nil
}

// Decrypt расшифровывает токен, полученный из Encrypt.
func (s *Service) Decrypt(token string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", ErrInvalidToken
	}
	ns := s.aead.NonceSize()
	if len(raw) < ns+s.aead.Overhead() {
		return "", ErrInvalidToken
	}
	plain, err := s.aead.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil {
		return "", ErrInvalidToken
	}
	return string(plain), nil
}
