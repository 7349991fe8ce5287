package service

import "errors"

// Ошибки бизнес-логики. Хендлеры различают их через errors.Is
// и переводят в HTTP-статусы; внутренние ошибки БД наружу не выходят.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("vault item not found")
	ErrUnauthorized       = errors.New("vault item belongs to another user")
)
