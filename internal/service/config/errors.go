package config

import "errors"

var (
	// ErrInvalidConfig возвращается при нарушении инвариантов конфигурации
	ErrInvalidConfig = errors.New("invalid scheduling config")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("config service: internal error")
)
