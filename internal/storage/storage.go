package storage

import "context"

// KeyValueStore - постоянное хранилище "ключ -> строка", аналог localStorage
//
//go:generate mockgen -source=storage.go -destination=../mocks/mock_storage.go -package=mocks
type KeyValueStore interface {
	// Get возвращает значение по ключу; found == false, если ключа нет
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set полностью заменяет значение по ключу
	Set(ctx context.Context, key string, value string) error
	// Delete удаляет ключ, отсутствие ключа не ошибка
	Delete(ctx context.Context, key string) error
}
