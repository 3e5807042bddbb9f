package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"freshcart/internal/storage"
	types "freshcart/internal/types/cart"
	myErr "freshcart/internal/types/errors"
)

// DefaultKey - ключ, под которым корзина лежит в хранилище
const DefaultKey = "cart"

// Bridge синхронизирует список позиций с KeyValueStore
type Bridge struct {
	Store  storage.KeyValueStore
	Logger *zap.SugaredLogger
	key    string
}

func NewBridge(store storage.KeyValueStore, key string, logger *zap.SugaredLogger) *Bridge {
	if key == "" {
		key = DefaultKey
	}

	return &Bridge{
		Store:  store,
		Logger: logger,
		key:    key,
	}
}

func (b *Bridge) Key() string {
	return b.key
}

// Load читает сохранённую корзину. Отсутствие ключа - пустая корзина.
// Битое значение возвращается как ErrCorruptData, решение о fallback за вызывающим.
func (b *Bridge) Load(ctx context.Context) ([]types.CartItem, error) {
	raw, found, err := b.Store.Get(ctx, b.key)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", b.key, err)
	}
	if !found {
		return []types.CartItem{}, nil
	}

	items, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", b.key, err)
	}

	return items, nil
}

// Save полностью перезаписывает значение под ключом
func (b *Bridge) Save(ctx context.Context, items []types.CartItem) error {
	raw, err := Encode(items)
	if err != nil {
		return err
	}

	if err := b.Store.Set(ctx, b.key, raw); err != nil {
		return fmt.Errorf("save %q: %w", b.key, err)
	}

	b.Logger.Debugw("cart saved",
		"key", b.key,
		"items", len(items),
	)

	return nil
}

// Encode сериализует список в JSON-массив; nil пишется как []
func Encode(items []types.CartItem) (string, error) {
	if items == nil {
		items = []types.CartItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("json.Marshal: %w", err)
	}

	return string(data), nil
}

// Discard удаляет сохранённое значение целиком
func (b *Bridge) Discard(ctx context.Context) error {
	if err := b.Store.Delete(ctx, b.key); err != nil {
		return fmt.Errorf("discard %q: %w", b.key, err)
	}

	return nil
}

// Decode разбирает JSON-массив позиций.
// Значение могли записать в обход Store, поэтому повторы id сливаются,
// а количество меньше 1 считается за 1.
func Decode(raw string) ([]types.CartItem, error) {
	var stored []types.CartItem
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("%w: %v", myErr.ErrCorruptData, err)
	}

	items := []types.CartItem{}
	for _, item := range stored {
		items = Reduce(items, Action{Kind: ActionAdd, Item: item})
	}

	return items, nil
}
