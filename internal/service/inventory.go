package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/barstock/backend/internal/model"
)

// InventoryKey is the fixed storage key the inventory has always lived
// under; changing it strands existing data.
const InventoryKey = "cocktail-inventory"

// ErrInventoryUnavailable is returned when the backing store cannot be
// reached for a write. Reads degrade to an empty inventory instead.
var ErrInventoryUnavailable = errors.New("inventory storage unavailable")

// KV is the minimal key-value surface the inventory needs from its durable
// store.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// RedisKV adapts a redis client to the KV interface.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV creates a RedisKV instance.
func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

// Get returns the value and whether the key exists.
func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores the value without expiry; the inventory is durable state, not
// a cache.
func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

// Delete removes the key.
func (r *RedisKV) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// InventoryService manages the user's owned-ingredient list: a JSON array
// of items under a single fixed key.
type InventoryService struct {
	kv     KV
	logger *zap.Logger
}

// NewInventoryService creates an InventoryService instance.
func NewInventoryService(kv KV, logger *zap.Logger) *InventoryService {
	return &InventoryService{kv: kv, logger: logger}
}

// List returns the current inventory. Persisted entries from older app
// versions are repaired in place: blank names drop the entry, a missing
// NameEn falls back to the display name, unknown categories become "base"
// and missing IDs get a legacy- identity. When anything was repaired the
// cleaned array is written back once.
func (s *InventoryService) List(ctx context.Context) ([]model.InventoryItem, error) {
	raw, ok, err := s.kv.Get(ctx, InventoryKey)
	if err != nil {
		s.logger.Warn("inventory read failed", zap.Error(err))
		return []model.InventoryItem{}, nil
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []model.InventoryItem{}, nil
	}

	var persisted []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		s.logger.Warn("inventory payload malformed, resetting", zap.Error(err))
		return []model.InventoryItem{}, nil
	}

	items := make([]model.InventoryItem, 0, len(persisted))
	repaired := false
	for _, entry := range persisted {
		var item model.InventoryItem
		if err := json.Unmarshal(entry, &item); err != nil {
			repaired = true
			continue
		}
		cleaned, ok := normalizeItem(item)
		if !ok {
			repaired = true
			continue
		}
		if cleaned != item {
			repaired = true
		}
		items = append(items, cleaned)
	}

	if repaired {
		if err := s.save(ctx, items); err != nil {
			s.logger.Warn("inventory repair write failed", zap.Error(err))
		}
	}
	return items, nil
}

// Add appends an item unless one with the same NameEn already exists
// (case-insensitive); re-adding an owned ingredient is a no-op that returns
// the existing item. A blank ID is assigned a fresh one.
func (s *InventoryService) Add(ctx context.Context, item model.InventoryItem) (model.InventoryItem, error) {
	cleaned, ok := normalizeItem(item)
	if !ok {
		return model.InventoryItem{}, errors.New("inventory item needs a name")
	}
	if strings.TrimSpace(item.ID) == "" {
		cleaned.ID = uuid.NewString()
	}

	items, err := s.List(ctx)
	if err != nil {
		return model.InventoryItem{}, err
	}
	for _, existing := range items {
		if strings.EqualFold(existing.NameEn, cleaned.NameEn) {
			return existing, nil
		}
	}

	items = append(items, cleaned)
	if err := s.save(ctx, items); err != nil {
		return model.InventoryItem{}, ErrInventoryUnavailable
	}
	return cleaned, nil
}

// Remove deletes the item with the given ID. Unknown IDs are a no-op.
func (s *InventoryService) Remove(ctx context.Context, id string) error {
	items, err := s.List(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if err := s.save(ctx, kept); err != nil {
		return ErrInventoryUnavailable
	}
	return nil
}

// Clear wipes the whole inventory.
func (s *InventoryService) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, InventoryKey); err != nil {
		return ErrInventoryUnavailable
	}
	return nil
}

// OwnedNames returns the English matcher names of the inventory, for
// feeding straight into the availability service.
func (s *InventoryService) OwnedNames(ctx context.Context) ([]string, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.NameEn)
	}
	return names, nil
}

func (s *InventoryService) save(ctx context.Context, items []model.InventoryItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, InventoryKey, string(payload))
}

// normalizeItem applies the legacy-entry repair rules. Returns false when
// the entry is unusable.
func normalizeItem(item model.InventoryItem) (model.InventoryItem, bool) {
	item.Name = strings.TrimSpace(item.Name)
	item.NameEn = strings.TrimSpace(item.NameEn)
	if item.NameEn == "" {
		item.NameEn = item.Name
	}
	if item.Name == "" {
		item.Name = item.NameEn
	}
	if item.Name == "" || item.NameEn == "" {
		return model.InventoryItem{}, false
	}
	if !model.ValidCategory(item.Category) {
		item.Category = model.CategoryBase
	}
	if strings.TrimSpace(item.ID) == "" {
		item.ID = "legacy-" + uuid.NewString()
	}
	return item, true
}
