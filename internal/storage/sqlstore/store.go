// Package sqlstore keeps documents in the stored_values table through gorm.
package sqlstore

import (
	"context"
	"fmt"

	"github.com/minglemoody/internal/db"
	"github.com/minglemoody/internal/storage"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store implements storage.Backend on top of a gorm connection.
type Store struct {
	db *gorm.DB
}

// New wraps gdb. The stored_values table must already be migrated.
func New(gdb *gorm.DB) *Store {
	return &Store{db: gdb}
}

// Get 读取键对应的值，不存在时返回 storage.ErrKeyNotFound。
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var record db.StoredValue
	result := s.db.WithContext(ctx).Where("key = ?", key).Limit(1).Find(&record)
	if result.Error != nil {
		return nil, fmt.Errorf("load %s: %w", key, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, storage.ErrKeyNotFound
	}
	return []byte(record.Value), nil
}

// Set 以 upsert 方式整体覆盖键对应的值。
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	record := db.StoredValue{Key: key, Value: string(value)}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      string(value),
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&record).Error; err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// Delete 删除键；键不存在时不报错。
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&db.StoredValue{}).Error; err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Ping checks the underlying connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close is a no-op: the connection is owned by whoever opened it.
func (s *Store) Close() error {
	return nil
}
