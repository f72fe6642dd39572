package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// WithTransaction executes fn within a transaction while propagating context.
// The tx passed to fn already carries ctx. Returning an error rolls back.
//
// Usage:
//
//	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    if err := tx.Save(entity).Error; err != nil {
//	        return err // rollback
//	    }
//	    return nil // commit
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	if fn == nil {
		return errors.New("database: transaction function is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return db.WithContext(ctx).Transaction(fn)
}
