package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/member-registry/internal/model"
	"github.com/changhyeonkim/member-registry/internal/shared/database"
	"gorm.io/gorm"
)

// GormRepository stores members in the member table.
// Ids come from the registry; Create refuses any id that would leave a gap.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db)
}

func (r *GormRepository) FindAll(ctx context.Context) ([]model.Member, error) {
	var members []model.Member
	err := r.db.WithContext(ctx).Order("id ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *GormRepository) FindByID(ctx context.Context, id int) (*model.Member, error) {
	var member model.Member
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errRecordNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *GormRepository) Create(ctx context.Context, member *model.Member) error {
	return database.WithTransaction(ctx, r.db, func(tx *gorm.DB) error {
		n, err := count(ctx, tx)
		if err != nil {
			return err
		}
		if member.ID != n+1 {
			return fmt.Errorf("member id %d out of sequence, next is %d", member.ID, n+1)
		}
		return tx.Create(member).Error
	})
}

func (r *GormRepository) Update(ctx context.Context, member *model.Member) error {
	// map form: gorm skips zero values (is_deleted=false) when updating from a struct
	result := r.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("id = ?", member.ID).
		Updates(map[string]any{
			"name":         member.Name,
			"address":      member.Address,
			"phone_number": member.PhoneNumber,
			"is_deleted":   member.IsDeleted,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errRecordNotFound
	}
	return nil
}

func count(ctx context.Context, db *gorm.DB) (int, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.Member{}).Count(&n).Error
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
