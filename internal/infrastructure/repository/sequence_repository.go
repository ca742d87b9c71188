package repository

import (
	"context"
	"errors"

	"github.com/mobishop/pos-api/internal/domain/entity"
	domainRepo "github.com/mobishop/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new invoice sequence repository
func NewSequenceRepository(db *gorm.DB) domainRepo.SequenceRepository {
	return &sequenceRepository{db: db}
}

// Next atomically increments the named sequence and returns the new value
func (r *sequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq := entity.InvoiceSequence{Name: name}
		if err := tx.Where(entity.InvoiceSequence{Name: name}).
			FirstOrCreate(&seq).Error; err != nil {
			return err
		}
		if err := tx.Model(&entity.InvoiceSequence{}).
			Where("name = ?", name).
			Update("value", gorm.Expr("value + 1")).Error; err != nil {
			return err
		}
		if err := tx.First(&seq, "name = ?", name).Error; err != nil {
			return err
		}
		value = seq.Value
		return nil
	})
	return value, err
}

// Peek returns the value Next would produce, without incrementing
func (r *sequenceRepository) Peek(ctx context.Context, name string) (int64, error) {
	var seq entity.InvoiceSequence
	err := r.db.WithContext(ctx).First(&seq, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return seq.Value + 1, nil
}
