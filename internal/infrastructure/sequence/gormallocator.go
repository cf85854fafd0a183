// Package sequence provides listing number allocators.
package sequence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/orris-inc/estatehub/internal/domain/listing"
	"github.com/orris-inc/estatehub/internal/infrastructure/persistence/models"
	"github.com/orris-inc/estatehub/internal/shared/biztime"
	"github.com/orris-inc/estatehub/internal/shared/db"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

// ListingNumberSequence names the listing_sequences row used for listing numbers.
const ListingNumberSequence = "listing_number"

// maxInsertRaces bounds how often Next retries after losing the first-row insert.
const maxInsertRaces = 3

// GormAllocator advances a single listing_sequences row with one atomic UPDATE and
// reads the result back inside the same transaction. The row lock taken by the
// UPDATE serializes concurrent callers.
type GormAllocator struct {
	db     *gorm.DB
	name   string
	floor  int64
	logger logger.Interface
}

var _ listing.NumberAllocator = (*GormAllocator)(nil)

func NewGormAllocator(db *gorm.DB, name string, floor int64, logger logger.Interface) *GormAllocator {
	if floor < listing.DefaultNumberFloor {
		floor = listing.DefaultNumberFloor
	}
	return &GormAllocator{
		db:     db,
		name:   name,
		floor:  floor,
		logger: logger,
	}
}

// Next returns the next listing number. It fails with listing.ErrAllocatorExhausted
// once the counter has reached math.MaxInt64.
func (a *GormAllocator) Next(ctx context.Context) (int64, error) {
	var value int64
	err := db.GetTxFromContext(ctx, a.db).Transaction(func(tx *gorm.DB) error {
		for attempt := 0; attempt < maxInsertRaces; attempt++ {
			advanced, err := a.advance(tx)
			if err != nil {
				return err
			}
			if advanced {
				return tx.Model(&models.ListingSequenceModel{}).
					Select("last_value").
					Where("name = ?", a.name).
					Row().
					Scan(&value)
			}

			var current models.ListingSequenceModel
			err = tx.Where("name = ?", a.name).First(&current).Error
			if err == nil {
				if current.LastValue == math.MaxInt64 {
					return listing.ErrAllocatorExhausted
				}
				// the row changed between statements; advance again
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to read sequence %s: %w", a.name, err)
			}

			inserted, err := a.insertFloor(tx)
			if err != nil {
				return err
			}
			if inserted {
				value = a.floor
				return nil
			}
		}
		return fmt.Errorf("sequence %s: contention did not settle after %d attempts", a.name, maxInsertRaces)
	})
	if err != nil {
		if errors.Is(err, listing.ErrAllocatorExhausted) {
			a.logger.Errorw("listing number sequence exhausted", "sequence", a.name)
			return 0, err
		}
		return 0, fmt.Errorf("failed to allocate listing number: %w", err)
	}

	return value, nil
}

// LastIssued returns the highest listing number known to the database, from the
// sequence row or the listings table, or 0 when none was issued.
func (a *GormAllocator) LastIssued(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, a.db).WithContext(ctx)

	var fromSequence, fromListings sql.NullInt64
	if err := tx.Model(&models.ListingSequenceModel{}).
		Select("MAX(last_value)").
		Where("name = ?", a.name).
		Scan(&fromSequence).Error; err != nil {
		return 0, fmt.Errorf("failed to read sequence %s: %w", a.name, err)
	}
	if err := tx.Model(&models.ListingModel{}).
		Select("MAX(listing_number)").
		Scan(&fromListings).Error; err != nil {
		return 0, fmt.Errorf("failed to read highest listing number: %w", err)
	}
	return max(fromSequence.Int64, fromListings.Int64), nil
}

func (a *GormAllocator) advance(tx *gorm.DB) (bool, error) {
	result := tx.Exec(
		"UPDATE listing_sequences SET last_value = CASE WHEN last_value < ? THEN ? ELSE last_value + 1 END, updated_at = ? WHERE name = ? AND last_value < ?",
		a.floor, a.floor, biztime.NowUTC(), a.name, int64(math.MaxInt64),
	)
	if result.Error != nil {
		return false, fmt.Errorf("failed to advance sequence %s: %w", a.name, result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (a *GormAllocator) insertFloor(tx *gorm.DB) (bool, error) {
	row := &models.ListingSequenceModel{
		Name:      a.name,
		LastValue: a.floor,
		UpdatedAt: biztime.NowUTC(),
	}
	result := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(row)
	if result.Error != nil {
		return false, fmt.Errorf("failed to initialize sequence %s: %w", a.name, result.Error)
	}
	return result.RowsAffected == 1, nil
}
