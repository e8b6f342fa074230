package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// IDAllocator produces the next primary key for a table. The historical data
// was created with MAX+1 ids rather than autoincrement, and new rows must keep
// following that scheme; it is safe here because the store is single-writer.
// The strategy is injectable so it can be swapped for an atomic sequence if a
// second writer ever appears.
type IDAllocator interface {
	Next(tx *gorm.DB, table, column string) (int64, error)
}

type maxPlusOne struct{}

// NewMaxPlusOneAllocator returns the default MAX+1 allocation strategy.
func NewMaxPlusOneAllocator() IDAllocator { return maxPlusOne{} }

// Next must run on the same transaction as the insert that consumes the id.
// table and column are always compile-time constants from the repositories.
func (maxPlusOne) Next(tx *gorm.DB, table, column string) (int64, error) {
	var next int64
	err := tx.Raw(fmt.Sprintf("SELECT COALESCE(MAX(%s), 0) + 1 FROM %s", column, table)).Scan(&next).Error
	return next, err
}
