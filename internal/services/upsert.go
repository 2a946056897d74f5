package services

import (
	"errors"

	"gorm.io/gorm"
)

// findOrCreate looks a row up by its natural key and creates it when
// absent. A create that loses a race to the unique index is treated as
// "someone else already created it": the winner's row is re-fetched.
func findOrCreate[T any](db *gorm.DB, lookup map[string]interface{}, defaults func(*T)) (*T, bool, error) {
	var row T
	err := db.Where(lookup).First(&row).Error
	if err == nil {
		return &row, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	fresh := new(T)
	defaults(fresh)
	if err := db.Create(fresh).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing T
			if ferr := db.Where(lookup).First(&existing).Error; ferr == nil {
				return &existing, false, nil
			}
		}
		return nil, false, err
	}
	return fresh, true, nil
}

// upsertRow is findOrCreate plus a column update on hit. The updates map
// lists exactly the columns the caller may refresh; anything not named
// there (isSelected, textValue) cannot regress through this path.
func upsertRow[T any](db *gorm.DB, lookup map[string]interface{}, defaults func(*T), updates map[string]interface{}) (*T, bool, error) {
	row, created, err := findOrCreate(db, lookup, defaults)
	if err != nil {
		return nil, false, err
	}
	if !created && len(updates) > 0 {
		if err := db.Model(row).Updates(updates).Error; err != nil {
			return nil, false, err
		}
	}
	return row, created, nil
}
