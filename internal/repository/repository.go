package repository

import "gorm.io/gorm"

// pick returns tx when the caller runs inside a transaction, otherwise the
// repository's own handle. Every write method takes an optional tx so the
// service layer decides whether a multi-table write is atomic.
func pick(db, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}

// affected turns a zero-row UPDATE/DELETE into gorm.ErrRecordNotFound.
func affected(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
