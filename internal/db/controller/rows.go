package controller

import (
	"errors"

	"gorm.io/gorm"
)

// Status is implemented by the typed model states.
type Status interface {
	~string
	Valid() bool
}

// Get loads one row by primary key.
func Get[T any](db *gorm.DB, id uint64) (*T, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if id == 0 {
		return nil, ErrInvalidID
	}

	var row T

	if err := db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &row, nil
}

// Update sets columns of the row whose pk column equals id.
// It checks existence first so an unknown id yields ErrNotFound and nothing is written.
func Update[T any](db *gorm.DB, pk string, id uint64, values map[string]any) error {
	if db == nil {
		return ErrDBNil
	}

	if id == 0 {
		return ErrInvalidID
	}

	var count int64

	if err := db.Model(new(T)).Where(pk+" = ?", id).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return ErrNotFound
	}

	return db.Model(new(T)).Where(pk+" = ?", id).Updates(values).Error
}

// Find runs q and returns every row, never nil.
func Find[T any](q *gorm.DB) ([]T, error) {
	rows := make([]T, 0)

	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

type statusCount struct {
	Status string
	N      int64
}

// CountByStatus groups the rows selected by q by their status column.
// States without rows are reported as zero.
func CountByStatus[S Status](q *gorm.DB, all []S) (map[S]int64, error) {
	var rows []statusCount

	if err := q.Select("status, COUNT(*) AS n").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[S]int64, len(all))
	for _, s := range all {
		out[s] = 0
	}

	for _, r := range rows {
		out[S(r.Status)] = r.N
	}

	return out, nil
}
