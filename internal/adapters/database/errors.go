package database

import (
	"errors"
	"fmt"

	"yatube/internal/core/apperr"

	"gorm.io/gorm"
)

// notFoundOr turns gorm's missing-row error into a NotFound app error.
func notFoundOr(err error, resource string, id interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NewNotFoundError(resource, id)
	}
	return fmt.Errorf("loading %s %v: %w", resource, id, err)
}
