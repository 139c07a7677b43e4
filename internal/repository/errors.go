package repository

import (
	"errors"
	"strings"

	"survivalskills/internal/models"

	"gorm.io/gorm"
)

// isUniqueViolation reports whether err is a unique-constraint failure.
// TranslateError maps the common drivers to gorm.ErrDuplicatedKey; the
// string checks cover driver versions that predate the translation.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// translateError maps gorm errors onto the application error taxonomy.
func translateError(op, resource, key string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(resource, key)
	}
	if isUniqueViolation(err) {
		return models.NewDuplicateEmailError()
	}
	return models.NewStorageError(op, err)
}
