package v1

import (
	"errors"
	"net/http"
	"os"

	"github.com/notekeeper/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no note matching your query"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Category management can be disabled as a product decision, leaving the
// fixed preset catalog as the only set of categories.
var (
	errCategoriesPresetsOnly    = errors.New("categories are presets only")
	errCategoryEditingDisabled  = errors.New("category editing is disabled (presets only)")
	errCategoryDeletionDisabled = errors.New("category deletion is disabled (presets only)")
	errCategoryReorderDisabled  = errors.New("category reorder is disabled (presets only)")
	errCategoryInitDisabled     = errors.New("categories are presets only, initialization is disabled")
)

// presetsOnly reports whether category management is disabled.
func presetsOnly() bool {
	return os.Getenv("PRESETS_ONLY") == "true"
}
