package v1

import (
	"github.com/google/uuid"
	"github.com/notekeeper/backend/internal/models"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name      string `json:"name" example:"Learning" default:""` // Name of the category
	Color     string `json:"color" example:"#6366f1" default:""` // Display color code
	Icon      string `json:"icon" example:"Book" default:""`     // Display icon identifier
	SortOrder int    `json:"sortOrder" example:"0" default:"0"`  // Position for manual ordering
}

func (editable CategoryEditable) model(userID string) models.Category {
	return models.Category{
		UserID:    userID,
		Name:      editable.Name,
		Color:     editable.Color,
		Icon:      editable.Icon,
		SortOrder: editable.SortOrder,
	}
}

// ReorderEditable is the full, ordered set of the caller's category IDs.
type ReorderEditable struct {
	Order []uuid.UUID `json:"order" binding:"required"` // Category IDs in their new order
}

type InitResponse struct {
	Created int `json:"created" example:"10"` // Number of preset categories that were created
}

type OkResponse struct {
	Ok bool `json:"ok" example:"true"`
}
