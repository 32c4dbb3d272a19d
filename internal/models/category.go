package models

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Category groups notes for one user and carries the display metadata
// (color, icon) and the manual sort position for the dashboard.
type Category struct {
	DefaultModel
	// The name uniqueness is scoped to live rows so that deleting a
	// category frees its name for re-creation and preset seeding
	UserID    string `json:"userId" gorm:"index;uniqueIndex:category_name_user_id,where:deleted_at IS NULL"`
	Name      string `json:"name" gorm:"uniqueIndex:category_name_user_id"`
	Color     string `json:"color"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sortOrder"`
}

var (
	ErrCategoryNameNotUnique = errors.New("the category name must be unique for the user")
	ErrCategoryNameRequired  = errors.New("the category name must not be empty")
)

// BeforeSave trims whitespace from all strings
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Color = strings.TrimSpace(c.Color)
	c.Icon = strings.TrimSpace(c.Icon)

	return nil
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Category)
	if strings.TrimSpace(toSave.Name) == "" {
		return ErrCategoryNameRequired
	}

	return nil
}

// BeforeUpdate verifies the state of the category before
// committing an update to the database.
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	// Batch updates (e.g. sort order rewrites) pass a column map, there
	// is nothing to verify for those
	toSave, ok := tx.Statement.Dest.(Category)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("Name") && strings.TrimSpace(toSave.Name) == "" {
		return ErrCategoryNameRequired
	}

	return nil
}

// Notes returns all notes assigned to this category.
func (c Category) Notes(db *gorm.DB) ([]Note, error) {
	var notes []Note

	err := db.Where(Note{CategoryID: &c.ID}).Find(&notes).Error
	if err != nil {
		return nil, err
	}

	return notes, nil
}
