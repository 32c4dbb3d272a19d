package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Note is a short text note belonging to one user. The category reference
// is optional; deleting the category keeps the note and nulls the reference.
type Note struct {
	DefaultModel
	UserID     string     `json:"userId" gorm:"index"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	CategoryID *uuid.UUID `json:"categoryId" gorm:"default:null"`
	Category   *Category  `json:"category" gorm:"constraint:OnDelete:SET NULL"`
}

var ErrNoteTitleRequired = errors.New("the note title must not be empty")

// BeforeSave trims whitespace from all strings
func (n *Note) BeforeSave(_ *gorm.DB) error {
	n.Title = strings.TrimSpace(n.Title)

	return nil
}

func (n *Note) BeforeCreate(tx *gorm.DB) error {
	_ = n.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Note)
	if strings.TrimSpace(toSave.Title) == "" {
		return ErrNoteTitleRequired
	}

	return n.checkIntegrity(tx, toSave.UserID, toSave.CategoryID)
}

// BeforeUpdate verifies the state of the note before
// committing an update to the database.
func (n *Note) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(Note)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("Title") && strings.TrimSpace(toSave.Title) == "" {
		return ErrNoteTitleRequired
	}

	if tx.Statement.Changed("CategoryID") {
		return n.checkIntegrity(tx, n.UserID, toSave.CategoryID)
	}

	return nil
}

// checkIntegrity verifies that the referenced category exists and belongs
// to the same user as the note.
func (n *Note) checkIntegrity(tx *gorm.DB, userID string, categoryID *uuid.UUID) error {
	if categoryID == nil {
		return nil
	}

	return tx.First(&Category{}, "id = ? AND user_id = ?", categoryID, userID).Error
}
