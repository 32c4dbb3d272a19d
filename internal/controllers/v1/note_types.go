package v1

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/notekeeper/backend/internal/models"
	ez_uuid "github.com/notekeeper/backend/internal/uuid"
	"gorm.io/gorm"
)

// NoteEditable represents all user configurable parameters
type NoteEditable struct {
	Title      string     `json:"title" example:"Shopping list" default:""` // Title of the note, must not be empty
	Content    string     `json:"content" example:"Milk, eggs" default:""`  // Free text content
	CategoryID *uuid.UUID `json:"categoryId"`                               // ID of the category the note belongs to, null for none
}

func (editable NoteEditable) model(userID string) models.Note {
	note := models.Note{
		UserID:  userID,
		Title:   editable.Title,
		Content: editable.Content,
	}

	if editable.CategoryID != nil && *editable.CategoryID != uuid.Nil {
		id := *editable.CategoryID
		note.CategoryID = &id
	}

	return note
}

type NoteQueryFilter struct {
	CategoryID  ez_uuid.UUID `form:"category"`                        // By ID of one category
	Search      string       `form:"q" filterField:"false"`           // Text to search for in the searchIn fields
	CategoryIDs string       `form:"categoryIds" filterField:"false"` // Restrict to this comma-separated list of category IDs
	Categories  string       `form:"categories" filterField:"false"`  // Restrict to this comma-separated list of category names
	SearchIn    string       `form:"searchIn" filterField:"false"`    // Comma-separated fields to search in: title, content, category. Defaults to all.
}

func (f NoteQueryFilter) model() models.Note {
	if f.CategoryID == ez_uuid.Nil {
		return models.Note{}
	}

	id := f.CategoryID.UUID
	return models.Note{CategoryID: &id}
}

// splitCSV splits a comma-separated parameter, dropping empty entries.
func splitCSV(csv string) []string {
	var values []string
	for _, raw := range strings.Split(csv, ",") {
		if value := strings.TrimSpace(raw); value != "" {
			values = append(values, value)
		}
	}

	return values
}

// searchFields parses the searchIn parameter into the set of fields the
// text search applies to. An unset or empty parameter means all fields.
// Unknown field names are ignored, they are not an error. "detail" is
// accepted as an alias for "content" since older clients send it.
func searchFields(csv string) map[string]bool {
	if strings.TrimSpace(csv) == "" {
		return map[string]bool{"title": true, "content": true, "category": true}
	}

	fields := make(map[string]bool)
	for _, raw := range strings.Split(csv, ",") {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "title":
			fields["title"] = true
		case "content", "detail":
			fields["content"] = true
		case "category":
			fields["category"] = true
		}
	}

	return fields
}

// searchFilter builds the disjunction of case-insensitive substring
// predicates for the text search, one clause per searched field. It returns
// nil when no searchable field is requested, in which case no text filter
// is applied at all.
func searchFilter(db *gorm.DB, search string, fields map[string]bool) *gorm.DB {
	like := strings.ToLower(fmt.Sprintf("%%%s%%", search))

	var condition *gorm.DB
	add := func(clause *gorm.DB) {
		if condition == nil {
			condition = clause
			return
		}

		condition = condition.Or(clause)
	}

	if fields["title"] {
		add(db.Where("LOWER(notes.title) LIKE ?", like))
	}

	if fields["content"] {
		add(db.Where("LOWER(notes.content) LIKE ?", like))
	}

	if fields["category"] {
		add(db.Where("LOWER(categories.name) LIKE ?", like))
	}

	return condition
}
