package v1_test

import (
	"net/http"
	"net/url"

	"github.com/google/uuid"
	v1 "github.com/notekeeper/backend/internal/controllers/v1"
	"github.com/notekeeper/backend/internal/models"
	"github.com/notekeeper/backend/test"
)

func (suite *TestSuiteStandard) TestNotesEmptyList() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/notes", nil, test.AuthHeader(suite.T(), "user-1"))

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq("[]", recorder.Body.String())
}

func (suite *TestSuiteStandard) TestNotesUnauthorized() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/notes", nil)

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestNoteCreate() {
	category := suite.createTestCategory(models.Category{UserID: "user-1", Name: "Work"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/notes", v1.NoteEditable{
		Title:      "Standup notes",
		Content:    "Discuss the deployment",
		CategoryID: &category.ID,
	}, test.AuthHeader(suite.T(), "user-1"))

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var note models.Note
	test.DecodeResponse(suite.T(), &recorder, &note)
	suite.Assert().Equal("Standup notes", note.Title)
	suite.Assert().Equal("Discuss the deployment", note.Content)
	suite.Require().NotNil(note.CategoryID)
	suite.Assert().Equal(category.ID, *note.CategoryID)
}

func (suite *TestSuiteStandard) TestNoteCreateWithoutCategory() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/notes", v1.NoteEditable{
		Title: "Scratchpad",
	}, test.AuthHeader(suite.T(), "user-1"))

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var note models.Note
	test.DecodeResponse(suite.T(), &recorder, &note)
	suite.Assert().Nil(note.CategoryID)
}

func (suite *TestSuiteStandard) TestNoteCreateEmptyTitle() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/notes", v1.NoteEditable{
		Title:   "   ",
		Content: "Content without a title",
	}, test.AuthHeader(suite.T(), "user-1"))

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

// A category of another user cannot be referenced, the note creation
// reports it as not found.
func (suite *TestSuiteStandard) TestNoteCreateForeignCategory() {
	category := suite.createTestCategory(models.Category{UserID: "user-2", Name: "Work"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/notes", v1.NoteEditable{
		Title:      "Standup notes",
		CategoryID: &category.ID,
	}, test.AuthHeader(suite.T(), "user-1"))

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestNoteCreateNonexistentCategory() {
	id := uuid.New()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/notes", v1.NoteEditable{
		Title:      "Standup notes",
		CategoryID: &id,
	}, test.AuthHeader(suite.T(), "user-1"))

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestNotesListScopedToUser() {
	_ = suite.createTestNote(models.Note{UserID: "user-1", Title: "Mine"})
	_ = suite.createTestNote(models.Note{UserID: "user-2", Title: "Theirs"})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/notes", nil, test.AuthHeader(suite.T(), "user-1"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var notes []models.Note
	test.DecodeResponse(suite.T(), &recorder, &notes)
	suite.Require().Len(notes, 1)
	suite.Assert().Equal("Mine", notes[0].Title)
}

func (suite *TestSuiteStandard) TestNotesListIncludesCategory() {
	category := suite.createTestCategory(models.Category{UserID: "user-1", Name: "Work"})
	_ = suite.createTestNote(models.Note{UserID: "user-1", Title: "Standup notes", CategoryID: &category.ID})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/notes", nil, test.AuthHeader(suite.T(), "user-1"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var notes []models.Note
	test.DecodeResponse(suite.T(), &recorder, &notes)
	suite.Require().Len(notes, 1)
	suite.Require().NotNil(notes[0].Category)
	suite.Assert().Equal("Work", notes[0].Category.Name)
}

func (suite *TestSuiteStandard) TestNotesSearch() {
	work := suite.createTestCategory(models.Category{UserID: "user-1", Name: "Work"})
	travel := suite.createTestCategory(models.Category{UserID: "user-1", Name: "Travel"})

	_ = suite.createTestNote(models.Note{UserID: "user-1", Title: "Groceries", Content: "Milk, eggs", CategoryID: nil})
	_ = suite.createTestNote(models.Note{UserID: "user-1", Title: "Standup notes", Content: "Discuss groceries budget", CategoryID: &work.ID})
	_ = suite.createTestNote(models.Note{UserID: "user-1", Title: "Packing list", Content: "Passport", CategoryID: &travel.ID})

	tests := []struct {
		name   string
		query  url.Values
		titles []string
	}{
		{
			"no filter returns everything",
			url.Values{},
			[]string{"Groceries", "Standup notes", "Packing list"},
		},
		{
			"search matches all fields by default",
			url.Values{"q": {"groceries"}},
			[]string{"Groceries", "Standup notes"},
		},
		{
			"search is case insensitive",
			url.Values{"q": {"GROCERIES"}},
			[]string{"Groceries", "Standup notes"},
		},
		{
			"search in title only",
			url.Values{"q": {"groceries"}, "searchIn": {"title"}},
			[]string{"Groceries"},
		},
		{
			"search in content only",
			url.Values{"q": {"groceries"}, "searchIn": {"content"}},
			[]string{"Standup notes"},
		},
		{
			"detail is an alias for content",
			url.Values{"q": {"groceries"}, "searchIn": {"detail"}},
			[]string{"Standup notes"},
		},
		{
			"search in category name",
			url.Values{"q": {"trav"}, "searchIn": {"category"}},
			[]string{"Packing list"},
		},
		{
			"unknown search fields are ignored",
			url.Values{"q": {"groceries"}, "searchIn": {"nonsense"}},
			[]string{"Groceries", "Standup notes", "Packing list"},
		},
		{
			"restrict to category IDs",
			url.Values{"categoryIds": {work.ID.String() + "," + travel.ID.String()}},
			[]string{"Standup notes", "Packing list"},
		},
		{
			"restrict to category names",
			url.Values{"categories": {"Work"}},
			[]string{"Standup notes"},
		},
		{
			"single category filter",
			url.Values{"category": {travel.ID.String()}},
			[]string{"Packing list"},
		},
		{
			"search and category restriction combine",
			url.Values{"q": {"groceries"}, "categoryIds": {work.ID.String()}},
			[]string{"Standup notes"},
		},
		{
			"no match",
			url.Values{"q": {"nonexistent"}},
			[]string{},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := test.Request(suite.T(), http.MethodGet, "/v1/notes?"+tt.query.Encode(), nil, test.AuthHeader(suite.T(), "user-1"))
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var notes []models.Note
			test.DecodeResponse(suite.T(), &recorder, &notes)

			titles := make([]string, 0, len(notes))
			for _, note := range notes {
				titles = append(titles, note.Title)
			}
			suite.Assert().ElementsMatch(tt.titles, titles)
		})
	}
}

func (suite *TestSuiteStandard) TestNotesInvalidCategoryFilter() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/notes?category=not-a-uuid", nil, test.AuthHeader(suite.T(), "user-1"))

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestNoteUpdate() {
	note := suite.createTestNote(models.Note{UserID: "user-1", Title: "Standup notes", Content: "Old content"})

	recorder := test.Request(suite.T(), http.MethodPatch, "/v1/notes/"+note.ID.String(), map[string]any{
		"content": "New content",
	}, test.AuthHeader(suite.T(), "user-1"))

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated models.Note
	test.DecodeResponse(suite.T(), &recorder, &updated)
	suite.Assert().Equal("New content", updated.Content)

	// The title was not part of the request, it must survive
	suite.Assert().Equal("Standup notes", updated.Title)
}

func (suite *TestSuiteStandard) TestNoteUpdateEmptyTitle() {
	note := suite.createTestNote(models.Note{UserID: "user-1", Title: "Standup notes"})

	recorder := test.Request(suite.T(), http.MethodPatch, "/v1/notes/"+note.ID.String(), map[string]any{
		"title": "",
	}, test.AuthHeader(suite.T(), "user-1"))

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestNoteUpdateSetCategory() {
	category := suite.createTestCategory(models.Category{UserID: "user-1", Name: "Work"})
	note := suite.createTestNote(models.Note{UserID: "user-1", Title: "Standup notes"})

	recorder := test.Request(suite.T(), http.MethodPatch, "/v1/notes/"+note.ID.String(), map[string]any{
		"categoryId": category.ID.String(),
	}, test.AuthHeader(suite.T(), "user-1"))

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated models.Note
	test.DecodeResponse(suite.T(), &recorder, &updated)
	suite.Require().NotNil(updated.CategoryID)
	suite.Assert().Equal(category.ID, *updated.CategoryID)
}

// An explicit null categoryId detaches the note from its category.
func (suite *TestSuiteStandard) TestNoteUpdateClearCategory() {
	category := suite.createTestCategory(models.Category{UserID: "user-1", Name: "Work"})
	note := suite.createTestNote(models.Note{UserID: "user-1", Title: "Standup notes", CategoryID: &category.ID})

	recorder := test.Request(suite.T(), http.MethodPatch, "/v1/notes/"+note.ID.String(), `{"categoryId": null}`, test.AuthHeader(suite.T(), "user-1"))

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var reloaded models.Note
	suite.Require().NoError(models.DB.First(&reloaded, "id = ?", note.ID).Error)
	suite.Assert().Nil(reloaded.CategoryID)
}

func (suite *TestSuiteStandard) TestNoteUpdateForeignCategory() {
	category := suite.createTestCategory(models.Category{UserID: "user-2", Name: "Work"})
	note := suite.createTestNote(models.Note{UserID: "user-1", Title: "Standup notes"})

	recorder := test.Request(suite.T(), http.MethodPatch, "/v1/notes/"+note.ID.String(), map[string]any{
		"categoryId": category.ID.String(),
	}, test.AuthHeader(suite.T(), "user-1"))

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestNoteUpdateOtherUser() {
	note := suite.createTestNote(models.Note{UserID: "user-1", Title: "Standup notes"})

	recorder := test.Request(suite.T(), http.MethodPatch, "/v1/notes/"+note.ID.String(), map[string]any{
		"title": "Hijacked",
	}, test.AuthHeader(suite.T(), "user-2"))

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestNoteDelete() {
	note := suite.createTestNote(models.Note{UserID: "user-1", Title: "Standup notes"})

	recorder := test.Request(suite.T(), http.MethodDelete, "/v1/notes/"+note.ID.String(), nil, test.AuthHeader(suite.T(), "user-1"))

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"ok": true}`, recorder.Body.String())

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/notes", nil, test.AuthHeader(suite.T(), "user-1"))
	suite.Assert().JSONEq("[]", recorder.Body.String())
}

func (suite *TestSuiteStandard) TestNoteDeleteOtherUser() {
	note := suite.createTestNote(models.Note{UserID: "user-1", Title: "Standup notes"})

	recorder := test.Request(suite.T(), http.MethodDelete, "/v1/notes/"+note.ID.String(), nil, test.AuthHeader(suite.T(), "user-2"))

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestNoteDeleteNonexistent() {
	recorder := test.Request(suite.T(), http.MethodDelete, "/v1/notes/"+uuid.New().String(), nil, test.AuthHeader(suite.T(), "user-1"))

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestNotesDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/notes", nil, test.AuthHeader(suite.T(), "user-1"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestNoteOptions() {
	note := suite.createTestNote(models.Note{UserID: "user-1", Title: "Standup notes"})

	tests := []struct {
		path  string
		allow string
	}{
		{"/v1/notes", "OPTIONS, GET, POST"},
		{"/v1/notes/" + note.ID.String(), "OPTIONS, PATCH, PUT, DELETE"},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodOptions, tt.path, nil, test.AuthHeader(suite.T(), "user-1"))
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
		suite.Assert().Equal(tt.allow, recorder.Header().Get("allow"))
	}
}
