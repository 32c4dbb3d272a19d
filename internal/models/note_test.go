package models_test

import (
	"github.com/google/uuid"
	"github.com/notekeeper/backend/internal/models"
)

func (suite *TestSuiteStandard) TestNoteTrimWhitespace() {
	note := suite.createTestNote(models.Note{UserID: "user-1", Title: " Standup notes "})

	suite.Assert().Equal("Standup notes", note.Title)
}

func (suite *TestSuiteStandard) TestNoteTitleRequired() {
	err := models.DB.Create(&models.Note{UserID: "user-1", Title: " "}).Error

	suite.Assert().ErrorIs(err, models.ErrNoteTitleRequired)
}

func (suite *TestSuiteStandard) TestNoteCategoryMustExist() {
	id := uuid.New()
	err := models.DB.Create(&models.Note{UserID: "user-1", Title: "Standup notes", CategoryID: &id}).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestNoteCategoryMustBelongToUser() {
	category := suite.createTestCategory(models.Category{UserID: "user-2", Name: "Work"})

	err := models.DB.Create(&models.Note{UserID: "user-1", Title: "Standup notes", CategoryID: &category.ID}).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestNoteUpdateEmptyTitle() {
	note := suite.createTestNote(models.Note{UserID: "user-1", Title: "Standup notes"})

	err := models.DB.Model(&note).Select("", "Title").Updates(models.Note{Title: ""}).Error
	suite.Assert().ErrorIs(err, models.ErrNoteTitleRequired)
}

func (suite *TestSuiteStandard) TestNoteUpdateCategoryChecked() {
	foreign := suite.createTestCategory(models.Category{UserID: "user-2", Name: "Work"})
	note := suite.createTestNote(models.Note{UserID: "user-1", Title: "Standup notes"})

	err := models.DB.Model(&note).Select("", "CategoryID").Updates(models.Note{CategoryID: &foreign.ID}).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestNoteTimestampsUTC() {
	note := suite.createTestNote(models.Note{UserID: "user-1", Title: "Standup notes"})

	var reloaded models.Note
	suite.Require().NoError(models.DB.First(&reloaded, "id = ?", note.ID).Error)
	suite.Assert().Equal("UTC", reloaded.CreatedAt.Location().String())
	suite.Assert().Equal("UTC", reloaded.UpdatedAt.Location().String())
}
