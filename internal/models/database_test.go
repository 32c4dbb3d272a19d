package models_test

import (
	"github.com/notekeeper/backend/internal/models"
)

func (suite *TestSuiteStandard) TestPing() {
	suite.Assert().NoError(models.Ping())
}

func (suite *TestSuiteStandard) TestPingClosedDB() {
	suite.CloseDB()

	suite.Assert().Error(models.Ping())
}

// The "record not found" error names the resource with its singular name.
func (suite *TestSuiteStandard) TestNotFoundMessage() {
	var category models.Category
	err := models.DB.First(&category, "name = ?", "does not exist").Error
	suite.Require().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no category matching your query", err.Error())

	var note models.Note
	err = models.DB.First(&note, "title = ?", "does not exist").Error
	suite.Require().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no note matching your query", err.Error())
}

// Errors the user cannot do anything about are replaced with a general one.
func (suite *TestSuiteStandard) TestClosedDBGeneralError() {
	suite.CloseDB()

	var categories []models.Category
	err := models.DB.Find(&categories).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
