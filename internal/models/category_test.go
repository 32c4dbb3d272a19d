package models_test

import (
	"github.com/notekeeper/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	name := " Work\t"
	color := " #3b82f6 "
	icon := " Briefcase "

	category := suite.createTestCategory(models.Category{UserID: "user-1", Name: name, Color: color, Icon: icon})

	suite.Assert().Equal("Work", category.Name)
	suite.Assert().Equal("#3b82f6", category.Color)
	suite.Assert().Equal("Briefcase", category.Icon)
}

func (suite *TestSuiteStandard) TestCategoryNameRequired() {
	err := models.DB.Create(&models.Category{UserID: "user-1", Name: "  "}).Error

	suite.Assert().ErrorIs(err, models.ErrCategoryNameRequired)
}

func (suite *TestSuiteStandard) TestCategoryNameUniquePerUser() {
	_ = suite.createTestCategory(models.Category{UserID: "user-1", Name: "Work"})

	err := models.DB.Create(&models.Category{UserID: "user-1", Name: "Work"}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)

	// Another user can use the same name
	err = models.DB.Create(&models.Category{UserID: "user-2", Name: "Work"}).Error
	suite.Assert().NoError(err)
}

// The uniqueness constraint only covers live rows, a soft-deleted category
// does not block its name.
func (suite *TestSuiteStandard) TestCategoryNameReusableAfterDelete() {
	category := suite.createTestCategory(models.Category{UserID: "user-1", Name: "Work"})
	suite.Require().NoError(models.DB.Delete(&category).Error)

	err := models.DB.Create(&models.Category{UserID: "user-1", Name: "Work"}).Error
	suite.Assert().NoError(err)
}

func (suite *TestSuiteStandard) TestCategoryUpdateEmptyName() {
	category := suite.createTestCategory(models.Category{UserID: "user-1", Name: "Work"})

	err := models.DB.Model(&category).Select("", "Name").Updates(models.Category{Name: ""}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameRequired)
}

func (suite *TestSuiteStandard) TestCategoryNotes() {
	category := suite.createTestCategory(models.Category{UserID: "user-1", Name: "Work"})
	_ = suite.createTestNote(models.Note{UserID: "user-1", Title: "Standup notes", CategoryID: &category.ID})
	_ = suite.createTestNote(models.Note{UserID: "user-1", Title: "Uncategorized"})

	notes, err := category.Notes(models.DB)
	suite.Require().NoError(err)
	suite.Require().Len(notes, 1)
	suite.Assert().Equal("Standup notes", notes[0].Title)
}
