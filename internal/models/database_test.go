package models_test

import (
	"github.com/google/uuid"
	"github.com/pocketplan/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestResourceNotFoundMessage() {
	var entry models.LogEntry
	err := models.DB.First(&entry, uuid.New()).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no log entry matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestClosedDatabaseReturnsGeneralError() {
	suite.CloseDB()

	var entries []models.LogEntry
	err := models.DB.Find(&entries).Error

	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
