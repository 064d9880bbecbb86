package service

import (
	"stepup_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextWeekNumber(t *testing.T) {
	assert.Equal(t, 1, NextWeekNumber(nil))
	assert.Equal(t, 4, NextWeekNumber([]model.Project{
		{WeekNumber: 1},
		{WeekNumber: 3},
		{WeekNumber: 2},
	}))
}

func TestNextWeekNumberIgnoresGaps(t *testing.T) {
	// Deleted weeks leave holes; the next week still follows the max.
	assert.Equal(t, 8, NextWeekNumber([]model.Project{
		{WeekNumber: 2},
		{WeekNumber: 7},
	}))
}

func TestCanAppend(t *testing.T) {
	assert.True(t, CanAppend(nil), "empty log always accepts the first week")
	assert.True(t, CanAppend(&model.Project{Title: "Finance tracker"}))
	assert.False(t, CanAppend(&model.Project{Title: ""}))
	assert.False(t, CanAppend(&model.Project{Title: "   "}), "whitespace counts as unnamed")
}
