package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arena/internal/domains/campo/model"
)

func TestWeeklySchedule_Scan(t *testing.T) {
	var schedule model.WeeklySchedule

	err := schedule.Scan([]byte(`{"monday":{"open":"09:00","close":"23:00"},"sunday":{"closed":true}}`))

	assert.NoError(t, err)
	assert.Equal(t, "09:00", schedule["monday"].Open)
	assert.NotNil(t, schedule["sunday"].Closed)
	assert.True(t, *schedule["sunday"].Closed)
}

func TestWeeklySchedule_ScanNil(t *testing.T) {
	schedule := model.WeeklySchedule{"monday": {Open: "09:00"}}

	err := schedule.Scan(nil)

	assert.NoError(t, err)
	assert.Nil(t, schedule)
}

func TestWeeklySchedule_ScanUnsupported(t *testing.T) {
	var schedule model.WeeklySchedule

	err := schedule.Scan(42)

	assert.Error(t, err)
}

func TestWeeklySchedule_Value(t *testing.T) {
	schedule := model.WeeklySchedule{
		"monday": {Open: "09:00", Close: "23:00"},
	}

	value, err := schedule.Value()

	assert.NoError(t, err)
	assert.JSONEq(t, `{"monday":{"open":"09:00","close":"23:00"}}`, string(value.([]byte)))
}
