package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"arena/shared/model"
)

const (
	TableName  = "campi"
	EntityName = "campo"

	FieldID             = "id"
	FieldName           = "name"
	FieldSport          = "sport"
	FieldStrutturaID    = "struttura_id"
	FieldPricePerHour   = "price_per_hour"
	FieldWeeklySchedule = "weekly_schedule"
	FieldActive         = "active"
)

// DaySchedule is one weekday entry of the opening schedule.
type DaySchedule struct {
	Open    string `json:"open"`
	Close   string `json:"close"`
	Enabled *bool  `json:"enabled,omitempty"`
	Closed  *bool  `json:"closed,omitempty"`
}

// WeeklySchedule maps weekday names (monday…sunday) to their opening
// hours. It is stored as a JSONB column.
type WeeklySchedule map[string]DaySchedule

func (w WeeklySchedule) Value() (driver.Value, error) {
	if w == nil {
		return nil, nil
	}

	return json.Marshal(w)
}

func (w *WeeklySchedule) Scan(src any) error {
	if src == nil {
		*w = nil

		return nil
	}

	switch value := src.(type) {
	case []byte:
		return json.Unmarshal(value, w)
	case string:
		return json.Unmarshal([]byte(value), w)
	default:
		return errors.New("unsupported weekly schedule source type")
	}
}

type Campo struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	Sport          string         `db:"sport"`
	StrutturaID    string         `db:"struttura_id"`
	PricePerHour   float64        `db:"price_per_hour"`
	WeeklySchedule WeeklySchedule `db:"weekly_schedule"`
	Active         bool           `db:"active"`
	model.Metadata
}
