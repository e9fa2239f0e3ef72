package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

const (
	EntityName = "stats"

	StatusConfirmed = "confirmed"

	PaymentStatusRefunded        = "refunded"
	PaymentStatusPartialRefunded = "partial_refunded"

	AnonymousClientName = "Anonimo"

	fallbackDurationHours = 1
)

// Ref is a reference to another record. Upstream payloads carry references
// either as a bare id string or as a nested object with `_id`/`id` plus
// optional display fields, so Ref accepts both and resolves to an empty
// value instead of failing on anything else.
type Ref struct {
	ID        string
	Name      string
	Surname   string
	Struttura *Ref
}

type refObject struct {
	MongoID   string          `json:"_id"`
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Surname   string          `json:"surname"`
	Struttura json.RawMessage `json:"struttura"`
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	*r = Ref{}

	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id

		return nil
	}

	var obj refObject
	if err := json.Unmarshal(data, &obj); err != nil {
		// Malformed references resolve to the empty Ref rather than
		// aborting the whole snapshot decode.
		return nil
	}

	r.ID = obj.MongoID
	if r.ID == "" {
		r.ID = obj.ID
	}

	r.Name = obj.Name
	r.Surname = obj.Surname

	if len(obj.Struttura) > 0 {
		nested := &Ref{}
		_ = nested.UnmarshalJSON(obj.Struttura)

		if nested.ID != "" || nested.Name != "" {
			r.Struttura = nested
		}
	}

	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// Empty reports whether the reference resolves to no id at all.
func (r Ref) Empty() bool {
	return r.ID == ""
}

// Payment is a single payment entry attached to a booking.
type Payment struct {
	Status string  `json:"status"`
	Amount float64 `json:"amount"`
}

// Booking is a single canonical booking record. Raw upstream records carry
// optional and alternate field names; all resolution happens through the
// methods below so downstream aggregation never touches raw shapes.
type Booking struct {
	ID            Ref       `json:"_id"`
	Status        string    `json:"status"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	Duration      float64   `json:"duration"`
	Price         *float64  `json:"price"`
	OwnerEarnings *float64  `json:"ownerEarnings"`
	RefundAmount  *float64  `json:"refundAmount"`
	RefundedAt    string    `json:"refundedAt"`
	Payments      []Payment `json:"payments"`
	User          Ref       `json:"user"`
	UserID        string    `json:"userId"`
	Campo         Ref       `json:"campo"`
	Struttura     Ref       `json:"struttura"`
}

// Struttura is a venue owned by the operator.
type Struttura struct {
	ID   Ref    `json:"_id"`
	Name string `json:"name"`
}

// DaySchedule is a single weekday entry of a field's opening schedule.
// A day contributes hours only when it is not disabled, not closed and
// both times are present.
type DaySchedule struct {
	Open    string `json:"open"`
	Close   string `json:"close"`
	Enabled *bool  `json:"enabled"`
	Closed  *bool  `json:"closed"`
}

// Available reports whether the day contributes opening hours at all.
func (d DaySchedule) Available() bool {
	if d.Enabled != nil && !*d.Enabled {
		return false
	}

	if d.Closed != nil && *d.Closed {
		return false
	}

	return d.Open != "" && d.Close != ""
}

// Campo is a bookable field inside a venue.
type Campo struct {
	ID             Ref                    `json:"_id"`
	Name           string                 `json:"name"`
	Struttura      Ref                    `json:"struttura"`
	WeeklySchedule map[string]DaySchedule `json:"weeklySchedule"`
}

// StrutturaID resolves the venue a booking belongs to, preferring the
// venue nested inside the campo reference over the flat fallback field.
func (b Booking) StrutturaID() string {
	if b.Campo.Struttura != nil && b.Campo.Struttura.ID != "" {
		return b.Campo.Struttura.ID
	}

	return b.Struttura.ID
}

// ResolvedUserID resolves the booking user, preferring the nested user
// reference over the flat userId fallback.
func (b Booking) ResolvedUserID() string {
	if !b.User.Empty() {
		return b.User.ID
	}

	return b.UserID
}

// UserDisplayName builds the display name used in popularity rankings.
func (b Booking) UserDisplayName() string {
	name := strings.TrimSpace(b.User.Name)
	if name == "" {
		return AnonymousClientName
	}

	if surname := strings.TrimSpace(b.User.Surname); surname != "" {
		return name + " " + surname
	}

	return name
}

// DurationHours resolves the booking length in hours. The explicit duration
// wins when it is a finite positive number; otherwise the length is derived
// from the start/end clock times. Anything unresolvable falls back to one
// hour so the booking still counts toward totals.
func (b Booking) DurationHours() float64 {
	if b.Duration > 0 && !math.IsInf(b.Duration, 0) && !math.IsNaN(b.Duration) {
		return math.Round(b.Duration*100) / 100
	}

	start, okStart := ParseClock(b.StartTime)
	end, okEnd := ParseClock(b.EndTime)

	if okStart && okEnd && end-start > 0 {
		return math.Round((end-start)*100) / 100
	}

	return fallbackDurationHours
}

// IsConfirmed reports whether the booking status is confirmed.
func (b Booking) IsConfirmed() bool {
	return strings.EqualFold(strings.TrimSpace(b.Status), StatusConfirmed)
}

// IsCancelled reports whether the booking status is one of the two
// cancellation spellings upstream systems produce.
func (b Booking) IsCancelled() bool {
	status := strings.ToLower(strings.TrimSpace(b.Status))

	return status == "cancelled" || status == "canceled"
}

// ParseClock parses an HH:MM string into decimal hours. It accepts single
// digit hours and rejects out-of-range components.
func ParseClock(value string) (float64, bool) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}

	return float64(hour) + float64(minute)/60, true
}
