package engine

import (
	"fmt"
	"math"
	"sort"
	"time"

	"arena/internal/domains/stats/model"
)

const (
	topSlots        = 5
	topUsersPerSlot = 3

	// SlotSizeDefault and SlotSizeLong are the two supported slot widths
	// for popularity rankings. The long width applies when the caller
	// filters on 90-minute bookings.
	SlotSizeDefault = 1.0
	SlotSizeLong    = 1.5
)

// WeekdayLabels are the Monday-first labels matching the weekly histogram.
var WeekdayLabels = [7]string{"Lunedì", "Martedì", "Mercoledì", "Giovedì", "Venerdì", "Sabato", "Domenica"}

// SlotUser is one of the most frequent bookers of a slot.
type SlotUser struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Count       int    `json:"count"`
}

// Slot is one time bucket in the popularity ranking.
type Slot struct {
	Start    float64    `json:"start"`
	Label    string     `json:"label"`
	Count    int        `json:"count"`
	TopUsers []SlotUser `json:"topUsers"`
}

// HourlyHistogram counts bookings per start hour across 24 buckets.
// Unparseable or out-of-range start times are skipped.
func HourlyHistogram(bookings []model.Booking) [24]int {
	var histogram [24]int

	for _, booking := range bookings {
		decimal, ok := model.ParseClock(booking.StartTime)
		if !ok {
			continue
		}

		hour := int(decimal)
		if hour < 0 || hour > 23 {
			continue
		}

		histogram[hour]++
	}

	return histogram
}

// WeeklyHistogram counts bookings per weekday across 7 Monday-first
// buckets. Bookings with unparseable dates are skipped.
func WeeklyHistogram(bookings []model.Booking, loc *time.Location) [7]int {
	var histogram [7]int

	for _, booking := range bookings {
		date, ok := ParseBookingDate(booking.Date, loc)
		if !ok {
			continue
		}

		histogram[(int(date.Weekday())+6)%7]++
	}

	return histogram
}

// SlotSizeForFilter maps the caller's duration filter onto a slot width.
func SlotSizeForFilter(durationFilter float64) float64 {
	if durationFilter == SlotSizeLong {
		return SlotSizeLong
	}

	return SlotSizeDefault
}

// SlotLabel renders a decimal slot start as an HH:MM label.
func SlotLabel(start float64) string {
	hours := int(start)
	minutes := int(math.Round((start - float64(hours)) * 60))

	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// SlotPopularity buckets bookings by start time into fixed-width slots and
// returns the busiest slots with their most frequent bookers. Ordering is
// deterministic: ties on slot count break toward the earlier slot, ties on
// user count break on the lexicographically smaller id, so repeated runs
// over the same snapshot produce identical output.
func SlotPopularity(bookings []model.Booking, slotSize float64) []Slot {
	if slotSize <= 0 {
		slotSize = SlotSizeDefault
	}

	type slotUsers struct {
		count  int
		users  map[string]int
		labels map[string]string
	}

	buckets := map[float64]*slotUsers{}

	for _, booking := range bookings {
		start, ok := model.ParseClock(booking.StartTime)
		if !ok {
			continue
		}

		key := math.Floor(start/slotSize) * slotSize

		bucket, exists := buckets[key]
		if !exists {
			bucket = &slotUsers{users: map[string]int{}, labels: map[string]string{}}
			buckets[key] = bucket
		}

		bucket.count++

		userID := booking.ResolvedUserID()
		if userID == "" {
			continue
		}

		bucket.users[userID]++
		bucket.labels[userID] = booking.UserDisplayName()
	}

	slots := make([]Slot, 0, len(buckets))

	for start, bucket := range buckets {
		slot := Slot{
			Start: start,
			Label: SlotLabel(start),
			Count: bucket.count,
		}

		users := make([]SlotUser, 0, len(bucket.users))
		for id, count := range bucket.users {
			users = append(users, SlotUser{ID: id, DisplayName: bucket.labels[id], Count: count})
		}

		sort.Slice(users, func(i, j int) bool {
			if users[i].Count != users[j].Count {
				return users[i].Count > users[j].Count
			}

			return users[i].ID < users[j].ID
		})

		if len(users) > topUsersPerSlot {
			users = users[:topUsersPerSlot]
		}

		slot.TopUsers = users
		slots = append(slots, slot)
	}

	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Count != slots[j].Count {
			return slots[i].Count > slots[j].Count
		}

		return slots[i].Start < slots[j].Start
	})

	if len(slots) > topSlots {
		slots = slots[:topSlots]
	}

	return slots
}
