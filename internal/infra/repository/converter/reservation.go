// Package converter translates between domain values and the PostgreSQL
// column representations (DATE and TIME) used by the reservations table.
package converter

import (
	"time"

	"tablebook/internal/domain/reservation"
)

const microsPerMinute = int64(time.Minute / time.Microsecond)

func SlotTimeToMicros(t reservation.SlotTime) int64 {
	return int64(t.Hour()*60+t.Minute()) * microsPerMinute
}

func SlotTimeFromMicros(micros int64) (reservation.SlotTime, error) {
	minutes := int(micros / microsPerMinute)
	return reservation.NewSlotTime(minutes/60, minutes%60)
}

func DateToTime(d reservation.Date) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func DateFromTime(t time.Time) reservation.Date {
	return reservation.DateOf(t)
}
