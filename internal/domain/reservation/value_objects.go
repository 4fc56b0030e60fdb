package reservation

import (
	"errors"
	"fmt"
	"time"
)

// SlotDuration is the fixed length of every bookable slot.
const SlotDuration = 2 * time.Hour

const minutesPerDay = 24 * 60

var ErrInvalidSlotTime = errors.New("slot time must match HH:MM with hour 00-23 and minute 00-59")

// SlotTime is a time of day with minute precision, independent of any date.
type SlotTime struct {
	minutes int // minutes since midnight, [0, 1440)
}

func NewSlotTime(hour, minute int) (SlotTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return SlotTime{}, ErrInvalidSlotTime
	}
	return SlotTime{minutes: hour*60 + minute}, nil
}

func ParseSlotTime(s string) (SlotTime, error) {
	if len(s) != 5 || s[2] != ':' {
		return SlotTime{}, ErrInvalidSlotTime
	}
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hour, &minute); err != nil {
		return SlotTime{}, ErrInvalidSlotTime
	}
	return NewSlotTime(hour, minute)
}

// EndTime adds the fixed slot duration, wrapping at midnight (23:00 -> 01:00).
func (t SlotTime) EndTime() SlotTime {
	return SlotTime{minutes: (t.minutes + int(SlotDuration.Minutes())) % minutesPerDay}
}

func (t SlotTime) Hour() int   { return t.minutes / 60 }
func (t SlotTime) Minute() int { return t.minutes % 60 }

func (t SlotTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t SlotTime) Equal(other SlotTime) bool {
	return t.minutes == other.minutes
}

func (t SlotTime) Before(other SlotTime) bool {
	return t.minutes < other.minutes
}

// At anchors the time of day onto a calendar date.
func (t SlotTime) At(d Date) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.Local)
}

var ErrInvalidDate = errors.New("date must be a valid ISO calendar date (YYYY-MM-DD)")

// Date is a calendar date without a time zone.
type Date struct {
	year  int
	month time.Month
	day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{year: year, month: month, day: day}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

func DateOf(t time.Time) Date {
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) Before(other Date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}
