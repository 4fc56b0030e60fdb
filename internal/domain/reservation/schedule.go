package reservation

// OpeningSlots is the fixed universe of bookable start times: six slots
// spaced two hours apart over the 12-hour service window 10:00-22:00.
func OpeningSlots() []SlotTime {
	slots := make([]SlotTime, 0, 6)
	for hour := 10; hour <= 20; hour += 2 {
		t, _ := NewSlotTime(hour, 0)
		slots = append(slots, t)
	}
	return slots
}

// IsOpeningSlot reports whether start is one of the fixed bookable times.
func IsOpeningSlot(start SlotTime) bool {
	for _, s := range OpeningSlots() {
		if s.Equal(start) {
			return true
		}
	}
	return false
}

type AvailabilitySlot struct {
	Start     SlotTime
	End       SlotTime
	Available bool
}

// ResolveAvailability diffs the fixed slot universe against the start times
// of confirmed reservations. Cancelled reservations must not appear in
// bookedStarts; the caller queries confirmed rows only.
func ResolveAvailability(bookedStarts []SlotTime) []AvailabilitySlot {
	booked := make(map[SlotTime]struct{}, len(bookedStarts))
	for _, s := range bookedStarts {
		booked[s] = struct{}{}
	}

	opening := OpeningSlots()
	result := make([]AvailabilitySlot, len(opening))
	for i, start := range opening {
		_, taken := booked[start]
		result[i] = AvailabilitySlot{
			Start:     start,
			End:       start.EndTime(),
			Available: !taken,
		}
	}
	return result
}
