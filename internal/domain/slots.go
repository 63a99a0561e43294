package domain

import "time"

// GenerateSlots produces the ascending candidate slot start instants
// inside [windowStart, windowEnd). Candidates run back-to-back from
// windowStart in slotDuration steps; a candidate survives when the full
// slot fits before windowEnd and it does not start before notBefore.
// notBefore is flattened to the window's wall clock first: slot
// arithmetic is timezone-naive by design.
//
// A notBefore past the window end, or a window shorter than one slot,
// yields an empty list. slotDuration <= 0 is a caller contract
// violation and must be rejected by configuration validation upstream.
func GenerateSlots(windowStart, windowEnd, notBefore time.Time, slotDuration time.Duration) []time.Time {
	notBefore = time.Date(
		notBefore.Year(), notBefore.Month(), notBefore.Day(),
		notBefore.Hour(), notBefore.Minute(), notBefore.Second(), notBefore.Nanosecond(),
		windowStart.Location(),
	)

	slots := make([]time.Time, 0)
	for current := windowStart; !current.Add(slotDuration).After(windowEnd); current = current.Add(slotDuration) {
		if !current.Before(notBefore) {
			slots = append(slots, current)
		}
	}
	return slots
}

// ExcludeBooked drops every slot whose interval [slot, slot+duration)
// overlaps a booked appointment, using strict half-open interval
// overlap: appt.Start < slot+duration && slot < appt.End. Slots merely
// touching an appointment boundary stay available.
func ExcludeBooked(appointments []AppointmentView, slots []time.Time, slotDuration time.Duration) []time.Time {
	available := make([]time.Time, 0, len(slots))
	for _, slot := range slots {
		slotEnd := slot.Add(slotDuration)
		booked := false
		for _, appt := range appointments {
			if appt.Start.Before(slotEnd) && slot.Before(appt.End) {
				booked = true
				break
			}
		}
		if !booked {
			available = append(available, slot)
		}
	}
	return available
}

// ExcludePendingHolds drops every slot whose START falls inside a
// pending reschedule hold: hold.Start <= slot < hold.End. Unlike
// ExcludeBooked this is a single-point containment check, not a full
// interval overlap test; holds are short-lived advisory locks and are
// checked loosely on purpose.
func ExcludePendingHolds(slots []time.Time, holds []Hold) []time.Time {
	filtered := make([]time.Time, 0, len(slots))
	for _, slot := range slots {
		held := false
		for _, hold := range holds {
			if !slot.Before(hold.Start) && slot.Before(hold.End) {
				held = true
				break
			}
		}
		if !held {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}
