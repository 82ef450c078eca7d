package entity

// TimeSlot is one of the fixed delivery windows.
type TimeSlot string

const (
	SlotLunchEarly  TimeSlot = "12:00-13:00"
	SlotLunchLate   TimeSlot = "13:00-14:00"
	SlotDinnerEarly TimeSlot = "19:00-20:00"
	SlotDinnerLate  TimeSlot = "20:00-21:00"
)

var TimeSlots = []TimeSlot{SlotLunchEarly, SlotLunchLate, SlotDinnerEarly, SlotDinnerLate}

func (t TimeSlot) Valid() bool {
	for _, s := range TimeSlots {
		if s == t {
			return true
		}
	}
	return false
}
