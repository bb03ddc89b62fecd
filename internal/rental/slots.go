package rental

import "time"

const SlotInterval = 30 * time.Minute

// TimeSlot is one selectable pickup/drop time of day.
type TimeSlot struct {
	Value   string // "15:30"
	Display string // "3:30 PM"
}

// TimeSlots lists the 48 half-hour slots of a day, starting at midnight.
func TimeSlots() []TimeSlot {
	slots := make([]TimeSlot, 0, int(Day/SlotInterval))
	base := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	for offset := time.Duration(0); offset < Day; offset += SlotInterval {
		t := base.Add(offset)
		slots = append(slots, TimeSlot{
			Value:   t.Format("15:04"),
			Display: t.Format("3:04 PM"),
		})
	}
	return slots
}
