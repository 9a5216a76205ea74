// Package timetable turns a colored conflict graph into the pipeline's
// final output: one Appointment per triple, each placed at a day and
// timeslot derived directly from its color.
package timetable

import "github.com/FrederikvSvane/bachelor-projekt/internal/court/model"

// Build maps triples and their parallel colors (colors[i] is the color of
// triples[i]) into appointments, per spec.md §4.7: day(v) = color(v) /
// slots_per_day, and timeslot_start(v) = color(v) itself rather than
// color(v) mod slots_per_day. A meeting's duration can therefore exceed the
// remainder of its timeslot's day; the spec does not require slot-sized
// durations, and downstream consumers are responsible for rejecting or
// re-planning any appointment that would overrun its day.
func Build(triples []model.Triple, colors []int, day model.DayConfig) []model.Appointment {
	slotsPerDay := day.SlotsPerDay()

	appointments := make([]model.Appointment, len(triples))
	for i, t := range triples {
		color := colors[i]
		appointments[i] = model.Appointment{
			MeetingID:       t.Meeting.ID,
			JudgeID:         t.Judge.ID,
			RoomID:          t.Room.ID,
			Day:             color / slotsPerDay,
			TimeslotStart:   color,
			DurationMinutes: t.Meeting.Duration,
		}
	}
	return appointments
}
