// Package ingest decodes the external JSON request shape into
// core/model value types, and encodes a schedule result back to JSON.
// Grounded on original_source/src/utils/parser.hpp's field-by-field
// decode, translated from hand-checked nlohmann::json access into Go
// struct tags and a json.Unmarshaler on the case-type enum.
package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/FrederikvSvane/bachelor-projekt/internal/court/model"
)

// request is the wire shape of a scheduling request, matching field names
// and capitalization exactly as specified (Judges and CourtRooms are
// capitalized; meetings, work_days, min_per_work_day, granularity are not
// — an inconsistency carried over unchanged from the external interface
// this was distilled from).
type request struct {
	Meetings      []meetingDTO `json:"meetings"`
	Judges        []judgeDTO   `json:"Judges"`
	CourtRooms    []roomDTO    `json:"CourtRooms"`
	WorkDays      int          `json:"work_days"`
	MinPerWorkDay int          `json:"min_per_work_day"`
	Granularity   int          `json:"granularity"`
}

type meetingDTO struct {
	ID       int      `json:"id"`
	Duration int      `json:"duration"`
	Sagstype caseType `json:"sagstype"`
	Virtual  bool     `json:"virtual"`
}

type judgeDTO struct {
	ID      int        `json:"id"`
	Skills  []caseType `json:"skills"`
	Virtual bool       `json:"virtual"`
}

type roomDTO struct {
	ID      int  `json:"id"`
	Virtual bool `json:"virtual"`
}

// caseType mirrors model.CaseType but unmarshals from the wire's
// "Straffe"|"Civile"|"Tvang" strings rather than integers.
type caseType model.CaseType

func (c *caseType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "Straffe":
		*c = caseType(model.Straffe)
	case "Civile":
		*c = caseType(model.Civile)
	case "Tvang":
		*c = caseType(model.Tvang)
	default:
		return fmt.Errorf("ingest: %w: unknown case type %q", model.ErrInvalidInput, s)
	}
	return nil
}

func (c caseType) MarshalJSON() ([]byte, error) {
	return json.Marshal(model.CaseType(c).String())
}

// Decode parses the external JSON request shape into a model.ScheduleRequest.
// strategy is not part of the wire shape (spec.md's external interface
// doesn't surface it), so callers supply it separately — typically from a
// CLI flag or config default.
func Decode(data []byte, strategy model.Strategy) (model.ScheduleRequest, error) {
	var r request
	if err := json.Unmarshal(data, &r); err != nil {
		return model.ScheduleRequest{}, fmt.Errorf("ingest: %w: %v", model.ErrInvalidInput, err)
	}

	meetings := make([]model.Meeting, len(r.Meetings))
	for i, m := range r.Meetings {
		meetings[i] = model.Meeting{ID: m.ID, Duration: m.Duration, CaseType: model.CaseType(m.Sagstype), Virtual: m.Virtual}
	}

	judges := make([]model.Judge, len(r.Judges))
	for i, j := range r.Judges {
		skills := make(map[model.CaseType]bool, len(j.Skills))
		for _, s := range j.Skills {
			skills[model.CaseType(s)] = true
		}
		judges[i] = model.Judge{ID: j.ID, Skills: skills, Virtual: j.Virtual}
	}

	rooms := make([]model.Room, len(r.CourtRooms))
	for i, room := range r.CourtRooms {
		rooms[i] = model.Room{ID: room.ID, Virtual: room.Virtual}
	}

	return model.ScheduleRequest{
		Meetings: meetings,
		Judges:   judges,
		Rooms:    rooms,
		DayConfig: model.DayConfig{
			WorkDays:      r.WorkDays,
			MinutesPerDay: r.MinPerWorkDay,
			Granularity:   r.Granularity,
		},
		Strategy: strategy,
	}, nil
}

// appointmentDTO is the wire shape of a single scheduled appointment.
type appointmentDTO struct {
	MeetingID       int `json:"meeting_id"`
	JudgeID         int `json:"judge_id"`
	RoomID          int `json:"room_id"`
	Day             int `json:"day"`
	TimeslotStart   int `json:"timeslot_start"`
	DurationMinutes int `json:"duration_minutes"`
}

// EncodeResult serializes a model.ScheduleResult's appointments to the
// external JSON array shape, for -o output.
func EncodeResult(result model.ScheduleResult) ([]byte, error) {
	dtos := make([]appointmentDTO, len(result.Appointments))
	for i, a := range result.Appointments {
		dtos[i] = appointmentDTO{
			MeetingID:       a.MeetingID,
			JudgeID:         a.JudgeID,
			RoomID:          a.RoomID,
			Day:             a.Day,
			TimeslotStart:   a.TimeslotStart,
			DurationMinutes: a.DurationMinutes,
		}
	}
	out, err := json.MarshalIndent(dtos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	return out, nil
}
