package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FrederikvSvane/bachelor-projekt/internal/court/model"
)

const sampleRequest = `{
	"meetings": [{"id": 1, "duration": 30, "sagstype": "Straffe", "virtual": false}],
	"Judges": [{"id": 1, "skills": ["Straffe", "Civile"], "virtual": false}],
	"CourtRooms": [{"id": 1, "virtual": false}],
	"work_days": 1,
	"min_per_work_day": 480,
	"granularity": 30
}`

func TestDecode(t *testing.T) {
	req, err := Decode([]byte(sampleRequest), model.Combined)
	assert.NoError(t, err)

	assert.Equal(t, 1, len(req.Meetings))
	assert.Equal(t, model.Straffe, req.Meetings[0].CaseType)
	assert.True(t, req.Judges[0].HasSkill(model.Straffe))
	assert.True(t, req.Judges[0].HasSkill(model.Civile))
	assert.False(t, req.Judges[0].HasSkill(model.Tvang))
	assert.Equal(t, 480, req.DayConfig.MinutesPerDay)
	assert.Equal(t, model.Combined, req.Strategy)
}

func TestDecode_UnknownCaseTypeIsInvalidInput(t *testing.T) {
	bad := `{"meetings":[{"id":1,"duration":1,"sagstype":"Unknown","virtual":false}],"Judges":[],"CourtRooms":[],"work_days":1,"min_per_work_day":480,"granularity":30}`
	_, err := Decode([]byte(bad), model.Combined)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestEncodeResult_RoundTripsAppointmentFields(t *testing.T) {
	result := model.ScheduleResult{
		Appointments: []model.Appointment{
			{MeetingID: 1, JudgeID: 2, RoomID: 3, Day: 0, TimeslotStart: 5, DurationMinutes: 30},
		},
		FlowValue: 1,
	}
	out, err := EncodeResult(result)
	assert.NoError(t, err)
	assert.Contains(t, string(out), `"meeting_id": 1`)
	assert.Contains(t, string(out), `"timeslot_start": 5`)
}
