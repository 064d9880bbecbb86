package service

import (
	"errors"
	"stepup_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProfiles struct {
	users []model.User
	err   error
}

func (s *stubProfiles) FindAll() ([]model.User, error) {
	return s.users, s.err
}

type recordingMailer struct {
	sent    []string
	failFor map[string]error
}

func (m *recordingMailer) Send(toName, toAddress, subject, htmlBody string) error {
	if err, ok := m.failFor[toAddress]; ok {
		return err
	}
	m.sent = append(m.sent, toAddress)
	return nil
}

func learner(name, email, track string, streak int, lastActive string) model.User {
	return model.User{
		Name:           name,
		Email:          email,
		SelectedTrack:  track,
		StreakCount:    streak,
		LastActiveDate: lastActive,
		Onboarded:      true,
	}
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	days, ok := DaysSince("2025-03-10", now)
	assert.True(t, ok)
	assert.Equal(t, 0, days)

	days, ok = DaysSince("2025-03-09", now)
	assert.True(t, ok)
	assert.Equal(t, 1, days)

	days, ok = DaysSince("2025-03-06", now)
	assert.True(t, ok)
	assert.Equal(t, 4, days)

	_, ok = DaysSince("", now)
	assert.False(t, ok)

	_, ok = DaysSince("garbage", now)
	assert.False(t, ok)
}

func TestStatusLineVariants(t *testing.T) {
	keep := string(StatusLine(5, "FS Core", 1, true))
	assert.Contains(t, keep, "5-day streak")
	assert.Contains(t, keep, "Keep it going")

	rebuild := string(StatusLine(5, "FS Core", 4, true))
	assert.Contains(t, rebuild, "4 days")
	assert.Contains(t, rebuild, "rebuilt")

	neutral := string(StatusLine(0, "FS + AI", 0, false))
	assert.Contains(t, neutral, "FS + AI")
	assert.Contains(t, neutral, "Pick up where you left off")
}

func TestStatusLineZeroStreakWithRecentActivityIsNeutral(t *testing.T) {
	// streak 0 never claims an active streak, even on a same-day check-in.
	line := string(StatusLine(0, "FS Core", 0, true))
	assert.NotContains(t, line, "streak</strong>")
	assert.Contains(t, line, "FS Core")
}

func TestBuildEmailHTML(t *testing.T) {
	svc := NewNudgeService(&stubProfiles{}, &recordingMailer{}, "https://stepup.example.com")
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	user := learner("Asha", "asha@example.com", "fs-ai", 3, "2025-03-10")
	html, err := svc.BuildEmailHTML(&user, now)
	require.NoError(t, err)

	assert.Contains(t, html, "Hey Asha")
	assert.Contains(t, html, "FS + AI")
	assert.Contains(t, html, "3-day streak")
	assert.Contains(t, html, "🔥 3 days")
	assert.Contains(t, html, `href="https://stepup.example.com/tracks"`)
}

func TestBuildEmailHTMLSingularDay(t *testing.T) {
	svc := NewNudgeService(&stubProfiles{}, &recordingMailer{}, "https://stepup.example.com")
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	user := learner("Ravi", "ravi@example.com", "fs-core", 1, "2025-03-10")
	html, err := svc.BuildEmailHTML(&user, now)
	require.NoError(t, err)

	assert.Contains(t, html, "🔥 1 day")
	assert.NotContains(t, html, "🔥 1 days")
}

func TestBuildEmailHTMLUnknownTrackFallsBackToID(t *testing.T) {
	svc := NewNudgeService(&stubProfiles{}, &recordingMailer{}, "https://stepup.example.com")
	user := learner("Meera", "meera@example.com", "retired-track", 0, "")

	html, err := svc.BuildEmailHTML(&user, time.Now())
	require.NoError(t, err)
	assert.Contains(t, html, "retired-track")
}

func TestSendAllIsolatesFailures(t *testing.T) {
	mailer := &recordingMailer{failFor: map[string]error{
		"ravi@example.com": errors.New("mailbox full"),
	}}
	profiles := &stubProfiles{users: []model.User{
		learner("Asha", "asha@example.com", "fs-core", 2, "2025-03-09"),
		learner("Ravi", "ravi@example.com", "fs-ai", 0, ""),
		learner("Meera", "meera@example.com", "fs-ds", 5, "2025-03-10"),
	}}

	svc := NewNudgeService(profiles, mailer, "https://stepup.example.com")
	report, err := svc.SendAll(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Sent)
	require.Len(t, report.Results, 3)

	assert.True(t, report.Results[0].Success)
	assert.False(t, report.Results[1].Success)
	assert.Equal(t, "mailbox full", report.Results[1].Error)
	assert.True(t, report.Results[2].Success)

	// The failure did not stop the batch.
	assert.Equal(t, []string{"asha@example.com", "meera@example.com"}, mailer.sent)
}

func TestSendAllSkipsUnonboardedLearners(t *testing.T) {
	pending := learner("New", "new@example.com", "", 0, "")
	pending.Onboarded = false

	profiles := &stubProfiles{users: []model.User{
		pending,
		learner("Asha", "asha@example.com", "fs-core", 1, "2025-03-10"),
	}}
	mailer := &recordingMailer{}

	svc := NewNudgeService(profiles, mailer, "https://stepup.example.com")
	report, err := svc.SendAll(time.Now())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Total)
	assert.Equal(t, []string{"asha@example.com"}, mailer.sent)
}

func TestSendAllPropagatesSourceError(t *testing.T) {
	profiles := &stubProfiles{err: errors.New("db down")}
	svc := NewNudgeService(profiles, &recordingMailer{}, "https://stepup.example.com")

	_, err := svc.SendAll(time.Now())
	assert.Error(t, err)
}
