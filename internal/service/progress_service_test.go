package service

import (
	"stepup_backend/internal/model"
	"stepup_backend/internal/streak"
	"stepup_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompletions struct {
	done        map[string]bool
	uncompleted []string
}

func newStubCompletions(done ...string) *stubCompletions {
	s := &stubCompletions{done: map[string]bool{}}
	for _, id := range done {
		s.done[id] = true
	}
	return s
}

func (s *stubCompletions) Complete(userID uint, topicID string) error {
	s.done[topicID] = true
	return nil
}

func (s *stubCompletions) Uncomplete(userID uint, topicID string) error {
	delete(s.done, topicID)
	s.uncompleted = append(s.uncompleted, topicID)
	return nil
}

func (s *stubCompletions) CompletedTopicIDs(userID uint) ([]string, error) {
	ids := make([]string, 0, len(s.done))
	for id := range s.done {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *stubCompletions) IsCompleted(userID uint, topicID string) (bool, error) {
	return s.done[topicID], nil
}

type streakWrite struct {
	streak     int
	lastActive string
}

type stubStreaks struct {
	user   model.User
	writes []streakWrite
}

func (s *stubStreaks) FindByID(id uint) (*model.User, error) {
	u := s.user
	return &u, nil
}

func (s *stubStreaks) UpdateStreak(userID uint, streakCount int, lastActiveDate string) error {
	s.writes = append(s.writes, streakWrite{streak: streakCount, lastActive: lastActiveDate})
	return nil
}

func progressFixture(streakCount int, lastActive string, done ...string) (*ProgressService, *stubCompletions, *stubStreaks) {
	completions := newStubCompletions(done...)
	streaks := &stubStreaks{user: model.User{
		BaseModel:      model.BaseModel{ID: 1},
		Name:           "Asha",
		SelectedTrack:  "fs-core",
		StreakCount:    streakCount,
		LastActiveDate: lastActive,
	}}
	return NewProgressService(completions, streaks), completions, streaks
}

func TestCompleteTopicFirstEverSetsStreakToOne(t *testing.T) {
	svc, completions, streaks := progressFixture(0, "")

	update, err := svc.CompleteTopic(1, "html-fundamentals")
	require.NoError(t, err)

	today := streak.Today()
	assert.True(t, update.Advanced)
	assert.Equal(t, 1, update.StreakCount)
	assert.Equal(t, today, update.LastActiveDate)
	assert.True(t, completions.done["html-fundamentals"])
	require.Len(t, streaks.writes, 1)
	assert.Equal(t, streakWrite{streak: 1, lastActive: today}, streaks.writes[0])
}

func TestCompleteTopicSameDayRepeatIsIdempotent(t *testing.T) {
	today := streak.Today()
	svc, _, streaks := progressFixture(3, today, "html-fundamentals")

	update, err := svc.CompleteTopic(1, "html-fundamentals")
	require.NoError(t, err)

	assert.False(t, update.Advanced)
	assert.Equal(t, 3, update.StreakCount)
	assert.Equal(t, today, update.LastActiveDate)
	assert.Empty(t, streaks.writes, "a repeated completion must not touch the streak")
}

func TestCompleteTopicSecondTopicSameDayDoesNotAdvance(t *testing.T) {
	today := streak.Today()
	svc, completions, streaks := progressFixture(3, today, "html-fundamentals")

	update, err := svc.CompleteTopic(1, "css3-responsive")
	require.NoError(t, err)

	// The new completion is recorded but the day is already credited.
	assert.True(t, completions.done["css3-responsive"])
	assert.False(t, update.Advanced)
	assert.Equal(t, 3, update.StreakCount)
	assert.Empty(t, streaks.writes)
}

func TestCompleteTopicConsecutiveDayExtendsStreak(t *testing.T) {
	today := streak.Today()
	svc, _, streaks := progressFixture(3, streak.Yesterday(today))

	update, err := svc.CompleteTopic(1, "html-fundamentals")
	require.NoError(t, err)

	assert.True(t, update.Advanced)
	assert.Equal(t, 4, update.StreakCount)
	require.Len(t, streaks.writes, 1)
	assert.Equal(t, streakWrite{streak: 4, lastActive: today}, streaks.writes[0])
}

func TestCompleteTopicAfterGapResetsStreak(t *testing.T) {
	svc, _, streaks := progressFixture(9, "2020-01-01")

	update, err := svc.CompleteTopic(1, "html-fundamentals")
	require.NoError(t, err)

	assert.True(t, update.Advanced)
	assert.Equal(t, 1, update.StreakCount)
	require.Len(t, streaks.writes, 1)
	assert.Equal(t, 1, streaks.writes[0].streak)
}

func TestCompleteTopicRejectsForeignTopic(t *testing.T) {
	svc, completions, streaks := progressFixture(0, "")

	_, err := svc.CompleteTopic(1, "no-such-topic")
	assert.ErrorIs(t, err, util.ErrTopicNotInTrack)
	assert.Empty(t, completions.done)
	assert.Empty(t, streaks.writes)
}

func TestUncompleteTopicNeverRollsBackStreak(t *testing.T) {
	today := streak.Today()
	svc, completions, streaks := progressFixture(5, today, "html-fundamentals")

	require.NoError(t, svc.UncompleteTopic(1, "html-fundamentals"))

	assert.Equal(t, []string{"html-fundamentals"}, completions.uncompleted)
	assert.Empty(t, streaks.writes, "unchecking must not rewrite streak state")
}

func TestGetProgressReflectsCompletions(t *testing.T) {
	svc, _, _ := progressFixture(2, streak.Today(), "html-fundamentals", "css3-responsive")

	view, err := svc.GetProgress(1)
	require.NoError(t, err)

	assert.Equal(t, "fs-core", view.TrackID)
	assert.ElementsMatch(t, []string{"html-fundamentals", "css3-responsive"}, view.Completed)
	assert.Equal(t, 2, view.Summary.DoneCount)
	assert.Equal(t, 2, view.StreakCount)
}
