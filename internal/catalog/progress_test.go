package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTrack() Track {
	return Track{
		ID:   "t",
		Name: "Test",
		Phases: []Phase{
			{PhaseNumber: 1, Title: "One", Topics: []Topic{{ID: "a"}, {ID: "b"}}},
			{PhaseNumber: 2, Title: "Two", Topics: []Topic{{ID: "c"}}},
		},
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(testTrack(), nil)

	assert.Equal(t, 3, s.TotalTopics)
	assert.Equal(t, 0, s.DoneCount)
	assert.Equal(t, 0, s.Percent)
	assert.Equal(t, 0, s.FirstIncompletePhase)
}

func TestSummarizePartial(t *testing.T) {
	s := Summarize(testTrack(), CompletedSet([]string{"a", "b"}))

	assert.Equal(t, 2, s.DoneCount)
	assert.Equal(t, 67, s.Percent) // 2/3 rounds to 67
	assert.Equal(t, 1, s.FirstIncompletePhase)
}

func TestSummarizeComplete(t *testing.T) {
	s := Summarize(testTrack(), CompletedSet([]string{"a", "b", "c"}))

	assert.Equal(t, 3, s.DoneCount)
	assert.Equal(t, 100, s.Percent)
	assert.Equal(t, -1, s.FirstIncompletePhase)
}

func TestSummarizeIgnoresStaleIDs(t *testing.T) {
	// Ids left over from a previous track do not inflate the count.
	s := Summarize(testTrack(), CompletedSet([]string{"a", "old-topic", "another-old"}))

	assert.Equal(t, 1, s.DoneCount)
	assert.Equal(t, 3, s.TotalTopics)
}

func TestSummarizeRealTrackInvariant(t *testing.T) {
	track, ok := Get("fs-devops")
	require.True(t, ok)

	all := track.AllTopics()
	ids := make([]string, len(all))
	for i, topic := range all {
		ids[i] = topic.ID
	}

	s := Summarize(track, CompletedSet(ids))
	assert.Equal(t, len(all), s.TotalTopics)
	assert.Equal(t, len(all), s.DoneCount)
	assert.Equal(t, 100, s.Percent)
	assert.Equal(t, -1, s.FirstIncompletePhase)
}
