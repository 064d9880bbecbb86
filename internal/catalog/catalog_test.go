package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryTrackSharesTheCore(t *testing.T) {
	core, ok := Get("fs-core")
	require.True(t, ok)

	for _, id := range []string{"fs-ai", "fs-ds", "fs-analytics", "fs-devops"} {
		track, ok := Get(id)
		require.True(t, ok, id)
		require.Greater(t, len(track.Phases), len(core.Phases), id)

		// Core phases come first and are identical across tracks.
		for i, phase := range core.Phases {
			assert.Equal(t, phase.Title, track.Phases[i].Title, id)
			assert.Len(t, track.Phases[i].Topics, len(phase.Topics), id)
		}
	}
}

func TestCoreTrackHasNoSpecialization(t *testing.T) {
	core, ok := Get("fs-core")
	require.True(t, ok)

	specialized, ok := Get("fs-ai")
	require.True(t, ok)
	assert.Len(t, specialized.Phases, len(core.Phases)+1)
}

func TestGetUnknownTrack(t *testing.T) {
	_, ok := Get("fs-blockchain")
	assert.False(t, ok)
}

func TestOptionsOrder(t *testing.T) {
	opts := Options()
	require.Len(t, opts, 5)

	ids := make([]string, len(opts))
	for i, o := range opts {
		ids[i] = o.ID
	}
	assert.Equal(t, []string{"fs-core", "fs-ai", "fs-ds", "fs-analytics", "fs-devops"}, ids)
}

func TestHasTopic(t *testing.T) {
	core, ok := Get("fs-core")
	require.True(t, ok)

	assert.True(t, core.HasTopic("html-fundamentals"))
	assert.False(t, core.HasTopic("no-such-topic"))
}

func TestSpecializationTopicsStayInTheirTrack(t *testing.T) {
	ai, ok := Get("fs-ai")
	require.True(t, ok)
	core, ok := Get("fs-core")
	require.True(t, ok)

	aiOnly := ai.Phases[len(ai.Phases)-1].Topics
	require.NotEmpty(t, aiOnly)
	for _, topic := range aiOnly {
		assert.False(t, core.HasTopic(topic.ID), topic.ID)
	}
}

func TestAllTopicsFlattensEveryPhase(t *testing.T) {
	track, ok := Get("fs-ds")
	require.True(t, ok)

	total := 0
	for _, p := range track.Phases {
		total += len(p.Topics)
	}
	assert.Len(t, track.AllTopics(), total)
}

func TestProjectIdeas(t *testing.T) {
	assert.NotEmpty(t, ProjectIdeas("fs-core"))
	assert.NotEmpty(t, ProjectIdeas("fs-ai"))
	assert.Empty(t, ProjectIdeas("unknown"))
}
