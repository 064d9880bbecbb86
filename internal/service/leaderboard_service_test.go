package service

import (
	"fmt"
	"stepup_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sub(userID uint, name string) model.GallerySubmission {
	return model.GallerySubmission{UserID: userID, UserName: name}
}

func TestRankEmpty(t *testing.T) {
	assert.Empty(t, Rank(nil))
}

func TestRankCountsAndOrders(t *testing.T) {
	entries := Rank([]model.GallerySubmission{
		sub(1, "Asha"),
		sub(2, "Ravi"),
		sub(2, "Ravi"),
		sub(2, "Ravi"),
		sub(1, "Asha"),
		sub(3, "Meera"),
	})

	require.Len(t, entries, 3)
	assert.Equal(t, LeaderboardEntry{Rank: 1, UserID: 2, UserName: "Ravi", Count: 3}, entries[0])
	assert.Equal(t, LeaderboardEntry{Rank: 2, UserID: 1, UserName: "Asha", Count: 2}, entries[1])
	assert.Equal(t, LeaderboardEntry{Rank: 3, UserID: 3, UserName: "Meera", Count: 1}, entries[2])
}

func TestRankTiesKeepFirstSubmissionOrder(t *testing.T) {
	entries := Rank([]model.GallerySubmission{
		sub(10, "First"),
		sub(20, "Second"),
		sub(30, "Third"),
	})

	require.Len(t, entries, 3)
	assert.Equal(t, uint(10), entries[0].UserID)
	assert.Equal(t, uint(20), entries[1].UserID)
	assert.Equal(t, uint(30), entries[2].UserID)
}

func TestRankTruncatesToTopFifty(t *testing.T) {
	var submissions []model.GallerySubmission
	for i := 1; i <= 60; i++ {
		submissions = append(submissions, sub(uint(i), fmt.Sprintf("user-%d", i)))
	}

	entries := Rank(submissions)
	require.Len(t, entries, 50)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 50, entries[49].Rank)
}

func TestRankCountSumMatchesSubmissions(t *testing.T) {
	submissions := []model.GallerySubmission{
		sub(1, "a"), sub(1, "a"), sub(2, "b"), sub(3, "c"), sub(3, "c"), sub(3, "c"),
	}

	total := 0
	for _, e := range Rank(submissions) {
		total += e.Count
	}
	assert.Equal(t, len(submissions), total)
}
