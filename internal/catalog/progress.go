package catalog

import "math"

// Summary is the derived progress view for one track.
type Summary struct {
	TotalTopics int `json:"totalTopics"`
	DoneCount   int `json:"doneCount"`
	Percent     int `json:"percent"`
	// FirstIncompletePhase is the index of the first phase containing at
	// least one incomplete topic, -1 when everything is done.
	FirstIncompletePhase int `json:"firstIncompletePhase"`
}

// Summarize intersects the completed set with the track catalog.
// Completed ids that no longer belong to the track (left over from a
// track switch) are ignored.
func Summarize(t Track, completed map[string]bool) Summary {
	s := Summary{FirstIncompletePhase: -1}

	for i, phase := range t.Phases {
		phaseComplete := true
		for _, topic := range phase.Topics {
			s.TotalTopics++
			if completed[topic.ID] {
				s.DoneCount++
			} else {
				phaseComplete = false
			}
		}
		if !phaseComplete && s.FirstIncompletePhase == -1 {
			s.FirstIncompletePhase = i
		}
	}

	if s.TotalTopics > 0 {
		s.Percent = int(math.Round(float64(s.DoneCount) / float64(s.TotalTopics) * 100))
	}
	return s
}

// CompletedSet converts a slice of topic ids into set form.
func CompletedSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
