package catalog

// Topic is a single checkable item in a phase.
type Topic struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	EstimatedHours float64 `json:"estimatedHours"`
	URL            string  `json:"url,omitempty"`
}

// Phase groups topics with a suggested week range.
type Phase struct {
	PhaseNumber int     `json:"phaseNumber"`
	Title       string  `json:"title"`
	WeekRange   string  `json:"weekRange"`
	Topics      []Topic `json:"topics"`
}

// Track is a curriculum specialization: the shared core phases plus at
// most one appended specialization phase.
type Track struct {
	ID      string  `json:"trackId"`
	Name    string  `json:"trackName"`
	Tagline string  `json:"tagline"`
	Phases  []Phase `json:"phases"`
}

// Option is the compact form used by track pickers.
type Option struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Tagline string `json:"tagline"`
}

// extend composes a specialization track from the shared core. The
// core slice is referenced, never copied per track.
func extend(id, name, tagline string, specialization ...Phase) Track {
	phases := make([]Phase, 0, len(corePhases)+len(specialization))
	phases = append(phases, corePhases...)
	phases = append(phases, specialization...)
	return Track{ID: id, Name: name, Tagline: tagline, Phases: phases}
}

var tracks = map[string]Track{}
var trackOrder = []string{"fs-core", "fs-ai", "fs-ds", "fs-analytics", "fs-devops"}

func init() {
	for _, t := range []Track{
		extend("fs-core", "FS Core", "The foundation every product dev needs"),
		extend("fs-ai", "FS + AI", "Build intelligent products with LLMs", aiPhase),
		extend("fs-ds", "FS + Data Science", "Extract insights, build data products", dsPhase),
		extend("fs-analytics", "FS + Data Analytics", "Make data-driven product decisions", analyticsPhase),
		extend("fs-devops", "FS + DevOps", "Ship fast, ship reliably", devopsPhase),
	} {
		tracks[t.ID] = t
	}
}

// Get returns the track for id, ok=false when the id is unknown.
func Get(id string) (Track, bool) {
	t, ok := tracks[id]
	return t, ok
}

// Options lists all tracks in display order.
func Options() []Option {
	opts := make([]Option, 0, len(trackOrder))
	for _, id := range trackOrder {
		t := tracks[id]
		opts = append(opts, Option{ID: t.ID, Label: t.Name, Tagline: t.Tagline})
	}
	return opts
}

// AllTopics flattens the track's phases in catalog order.
func (t Track) AllTopics() []Topic {
	var all []Topic
	for _, p := range t.Phases {
		all = append(all, p.Topics...)
	}
	return all
}

// HasTopic reports whether id belongs to the track's catalog.
func (t Track) HasTopic(id string) bool {
	for _, p := range t.Phases {
		for _, topic := range p.Topics {
			if topic.ID == id {
				return true
			}
		}
	}
	return false
}

// ProjectIdeas returns the seed idea list for a track, empty for
// unknown ids.
func ProjectIdeas(trackID string) []string {
	return projectIdeas[trackID]
}
