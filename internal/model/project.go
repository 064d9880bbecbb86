package model

type ProjectStatus string

const (
	StatusNotStarted ProjectStatus = "not-started"
	StatusInProgress ProjectStatus = "in-progress"
	StatusDone       ProjectStatus = "done"
)

// ValidStatus reports whether s is one of the three project states.
func ValidStatus(s ProjectStatus) bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Project is one row of the private weekly project log. Week numbers
// are learner-assigned and not required to be unique.
// swagger:model Project
type Project struct {
	BaseModel
	UserID      uint          `gorm:"index;not null" json:"userId"`
	TrackID     string        `gorm:"size:40;index;not null" json:"trackId"`
	WeekNumber  int           `gorm:"not null" json:"weekNumber"`
	Title       string        `gorm:"size:255;default:''" json:"title"`
	Status      ProjectStatus `gorm:"type:enum('not-started','in-progress','done');default:'not-started'" json:"status"`
	LinkedinURL string        `gorm:"size:512;default:''" json:"linkedinUrl"`
}

func (Project) TableName() string {
	return "projects"
}
