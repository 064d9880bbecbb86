package model

// GallerySubmission is a community-visible project entry, distinct
// from the private weekly log. UserName is denormalized at submit time
// so gallery and leaderboard reads need no join.
// swagger:model GallerySubmission
type GallerySubmission struct {
	BaseModel
	UserID      uint   `gorm:"index;not null" json:"userId"`
	UserName    string `gorm:"size:100;not null" json:"userName"`
	TrackID     string `gorm:"size:40;index;not null" json:"trackId"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	DemoURL     string `gorm:"size:512;default:''" json:"demoUrl"`
	GithubURL   string `gorm:"size:512;default:''" json:"githubUrl"`
	LinkedinURL string `gorm:"size:512;default:''" json:"linkedinUrl"`
	ImageURL    string `gorm:"size:512;default:''" json:"imageUrl"`
}

func (GallerySubmission) TableName() string {
	return "gallery_projects"
}
