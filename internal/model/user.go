package model

// User is a learner profile. StreakCount and LastActiveDate back the
// consecutive-day streak; LastActiveDate is a YYYY-MM-DD string in IST
// and stays empty until the first topic completion.
// swagger:model User
type User struct {
	BaseModel
	Name           string `gorm:"size:100;not null" json:"name"`
	Email          string `gorm:"size:100;unique;not null" json:"email"`
	Password       string `gorm:"size:100;not null" json:"-"`
	SelectedTrack  string `gorm:"size:40;default:''" json:"selectedTrack"`
	StreakCount    int    `gorm:"default:0" json:"streakCount"`
	LastActiveDate string `gorm:"size:10;default:''" json:"lastActiveDate"`
	Onboarded      bool   `gorm:"default:false" json:"onboarded"`
}

func (User) TableName() string {
	return "users"
}
