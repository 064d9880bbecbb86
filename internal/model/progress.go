package model

// TopicCompletion marks a topic as done for a user. Membership only;
// topic ids from a previously selected track may linger and are
// ignored by the aggregator.
// swagger:model TopicCompletion
type TopicCompletion struct {
	BaseModel
	UserID  uint   `gorm:"index:idx_user_topic,unique;not null" json:"userId"`
	TopicID string `gorm:"size:64;index:idx_user_topic,unique;not null" json:"topicId"`
}

func (TopicCompletion) TableName() string {
	return "progress"
}
