package model

// Question is one survey question. Presentation order across the survey
// is Order ascending, id ascending as tie break.
type Question struct {
	BaseModel
	Text    string   `gorm:"type:text;not null" json:"text"`
	Order   int      `gorm:"default:0" json:"order"`
	Answers []Answer `gorm:"foreignKey:QuestionID" json:"answers"`
}

func (Question) TableName() string {
	return "questions"
}
