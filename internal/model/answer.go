package model

// Answer is one choice belonging to a question. Value is the stable token
// recorded for tallying, independent of the display text. Answers are
// owned by their question: deleting a question deletes its answers (see
// SurveyRepository.DeleteQuestion).
type Answer struct {
	BaseModel
	QuestionID uint   `gorm:"index;not null" json:"question_id"`
	Text       string `gorm:"type:text;not null" json:"text"`
	Value      string `gorm:"size:100;not null" json:"value"`
	Order      int    `gorm:"default:0" json:"order"`
}

func (Answer) TableName() string {
	return "answers"
}
