package model

import "time"

// Response is one complete survey submission (not an HTTP response).
// Its ResponseAnswer rows are written together in one transaction and
// never mutated afterwards.
type Response struct {
	UUIDBase
	SessionID string           `gorm:"size:64;index" json:"session_id,omitempty"`
	Answers   []ResponseAnswer `gorm:"foreignKey:ResponseID" json:"answers,omitempty"`
}

func (Response) TableName() string {
	return "responses"
}

// ResponseAnswer records one selected answer within one submission.
// The composite unique index enforces at most one answer per question
// per response.
type ResponseAnswer struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ResponseID string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_response_question,priority:1" json:"response_id"`
	QuestionID uint      `gorm:"not null;uniqueIndex:idx_response_question,priority:2" json:"question_id"`
	AnswerID   uint      `gorm:"not null;index" json:"answer_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (ResponseAnswer) TableName() string {
	return "response_answers"
}
