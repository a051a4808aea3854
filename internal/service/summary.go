package service

import (
	"counter_backend/internal/model"
	"fmt"
)

type AnswerDetail struct {
	QuestionText string `json:"question_text"`
	AnswerText   string `json:"answer_text"`
	Value        string `json:"value"`
}

type SurveyResults struct {
	TotalQuestions int            `json:"total_questions"`
	Answers        []AnswerDetail `json:"answers"`
	AnswerCounts   map[string]int `json:"answer_counts,omitempty"`
	Summary        string         `json:"summary"`
}

// Summarize builds the result payload for one submission: the answer
// details in submission order and a frequency tally of answer values.
// Duplicate values across different questions share a bucket.
func Summarize(pairs []ResponsePair, questions map[uint]model.Question, answers map[uint]model.Answer) SurveyResults {
	details := make([]AnswerDetail, len(pairs))
	counts := make(map[string]int)
	for i, pair := range pairs {
		answer := answers[pair.AnswerID]
		details[i] = AnswerDetail{
			QuestionText: questions[pair.QuestionID].Text,
			AnswerText:   answer.Text,
			Value:        answer.Value,
		}
		counts[answer.Value]++
	}

	return SurveyResults{
		TotalQuestions: len(pairs),
		Answers:        details,
		AnswerCounts:   counts,
		Summary:        fmt.Sprintf("You answered %d questions.", len(pairs)),
	}
}
