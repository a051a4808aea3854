package service

import (
	"counter_backend/internal/config"
	"counter_backend/internal/model"
	"counter_backend/internal/repository"
	"counter_backend/internal/util"
	"counter_backend/pkg/monitoring"
	"sync/atomic"
)

type SurveyService struct {
	Repo *repository.SurveyRepository

	includeAnswerCounts atomic.Bool
}

func NewSurveyService(repo *repository.SurveyRepository, cfg *config.Config) *SurveyService {
	s := &SurveyService{Repo: repo}
	s.includeAnswerCounts.Store(cfg.Survey.IncludeAnswerCounts)
	return s
}

// UpdateConfig applies runtime-tunable settings. Called by the config
// watcher on reload.
func (s *SurveyService) UpdateConfig(cfg *config.Config) {
	s.includeAnswerCounts.Store(cfg.Survey.IncludeAnswerCounts)
}

type AnswerView struct {
	ID    uint   `json:"id"`
	Text  string `json:"text"`
	Value string `json:"value"`
	Order int    `json:"order"`
}

type QuestionView struct {
	ID      uint         `json:"id"`
	Text    string       `json:"text"`
	Order   int          `json:"order"`
	Answers []AnswerView `json:"answers"`
}

type QuestionList struct {
	Questions []QuestionView `json:"questions"`
	Total     int            `json:"total"`
}

// ListQuestions returns all questions with their answer choices, both
// levels in presentation order. An empty survey is a valid result.
func (s *SurveyService) ListQuestions() (*QuestionList, error) {
	qs, err := s.Repo.ListQuestions()
	if err != nil {
		return nil, err
	}

	questions := make([]QuestionView, len(qs))
	for i, q := range qs {
		answers := make([]AnswerView, len(q.Answers))
		for j, a := range q.Answers {
			answers[j] = AnswerView{
				ID:    a.ID,
				Text:  a.Text,
				Value: a.Value,
				Order: a.Order,
			}
		}
		questions[i] = QuestionView{
			ID:      q.ID,
			Text:    q.Text,
			Order:   q.Order,
			Answers: answers,
		}
	}

	return &QuestionList{Questions: questions, Total: len(questions)}, nil
}

type ResponsePair struct {
	QuestionID uint `json:"question_id"`
	AnswerID   uint `json:"answer_id"`
}

type SubmitRequest struct {
	Responses []ResponsePair `json:"responses"`
	SessionID string         `json:"session_id"`
}

type SubmitResult struct {
	ResponseID string
	Results    SurveyResults
}

// Submit validates a batch of question/answer selections and persists
// them as one response. All validation happens before any write; a
// failed pair leaves nothing behind.
func (s *SurveyService) Submit(req SubmitRequest) (*SubmitResult, error) {
	if len(req.Responses) == 0 {
		return nil, util.ErrNoResponses
	}

	questionIDs := make([]uint, 0, len(req.Responses))
	answerIDs := make([]uint, 0, len(req.Responses))
	seenQuestions := make(map[uint]bool, len(req.Responses))
	seenAnswers := make(map[uint]bool, len(req.Responses))
	for _, pair := range req.Responses {
		// A repeated question id would slip past the count check below
		// and then trip the (response, question) unique index mid
		// transaction, so reject it up front.
		if seenQuestions[pair.QuestionID] {
			return nil, util.ErrDuplicateQuestionID
		}
		seenQuestions[pair.QuestionID] = true
		questionIDs = append(questionIDs, pair.QuestionID)

		if !seenAnswers[pair.AnswerID] {
			seenAnswers[pair.AnswerID] = true
			answerIDs = append(answerIDs, pair.AnswerID)
		}
	}

	matched, err := s.Repo.CountQuestionsByIDs(questionIDs)
	if err != nil {
		return nil, err
	}
	if matched != int64(len(questionIDs)) {
		return nil, util.ErrInvalidQuestionID
	}

	answers, err := s.Repo.FindAnswersByIDs(answerIDs)
	if err != nil {
		return nil, err
	}
	if len(answers) != len(answerIDs) {
		return nil, util.ErrInvalidAnswerID
	}

	answersByID := make(map[uint]model.Answer, len(answers))
	for _, a := range answers {
		answersByID[a.ID] = a
	}
	for _, pair := range req.Responses {
		if answersByID[pair.AnswerID].QuestionID != pair.QuestionID {
			return nil, util.ErrAnswerMismatch
		}
	}

	questions, err := s.Repo.FindQuestionsByIDs(questionIDs)
	if err != nil {
		return nil, err
	}
	questionsByID := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		questionsByID[q.ID] = q
	}

	resp := &model.Response{SessionID: req.SessionID}
	rows := make([]model.ResponseAnswer, len(req.Responses))
	for i, pair := range req.Responses {
		rows[i] = model.ResponseAnswer{
			QuestionID: pair.QuestionID,
			AnswerID:   pair.AnswerID,
		}
	}
	if err := s.Repo.CreateResponse(resp, rows); err != nil {
		monitoring.SurveySubmissions.WithLabelValues("error").Inc()
		return nil, err
	}
	monitoring.SurveySubmissions.WithLabelValues("ok").Inc()

	results := Summarize(req.Responses, questionsByID, answersByID)
	if !s.includeAnswerCounts.Load() {
		results.AnswerCounts = nil
	}

	return &SubmitResult{ResponseID: resp.ID, Results: results}, nil
}
