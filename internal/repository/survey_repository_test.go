package repository

import (
	"testing"

	"counter_backend/internal/model"
)

func TestListQuestionsOrdering(t *testing.T) {
	repo := NewSurveyRepository(setupTestDB(t))

	// Seed out of presentation order so sorting has to do the work.
	second := &model.Question{Text: "Second", Order: 1}
	first := &model.Question{Text: "First", Order: 0}
	third := &model.Question{Text: "Third", Order: 2}
	for _, q := range []*model.Question{second, third, first} {
		if err := repo.CreateQuestion(q); err != nil {
			t.Fatalf("create question failed: %v", err)
		}
	}

	answers := []*model.Answer{
		{QuestionID: first.ID, Text: "B", Value: "b", Order: 1},
		{QuestionID: first.ID, Text: "A", Value: "a", Order: 0},
		{QuestionID: second.ID, Text: "C", Value: "c", Order: 0},
	}
	for _, a := range answers {
		if err := repo.CreateAnswer(a); err != nil {
			t.Fatalf("create answer failed: %v", err)
		}
	}

	qs, err := repo.ListQuestions()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(qs))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if qs[i].Text != want {
			t.Fatalf("question %d: expected %q, got %q", i, want, qs[i].Text)
		}
	}
	if qs[0].Answers[0].Value != "a" || qs[0].Answers[1].Value != "b" {
		t.Fatalf("answers not ordered: %+v", qs[0].Answers)
	}
}

func TestCreateResponseRollsBackOnDuplicateQuestion(t *testing.T) {
	repo := NewSurveyRepository(setupTestDB(t))

	q := &model.Question{Text: "Q", Order: 0}
	if err := repo.CreateQuestion(q); err != nil {
		t.Fatalf("create question failed: %v", err)
	}
	a := &model.Answer{QuestionID: q.ID, Text: "A", Value: "a", Order: 0}
	if err := repo.CreateAnswer(a); err != nil {
		t.Fatalf("create answer failed: %v", err)
	}

	// Two rows for the same question violate the composite unique index;
	// the whole submission must roll back.
	resp := &model.Response{}
	rows := []model.ResponseAnswer{
		{QuestionID: q.ID, AnswerID: a.ID},
		{QuestionID: q.ID, AnswerID: a.ID},
	}
	if err := repo.CreateResponse(resp, rows); err == nil {
		t.Fatal("expected unique index violation")
	}

	var responses, responseAnswers int64
	repo.DB.Model(&model.Response{}).Count(&responses)
	repo.DB.Model(&model.ResponseAnswer{}).Count(&responseAnswers)
	if responses != 0 || responseAnswers != 0 {
		t.Fatalf("partial write visible: %d responses, %d answers", responses, responseAnswers)
	}
}

func TestCreateAndFindResponse(t *testing.T) {
	repo := NewSurveyRepository(setupTestDB(t))

	q := &model.Question{Text: "Q", Order: 0}
	if err := repo.CreateQuestion(q); err != nil {
		t.Fatalf("create question failed: %v", err)
	}
	a := &model.Answer{QuestionID: q.ID, Text: "A", Value: "a", Order: 0}
	if err := repo.CreateAnswer(a); err != nil {
		t.Fatalf("create answer failed: %v", err)
	}

	resp := &model.Response{SessionID: "session-1"}
	rows := []model.ResponseAnswer{{QuestionID: q.ID, AnswerID: a.ID}}
	if err := repo.CreateResponse(resp, rows); err != nil {
		t.Fatalf("create response failed: %v", err)
	}
	if resp.ID == "" {
		t.Fatal("expected a generated response id")
	}

	found, err := repo.FindResponseByID(resp.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.SessionID != "session-1" {
		t.Fatalf("expected session id to persist, got %q", found.SessionID)
	}
	if len(found.Answers) != 1 || found.Answers[0].AnswerID != a.ID {
		t.Fatalf("unexpected answers: %+v", found.Answers)
	}
}

func TestDeleteQuestionCascades(t *testing.T) {
	repo := NewSurveyRepository(setupTestDB(t))

	q := &model.Question{Text: "Q", Order: 0}
	if err := repo.CreateQuestion(q); err != nil {
		t.Fatalf("create question failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		a := &model.Answer{QuestionID: q.ID, Text: "A", Value: "a", Order: i}
		if err := repo.CreateAnswer(a); err != nil {
			t.Fatalf("create answer failed: %v", err)
		}
	}

	if err := repo.DeleteQuestion(q.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var answers int64
	repo.DB.Model(&model.Answer{}).Where("question_id = ?", q.ID).Count(&answers)
	if answers != 0 {
		t.Fatalf("expected owned answers to be deleted, %d remain", answers)
	}
}
