package repository

import (
	"counter_backend/internal/model"

	"gorm.io/gorm"
)

type SurveyRepository struct {
	DB *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{DB: db}
}

// ListQuestions returns all questions with their answers preloaded,
// both levels ordered by `order` ascending with id as the stable tie
// break.
func (r *SurveyRepository) ListQuestions() ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Preload("Answers", func(db *gorm.DB) *gorm.DB {
		return db.Order("`order` asc, id asc")
	}).Order("`order` asc, id asc").Find(&qs).Error
	return qs, err
}

func (r *SurveyRepository) CountQuestionsByIDs(ids []uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *SurveyRepository) FindQuestionsByIDs(ids []uint) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("id IN ?", ids).Find(&qs).Error
	return qs, err
}

func (r *SurveyRepository) FindAnswersByIDs(ids []uint) ([]model.Answer, error) {
	var as []model.Answer
	err := r.DB.Where("id IN ?", ids).Find(&as).Error
	return as, err
}

// CreateResponse persists one submission: the response row plus one
// answer row per pair, all in a single transaction. If any row fails,
// nothing becomes visible.
func (r *SurveyRepository) CreateResponse(resp *model.Response, answers []model.ResponseAnswer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Answers").Create(resp).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].ResponseID = resp.ID
			if err := tx.Create(&answers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SurveyRepository) FindResponseByID(id string) (*model.Response, error) {
	var resp model.Response
	err := r.DB.Preload("Answers").First(&resp, "id = ?", id).Error
	return &resp, err
}

func (r *SurveyRepository) CountResponseAnswers() (int64, error) {
	var count int64
	err := r.DB.Model(&model.ResponseAnswer{}).Count(&count).Error
	return count, err
}

func (r *SurveyRepository) CreateQuestion(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *SurveyRepository) CreateAnswer(a *model.Answer) error {
	return r.DB.Create(a).Error
}

// DeleteQuestion removes a question and, because the question owns its
// answers, every answer belonging to it.
func (r *SurveyRepository) DeleteQuestion(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, id).Error
	})
}

// DeleteResponse removes a submission and its answer rows.
func (r *SurveyRepository) DeleteResponse(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("response_id = ?", id).Delete(&model.ResponseAnswer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Response{}, "id = ?", id).Error
	})
}
