package database

import (
	"counter_backend/internal/model"

	"gorm.io/gorm"
)

type seedQuestion struct {
	text    string
	answers []seedAnswer
}

type seedAnswer struct {
	text  string
	value string
}

var sampleSurvey = []seedQuestion{
	{
		text: "What is your favorite programming language?",
		answers: []seedAnswer{
			{"Python", "python"},
			{"JavaScript", "javascript"},
			{"Java", "java"},
			{"C++", "cpp"},
		},
	},
	{
		text: "How many years of programming experience do you have?",
		answers: []seedAnswer{
			{"Less than 1 year", "0-1"},
			{"1-3 years", "1-3"},
			{"3-5 years", "3-5"},
			{"5+ years", "5+"},
		},
	},
	{
		text: "What type of projects do you enjoy working on?",
		answers: []seedAnswer{
			{"Web Development", "web"},
			{"Mobile Apps", "mobile"},
			{"Data Science", "data"},
			{"Game Development", "game"},
		},
	},
	{
		text: "How do you prefer to learn new technologies?",
		answers: []seedAnswer{
			{"Online Courses", "courses"},
			{"Documentation", "docs"},
			{"Tutorial Videos", "videos"},
			{"Hands-on Projects", "projects"},
		},
	},
	{
		text: "What motivates you most in your work?",
		answers: []seedAnswer{
			{"Solving Problems", "problems"},
			{"Building Products", "products"},
			{"Learning New Things", "learning"},
			{"Helping Others", "helping"},
		},
	},
}

// SeedSampleSurvey inserts the demo questions and answers used by the
// mobile app. It is a no-op when any question already exists, so it is
// safe to run on every start.
func SeedSampleSurvey(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i, sq := range sampleSurvey {
			q := &model.Question{Text: sq.text, Order: i}
			if err := tx.Create(q).Error; err != nil {
				return err
			}
			for j, sa := range sq.answers {
				a := &model.Answer{
					QuestionID: q.ID,
					Text:       sa.text,
					Value:      sa.value,
					Order:      j,
				}
				if err := tx.Create(a).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
