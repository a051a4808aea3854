package model

import "time"

// CounterSingletonID is the fixed primary key of the one click counter row.
const CounterSingletonID uint = 1

// ClickCounter holds the button click count. The table is intended to
// contain exactly one row, created lazily on first access.
type ClickCounter struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Count     int64     `gorm:"not null;default:0" json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ClickCounter) TableName() string {
	return "click_counters"
}
