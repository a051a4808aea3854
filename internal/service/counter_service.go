package service

import (
	"counter_backend/internal/repository"
	"counter_backend/pkg/monitoring"
	"time"
)

type CounterService struct {
	Repo *repository.CounterRepository
}

func NewCounterService(repo *repository.CounterRepository) *CounterService {
	return &CounterService{Repo: repo}
}

// CounterState is the externally visible shape of the click counter.
type CounterState struct {
	Count     int64     `json:"count"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *CounterService) Get() (*CounterState, error) {
	counter, err := s.Repo.Get()
	if err != nil {
		return nil, err
	}
	return &CounterState{Count: counter.Count, UpdatedAt: counter.UpdatedAt}, nil
}

func (s *CounterService) Increment() (*CounterState, error) {
	counter, err := s.Repo.Increment()
	if err != nil {
		return nil, err
	}
	monitoring.CounterClicks.Inc()
	return &CounterState{Count: counter.Count, UpdatedAt: counter.UpdatedAt}, nil
}

func (s *CounterService) Reset() (*CounterState, error) {
	counter, err := s.Repo.Reset()
	if err != nil {
		return nil, err
	}
	return &CounterState{Count: counter.Count, UpdatedAt: counter.UpdatedAt}, nil
}
