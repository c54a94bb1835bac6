package service

import (
	"context"
	"fmt"
	"time"

	"github.com/calebmorris/fitplan/internal/domain"
	"github.com/calebmorris/fitplan/internal/repository"
)

const (
	monthLayout = "2006-01"
	dayLayout   = "2006-01-02"
)

type calendarService struct {
	sessions repository.SessionRepo
}

func NewCalendarService(sessions repository.SessionRepo) CalendarService {
	return &calendarService{sessions: sessions}
}

func (s *calendarService) GetCalendar(ctx context.Context, userID, month string) ([]CalendarDay, error) {
	first, err := time.Parse(monthLayout, month)
	if err != nil {
		return nil, fmt.Errorf("month: invalid format %q (expected YYYY-MM)", month)
	}

	counts, err := s.sessions.CountByDayInMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]int, len(counts))
	for _, dc := range counts {
		byDay[dc.Date] = dc.Count
	}

	daysInMonth := first.AddDate(0, 1, -1).Day()
	days := make([]CalendarDay, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC).Format(dayLayout)
		days = append(days, CalendarDay{Date: date, Count: byDay[date]})
	}
	return days, nil
}

func (s *calendarService) GetDay(ctx context.Context, userID, day string) ([]*domain.WorkoutSession, error) {
	if _, err := time.Parse(dayLayout, day); err != nil {
		return nil, fmt.Errorf("date: invalid format %q (expected YYYY-MM-DD)", day)
	}
	return s.sessions.ListByUserOnDay(ctx, userID, day)
}
