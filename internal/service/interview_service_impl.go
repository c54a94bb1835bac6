package service

import (
	"context"
	"time"

	"github.com/calebmorris/fitplan/internal/domain"
	"github.com/calebmorris/fitplan/internal/interview"
	"github.com/calebmorris/fitplan/internal/repository"
	"github.com/google/uuid"
)

type interviewService struct {
	questions repository.QuestionRepo
	responses repository.ResponseRepo
}

func NewInterviewService(questions repository.QuestionRepo, responses repository.ResponseRepo) InterviewService {
	return &interviewService{questions: questions, responses: responses}
}

func (s *interviewService) SubmitResponse(ctx context.Context, userID string, answers map[string]any) (*domain.InterviewResponse, error) {
	registry, err := s.questions.ListEnabled(ctx)
	if err != nil {
		return nil, err
	}

	// Validation failures never reach storage.
	if fieldErrs := interview.ValidateAnswers(registry, answers); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	resp := &domain.InterviewResponse{
		ID:          uuid.New().String(),
		UserID:      userID,
		SubmittedAt: time.Now().UTC(),
		Answers:     answers,
	}
	if err := s.responses.Create(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *interviewService) GetResponse(ctx context.Context, id string) (*domain.InterviewResponse, error) {
	return s.responses.GetByID(ctx, id)
}

func (s *interviewService) ListResponses(ctx context.Context, userID string) ([]*domain.InterviewResponse, error) {
	return s.responses.ListByUser(ctx, userID)
}
