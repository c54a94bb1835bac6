package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/calebmorris/fitplan/internal/domain"
	"github.com/calebmorris/fitplan/internal/interview"
	"github.com/calebmorris/fitplan/internal/llm"
	"github.com/calebmorris/fitplan/internal/plan"
	"github.com/calebmorris/fitplan/internal/repository"
	"github.com/google/uuid"
)

type planService struct {
	questions repository.QuestionRepo
	responses repository.ResponseRepo
	plans     repository.PlanRepo
	generator llm.Generator
}

func NewPlanService(questions repository.QuestionRepo, responses repository.ResponseRepo, plans repository.PlanRepo, generator llm.Generator) PlanService {
	return &planService{questions: questions, responses: responses, plans: plans, generator: generator}
}

func (s *planService) GeneratePlan(ctx context.Context, responseID string) (*domain.GeneratedPlan, error) {
	resp, err := s.responses.GetByID(ctx, responseID)
	if err != nil {
		return nil, err
	}
	registry, err := s.questions.ListEnabled(ctx)
	if err != nil {
		return nil, err
	}

	derived := interview.Derive(resp.Answers)
	userPrompt := plan.BuildUserPrompt(registry, resp.Answers, derived)

	raw, err := s.generator.Complete(ctx, plan.SystemPrompt, userPrompt)
	if err != nil {
		return nil, fmt.Errorf("generating plan: %w", err)
	}

	extracted, err := llm.ExtractJSONObject(raw)
	if err != nil {
		if errors.Is(err, llm.ErrInvalidOutput) {
			return nil, ErrInvalidJSON
		}
		return nil, err
	}
	candidate := []byte(extracted)
	if !json.Valid(candidate) {
		return nil, ErrInvalidJSON
	}

	// Hard gate: a failing candidate is reported with its violations and
	// never stored.
	if contractErr := plan.ValidateCandidate(candidate); contractErr != nil {
		return nil, contractErr
	}

	generated := &domain.GeneratedPlan{
		ID:         uuid.New().String(),
		UserID:     resp.UserID,
		ResponseID: resp.ID,
		PlanJSON:   json.RawMessage(candidate),
		CreatedAt:  time.Now().UTC(),
	}

	// A caller disconnect must not abandon a plan the generator already
	// produced and validated: the store write runs to completion.
	if err := s.plans.Create(context.WithoutCancel(ctx), generated); err != nil {
		return nil, err
	}
	return generated, nil
}

func (s *planService) GetLatestPlan(ctx context.Context, userID string) (*domain.GeneratedPlan, error) {
	p, err := s.plans.GetLatestByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

func (s *planService) ListPlans(ctx context.Context, userID string) ([]*domain.GeneratedPlan, error) {
	return s.plans.ListByUser(ctx, userID)
}
