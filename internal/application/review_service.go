package application

import (
	"context"
	"time"

	"github.com/revu-dev/revu/internal/domain"
	"github.com/revu-dev/revu/internal/domain/rules"
)

var successIssue = domain.Issue{
	Type:    domain.IssueSuccess,
	Title:   "analysis complete",
	Message: "code meets best practices",
}

// ReviewService orchestrates a review:
// wait (emulated network latency) -> input check -> rule battery -> response.
type ReviewService struct {
	engine *rules.Engine
	delay  time.Duration
}

// NewReviewService builds a service from configuration.
func NewReviewService(cfg domain.Config) *ReviewService {
	return NewReviewServiceWithEngine(rules.NewEngine(rules.Options{
		AnalysisTime: cfg.Delay(),
		RulesChecked: cfg.RulesChecked,
	}), cfg.Delay())
}

// NewReviewServiceWithEngine builds a service around an existing engine.
func NewReviewServiceWithEngine(engine *rules.Engine, delay time.Duration) *ReviewService {
	return &ReviewService{engine: engine, delay: delay}
}

// Review analyzes source and always returns a result with at least one issue.
// Blank input yields a single error issue; a clean run yields a single
// success issue. Cancelling ctx only shortens the artificial delay.
func (s *ReviewService) Review(ctx context.Context, source string) *domain.AnalysisResult {
	s.wait(ctx)

	if issue, ok := s.engine.CheckInput(source); ok {
		return s.engine.Respond([]domain.Issue{issue})
	}

	issues := s.engine.Analyze(source)
	if len(issues) == 0 {
		issues = append(issues, successIssue)
	}
	return s.engine.Respond(issues)
}

// Envelope reviews source and wraps the result for chat-completion callers.
func (s *ReviewService) Envelope(ctx context.Context, source string) (*domain.ChatEnvelope, error) {
	return domain.NewChatEnvelope(s.Review(ctx, source))
}

func (s *ReviewService) wait(ctx context.Context) {
	if s.delay <= 0 {
		return
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// LocalReviewer adapts ReviewService to domain.Reviewer.
type LocalReviewer struct {
	Service *ReviewService
}

func (r LocalReviewer) Review(ctx context.Context, source string) (*domain.AnalysisResult, error) {
	return r.Service.Review(ctx, source), nil
}
