package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/mealprep/backend/internal/daterange"
	"github.com/pageza/mealprep/backend/internal/shopping"
)

// ShoppingList is the aggregated list for a range of the calendar. Range is
// nil when the request did not name both endpoints.
type ShoppingList struct {
	Range   *daterange.Predicate `json:"range"`
	Items   []shopping.Line      `json:"items"`
	Skipped int                  `json:"skipped"`
}

type ShoppingService struct {
	plans  PlanLoader
	logger *zap.Logger
}

func NewShoppingService(plans PlanLoader, logger *zap.Logger) *ShoppingService {
	return &ShoppingService{plans: plans, logger: logger}
}

// GetShoppingList resolves from/to, loads the user's entries in that range and
// merges their ingredients into one line per name.
func (s *ShoppingService) GetShoppingList(ctx context.Context, userID uuid.UUID, from, to string) (*ShoppingList, error) {
	rng, err := daterange.Resolve(from, to)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		return &ShoppingList{Items: []shopping.Line{}}, nil
	}

	plans, err := s.plans.LoadPlans(ctx, userID, *rng)
	if err != nil {
		return nil, err
	}

	result := shopping.Aggregate(plans)
	if result.Skipped > 0 {
		s.logger.Warn("skipped ingredient lines without name or quantity",
			zap.String("user_id", userID.String()),
			zap.String("range", rng.String()),
			zap.Int("skipped", result.Skipped),
		)
	}

	return &ShoppingList{
		Range:   rng,
		Items:   result.Lines,
		Skipped: result.Skipped,
	}, nil
}
