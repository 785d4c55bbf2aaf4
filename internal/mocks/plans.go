package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/mealprep/backend/internal/daterange"
	"github.com/pageza/mealprep/backend/internal/models"
)

// MockPlanLoader is a mock implementation of the PlanLoader interface
type MockPlanLoader struct {
	mock.Mock
}

func (m *MockPlanLoader) LoadPlans(ctx context.Context, userID uuid.UUID, rng daterange.Predicate) ([]models.MealPlan, error) {
	args := m.Called(ctx, userID, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MealPlan), args.Error(1)
}
