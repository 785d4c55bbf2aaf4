package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pageza/mealprep/backend/internal/daterange"
	"github.com/pageza/mealprep/backend/internal/mocks"
	"github.com/pageza/mealprep/backend/internal/models"
	"github.com/pageza/mealprep/backend/internal/service"
	"github.com/pageza/mealprep/backend/internal/shopping"
	"github.com/pageza/mealprep/backend/internal/testhelpers"
)

func TestShoppingListEndToEnd(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	user := testhelpers.CreateUser(t, db, "cook@example.com")
	pasta := testhelpers.CreateMeal(t, db, user.ID, "Pasta",
		testhelpers.Item{Name: "Tomato", Quantity: "2"},
		testhelpers.Item{Name: "Onion", Quantity: "1"},
	)
	salad := testhelpers.CreateMeal(t, db, user.ID, "Salad",
		testhelpers.Item{Name: "Tomato", Quantity: "3"},
		testhelpers.Item{Name: "Lettuce", Quantity: "1 head"},
	)
	testhelpers.CreatePlan(t, db, user.ID, pasta.ID, "2025-06-01")
	testhelpers.CreatePlan(t, db, user.ID, salad.ID, "2025-06-03")
	testhelpers.CreatePlan(t, db, user.ID, salad.ID, "2025-06-10")

	svc := service.NewShoppingService(service.NewPlanService(db, zap.NewNop()), zap.NewNop())

	list, err := svc.GetShoppingList(context.Background(), user.ID, "2025-06-01", "2025-06-03")
	require.NoError(t, err)

	assert.Equal(t, &daterange.Predicate{Start: "2025-06-01", End: "2025-06-03", Mode: daterange.ModeRange}, list.Range)
	assert.Equal(t, []shopping.Line{
		{Name: "Tomato", Quantity: "2, 3"},
		{Name: "Onion", Quantity: "1"},
		{Name: "Lettuce", Quantity: "1 head"},
	}, list.Items)
	assert.Zero(t, list.Skipped)

	// Nothing is planned on the 2nd.
	list, err = svc.GetShoppingList(context.Background(), user.ID, "2025-06-02", "2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, &daterange.Predicate{Start: "2025-06-02", End: "2025-06-02", Mode: daterange.ModeExact}, list.Range)
	require.NotNil(t, list.Items)
	assert.Equal(t, []shopping.Line{}, list.Items)

	list, err = svc.GetShoppingList(context.Background(), user.ID, "2025-06-03", "2025-06-03")
	require.NoError(t, err)
	assert.Equal(t, daterange.ModeExact, list.Range.Mode)
	assert.Equal(t, []shopping.Line{
		{Name: "Tomato", Quantity: "3"},
		{Name: "Lettuce", Quantity: "1 head"},
	}, list.Items)
}

func TestShoppingListMissingEndpointSkipsLoader(t *testing.T) {
	loader := new(mocks.MockPlanLoader)
	svc := service.NewShoppingService(loader, zap.NewNop())

	list, err := svc.GetShoppingList(context.Background(), uuid.New(), "2025-06-01", "")
	require.NoError(t, err)
	assert.Nil(t, list.Range)
	assert.NotNil(t, list.Items)
	assert.Empty(t, list.Items)
	loader.AssertNotCalled(t, "LoadPlans", mock.Anything, mock.Anything, mock.Anything)
}

func TestShoppingListInvalidDate(t *testing.T) {
	loader := new(mocks.MockPlanLoader)
	svc := service.NewShoppingService(loader, zap.NewNop())

	_, err := svc.GetShoppingList(context.Background(), uuid.New(), "2025-13-01", "2025-06-02")
	assert.ErrorIs(t, err, daterange.ErrInvalidDateInput)
	loader.AssertNotCalled(t, "LoadPlans", mock.Anything, mock.Anything, mock.Anything)
}

func TestShoppingListLogsSkippedLines(t *testing.T) {
	userID := uuid.New()
	quantity := "2"
	plans := []models.MealPlan{{
		UserID:      userID,
		PlannedDate: "2025-06-01",
		Meal: &models.Meal{
			Name: "Pasta",
			Ingredients: []models.MealIngredient{
				{Quantity: &quantity, Ingredient: &models.Ingredient{Name: "Tomato"}},
				{Quantity: nil, Ingredient: &models.Ingredient{Name: "Salt"}},
			},
		},
	}}
	rng := daterange.Predicate{Start: "2025-06-01", End: "2025-06-01", Mode: daterange.ModeExact}

	loader := new(mocks.MockPlanLoader)
	loader.On("LoadPlans", mock.Anything, userID, rng).Return(plans, nil)

	core, logs := observer.New(zapcore.WarnLevel)
	svc := service.NewShoppingService(loader, zap.New(core))

	list, err := svc.GetShoppingList(context.Background(), userID, "2025-06-01", "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, []shopping.Line{{Name: "Tomato", Quantity: "2"}}, list.Items)
	assert.Equal(t, 1, list.Skipped)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, int64(1), entry.ContextMap()["skipped"])
	assert.Equal(t, userID.String(), entry.ContextMap()["user_id"])
	loader.AssertExpectations(t)
}

func TestShoppingListLoaderError(t *testing.T) {
	loader := new(mocks.MockPlanLoader)
	loader.On("LoadPlans", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
	svc := service.NewShoppingService(loader, zap.NewNop())

	_, err := svc.GetShoppingList(context.Background(), uuid.New(), "2025-06-01", "2025-06-07")
	assert.EqualError(t, err, "db down")
}
