package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/mealprep/backend/config"
	"github.com/pageza/mealprep/backend/internal/daterange"
	"github.com/pageza/mealprep/backend/internal/database"
	"github.com/pageza/mealprep/backend/internal/logging"
	"github.com/pageza/mealprep/backend/internal/models"
	"github.com/pageza/mealprep/backend/internal/service"
	"github.com/pageza/mealprep/backend/internal/types"
)

// demoMeals are planned on consecutive days starting today.
var demoMeals = []types.MealRequest{
	{
		Name:        "Pasta",
		Description: "Tomato and onion pasta",
		Ingredients: []types.IngredientInput{
			{Name: "Tomato", Quantity: "2"},
			{Name: "Onion", Quantity: "1"},
			{Name: "Spaghetti", Quantity: "200 g"},
		},
	},
	{
		Name:        "Salad",
		Description: "Quick green salad",
		Ingredients: []types.IngredientInput{
			{Name: "Tomato", Quantity: "3"},
			{Name: "Lettuce", Quantity: "1 head"},
			{Name: "Olive oil", Quantity: "2 tbsp"},
		},
	},
	{
		Name: "Omelette",
		Ingredients: []types.IngredientInput{
			{Name: "Egg", Quantity: "3"},
			{Name: "Onion", Quantity: "1/2"},
		},
	},
}

func main() {
	email := flag.String("email", "demo@example.com", "Email of the demo account")
	password := flag.String("password", "demopassword123", "Password of the demo account")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	ctx := context.Background()
	auth := service.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL, logger)
	meals := service.NewMealService(db, logger)
	plans := service.NewPlanService(db, logger)

	user, _, err := auth.Register(ctx, "Demo Cook", *email, *password)
	if errors.Is(err, service.ErrUserExists) {
		logger.Info("demo user already exists, nothing to do", zap.String("email", *email))
		return
	}
	if err != nil {
		logger.Fatal("failed to create demo user", zap.Error(err))
	}

	today := time.Now().UTC()
	for i := range demoMeals {
		meal, err := meals.CreateMeal(ctx, user.ID, &demoMeals[i])
		if err != nil {
			logger.Fatal("failed to create meal", zap.String("meal", demoMeals[i].Name), zap.Error(err))
		}

		day := daterange.Day(today.AddDate(0, 0, i))
		if _, err := plans.CreatePlan(ctx, user.ID, meal.ID, day); err != nil {
			logger.Fatal("failed to plan meal", zap.String("meal", meal.Name), zap.Error(err))
		}
	}

	var count int64
	db.Model(&models.MealPlan{}).Where("user_id = ?", user.ID).Count(&count)
	logger.Info("demo data created",
		zap.String("email", *email),
		zap.Int("meals", len(demoMeals)),
		zap.Int64("plans", count),
	)
}
