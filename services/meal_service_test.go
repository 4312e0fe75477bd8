package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/purushotham2628/fitness-diet-app/models"
)

func TestMealListToday_ExcludesPastDates(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	user := createTestUser(t, db, "alice", "alice@example.com")

	// Logged without a date: defaults to the server's today.
	todayMeal, err := svc.Create(context.Background(), user.ID, MealInput{
		FoodName: "Oatmeal",
		Quantity: 1,
		MealType: models.MealTypeBreakfast,
		Calories: 500,
		Protein:  30,
		Carbs:    40,
		Fat:      10,
	})
	if err != nil {
		t.Fatalf("create today meal: %v", err)
	}

	// Same meal logged with an explicit past date.
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	if _, err := svc.Create(context.Background(), user.ID, MealInput{
		FoodName: "Oatmeal",
		Quantity: 1,
		MealType: models.MealTypeBreakfast,
		Calories: 500,
		Date:     yesterday,
	}); err != nil {
		t.Fatalf("create past meal: %v", err)
	}

	meals, err := svc.ListToday(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("list today: %v", err)
	}
	if len(meals) != 1 {
		t.Fatalf("expected only today's meal, got %d meals", len(meals))
	}
	if meals[0].ID != todayMeal.ID {
		t.Errorf("expected meal %d, got %d", todayMeal.ID, meals[0].ID)
	}
}

func TestMealCreate_RejectsUnknownMealType(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	user := createTestUser(t, db, "bob", "bob@example.com")

	_, err := svc.Create(context.Background(), user.ID, MealInput{
		FoodName: "Chips",
		Quantity: 1,
		MealType: "midnight-snack",
		Calories: 200,
	})
	if !errors.Is(err, ErrInvalidMealType) {
		t.Errorf("expected ErrInvalidMealType, got %v", err)
	}
}

func TestMealCreate_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	user := createTestUser(t, db, "carol", "carol@example.com")

	_, err := svc.Create(context.Background(), user.ID, MealInput{
		Quantity: 1,
		MealType: models.MealTypeLunch,
		Calories: 300,
	})
	if !errors.Is(err, ErrFieldsRequired) {
		t.Errorf("missing food name: expected ErrFieldsRequired, got %v", err)
	}

	_, err = svc.Create(context.Background(), user.ID, MealInput{
		FoodName: "Salad",
		Quantity: 1,
		MealType: models.MealTypeLunch,
	})
	if !errors.Is(err, ErrFieldsRequired) {
		t.Errorf("missing calories: expected ErrFieldsRequired, got %v", err)
	}
}

func TestMealDelete_ScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	owner := createTestUser(t, db, "dave", "dave@example.com")
	intruder := createTestUser(t, db, "mallory", "mallory@example.com")

	meal, err := svc.Create(context.Background(), owner.ID, MealInput{
		FoodName: "Pasta",
		Quantity: 1,
		MealType: models.MealTypeDinner,
		Calories: 700,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), intruder.ID, meal.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), owner.ID, meal.ID); err != nil {
		t.Errorf("owner delete failed: %v", err)
	}
}
