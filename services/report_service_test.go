package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/purushotham2628/fitness-diet-app/models"
)

type fakeSender struct {
	sent    []string // recipient addresses in send order
	bodies  map[string]string
	failFor map[string]bool
}

func newFakeSender() *fakeSender {
	return &fakeSender{bodies: map[string]string{}, failFor: map[string]bool{}}
}

func (f *fakeSender) Send(_ context.Context, to, _, htmlBody string) error {
	if f.failFor[to] {
		return errors.New("smtp exploded")
	}
	f.sent = append(f.sent, to)
	f.bodies[to] = htmlBody
	return nil
}

func TestReportRun_SkipsInactiveUsers(t *testing.T) {
	db := newTestDB(t)
	active := createTestUser(t, db, "active", "active@example.com")
	createTestUser(t, db, "idle", "idle@example.com")

	date := time.Now().AddDate(0, 0, -2).Format("2006-01-02")
	if err := db.Create(&models.Workout{
		UserID: active.ID, ExerciseName: "Running", Duration: 30, CaloriesBurned: 300, Date: date,
	}).Error; err != nil {
		t.Fatalf("seed workout: %v", err)
	}

	sender := newFakeSender()
	svc := NewReportService(db, sender)

	sent := svc.Run(context.Background())
	if sent != 1 {
		t.Fatalf("expected 1 report sent, got %d", sent)
	}
	if len(sender.sent) != 1 || sender.sent[0] != "active@example.com" {
		t.Errorf("expected a single mail to active@example.com, got %v", sender.sent)
	}
	if !strings.Contains(sender.bodies["active@example.com"], "Workouts Completed:</strong> 1") {
		t.Errorf("report body missing workout count: %s", sender.bodies["active@example.com"])
	}
}

func TestReportRun_OldActivityDoesNotCount(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "stale", "stale@example.com")

	date := time.Now().AddDate(0, 0, -10).Format("2006-01-02")
	if err := db.Create(&models.Workout{
		UserID: user.ID, ExerciseName: "Running", Duration: 30, CaloriesBurned: 300, Date: date,
	}).Error; err != nil {
		t.Fatalf("seed workout: %v", err)
	}

	sender := newFakeSender()
	svc := NewReportService(db, sender)

	if sent := svc.Run(context.Background()); sent != 0 {
		t.Errorf("expected 0 reports for activity outside the window, got %d", sent)
	}
}

func TestReportRun_FailureDoesNotAbortRemainingUsers(t *testing.T) {
	db := newTestDB(t)
	first := createTestUser(t, db, "first", "first@example.com")
	second := createTestUser(t, db, "second", "second@example.com")

	date := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	for _, u := range []*models.User{first, second} {
		if err := db.Create(&models.Meal{
			UserID: u.ID, FoodName: "Rice", Quantity: 1, MealType: models.MealTypeLunch, Calories: 400, Date: date,
		}).Error; err != nil {
			t.Fatalf("seed meal: %v", err)
		}
	}

	sender := newFakeSender()
	sender.failFor["first@example.com"] = true
	svc := NewReportService(db, sender)

	sent := svc.Run(context.Background())
	if sent != 1 {
		t.Fatalf("expected 1 successful send, got %d", sent)
	}
	if len(sender.sent) != 1 || sender.sent[0] != "second@example.com" {
		t.Errorf("expected second@example.com to still receive mail, got %v", sender.sent)
	}
}

func TestReportRun_NilMailerStillCounts(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "quiet", "quiet@example.com")

	date := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	if err := db.Create(&models.Workout{
		UserID: user.ID, ExerciseName: "Yoga", Duration: 30, CaloriesBurned: 100, Date: date,
	}).Error; err != nil {
		t.Fatalf("seed workout: %v", err)
	}

	svc := NewReportService(db, nil)
	if sent := svc.Run(context.Background()); sent != 0 {
		t.Errorf("expected 0 sends without a mailer, got %d", sent)
	}
}
