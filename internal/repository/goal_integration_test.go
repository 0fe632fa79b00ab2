//go:build integration

package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/testutil"
)

func newTestGoal(t *testing.T, userID string) *model.Goal {
	t.Helper()
	now := time.Now().UTC()
	return &model.Goal{
		ID:        testutil.UniqueID("gol"),
		UserID:    userID,
		Title:     "Write every day",
		Category:  "writing",
		Status:    model.GoalActive,
		Priority:  model.GoalPriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestIntegrationGoalLifecycle(t *testing.T) {
	ctx, repo := newTestRepo(t)
	user := createTestUser(t, ctx, repo)

	goal := newTestGoal(t, user.ID)
	target := 30.0
	goal.TargetValue = &target
	if err := repo.CreateGoal(ctx, goal); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}

	retrieved, err := repo.GetGoal(ctx, user.ID, goal.ID)
	if err != nil {
		t.Fatalf("GetGoal failed: %v", err)
	}
	if retrieved.TargetValue == nil || *retrieved.TargetValue != 30 {
		t.Errorf("TargetValue = %v, want 30", retrieved.TargetValue)
	}

	retrieved.Status = model.GoalCompleted
	retrieved.Progress = 100
	if err := repo.UpdateGoal(ctx, retrieved); err != nil {
		t.Fatalf("UpdateGoal failed: %v", err)
	}

	counts, err := repo.CountGoalsByStatus(ctx, user.ID)
	if err != nil {
		t.Fatalf("CountGoalsByStatus failed: %v", err)
	}
	if counts["completed"] != 1 || counts["active"] != 0 {
		t.Errorf("counts = %v, want one completed goal", counts)
	}

	if err := repo.DeleteGoal(ctx, user.ID, goal.ID); err != nil {
		t.Fatalf("DeleteGoal failed: %v", err)
	}
	if _, err := repo.GetGoal(ctx, user.ID, goal.ID); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("GetGoal after delete error = %v, want ErrGoalNotFound", err)
	}
}

func TestIntegrationListGoalsOrderAndFilter(t *testing.T) {
	ctx, repo := newTestRepo(t)
	user := createTestUser(t, ctx, repo)

	low := newTestGoal(t, user.ID)
	low.Title = "Read more"
	low.Category = "reading"
	low.Priority = model.GoalPriorityLow
	if err := repo.CreateGoal(ctx, low); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}

	high := newTestGoal(t, user.ID)
	high.ID = testutil.UniqueID("gol")
	high.Title = "Finish the draft"
	high.Priority = model.GoalPriorityHigh
	if err := repo.CreateGoal(ctx, high); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}

	goals, err := repo.ListGoals(ctx, GoalFilter{UserID: user.ID})
	if err != nil {
		t.Fatalf("ListGoals failed: %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("got %d goals, want 2", len(goals))
	}
	if goals[0].Priority != model.GoalPriorityHigh {
		t.Errorf("first goal priority = %q, want high first", goals[0].Priority)
	}

	byCategory, err := repo.ListGoals(ctx, GoalFilter{UserID: user.ID, Category: "reading"})
	if err != nil {
		t.Fatalf("ListGoals by category failed: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].ID != low.ID {
		t.Errorf("category filter returned %d goals, want the reading one", len(byCategory))
	}
}

func TestIntegrationMilestoneAchievement(t *testing.T) {
	ctx, repo := newTestRepo(t)
	user := createTestUser(t, ctx, repo)

	now := time.Now().UTC()
	target := 7.0
	m := &model.Milestone{
		ID:          testutil.UniqueID("mls"),
		UserID:      user.ID,
		Title:       "One week streak",
		Type:        "streak",
		TargetValue: &target,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := repo.CreateMilestone(ctx, m); err != nil {
		t.Fatalf("CreateMilestone failed: %v", err)
	}

	achievedAt := now.Add(time.Hour)
	m.Achieved = true
	m.AchievedAt = &achievedAt
	m.CurrentValue = &target
	if err := repo.UpdateMilestone(ctx, m); err != nil {
		t.Fatalf("UpdateMilestone failed: %v", err)
	}

	achieved := true
	milestones, err := repo.ListMilestones(ctx, user.ID, &achieved)
	if err != nil {
		t.Fatalf("ListMilestones failed: %v", err)
	}
	if len(milestones) != 1 {
		t.Fatalf("got %d achieved milestones, want 1", len(milestones))
	}
	if milestones[0].AchievedAt == nil {
		t.Errorf("AchievedAt not persisted")
	}

	pending := false
	milestones, err = repo.ListMilestones(ctx, user.ID, &pending)
	if err != nil {
		t.Fatalf("ListMilestones failed: %v", err)
	}
	if len(milestones) != 0 {
		t.Errorf("got %d pending milestones, want 0", len(milestones))
	}

	if err := repo.DeleteMilestone(ctx, user.ID, m.ID); err != nil {
		t.Fatalf("DeleteMilestone failed: %v", err)
	}
	if _, err := repo.GetMilestone(ctx, user.ID, m.ID); !errors.Is(err, ErrMilestoneNotFound) {
		t.Errorf("GetMilestone after delete error = %v, want ErrMilestoneNotFound", err)
	}
}
