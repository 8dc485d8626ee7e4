package repos

import (
	"context"
	"testing"
	"time"

	"github.com/yungbote/assessment-backend/internal/repos/testutil"
	"github.com/yungbote/assessment-backend/internal/types"
)

func TestAssessmentRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewAssessmentRepo(db, testutil.Logger(t))
	ctx := context.Background()

	owner := testutil.SeedUser(t, tx, "assessment-repo-owner")
	stranger := testutil.SeedUser(t, tx, "assessment-repo-stranger")
	client := testutil.SeedClient(t, tx, owner.ID, "Acme Corp")
	assessmentType := testutil.SeedAssessmentType(t, tx, "Assessment Repo Type", 4)

	created, err := repo.Create(ctx, tx, &types.Assessment{
		ClientID:         client.ID,
		AssessmentTypeID: assessmentType.ID,
		UserID:           owner.ID,
		Title:            "Kickoff",
		Status:           types.AssessmentStatusInProgress,
		StartedAt:        time.Now(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, tx, created.ID, owner.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Title != "Kickoff" {
		t.Fatalf("GetByID: unexpected result: %+v", got)
	}

	other, err := repo.GetByID(ctx, tx, created.ID, stranger.ID)
	if err != nil {
		t.Fatalf("GetByID (stranger): %v", err)
	}
	if other != nil {
		t.Fatalf("GetByID (stranger): expected nil, got %+v", other)
	}

	listed, err := repo.ListByUserID(ctx, tx, owner.ID)
	if err != nil {
		t.Fatalf("ListByUserID: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("ListByUserID: expected 1 assessment, got %d", len(listed))
	}

	completedAt := time.Now()
	if err := repo.Update(ctx, tx, created.ID, owner.ID, map[string]interface{}{
		"status":       types.AssessmentStatusCompleted,
		"completed_at": completedAt,
		"total_score":  3.25,
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err = repo.GetByID(ctx, tx, created.ID, owner.ID)
	if err != nil {
		t.Fatalf("GetByID (after update): %v", err)
	}
	if got.Status != types.AssessmentStatusCompleted || got.CompletedAt == nil || got.TotalScore == nil {
		t.Fatalf("Update not applied: %+v", got)
	}

	// A stranger's delete is a no-op on someone else's row.
	if err := repo.Delete(ctx, tx, created.ID, stranger.ID); err != nil {
		t.Fatalf("Delete (stranger): %v", err)
	}
	got, err = repo.GetByID(ctx, tx, created.ID, owner.ID)
	if err != nil {
		t.Fatalf("GetByID (after stranger delete): %v", err)
	}
	if got == nil {
		t.Fatalf("row deleted by a non-owner")
	}

	if err := repo.Delete(ctx, tx, created.ID, owner.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err = repo.GetByID(ctx, tx, created.ID, owner.ID)
	if err != nil {
		t.Fatalf("GetByID (after delete): %v", err)
	}
	if got != nil {
		t.Fatalf("GetByID (after delete): expected nil, got %+v", got)
	}
}
