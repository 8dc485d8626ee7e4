package repos

import (
	"context"
	"testing"

	"github.com/yungbote/assessment-backend/internal/repos/testutil"
	"github.com/yungbote/assessment-backend/internal/types"
)

func TestReportRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewReportRepo(db, testutil.Logger(t))
	ctx := context.Background()

	user := testutil.SeedUser(t, tx, "report-repo-user")
	client := testutil.SeedClient(t, tx, user.ID, "Acme Corp")
	assessmentType := testutil.SeedAssessmentType(t, tx, "Report Repo Type", 2)
	assessment := testutil.SeedAssessment(t, tx, user.ID, client.ID, assessmentType.ID)

	created, err := repo.Create(ctx, tx, &types.Report{
		AssessmentID: assessment.ID,
		FileURL:      "https://files.example.com/reports/1.pdf",
		FileKey:      "reports/1.pdf",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("Create: no id assigned")
	}

	got, err := repo.GetByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.FileKey != "reports/1.pdf" {
		t.Fatalf("GetByID: unexpected result: %+v", got)
	}

	missing, err := repo.GetByID(ctx, tx, created.ID+1000)
	if err != nil {
		t.Fatalf("GetByID (missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("GetByID (missing): expected nil, got %+v", missing)
	}

	listed, err := repo.ListByAssessment(ctx, tx, assessment.ID)
	if err != nil {
		t.Fatalf("ListByAssessment: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("ListByAssessment: unexpected result: %+v", listed)
	}
}
