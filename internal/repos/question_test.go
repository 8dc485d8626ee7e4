package repos

import (
	"context"
	"testing"

	"github.com/yungbote/assessment-backend/internal/repos/testutil"
	"github.com/yungbote/assessment-backend/internal/types"
)

func TestQuestionRepoListOrdering(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewQuestionRepo(db, testutil.Logger(t))
	ctx := context.Background()

	assessmentType := testutil.SeedAssessmentType(t, tx, "Question Repo Type", 4)

	// Inserted out of order on purpose.
	if _, err := repo.Create(ctx, tx, []*types.Question{
		{AssessmentTypeID: assessmentType.ID, CriterionNumber: 2, CriterionName: "Define", QuestionNumber: 1, QuestionText: "c2 q1"},
		{AssessmentTypeID: assessmentType.ID, CriterionNumber: 1, CriterionName: "Recognize", QuestionNumber: 2, QuestionText: "c1 q2"},
		{AssessmentTypeID: assessmentType.ID, CriterionNumber: 1, CriterionName: "Recognize", QuestionNumber: 1, QuestionText: "c1 q1"},
		{AssessmentTypeID: assessmentType.ID, CriterionNumber: 2, CriterionName: "Define", QuestionNumber: 2, QuestionText: "c2 q2"},
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	listed, err := repo.ListByAssessmentType(ctx, tx, assessmentType.ID)
	if err != nil {
		t.Fatalf("ListByAssessmentType: %v", err)
	}
	if len(listed) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(listed))
	}
	wantOrder := []string{"c1 q1", "c1 q2", "c2 q1", "c2 q2"}
	for i, want := range wantOrder {
		if listed[i].QuestionText != want {
			t.Fatalf("position %d: got %q, want %q", i, listed[i].QuestionText, want)
		}
	}
}
