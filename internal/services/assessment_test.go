package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yungbote/assessment-backend/internal/types"
)

type assessmentFixture struct {
	service        AssessmentService
	assessmentRepo *fakeAssessmentRepo
	typeRepo       *fakeAssessmentTypeRepo
	questionRepo   *fakeQuestionRepo
	answerRepo     *fakeAnswerRepo
	scoreRepo      *fakeCriterionScoreRepo
	clientRepo     *fakeClientRepo
}

func newAssessmentFixture(t *testing.T, assessmentType *types.AssessmentType) *assessmentFixture {
	t.Helper()
	fixture := &assessmentFixture{
		assessmentRepo: newFakeAssessmentRepo(),
		typeRepo:       newFakeAssessmentTypeRepo(assessmentType),
		questionRepo:   &fakeQuestionRepo{},
		answerRepo:     &fakeAnswerRepo{},
		scoreRepo:      &fakeCriterionScoreRepo{},
		clientRepo:     newFakeClientRepo(),
	}
	fixture.service = NewAssessmentService(
		nil,
		newTestLogger(t),
		fixture.assessmentRepo,
		fixture.typeRepo,
		fixture.questionRepo,
		fixture.answerRepo,
		fixture.scoreRepo,
		fixture.clientRepo,
	)
	return fixture
}

func TestAssessmentCreate(t *testing.T) {
	ctx := context.Background()
	assessmentType := &types.AssessmentType{ID: 1, Name: "Business Control", TotalQuestions: 4}

	t.Run("happy_path", func(t *testing.T) {
		fixture := newAssessmentFixture(t, assessmentType)
		client := fixture.clientRepo.add(&types.Client{UserID: 7, CompanyName: "Acme Corp"})

		created, err := fixture.service.Create(ctx, 7, CreateAssessmentInput{
			ClientID:         client.ID,
			AssessmentTypeID: 1,
			Title:            "Q3 review",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if created.Status != types.AssessmentStatusInProgress {
			t.Fatalf("status=%q, want %q", created.Status, types.AssessmentStatusInProgress)
		}
		if created.StartedAt.IsZero() {
			t.Fatalf("startedAt not set")
		}
	})

	t.Run("client_of_another_user_reads_as_missing", func(t *testing.T) {
		fixture := newAssessmentFixture(t, assessmentType)
		client := fixture.clientRepo.add(&types.Client{UserID: 99, CompanyName: "Someone Else"})

		_, err := fixture.service.Create(ctx, 7, CreateAssessmentInput{
			ClientID:         client.ID,
			AssessmentTypeID: 1,
			Title:            "Q3 review",
		})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("err=%v, want ErrNotFound", err)
		}
	})

	t.Run("unknown_type_rejected", func(t *testing.T) {
		fixture := newAssessmentFixture(t, assessmentType)
		client := fixture.clientRepo.add(&types.Client{UserID: 7, CompanyName: "Acme Corp"})

		_, err := fixture.service.Create(ctx, 7, CreateAssessmentInput{
			ClientID:         client.ID,
			AssessmentTypeID: 42,
			Title:            "Q3 review",
		})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("err=%v, want ErrNotFound", err)
		}
	})

	t.Run("blank_title_rejected", func(t *testing.T) {
		fixture := newAssessmentFixture(t, assessmentType)
		client := fixture.clientRepo.add(&types.Client{UserID: 7, CompanyName: "Acme Corp"})

		_, err := fixture.service.Create(ctx, 7, CreateAssessmentInput{
			ClientID:         client.ID,
			AssessmentTypeID: 1,
			Title:            "   ",
		})
		if err == nil {
			t.Fatalf("expected error for blank title")
		}
	})
}

func TestAssessmentGetProgress(t *testing.T) {
	ctx := context.Background()

	t.Run("counts_scored_answers_only", func(t *testing.T) {
		fixture := newAssessmentFixture(t, &types.AssessmentType{ID: 1, TotalQuestions: 4})
		assessment := fixture.assessmentRepo.add(&types.Assessment{UserID: 7, AssessmentTypeID: 1})
		fixture.answerRepo.answers = []*types.Answer{
			{AssessmentID: assessment.ID, QuestionID: 1, Score: intPtr(3)},
			{AssessmentID: assessment.ID, QuestionID: 2, Score: intPtr(5)},
			{AssessmentID: assessment.ID, QuestionID: 3},
		}

		progress, err := fixture.service.GetProgress(ctx, 7, assessment.ID)
		if err != nil {
			t.Fatalf("GetProgress: %v", err)
		}
		if progress.TotalQuestions != 4 || progress.AnsweredQuestions != 2 {
			t.Fatalf("progress=%+v, want 2/4", progress)
		}
		if !almostEqual(progress.Progress, 50.0) {
			t.Fatalf("progress=%v, want 50", progress.Progress)
		}
	})

	t.Run("type_with_no_questions_reports_zero", func(t *testing.T) {
		fixture := newAssessmentFixture(t, &types.AssessmentType{ID: 1, TotalQuestions: 0})
		assessment := fixture.assessmentRepo.add(&types.Assessment{UserID: 7, AssessmentTypeID: 1})

		progress, err := fixture.service.GetProgress(ctx, 7, assessment.ID)
		if err != nil {
			t.Fatalf("GetProgress: %v", err)
		}
		if !almostEqual(progress.Progress, 0) {
			t.Fatalf("progress=%v, want 0", progress.Progress)
		}
	})

	t.Run("other_users_assessment_reads_as_missing", func(t *testing.T) {
		fixture := newAssessmentFixture(t, &types.AssessmentType{ID: 1, TotalQuestions: 4})
		assessment := fixture.assessmentRepo.add(&types.Assessment{UserID: 99, AssessmentTypeID: 1})

		_, err := fixture.service.GetProgress(ctx, 7, assessment.ID)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("err=%v, want ErrNotFound", err)
		}
	})
}

func TestAssessmentComplete(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*assessmentFixture, *types.Assessment) {
		fixture := newAssessmentFixture(t, &types.AssessmentType{ID: 1, TotalQuestions: 5})
		fixture.questionRepo.questions = []*types.Question{
			{ID: 1, AssessmentTypeID: 1, CriterionNumber: 1, CriterionName: "Recognize", QuestionNumber: 1},
			{ID: 2, AssessmentTypeID: 1, CriterionNumber: 1, CriterionName: "Recognize", QuestionNumber: 2},
			{ID: 3, AssessmentTypeID: 1, CriterionNumber: 1, CriterionName: "Recognize", QuestionNumber: 3},
			{ID: 4, AssessmentTypeID: 1, CriterionNumber: 2, CriterionName: "Define", QuestionNumber: 1},
			{ID: 5, AssessmentTypeID: 1, CriterionNumber: 2, CriterionName: "Define", QuestionNumber: 2},
		}
		assessment := fixture.assessmentRepo.add(&types.Assessment{
			UserID:           7,
			AssessmentTypeID: 1,
			Status:           types.AssessmentStatusInProgress,
			StartedAt:        time.Now(),
		})
		return fixture, assessment
	}

	t.Run("writes_scores_and_marks_completed", func(t *testing.T) {
		fixture, assessment := setup(t)
		fixture.answerRepo.answers = []*types.Answer{
			{AssessmentID: assessment.ID, QuestionID: 1, Score: intPtr(2)},
			{AssessmentID: assessment.ID, QuestionID: 2, Score: intPtr(4)},
		}

		result, err := fixture.service.Complete(ctx, 7, assessment.ID)
		if err != nil {
			t.Fatalf("Complete: %v", err)
		}
		// Only criterion 1 has answers; its 3.0 average is the overall score.
		if !almostEqual(result.TotalScore, 3.0) {
			t.Fatalf("totalScore=%v, want 3.0", result.TotalScore)
		}

		if len(fixture.scoreRepo.scores) != 2 {
			t.Fatalf("got %d criterion rows, want 2", len(fixture.scoreRepo.scores))
		}
		stored := fixture.assessmentRepo.assessments[assessment.ID]
		if stored.Status != types.AssessmentStatusCompleted {
			t.Fatalf("status=%q, want %q", stored.Status, types.AssessmentStatusCompleted)
		}
		if stored.CompletedAt == nil || stored.TotalScore == nil {
			t.Fatalf("completedAt/totalScore not set: %+v", stored)
		}
		if !almostEqual(*stored.TotalScore, 3.0) {
			t.Fatalf("stored totalScore=%v, want 3.0", *stored.TotalScore)
		}
	})

	t.Run("rerun_overwrites_instead_of_duplicating", func(t *testing.T) {
		fixture, assessment := setup(t)
		fixture.answerRepo.answers = []*types.Answer{
			{AssessmentID: assessment.ID, QuestionID: 1, Score: intPtr(2)},
		}

		if _, err := fixture.service.Complete(ctx, 7, assessment.ID); err != nil {
			t.Fatalf("first Complete: %v", err)
		}

		// Answer changes after completion; rerun must replace the rows.
		fixture.answerRepo.answers[0].Score = intPtr(4)
		result, err := fixture.service.Complete(ctx, 7, assessment.ID)
		if err != nil {
			t.Fatalf("second Complete: %v", err)
		}
		if !almostEqual(result.TotalScore, 4.0) {
			t.Fatalf("totalScore=%v, want 4.0", result.TotalScore)
		}
		if len(fixture.scoreRepo.scores) != 2 {
			t.Fatalf("got %d criterion rows after rerun, want 2", len(fixture.scoreRepo.scores))
		}
	})

	t.Run("other_users_assessment_reads_as_missing", func(t *testing.T) {
		fixture, assessment := setup(t)
		_, err := fixture.service.Complete(ctx, 99, assessment.ID)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("err=%v, want ErrNotFound", err)
		}
	})
}

func intPtr(v int) *int { return &v }
