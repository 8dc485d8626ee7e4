package testutil

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/assessment-backend/internal/types"
)

func SeedUser(tb testing.TB, tx *gorm.DB, openID string) *types.User {
	tb.Helper()
	user := &types.User{
		OpenID:       openID,
		Name:         "Test User",
		Role:         types.RoleUser,
		LastSignedIn: time.Now(),
	}
	if err := tx.Create(user).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return user
}

func SeedClient(tb testing.TB, tx *gorm.DB, userID int64, companyName string) *types.Client {
	tb.Helper()
	client := &types.Client{
		UserID:      userID,
		CompanyName: companyName,
	}
	if err := tx.Create(client).Error; err != nil {
		tb.Fatalf("seed client: %v", err)
	}
	return client
}

func SeedAssessmentType(tb testing.TB, tx *gorm.DB, name string, totalQuestions int) *types.AssessmentType {
	tb.Helper()
	assessmentType := &types.AssessmentType{
		Name:           name,
		TotalQuestions: totalQuestions,
	}
	if err := tx.Create(assessmentType).Error; err != nil {
		tb.Fatalf("seed assessment type: %v", err)
	}
	return assessmentType
}

func SeedQuestion(tb testing.TB, tx *gorm.DB, typeID int64, criterionNumber, questionNumber int) *types.Question {
	tb.Helper()
	question := &types.Question{
		AssessmentTypeID: typeID,
		CriterionNumber:  criterionNumber,
		CriterionName:    "Criterion",
		QuestionNumber:   questionNumber,
		QuestionText:     "Question",
	}
	if err := tx.Create(question).Error; err != nil {
		tb.Fatalf("seed question: %v", err)
	}
	return question
}

func SeedAssessment(tb testing.TB, tx *gorm.DB, userID, clientID, typeID int64) *types.Assessment {
	tb.Helper()
	assessment := &types.Assessment{
		ClientID:         clientID,
		AssessmentTypeID: typeID,
		UserID:           userID,
		Title:            "Test Assessment",
		Status:           types.AssessmentStatusInProgress,
		StartedAt:        time.Now(),
	}
	if err := tx.Create(assessment).Error; err != nil {
		tb.Fatalf("seed assessment: %v", err)
	}
	return assessment
}
