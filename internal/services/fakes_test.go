package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/assessment-backend/internal/logger"
	"github.com/yungbote/assessment-backend/internal/types"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*types.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*types.User{}}
}

func (f *fakeUserRepo) GetByID(ctx context.Context, tx *gorm.DB, userID int64) (*types.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByOpenID(ctx context.Context, tx *gorm.DB, openID string) (*types.User, error) {
	for _, user := range f.users {
		if user.OpenID == openID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Upsert(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error) {
	for id, existing := range f.users {
		if existing.OpenID == user.OpenID {
			copied := *user
			copied.ID = id
			copied.CreatedAt = existing.CreatedAt
			f.users[id] = &copied
			result := copied
			return &result, nil
		}
	}
	f.nextID++
	copied := *user
	copied.ID = f.nextID
	copied.CreatedAt = time.Now()
	f.users[copied.ID] = &copied
	result := copied
	return &result, nil
}

type fakeAssessmentRepo struct {
	nextID      int64
	assessments map[int64]*types.Assessment
	updates     []map[string]interface{}
}

func newFakeAssessmentRepo() *fakeAssessmentRepo {
	return &fakeAssessmentRepo{assessments: map[int64]*types.Assessment{}}
}

func (f *fakeAssessmentRepo) add(assessment *types.Assessment) *types.Assessment {
	f.nextID++
	copied := *assessment
	copied.ID = f.nextID
	f.assessments[copied.ID] = &copied
	return &copied
}

func (f *fakeAssessmentRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID int64) ([]*types.Assessment, error) {
	var out []*types.Assessment
	for _, assessment := range f.assessments {
		if assessment.UserID == userID {
			copied := *assessment
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeAssessmentRepo) GetByID(ctx context.Context, tx *gorm.DB, assessmentID, userID int64) (*types.Assessment, error) {
	assessment, ok := f.assessments[assessmentID]
	if !ok || assessment.UserID != userID {
		return nil, nil
	}
	copied := *assessment
	return &copied, nil
}

func (f *fakeAssessmentRepo) Create(ctx context.Context, tx *gorm.DB, assessment *types.Assessment) (*types.Assessment, error) {
	return f.add(assessment), nil
}

func (f *fakeAssessmentRepo) Update(ctx context.Context, tx *gorm.DB, assessmentID, userID int64, fields map[string]interface{}) error {
	assessment, ok := f.assessments[assessmentID]
	if !ok || assessment.UserID != userID {
		return nil
	}
	f.updates = append(f.updates, fields)
	if status, ok := fields["status"].(string); ok {
		assessment.Status = status
	}
	if completedAt, ok := fields["completed_at"].(time.Time); ok {
		assessment.CompletedAt = &completedAt
	}
	if totalScore, ok := fields["total_score"].(float64); ok {
		assessment.TotalScore = &totalScore
	}
	if title, ok := fields["title"].(string); ok {
		assessment.Title = title
	}
	return nil
}

func (f *fakeAssessmentRepo) Delete(ctx context.Context, tx *gorm.DB, assessmentID, userID int64) error {
	assessment, ok := f.assessments[assessmentID]
	if ok && assessment.UserID == userID {
		delete(f.assessments, assessmentID)
	}
	return nil
}

type fakeAssessmentTypeRepo struct {
	typesByID map[int64]*types.AssessmentType
}

func newFakeAssessmentTypeRepo(assessmentTypes ...*types.AssessmentType) *fakeAssessmentTypeRepo {
	byID := map[int64]*types.AssessmentType{}
	for _, assessmentType := range assessmentTypes {
		byID[assessmentType.ID] = assessmentType
	}
	return &fakeAssessmentTypeRepo{typesByID: byID}
}

func (f *fakeAssessmentTypeRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.AssessmentType, error) {
	var out []*types.AssessmentType
	for _, assessmentType := range f.typesByID {
		copied := *assessmentType
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeAssessmentTypeRepo) GetByID(ctx context.Context, tx *gorm.DB, typeID int64) (*types.AssessmentType, error) {
	assessmentType, ok := f.typesByID[typeID]
	if !ok {
		return nil, nil
	}
	copied := *assessmentType
	return &copied, nil
}

func (f *fakeAssessmentTypeRepo) Create(ctx context.Context, tx *gorm.DB, assessmentType *types.AssessmentType) (*types.AssessmentType, error) {
	copied := *assessmentType
	f.typesByID[copied.ID] = &copied
	return &copied, nil
}

func (f *fakeAssessmentTypeRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.AssessmentType, error) {
	for _, assessmentType := range f.typesByID {
		if assessmentType.Name == name {
			copied := *assessmentType
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeQuestionRepo struct {
	questions []*types.Question
}

func (f *fakeQuestionRepo) ListByAssessmentType(ctx context.Context, tx *gorm.DB, assessmentTypeID int64) ([]*types.Question, error) {
	var out []*types.Question
	for _, question := range f.questions {
		if question.AssessmentTypeID == assessmentTypeID {
			copied := *question
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) GetByIDs(ctx context.Context, tx *gorm.DB, questionIDs []int64) ([]*types.Question, error) {
	wanted := map[int64]bool{}
	for _, id := range questionIDs {
		wanted[id] = true
	}
	var out []*types.Question
	for _, question := range f.questions {
		if wanted[question.ID] {
			copied := *question
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) Create(ctx context.Context, tx *gorm.DB, questions []*types.Question) ([]*types.Question, error) {
	f.questions = append(f.questions, questions...)
	return questions, nil
}

type fakeAnswerRepo struct {
	answers []*types.Answer
}

func (f *fakeAnswerRepo) ListByAssessment(ctx context.Context, tx *gorm.DB, assessmentID int64) ([]*types.Answer, error) {
	var out []*types.Answer
	for _, answer := range f.answers {
		if answer.AssessmentID == assessmentID {
			copied := *answer
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeAnswerRepo) Upsert(ctx context.Context, tx *gorm.DB, answer *types.Answer) error {
	for i, existing := range f.answers {
		if existing.AssessmentID == answer.AssessmentID && existing.QuestionID == answer.QuestionID {
			copied := *answer
			f.answers[i] = &copied
			return nil
		}
	}
	copied := *answer
	f.answers = append(f.answers, &copied)
	return nil
}

func (f *fakeAnswerRepo) BatchUpsert(ctx context.Context, tx *gorm.DB, answers []*types.Answer) error {
	for _, answer := range answers {
		if err := f.Upsert(ctx, tx, answer); err != nil {
			return err
		}
	}
	return nil
}

type fakeCriterionScoreRepo struct {
	scores []*types.CriterionScore
}

func (f *fakeCriterionScoreRepo) ListByAssessment(ctx context.Context, tx *gorm.DB, assessmentID int64) ([]*types.CriterionScore, error) {
	var out []*types.CriterionScore
	for _, score := range f.scores {
		if score.AssessmentID == assessmentID {
			copied := *score
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeCriterionScoreRepo) Upsert(ctx context.Context, tx *gorm.DB, score *types.CriterionScore) error {
	for i, existing := range f.scores {
		if existing.AssessmentID == score.AssessmentID && existing.CriterionNumber == score.CriterionNumber {
			copied := *score
			f.scores[i] = &copied
			return nil
		}
	}
	copied := *score
	f.scores = append(f.scores, &copied)
	return nil
}

type fakeClientRepo struct {
	nextID  int64
	clients map[int64]*types.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[int64]*types.Client{}}
}

func (f *fakeClientRepo) add(client *types.Client) *types.Client {
	f.nextID++
	copied := *client
	copied.ID = f.nextID
	f.clients[copied.ID] = &copied
	return &copied
}

func (f *fakeClientRepo) ListByUserID(ctx context.Context, tx *gorm.DB, userID int64) ([]*types.Client, error) {
	var out []*types.Client
	for _, client := range f.clients {
		if client.UserID == userID {
			copied := *client
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeClientRepo) GetByID(ctx context.Context, tx *gorm.DB, clientID, userID int64) (*types.Client, error) {
	client, ok := f.clients[clientID]
	if !ok || client.UserID != userID {
		return nil, nil
	}
	copied := *client
	return &copied, nil
}

func (f *fakeClientRepo) Create(ctx context.Context, tx *gorm.DB, client *types.Client) (*types.Client, error) {
	return f.add(client), nil
}

func (f *fakeClientRepo) Update(ctx context.Context, tx *gorm.DB, clientID, userID int64, fields map[string]interface{}) error {
	return nil
}

func (f *fakeClientRepo) Delete(ctx context.Context, tx *gorm.DB, clientID, userID int64) error {
	client, ok := f.clients[clientID]
	if ok && client.UserID == userID {
		delete(f.clients, clientID)
	}
	return nil
}
