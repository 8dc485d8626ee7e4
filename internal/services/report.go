package services

import (
  "context"
  "fmt"
  "gorm.io/gorm"
  "github.com/yungbote/assessment-backend/internal/logger"
  "github.com/yungbote/assessment-backend/internal/repos"
  "github.com/yungbote/assessment-backend/internal/types"
)

type ReportService interface {
  List(ctx context.Context, userID, assessmentID int64) ([]*types.Report, error)
  Get(ctx context.Context, userID, reportID int64) (*types.Report, error)
}

type reportService struct {
  db             *gorm.DB
  log            *logger.Logger
  reportRepo     repos.ReportRepo
  assessmentRepo repos.AssessmentRepo
}

func NewReportService(
  db *gorm.DB,
  baseLog *logger.Logger,
  reportRepo repos.ReportRepo,
  assessmentRepo repos.AssessmentRepo,
) ReportService {
  serviceLog := baseLog.With("service", "ReportService")
  return &reportService{
    db:             db,
    log:            serviceLog,
    reportRepo:     reportRepo,
    assessmentRepo: assessmentRepo,
  }
}

func (rs *reportService) List(ctx context.Context, userID, assessmentID int64) ([]*types.Report, error) {
  assessment, err := rs.assessmentRepo.GetByID(ctx, nil, assessmentID, userID)
  if err != nil {
    return nil, fmt.Errorf("load assessment: %w", err)
  }
  if assessment == nil {
    return nil, ErrNotFound
  }
  reports, err := rs.reportRepo.ListByAssessment(ctx, nil, assessmentID)
  if err != nil {
    return nil, fmt.Errorf("list reports: %w", err)
  }
  return reports, nil
}

func (rs *reportService) Get(ctx context.Context, userID, reportID int64) (*types.Report, error) {
  report, err := rs.reportRepo.GetByID(ctx, nil, reportID)
  if err != nil {
    return nil, fmt.Errorf("load report: %w", err)
  }
  if report == nil {
    return nil, ErrNotFound
  }
  // The report row itself carries no user id; authorization runs
  // through its parent assessment.
  assessment, err := rs.assessmentRepo.GetByID(ctx, nil, report.AssessmentID, userID)
  if err != nil {
    return nil, fmt.Errorf("load assessment: %w", err)
  }
  if assessment == nil {
    return nil, ErrNotFound
  }
  return report, nil
}
