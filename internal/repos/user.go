package repos

import (
  "context"
  "time"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/yungbote/assessment-backend/internal/logger"
  "github.com/yungbote/assessment-backend/internal/types"
)

type UserRepo interface {
  GetByID(ctx context.Context, tx *gorm.DB, userID int64) (*types.User, error)
  GetByOpenID(ctx context.Context, tx *gorm.DB, openID string) (*types.User, error)
  Upsert(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error)
}

type userRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
  repoLog := baseLog.With("repo", "UserRepo")
  return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) GetByID(ctx context.Context, tx *gorm.DB, userID int64) (*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  var results []*types.User
  if err := transaction.WithContext(ctx).
    Where("id = ?", userID).
    Limit(1).
    Find(&results).Error; err != nil {
    return nil, err
  }
  if len(results) == 0 {
    return nil, nil
  }
  return results[0], nil
}

func (ur *userRepo) GetByOpenID(ctx context.Context, tx *gorm.DB, openID string) (*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  var results []*types.User
  if err := transaction.WithContext(ctx).
    Where("open_id = ?", openID).
    Limit(1).
    Find(&results).Error; err != nil {
    return nil, err
  }
  if len(results) == 0 {
    return nil, nil
  }
  return results[0], nil
}

// Upsert inserts the user or, on an existing open_id, refreshes the
// identity fields and last_signed_in.
func (ur *userRepo) Upsert(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error) {
  transaction := tx
  if transaction == nil {
    transaction = ur.db
  }

  if user.LastSignedIn.IsZero() {
    user.LastSignedIn = time.Now()
  }

  if err := transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns: []clause.Column{{Name: "open_id"}},
      DoUpdates: clause.AssignmentColumns([]string{"name", "email", "login_method", "role", "last_signed_in", "updated_at"}),
    }).
    Create(user).Error; err != nil {
    return nil, err
  }

  // Re-read so the caller sees the persisted row (id, role) after a
  // conflict update.
  return ur.GetByOpenID(ctx, transaction, user.OpenID)
}
