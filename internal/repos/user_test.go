package repos

import (
	"context"
	"testing"

	"github.com/yungbote/assessment-backend/internal/repos/testutil"
	"github.com/yungbote/assessment-backend/internal/types"
)

func TestUserRepoUpsert(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Upsert(ctx, tx, &types.User{
		OpenID: "user-repo-open-id",
		Name:   "First Name",
		Email:  "first@example.com",
		Role:   types.RoleUser,
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if created == nil || created.ID == 0 {
		t.Fatalf("Upsert: expected persisted user, got %+v", created)
	}

	// Same open_id: refreshes the row instead of inserting a second one.
	updated, err := repo.Upsert(ctx, tx, &types.User{
		OpenID: "user-repo-open-id",
		Name:   "Second Name",
		Email:  "second@example.com",
		Role:   types.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Upsert (again): %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected same row, got ids %d and %d", created.ID, updated.ID)
	}
	if updated.Name != "Second Name" || updated.Role != types.RoleAdmin {
		t.Fatalf("expected refreshed fields, got %+v", updated)
	}

	got, err := repo.GetByOpenID(ctx, tx, "user-repo-open-id")
	if err != nil {
		t.Fatalf("GetByOpenID: %v", err)
	}
	if got == nil || got.ID != created.ID {
		t.Fatalf("GetByOpenID: unexpected result: %+v", got)
	}

	missing, err := repo.GetByOpenID(ctx, tx, "no-such-open-id")
	if err != nil {
		t.Fatalf("GetByOpenID (missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("GetByOpenID (missing): expected nil, got %+v", missing)
	}
}
