package sqlite_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	dbfs "github.com/intervyou/intervyou/db"
	"github.com/intervyou/intervyou/internal/db"
	"github.com/intervyou/intervyou/internal/models"
	"github.com/intervyou/intervyou/internal/repository/sqlite"
	"github.com/intervyou/intervyou/pkg/repository"
)

// setupRepo opens a per-test in-memory database, applies the embedded
// migrations, and returns a ready repository.
func setupRepo(t *testing.T) *sqlite.SQLiteRepo {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	conn, err := db.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	if err := db.Migrate(context.Background(), conn, dbfs.Migrations); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return sqlite.New(conn)
}

// One repo value backs both public contracts; the user and session lookups
// must not collide.
func TestRepoServesBothContracts(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	var users repository.UserRepo = repo
	var sessions repository.SessionRepo = repo

	userID, err := users.CreateUser(ctx, &models.User{Username: "bob", Email: "bob@example.com", PasswordHash: "hashed"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	sessionID, err := sessions.CreateSession(ctx, &models.InterviewSession{UserID: userID, Type: "technical", Level: "mid", Role: "Software Engineer"})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	u, err := users.GetByID(ctx, userID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if u == nil || u.Username != "bob" {
		t.Fatalf("unexpected user: %+v", u)
	}

	s, err := sessions.GetSessionByID(ctx, userID, sessionID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if s == nil || s.UserID != userID {
		t.Fatalf("unexpected session: %+v", s)
	}
}

func TestUserRepo(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	id, err := repo.CreateUser(ctx, &models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive user id, got %d", id)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got == nil || got.Username != "alice" || got.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if got.Created == 0 {
		t.Fatalf("expected created timestamp to be set")
	}
	if got.LastLogin != nil {
		t.Fatalf("expected nil last_login before first login")
	}

	byUsername, err := repo.GetByUsernameOrEmail(ctx, "alice")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	byEmail, err := repo.GetByUsernameOrEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byUsername == nil || byEmail == nil || byUsername.ID != id || byEmail.ID != id {
		t.Fatalf("lookup mismatch: %+v / %+v", byUsername, byEmail)
	}

	missing, err := repo.GetByUsernameOrEmail(ctx, "nobody")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown identifier, got %+v", missing)
	}

	if err := repo.TouchLastLogin(ctx, id); err != nil {
		t.Fatalf("touch last login: %v", err)
	}
	got, err = repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get by id after touch: %v", err)
	}
	if got.LastLogin == nil || *got.LastLogin == 0 {
		t.Fatalf("expected last_login to be set, got %v", got.LastLogin)
	}
}

func TestSessionRepo_CreateAndGet(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	s := &models.InterviewSession{
		UserID:   1,
		Type:     "behavioral",
		Level:    "mid",
		Role:     "Software Engineer",
		Duration: 540,
		Score:    72,
		Feedback: []models.FeedbackItem{
			{Question: "Tell me about a conflict you resolved at work.", Answer: "I resolved it.", Feedback: "Good structure."},
		},
		Strengths:    []string{"clear delivery"},
		Improvements: []string{"more detail"},
	}

	id, err := repo.CreateSession(ctx, s)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if id == "" || s.ID != id {
		t.Fatalf("expected assigned id, got %q (session %q)", id, s.ID)
	}
	if s.Created == 0 {
		t.Fatalf("expected created timestamp to be set")
	}

	got, err := repo.GetSessionByID(ctx, 1, id)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got == nil {
		t.Fatalf("expected session, got nil")
	}
	if got.Type != "behavioral" || got.Score != 72 || got.Duration != 540 {
		t.Fatalf("unexpected session: %+v", got)
	}
	if len(got.Feedback) != 1 || got.Feedback[0].Question != s.Feedback[0].Question {
		t.Fatalf("feedback did not round-trip: %+v", got.Feedback)
	}
	if len(got.Strengths) != 1 || len(got.Improvements) != 1 {
		t.Fatalf("string lists did not round-trip: %+v", got)
	}

	// owner scoping: the wrong user sees nothing
	foreign, err := repo.GetSessionByID(ctx, 2, id)
	if err != nil {
		t.Fatalf("get foreign session: %v", err)
	}
	if foreign != nil {
		t.Fatalf("expected nil for foreign user, got %+v", foreign)
	}
}

func TestSessionRepo_NilFieldsStoredAsEmpty(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	id, err := repo.CreateSession(ctx, &models.InterviewSession{UserID: 1, Type: "technical", Level: "entry", Role: "Designer"})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	got, err := repo.GetSessionByID(ctx, 1, id)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.Feedback == nil || got.Strengths == nil || got.Improvements == nil {
		t.Fatalf("expected empty slices, got %+v", got)
	}
	if len(got.Feedback) != 0 || len(got.Strengths) != 0 || len(got.Improvements) != 0 {
		t.Fatalf("expected empty slices, got %+v", got)
	}
}

func TestSessionRepo_ListAndPage(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		_, err := repo.CreateSession(ctx, &models.InterviewSession{
			UserID:  1,
			Type:    "technical",
			Level:   "mid",
			Role:    "Software Engineer",
			Score:   i,
			Created: int64(i * 1000),
		})
		if err != nil {
			t.Fatalf("create session %d: %v", i, err)
		}
	}
	if _, err := repo.CreateSession(ctx, &models.InterviewSession{UserID: 2, Type: "technical", Level: "mid", Role: "Designer"}); err != nil {
		t.Fatalf("create foreign session: %v", err)
	}

	all, err := repo.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(all))
	}
	// newest first
	if all[0].Score != 3 || all[2].Score != 1 {
		t.Fatalf("expected descending created order, got scores %d, %d, %d", all[0].Score, all[1].Score, all[2].Score)
	}

	page, err := repo.ListPageByUser(ctx, 1, 1, 1)
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if len(page) != 1 || page[0].Score != 2 {
		t.Fatalf("unexpected page: %+v", page)
	}

	count, err := repo.CountByUser(ctx, 1)
	if err != nil {
		t.Fatalf("count by user: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected count 3, got %d", count)
	}
}

func TestSessionRepo_Delete(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	id, err := repo.CreateSession(ctx, &models.InterviewSession{UserID: 1, Type: "technical", Level: "mid", Role: "Software Engineer"})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	// deleting under the wrong user leaves the row alone
	if err := repo.DeleteSessionByID(ctx, 2, id); err != nil {
		t.Fatalf("delete foreign: %v", err)
	}
	if got, _ := repo.GetSessionByID(ctx, 1, id); got == nil {
		t.Fatalf("foreign delete should not remove the session")
	}

	if err := repo.DeleteSessionByID(ctx, 1, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err := repo.GetSessionByID(ctx, 1, id)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Fatalf("expected session removed, got %+v", got)
	}
}
