package mock

import (
	"context"
	"fmt"

	"github.com/intervyou/intervyou/internal/models"
)

// Test helpers and mocks
type Mocks struct {
	UserRepo    *mockUserRepo
	SessionRepo *mockSessionRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		UserRepo:    &mockUserRepo{},
		SessionRepo: &mockSessionRepo{},
	}
}

type mockUserRepo struct {
	Stored    *models.User
	CreateErr error
	TouchedID int64
}

func (m *mockUserRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.Stored = &models.User{ID: 1, Username: u.Username, Email: u.Email, PasswordHash: u.PasswordHash}
	return 1, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if m.Stored != nil && m.Stored.ID == id {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *mockUserRepo) GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error) {
	if m.Stored != nil && (m.Stored.Username == identifier || m.Stored.Email == identifier) {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *mockUserRepo) TouchLastLogin(ctx context.Context, id int64) error {
	m.TouchedID = id
	return nil
}

type mockSessionRepo struct {
	Sessions  []models.InterviewSession
	CreateErr error
	ListErr   error
	nextID    int
}

func (m *mockSessionRepo) CreateSession(ctx context.Context, s *models.InterviewSession) (string, error) {
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	if s.ID == "" {
		m.nextID++
		s.ID = fmt.Sprintf("session-%d", m.nextID)
	}
	m.Sessions = append(m.Sessions, *s)
	return s.ID, nil
}

func (m *mockSessionRepo) ListByUser(ctx context.Context, userID int64) ([]models.InterviewSession, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.InterviewSession
	for _, s := range m.Sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSessionRepo) ListPageByUser(ctx context.Context, userID int64, limit, offset int) ([]models.InterviewSession, error) {
	all, err := m.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *mockSessionRepo) CountByUser(ctx context.Context, userID int64) (int64, error) {
	all, err := m.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return int64(len(all)), nil
}

func (m *mockSessionRepo) GetSessionByID(ctx context.Context, userID int64, id string) (*models.InterviewSession, error) {
	for i := range m.Sessions {
		if m.Sessions[i].ID == id && m.Sessions[i].UserID == userID {
			s := m.Sessions[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (m *mockSessionRepo) DeleteSessionByID(ctx context.Context, userID int64, id string) error {
	for i := range m.Sessions {
		if m.Sessions[i].ID == id && m.Sessions[i].UserID == userID {
			m.Sessions = append(m.Sessions[:i], m.Sessions[i+1:]...)
			return nil
		}
	}
	return nil
}
