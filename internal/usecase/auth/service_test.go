package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"mentor-match/internal/domain/record"
	"mentor-match/internal/pkg/jwt"
)

type memRepo struct {
	users []record.Record
}

func (m *memRepo) Create(ctx context.Context, collection string, doc record.Record) (record.Record, error) {
	m.users = append(m.users, doc)
	return doc, nil
}

func (m *memRepo) Read(ctx context.Context, collection string, filter record.Filter) ([]record.Record, error) {
	return m.users, nil
}

func (m *memRepo) First(ctx context.Context, collection string, filter record.Filter) (record.Record, error) {
	for _, usr := range m.users {
		match := true
		for k, v := range filter {
			if usr[k] != v {
				match = false
				break
			}
		}
		if match {
			return usr, nil
		}
	}
	return nil, record.ErrNotFound
}

func (m *memRepo) Search(ctx context.Context, collection string, query string) ([]record.Record, error) {
	return nil, nil
}

func (m *memRepo) Update(ctx context.Context, collection string, filter record.Filter, changes record.Record) (int64, error) {
	return 0, nil
}

func (m *memRepo) Delete(ctx context.Context, collection string, filter record.Filter) (int64, error) {
	return 0, nil
}

func (m *memRepo) Collections(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}

func newService() (*Service, *memRepo) {
	repo := &memRepo{}
	jwtSvc := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
	return NewService(repo, jwtSvc), repo
}

func TestRegisterThenLogin(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	tokens, err := svc.Register(ctx, Credentials{Email: "Mentee@Example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", tokens)
	}

	if len(repo.users) != 1 {
		t.Fatalf("expected 1 stored user, got %d", len(repo.users))
	}
	if repo.users[0]["email"] != "mentee@example.com" {
		t.Fatalf("email should be normalized, got %v", repo.users[0]["email"])
	}
	if repo.users[0]["password_hash"] == "correct horse" {
		t.Fatalf("password must not be stored in clear")
	}

	if _, err := svc.Login(ctx, Credentials{Email: "mentee@example.com", Password: "correct horse"}); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, Credentials{Email: "a@b.co", Password: "long enough"}); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	_, err := svc.Register(ctx, Credentials{Email: "A@B.CO", Password: "long enough"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("want ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegisterRejectsWeakInput(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	cases := []Credentials{
		{Email: "not-an-email", Password: "long enough"},
		{Email: "a@b.co", Password: "short"},
		{Email: "", Password: "long enough"},
	}
	for _, in := range cases {
		if _, err := svc.Register(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("Register(%+v): want ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, Credentials{Email: "a@b.co", Password: "long enough"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	_, err := svc.Login(ctx, Credentials{Email: "a@b.co", Password: "wrong password"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}

	_, err = svc.Login(ctx, Credentials{Email: "ghost@b.co", Password: "long enough"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: want ErrInvalidCredentials, got %v", err)
	}
}

func TestRefreshRotatesTokens(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	tokens, err := svc.Register(ctx, Credentials{Email: "a@b.co", Password: "long enough"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	rotated, err := svc.Refresh(ctx, tokens.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if rotated.AccessToken == "" || rotated.RefreshToken == "" {
		t.Fatalf("expected both tokens after refresh, got %+v", rotated)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	tokens, err := svc.Register(ctx, Credentials{Email: "a@b.co", Password: "long enough"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	_, err = svc.Refresh(ctx, tokens.AccessToken)
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("access token used as refresh: want ErrInvalidRefreshToken, got %v", err)
	}

	_, err = svc.Refresh(ctx, "garbage")
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("garbage token: want ErrInvalidRefreshToken, got %v", err)
	}
}

func TestRefreshForDeletedAccount(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	tokens, err := svc.Register(ctx, Credentials{Email: "a@b.co", Password: "long enough"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	repo.users = nil

	_, err = svc.Refresh(ctx, tokens.RefreshToken)
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("want ErrInvalidRefreshToken, got %v", err)
	}
}
