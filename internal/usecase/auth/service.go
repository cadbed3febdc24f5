package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"mentor-match/internal/domain/record"
	"mentor-match/internal/pkg/jwt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrInternal               = errors.New("internal error")
)

type Credentials struct {
	Email    string
	Password string
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Usecase interface {
	Register(ctx context.Context, in Credentials) (Tokens, error)
	Login(ctx context.Context, in Credentials) (Tokens, error)
	Refresh(ctx context.Context, refreshToken string) (Tokens, error)
}

// Service keeps API accounts as documents in the Users collection,
// separate from mentee and mentor profiles.
type Service struct {
	repo record.Repository
	jwt  jwt.Service
}

func NewService(repo record.Repository, jwtSvc jwt.Service) *Service {
	return &Service{repo: repo, jwt: jwtSvc}
}

func (s *Service) Register(ctx context.Context, in Credentials) (Tokens, error) {
	email := normalizeEmail(in.Email)
	if email == "" || !isValidPassword(in.Password) {
		return Tokens{}, ErrInvalidInput
	}

	_, err := s.repo.First(ctx, record.CollectionUsers, record.Filter{"email": email})
	if err == nil {
		return Tokens{}, ErrEmailAlreadyRegistered
	}
	if !errors.Is(err, record.ErrNotFound) {
		return Tokens{}, ErrInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Tokens{}, ErrInternal
	}

	_, err = s.repo.Create(ctx, record.CollectionUsers, record.Record{
		"email":         email,
		"password_hash": string(hash),
	})
	if err != nil {
		return Tokens{}, ErrInternal
	}

	return s.issueTokens(email)
}

func (s *Service) Login(ctx context.Context, in Credentials) (Tokens, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return Tokens{}, ErrInvalidInput
	}

	usr, err := s.repo.First(ctx, record.CollectionUsers, record.Filter{"email": email})
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return Tokens{}, ErrInvalidCredentials
		}
		return Tokens{}, ErrInternal
	}

	hash, err := usr.StringField("password_hash")
	if err != nil {
		return Tokens{}, ErrInternal
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(in.Password)); err != nil {
		return Tokens{}, ErrInvalidCredentials
	}

	return s.issueTokens(email)
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (Tokens, error) {
	claims, err := s.jwt.ValidateToken(refreshToken)
	if err != nil {
		return Tokens{}, ErrInvalidRefreshToken
	}
	if !s.jwt.IsRefreshToken(claims) {
		return Tokens{}, ErrInvalidRefreshToken
	}

	// The account may have been deleted since the token was issued.
	_, err = s.repo.First(ctx, record.CollectionUsers, record.Filter{"email": claims.Email})
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return Tokens{}, ErrInvalidRefreshToken
		}
		return Tokens{}, ErrInternal
	}

	return s.issueTokens(claims.Email)
}

func (s *Service) issueTokens(email string) (Tokens, error) {
	access, err := s.jwt.GenerateAccessToken(email)
	if err != nil {
		return Tokens{}, ErrInternal
	}
	refresh, err := s.jwt.GenerateRefreshToken(email)
	if err != nil {
		return Tokens{}, ErrInternal
	}
	return Tokens{AccessToken: access, RefreshToken: refresh}, nil
}

func normalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") || strings.ContainsAny(email, " \t") {
		return ""
	}
	return email
}

func isValidPassword(pw string) bool {
	return len(pw) >= 8
}
