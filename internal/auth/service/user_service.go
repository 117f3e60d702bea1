package service

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/zongzewu23/employee-management-system/internal/auth/domain UserRepository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/zongzewu23/employee-management-system/internal/auth/domain"
	"github.com/zongzewu23/employee-management-system/internal/auth/dto"
	autherror "github.com/zongzewu23/employee-management-system/internal/errors"
)

// dummyHash is compared when the username is unknown so both login
// failure paths cost a bcrypt verification.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// UserService implements the authentication flows: credential login,
// registration, token validation and refresh. All failures surface as
// client errors from the taxonomy in internal/errors.
type UserService struct {
	repo         domain.UserRepository
	tokenService TokenGenerator
	log          *zap.Logger
}

func NewUserService(repo domain.UserRepository, tokenService TokenGenerator, log *zap.Logger) *UserService {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
		log:          log,
	}
}

// Login checks the credentials against the stored bcrypt hash and mints a
// token pair on success. A missing user and a wrong password are
// indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(input.Password))
		s.log.Info("login rejected", zap.String("username", input.Username))
		return nil, autherror.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		s.log.Info("login rejected", zap.String("username", input.Username))
		return nil, autherror.ErrInvalidCredentials
	}

	if !user.Enabled {
		return nil, autherror.ErrUserDisabled
	}

	accessToken, refreshToken, _, err := s.tokenService.Generate(user.Username)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		Username:     user.Username,
		Email:        user.Email,
		Role:         user.Role,
	}, nil
}

// Register creates a new enabled USER account. Username is checked before
// email so a request that collides on both reports the username conflict.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	taken, err := s.repo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, autherror.ErrUsernameTaken
	}

	taken, err = s.repo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, autherror.ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         domain.RoleUser,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.String("username", user.Username))

	return user, nil
}

// ValidateToken reports whether token is a verifiable, unexpired token.
// It never returns an error; malformed input is simply false.
func (s *UserService) ValidateToken(token string) bool {
	_, err := s.tokenService.Verify(token)
	return err == nil
}

// UsernameFromToken extracts the subject of a verified token.
func (s *UserService) UsernameFromToken(token string) (string, error) {
	claims, err := s.tokenService.Verify(token)
	if err != nil {
		return "", autherror.ErrInvalidToken
	}
	return claims.Subject, nil
}

// Refresh exchanges a valid refresh token for a brand-new pair. The old
// refresh token remains usable until it expires; there is no rotation.
func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.AuthResponse, error) {
	claims, err := s.tokenService.Verify(input.RefreshToken)
	if err != nil {
		return nil, autherror.ErrInvalidToken
	}

	if claims.TokenType != TokenTypeRefresh {
		return nil, autherror.ErrWrongTokenType
	}

	user, err := s.repo.GetByUsername(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	accessToken, refreshToken, _, err := s.tokenService.Generate(user.Username)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		Username:     user.Username,
		Email:        user.Email,
		Role:         user.Role,
	}, nil
}
