package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"technomaster/internal/model"
	"technomaster/internal/repository"
	"technomaster/internal/utils"

	"go.uber.org/zap"
)

var (
	ErrDuplicateIdentity    = errors.New("phone number or email is already registered")
	ErrAuthenticationFailed = errors.New("invalid login or password")
)

// Messages shown to customers
const (
	MsgDuplicateIdentity = "Bu telefon raqam yoki email allaqachon ro'yxatdan o'tgan."
	MsgRegistered        = "Muvaffaqiyatli ro'yxatdan o'tdingiz!"
	MsgLoginFailed       = "Login, email yoki parol xato!"
)

// AdminCredentials is the single configured administrator login
type AdminCredentials struct {
	Username string
	Password string
}

// AuthService provides authentication related services
type AuthService interface {
	Register(ctx context.Context, name, phone, email, password string) (*model.User, error)
	Login(ctx context.Context, identifier, password string) (*model.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*model.User, error)
	AdminLogin(ctx context.Context, username, password string) (string, error)
	CustomerToken(user *model.User) (string, error)
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	verifier    PasswordVerifier
	jwtUtil     *utils.JWTUtil
	admin       AdminCredentials
	logger      *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	verifier PasswordVerifier,
	jwtUtil *utils.JWTUtil,
	admin AdminCredentials,
	logger *zap.Logger,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		verifier:    verifier,
		jwtUtil:     jwtUtil,
		admin:       admin,
		logger:      logger,
	}
}

// Register creates a customer account and makes it the current session
func (s *authService) Register(ctx context.Context, name, phone, email, password string) (*model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for _, u := range users {
		if u.Phone == phone || u.Email == email {
			return nil, ErrDuplicateIdentity
		}
	}

	stored, err := s.verifier.Prepare(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:       utils.NewID(),
		Name:     name,
		Phone:    phone,
		Email:    email,
		Password: stored,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	if err := s.sessionRepo.SetCurrent(ctx, user); err != nil {
		s.logger.Error("user registered but session not saved", zap.String("user_id", user.ID), zap.Error(err))
		return user, fmt.Errorf("user created, but failed to start session: %w", err)
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

// Login matches identifier against phone or email. Unknown identifiers and
// wrong passwords produce the same ErrAuthenticationFailed.
func (s *authService) Login(ctx context.Context, identifier, password string) (*model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	var match *model.User
	for i := range users {
		u := &users[i]
		if (u.Phone == identifier || u.Email == identifier) && s.verifier.Verify(u.Password, password) {
			match = u
			break
		}
	}
	if match == nil {
		return nil, ErrAuthenticationFailed
	}

	if err := s.sessionRepo.SetCurrent(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	s.logger.Info("user logged in", zap.String("user_id", match.ID))
	return match, nil
}

// Logout clears the current session
func (s *authService) Logout(ctx context.Context) error {
	return s.sessionRepo.Clear(ctx)
}

// CurrentUser returns the logged-in user or repository.ErrNoSession
func (s *authService) CurrentUser(ctx context.Context) (*model.User, error) {
	return s.sessionRepo.Current(ctx)
}

// AdminLogin checks the configured admin credential and returns a signed token
func (s *authService) AdminLogin(_ context.Context, username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) == 1
	if s.admin.Username == "" || !userOK || !passOK {
		s.logger.Warn("admin login rejected", zap.String("username", username))
		return "", ErrAuthenticationFailed
	}

	token, err := s.jwtUtil.GenerateToken(username, model.RoleAdmin)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// CustomerToken issues a customer token bound to user.ID. The HTTP layer only
// honours the stored session for the caller whose token subject matches it.
func (s *authService) CustomerToken(user *model.User) (string, error) {
	token, err := s.jwtUtil.GenerateTokenWithSubject(user.ID, user.Name, model.RoleCustomer)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
