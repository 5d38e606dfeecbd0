package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"course_content_service/internal/account/domain"
	"course_content_service/internal/account/repository"
	"course_content_service/pkg/database"
	"course_content_service/pkg/encrypt"
	errprocess "course_content_service/pkg/err"
	"course_content_service/pkg/logger"
	token "course_content_service/pkg/token"
)

// UserUseCase account application service. Sessions live in redis
// keyed by user id; the JWT carries the user id and role the content
// service's ownership check runs on.
type UserUseCase interface {
	Register(ctx context.Context, email, password string, role token.RoleType) error
	FindUser(ctx context.Context, param *domain.UserQuery) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, userID string) error
	CheckSessionTimeout(ctx context.Context, userID string) (bool, error)
}

type userUseCase struct {
	userRepo   repository.UserRepository
	sessionTTL time.Duration
	redisRepo  database.RedisRepository[domain.UserSession]
}

// NewUserUseCase create a UserUseCase
func NewUserUseCase(userRepo repository.UserRepository,
	sessionTTL time.Duration,
	redisRepo database.RedisRepository[domain.UserSession],
) UserUseCase {
	return &userUseCase{
		userRepo:   userRepo,
		sessionTTL: sessionTTL,
		redisRepo:  redisRepo,
	}
}

// Register create an account. Unknown roles fall back to instructor;
// admin accounts are only provisioned out of band.
func (u *userUseCase) Register(ctx context.Context, email, password string, role token.RoleType) error {
	if _, err := u.userRepo.FindByUser(ctx, &domain.UserQuery{Email: &email}); err == nil {
		return errprocess.Validation("email already exists")
	}

	if err := encrypt.ValidatePasswordStrength(password); err != nil {
		return errprocess.Validation(err.Error())
	}

	pw, err := encrypt.HashPassword(password)
	if err != nil {
		return errprocess.Set(fmt.Sprintf("hash password: %v", err))
	}

	if role != token.RoleInstructor {
		role = token.RoleInstructor
	}

	user := domain.User{
		UserID:   uuid.New().String(),
		Email:    email,
		Password: pw,
		Role:     role,
	}

	logger.Log.Info("usecase Register", zap.String("email", email), zap.String("user_id", user.UserID))

	if err := u.userRepo.CreateUser(ctx, &user); err != nil {
		return errprocess.Set(fmt.Sprintf("create user: %v", err))
	}
	return nil
}

// FindUser look up a user by any of the query fields
func (u *userUseCase) FindUser(ctx context.Context, param *domain.UserQuery) (*domain.User, error) {
	return u.userRepo.FindByUser(ctx, param)
}

// Login verify credentials, open a session and hand back the JWT
func (u *userUseCase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.userRepo.FindByUser(ctx, &domain.UserQuery{Email: &email})
	if err != nil {
		logger.Log.Error("login with unknown email")
		return "", errprocess.NotFound("user not found")
	}
	if user.Status == domain.UserStatusBanned {
		return "", errprocess.Forbidden("account is banned")
	}

	if err = user.IsPasswordMatch(password); err != nil {
		logger.Log.Error("login with wrong password", zap.String("user_id", user.UserID))
		return "", errprocess.Validation("password mismatch")
	}

	t, err := token.GenerateJWTWrapper(user.UserID, string(user.Role))
	if err != nil {
		return "", errprocess.Set(fmt.Sprintf("generate token: %v", err))
	}

	now := time.Now()
	session := domain.UserSession{
		Token:        t,
		UserID:       user.UserID,
		CreatedAt:    now,
		LastActivity: now,
		ExpiredAt:    now.Add(u.sessionTTL),
	}
	if err := u.redisRepo.Set(ctx, user.UserID, session, u.sessionTTL); err != nil {
		return "", errprocess.Set(fmt.Sprintf("store session: %v", err))
	}

	user.Status = domain.UserStatusOnline
	if err := u.userRepo.UpdateUserStatus(ctx, user); err != nil {
		return "", errprocess.Set(fmt.Sprintf("update user status: %v", err))
	}

	return t, nil
}

// Logout drop the session and mark the user offline
func (u *userUseCase) Logout(ctx context.Context, userID string) error {
	user, err := u.userRepo.FindByUser(ctx, &domain.UserQuery{UserID: &userID})
	if err != nil {
		return err
	}

	if err := u.redisRepo.Del(ctx, userID); err != nil {
		logger.Log.Warn("session not removed", zap.String("user_id", userID), zap.Error(err))
	}

	user.Status = domain.UserStatusOffline
	if err := u.userRepo.UpdateUserStatus(ctx, user); err != nil {
		return errprocess.Set(fmt.Sprintf("update user status: %v", err))
	}
	return nil
}

// CheckSessionTimeout report whether the session is gone or expired
func (u *userUseCase) CheckSessionTimeout(ctx context.Context, userID string) (bool, error) {
	session, err := u.redisRepo.Get(ctx, userID)
	if err != nil {
		return true, nil
	}
	if session.IsExpired() {
		if err := u.redisRepo.Del(ctx, userID); err != nil {
			logger.Log.Warn("expired session not removed", zap.String("user_id", userID), zap.Error(err))
		}
		return true, nil
	}

	session.LastActivity = time.Now()
	if err := u.redisRepo.ExtendTTL(ctx, userID, u.sessionTTL); err != nil {
		logger.Log.Warn("session ttl not extended", zap.String("user_id", userID), zap.Error(err))
	}
	return false, nil
}
