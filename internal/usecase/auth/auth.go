package authUseCase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/DevBaweja/dating-app-backend/internal/email"
	"github.com/DevBaweja/dating-app-backend/internal/entity"
	userRepo "github.com/DevBaweja/dating-app-backend/internal/repository/user"
	"github.com/DevBaweja/dating-app-backend/pkg/jwt"
	"github.com/google/uuid"
	"github.com/labstack/echo"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = 15 * time.Minute

type IAuthUseCase interface {
	SignupUser(ctx context.Context, request entity.CreateUserRequest) (*entity.User, error)
	SignIn(ctx context.Context, email, username, password string) (string, error)
	GetUserFromJWTRequest(c echo.Context) (*entity.User, error)

	UpdateUser(ctx context.Context, user *entity.User, request entity.UpdateUserRequest) error
	ChangePassword(ctx context.Context, user *entity.User, currentPassword, newPassword string) error
	DeleteAccount(ctx context.Context, user *entity.User) error

	ForgotPassword(ctx context.Context, emailAddr string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authUseCase struct {
	userRepo    userRepo.IUserRepo
	mailer      email.Sender
	frontendURL string
	log         *logrus.Logger
}

func New(userRepo userRepo.IUserRepo, mailer email.Sender, frontendURL string, log *logrus.Logger) IAuthUseCase {
	return &authUseCase{
		userRepo:    userRepo,
		mailer:      mailer,
		frontendURL: frontendURL,
		log:         log,
	}
}

func (p *authUseCase) SignupUser(ctx context.Context, authData entity.CreateUserRequest) (*entity.User, error) {
	if _, err := p.userRepo.GetUserByEmail(ctx, authData.Email); err == nil {
		return nil, entity.ErrConflict
	} else if !errors.Is(err, entity.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(authData.Password+authData.Email), 12)
	if err != nil {
		return nil, err
	}

	user := entity.User{
		Name:     authData.Name,
		Email:    authData.Email,
		Username: authData.Username,
		Password: string(hashedPassword),
	}

	return p.userRepo.CreateUser(ctx, &user)
}

func (p *authUseCase) SignIn(ctx context.Context, email, username, password string) (string, error) {
	user, err := p.userRepo.GetUserByUnameOrEmail(ctx, email, username)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password+user.Email)); err != nil {
		return "", err
	}

	token, err := jwt.CreateToken(int(user.ID), user.Username)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (p *authUseCase) GetUserFromJWTRequest(c echo.Context) (*entity.User, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, errors.New("missing token")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, errors.New("invalid token format")
	}

	claims, err := jwt.ValidateToken(parts[1])
	if err != nil {
		return nil, err
	}

	return p.userRepo.GetUserByID(c.Request().Context(), claims.UserID)
}

func (p *authUseCase) UpdateUser(ctx context.Context, user *entity.User, request entity.UpdateUserRequest) error {
	if request.Email != "" && request.Email != user.Email {
		existing, err := p.userRepo.GetUserByEmail(ctx, request.Email)
		if err == nil && existing.ID != user.ID {
			return entity.ErrConflict
		}
		if err != nil && !errors.Is(err, entity.ErrNotFound) {
			return err
		}
		user.Email = request.Email
	}
	if request.Name != "" {
		user.Name = request.Name
	}

	return p.userRepo.UpdateUser(ctx, user)
}

func (p *authUseCase) ChangePassword(ctx context.Context, user *entity.User, currentPassword, newPassword string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword+user.Email)); err != nil {
		return entity.ErrValidation
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword+user.Email), 12)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return p.userRepo.UpdateUser(ctx, user)
}

func (p *authUseCase) DeleteAccount(ctx context.Context, user *entity.User) error {
	return p.userRepo.DeleteUser(ctx, user.ID)
}

// ForgotPassword issues a reset token and emails it. An unknown email
// is not an error to the caller, so the endpoint cannot be used to
// probe which addresses have accounts.
func (p *authUseCase) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := p.userRepo.GetUserByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil
		}
		return err
	}

	token := uuid.NewString()
	if err := p.userRepo.SetResetToken(ctx, user.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		return err
	}

	if err := p.mailer.SendPasswordReset(user.Email, token, p.frontendURL); err != nil {
		p.log.WithError(err).Error("failed to send password reset email")
		return err
	}

	return nil
}

func (p *authUseCase) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := p.userRepo.GetUserByResetToken(ctx, token)
	if err != nil {
		return err
	}

	if user.ResetTokenExpires == nil || time.Now().After(*user.ResetTokenExpires) {
		return entity.ErrNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword+user.Email), 12)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	if err := p.userRepo.UpdateUser(ctx, user); err != nil {
		return err
	}

	if err := p.userRepo.ClearResetToken(ctx, user.ID); err != nil {
		return err
	}

	if err := p.mailer.SendPasswordResetSuccess(user.Email); err != nil {
		p.log.WithError(err).Warn("failed to send password reset confirmation")
	}

	return nil
}
