package authUseCase_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/DevBaweja/dating-app-backend/internal/entity"
	authUseCase "github.com/DevBaweja/dating-app-backend/internal/usecase/auth"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gotest.tools/assert"
)

type fakeUserRepo struct {
	users  map[uint]*entity.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*entity.User), nextID: 1}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == user.Email || u.Username == user.Username {
			return nil, entity.ErrConflict
		}
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id int) (*entity.User, error) {
	if u, ok := f.users[uint(id)]; ok {
		return u, nil
	}
	return nil, entity.ErrNotFound
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (f *fakeUserRepo) GetUserByUnameOrEmail(ctx context.Context, email, uname string) (*entity.User, error) {
	for _, u := range f.users {
		if (email != "" && u.Email == email) || (uname != "" && u.Username == uname) {
			return u, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, user *entity.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return entity.ErrNotFound
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) DeleteUser(ctx context.Context, id uint) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) BindProfile(ctx context.Context, userID uint, profileID uint) error {
	u, ok := f.users[userID]
	if !ok {
		return entity.ErrNotFound
	}
	u.ProfileID = &profileID
	return nil
}

func (f *fakeUserRepo) SetResetToken(ctx context.Context, userID uint, token string, expires time.Time) error {
	u, ok := f.users[userID]
	if !ok {
		return entity.ErrNotFound
	}
	u.ResetToken = &token
	u.ResetTokenExpires = &expires
	return nil
}

func (f *fakeUserRepo) GetUserByResetToken(ctx context.Context, token string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ResetToken != nil && *u.ResetToken == token {
			return u, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (f *fakeUserRepo) ClearResetToken(ctx context.Context, userID uint) error {
	u, ok := f.users[userID]
	if !ok {
		return entity.ErrNotFound
	}
	u.ResetToken = nil
	u.ResetTokenExpires = nil
	return nil
}

// recordingMailer captures outbound mail instead of sending it.
type recordingMailer struct {
	resetTo    []string
	resetToken string
	successTo  []string
}

func (m *recordingMailer) SendPasswordReset(to, token, frontendURL string) error {
	m.resetTo = append(m.resetTo, to)
	m.resetToken = token
	return nil
}

func (m *recordingMailer) SendPasswordResetSuccess(to string) error {
	m.successTo = append(m.successTo, to)
	return nil
}

func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func signUp(t *testing.T, useCase authUseCase.IAuthUseCase, username, email, password string) *entity.User {
	user, err := useCase.SignupUser(context.TODO(), entity.CreateUserRequest{
		Name:     "Test",
		Username: username,
		Email:    email,
		Password: password,
	})
	assert.NilError(t, err)
	return user
}

func TestSignupHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	useCase := authUseCase.New(repo, &recordingMailer{}, "http://localhost:3000", quietLog())

	user := signUp(t, useCase, "alice", "alice@example.com", "password123")

	assert.Assert(t, user.Password != "password123")
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123"+user.Email))
	assert.NilError(t, err)
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	useCase := authUseCase.New(repo, &recordingMailer{}, "http://localhost:3000", quietLog())

	signUp(t, useCase, "alice", "alice@example.com", "password123")

	_, err := useCase.SignupUser(context.TODO(), entity.CreateUserRequest{
		Name:     "Test",
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.Assert(t, errors.Is(err, entity.ErrConflict))
}

func TestSignInWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	useCase := authUseCase.New(repo, &recordingMailer{}, "http://localhost:3000", quietLog())

	signUp(t, useCase, "alice", "alice@example.com", "password123")

	_, err := useCase.SignIn(context.TODO(), "alice@example.com", "", "wrong")
	assert.Assert(t, err != nil)

	token, err := useCase.SignIn(context.TODO(), "alice@example.com", "", "password123")
	assert.NilError(t, err)
	assert.Assert(t, token != "")
}

func TestChangePassword(t *testing.T) {
	repo := newFakeUserRepo()
	useCase := authUseCase.New(repo, &recordingMailer{}, "http://localhost:3000", quietLog())

	user := signUp(t, useCase, "alice", "alice@example.com", "password123")

	err := useCase.ChangePassword(context.TODO(), user, "wrong", "newpassword1")
	assert.Assert(t, errors.Is(err, entity.ErrValidation))

	err = useCase.ChangePassword(context.TODO(), user, "password123", "newpassword1")
	assert.NilError(t, err)

	_, err = useCase.SignIn(context.TODO(), "alice@example.com", "", "newpassword1")
	assert.NilError(t, err)
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &recordingMailer{}
	useCase := authUseCase.New(repo, mailer, "http://localhost:3000", quietLog())

	err := useCase.ForgotPassword(context.TODO(), "nobody@example.com")
	assert.NilError(t, err)
	assert.Equal(t, len(mailer.resetTo), 0)
}

func TestResetPasswordFlow(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &recordingMailer{}
	useCase := authUseCase.New(repo, mailer, "http://localhost:3000", quietLog())

	signUp(t, useCase, "alice", "alice@example.com", "password123")

	assert.NilError(t, useCase.ForgotPassword(context.TODO(), "alice@example.com"))
	assert.Equal(t, len(mailer.resetTo), 1)
	assert.Assert(t, mailer.resetToken != "")

	assert.NilError(t, useCase.ResetPassword(context.TODO(), mailer.resetToken, "freshpassword"))
	assert.Equal(t, len(mailer.successTo), 1)

	_, err := useCase.SignIn(context.TODO(), "alice@example.com", "", "freshpassword")
	assert.NilError(t, err)

	// The token is single use.
	err = useCase.ResetPassword(context.TODO(), mailer.resetToken, "anotherpassword")
	assert.Assert(t, errors.Is(err, entity.ErrNotFound))
}

func TestResetPasswordExpiredToken(t *testing.T) {
	repo := newFakeUserRepo()
	mailer := &recordingMailer{}
	useCase := authUseCase.New(repo, mailer, "http://localhost:3000", quietLog())

	user := signUp(t, useCase, "alice", "alice@example.com", "password123")

	assert.NilError(t, useCase.ForgotPassword(context.TODO(), "alice@example.com"))

	expired := time.Now().Add(-time.Minute)
	user.ResetTokenExpires = &expired

	err := useCase.ResetPassword(context.TODO(), mailer.resetToken, "freshpassword")
	assert.Assert(t, errors.Is(err, entity.ErrNotFound))
}
