package routesV1Auth

import (
	"errors"
	"net/http"

	"github.com/DevBaweja/dating-app-backend/internal/entity"
	authUseCase "github.com/DevBaweja/dating-app-backend/internal/usecase/auth"
	"github.com/DevBaweja/dating-app-backend/pkg/http_util"
	"github.com/labstack/echo"
)

func SignUpHandler(c echo.Context, authCase authUseCase.IAuthUseCase) error {
	reqBody, err := http_util.Decode[entity.CreateUserRequest](c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	problems := reqBody.Validate(c.Request().Context())
	if len(problems) != 0 {
		return http_util.Encode(c, http.StatusBadRequest, http_util.HTTPErrorResponse[struct{}]{
			HTTPResponse: http_util.HTTPResponse[struct{}]{Message: "Bad request check your request"},
			Errors:       http_util.Problems(problems),
		})
	}

	user, err := authCase.SignupUser(c.Request().Context(), reqBody)
	if err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "User already exists"})
		}
		return http_util.Encode(c, http.StatusInternalServerError, map[string]string{"error": "failed to sign up"})
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.SignUpResponse]{
		Message: "Sign-up successful",
		Data: entity.SignUpResponse{
			ID:       int(user.ID),
			Username: user.Username,
			Name:     user.Name,
			Email:    user.Email,
		},
	})
}

func SignInHandler(c echo.Context, authCase authUseCase.IAuthUseCase) error {
	reqBody, err := http_util.Decode[entity.SignInRequest](c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	problems := reqBody.Validate(c.Request().Context())
	if len(problems) != 0 {
		return http_util.Encode(c, http.StatusBadRequest, http_util.HTTPErrorResponse[struct{}]{
			HTTPResponse: http_util.HTTPResponse[struct{}]{Message: "Bad request check your request"},
			Errors:       http_util.Problems(problems),
		})
	}

	jwtToken, err := authCase.SignIn(c.Request().Context(), reqBody.Email, reqBody.Username, reqBody.Password)
	if err != nil {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.SignInResponse]{
		Message: "Login successful",
		Data:    entity.SignInResponse{Token: jwtToken},
	})
}

func ForgotPasswordHandler(c echo.Context, authCase authUseCase.IAuthUseCase) error {
	reqBody, err := http_util.Decode[entity.ForgotPasswordRequest](c)
	if err != nil || reqBody.Email == "" {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if err := authCase.ForgotPassword(c.Request().Context(), reqBody.Email); err != nil {
		return http_util.Encode(c, http.StatusInternalServerError, map[string]string{"error": "failed to process request"})
	}

	// Same response whether or not the account exists.
	return http_util.Encode(c, http.StatusOK, map[string]string{"message": "If that email is registered, a reset link has been sent"})
}

func ResetPasswordHandler(c echo.Context, authCase authUseCase.IAuthUseCase) error {
	reqBody, err := http_util.Decode[entity.ResetPasswordRequest](c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	problems := reqBody.Validate(c.Request().Context())
	if len(problems) != 0 {
		return http_util.Encode(c, http.StatusBadRequest, http_util.HTTPErrorResponse[struct{}]{
			HTTPResponse: http_util.HTTPResponse[struct{}]{Message: "Bad request check your request"},
			Errors:       http_util.Problems(problems),
		})
	}

	if err := authCase.ResetPassword(c.Request().Context(), reqBody.Token, reqBody.NewPassword); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid or expired token"})
		}
		return http_util.Encode(c, http.StatusInternalServerError, map[string]string{"error": "failed to reset password"})
	}

	return http_util.Encode(c, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}
