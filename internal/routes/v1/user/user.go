package routesV1User

import (
	"net/http"

	"github.com/DevBaweja/dating-app-backend/internal/entity"
	"github.com/DevBaweja/dating-app-backend/internal/routes/v1/httperr"
	authUseCase "github.com/DevBaweja/dating-app-backend/internal/usecase/auth"
	"github.com/DevBaweja/dating-app-backend/internal/usecase/match"
	"github.com/DevBaweja/dating-app-backend/pkg/http_util"
	"github.com/labstack/echo"
)

// CurrentUser pulls the authenticated user placed by the JWT middleware.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get("user").(*entity.User)
	return user, ok
}

func MeHandler(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.User]{
		Message: "User fetched successfully",
		Data:    user,
	})
}

func UpdateMeHandler(c echo.Context, authCase authUseCase.IAuthUseCase) error {
	user, ok := CurrentUser(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}

	reqBody, err := http_util.Decode[entity.UpdateUserRequest](c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if err := authCase.UpdateUser(c.Request().Context(), user, reqBody); err != nil {
		status, message := httperr.Status(err)
		if status == http.StatusBadRequest {
			message = "Email already taken"
		}
		return http_util.Encode(c, status, map[string]string{"error": message})
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.User]{
		Message: "User updated successfully",
		Data:    user,
	})
}

func ChangePasswordHandler(c echo.Context, authCase authUseCase.IAuthUseCase) error {
	user, ok := CurrentUser(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}

	reqBody, err := http_util.Decode[entity.ChangePasswordRequest](c)
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

	if err := authCase.ChangePassword(c.Request().Context(), user, reqBody.CurrentPassword, reqBody.NewPassword); err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "Current password is incorrect"})
	}

	return http_util.Encode(c, http.StatusOK, map[string]string{"message": "Password updated successfully"})
}

func DeleteMeHandler(c echo.Context, authCase authUseCase.IAuthUseCase) error {
	user, ok := CurrentUser(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}

	if err := authCase.DeleteAccount(c.Request().Context(), user); err != nil {
		return http_util.Encode(c, http.StatusInternalServerError, map[string]string{"error": "failed to delete account"})
	}

	return http_util.Encode(c, http.StatusOK, map[string]string{"message": "Account deleted successfully"})
}

func StatsHandler(c echo.Context, matchCase match.IMatchUseCase) error {
	user, ok := CurrentUser(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}

	stats, err := matchCase.GetStats(c.Request().Context(), user)
	if err != nil {
		return http_util.Encode(c, http.StatusInternalServerError, map[string]string{"error": "failed to fetch stats"})
	}

	return http_util.Encode(c, http.StatusOK, stats)
}
