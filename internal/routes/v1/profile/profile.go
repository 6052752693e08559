package routesV1Profile

import (
	"net/http"
	"strconv"

	"github.com/DevBaweja/dating-app-backend/internal/entity"
	"github.com/DevBaweja/dating-app-backend/internal/routes/v1/httperr"
	routesV1User "github.com/DevBaweja/dating-app-backend/internal/routes/v1/user"
	"github.com/DevBaweja/dating-app-backend/internal/usecase/profile"
	"github.com/DevBaweja/dating-app-backend/pkg/http_util"
	"github.com/labstack/echo"
)

func profileID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.ErrBadRequest
	}
	return uint(id), nil
}

func ListHandler(c echo.Context, profileCase profile.IProfileUseCase) error {
	user, ok := routesV1User.CurrentUser(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}

	profiles, err := profileCase.GetProfiles(c.Request().Context(), user)
	if err != nil {
		return http_util.Encode(c, http.StatusInternalServerError, map[string]string{"error": "failed to get profiles"})
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[entity.ProfileListResponse]{
		Message: "Profiles fetched successfully",
		Data:    entity.ProfileListResponse{Profiles: profiles},
	})
}

func GetHandler(c echo.Context, profileCase profile.IProfileUseCase) error {
	id, err := profileID(c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	found, err := profileCase.GetProfile(c.Request().Context(), id)
	if err != nil {
		status, message := httperr.Status(err)
		return http_util.Encode(c, status, map[string]string{"error": message})
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.Profile]{
		Message: "Profile fetched successfully",
		Data:    found,
	})
}

func CreateHandler(c echo.Context, profileCase profile.IProfileUseCase) error {
	user, ok := routesV1User.CurrentUser(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}

	reqBody, err := http_util.Decode[entity.UpsertProfileRequest](c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	if err := c.Validate(&reqBody); err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "Bad request check your request"})
	}

	created, err := profileCase.CreateProfile(c.Request().Context(), user, reqBody)
	if err != nil {
		status, message := httperr.Status(err)
		return http_util.Encode(c, status, map[string]string{"error": message})
	}

	return http_util.Encode(c, http.StatusCreated, http_util.HTTPResponse[*entity.Profile]{
		Message: "Profile created successfully",
		Data:    created,
	})
}

func UpdateHandler(c echo.Context, profileCase profile.IProfileUseCase) error {
	id, err := profileID(c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	reqBody, err := http_util.Decode[entity.UpsertProfileRequest](c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	if err := c.Validate(&reqBody); err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "Bad request check your request"})
	}

	updated, err := profileCase.UpdateProfile(c.Request().Context(), id, reqBody)
	if err != nil {
		status, message := httperr.Status(err)
		return http_util.Encode(c, status, map[string]string{"error": message})
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[*entity.Profile]{
		Message: "Profile updated successfully",
		Data:    updated,
	})
}

func DeleteHandler(c echo.Context, profileCase profile.IProfileUseCase) error {
	id, err := profileID(c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if err := profileCase.DeleteProfile(c.Request().Context(), id); err != nil {
		status, message := httperr.Status(err)
		return http_util.Encode(c, status, map[string]string{"error": message})
	}

	return http_util.Encode(c, http.StatusOK, map[string]string{"message": "Profile deleted successfully"})
}

func SeedHandler(c echo.Context, profileCase profile.IProfileUseCase) error {
	count, err := profileCase.SeedProfiles(c.Request().Context())
	if err != nil {
		return http_util.Encode(c, http.StatusInternalServerError, map[string]string{"error": "failed to seed profiles"})
	}

	return http_util.Encode(c, http.StatusOK, entity.SeedResponse{
		Message: "Profiles seeded successfully",
		Count:   count,
	})
}
