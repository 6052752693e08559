package routesV1Match

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DevBaweja/dating-app-backend/internal/entity"
	"github.com/DevBaweja/dating-app-backend/internal/routes/v1/httperr"
	routesV1User "github.com/DevBaweja/dating-app-backend/internal/routes/v1/user"
	"github.com/DevBaweja/dating-app-backend/internal/usecase/match"
	"github.com/DevBaweja/dating-app-backend/pkg/http_util"
	"github.com/labstack/echo"
)

func targetProfileID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.ErrBadRequest
	}
	return uint(id), nil
}

func LikeHandler(c echo.Context, matchCase match.IMatchUseCase) error {
	user, ok := routesV1User.CurrentUser(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}

	id, err := targetProfileID(c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	// Body is optional; a bare POST is a plain like.
	reqBody, _ := http_util.Decode[entity.MatchLikeRequest](c)

	result, err := matchCase.LikeProfile(c.Request().Context(), user, id, reqBody.SuperLiked)
	if err != nil {
		status, message := httperr.Status(err)
		return http_util.Encode(c, status, map[string]string{"error": message})
	}

	message := "Profile liked"
	if result.IsMatch {
		message = "It's a match!"
	}

	return http_util.Encode(c, http.StatusOK, entity.SwipeResponse{
		Message:           message,
		IsMatch:           result.IsMatch,
		MatchesCount:      result.MatchesCount,
		MaxMatchesReached: result.MaxMatchesReached,
	})
}

func SuperLikeHandler(c echo.Context, matchCase match.IMatchUseCase) error {
	user, ok := routesV1User.CurrentUser(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}

	id, err := targetProfileID(c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	result, err := matchCase.SuperLikeProfile(c.Request().Context(), user, id)
	if err != nil {
		status, message := httperr.Status(err)
		if errors.Is(err, entity.ErrMatchLimitReached) {
			return http_util.Encode(c, status, entity.MatchLimitResponse{
				Message:           message,
				MaxMatchesReached: true,
			})
		}
		return http_util.Encode(c, status, map[string]string{"error": message})
	}

	return http_util.Encode(c, http.StatusOK, entity.SwipeResponse{
		Message:           "Super like sent! It's a match!",
		IsMatch:           result.IsMatch,
		MatchesCount:      result.MatchesCount,
		MaxMatchesReached: result.MaxMatchesReached,
	})
}

func PassHandler(c echo.Context, matchCase match.IMatchUseCase) error {
	user, ok := routesV1User.CurrentUser(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}

	id, err := targetProfileID(c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if err := matchCase.PassProfile(c.Request().Context(), user, id); err != nil {
		status, message := httperr.Status(err)
		return http_util.Encode(c, status, map[string]string{"error": message})
	}

	return http_util.Encode(c, http.StatusOK, entity.PassResponse{Message: "Profile passed"})
}

func RemoveMatchHandler(c echo.Context, matchCase match.IMatchUseCase) error {
	user, ok := routesV1User.CurrentUser(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}

	id, err := targetProfileID(c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	count, err := matchCase.RemoveMatch(c.Request().Context(), user, id)
	if err != nil {
		status, message := httperr.Status(err)
		return http_util.Encode(c, status, map[string]string{"error": message})
	}

	return http_util.Encode(c, http.StatusOK, entity.RemoveMatchResponse{
		Message:      "Match removed",
		MatchesCount: count,
	})
}

func BlockHandler(c echo.Context, matchCase match.IMatchUseCase) error {
	user, ok := routesV1User.CurrentUser(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}

	id, err := targetProfileID(c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if err := matchCase.BlockProfile(c.Request().Context(), user, id); err != nil {
		status, message := httperr.Status(err)
		return http_util.Encode(c, status, map[string]string{"error": message})
	}

	return http_util.Encode(c, http.StatusOK, map[string]string{"message": "Profile blocked"})
}

func UnmatchHandler(c echo.Context, matchCase match.IMatchUseCase) error {
	user, ok := routesV1User.CurrentUser(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}

	id, err := targetProfileID(c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	if err := matchCase.UnmatchProfile(c.Request().Context(), user, id); err != nil {
		status, message := httperr.Status(err)
		return http_util.Encode(c, status, map[string]string{"error": message})
	}

	return http_util.Encode(c, http.StatusOK, map[string]string{"message": "Profile unmatched"})
}

func GetMatchesHandler(c echo.Context, matchCase match.IMatchUseCase) error {
	user, ok := routesV1User.CurrentUser(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}

	matches, err := matchCase.GetMatches(c.Request().Context(), user)
	if err != nil {
		status, message := httperr.Status(err)
		return http_util.Encode(c, status, map[string]string{"error": message})
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[[]entity.Match]{
		Message: "Matches fetched successfully",
		Data:    matches,
	})
}

func GetLikedHandler(c echo.Context, matchCase match.IMatchUseCase) error {
	user, ok := routesV1User.CurrentUser(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}

	liked, err := matchCase.GetLiked(c.Request().Context(), user)
	if err != nil {
		status, message := httperr.Status(err)
		return http_util.Encode(c, status, map[string]string{"error": message})
	}

	return http_util.Encode(c, http.StatusOK, http_util.HTTPResponse[[]entity.Like]{
		Message: "Liked profiles fetched successfully",
		Data:    liked,
	})
}

func StatsHandler(c echo.Context, matchCase match.IMatchUseCase) error {
	user, ok := routesV1User.CurrentUser(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}

	stats, err := matchCase.GetStats(c.Request().Context(), user)
	if err != nil {
		status, message := httperr.Status(err)
		return http_util.Encode(c, status, map[string]string{"error": message})
	}

	return http_util.Encode(c, http.StatusOK, stats)
}

func AddMessageHandler(c echo.Context, matchCase match.IMatchUseCase) error {
	user, ok := routesV1User.CurrentUser(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}

	id, err := targetProfileID(c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	reqBody, err := http_util.Decode[entity.AddMessageRequest](c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}
	if err := c.Validate(&reqBody); err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "Bad request check your request"})
	}

	message, err := matchCase.AddMessage(c.Request().Context(), user, id, reqBody.Content)
	if err != nil {
		status, errMessage := httperr.Status(err)
		return http_util.Encode(c, status, map[string]string{"error": errMessage})
	}

	return http_util.Encode(c, http.StatusCreated, http_util.HTTPResponse[*entity.Message]{
		Message: "Message sent",
		Data:    message,
	})
}

func MarkReadHandler(c echo.Context, matchCase match.IMatchUseCase) error {
	user, ok := routesV1User.CurrentUser(c)
	if !ok {
		return http_util.Encode(c, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
	}

	id, err := targetProfileID(c)
	if err != nil {
		return http_util.Encode(c, http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	updated, err := matchCase.MarkRead(c.Request().Context(), user, id)
	if err != nil {
		status, message := httperr.Status(err)
		return http_util.Encode(c, status, map[string]string{"error": message})
	}

	return http_util.Encode(c, http.StatusOK, map[string]interface{}{
		"message": "Messages marked as read",
		"updated": updated,
	})
}
