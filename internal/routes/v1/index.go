package routesV1

import (
	"github.com/DevBaweja/dating-app-backend/internal/middleware"
	userRepo "github.com/DevBaweja/dating-app-backend/internal/repository/user"
	routesV1Auth "github.com/DevBaweja/dating-app-backend/internal/routes/v1/auth"
	routesV1Match "github.com/DevBaweja/dating-app-backend/internal/routes/v1/match"
	routesV1Profile "github.com/DevBaweja/dating-app-backend/internal/routes/v1/profile"
	routesV1User "github.com/DevBaweja/dating-app-backend/internal/routes/v1/user"
	authUseCase "github.com/DevBaweja/dating-app-backend/internal/usecase/auth"
	"github.com/DevBaweja/dating-app-backend/internal/usecase/match"
	"github.com/DevBaweja/dating-app-backend/internal/usecase/profile"
	"github.com/labstack/echo"
)

func InitV1Routes(
	e *echo.Echo,
	authCase authUseCase.IAuthUseCase,
	profileCase profile.IProfileUseCase,
	matchCase match.IMatchUseCase,
	users userRepo.IUserRepo,
) {
	v1 := e.Group("/v1")

	v1.POST("/auth/sign-up", func(c echo.Context) error {
		return routesV1Auth.SignUpHandler(c, authCase)
	})
	v1.POST("/auth/sign-in", func(c echo.Context) error {
		return routesV1Auth.SignInHandler(c, authCase)
	})
	v1.POST("/auth/forgot-password", func(c echo.Context) error {
		return routesV1Auth.ForgotPasswordHandler(c, authCase)
	})
	v1.POST("/auth/reset-password", func(c echo.Context) error {
		return routesV1Auth.ResetPasswordHandler(c, authCase)
	})

	// Seeding stays open so a fresh deployment can be populated without
	// an account, same as the demo data endpoint it replaces.
	v1.POST("/profiles/seed", func(c echo.Context) error {
		return routesV1Profile.SeedHandler(c, profileCase)
	})

	authed := v1.Group("", middleware.JWTMiddleware(users))

	authed.GET("/users/me", routesV1User.MeHandler)
	authed.PUT("/users/me", func(c echo.Context) error {
		return routesV1User.UpdateMeHandler(c, authCase)
	})
	authed.PUT("/users/password", func(c echo.Context) error {
		return routesV1User.ChangePasswordHandler(c, authCase)
	})
	authed.DELETE("/users/me", func(c echo.Context) error {
		return routesV1User.DeleteMeHandler(c, authCase)
	})
	authed.GET("/users/stats", func(c echo.Context) error {
		return routesV1User.StatsHandler(c, matchCase)
	})

	authed.GET("/profiles", func(c echo.Context) error {
		return routesV1Profile.ListHandler(c, profileCase)
	})
	authed.GET("/profiles/:id", func(c echo.Context) error {
		return routesV1Profile.GetHandler(c, profileCase)
	})
	authed.POST("/profiles", func(c echo.Context) error {
		return routesV1Profile.CreateHandler(c, profileCase)
	})
	authed.PUT("/profiles/:id", func(c echo.Context) error {
		return routesV1Profile.UpdateHandler(c, profileCase)
	})
	authed.DELETE("/profiles/:id", func(c echo.Context) error {
		return routesV1Profile.DeleteHandler(c, profileCase)
	})

	authed.POST("/matches/like/:id", func(c echo.Context) error {
		return routesV1Match.LikeHandler(c, matchCase)
	})
	authed.POST("/matches/superlike/:id", func(c echo.Context) error {
		return routesV1Match.SuperLikeHandler(c, matchCase)
	})
	authed.POST("/matches/pass/:id", func(c echo.Context) error {
		return routesV1Match.PassHandler(c, matchCase)
	})
	authed.DELETE("/matches/:id", func(c echo.Context) error {
		return routesV1Match.RemoveMatchHandler(c, matchCase)
	})
	authed.POST("/matches/block/:id", func(c echo.Context) error {
		return routesV1Match.BlockHandler(c, matchCase)
	})
	authed.POST("/matches/unmatch/:id", func(c echo.Context) error {
		return routesV1Match.UnmatchHandler(c, matchCase)
	})
	authed.GET("/matches", func(c echo.Context) error {
		return routesV1Match.GetMatchesHandler(c, matchCase)
	})
	authed.GET("/matches/liked", func(c echo.Context) error {
		return routesV1Match.GetLikedHandler(c, matchCase)
	})
	authed.GET("/matches/stats", func(c echo.Context) error {
		return routesV1Match.StatsHandler(c, matchCase)
	})
	authed.POST("/matches/:id/messages", func(c echo.Context) error {
		return routesV1Match.AddMessageHandler(c, matchCase)
	})
	authed.POST("/matches/:id/read", func(c echo.Context) error {
		return routesV1Match.MarkReadHandler(c, matchCase)
	})
}
