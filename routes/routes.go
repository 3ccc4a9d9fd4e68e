package routes

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/xpsc-club/xpsc-server/docs"
	"github.com/xpsc-club/xpsc-server/handlers"
	"github.com/xpsc-club/xpsc-server/middleware"
	"github.com/xpsc-club/xpsc-server/services"
)

// Dependencies bundles what the router needs from main.
type Dependencies struct {
	Logger         *slog.Logger
	Tokens         services.TokenService
	Admins         middleware.AdminChecker
	AllowedOrigins []string

	// Metrics and MetricsHandler are optional.
	Metrics        *middleware.HTTPMetrics
	MetricsHandler http.Handler

	AuthHandler          *handlers.AuthHandler
	AllUserHandler       *handlers.AllUserHandler
	ClubUserHandler      *handlers.ClubUserHandler
	ContestHandler       *handlers.ContestHandler
	ContestResultHandler *handlers.ContestResultHandler
	WebSocketHandler     *handlers.WebSocketHandler
}

func SetupRoutes(r chi.Router, deps Dependencies) {
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate(deps.Tokens)
	requireAdmin := middleware.RequireAdmin(deps.Admins, deps.Logger)

	r.Get("/", handlers.Root)
	if deps.MetricsHandler != nil {
		r.Handle("/metrics", deps.MetricsHandler)
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Post("/jwt", deps.AuthHandler.IssueToken)

	// Public reads and self-registration.
	r.Group(func(r chi.Router) {
		r.Get("/allUsers/admin/{email}", deps.AllUserHandler.CheckAdmin)
		r.Get("/allUsers/{email}", deps.AllUserHandler.GetUserByEmail)
		r.Post("/allUsers", deps.AllUserHandler.CreateUser)

		r.Get("/clubUsers/{id}", deps.ClubUserHandler.GetMember)
		r.Get("/clubUsersCount", deps.ClubUserHandler.CountMembers)

		r.Get("/codeforcesContestList", deps.ContestHandler.ListContests)
		r.Get("/codeforcesContstList/{id}", deps.ContestHandler.GetContest)
		r.Get("/codeforcesSingleContestName", deps.ContestHandler.GetContestByNumber)

		r.Get("/codeforcesContestParticipantsResultsCountByContestId/{contestId}", deps.ContestResultHandler.CountParticipants)
		r.Get("/codeforcesContestNonParticipantsResultsCountByContestId/{contestId}", deps.ContestResultHandler.CountNonParticipants)

		r.Get("/ws/leaderboard", deps.WebSocketHandler.ServeLeaderboard)
		r.Get("/ws/contests/{contestId}", deps.WebSocketHandler.ServeContest)
	})

	// Any valid credential.
	r.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Get("/leaderboard", deps.ClubUserHandler.Leaderboard)
		r.Get("/codeforcesContestParticipantsResultsByContestId", deps.ContestResultHandler.ListParticipants)
		r.Get("/codeforcesContestNonParticipantsResultsByContestId", deps.ContestResultHandler.ListNonParticipants)
	})

	// Administrators only.
	r.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Use(requireAdmin)

		r.Get("/allUsers", deps.AllUserHandler.ListUsers)
		r.Patch("/allUsers/{id}", deps.AllUserHandler.UpdateUser)
		r.Delete("/allUsers/{id}", deps.AllUserHandler.DeleteUser)

		r.Get("/clubUsers", deps.ClubUserHandler.ListMembers)
		r.Post("/clubUsers", deps.ClubUserHandler.CreateMember)
		r.Patch("/clubUsers/{id}", deps.ClubUserHandler.UpdateMember)
		r.Delete("/clubUsers/{id}", deps.ClubUserHandler.DeleteMember)
		r.Post("/clubUsers/{id}/image", deps.ClubUserHandler.UploadImage)

		r.Post("/codeforcesContestList", deps.ContestHandler.CreateContest)
		r.Patch("/codeforcesContestList/{id}", deps.ContestHandler.UpdateContest)
		r.Delete("/codeforcesContestList/{id}", deps.ContestHandler.DeleteContest)

		r.Get("/codeforcesContestAllUserResultCountByContestId/{contestId}", deps.ContestResultHandler.CountAll)
		r.Get("/codeforcesContestIndividualUserResult", deps.ContestResultHandler.GetUserResult)
		r.Post("/codeforcesContestIndividualUserResult", deps.ContestResultHandler.CreateResult)
		r.Delete("/codeforcesContestAllUserResult/{contestId}", deps.ContestResultHandler.DeleteContestResults)
		r.Delete("/codeforcesContestIndividualUserResult/{codeforcesHandle}", deps.ContestResultHandler.DeleteUserResults)
	})
}
