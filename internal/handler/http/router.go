package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/tallerhq/ops-backend-go/internal/handler/http/middleware"
	"github.com/tallerhq/ops-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Punch    PunchHandler
	TimeBank TimeBankHandler
	Overtime OvertimeHandler
	CompDay  CompDayHandler
	Vacation VacationHandler
	Leave    LeaveHandler
	Schedule ScheduleHandler
	Holiday  HolidayHandler
	Report   ReportHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ops-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/punches", func(r chi.Router) {
				r.Post("/", h.Punch.Record)
				r.Get("/", h.Punch.List)
				r.Get("/{id}", h.Punch.Get)
			})

			r.Route("/time-bank", func(r chi.Router) {
				r.Get("/{employeeID}/balance", h.TimeBank.GetBalance)
				r.Get("/{employeeID}/history", h.TimeBank.GetHistory)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/adjustments", h.TimeBank.ManualAdjust)
				})
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Get("/", h.Overtime.List)
				r.Get("/{id}", h.Overtime.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/approve", h.Overtime.Approve)
					r.Post("/{id}/reject", h.Overtime.Reject)
				})
			})

			r.Route("/compensatory-days", func(r chi.Router) {
				r.Get("/", h.CompDay.List)
				r.Post("/{id}/redeem", h.CompDay.Redeem)
			})

			r.Route("/vacations", func(r chi.Router) {
				r.Post("/", h.Vacation.Request)
				r.Get("/", h.Vacation.List)
				r.Get("/balance/{employeeID}", h.Vacation.GetBalance)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/approve", h.Vacation.Approve)
					r.Post("/{id}/reject", h.Vacation.Reject)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Request)
				r.Get("/", h.Leave.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/approve", h.Leave.Approve)
					r.Post("/{id}/reject", h.Leave.Reject)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/expected/{employeeID}", h.Schedule.ResolveExpected)
				r.Get("/assignments/{employeeID}", h.Schedule.ListAssignments)
				r.Get("/shifts", h.Schedule.ListShifts)
				r.Get("/config", h.Schedule.GetConfig)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/config", h.Schedule.UpdateConfig)
					r.Post("/shifts", h.Schedule.CreateShift)
					r.Put("/shifts/{id}", h.Schedule.UpdateShift)
					r.Delete("/shifts/{id}", h.Schedule.DeactivateShift)
					r.Post("/assignments", h.Schedule.AssignShift)
					r.Delete("/assignments/{id}", h.Schedule.RemoveAssignment)
					r.Post("/special", h.Schedule.SetSpecialSchedule)
					r.Delete("/special/{id}", h.Schedule.ClearSpecialSchedule)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Holiday.Create)
					r.Delete("/{id}", h.Holiday.Delete)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/day-statuses/{employeeID}", h.Report.DayStatuses)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/monthly-summary", h.Report.MonthlySummary)
					r.Get("/monthly-summary/export", h.Report.ExportMonthlySummary)
				})
			})
		})
	})
	return r
}
