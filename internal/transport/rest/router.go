package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lumenkraft/hr-management/internal"
	"github.com/lumenkraft/hr-management/internal/approval"
	"github.com/lumenkraft/hr-management/internal/asset"
	"github.com/lumenkraft/hr-management/internal/auth"
	"github.com/lumenkraft/hr-management/internal/employee"
	"github.com/lumenkraft/hr-management/internal/payroll"
	"github.com/lumenkraft/hr-management/internal/transport/middleware"
	"github.com/lumenkraft/hr-management/internal/transport/swagger"
)

// RegisterAllRoutes wires handlers into the chi router. Auth routes and
// health checks stay public; everything else sits behind the bearer-token
// middleware.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	cfg *internal.Config,
	authHandler *auth.Handler,
	employeeHandler *employee.Handler,
	approvalHandler *approval.Handler,
	payrollHandler *payroll.Handler,
	assetHandler *asset.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))
	if cfg.Observability.Metrics.Enabled {
		router.Use(middleware.Metrics)
		router.Handle(cfg.Observability.Metrics.Path, promhttp.Handler())
	}

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		if authHandler != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/login", authHandler.Login)
				sr.Post("/refresh", authHandler.RefreshToken)
			})
		}

		r.Group(func(pr chi.Router) {
			if authHandler != nil {
				pr.Use(authHandler.AuthMiddleware)
				pr.Post("/auth/change-password", authHandler.ChangePassword)
			}

			if employeeHandler != nil {
				pr.Route("/employees", func(er chi.Router) {
					er.Post("/", employeeHandler.CreateEmployee)
					er.Get("/", employeeHandler.GetAllEmployees)
					er.Get("/{id}", employeeHandler.GetEmployee)
					er.Put("/{id}", employeeHandler.UpdateEmployee)
					er.Patch("/{id}", employeeHandler.UpdateEmployee)
					er.Delete("/{id}", employeeHandler.DeleteEmployee)
				})
			}

			if approvalHandler != nil {
				pr.Route("/approvals", func(ar chi.Router) {
					ar.Post("/", approvalHandler.CreateApproval)
					ar.Get("/", approvalHandler.GetAllApprovals)
					ar.Get("/{id}", approvalHandler.GetApproval)
					ar.Patch("/{id}/approve", approvalHandler.ApproveRequest)
					ar.Patch("/{id}/reject", approvalHandler.RejectRequest)
				})
			}

			if payrollHandler != nil {
				pr.Route("/payroll", func(yr chi.Router) {
					yr.Post("/cycles", payrollHandler.CreateCycle)
					yr.Get("/cycles", payrollHandler.GetAllCycles)
					yr.Get("/cycles/{id}", payrollHandler.GetCycle)
					yr.Post("/cycles/{id}/process", payrollHandler.ProcessCycle)
					yr.Put("/salaries", payrollHandler.UpsertSalary)
					yr.Get("/salaries", payrollHandler.GetAllSalaries)
					yr.Get("/salaries/{employeeId}", payrollHandler.GetEmployeeSalary)
				})
			}

			if assetHandler != nil {
				pr.Route("/assets", func(ar chi.Router) {
					ar.Post("/", assetHandler.CreateAsset)
					ar.Get("/", assetHandler.GetAllAssets)
					ar.Get("/{id}", assetHandler.GetAsset)
					ar.Patch("/{id}", assetHandler.UpdateAsset)
					ar.Post("/{id}/assign", assetHandler.AssignAsset)
					ar.Post("/{id}/unassign", assetHandler.UnassignAsset)
					ar.Delete("/{id}", assetHandler.DeleteAsset)
				})
			}
		})
	})
}
