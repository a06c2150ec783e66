package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"

	"github.com/lumenkraft/hr-management/internal"
	"github.com/lumenkraft/hr-management/internal/approval"
	approvalPostgres "github.com/lumenkraft/hr-management/internal/approval/postgres"
	"github.com/lumenkraft/hr-management/internal/asset"
	assetPostgres "github.com/lumenkraft/hr-management/internal/asset/postgres"
	"github.com/lumenkraft/hr-management/internal/auth"
	authPostgres "github.com/lumenkraft/hr-management/internal/auth/postgres"
	"github.com/lumenkraft/hr-management/internal/database"
	"github.com/lumenkraft/hr-management/internal/employee"
	employeePostgres "github.com/lumenkraft/hr-management/internal/employee/postgres"
	"github.com/lumenkraft/hr-management/internal/payroll"
	payrollPostgres "github.com/lumenkraft/hr-management/internal/payroll/postgres"
	"github.com/lumenkraft/hr-management/internal/transport/rest"
	"github.com/lumenkraft/hr-management/internal/transport/swagger"
	"github.com/lumenkraft/hr-management/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *database.DB
	Router *chi.Mux
	Logger *slog.Logger

	AuthHandler     *auth.Handler
	EmployeeHandler *employee.Handler
	ApprovalHandler *approval.Handler
	PayrollHandler  *payroll.Handler
	AssetHandler    *asset.Handler
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(
		deps.Router,
		deps.DB.SQL(),
		deps.Config,
		deps.AuthHandler,
		deps.EmployeeHandler,
		deps.ApprovalHandler,
		deps.PayrollHandler,
		deps.AssetHandler,
		deps.Logger,
	)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	lg := logger.LoggerWrapper()

	if err := swagger.ValidateSpec("./api/openapi.yml"); err != nil {
		return nil, err
	}

	db, err := database.Connect(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	exec := database.NewExecutor(db.Gorm(), config.Database.Retry, lg).WithPinger(db)

	employeeRepo := employeePostgres.NewEmployeeRepository(exec)
	employeeService := employee.NewService(employeeRepo, config.Employee, config.Security.BCryptCost, lg)
	employeeHandler := employee.NewHandler(employeeService)

	authRepo := authPostgres.NewAuthRepository(exec)
	tokenGenerator := auth.NewJWTTokenGenerator(config.Security)
	authService := auth.NewService(authRepo, tokenGenerator, config.Security.BCryptCost, lg)
	authHandler := auth.NewHandler(authService)

	approvalRepo := approvalPostgres.NewApprovalRepository(exec)
	approvalService := approval.NewService(approvalRepo, lg)
	approvalHandler := approval.NewHandler(approvalService)

	payrollRepo := payrollPostgres.NewPayrollRepository(exec)
	payrollService := payroll.NewService(payrollRepo, lg)
	payrollHandler := payroll.NewHandler(payrollService)

	assetRepo := assetPostgres.NewAssetRepository(exec)
	assetService := asset.NewService(assetRepo, lg)
	assetHandler := asset.NewHandler(assetService)

	return &Dependencies{
		Config: config,
		DB:     db,
		Router: chi.NewRouter(),
		Logger: lg,

		AuthHandler:     authHandler,
		EmployeeHandler: employeeHandler,
		ApprovalHandler: approvalHandler,
		PayrollHandler:  payrollHandler,
		AssetHandler:    assetHandler,
	}, nil
}
