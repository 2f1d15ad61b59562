package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"hrhub/internal/caching"
	"hrhub/internal/config"
	"hrhub/internal/handlers"
	"hrhub/internal/jobs/background"
	"hrhub/internal/middleware"
	"hrhub/internal/models"
	"hrhub/internal/repositories"
	"hrhub/internal/services"
	"hrhub/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	cacheSvc := caching.NewRedisCacheService(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	minioSvc, err := services.NewMinioService(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO service: %v", err)
	}
	if err := minioSvc.EnsureBucketExists(ctx, cfg.Minio.Bucket); err != nil {
		log.Fatalf("Failed to ensure MinIO bucket: %v", err)
	}

	// Repositories
	moduleRepo := repositories.NewModuleRepo(pool)
	tenantRepo := repositories.NewTenantRepo(pool)
	tenantModuleRepo := repositories.NewTenantModuleRepo(pool)
	userRepo := repositories.NewUserRepo(pool)
	employeeRepo := repositories.NewEmployeeRepo(pool)
	noteRepo := repositories.NewNoteRepo(pool)
	attendanceRepo := repositories.NewAttendanceRepo(pool)
	leaveRepo := repositories.NewLeaveRepo(pool)
	complaintRepo := repositories.NewComplaintRepo(pool)
	reimbursementRepo := repositories.NewReimbursementRepo(pool)
	walletRepo := repositories.NewWalletRepo(pool)
	documentRepo := repositories.NewDocumentRepo(pool)

	// Services
	registrySvc := services.NewModuleRegistryService(moduleRepo)
	tenantModuleSvc := services.NewTenantModuleService(moduleRepo, tenantModuleRepo, tenantRepo, cacheSvc)
	tenantConfigSvc := services.NewTenantConfigService(tenantRepo, tenantModuleSvc, cacheSvc, cfg.Tenant.BaseDomain)
	gateSvc := services.NewAccessGateService(tenantConfigSvc)
	authSvc := services.NewAuthService(userRepo, cacheSvc, cfg.JWT.Secret, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)
	tenantSvc := services.NewTenantService(tenantRepo, tenantModuleRepo, userRepo, registrySvc, tenantModuleSvc, authSvc, cacheSvc)
	walletSvc := services.NewWalletService(walletRepo)
	employeeSvc := services.NewEmployeeService(employeeRepo, noteRepo, walletRepo)
	attendanceSvc := services.NewAttendanceService(attendanceRepo, employeeRepo, tenantRepo, gateSvc)
	leaveSvc := services.NewLeaveService(leaveRepo, employeeRepo)
	complaintSvc := services.NewComplaintService(complaintRepo, employeeRepo)
	reimbursementSvc := services.NewReimbursementService(reimbursementRepo, employeeRepo, walletSvc)
	documentSvc := services.NewDocumentService(documentRepo, employeeRepo, minioSvc, cfg.Minio.Bucket)

	// Seed the module catalog at boot so fresh deployments come up ready.
	if err := registrySvc.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize module registry: %v", err)
	}

	// Handlers
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)
	configHandlers := handlers.NewConfigHandlers(tenantConfigSvc, gateSvc)
	authHandlers := handlers.NewAuthHandlers(authSvc)
	moduleHandlers := handlers.NewModuleHandlers(registrySvc)
	tenantHandlers := handlers.NewTenantHandlers(tenantSvc)
	employeeHandlers := handlers.NewEmployeeHandlers(employeeSvc)
	attendanceHandlers := handlers.NewAttendanceHandlers(attendanceSvc)
	leaveHandlers := handlers.NewLeaveHandlers(leaveSvc)
	complaintHandlers := handlers.NewComplaintHandlers(complaintSvc)
	reimbursementHandlers := handlers.NewReimbursementHandlers(reimbursementSvc)
	walletHandlers := handlers.NewWalletHandlers(walletSvc)
	documentHandlers := handlers.NewDocumentHandlers(documentSvc)

	e := echo.New()
	e.HideBanner = true

	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowedOrigins,
	}))
	e.Pre(echoMiddleware.RemoveTrailingSlash())

	// Public endpoints
	e.GET("/health", healthHandlers.HealthCheck)

	v1 := e.Group("/v1")
	v1.GET("/config/:subdomain", configHandlers.GetTenantConfig)
	v1.GET("/module-access", configHandlers.CheckModuleAccess)
	v1.POST("/auth/login", authHandlers.Login)
	v1.POST("/auth/refresh", authHandlers.Refresh)

	// Authenticated endpoints
	protected := v1.Group("")
	protected.Use(middleware.JWTMiddleware(cfg.JWT.Secret))

	protected.GET("/auth/me", authHandlers.Me)

	// Provisioning console, admin only
	admin := protected.Group("", middleware.RequireAdmin())
	admin.GET("/modules", moduleHandlers.ListModules)
	admin.POST("/modules/initialize", moduleHandlers.InitializeModules)
	admin.POST("/tenants", tenantHandlers.CreateTenant)
	admin.GET("/tenants", tenantHandlers.ListTenants)
	admin.GET("/tenants/:id", tenantHandlers.GetTenant)
	admin.PUT("/tenants/:id", tenantHandlers.UpdateTenant)
	admin.DELETE("/tenants/:id", tenantHandlers.DeactivateTenant)
	admin.PUT("/tenants/:id/modules/:key", tenantHandlers.ToggleModule)

	// Employee directory and notes (core module, no gate)
	protected.POST("/employees", employeeHandlers.CreateEmployee)
	protected.GET("/employees", employeeHandlers.ListEmployees)
	protected.GET("/employees/:id", employeeHandlers.GetEmployee)
	protected.PUT("/employees/:id", employeeHandlers.UpdateEmployee)
	protected.DELETE("/employees/:id", employeeHandlers.DeleteEmployee)
	protected.POST("/employees/:id/notes", employeeHandlers.AddNote)
	protected.GET("/employees/:id/notes", employeeHandlers.ListNotes)
	protected.DELETE("/employees/:id/notes/:noteId", employeeHandlers.DeleteNote)

	// Optional modules sit behind the access gate; disabling the module
	// locks the routes immediately.
	attendance := protected.Group("/attendance", middleware.RequireModule(tenantSvc, gateSvc, models.ModuleAttendance))
	attendance.POST("", attendanceHandlers.RecordAttendance)
	attendance.GET("", attendanceHandlers.ListAttendance)
	attendance.DELETE("/:id", attendanceHandlers.DeleteAttendance)

	leave := protected.Group("/leave-requests", middleware.RequireModule(tenantSvc, gateSvc, models.ModuleLeave))
	leave.POST("", leaveHandlers.CreateLeaveRequest)
	leave.GET("", leaveHandlers.ListLeaveRequests)
	leave.GET("/:id", leaveHandlers.GetLeaveRequest)
	leave.POST("/:id/approve", leaveHandlers.ApproveLeaveRequest)
	leave.POST("/:id/reject", leaveHandlers.RejectLeaveRequest)

	complaints := protected.Group("/complaints", middleware.RequireModule(tenantSvc, gateSvc, models.ModuleComplaints))
	complaints.POST("", complaintHandlers.CreateComplaint)
	complaints.GET("", complaintHandlers.ListComplaints)
	complaints.GET("/:id", complaintHandlers.GetComplaint)
	complaints.PUT("/:id/status", complaintHandlers.UpdateComplaintStatus)
	complaints.POST("/:id/replies", complaintHandlers.AddReply)
	complaints.GET("/:id/replies", complaintHandlers.ListReplies)

	reimbursements := protected.Group("/reimbursements", middleware.RequireModule(tenantSvc, gateSvc, models.ModuleReimbursements))
	reimbursements.POST("", reimbursementHandlers.CreateReimbursement)
	reimbursements.GET("", reimbursementHandlers.ListReimbursements)
	reimbursements.GET("/:id", reimbursementHandlers.GetReimbursement)
	reimbursements.POST("/:id/approve", reimbursementHandlers.ApproveReimbursement)
	reimbursements.POST("/:id/reject", reimbursementHandlers.RejectReimbursement)

	wallets := protected.Group("/wallets", middleware.RequireModule(tenantSvc, gateSvc, models.ModuleWallet))
	wallets.GET("/:employeeId", walletHandlers.GetWallet)
	wallets.POST("/:employeeId/deposit", walletHandlers.Deposit)
	wallets.POST("/:employeeId/withdraw", walletHandlers.Withdraw)
	wallets.GET("/:employeeId/transactions", walletHandlers.ListTransactions)

	documents := protected.Group("/documents", middleware.RequireModule(tenantSvc, gateSvc, models.ModuleDocuments))
	documents.POST("", documentHandlers.UploadDocument)
	documents.GET("", documentHandlers.ListDocuments)
	documents.GET("/:id/download", documentHandlers.DownloadDocument)
	documents.DELETE("/:id", documentHandlers.DeleteDocument)

	scheduler, err := background.NewJobScheduler(attendanceSvc)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := scheduler.Stop(); err != nil {
		log.Printf("Failed to stop scheduler: %v", err)
	}
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}
}
