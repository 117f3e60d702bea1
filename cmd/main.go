package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/zongzewu23/employee-management-system/config"
	"github.com/zongzewu23/employee-management-system/db"
	authhandler "github.com/zongzewu23/employee-management-system/internal/auth/handler"
	authrepo "github.com/zongzewu23/employee-management-system/internal/auth/repository/postgres"
	authservice "github.com/zongzewu23/employee-management-system/internal/auth/service"
	depthandler "github.com/zongzewu23/employee-management-system/internal/department/handler"
	deptrepo "github.com/zongzewu23/employee-management-system/internal/department/repository/postgres"
	deptservice "github.com/zongzewu23/employee-management-system/internal/department/service"
	emphandler "github.com/zongzewu23/employee-management-system/internal/employee/handler"
	emprepo "github.com/zongzewu23/employee-management-system/internal/employee/repository/postgres"
	empservice "github.com/zongzewu23/employee-management-system/internal/employee/service"
	"github.com/zongzewu23/employee-management-system/internal/logger"
	"github.com/zongzewu23/employee-management-system/internal/middleware"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	defer dbPool.Close()

	userRepo := authrepo.NewPostgresUserRepository(dbPool)
	employeeRepo := emprepo.NewPostgresEmployeeRepository(dbPool)
	departmentRepo := deptrepo.NewPostgresDepartmentRepository(dbPool)

	tokenService := authservice.NewTokenService(cfg.JWTSecret, cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	userService := authservice.NewUserService(userRepo, tokenService, zlog)
	employeeService := empservice.NewEmployeeService(employeeRepo, departmentRepo)
	departmentService := deptservice.NewDepartmentService(departmentRepo, employeeRepo)

	authHandler := authhandler.NewAuthHandler(userService)
	employeeHandler := emphandler.NewEmployeeHandler(employeeService)
	departmentHandler := depthandler.NewDepartmentHandler(departmentService)

	authMW := middleware.NewAuthMiddleware(tokenService, userRepo, zlog)

	app := fiber.New()
	app.Use(authMW.Authenticate())

	authhandler.RegisterRoutes(app, authHandler)
	emphandler.RegisterRoutes(app, employeeHandler, authMW)
	depthandler.RegisterRoutes(app, departmentHandler, authMW)

	zlog.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
