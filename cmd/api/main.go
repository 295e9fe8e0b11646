package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/workforcehq/hr-backend-go/internal/config"
	appHTTP "github.com/workforcehq/hr-backend-go/internal/handler/http"
	"github.com/workforcehq/hr-backend-go/internal/pkg/clock"
	"github.com/workforcehq/hr-backend-go/internal/pkg/database"
	"github.com/workforcehq/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workforcehq/hr-backend-go/internal/service/attendance"
	dashboardService "github.com/workforcehq/hr-backend-go/internal/service/dashboard"
	departmentService "github.com/workforcehq/hr-backend-go/internal/service/department"
	employeeService "github.com/workforcehq/hr-backend-go/internal/service/employee"
	performanceService "github.com/workforcehq/hr-backend-go/internal/service/performance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	performanceRepo := postgresql.NewPerformanceRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	clk := clock.NewSystemClock()

	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, departmentRepo, attendanceRepo, clk)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, clk)
	performanceSvc := performanceService.NewPerformanceService(performanceRepo, employeeRepo, clk)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, attendanceRepo, clk)

	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	performanceHandler := appHTTP.NewPerformanceHandler(performanceSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		cfg,
		departmentHandler,
		employeeHandler,
		attendanceHandler,
		performanceHandler,
		dashboardHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
