package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/tallerhq/ops-backend-go/internal/config"
	appHTTP "github.com/tallerhq/ops-backend-go/internal/handler/http"
	"github.com/tallerhq/ops-backend-go/internal/pkg/database"
	"github.com/tallerhq/ops-backend-go/internal/pkg/jwt"
	"github.com/tallerhq/ops-backend-go/internal/pkg/storage"
	"github.com/tallerhq/ops-backend-go/internal/repository/postgresql"
	compdayService "github.com/tallerhq/ops-backend-go/internal/service/compday"
	holidayService "github.com/tallerhq/ops-backend-go/internal/service/holiday"
	leaveService "github.com/tallerhq/ops-backend-go/internal/service/leave"
	overtimeService "github.com/tallerhq/ops-backend-go/internal/service/overtime"
	punchService "github.com/tallerhq/ops-backend-go/internal/service/punch"
	reportService "github.com/tallerhq/ops-backend-go/internal/service/report"
	scheduleService "github.com/tallerhq/ops-backend-go/internal/service/schedule"
	timebankService "github.com/tallerhq/ops-backend-go/internal/service/timebank"
	vacationService "github.com/tallerhq/ops-backend-go/internal/service/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	timeBankRepo := postgresql.NewTimeBankRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	compDayRepo := postgresql.NewCompDayRepository(db)
	vacationRequestRepo := postgresql.NewVacationRequestRepository(db)
	vacationBalanceRepo := postgresql.NewVacationBalanceRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	shiftAssignmentRepo := postgresql.NewShiftAssignmentRepository(db)
	specialScheduleRepo := postgresql.NewSpecialScheduleRepository(db)
	configRepo := postgresql.NewConfigRepository(db)
	txRunner := postgresql.NewTxRunner(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	scheduleSvc := scheduleService.NewScheduleService(shiftRepo, shiftAssignmentRepo, specialScheduleRepo, configRepo)
	timeBankSvc := timebankService.NewTimeBankService(timeBankRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo, holidayRepo)
	compDaySvc := compdayService.NewCompDayService(compDayRepo)
	punchSvc := punchService.NewPunchService(punchRepo, employeeRepo, scheduleSvc, timeBankSvc, overtimeSvc, compDaySvc)
	vacationSvc := vacationService.NewVacationService(vacationRequestRepo, vacationBalanceRepo, employeeRepo, txRunner)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, fileStorage)
	reportSvc := reportService.NewReportService(punchRepo, leaveRepo, vacationRequestRepo, timeBankRepo, overtimeRepo, employeeRepo, holidayRepo)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Punch:    appHTTP.NewPunchHandler(punchSvc),
		TimeBank: appHTTP.NewTimeBankHandler(timeBankSvc),
		Overtime: appHTTP.NewOvertimeHandler(overtimeSvc),
		CompDay:  appHTTP.NewCompDayHandler(compDaySvc),
		Vacation: appHTTP.NewVacationHandler(vacationSvc),
		Leave:    appHTTP.NewLeaveHandler(leaveSvc),
		Schedule: appHTTP.NewScheduleHandler(scheduleSvc),
		Holiday:  appHTTP.NewHolidayHandler(holidaySvc),
		Report:   appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
