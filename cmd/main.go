package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	confirmRescheduleHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/confirm_reschedule"
	createAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_appointment"
	createDayOffHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_day_off"
	createWorkingHoursHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_working_hours"
	deleteDayOffHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/delete_day_off"
	deleteWorkingHoursHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/delete_working_hours"
	getConfigHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_config"
	getServiceSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_service_slots"
	getStaffSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_staff_slots"
	listDaysOffHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_days_off"
	listWorkingHoursHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_working_hours"
	previewRecurrenceHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/preview_recurrence"
	rescheduleAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/reschedule_appointment"
	updateConfigHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_config"
	updateWorkingHoursHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_working_hours"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/cache/configcache"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/recurrence"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	rescheduleRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/reschedule"
	schedulingConfigRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/schedulingconfig"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	staffRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/staff"
	configService "github.com/m04kA/SMC-AppointmentService/internal/service/config"
	scheduleService "github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
	staffService "github.com/m04kA/SMC-AppointmentService/internal/service/staff"
	confirmRescheduleUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/confirm_reschedule"
	createAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	expandRecurrenceUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/expand_recurrence"
	getServiceSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_service_slots"
	getStaffSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_staff_slots"
	rescheduleAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/reschedule_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		appointmentRepository      *appointmentRepo.Repository
		rescheduleRepository       *rescheduleRepo.Repository
		schedulingConfigRepository *schedulingConfigRepo.Repository
		serviceRepository          *serviceRepo.Repository
		staffRepository            *staffRepo.Repository
		txMgr                      *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		rescheduleRepository = rescheduleRepo.NewRepository(wrappedDB)
		schedulingConfigRepository = schedulingConfigRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		rescheduleRepository = rescheduleRepo.NewRepository(db)
		schedulingConfigRepository = schedulingConfigRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(txmanager.WrapSQLDB(db))
	}

	// Инициализируем кэш конфигурации (если Redis включен)
	var cfgCache configService.ConfigCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis unavailable, config cache degraded: %v", err)
		} else {
			log.Info("Connected to Redis at %s", cfg.Redis.Addr)
		}
		cfgCache = configcache.New(redisClient, configcache.DefaultTTL)
	} else {
		cfgCache = configcache.NewNoop()
		log.Info("Redis disabled, config cache is a no-op")
	}

	// Инициализируем сервисы
	configSvc := configService.NewService(schedulingConfigRepository, cfgCache, log)
	scheduleSvc := scheduleService.NewService(configSvc, staffRepository, log)
	staffSvc := staffService.NewService(staffRepository, txMgr, log)

	// Инициализируем use cases
	getServiceSlotsUseCase := getServiceSlotsUC.NewUseCase(
		serviceRepository,
		appointmentRepository,
		scheduleSvc,
		log,
	)
	getStaffSlotsUseCase := getStaffSlotsUC.NewUseCase(
		appointmentRepository,
		rescheduleRepository,
		scheduleSvc,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		serviceRepository,
		appointmentRepository,
		rescheduleRepository,
		scheduleSvc,
		txMgr,
		log,
	)
	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		serviceRepository,
		appointmentRepository,
		rescheduleRepository,
		scheduleSvc,
		txMgr,
		log,
	)
	confirmRescheduleUseCase := confirmRescheduleUC.NewUseCase(
		appointmentRepository,
		rescheduleRepository,
		txMgr,
		log,
	)
	expandRecurrenceUseCase := expandRecurrenceUC.NewUseCase(recurrence.NewEvaluator(), log)

	// Инициализируем handlers
	getServiceSlots := getServiceSlotsHandler.NewHandler(getServiceSlotsUseCase, log)
	getStaffSlots := getStaffSlotsHandler.NewHandler(getStaffSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	confirmReschedule := confirmRescheduleHandler.NewHandler(confirmRescheduleUseCase, log)
	previewRecurrence := previewRecurrenceHandler.NewHandler(expandRecurrenceUseCase, log)
	getConfig := getConfigHandler.NewHandler(configSvc, log)
	updateConfig := updateConfigHandler.NewHandler(configSvc, log)
	createWorkingHours := createWorkingHoursHandler.NewHandler(staffSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(staffSvc, log)
	deleteWorkingHours := deleteWorkingHoursHandler.NewHandler(staffSvc, log)
	listWorkingHours := listWorkingHoursHandler.NewHandler(staffSvc, log)
	createDayOff := createDayOffHandler.NewHandler(staffSvc, log)
	deleteDayOff := deleteDayOffHandler.NewHandler(staffSvc, log)
	listDaysOff := listDaysOffHandler.NewHandler(staffSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты по услуге
	api.HandleFunc("/services/{serviceId}/available-slots",
		getServiceSlots.Handle).Methods(http.MethodGet)

	// Доступные слоты по сотруднику
	api.HandleFunc("/staff/{staffId}/available-slots",
		getStaffSlots.Handle).Methods(http.MethodGet)

	// Текущая конфигурация расписания
	api.HandleFunc("/config", getConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Запрос переноса записи
	protected.HandleFunc("/appointments/{idRequest}/reschedule",
		rescheduleAppointment.Handle).Methods(http.MethodPost)

	// Подтверждение переноса
	protected.HandleFunc("/reschedules/{idRequest}/confirm",
		confirmReschedule.Handle).Methods(http.MethodPost)

	// Предпросмотр повторяющихся записей
	protected.HandleFunc("/recurrence/preview", previewRecurrence.Handle).Methods(http.MethodPost)

	// --- Конфигурация ---
	protected.HandleFunc("/config", updateConfig.Handle).Methods(http.MethodPut)

	// --- Рабочие часы сотрудников ---
	protected.HandleFunc("/staff/{staffId}/working-hours",
		createWorkingHours.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/staff/{staffId}/working-hours",
		listWorkingHours.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/working-hours/{workingHoursId}",
		updateWorkingHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/working-hours/{workingHoursId}",
		deleteWorkingHours.Handle).Methods(http.MethodDelete)

	// --- Выходные дни сотрудников ---
	protected.HandleFunc("/staff/{staffId}/days-off",
		createDayOff.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/staff/{staffId}/days-off",
		listDaysOff.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/days-off/{dayOffId}",
		deleteDayOff.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
