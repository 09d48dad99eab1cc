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

	cancelAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/cancel_appointment"
	checkAvailabilityHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/check_availability"
	createAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_appointment"
	createBusinessHoursHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_business_hours"
	createClosureHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_closure"
	createCompanyHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_company"
	createServiceHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_service"
	deleteClosureHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/delete_closure"
	getAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_available_slots"
	getCompanyHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_company"
	getServiceHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_service"
	listAppointmentsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_appointments"
	listBusinessHoursHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_business_hours"
	listClosuresHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_closures"
	listCompaniesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_companies"
	listServicesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_services"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	calendarRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/calendar"
	catalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	companyRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/company"
	appointmentsService "github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	calendarService "github.com/m04kA/SMC-AppointmentService/internal/service/calendar"
	catalogService "github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
	companiesService "github.com/m04kA/SMC-AppointmentService/internal/service/companies"
	bookAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/book_appointment"
	evaluateAvailabilityUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/evaluate_availability"
	getAvailableSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

func main() {
	// Путь к конфигурации можно переопределить через CONFIG_PATH
	configPath := defaultConfigPath
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		verdictRecorder  evaluateAvailabilityUC.VerdictRecorder
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		verdictRecorder = metricsCollector
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

	// Без метрик обертка работает как обычный *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	// Инициализируем репозитории
	companyRepository := companyRepo.NewRepository(wrappedDB)
	calendarRepository := calendarRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	companySvc := companiesService.NewService(companyRepository, log)
	calendarSvc := calendarService.NewService(calendarRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)

	// Инициализируем use cases
	evaluateAvailabilityUseCase := evaluateAvailabilityUC.NewUseCase(
		calendarRepository,
		catalogRepository,
		appointmentRepository,
		verdictRecorder,
		log,
	)

	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		evaluateAvailabilityUseCase,
		appointmentRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		calendarRepository,
		catalogRepository,
		appointmentRepository,
		log,
	)

	// Инициализируем handlers
	createCompany := createCompanyHandler.NewHandler(companySvc, log)
	getCompany := getCompanyHandler.NewHandler(companySvc, log)
	listCompanies := listCompaniesHandler.NewHandler(companySvc, log)
	createBusinessHours := createBusinessHoursHandler.NewHandler(calendarSvc, log)
	listBusinessHours := listBusinessHoursHandler.NewHandler(calendarSvc, log)
	createClosure := createClosureHandler.NewHandler(calendarSvc, log)
	listClosures := listClosuresHandler.NewHandler(calendarSvc, log)
	deleteClosure := deleteClosureHandler.NewHandler(calendarSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getService := getServiceHandler.NewHandler(catalogSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(evaluateAvailabilityUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Компании ---
	api.HandleFunc("/companies", createCompany.Handle).Methods(http.MethodPost)
	api.HandleFunc("/companies", listCompanies.Handle).Methods(http.MethodGet)
	api.HandleFunc("/companies/{companyId}", getCompany.Handle).Methods(http.MethodGet)

	// --- Календарь ---
	api.HandleFunc("/companies/{companyId}/business-hours", createBusinessHours.Handle).Methods(http.MethodPost)
	api.HandleFunc("/companies/{companyId}/business-hours", listBusinessHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/companies/{companyId}/closures", createClosure.Handle).Methods(http.MethodPost)
	api.HandleFunc("/companies/{companyId}/closures", listClosures.Handle).Methods(http.MethodGet)
	api.HandleFunc("/companies/{companyId}/closures/{date}", deleteClosure.Handle).Methods(http.MethodDelete)

	// --- Каталог услуг ---
	api.HandleFunc("/companies/{companyId}/services", createService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/companies/{companyId}/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/companies/{companyId}/services/{serviceId}", getService.Handle).Methods(http.MethodGet)

	// --- Доступность ---
	api.HandleFunc("/companies/{companyId}/availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/companies/{companyId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Записи ---
	api.HandleFunc("/companies/{companyId}/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/companies/{companyId}/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", cancelAppointment.Handle).Methods(http.MethodDelete)

	// Preflight: mux middleware срабатывает только на совпавших маршрутах
	api.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

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
	close(stopMetricsCh)

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
