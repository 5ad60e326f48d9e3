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

	cancelAppointmentHandler "github.com/LimoB/clinic-booking-service/internal/api/handlers/cancel_appointment"
	confirmPaymentHandler "github.com/LimoB/clinic-booking-service/internal/api/handlers/confirm_payment"
	createAppointmentHandler "github.com/LimoB/clinic-booking-service/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/LimoB/clinic-booking-service/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/LimoB/clinic-booking-service/internal/api/handlers/get_available_slots"
	getBulkAvailabilityHandler "github.com/LimoB/clinic-booking-service/internal/api/handlers/get_bulk_availability"
	getDoctorAppointmentsHandler "github.com/LimoB/clinic-booking-service/internal/api/handlers/get_doctor_appointments"
	getDoctorAvailabilityHandler "github.com/LimoB/clinic-booking-service/internal/api/handlers/get_doctor_availability"
	getDoctorScheduleHandler "github.com/LimoB/clinic-booking-service/internal/api/handlers/get_doctor_schedule"
	getUserAppointmentsHandler "github.com/LimoB/clinic-booking-service/internal/api/handlers/get_user_appointments"
	rescheduleAppointmentHandler "github.com/LimoB/clinic-booking-service/internal/api/handlers/reschedule_appointment"
	updateAppointmentStatusHandler "github.com/LimoB/clinic-booking-service/internal/api/handlers/update_appointment_status"
	updateDoctorScheduleHandler "github.com/LimoB/clinic-booking-service/internal/api/handlers/update_doctor_schedule"
	"github.com/LimoB/clinic-booking-service/internal/api/middleware"
	"github.com/LimoB/clinic-booking-service/internal/config"
	apptRepo "github.com/LimoB/clinic-booking-service/internal/infra/storage/appointment"
	scheduleRepo "github.com/LimoB/clinic-booking-service/internal/infra/storage/schedule"
	notificationsClient "github.com/LimoB/clinic-booking-service/internal/integrations/notifications"
	paymentsClient "github.com/LimoB/clinic-booking-service/internal/integrations/payments"
	appointmentsService "github.com/LimoB/clinic-booking-service/internal/service/appointments"
	scheduleService "github.com/LimoB/clinic-booking-service/internal/service/schedule"
	createAppointmentUC "github.com/LimoB/clinic-booking-service/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/LimoB/clinic-booking-service/internal/usecase/get_availability"
	getBulkAvailabilityUC "github.com/LimoB/clinic-booking-service/internal/usecase/get_bulk_availability"
	rescheduleAppointmentUC "github.com/LimoB/clinic-booking-service/internal/usecase/reschedule_appointment"
	"github.com/LimoB/clinic-booking-service/pkg/dbmetrics"
	"github.com/LimoB/clinic-booking-service/pkg/logger"
	"github.com/LimoB/clinic-booking-service/pkg/metrics"
	"github.com/LimoB/clinic-booking-service/pkg/simpletxmanager"
	"github.com/LimoB/clinic-booking-service/pkg/txmanager"
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

	log.Info("Starting clinic-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем интеграционных клиентов
	paymentClient := paymentsClient.NewClient(
		cfg.PaymentService.URL,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		log,
	)
	notificationClient := notificationsClient.NewClient(
		cfg.NotificationService.URL,
		time.Duration(cfg.NotificationService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (PaymentService=%s timeout=%ds, NotificationService=%s timeout=%ds)",
		cfg.PaymentService.URL, cfg.PaymentService.Timeout,
		cfg.NotificationService.URL, cfg.NotificationService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *apptRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = apptRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = apptRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		notificationClient,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		log,
	)

	getBulkAvailabilityUseCase := getBulkAvailabilityUC.NewUseCase(
		getAvailabilityUseCase,
		scheduleRepository,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		paymentClient,
		notificationClient,
		txMgr,
		log,
	)

	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		notificationClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailabilityUseCase, log)
	getDoctorAvailability := getDoctorAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getBulkAvailability := getBulkAvailabilityHandler.NewHandler(getBulkAvailabilityUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	confirmPayment := confirmPaymentHandler.NewHandler(appointmentSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentSvc, log)
	getDoctorAppointments := getDoctorAppointmentsHandler.NewHandler(appointmentSvc, log)
	getDoctorSchedule := getDoctorScheduleHandler.NewHandler(scheduleSvc, log)
	updateDoctorSchedule := updateDoctorScheduleHandler.NewHandler(scheduleSvc, log)

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

	// Доступные слоты врача на дату
	api.HandleFunc("/available-slots/{doctorId}/{date}",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Полная доступность врача на дату
	api.HandleFunc("/doctors/{doctorId}/availability",
		getDoctorAvailability.Handle).Methods(http.MethodGet)

	// Массовый статус доступности врачей
	api.HandleFunc("/availability-status",
		getBulkAvailability.Handle).Methods(http.MethodGet)

	// Расписание врача
	api.HandleFunc("/doctors/{doctorId}/schedule",
		getDoctorSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи на приём ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Перенос записи
	protected.HandleFunc("/appointments/{appointmentId}/reschedule",
		rescheduleAppointment.Handle).Methods(http.MethodPut)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel",
		cancelAppointment.Handle).Methods(http.MethodPatch)

	// Обновление статуса записи
	protected.HandleFunc("/appointments/{appointmentId}/status",
		updateAppointmentStatus.Handle).Methods(http.MethodPut)

	// Подтверждение оплаты (колбэк платёжного сервиса)
	protected.HandleFunc("/appointments/{appointmentId}/confirm-payment",
		confirmPayment.Handle).Methods(http.MethodPost)

	// История записей пациента
	protected.HandleFunc("/users/{userId}/appointments",
		getUserAppointments.Handle).Methods(http.MethodGet)

	// --- Для врачей ---
	// Список записей врача
	protected.HandleFunc("/doctors/{doctorId}/appointments",
		getDoctorAppointments.Handle).Methods(http.MethodGet)

	// Обновление расписания врача
	protected.HandleFunc("/doctors/{doctorId}/schedule",
		updateDoctorSchedule.Handle).Methods(http.MethodPut)

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
