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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	createBookingHandler "github.com/chefdechef/booking-service/internal/api/handlers/create_booking"
	createContactHandler "github.com/chefdechef/booking-service/internal/api/handlers/create_contact"
	getAvailabilityHandler "github.com/chefdechef/booking-service/internal/api/handlers/get_availability"
	getBookingHandler "github.com/chefdechef/booking-service/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/chefdechef/booking-service/internal/api/handlers/get_calendar"
	getStatsHandler "github.com/chefdechef/booking-service/internal/api/handlers/get_stats"
	healthHandler "github.com/chefdechef/booking-service/internal/api/handlers/health"
	listBookingsHandler "github.com/chefdechef/booking-service/internal/api/handlers/list_bookings"
	listContactMessagesHandler "github.com/chefdechef/booking-service/internal/api/handlers/list_contact_messages"
	manageClientsHandler "github.com/chefdechef/booking-service/internal/api/handlers/manage_clients"
	updateBookingHandler "github.com/chefdechef/booking-service/internal/api/handlers/update_booking"
	"github.com/chefdechef/booking-service/internal/api/middleware"
	"github.com/chefdechef/booking-service/internal/config"
	"github.com/chefdechef/booking-service/internal/domain"
	bookingRepo "github.com/chefdechef/booking-service/internal/infra/storage/booking"
	clientRepo "github.com/chefdechef/booking-service/internal/infra/storage/client"
	contactRepo "github.com/chefdechef/booking-service/internal/infra/storage/contact"
	"github.com/chefdechef/booking-service/internal/integrations/exchangerates"
	"github.com/chefdechef/booking-service/internal/integrations/resend"
	bookingsService "github.com/chefdechef/booking-service/internal/service/bookings"
	clientsService "github.com/chefdechef/booking-service/internal/service/clients"
	contactsService "github.com/chefdechef/booking-service/internal/service/contacts"
	"github.com/chefdechef/booking-service/internal/service/notifications"
	statsService "github.com/chefdechef/booking-service/internal/service/stats"
	createBookingUC "github.com/chefdechef/booking-service/internal/usecase/create_booking"
	createContactUC "github.com/chefdechef/booking-service/internal/usecase/create_contact_message"
	getAvailabilityUC "github.com/chefdechef/booking-service/internal/usecase/get_availability"
	getCalendarUC "github.com/chefdechef/booking-service/internal/usecase/get_calendar"
	"github.com/chefdechef/booking-service/pkg/dbmetrics"
	"github.com/chefdechef/booking-service/pkg/logger"
	"github.com/chefdechef/booking-service/pkg/metrics"
	"github.com/chefdechef/booking-service/pkg/mq"
	"github.com/chefdechef/booking-service/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
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

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from %s", configPath)

	location := cfg.Booking.Location()
	policy := cfg.Booking.Policy()
	log.Info("Business time zone=%s, availability policy=%s", location, policy)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных. Без настроек БД сервис стартует в деградированном
	// режиме: маршруты, которым нужна БД, отвечают 503.
	dbEnabled := cfg.Database.IsConfigured()
	var (
		wrappedDB *dbmetrics.DB
		dbPinger  healthHandler.Pinger
	)

	if dbEnabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		dbPinger = wrappedDB

		// Проверяем соединение
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = wrappedDB.PingContext(pingCtx)
		cancel()
		if err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	} else {
		log.Warn("Database is not configured: booking, contact and admin routes are disabled")
		wrappedDB = dbmetrics.Wrap(nil, nil)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	contactRepository := contactRepo.NewRepository(wrappedDB)
	clientRepository := clientRepo.NewRepository(wrappedDB)
	recordsRepository := clientRepo.NewRecordsRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Интеграции
	var sender notifications.EmailSender
	if cfg.Email.IsConfigured() {
		sender = resend.NewClient(
			cfg.Email.APIURL,
			cfg.Email.APIKey,
			time.Duration(cfg.Email.Timeout)*time.Second,
			log,
		)
		log.Info("Email notifications enabled (from=%s, admin=%s)", cfg.Email.From, cfg.Email.AdminEmail)
	} else {
		log.Warn("Email is not configured: submissions will be saved without notifications")
	}

	var publisher notifications.EventPublisher
	if cfg.Events.Enabled {
		mqPublisher, err := mq.NewPublisher(cfg.Events.RabbitURL, cfg.Events.Exchange, cfg.Metrics.ServiceName)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer mqPublisher.Close()
		publisher = mqPublisher
		log.Info("Domain events are published to exchange %s", cfg.Events.Exchange)
	}

	ratesClient := exchangerates.NewClient(
		cfg.ExchangeRates.URL,
		time.Duration(cfg.ExchangeRates.Timeout)*time.Second,
		log,
	)
	ratesCache := exchangerates.NewCache(ratesClient, time.Duration(cfg.ExchangeRates.CacheTTL)*time.Second, log)

	// Инициализируем сервисы
	dispatcher := notifications.NewDispatcher(sender, publisher, notifications.Config{
		From:       cfg.Email.From,
		AdminEmail: cfg.Email.AdminEmail,
		SiteURL:    cfg.Email.SiteURL,
		Timeout:    time.Duration(cfg.Email.Timeout) * time.Second,
	}, log)
	clientSvc := clientsService.NewService(clientRepository, recordsRepository, txMgr, log)
	bookingSvc := bookingsService.NewService(bookingRepository, dispatcher, log)
	contactSvc := contactsService.NewService(contactRepository, log)
	statsSvc := statsService.NewService(bookingRepository, ratesCache, location, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		clientSvc,
		dispatcher,
		policy,
		location,
		log,
	)
	createContactUseCase := createContactUC.NewUseCase(
		contactRepository,
		clientSvc,
		dispatcher,
		location,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(bookingRepository, policy, location, log)
	getCalendarUseCase := getCalendarUC.NewUseCase(bookingRepository, policy, location, log)

	// Бизнес-метрики
	if cfg.Metrics.Enabled {
		createBookingUseCase.WithRecorder(func(eventType string) {
			metricsCollector.BookingsCreated.WithLabelValues(domain.EventTypeCategory(eventType)).Inc()
		})
		createContactUseCase.WithRecorder(func() {
			metricsCollector.ContactMessages.Inc()
		})
		bookingSvc.WithRecorder(func(status domain.BookingStatus) {
			metricsCollector.BookingsUpdated.WithLabelValues(string(status)).Inc()
		})
		dispatcher.WithRecorder(func(kind, outcome string) {
			metricsCollector.Notifications.WithLabelValues(kind, outcome).Inc()
		})
		ratesCache.WithObserver(func(outcome string) {
			metricsCollector.ExchangeRateRefreshes.WithLabelValues(outcome).Inc()
		})
	}

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	createContact := createContactHandler.NewHandler(createContactUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	manageClients := manageClientsHandler.NewHandler(clientSvc, log)
	listContactMessages := listContactMessagesHandler.NewHandler(contactSvc, log)
	getStats := getStatsHandler.NewHandler(statsSvc, log)
	health := healthHandler.NewHandler(dbPinger, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Timeout(time.Duration(cfg.Server.RequestTimeout) * time.Second))
	api.Use(middleware.FeatureGate(dbEnabled, log))

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Занятые даты и месячный календарь для формы бронирования
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Заявка на выступление и форма обратной связи
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/contact", createContact.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют сессию администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(middleware.AuthConfig{
		Secret:       []byte(cfg.Auth.JWTSecret),
		CookieName:   cfg.Auth.CookieName,
		AllowedRoles: cfg.Auth.AllowedRoles,
	}, log))

	// --- Заявки ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/calendar", getCalendar.HandleAdmin).Methods(http.MethodGet)

	// --- Клиенты ---
	admin.HandleFunc("/clients/mode", manageClients.Mode).Methods(http.MethodGet)
	admin.HandleFunc("/clients", manageClients.List).Methods(http.MethodGet)
	admin.HandleFunc("/clients", manageClients.Create).Methods(http.MethodPost)
	admin.HandleFunc("/clients/{clientId}", manageClients.Get).Methods(http.MethodGet)
	admin.HandleFunc("/clients/{clientId}", manageClients.Update).Methods(http.MethodPut)
	admin.HandleFunc("/clients/{clientId}", manageClients.Delete).Methods(http.MethodDelete)

	// --- Сообщения и статистика ---
	admin.HandleFunc("/contact-messages", listContactMessages.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер; CORS оборачивает весь роутер: preflight OPTIONS не совпадает с Methods()
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(cfg.CORS.AllowedOrigins)(r),
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
