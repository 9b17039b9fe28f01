package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	assistantHandler "github.com/m04kA/PetHotelService/internal/api/handlers/assistant"
	cancelBookingHandler "github.com/m04kA/PetHotelService/internal/api/handlers/cancel_booking"
	careLogsHandler "github.com/m04kA/PetHotelService/internal/api/handlers/care_logs"
	createBookingHandler "github.com/m04kA/PetHotelService/internal/api/handlers/create_booking"
	dataHandler "github.com/m04kA/PetHotelService/internal/api/handlers/data"
	exportRoomScheduleHandler "github.com/m04kA/PetHotelService/internal/api/handlers/export_room_schedule"
	getBookingHandler "github.com/m04kA/PetHotelService/internal/api/handlers/get_booking"
	getDashboardHandler "github.com/m04kA/PetHotelService/internal/api/handlers/get_dashboard"
	getRoomBoardHandler "github.com/m04kA/PetHotelService/internal/api/handlers/get_room_board"
	getRoomScheduleHandler "github.com/m04kA/PetHotelService/internal/api/handlers/get_room_schedule"
	getUnavailableRoomsHandler "github.com/m04kA/PetHotelService/internal/api/handlers/get_unavailable_rooms"
	listBookingsHandler "github.com/m04kA/PetHotelService/internal/api/handlers/list_bookings"
	listRoomsHandler "github.com/m04kA/PetHotelService/internal/api/handlers/list_rooms"
	loginHandler "github.com/m04kA/PetHotelService/internal/api/handlers/login"
	petsHandler "github.com/m04kA/PetHotelService/internal/api/handlers/pets"
	preChecksHandler "github.com/m04kA/PetHotelService/internal/api/handlers/prechecks"
	setBookingStatusHandler "github.com/m04kA/PetHotelService/internal/api/handlers/set_booking_status"
	setRoomMaintenanceHandler "github.com/m04kA/PetHotelService/internal/api/handlers/set_room_maintenance"
	updateBookingHandler "github.com/m04kA/PetHotelService/internal/api/handlers/update_booking"
	"github.com/m04kA/PetHotelService/internal/api/middleware"
	"github.com/m04kA/PetHotelService/internal/config"
	"github.com/m04kA/PetHotelService/internal/infra/storage/state"
	fileStore "github.com/m04kA/PetHotelService/internal/infra/syncstore/file"
	postgresStore "github.com/m04kA/PetHotelService/internal/infra/syncstore/postgres"
	redisStore "github.com/m04kA/PetHotelService/internal/infra/syncstore/redis"
	s3Store "github.com/m04kA/PetHotelService/internal/infra/syncstore/s3"
	"github.com/m04kA/PetHotelService/internal/integrations/gemini"
	assistantService "github.com/m04kA/PetHotelService/internal/service/assistant"
	authService "github.com/m04kA/PetHotelService/internal/service/auth"
	bookingsService "github.com/m04kA/PetHotelService/internal/service/bookings"
	careLogsService "github.com/m04kA/PetHotelService/internal/service/carelogs"
	dashboardService "github.com/m04kA/PetHotelService/internal/service/dashboard"
	exportService "github.com/m04kA/PetHotelService/internal/service/export"
	petsService "github.com/m04kA/PetHotelService/internal/service/pets"
	preChecksService "github.com/m04kA/PetHotelService/internal/service/prechecks"
	roomsService "github.com/m04kA/PetHotelService/internal/service/rooms"
	snapshotService "github.com/m04kA/PetHotelService/internal/service/snapshot"
	createBookingUC "github.com/m04kA/PetHotelService/internal/usecase/create_booking"
	getAvailableRoomsUC "github.com/m04kA/PetHotelService/internal/usecase/get_available_rooms"
	getRoomBoardUC "github.com/m04kA/PetHotelService/internal/usecase/get_room_board"
	getRoomScheduleUC "github.com/m04kA/PetHotelService/internal/usecase/get_room_schedule"
	"github.com/m04kA/PetHotelService/pkg/idgen"
	"github.com/m04kA/PetHotelService/pkg/logger"
	"github.com/m04kA/PetHotelService/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("PETHOTEL_CONFIG"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level, cfg.Logs.Environment)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting PetHotelService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Состояние отеля живет в памяти, на диск пишется снимок документа
	repo := state.NewRepository()

	remote, closeRemote, err := openSyncStore(ctx, cfg.Sync)
	if err != nil {
		log.Fatal("Failed to initialize %s sync store: %v", cfg.Sync.Backend, err)
	}
	defer closeRemote()
	if remote != nil {
		log.Info("Remote sync enabled (backend=%s)", remote.Name())
	}

	snapshotDir := filepath.Dir(cfg.Storage.SnapshotFile)
	snapshotKey := strings.TrimSuffix(filepath.Base(cfg.Storage.SnapshotFile), filepath.Ext(cfg.Storage.SnapshotFile))
	snapshotSvc := snapshotService.NewService(repo, fileStore.NewStore(snapshotDir), snapshotKey, remote, metricsCollector, log)

	loaded, err := snapshotSvc.LoadLocal(ctx)
	if err != nil {
		log.Fatal("Failed to load snapshot %s: %v", cfg.Storage.SnapshotFile, err)
	}
	if loaded {
		log.Info("State restored from %s", cfg.Storage.SnapshotFile)
	} else {
		log.Info("No snapshot at %s, starting with default rooms", cfg.Storage.SnapshotFile)
	}

	autosaveDone := make(chan struct{})
	go func() {
		defer close(autosaveDone)
		snapshotSvc.RunAutosave(ctx, time.Duration(cfg.Storage.AutosaveIntervalSeconds)*time.Second)
	}()

	// Интеграции
	textGen := cfg.TextGen
	apiKey := textGen.APIKey
	if !textGen.Enabled {
		apiKey = ""
	}
	geminiClient := gemini.NewClient(textGen.URL, apiKey, textGen.Model, textGen.Temperature,
		time.Duration(textGen.Timeout)*time.Second, log)
	log.Info("Text generation client initialized (enabled=%t, model=%s)", geminiClient.Enabled(), textGen.Model)

	ids := idgen.UUID{}
	blockMaintenance := cfg.Booking.BlockMaintenanceRooms

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(repo, repo, repo, repo, metricsCollector, log, blockMaintenance)
	roomSvc := roomsService.NewService(repo, log)
	petSvc := petsService.NewService(repo, repo, repo, ids, log)
	preCheckSvc := preChecksService.NewService(repo, repo, repo, log)
	careLogSvc := careLogsService.NewService(repo, repo, repo, ids, log)
	assistantSvc := assistantService.NewService(geminiClient, repo, repo, repo, repo, metricsCollector, log)
	dashboardSvc := dashboardService.NewService(repo, metricsCollector, cfg.Booking.CapacityRooms, log)
	authSvc := authService.NewService(cfg.Auth.AdminPassword, cfg.Auth.TokenSecret,
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour, log)
	if !authSvc.Enabled() {
		log.Warn("auth.admin_password is empty, API is open without authorization")
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(repo, repo, repo, repo, ids, metricsCollector, log, blockMaintenance)
	getAvailableRoomsUseCase := getAvailableRoomsUC.NewUseCase(repo, repo, metricsCollector, log)
	getRoomBoardUseCase := getRoomBoardUC.NewUseCase(repo, repo, repo, metricsCollector, log)
	getRoomScheduleUseCase := getRoomScheduleUC.NewUseCase(repo, repo, log)

	exportSvc := exportService.NewService(getRoomScheduleUseCase, repo, repo, log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(authSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	setRoomMaintenance := setRoomMaintenanceHandler.NewHandler(roomSvc, log)
	getRoomBoard := getRoomBoardHandler.NewHandler(getRoomBoardUseCase, log)
	getRoomSchedule := getRoomScheduleHandler.NewHandler(getRoomScheduleUseCase, log)
	exportRoomSchedule := exportRoomScheduleHandler.NewHandler(exportSvc, log)
	getUnavailableRooms := getUnavailableRoomsHandler.NewHandler(getAvailableRoomsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	setBookingStatus := setBookingStatusHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	pets := petsHandler.NewHandler(petSvc, log)
	preChecks := preChecksHandler.NewHandler(preCheckSvc, log)
	careLogs := careLogsHandler.NewHandler(careLogSvc, log)
	assistant := assistantHandler.NewHandler(assistantSvc, log)
	dashboard := getDashboardHandler.NewHandler(dashboardSvc, log)
	data := dataHandler.NewHandler(snapshotSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer, если задан пароль)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc))

	// --- Номера ---
	protected.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/board", getRoomBoard.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/schedule", getRoomSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/schedule/export", exportRoomSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/unavailable", getUnavailableRooms.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/{name}/maintenance", setRoomMaintenance.Handle).Methods(http.MethodPut)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", setBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// --- Осмотр при заезде ---
	protected.HandleFunc("/bookings/{bookingId}/prechecks", preChecks.List).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/prechecks/{petId}", preChecks.Save).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}/prechecks/{petId}", preChecks.Get).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/prechecks/{petId}/summary", assistant.PreCheckSummary).Methods(http.MethodPost)

	// --- Питомцы ---
	protected.HandleFunc("/pets", pets.List).Methods(http.MethodGet)
	protected.HandleFunc("/pets", pets.Create).Methods(http.MethodPost)
	protected.HandleFunc("/pets/quick", pets.QuickAdd).Methods(http.MethodPost)
	protected.HandleFunc("/pets/ai-search", assistant.SearchPets).Methods(http.MethodPost)
	protected.HandleFunc("/pets/{petId}", pets.Get).Methods(http.MethodGet)
	protected.HandleFunc("/pets/{petId}", pets.Update).Methods(http.MethodPut)
	protected.HandleFunc("/pets/{petId}", pets.Delete).Methods(http.MethodDelete)

	// --- Дневник ухода ---
	protected.HandleFunc("/care-logs", careLogs.List).Methods(http.MethodGet)
	protected.HandleFunc("/care-logs/in-house", careLogs.InHouse).Methods(http.MethodGet)
	protected.HandleFunc("/care-logs/{petId}/{date}", careLogs.Upsert).Methods(http.MethodPut)
	protected.HandleFunc("/care-logs/{petId}/{date}/note", assistant.CareNote).Methods(http.MethodPost)

	// --- Тексты для владельцев ---
	protected.HandleFunc("/assistant/tips/{petId}", assistant.CareTips).Methods(http.MethodPost)
	protected.HandleFunc("/assistant/welcome/{petId}", assistant.Welcome).Methods(http.MethodPost)

	// --- Дашборд и данные ---
	protected.HandleFunc("/dashboard", dashboard.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/data/export", data.Export).Methods(http.MethodGet)
	protected.HandleFunc("/data/import", data.Import).Methods(http.MethodPost)
	protected.HandleFunc("/sync/{syncId}/push", data.Push).Methods(http.MethodPost)
	protected.HandleFunc("/sync/{syncId}/pull", data.Pull).Methods(http.MethodPost)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	<-ctx.Done()

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Автосохранение делает финальную запись снимка при остановке
	<-autosaveDone

	log.Info("Server stopped gracefully")
}

// openSyncStore подключает удаленное хранилище для push/pull.
// Для backend=none возвращает nil store
func openSyncStore(ctx context.Context, cfg config.SyncConfig) (snapshotService.Store, func(), error) {
	noop := func() {}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Timeout)*time.Second)
	defer cancel()

	switch cfg.Backend {
	case config.SyncBackendPostgres:
		db, err := postgresStore.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, noop, err
		}
		store := postgresStore.NewStore(db, cfg.Postgres.Table)
		if err := store.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		return store, func() { _ = db.Close() }, nil

	case config.SyncBackendRedis:
		client, err := redisStore.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, noop, err
		}
		return redisStore.NewStore(client, cfg.Redis.KeyPrefix), func() { _ = client.Close() }, nil

	case config.SyncBackendS3:
		client, err := s3Store.NewClient(ctx, cfg.S3)
		if err != nil {
			return nil, noop, err
		}
		return s3Store.NewStore(client, cfg.S3.Bucket, cfg.S3.Prefix), noop, nil

	default:
		return nil, noop, nil
	}
}
