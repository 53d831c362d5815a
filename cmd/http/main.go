package main

import (
	"context"
	"fisiosalud-service/internal/app/config"
	"fisiosalud-service/internal/app/delivery/http/middlewares"
	"fisiosalud-service/internal/app/delivery/http/routers"
	"fisiosalud-service/internal/app/drivers/database"
	"fisiosalud-service/internal/app/drivers/logger"
	"fisiosalud-service/internal/app/drivers/messaging"
	"fisiosalud-service/internal/app/drivers/storage"
	"fisiosalud-service/internal/app/services/catalog"
	"fisiosalud-service/internal/app/services/clinicalsummary"
	"fisiosalud-service/internal/app/services/records"
	"fisiosalud-service/internal/app/services/rips"
	"fisiosalud-service/internal/app/services/shared/audit"
	sharedredis "fisiosalud-service/internal/app/services/shared/redis"
	sharedstorage "fisiosalud-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared infrastructure
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	storageService := sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	auditPublisher := audit.NewRabbitMQAuditPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.RIPS.AuditQueue)

	// Middlewares
	middlewares := middlewares.New(bootstrap.ZapLogger, bootstrap.InternalConfig)

	// Service catalog: mongo overrides merged over the seeded defaults. A
	// failed load falls back to the seed so generation keeps working.
	catalogRepository := catalog.NewCatalogMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	loadCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	loadedEntries, err := catalogRepository.FindAll(loadCtx)
	if err != nil {
		bootstrap.Logger.Warnf("Failed to load catalog overrides, using seeded defaults: %v", err)
	}
	serviceCatalog := catalog.NewRegistry(loadedEntries)
	catalogUsecase := catalog.NewCatalogUsecase(serviceCatalog)
	catalogController := catalog.NewCatalogController(bootstrap.ZapLogger, catalogUsecase)

	// Records
	patientRepository := records.NewPatientMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	consultationRepository := records.NewConsultationMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	groupSessionRepository := records.NewGroupSessionMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	perinatalRepository := records.NewPerinatalSessionMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	recordAggregator := records.NewRecordAggregator(
		patientRepository,
		consultationRepository,
		groupSessionRepository,
		perinatalRepository,
		bootstrap.ZapLogger,
	)

	// RIPS
	ripsConverter := rips.NewConverter(serviceCatalog)
	ripsUsecase := rips.NewRIPSUsecase(
		recordAggregator,
		ripsConverter,
		redisRepository,
		storageService,
		auditPublisher,
		bootstrap.InternalConfig,
		bootstrap.ZapLogger,
	)
	ripsController := rips.NewRIPSController(bootstrap.ZapLogger, ripsUsecase, bootstrap.InternalConfig)

	// Clinical summaries
	clinicalSummaryUsecase := clinicalsummary.NewClinicalSummaryUsecase(
		patientRepository,
		consultationRepository,
		bootstrap.InternalConfig,
		bootstrap.ZapLogger,
	)
	clinicalSummaryController := clinicalsummary.NewClinicalSummaryController(bootstrap.ZapLogger, clinicalSummaryUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		ripsController,
		clinicalSummaryController,
		catalogController,
	)
}
