package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campushub-service/internal/app/config"
	"campushub-service/internal/app/delivery/http/middlewares"
	"campushub-service/internal/app/delivery/http/routers"
	"campushub-service/internal/app/drivers/database"
	"campushub-service/internal/app/drivers/logger"
	"campushub-service/internal/app/drivers/messaging"
	"campushub-service/internal/app/drivers/storage"
	"campushub-service/internal/app/services/core/academics"
	"campushub-service/internal/app/services/core/attendance"
	"campushub-service/internal/app/services/core/auth"
	"campushub-service/internal/app/services/core/students"
	"campushub-service/internal/app/services/core/timetable"
	redisrepo "campushub-service/internal/app/services/shared/redis"
	sharedstorage "campushub-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
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
	log.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that were already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)

	// Minio
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(redisRepository, bootstrap.InternalConfig, bootstrap.ZapLogger)

	// Timetable
	templateRepository := timetable.NewTemplateMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	configRepository := timetable.NewConfigMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	configCache := timetable.NewConfigCacheCell(
		configRepository,
		time.Duration(bootstrap.InternalConfig.Timetable.CacheTTLInMinutes)*time.Minute,
		nil,
	)
	timetableUsecase, err := timetable.NewTimetableUsecase(
		templateRepository,
		configRepository,
		configCache,
		bootstrap.InternalConfig,
		bootstrap.ZapLogger,
	)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to create timetable usecase: %v", err)
	}
	timetableController := timetable.NewTimetableController(timetableUsecase, bootstrap.ZapLogger)

	// Staff auth
	staffRepository := auth.NewStaffMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	refreshTokenRepository := auth.NewRefreshTokenMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	staffAuthUsecase, err := auth.NewStaffAuthUsecase(
		staffRepository,
		refreshTokenRepository,
		redisRepository,
		bootstrap.InternalConfig,
		bootstrap.ZapLogger,
	)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to create staff auth usecase: %v", err)
	}
	authController := auth.NewAuthController(staffAuthUsecase, bootstrap.ZapLogger)

	// Attendance
	attendanceRepository := attendance.NewAttendanceMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	attendancePublisher, err := attendance.NewAttendanceEventPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQAttendanceQueue)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to create attendance event publisher: %v", err)
	}
	attendanceUsecase, err := attendance.NewAttendanceUsecase(attendanceRepository, attendancePublisher, bootstrap.ZapLogger)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to create attendance usecase: %v", err)
	}
	attendanceController := attendance.NewAttendanceController(attendanceUsecase, bootstrap.ZapLogger)

	// Students
	studentRepository := students.NewStudentMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	studentAuthRepository := students.NewStudentAuthMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	studentUsecase, err := students.NewStudentUsecase(
		studentRepository,
		studentAuthRepository,
		redisRepository,
		bootstrap.InternalConfig,
		bootstrap.ZapLogger,
	)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to create student usecase: %v", err)
	}
	studentController := students.NewStudentController(studentUsecase, attendanceUsecase, bootstrap.ZapLogger)

	// Academics
	streamRepository := academics.NewStreamMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	courseRepository := academics.NewCourseMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	classRepository := academics.NewClassMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	academicsUsecase, err := academics.NewAcademicsUsecase(
		streamRepository,
		courseRepository,
		classRepository,
		studentRepository,
		studentAuthRepository,
		staffRepository,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.ZapLogger,
	)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to create academics usecase: %v", err)
	}
	academicsController := academics.NewAcademicsController(academicsUsecase, bootstrap.ZapLogger)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		timetableController,
		authController,
		studentController,
		attendanceController,
		academicsController,
	)
}
