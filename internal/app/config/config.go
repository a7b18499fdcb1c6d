package config

import (
	"campushub-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "campushub"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "roster-archive"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                     utils.GetEnvString("APP_ENV", "development"),
			Port:                    utils.GetEnvString("APP_PORT", ":8080"),
			Version:                 utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:          utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:             utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:         utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			ImportMaxRequests:       utils.GetEnvInt("APP_IMPORT_MAX_REQUESTS", 2),
			ImportBlockTimeInMinute: utils.GetEnvInt("APP_IMPORT_BLOCK_TIME_IN_MINUTE", 5),
			RabbitMQAttendanceQueue: utils.GetEnvString("APP_RABBITMQ_ATTENDANCE_QUEUE", "attendance.recorded"),
		},
		JWT: JWT{
			Secret:                   utils.GetEnvString("JWT_SECRET", "anyjwt"),
			StaffExpTimeInMinute:     utils.GetEnvInt("JWT_STAFF_EXP_TIME_IN_MINUTE", 15),
			StudentExpTimeInMinute:   utils.GetEnvInt("JWT_STUDENT_EXP_TIME_IN_MINUTE", 20),
			RefreshTokenExpTimeInDay: utils.GetEnvInt("JWT_REFRESH_TOKEN_EXP_TIME_IN_DAY", 30),
		},
		Timetable: Timetable{
			// 330 = UTC+05:30, the institution's wall clock. "Today" is
			// always derived with this offset, never the server TZ.
			UTCOffsetInMinutes: utils.GetEnvInt("TIMETABLE_UTC_OFFSET_IN_MINUTES", 330),
			CacheTTLInMinutes:  utils.GetEnvInt("TIMETABLE_CACHE_TTL_IN_MINUTES", 5),
		},
	}
}
