package students

import (
	"campushub-service/internal/app/config"
	"campushub-service/internal/app/contracts"
	"campushub-service/internal/app/models"
	"campushub-service/internal/pkg/constvars"
	"campushub-service/internal/pkg/dto/requests"
	"campushub-service/internal/pkg/dto/responses"
	"campushub-service/internal/pkg/exceptions"
	"campushub-service/internal/pkg/utils"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type studentUsecase struct {
	StudentRepository     contracts.StudentRepository
	StudentAuthRepository contracts.StudentAuthRepository
	RedisRepository       contracts.RedisRepository
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	studentUsecaseInstance contracts.StudentUsecase
	onceStudentUsecase     sync.Once
)

func NewStudentUsecase(
	studentRepository contracts.StudentRepository,
	studentAuthRepository contracts.StudentAuthRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) (contracts.StudentUsecase, error) {
	onceStudentUsecase.Do(func() {
		studentUsecaseInstance = &studentUsecase{
			StudentRepository:     studentRepository,
			StudentAuthRepository: studentAuthRepository,
			RedisRepository:       redisRepository,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return studentUsecaseInstance, nil
}

func (uc *studentUsecase) Login(ctx context.Context, request *requests.StudentLogin) (*responses.StudentLogin, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("studentUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	student, err := uc.StudentRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("studentUsecase.Login error finding student by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if student == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	auth, err := uc.StudentAuthRepository.FindByStudentID(ctx, student.ID.Hex())
	if err != nil {
		return nil, err
	}
	if auth == nil {
		return nil, exceptions.ErrStudentAuthNotInitialized(nil)
	}
	if !utils.CheckPasswordHash(request.Password, auth.PasswordHash) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	now := time.Now()
	auth.LastLogin = &now
	auth.UpdatedAt = now
	if err := uc.StudentAuthRepository.UpdateAuth(ctx, auth); err != nil {
		uc.Log.Error("studentUsecase.Login error recording last login",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	sessionID := utils.GenerateSessionID()
	session := models.Session{
		SessionID: sessionID,
		UserID:    student.ID.Hex(),
		Role:      constvars.RoleStudent,
		Email:     student.Email,
		LoginAt:   now,
	}
	expiry := time.Duration(uc.InternalConfig.JWT.StudentExpTimeInMinute) * time.Minute
	if err := uc.RedisRepository.Set(ctx, sessionID, session, expiry); err != nil {
		return nil, err
	}

	accessToken, err := utils.GenerateAccessJWT(
		sessionID,
		student.ID.Hex(),
		constvars.RoleStudent,
		uc.InternalConfig.JWT.Secret,
		expiry,
	)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("studentUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("student_id", student.ID.Hex()),
	)
	return &responses.StudentLogin{
		AccessToken:        accessToken,
		MustChangePassword: auth.MustChangePassword,
	}, nil
}

func (uc *studentUsecase) ChangePassword(ctx context.Context, studentID string, request *requests.ChangePassword) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("studentUsecase.ChangePassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	auth, err := uc.StudentAuthRepository.FindByStudentID(ctx, studentID)
	if err != nil {
		return err
	}
	if auth == nil {
		return exceptions.ErrStudentAuthNotInitialized(nil)
	}
	if !utils.CheckPasswordHash(request.CurrentPassword, auth.PasswordHash) {
		return exceptions.ErrInvalidEmailOrPassword(nil)
	}

	hash, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}
	auth.PasswordHash = hash
	auth.MustChangePassword = false
	auth.UpdatedAt = time.Now()

	if err := uc.StudentAuthRepository.UpdateAuth(ctx, auth); err != nil {
		uc.Log.Error("studentUsecase.ChangePassword error updating credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *studentUsecase) Me(ctx context.Context, studentID string) (*responses.StudentProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("studentUsecase.Me called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	student, err := uc.StudentRepository.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	return &responses.StudentProfile{
		ID:        student.ID.Hex(),
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Email:     student.Email,
		ClassID:   student.ClassID.Hex(),
		CourseID:  student.CourseID.Hex(),
		StreamID:  student.StreamID.Hex(),
	}, nil
}
