package auth

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

type staffAuthUsecase struct {
	StaffRepository        contracts.StaffRepository
	RefreshTokenRepository contracts.RefreshTokenRepository
	RedisRepository        contracts.RedisRepository
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

var (
	staffAuthUsecaseInstance contracts.StaffAuthUsecase
	onceStaffAuthUsecase     sync.Once
)

func NewStaffAuthUsecase(
	staffRepository contracts.StaffRepository,
	refreshTokenRepository contracts.RefreshTokenRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) (contracts.StaffAuthUsecase, error) {
	onceStaffAuthUsecase.Do(func() {
		staffAuthUsecaseInstance = &staffAuthUsecase{
			StaffRepository:        staffRepository,
			RefreshTokenRepository: refreshTokenRepository,
			RedisRepository:        redisRepository,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
	})
	return staffAuthUsecaseInstance, nil
}

// createSession stores the login session in Redis and returns its id.
// The session outlives the access token: it stays valid for the whole
// refresh window and refresh reuses it.
func (uc *staffAuthUsecase) createSession(ctx context.Context, userID, role, email string) (string, error) {
	sessionID := utils.GenerateSessionID()
	session := models.Session{
		SessionID: sessionID,
		UserID:    userID,
		Role:      role,
		Email:     email,
		LoginAt:   time.Now(),
	}
	ttl := time.Duration(uc.InternalConfig.JWT.RefreshTokenExpTimeInDay) * 24 * time.Hour
	if err := uc.RedisRepository.Set(ctx, sessionID, session, ttl); err != nil {
		return "", err
	}
	return sessionID, nil
}

func (uc *staffAuthUsecase) issueRefreshToken(ctx context.Context, staff *models.Staff, deviceID string) (string, error) {
	token, tokenHash, err := utils.GenerateRefreshToken()
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}

	now := time.Now()
	model := &models.RefreshToken{
		UserID:    staff.ID,
		TokenHash: tokenHash,
		DeviceID:  deviceID,
		ExpiresAt: now.Add(time.Duration(uc.InternalConfig.JWT.RefreshTokenExpTimeInDay) * 24 * time.Hour),
	}
	model.CreatedAt = now
	model.UpdatedAt = now

	if _, err := uc.RefreshTokenRepository.CreateToken(ctx, model); err != nil {
		return "", err
	}
	return token, nil
}

func (uc *staffAuthUsecase) Login(ctx context.Context, request *requests.StaffLogin) (*responses.StaffLogin, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("staffAuthUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	staff, err := uc.StaffRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("staffAuthUsecase.Login error finding staff by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if staff == nil || !utils.CheckPasswordHash(request.Password, staff.PasswordHash) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	sessionID, err := uc.createSession(ctx, staff.ID.Hex(), staff.Role, staff.Email)
	if err != nil {
		uc.Log.Error("staffAuthUsecase.Login error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	accessToken, err := utils.GenerateAccessJWT(
		sessionID,
		staff.ID.Hex(),
		staff.Role,
		uc.InternalConfig.JWT.Secret,
		time.Duration(uc.InternalConfig.JWT.StaffExpTimeInMinute)*time.Minute,
	)
	if err != nil {
		return nil, err
	}

	deviceID := request.DeviceID
	if deviceID == "" {
		deviceID = utils.GenerateDeviceID()
	}
	refreshToken, err := uc.issueRefreshToken(ctx, staff, deviceID)
	if err != nil {
		uc.Log.Error("staffAuthUsecase.Login error issuing refresh token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("staffAuthUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("staff_id", staff.ID.Hex()),
	)
	return &responses.StaffLogin{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		DeviceID:     deviceID,
	}, nil
}

// Refresh rotates the refresh token: the presented token is revoked and a
// new pair is minted, so a replayed old token dies on first reuse.
func (uc *staffAuthUsecase) Refresh(ctx context.Context, request *requests.RefreshAccessToken) (*responses.RefreshAccessToken, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("staffAuthUsecase.Refresh called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	stored, err := uc.RefreshTokenRepository.FindActiveByHash(ctx, utils.HashRefreshToken(request.RefreshToken))
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, exceptions.ErrRefreshTokenInvalid(nil)
	}
	if request.DeviceID != "" && stored.DeviceID != "" && stored.DeviceID != request.DeviceID {
		return nil, exceptions.ErrRefreshTokenInvalid(nil)
	}

	staff, err := uc.StaffRepository.FindByID(ctx, stored.UserID.Hex())
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, exceptions.ErrRefreshTokenInvalid(nil)
	}

	if err := uc.RefreshTokenRepository.RevokeByID(ctx, stored.ID.Hex()); err != nil {
		return nil, err
	}

	sessionID, err := uc.createSession(ctx, staff.ID.Hex(), staff.Role, staff.Email)
	if err != nil {
		return nil, err
	}
	accessToken, err := utils.GenerateAccessJWT(
		sessionID,
		staff.ID.Hex(),
		staff.Role,
		uc.InternalConfig.JWT.Secret,
		time.Duration(uc.InternalConfig.JWT.StaffExpTimeInMinute)*time.Minute,
	)
	if err != nil {
		return nil, err
	}
	refreshToken, err := uc.issueRefreshToken(ctx, staff, stored.DeviceID)
	if err != nil {
		return nil, err
	}

	return &responses.RefreshAccessToken{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *staffAuthUsecase) Logout(ctx context.Context, sessionID string, request *requests.RefreshAccessToken) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("staffAuthUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.RefreshToken != "" {
		if err := uc.RefreshTokenRepository.RevokeByHash(ctx, utils.HashRefreshToken(request.RefreshToken)); err != nil {
			uc.Log.Error("staffAuthUsecase.Logout error revoking refresh token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return err
		}
	}
	if sessionID != "" {
		if err := uc.RedisRepository.Delete(ctx, sessionID); err != nil {
			return err
		}
	}
	return nil
}

func (uc *staffAuthUsecase) Me(ctx context.Context, staffID string) (*responses.StaffProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("staffAuthUsecase.Me called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	staff, err := uc.StaffRepository.FindByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	return &responses.StaffProfile{
		ID:        staff.ID.Hex(),
		FirstName: staff.FirstName,
		LastName:  staff.LastName,
		Email:     staff.Email,
		Contact:   staff.Contact,
		Role:      staff.Role,
	}, nil
}
