package auth

import (
	"campushub-service/internal/app/config"
	"campushub-service/internal/app/models"
	"campushub-service/internal/pkg/constvars"
	"campushub-service/internal/pkg/dto/requests"
	"campushub-service/internal/pkg/exceptions"
	"campushub-service/internal/pkg/utils"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) FindByEmail(ctx context.Context, email string) (*models.Staff, error) {
	args := m.Called(ctx, email)
	staff, _ := args.Get(0).(*models.Staff)
	return staff, args.Error(1)
}

func (m *MockStaffRepository) FindByID(ctx context.Context, staffID string) (*models.Staff, error) {
	args := m.Called(ctx, staffID)
	staff, _ := args.Get(0).(*models.Staff)
	return staff, args.Error(1)
}

func (m *MockStaffRepository) CreateStaff(ctx context.Context, staff *models.Staff) (string, error) {
	args := m.Called(ctx, staff)
	return args.String(0), args.Error(1)
}

func (m *MockStaffRepository) ListStaffs(ctx context.Context) ([]models.Staff, error) {
	args := m.Called(ctx)
	staffs, _ := args.Get(0).([]models.Staff)
	return staffs, args.Error(1)
}

type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) CreateToken(ctx context.Context, token *models.RefreshToken) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *MockRefreshTokenRepository) FindActiveByHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	token, _ := args.Get(0).(*models.RefreshToken)
	return token, args.Error(1)
}

func (m *MockRefreshTokenRepository) RevokeByID(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) RevokeByHash(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func buildAuthTestConfig() *config.InternalConfig {
	return &config.InternalConfig{
		JWT: config.JWT{
			Secret:                   "test-secret",
			StaffExpTimeInMinute:     15,
			RefreshTokenExpTimeInDay: 30,
		},
	}
}

func TestStaffAuthUsecase_Login(t *testing.T) {
	passwordHash, err := utils.HashPassword("correct-password")
	assert.NoError(t, err)

	staff := &models.Staff{
		ID:           primitive.NewObjectID(),
		FirstName:    "Asha",
		Email:        "asha@college.edu",
		Role:         constvars.RoleStaff,
		PasswordHash: passwordHash,
	}

	t.Run("Valid Credentials Mint Session And Token Pair", func(t *testing.T) {
		staffRepo := new(MockStaffRepository)
		tokenRepo := new(MockRefreshTokenRepository)
		redisRepo := new(MockRedisRepository)
		uc := &staffAuthUsecase{
			StaffRepository:        staffRepo,
			RefreshTokenRepository: tokenRepo,
			RedisRepository:        redisRepo,
			InternalConfig:         buildAuthTestConfig(),
			Log:                    zap.NewNop(),
		}

		staffRepo.On("FindByEmail", mock.Anything, "asha@college.edu").Return(staff, nil)
		redisRepo.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("models.Session"), mock.Anything).Return(nil)
		tokenRepo.On("CreateToken", mock.Anything, mock.AnythingOfType("*models.RefreshToken")).Return(primitive.NewObjectID().Hex(), nil)

		response, err := uc.Login(context.Background(), &requests.StaffLogin{
			Email:    "asha@college.edu",
			Password: "correct-password",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, response.AccessToken)
		assert.NotEmpty(t, response.RefreshToken)
		assert.NotEmpty(t, response.DeviceID, "a device id should be generated when the client sends none")
		staffRepo.AssertExpectations(t)
		redisRepo.AssertExpectations(t)
		tokenRepo.AssertExpectations(t)
	})

	t.Run("Wrong Password Rejected", func(t *testing.T) {
		staffRepo := new(MockStaffRepository)
		tokenRepo := new(MockRefreshTokenRepository)
		redisRepo := new(MockRedisRepository)
		uc := &staffAuthUsecase{
			StaffRepository:        staffRepo,
			RefreshTokenRepository: tokenRepo,
			RedisRepository:        redisRepo,
			InternalConfig:         buildAuthTestConfig(),
			Log:                    zap.NewNop(),
		}

		staffRepo.On("FindByEmail", mock.Anything, "asha@college.edu").Return(staff, nil)

		response, err := uc.Login(context.Background(), &requests.StaffLogin{
			Email:    "asha@college.edu",
			Password: "wrong-password",
		})

		assert.Nil(t, response)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		redisRepo.AssertNotCalled(t, "Set")
		tokenRepo.AssertNotCalled(t, "CreateToken")
	})

	t.Run("Unknown Email Gets The Same Error As Wrong Password", func(t *testing.T) {
		staffRepo := new(MockStaffRepository)
		uc := &staffAuthUsecase{
			StaffRepository: staffRepo,
			InternalConfig:  buildAuthTestConfig(),
			Log:             zap.NewNop(),
		}

		staffRepo.On("FindByEmail", mock.Anything, "nobody@college.edu").Return(nil, nil)

		_, err := uc.Login(context.Background(), &requests.StaffLogin{
			Email:    "nobody@college.edu",
			Password: "whatever",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientInvalidEmailOrPassword, customErr.ClientMessage)
	})
}

func TestStaffAuthUsecase_Refresh(t *testing.T) {
	staff := &models.Staff{
		ID:    primitive.NewObjectID(),
		Email: "asha@college.edu",
		Role:  constvars.RoleStaff,
	}

	t.Run("Presented Token Is Revoked And A New Pair Minted", func(t *testing.T) {
		staffRepo := new(MockStaffRepository)
		tokenRepo := new(MockRefreshTokenRepository)
		redisRepo := new(MockRedisRepository)
		uc := &staffAuthUsecase{
			StaffRepository:        staffRepo,
			RefreshTokenRepository: tokenRepo,
			RedisRepository:        redisRepo,
			InternalConfig:         buildAuthTestConfig(),
			Log:                    zap.NewNop(),
		}

		presented := "aaaabbbbccccddddeeeeffff0000111122223333"
		presentedHash := utils.HashRefreshToken(presented)
		stored := &models.RefreshToken{
			ID:        primitive.NewObjectID(),
			UserID:    staff.ID,
			TokenHash: presentedHash,
			DeviceID:  "device-1",
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}

		tokenRepo.On("FindActiveByHash", mock.Anything, presentedHash).Return(stored, nil)
		staffRepo.On("FindByID", mock.Anything, staff.ID.Hex()).Return(staff, nil)
		tokenRepo.On("RevokeByID", mock.Anything, stored.ID.Hex()).Return(nil)
		redisRepo.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("models.Session"), mock.Anything).Return(nil)
		tokenRepo.On("CreateToken", mock.Anything, mock.MatchedBy(func(token *models.RefreshToken) bool {
			// The replacement keeps the device binding but never reuses
			// the presented hash.
			return token.DeviceID == "device-1" && token.TokenHash != presentedHash
		})).Return(primitive.NewObjectID().Hex(), nil)

		response, err := uc.Refresh(context.Background(), &requests.RefreshAccessToken{
			RefreshToken: presented,
			DeviceID:     "device-1",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, response.AccessToken)
		assert.NotEqual(t, presented, response.RefreshToken, "rotation must hand out a new opaque token")
		tokenRepo.AssertExpectations(t)
	})

	t.Run("Unknown Or Revoked Token Rejected", func(t *testing.T) {
		staffRepo := new(MockStaffRepository)
		tokenRepo := new(MockRefreshTokenRepository)
		uc := &staffAuthUsecase{
			StaffRepository:        staffRepo,
			RefreshTokenRepository: tokenRepo,
			InternalConfig:         buildAuthTestConfig(),
			Log:                    zap.NewNop(),
		}

		tokenRepo.On("FindActiveByHash", mock.Anything, mock.Anything).Return(nil, nil)

		response, err := uc.Refresh(context.Background(), &requests.RefreshAccessToken{
			RefreshToken: "stale-token",
		})

		assert.Nil(t, response)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		tokenRepo.AssertNotCalled(t, "RevokeByID")
	})

	t.Run("Device Mismatch Rejected", func(t *testing.T) {
		staffRepo := new(MockStaffRepository)
		tokenRepo := new(MockRefreshTokenRepository)
		uc := &staffAuthUsecase{
			StaffRepository:        staffRepo,
			RefreshTokenRepository: tokenRepo,
			InternalConfig:         buildAuthTestConfig(),
			Log:                    zap.NewNop(),
		}

		presented := "aaaabbbbccccddddeeeeffff0000111122223333"
		stored := &models.RefreshToken{
			ID:        primitive.NewObjectID(),
			UserID:    staff.ID,
			TokenHash: utils.HashRefreshToken(presented),
			DeviceID:  "device-1",
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}
		tokenRepo.On("FindActiveByHash", mock.Anything, mock.Anything).Return(stored, nil)

		_, err := uc.Refresh(context.Background(), &requests.RefreshAccessToken{
			RefreshToken: presented,
			DeviceID:     "device-2",
		})

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientRefreshTokenInvalid, customErr.ClientMessage)
		tokenRepo.AssertNotCalled(t, "RevokeByID")
	})
}

func TestStaffAuthUsecase_Logout(t *testing.T) {
	t.Run("Revokes Refresh Token And Kills Session", func(t *testing.T) {
		tokenRepo := new(MockRefreshTokenRepository)
		redisRepo := new(MockRedisRepository)
		uc := &staffAuthUsecase{
			RefreshTokenRepository: tokenRepo,
			RedisRepository:        redisRepo,
			InternalConfig:         buildAuthTestConfig(),
			Log:                    zap.NewNop(),
		}

		refreshToken := "aaaabbbbccccddddeeeeffff0000111122223333"
		tokenRepo.On("RevokeByHash", mock.Anything, utils.HashRefreshToken(refreshToken)).Return(nil)
		redisRepo.On("Delete", mock.Anything, "session-1").Return(nil)

		err := uc.Logout(context.Background(), "session-1", &requests.RefreshAccessToken{
			RefreshToken: refreshToken,
		})

		assert.NoError(t, err)
		tokenRepo.AssertExpectations(t)
		redisRepo.AssertExpectations(t)
	})

	t.Run("Missing Refresh Token Still Kills Session", func(t *testing.T) {
		tokenRepo := new(MockRefreshTokenRepository)
		redisRepo := new(MockRedisRepository)
		uc := &staffAuthUsecase{
			RefreshTokenRepository: tokenRepo,
			RedisRepository:        redisRepo,
			InternalConfig:         buildAuthTestConfig(),
			Log:                    zap.NewNop(),
		}

		redisRepo.On("Delete", mock.Anything, "session-1").Return(nil)

		err := uc.Logout(context.Background(), "session-1", &requests.RefreshAccessToken{})

		assert.NoError(t, err)
		tokenRepo.AssertNotCalled(t, "RevokeByHash")
		redisRepo.AssertExpectations(t)
	})
}
