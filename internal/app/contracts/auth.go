package contracts

import (
	"campushub-service/internal/app/models"
	"campushub-service/internal/pkg/dto/requests"
	"campushub-service/internal/pkg/dto/responses"
	"context"
)

type StaffAuthUsecase interface {
	Login(ctx context.Context, request *requests.StaffLogin) (*responses.StaffLogin, error)
	Refresh(ctx context.Context, request *requests.RefreshAccessToken) (*responses.RefreshAccessToken, error)
	Logout(ctx context.Context, sessionID string, request *requests.RefreshAccessToken) error
	Me(ctx context.Context, staffID string) (*responses.StaffProfile, error)
}

type StaffRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Staff, error)
	FindByID(ctx context.Context, staffID string) (*models.Staff, error)
	CreateStaff(ctx context.Context, staff *models.Staff) (string, error)
	ListStaffs(ctx context.Context) ([]models.Staff, error)
}

type RefreshTokenRepository interface {
	CreateToken(ctx context.Context, token *models.RefreshToken) (string, error)
	FindActiveByHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	RevokeByID(ctx context.Context, tokenID string) error
	RevokeByHash(ctx context.Context, tokenHash string) error
}
