package contracts

import (
	"campushub-service/internal/app/models"
	"campushub-service/internal/pkg/dto/requests"
	"campushub-service/internal/pkg/dto/responses"
	"context"
)

type StudentUsecase interface {
	Login(ctx context.Context, request *requests.StudentLogin) (*responses.StudentLogin, error)
	ChangePassword(ctx context.Context, studentID string, request *requests.ChangePassword) error
	Me(ctx context.Context, studentID string) (*responses.StudentProfile, error)
}

type StudentRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Student, error)
	FindByID(ctx context.Context, studentID string) (*models.Student, error)
	FindByClassID(ctx context.Context, classID string) ([]models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) (string, error)
}

type StudentAuthRepository interface {
	FindByStudentID(ctx context.Context, studentID string) (*models.StudentAuth, error)
	UpdateAuth(ctx context.Context, auth *models.StudentAuth) error
	CreateAuth(ctx context.Context, auth *models.StudentAuth) (string, error)
}
