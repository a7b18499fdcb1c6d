package contracts

import (
	"campushub-service/internal/app/models"
	"campushub-service/internal/pkg/dto/requests"
	"campushub-service/internal/pkg/dto/responses"
	"context"
)

type AcademicsUsecase interface {
	GetCourses(ctx context.Context) ([]responses.Course, error)
	GetSections(ctx context.Context, courseID string) ([]responses.Section, error)
	GetStudents(ctx context.Context, classID string) ([]responses.Student, error)
	GetStaffs(ctx context.Context) ([]responses.Staff, error)
	ImportStudents(ctx context.Context, request *requests.ImportStudents) (*responses.RosterImport, error)
	ImportStaff(ctx context.Context, request *requests.ImportStaff) (*responses.RosterImport, error)
}

type StreamRepository interface {
	FindByName(ctx context.Context, name string) (*models.Stream, error)
}

type CourseRepository interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	FindByName(ctx context.Context, name string) (*models.Course, error)
}

type ClassRepository interface {
	ListByCourseID(ctx context.Context, courseID string) ([]models.Class, error)
	FindOrCreate(ctx context.Context, class *models.Class) (*models.Class, error)
}

// Storage archives raw import payloads before normalization, for audit.
type Storage interface {
	PutObject(ctx context.Context, objectName string, payload []byte, contentType string) (string, error)
}
