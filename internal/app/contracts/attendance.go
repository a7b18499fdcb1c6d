package contracts

import (
	"campushub-service/internal/app/models"
	"campushub-service/internal/pkg/dto/requests"
	"campushub-service/internal/pkg/dto/responses"
	"context"
)

type AttendanceUsecase interface {
	MarkAttendance(ctx context.Context, request *requests.MarkAttendance) (*responses.Attendance, error)
	GetAttendance(ctx context.Context, request *requests.GetAttendance) (*responses.AttendanceList, error)
	GetStudentAttendance(ctx context.Context, studentID string) (*responses.StudentAttendance, error)
}

type AttendanceRepository interface {
	FindOne(ctx context.Context, classID, staffID string, dateKey string, hour int) (*models.Attendance, error)
	CreateAttendance(ctx context.Context, attendance *models.Attendance) (string, error)
	FindByFilter(ctx context.Context, request *requests.GetAttendance) ([]models.Attendance, error)
	AggregateForStudent(ctx context.Context, studentID string) ([]responses.StudentAttendanceEntry, error)
}

// AttendanceEventPublisher pushes a message per successful mark for
// downstream consumers (reports, guardians notifications). Publishing
// failures are logged, not surfaced: the register write already
// happened.
type AttendanceEventPublisher interface {
	PublishRecorded(ctx context.Context, attendance *models.Attendance) error
}
