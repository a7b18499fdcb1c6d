package attendance

import (
	"campushub-service/internal/app/models"
	"campushub-service/internal/pkg/constvars"
	"campushub-service/internal/pkg/dto/requests"
	"campushub-service/internal/pkg/dto/responses"
	"campushub-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) FindOne(ctx context.Context, classID, staffID string, dateKey string, hour int) (*models.Attendance, error) {
	args := m.Called(ctx, classID, staffID, dateKey, hour)
	attendance, _ := args.Get(0).(*models.Attendance)
	return attendance, args.Error(1)
}

func (m *MockAttendanceRepository) CreateAttendance(ctx context.Context, attendance *models.Attendance) (string, error) {
	args := m.Called(ctx, attendance)
	return args.String(0), args.Error(1)
}

func (m *MockAttendanceRepository) FindByFilter(ctx context.Context, request *requests.GetAttendance) ([]models.Attendance, error) {
	args := m.Called(ctx, request)
	attendances, _ := args.Get(0).([]models.Attendance)
	return attendances, args.Error(1)
}

func (m *MockAttendanceRepository) AggregateForStudent(ctx context.Context, studentID string) ([]responses.StudentAttendanceEntry, error) {
	args := m.Called(ctx, studentID)
	entries, _ := args.Get(0).([]responses.StudentAttendanceEntry)
	return entries, args.Error(1)
}

type MockAttendanceEventPublisher struct {
	mock.Mock
}

func (m *MockAttendanceEventPublisher) PublishRecorded(ctx context.Context, attendance *models.Attendance) error {
	args := m.Called(ctx, attendance)
	return args.Error(0)
}

func buildMarkRequest() *requests.MarkAttendance {
	return &requests.MarkAttendance{
		StaffID: primitive.NewObjectID().Hex(),
		ClassID: primitive.NewObjectID().Hex(),
		Date:    "2026-01-19",
		Hour:    2,
		Records: []requests.AttendanceRecord{
			{StudentID: primitive.NewObjectID().Hex(), Status: "P"},
			{StudentID: primitive.NewObjectID().Hex(), Status: "A"},
		},
	}
}

func TestAttendanceUsecase_MarkAttendance(t *testing.T) {
	t.Run("First Mark For The Hour Is Stored And Published", func(t *testing.T) {
		repo := new(MockAttendanceRepository)
		publisher := new(MockAttendanceEventPublisher)
		uc := &attendanceUsecase{
			AttendanceRepository: repo,
			EventPublisher:       publisher,
			Log:                  zap.NewNop(),
		}

		request := buildMarkRequest()
		insertedID := primitive.NewObjectID().Hex()

		repo.On("FindOne", mock.Anything, request.ClassID, "", "2026-01-19", 2).Return(nil, nil)
		repo.On("CreateAttendance", mock.Anything, mock.AnythingOfType("*models.Attendance")).Return(insertedID, nil)
		publisher.On("PublishRecorded", mock.Anything, mock.AnythingOfType("*models.Attendance")).Return(nil)

		response, err := uc.MarkAttendance(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, insertedID, response.ID)
		assert.Equal(t, 2, response.Hour)
		assert.Len(t, response.Records, 2)
		repo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("Second Mark For Same Class Date Hour Conflicts", func(t *testing.T) {
		repo := new(MockAttendanceRepository)
		publisher := new(MockAttendanceEventPublisher)
		uc := &attendanceUsecase{
			AttendanceRepository: repo,
			EventPublisher:       publisher,
			Log:                  zap.NewNop(),
		}

		request := buildMarkRequest()
		existing := &models.Attendance{ID: primitive.NewObjectID()}

		repo.On("FindOne", mock.Anything, request.ClassID, "", "2026-01-19", 2).Return(existing, nil)

		response, err := uc.MarkAttendance(context.Background(), request)

		assert.Nil(t, response)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		repo.AssertNotCalled(t, "CreateAttendance")
		publisher.AssertNotCalled(t, "PublishRecorded")
	})

	t.Run("Publish Failure Does Not Fail The Mark", func(t *testing.T) {
		repo := new(MockAttendanceRepository)
		publisher := new(MockAttendanceEventPublisher)
		uc := &attendanceUsecase{
			AttendanceRepository: repo,
			EventPublisher:       publisher,
			Log:                  zap.NewNop(),
		}

		request := buildMarkRequest()
		insertedID := primitive.NewObjectID().Hex()

		repo.On("FindOne", mock.Anything, request.ClassID, "", "2026-01-19", 2).Return(nil, nil)
		repo.On("CreateAttendance", mock.Anything, mock.AnythingOfType("*models.Attendance")).Return(insertedID, nil)
		publisher.On("PublishRecorded", mock.Anything, mock.AnythingOfType("*models.Attendance")).Return(errors.New("broker down"))

		response, err := uc.MarkAttendance(context.Background(), request)

		assert.NoError(t, err, "the register was written; a broker outage stays server-side")
		assert.Equal(t, insertedID, response.ID)
		publisher.AssertExpectations(t)
	})

	t.Run("Malformed Student ID Rejected Before Insert", func(t *testing.T) {
		repo := new(MockAttendanceRepository)
		publisher := new(MockAttendanceEventPublisher)
		uc := &attendanceUsecase{
			AttendanceRepository: repo,
			EventPublisher:       publisher,
			Log:                  zap.NewNop(),
		}

		request := buildMarkRequest()
		request.Records[0].StudentID = "not-an-object-id"

		repo.On("FindOne", mock.Anything, request.ClassID, "", "2026-01-19", 2).Return(nil, nil)

		response, err := uc.MarkAttendance(context.Background(), request)

		assert.Nil(t, response)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		repo.AssertNotCalled(t, "CreateAttendance")
	})
}

func TestAttendanceUsecase_GetStudentAttendance(t *testing.T) {
	t.Run("Returns Aggregated Entries With Count", func(t *testing.T) {
		repo := new(MockAttendanceRepository)
		uc := &attendanceUsecase{
			AttendanceRepository: repo,
			Log:                  zap.NewNop(),
		}

		studentID := primitive.NewObjectID().Hex()
		day := time.Date(2026, time.January, 19, 0, 0, 0, 0, time.UTC)
		entries := []responses.StudentAttendanceEntry{
			{Date: day, Hour: 1, Status: "P"},
			{Date: day, Hour: 2, Status: "A"},
		}
		repo.On("AggregateForStudent", mock.Anything, studentID).Return(entries, nil)

		response, err := uc.GetStudentAttendance(context.Background(), studentID)

		assert.NoError(t, err)
		assert.Equal(t, 2, response.Count)
		assert.Equal(t, entries, response.Data)
	})
}
