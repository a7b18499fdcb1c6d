package attendance

import (
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

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type attendanceUsecase struct {
	AttendanceRepository contracts.AttendanceRepository
	EventPublisher       contracts.AttendanceEventPublisher
	Log                  *zap.Logger
}

var (
	attendanceUsecaseInstance contracts.AttendanceUsecase
	onceAttendanceUsecase     sync.Once
)

func NewAttendanceUsecase(
	attendanceRepository contracts.AttendanceRepository,
	eventPublisher contracts.AttendanceEventPublisher,
	logger *zap.Logger,
) (contracts.AttendanceUsecase, error) {
	onceAttendanceUsecase.Do(func() {
		attendanceUsecaseInstance = &attendanceUsecase{
			AttendanceRepository: attendanceRepository,
			EventPublisher:       eventPublisher,
			Log:                  logger,
		}
	})
	return attendanceUsecaseInstance, nil
}

func (uc *attendanceUsecase) MarkAttendance(ctx context.Context, request *requests.MarkAttendance) (*responses.Attendance, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("attendanceUsecase.MarkAttendance called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("class", request.ClassID),
		zap.String("date", request.Date),
		zap.Int("hour", request.Hour),
	)

	// One register per (class, date, hour); staff identity does not
	// split the register.
	existing, err := uc.AttendanceRepository.FindOne(ctx, request.ClassID, "", request.Date, request.Hour)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrAttendanceDuplicate(nil)
	}

	staffObjectID, err := primitive.ObjectIDFromHex(request.StaffID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	classObjectID, err := primitive.ObjectIDFromHex(request.ClassID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	date, err := utils.ParseDateKey(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	records := make([]models.AttendanceRecord, 0, len(request.Records))
	for _, record := range request.Records {
		studentObjectID, err := primitive.ObjectIDFromHex(record.StudentID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		records = append(records, models.AttendanceRecord{
			Student: studentObjectID,
			Status:  record.Status,
		})
	}

	now := time.Now()
	attendance := &models.Attendance{
		StaffID: staffObjectID,
		ClassID: classObjectID,
		Date:    date,
		Hour:    request.Hour,
		Records: records,
	}
	attendance.CreatedAt = now
	attendance.UpdatedAt = now

	attendanceID, err := uc.AttendanceRepository.CreateAttendance(ctx, attendance)
	if err != nil {
		uc.Log.Error("attendanceUsecase.MarkAttendance error inserting register",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	objectID, _ := primitive.ObjectIDFromHex(attendanceID)
	attendance.ID = objectID

	// The register write already happened; a dead broker must not turn
	// a recorded register into a client-facing error.
	if err := uc.EventPublisher.PublishRecorded(ctx, attendance); err != nil {
		uc.Log.Error("attendanceUsecase.MarkAttendance error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return buildAttendanceResponse(attendance), nil
}

func (uc *attendanceUsecase) GetAttendance(ctx context.Context, request *requests.GetAttendance) (*responses.AttendanceList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("attendanceUsecase.GetAttendance called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	attendances, err := uc.AttendanceRepository.FindByFilter(ctx, request)
	if err != nil {
		return nil, err
	}

	list := &responses.AttendanceList{
		Count: len(attendances),
		Data:  make([]responses.Attendance, 0, len(attendances)),
	}
	for i := range attendances {
		list.Data = append(list.Data, *buildAttendanceResponse(&attendances[i]))
	}
	return list, nil
}

func (uc *attendanceUsecase) GetStudentAttendance(ctx context.Context, studentID string) (*responses.StudentAttendance, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("attendanceUsecase.GetStudentAttendance called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	entries, err := uc.AttendanceRepository.AggregateForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return &responses.StudentAttendance{
		Count: len(entries),
		Data:  entries,
	}, nil
}

func buildAttendanceResponse(attendance *models.Attendance) *responses.Attendance {
	records := make([]responses.AttendanceRecord, 0, len(attendance.Records))
	for _, record := range attendance.Records {
		records = append(records, responses.AttendanceRecord{
			StudentID: record.Student.Hex(),
			Status:    record.Status,
		})
	}
	return &responses.Attendance{
		ID:      attendance.ID.Hex(),
		StaffID: attendance.StaffID.Hex(),
		ClassID: attendance.ClassID.Hex(),
		Date:    attendance.Date,
		Hour:    attendance.Hour,
		Records: records,
	}
}
