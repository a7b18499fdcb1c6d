package academics

import (
	"campushub-service/internal/app/config"
	"campushub-service/internal/app/contracts"
	"campushub-service/internal/app/models"
	"campushub-service/internal/pkg/constvars"
	"campushub-service/internal/pkg/dto/requests"
	"campushub-service/internal/pkg/dto/responses"
	"campushub-service/internal/pkg/utils"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type academicsUsecase struct {
	StreamRepository      contracts.StreamRepository
	CourseRepository      contracts.CourseRepository
	ClassRepository       contracts.ClassRepository
	StudentRepository     contracts.StudentRepository
	StudentAuthRepository contracts.StudentAuthRepository
	StaffRepository       contracts.StaffRepository
	Storage               contracts.Storage
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	academicsUsecaseInstance contracts.AcademicsUsecase
	onceAcademicsUsecase     sync.Once
)

func NewAcademicsUsecase(
	streamRepository contracts.StreamRepository,
	courseRepository contracts.CourseRepository,
	classRepository contracts.ClassRepository,
	studentRepository contracts.StudentRepository,
	studentAuthRepository contracts.StudentAuthRepository,
	staffRepository contracts.StaffRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) (contracts.AcademicsUsecase, error) {
	onceAcademicsUsecase.Do(func() {
		academicsUsecaseInstance = &academicsUsecase{
			StreamRepository:      streamRepository,
			CourseRepository:      courseRepository,
			ClassRepository:       classRepository,
			StudentRepository:     studentRepository,
			StudentAuthRepository: studentAuthRepository,
			StaffRepository:       staffRepository,
			Storage:               storage,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
	})
	return academicsUsecaseInstance, nil
}

func (uc *academicsUsecase) GetCourses(ctx context.Context) ([]responses.Course, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("academicsUsecase.GetCourses called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	courses, err := uc.CourseRepository.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]responses.Course, 0, len(courses))
	for _, course := range courses {
		result = append(result, responses.Course{
			ID:            course.ID.Hex(),
			Name:          course.Name,
			StreamID:      course.StreamID.Hex(),
			DurationYears: course.DurationYears,
		})
	}
	return result, nil
}

func (uc *academicsUsecase) GetSections(ctx context.Context, courseID string) ([]responses.Section, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("academicsUsecase.GetSections called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("course_id", courseID),
	)

	classes, err := uc.ClassRepository.ListByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	result := make([]responses.Section, 0, len(classes))
	for _, class := range classes {
		result = append(result, responses.Section{
			ID:       class.ID.Hex(),
			Name:     class.Name,
			CourseID: class.CourseID.Hex(),
			Year:     class.Year,
			Section:  class.Section,
		})
	}
	return result, nil
}

func (uc *academicsUsecase) GetStudents(ctx context.Context, classID string) ([]responses.Student, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("academicsUsecase.GetStudents called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("class_id", classID),
	)

	students, err := uc.StudentRepository.FindByClassID(ctx, classID)
	if err != nil {
		return nil, err
	}
	result := make([]responses.Student, 0, len(students))
	for _, student := range students {
		result = append(result, responses.Student{
			ID:         student.ID.Hex(),
			FirstName:  student.FirstName,
			LastName:   student.LastName,
			Gender:     student.Gender,
			FatherName: student.FatherName,
			Contact:    student.Contact,
			Email:      student.Email,
			StreamID:   student.StreamID.Hex(),
			CourseID:   student.CourseID.Hex(),
			ClassID:    student.ClassID.Hex(),
		})
	}
	return result, nil
}

func (uc *academicsUsecase) GetStaffs(ctx context.Context) ([]responses.Staff, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("academicsUsecase.GetStaffs called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	staffs, err := uc.StaffRepository.ListStaffs(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]responses.Staff, 0, len(staffs))
	for _, staff := range staffs {
		result = append(result, responses.Staff{
			ID:        staff.ID.Hex(),
			FirstName: staff.FirstName,
			LastName:  staff.LastName,
			Gender:    staff.Gender,
			Contact:   staff.Contact,
			Email:     staff.Email,
			Role:      staff.Role,
		})
	}
	return result, nil
}

// archiveRoster stores the raw upload before any normalization, so a bad
// import can always be replayed or audited. Archive failures only warn.
func (uc *academicsUsecase) archiveRoster(ctx context.Context, requestID, prefix string, payload interface{}) string {
	body, err := json.Marshal(payload)
	if err != nil {
		uc.Log.Warn("academicsUsecase roster archive marshal failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return ""
	}
	objectName := utils.GenerateArchiveObjectName(prefix)
	if _, err := uc.Storage.PutObject(ctx, objectName, body, constvars.MIMEApplicationJSON); err != nil {
		uc.Log.Warn("academicsUsecase roster archive upload failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return ""
	}
	return objectName
}

func (uc *academicsUsecase) importStudentRow(ctx context.Context, row *requests.RosterRow) error {
	if strings.TrimSpace(row.FirstName) == "" {
		return fmt.Errorf("first name is required")
	}

	stream, err := uc.StreamRepository.FindByName(ctx, strings.TrimSpace(row.Stream))
	if err != nil {
		return err
	}
	if stream == nil {
		return fmt.Errorf("unknown stream %q", row.Stream)
	}
	course, err := uc.CourseRepository.FindByName(ctx, strings.TrimSpace(row.Course))
	if err != nil {
		return err
	}
	if course == nil {
		return fmt.Errorf("unknown course %q", row.Course)
	}

	year, err := normalizeYear(row.Year)
	if err != nil {
		return err
	}
	section := strings.ToUpper(strings.TrimSpace(row.Section))
	if section == "" {
		section = "A"
	}
	class, err := uc.ClassRepository.FindOrCreate(ctx, &models.Class{
		CourseID: course.ID,
		Year:     year,
		Section:  section,
		Name:     fmt.Sprintf("%s - %d%s", course.Name, year, section),
	})
	if err != nil {
		return err
	}

	dateOfBirth, err := parseRosterDate(row.DateOfBirth)
	if err != nil {
		return err
	}

	now := time.Now()
	student := &models.Student{
		FirstName:   strings.TrimSpace(row.FirstName),
		LastName:    strings.TrimSpace(row.LastName),
		Gender:      strings.TrimSpace(row.Gender),
		DateOfBirth: dateOfBirth,
		FatherName:  strings.TrimSpace(row.FatherName),
		Contact:     strings.TrimSpace(row.Contact),
		Email:       strings.ToLower(strings.TrimSpace(row.Email)),
		StreamID:    stream.ID,
		CourseID:    course.ID,
		ClassID:     class.ID,
	}
	student.CreatedAt = now
	student.UpdatedAt = now

	studentID, err := uc.StudentRepository.CreateStudent(ctx, student)
	if err != nil {
		return err
	}

	// Only students with an email get a login; the rest stay
	// directory-only until the office assigns one.
	if student.Email != "" {
		password := initialPassword(row.DateOfBirth)
		if password == "" {
			password = student.Contact
		}
		if password != "" {
			if err := uc.createStudentAuth(ctx, studentID, password, now); err != nil {
				return err
			}
		}
	}
	return nil
}

func (uc *academicsUsecase) createStudentAuth(ctx context.Context, studentID, password string, now time.Time) error {
	existing, err := uc.StudentAuthRepository.FindByStudentID(ctx, studentID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	student, err := uc.StudentRepository.FindByID(ctx, studentID)
	if err != nil {
		return err
	}
	auth := &models.StudentAuth{
		StudentID:          student.ID,
		PasswordHash:       hash,
		MustChangePassword: true,
	}
	auth.CreatedAt = now
	auth.UpdatedAt = now
	_, err = uc.StudentAuthRepository.CreateAuth(ctx, auth)
	return err
}

func (uc *academicsUsecase) ImportStudents(ctx context.Context, request *requests.ImportStudents) (*responses.RosterImport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("academicsUsecase.ImportStudents called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("rows", len(request.Rows)),
	)

	archive := uc.archiveRoster(ctx, requestID, "students_roster", request.Rows)

	result := &responses.RosterImport{
		Errors:  []responses.RosterImportError{},
		Archive: archive,
	}
	for i := range request.Rows {
		if err := uc.importStudentRow(ctx, &request.Rows[i]); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, responses.RosterImportError{
				Row:   i + 1,
				Error: err.Error(),
			})
			continue
		}
		result.Inserted++
	}

	uc.Log.Info("academicsUsecase.ImportStudents finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("inserted", result.Inserted),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

func (uc *academicsUsecase) importStaffRow(ctx context.Context, row *requests.StaffRosterRow) error {
	if strings.TrimSpace(row.FirstName) == "" {
		return fmt.Errorf("first name is required")
	}
	email := strings.ToLower(strings.TrimSpace(row.Email))
	if email == "" {
		return fmt.Errorf("email is required")
	}

	existing, err := uc.StaffRepository.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("staff %s already exists", email)
	}

	dateOfBirth, err := parseRosterDate(row.DateOfBirth)
	if err != nil {
		return err
	}
	role := strings.ToUpper(strings.TrimSpace(row.Role))
	if role == "" {
		role = constvars.RoleStaff
	}

	password := initialPassword(row.DateOfBirth)
	if password == "" {
		password = strings.TrimSpace(row.Contact)
	}
	if password == "" {
		return fmt.Errorf("no usable initial credential")
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now()
	staff := &models.Staff{
		FirstName:    strings.TrimSpace(row.FirstName),
		LastName:     strings.TrimSpace(row.LastName),
		FatherName:   strings.TrimSpace(row.FatherName),
		DateOfBirth:  dateOfBirth,
		Gender:       strings.TrimSpace(row.Gender),
		Contact:      strings.TrimSpace(row.Contact),
		Email:        email,
		Role:         role,
		PasswordHash: hash,
	}
	staff.CreatedAt = now
	staff.UpdatedAt = now

	_, err = uc.StaffRepository.CreateStaff(ctx, staff)
	return err
}

func (uc *academicsUsecase) ImportStaff(ctx context.Context, request *requests.ImportStaff) (*responses.RosterImport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("academicsUsecase.ImportStaff called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("rows", len(request.Rows)),
	)

	archive := uc.archiveRoster(ctx, requestID, "staff_roster", request.Rows)

	result := &responses.RosterImport{
		Errors:  []responses.RosterImportError{},
		Archive: archive,
	}
	for i := range request.Rows {
		if err := uc.importStaffRow(ctx, &request.Rows[i]); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, responses.RosterImportError{
				Row:   i + 1,
				Error: err.Error(),
			})
			continue
		}
		result.Inserted++
	}
	return result, nil
}
