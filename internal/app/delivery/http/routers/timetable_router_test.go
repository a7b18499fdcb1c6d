package routers

import (
	"bytes"
	"campushub-service/internal/app/delivery/http/middlewares"
	"campushub-service/internal/app/services/core/timetable"
	"campushub-service/internal/pkg/constvars"
	"campushub-service/internal/pkg/dto/requests"
	"campushub-service/internal/pkg/dto/responses"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockTimetableUsecase struct {
	mock.Mock
}

func (m *MockTimetableUsecase) ResolveToday(ctx context.Context, clientVersion string) (*responses.VersionedDaySchedule, bool, error) {
	args := m.Called(ctx, clientVersion)
	result, _ := args.Get(0).(*responses.VersionedDaySchedule)
	return result, args.Bool(1), args.Error(2)
}

func (m *MockTimetableUsecase) ResolveByDate(ctx context.Context, dateKey, clientVersion string) (*responses.VersionedDaySchedule, bool, error) {
	args := m.Called(ctx, dateKey, clientVersion)
	result, _ := args.Get(0).(*responses.VersionedDaySchedule)
	return result, args.Bool(1), args.Error(2)
}

func (m *MockTimetableUsecase) ResolveRange(ctx context.Context, start, end string) (*responses.RangeSchedule, error) {
	args := m.Called(ctx, start, end)
	result, _ := args.Get(0).(*responses.RangeSchedule)
	return result, args.Error(1)
}

func (m *MockTimetableUsecase) ResolveMonth(ctx context.Context, month string) (*responses.MonthSchedule, error) {
	args := m.Called(ctx, month)
	result, _ := args.Get(0).(*responses.MonthSchedule)
	return result, args.Error(1)
}

func (m *MockTimetableUsecase) Master(ctx context.Context) (*responses.MasterTimetable, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.MasterTimetable)
	return result, args.Error(1)
}

func (m *MockTimetableUsecase) SaveSchedule(ctx context.Context, request *requests.SaveSchedule) (*responses.ScheduleConfiguration, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.ScheduleConfiguration)
	return result, args.Error(1)
}

func (m *MockTimetableUsecase) CreateTemplate(ctx context.Context, request *requests.CreateTemplate) (*responses.Template, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.Template)
	return result, args.Error(1)
}

func (m *MockTimetableUsecase) ListTemplates(ctx context.Context) ([]responses.Template, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).([]responses.Template)
	return result, args.Error(1)
}

func (m *MockTimetableUsecase) Reseed(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func buildTimetableRouter(mockUsecase *MockTimetableUsecase) chi.Router {
	logger := zap.NewNop()
	timetableController := timetable.NewTimetableController(mockUsecase, logger)
	middlewareInstance := &middlewares.Middlewares{
		Log: logger,
	}

	router := chi.NewRouter()
	attachTimetableRoutes(router, middlewareInstance, timetableController)
	return router
}

func TestTimetableRouter_Today(t *testing.T) {
	t.Run("Fresh Client Gets Full Payload With ETag", func(t *testing.T) {
		mockUsecase := new(MockTimetableUsecase)
		router := buildTimetableRouter(mockUsecase)

		versioned := &responses.VersionedDaySchedule{
			Version: "0beec7b5ea3f0fdbc95d0dd47f3c5bc275da8a33",
			Data: &responses.DaySchedule{
				Date:     "2026-01-19",
				Template: "REGULAR",
				Slots: []responses.CompactSlot{
					{Label: "First Period", Kind: "P", Start: "09:00", End: "09:55"},
				},
			},
		}
		mockUsecase.On("ResolveToday", mock.Anything, "").Return(versioned, false, nil)

		req := httptest.NewRequest("GET", "/today", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for a client without a cached version")
		assert.Equal(t, versioned.Version, rr.Header().Get(constvars.HeaderETag), "ETag header should carry the payload fingerprint")
		assert.Contains(t, rr.Body.String(), "REGULAR")
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Matching If-None-Match Short-Circuits to 304", func(t *testing.T) {
		mockUsecase := new(MockTimetableUsecase)
		router := buildTimetableRouter(mockUsecase)

		clientVersion := "0beec7b5ea3f0fdbc95d0dd47f3c5bc275da8a33"
		mockUsecase.On("ResolveToday", mock.Anything, clientVersion).Return(nil, true, nil)

		req := httptest.NewRequest("GET", "/today", nil)
		req.Header.Set(constvars.HeaderIfNoneMatch, clientVersion)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotModified, rr.Code, "should return 304 when the client version matches")
		assert.Empty(t, rr.Body.String(), "a 304 must not carry a body")
		mockUsecase.AssertExpectations(t)
	})
}

func TestTimetableRouter_ByDate(t *testing.T) {
	t.Run("Valid Date Resolves", func(t *testing.T) {
		mockUsecase := new(MockTimetableUsecase)
		router := buildTimetableRouter(mockUsecase)

		versioned := &responses.VersionedDaySchedule{
			Version: "62cdb7020ff920e5aa642c3d4066950dd1f01f4d",
			Data: &responses.DaySchedule{
				Date:      "2026-01-18",
				Template:  "HOLIDAY",
				IsHoliday: true,
				Slots:     []responses.CompactSlot{},
			},
		}
		mockUsecase.On("ResolveByDate", mock.Anything, "2026-01-18", "").Return(versioned, false, nil)

		req := httptest.NewRequest("GET", "/date/2026-01-18", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, versioned.Version, rr.Header().Get(constvars.HeaderETag))
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Malformed Date Rejected Before Usecase", func(t *testing.T) {
		mockUsecase := new(MockTimetableUsecase)
		router := buildTimetableRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/date/19-01-2026", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for a date not in YYYY-MM-DD")
		mockUsecase.AssertNotCalled(t, "ResolveByDate")
	})
}

func TestTimetableRouter_Range(t *testing.T) {
	t.Run("Missing Bound Rejected", func(t *testing.T) {
		mockUsecase := new(MockTimetableUsecase)
		router := buildTimetableRouter(mockUsecase)

		req := httptest.NewRequest("GET", "/range?start=2026-01-19", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request when end is missing")
		mockUsecase.AssertNotCalled(t, "ResolveRange")
	})

	t.Run("Both Bounds Resolve", func(t *testing.T) {
		mockUsecase := new(MockTimetableUsecase)
		router := buildTimetableRouter(mockUsecase)

		rangeSchedule := &responses.RangeSchedule{
			Days: map[string]*responses.DaySchedule{
				"2026-01-19": {Date: "2026-01-19", Template: "REGULAR", Slots: []responses.CompactSlot{}},
				"2026-01-20": {Date: "2026-01-20", Template: "REGULAR", Slots: []responses.CompactSlot{}},
			},
		}
		mockUsecase.On("ResolveRange", mock.Anything, "2026-01-19", "2026-01-20").Return(rangeSchedule, nil)

		req := httptest.NewRequest("GET", "/range?start=2026-01-19&end=2026-01-20", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUsecase.AssertExpectations(t)
	})
}

func TestTimetableRouter_AdminEndpointsRequireAuth(t *testing.T) {
	t.Run("SaveSchedule Without Token", func(t *testing.T) {
		mockUsecase := new(MockTimetableUsecase)
		router := buildTimetableRouter(mockUsecase)

		requestBody := requests.SaveSchedule{
			WeeklySchedule: map[string]string{"1": "REGULAR"},
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("PUT", "/schedule", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized without a bearer token")
		mockUsecase.AssertNotCalled(t, "SaveSchedule")
	})

	t.Run("Reseed Without Token", func(t *testing.T) {
		mockUsecase := new(MockTimetableUsecase)
		router := buildTimetableRouter(mockUsecase)

		req := httptest.NewRequest("POST", "/seed", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized without a bearer token")
		mockUsecase.AssertNotCalled(t, "Reseed")
	})
}
