package contracts

import (
	"campushub-service/internal/app/models"
	"campushub-service/internal/pkg/dto/requests"
	"campushub-service/internal/pkg/dto/responses"
	"context"
)

type TimetableUsecase interface {
	// ResolveToday resolves the institution-local current date. When the
	// client-supplied fingerprint matches the fresh one, notModified is
	// true and the payload must not be re-sent.
	ResolveToday(ctx context.Context, clientVersion string) (result *responses.VersionedDaySchedule, notModified bool, err error)
	ResolveByDate(ctx context.Context, dateKey, clientVersion string) (result *responses.VersionedDaySchedule, notModified bool, err error)
	ResolveRange(ctx context.Context, start, end string) (*responses.RangeSchedule, error)
	ResolveMonth(ctx context.Context, month string) (*responses.MonthSchedule, error)
	Master(ctx context.Context) (*responses.MasterTimetable, error)
	SaveSchedule(ctx context.Context, request *requests.SaveSchedule) (*responses.ScheduleConfiguration, error)
	CreateTemplate(ctx context.Context, request *requests.CreateTemplate) (*responses.Template, error)
	ListTemplates(ctx context.Context) ([]responses.Template, error)
	Reseed(ctx context.Context) error
}

type TemplateRepository interface {
	ListTemplates(ctx context.Context) ([]models.TimetableTemplate, error)
	FindByName(ctx context.Context, name string) (*models.TimetableTemplate, error)
	CreateTemplate(ctx context.Context, template *models.TimetableTemplate) (string, error)
	DeleteAll(ctx context.Context) error
}

type CollegeConfigRepository interface {
	// GetConfiguration returns (nil, nil) when the singleton has never
	// been saved; absence is the valid "unconfigured" state.
	GetConfiguration(ctx context.Context) (*models.CollegeConfig, error)
	SaveConfiguration(ctx context.Context, weeklySchedule, overrides map[string]string) (*models.CollegeConfig, error)
	DeleteConfiguration(ctx context.Context) error
}

// ConfigCache is the time-bounded cell in front of the config singleton.
// Only the "today" path reads through it; every other path must hit the
// repository directly so fresh administrative edits are never masked.
type ConfigCache interface {
	Get(ctx context.Context) (*models.CollegeConfig, error)
	Invalidate()
}
