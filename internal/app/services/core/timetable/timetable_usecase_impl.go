package timetable

import (
	"campushub-service/internal/app/config"
	"campushub-service/internal/app/contracts"
	"campushub-service/internal/app/models"
	"campushub-service/internal/pkg/constvars"
	"campushub-service/internal/pkg/dto/requests"
	"campushub-service/internal/pkg/dto/responses"
	"campushub-service/internal/pkg/exceptions"
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type timetableUsecase struct {
	TemplateRepository contracts.TemplateRepository
	ConfigRepository   contracts.CollegeConfigRepository
	ConfigCache        contracts.ConfigCache
	InternalConfig     *config.InternalConfig
	Now                func() time.Time
	Log                *zap.Logger
}

var (
	timetableUsecaseInstance contracts.TimetableUsecase
	onceTimetableUsecase     sync.Once
)

func NewTimetableUsecase(
	templateRepository contracts.TemplateRepository,
	configRepository contracts.CollegeConfigRepository,
	configCache contracts.ConfigCache,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) (contracts.TimetableUsecase, error) {
	onceTimetableUsecase.Do(func() {
		timetableUsecaseInstance = &timetableUsecase{
			TemplateRepository: templateRepository,
			ConfigRepository:   configRepository,
			ConfigCache:        configCache,
			InternalConfig:     internalConfig,
			Now:                time.Now,
			Log:                logger,
		}
	})
	return timetableUsecaseInstance, nil
}

func (uc *timetableUsecase) templatesByName(ctx context.Context) (map[string]*models.TimetableTemplate, error) {
	templates, err := uc.TemplateRepository.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*models.TimetableTemplate, len(templates))
	for i := range templates {
		byName[templates[i].Name] = &templates[i]
	}
	return byName, nil
}

func (uc *timetableUsecase) resolveOne(ctx context.Context, config *models.CollegeConfig, date time.Time, clientVersion string) (*responses.VersionedDaySchedule, bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	templates, err := uc.templatesByName(ctx)
	if err != nil {
		return nil, false, err
	}

	day, dangling := ResolveDay(config, templates, date)
	if dangling {
		uc.Log.Warn("timetableUsecase schedule names a template that does not exist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("template", day.Template),
			zap.String("date", day.Date),
		)
	}

	version, err := Fingerprint(day)
	if err != nil {
		return nil, false, err
	}
	if clientVersion != "" && clientVersion == version {
		return nil, true, nil
	}
	return &responses.VersionedDaySchedule{Version: version, Data: day}, false, nil
}

func (uc *timetableUsecase) ResolveToday(ctx context.Context, clientVersion string) (*responses.VersionedDaySchedule, bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timetableUsecase.ResolveToday called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	config, err := uc.ConfigCache.Get(ctx)
	if err != nil {
		uc.Log.Error("timetableUsecase.ResolveToday error fetching configuration",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, false, err
	}

	offset := time.Duration(uc.InternalConfig.Timetable.UTCOffsetInMinutes) * time.Minute
	today := InstitutionToday(uc.Now(), offset)
	return uc.resolveOne(ctx, config, today, clientVersion)
}

func (uc *timetableUsecase) ResolveByDate(ctx context.Context, dateKey, clientVersion string) (*responses.VersionedDaySchedule, bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timetableUsecase.ResolveByDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("date", dateKey),
	)

	date, err := time.Parse(constvars.DateKeyLayout, dateKey)
	if err != nil {
		return nil, false, exceptions.ErrCannotParseDate(err)
	}

	config, err := uc.ConfigRepository.GetConfiguration(ctx)
	if err != nil {
		uc.Log.Error("timetableUsecase.ResolveByDate error fetching configuration",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, false, err
	}
	return uc.resolveOne(ctx, config, date, clientVersion)
}

func (uc *timetableUsecase) ResolveRange(ctx context.Context, start, end string) (*responses.RangeSchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timetableUsecase.ResolveRange called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("start", start),
		zap.String("end", end),
	)

	startDate, err := time.Parse(constvars.DateKeyLayout, start)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	endDate, err := time.Parse(constvars.DateKeyLayout, end)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	config, err := uc.ConfigRepository.GetConfiguration(ctx)
	if err != nil {
		return nil, err
	}
	templates, err := uc.templatesByName(ctx)
	if err != nil {
		return nil, err
	}

	// An inverted range resolves to zero days rather than an error.
	return &responses.RangeSchedule{
		Days: ExpandRange(config, templates, startDate, endDate),
	}, nil
}

func (uc *timetableUsecase) ResolveMonth(ctx context.Context, month string) (*responses.MonthSchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timetableUsecase.ResolveMonth called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("month", month),
	)

	firstDay, err := time.Parse(constvars.MonthKeyLayout, month)
	if err != nil {
		return nil, exceptions.ErrCannotParseMonth(err)
	}

	config, err := uc.ConfigRepository.GetConfiguration(ctx)
	if err != nil {
		return nil, err
	}
	return &responses.MonthSchedule{
		Month: month,
		Days:  ExpandMonth(config, firstDay),
	}, nil
}

func (uc *timetableUsecase) Master(ctx context.Context) (*responses.MasterTimetable, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timetableUsecase.Master called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	templates, err := uc.TemplateRepository.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}
	config, err := uc.ConfigRepository.GetConfiguration(ctx)
	if err != nil {
		return nil, err
	}

	master := &responses.MasterTimetable{
		Templates: make([]responses.MasterTemplate, 0, len(templates)),
		Schedule: responses.MasterSchedule{
			Defaults:  map[string]string{},
			Overrides: map[string]string{},
		},
	}
	for _, template := range templates {
		slots := make([]responses.MasterSlot, 0, len(template.Slots))
		for _, slot := range template.Slots {
			required := 0
			if slot.AttendanceRequired {
				required = 1
			}
			slots = append(slots, responses.MasterSlot{
				Label:    slot.Label,
				Kind:     compactKind(slot.Kind),
				Start:    slot.Start,
				End:      slot.End,
				Required: required,
			})
		}
		master.Templates = append(master.Templates, responses.MasterTemplate{
			ID:    template.Name,
			Slots: slots,
		})
	}
	if config != nil {
		if config.WeeklySchedule != nil {
			master.Schedule.Defaults = config.WeeklySchedule
		}
		if config.Overrides != nil {
			master.Schedule.Overrides = config.Overrides
		}
	}
	return master, nil
}

func (uc *timetableUsecase) SaveSchedule(ctx context.Context, request *requests.SaveSchedule) (*responses.ScheduleConfiguration, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timetableUsecase.SaveSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	weekly := make(map[string]string, len(request.WeeklySchedule))
	for day, name := range request.WeeklySchedule {
		weekly[day] = strings.ToUpper(name)
	}
	overrides := make(map[string]string, len(request.Overrides))
	for dateKey, name := range request.Overrides {
		overrides[dateKey] = strings.ToUpper(name)
	}

	saved, err := uc.ConfigRepository.SaveConfiguration(ctx, weekly, overrides)
	if err != nil {
		uc.Log.Error("timetableUsecase.SaveSchedule error saving configuration",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// The today cache is left to lapse on its own TTL: administrative
	// edits become visible within one cache window.
	return &responses.ScheduleConfiguration{
		WeeklySchedule: saved.WeeklySchedule,
		Overrides:      saved.Overrides,
	}, nil
}

func (uc *timetableUsecase) CreateTemplate(ctx context.Context, request *requests.CreateTemplate) (*responses.Template, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timetableUsecase.CreateTemplate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("name", request.Name),
	)

	name := strings.ToUpper(strings.TrimSpace(request.Name))
	existing, err := uc.TemplateRepository.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrTemplateNameExists(nil)
	}

	template := &models.TimetableTemplate{
		Name:  name,
		Slots: make([]models.TimeSlot, 0, len(request.Slots)),
	}
	for _, slot := range request.Slots {
		template.Slots = append(template.Slots, models.TimeSlot{
			Label:              slot.Label,
			Kind:               strings.ToUpper(slot.Kind),
			Start:              slot.Start,
			End:                slot.End,
			AttendanceRequired: slot.AttendanceRequired,
		})
	}
	now := uc.Now()
	template.CreatedAt = now
	template.UpdatedAt = now

	if _, err := uc.TemplateRepository.CreateTemplate(ctx, template); err != nil {
		uc.Log.Error("timetableUsecase.CreateTemplate error inserting template",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return buildTemplateResponse(template), nil
}

func (uc *timetableUsecase) ListTemplates(ctx context.Context) ([]responses.Template, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("timetableUsecase.ListTemplates called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	templates, err := uc.TemplateRepository.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]responses.Template, 0, len(templates))
	for i := range templates {
		result = append(result, *buildTemplateResponse(&templates[i]))
	}
	return result, nil
}

func buildTemplateResponse(template *models.TimetableTemplate) *responses.Template {
	slots := make([]responses.TemplateSlot, 0, len(template.Slots))
	for _, slot := range template.Slots {
		slots = append(slots, responses.TemplateSlot{
			Label:              slot.Label,
			Kind:               slot.Kind,
			Start:              slot.Start,
			End:                slot.End,
			AttendanceRequired: slot.AttendanceRequired,
		})
	}
	id := ""
	if !template.ID.IsZero() {
		id = template.ID.Hex()
	}
	return &responses.Template{
		ID:    id,
		Name:  template.Name,
		Slots: slots,
	}
}
