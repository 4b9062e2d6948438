package service

import (
	"context"
	"fmt"

	"stayops/config"
	"stayops/infras/otel"
	availabilityService "stayops/internal/domains/availability/service"
	bookingModel "stayops/internal/domains/booking/model"
	"stayops/internal/domains/maintenance/model"
	"stayops/internal/domains/maintenance/model/dto"
	"stayops/internal/domains/maintenance/repository"
	"stayops/shared"
	"stayops/shared/cache"
	"stayops/shared/constant"
	"stayops/shared/daterange"
	gDto "stayops/shared/dto"
	"stayops/shared/failure"
	gModel "stayops/shared/model"
	"stayops/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetMaintenance    = "maintenance:get"
	cacheGetAllMaintenance = "maintenance:gets"
	cacheCountMaintenance  = "maintenance:count"
)

type Maintenance interface {
	Create(ctx context.Context, req dto.CreateMaintenanceRequest) (dto.MaintenanceResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMaintenanceLogsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.MaintenanceResponse, error)
	Update(ctx context.Context, req dto.UpdateMaintenanceRequest, id string) error
	Complete(ctx context.Context, req dto.CompleteMaintenanceRequest, id string) error
	Delete(ctx context.Context, id string) error
	ScheduleTurnover(ctx context.Context, event bookingModel.Event) (bool, error)
}

type serviceImpl struct {
	repo    repository.Maintenance
	catalog availabilityService.PropertyCatalog
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(repo repository.Maintenance, catalog availabilityService.PropertyCatalog, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Maintenance {
	return &serviceImpl{
		repo:    repo,
		catalog: catalog,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMaintenanceRequest) (res dto.MaintenanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.catalog.GetPropertyByID(ctx, req.PropertyID); err != nil {
		return res, fmt.Errorf("failed to resolve property: %w", err)
	}

	entry, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, entry); err != nil {
		log.Error().Err(err).Msg("failed to create maintenance log")

		return res, fmt.Errorf("failed to create maintenance log: %w", err)
	}

	res.FromModel(entry)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMaintenance)
		shared.InvalidateCaches(c, s.cache, cacheCountMaintenance)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMaintenanceLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMaintenance, req, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count maintenance logs: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance logs")

		return res, fmt.Errorf("failed to get maintenance logs: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save maintenance logs to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountMaintenance, req, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count maintenance logs")

		return res, fmt.Errorf("failed to count maintenance logs: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save maintenance count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.MaintenanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetMaintenance, id)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		return res, nil
	}

	entry, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance log")

		return res, fmt.Errorf("failed to get maintenance log: %w", err)
	}

	if entry.ID == constant.Empty {
		return res, failure.NotFound("maintenance log not found") // nolint:wrapcheck
	}

	res.FromModel(entry)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save maintenance log to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateMaintenanceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateMaintenanceRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if req.Status != nil && *req.Status == model.StatusCompleted {
		return failure.BadRequestFromString("use the complete action to close a maintenance log") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	entry, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if entry.Status == model.StatusCompleted {
		return failure.BadRequestFromString("a completed maintenance log can no longer be edited") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update maintenance log")

		return fmt.Errorf("failed to update maintenance log: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Complete closes the log, optionally recording the final cost. Completing twice is a no-op.
func (s *serviceImpl) Complete(ctx context.Context, req dto.CompleteMaintenanceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.Complete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	entry, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if entry.Status == model.StatusCompleted {
		return nil
	}

	now := timezone.Now()
	fields := map[string]any{
		model.FieldStatus:        string(model.StatusCompleted),
		model.FieldCompletedAt:   now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	if req.Cost != nil {
		fields[model.FieldCost] = *req.Cost
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to complete maintenance log")

		return fmt.Errorf("failed to complete maintenance log: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if maintenance log exists")

		return fmt.Errorf("failed to check if maintenance log exists: %w", err)
	}

	if !exist {
		return failure.NotFound("maintenance log not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete maintenance log")

		return fmt.Errorf("failed to delete maintenance log: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// ScheduleTurnover opens a high priority cleaning log on the check-out date of a
// checked-out booking. It reports false when the event needs no work or the log
// already exists. The unique (booking_id, category) index settles concurrent
// deliveries of the same event.
func (s *serviceImpl) ScheduleTurnover(ctx context.Context, event bookingModel.Event) (created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.ScheduleTurnover")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if event.Type != bookingModel.EventStatusChanged || event.Status != bookingModel.StatusCheckedOut {
		return false, nil
	}

	scheduled, err := daterange.ParseDate(event.CheckOut)
	if err != nil {
		return false, failure.BadRequest(err) // nolint:wrapcheck
	}

	exist, err := s.repo.ExistsForBooking(ctx, event.BookingID, model.CategoryCleaning)
	if err != nil {
		return false, fmt.Errorf("failed to check turnover cleaning: %w", err)
	}

	if exist {
		log.Debug().Str("booking_id", event.BookingID).Msg("turnover cleaning already scheduled")

		return false, nil
	}

	bookingID := event.BookingID
	entry := model.MaintenanceLog{
		ID:            uuid.NewString(),
		PropertyID:    event.PropertyID,
		BookingID:     &bookingID,
		Title:         "Turnover cleaning",
		Description:   fmt.Sprintf("Guest checked out on %s", event.CheckOut),
		Category:      model.CategoryCleaning,
		Priority:      model.PriorityHigh,
		Status:        model.StatusOpen,
		ScheduledDate: &scheduled,
		Metadata:      gModel.NewMetadata(constant.SystemUser, timezone.Now()),
	}

	err = s.repo.Insert(ctx, entry)
	if failure.IsConflict(err) {
		// a concurrent delivery of the same event won the insert
		log.Debug().Str("booking_id", event.BookingID).Msg("turnover cleaning already scheduled")

		return false, nil
	}

	if err != nil {
		log.Error().Err(err).Str("booking_id", event.BookingID).Msg("failed to schedule turnover cleaning")

		return false, fmt.Errorf("failed to schedule turnover cleaning: %w", err)
	}

	log.Info().Str("booking_id", event.BookingID).Str("property_id", event.PropertyID).Msg("turnover cleaning scheduled")

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMaintenance)
		shared.InvalidateCaches(c, s.cache, cacheCountMaintenance)
	}()

	return true, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.MaintenanceLog, error) {
	entry, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance log")

		return entry, fmt.Errorf("failed to get maintenance log: %w", err)
	}

	if entry.ID == constant.Empty {
		return entry, failure.NotFound("maintenance log not found") // nolint:wrapcheck
	}

	return entry, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetMaintenance, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete maintenance log from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllMaintenance)
		shared.InvalidateCaches(c, s.cache, cacheCountMaintenance)
	}()
}
