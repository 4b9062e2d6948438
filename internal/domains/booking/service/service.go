package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"

	"stayops/config"
	"stayops/infras/kafka"
	"stayops/infras/metrics"
	"stayops/infras/otel"
	availabilityService "stayops/internal/domains/availability/service"
	"stayops/internal/domains/booking/model"
	"stayops/internal/domains/booking/model/dto"
	"stayops/internal/domains/booking/repository"
	guestModel "stayops/internal/domains/guest/model"
	guestRepo "stayops/internal/domains/guest/repository"
	"stayops/shared"
	"stayops/shared/cache"
	"stayops/shared/constant"
	"stayops/shared/daterange"
	gDto "stayops/shared/dto"
	"stayops/shared/failure"
	"stayops/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	errUnavailable     = "property is not available for the requested dates"
	errConcurrentWrite = "booking was modified by another request, retry"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
	Confirm(ctx context.Context, id string) (dto.BookingResponse, error)
	CheckIn(ctx context.Context, id string) (dto.BookingResponse, error)
	CheckOut(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdatePayment(ctx context.Context, req dto.UpdatePaymentRequest, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	guestRepo    guestRepo.Guest
	availability availabilityService.Availability
	kafka        kafka.Client
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	guestRepo guestRepo.Guest,
	availability availabilityService.Availability,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		guestRepo:    guestRepo,
		availability: availability,
		kafka:        kafka,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	stay, err := daterange.Parse(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	guestExists, err := s.guestRepo.Exist(ctx, shared.FilterByID(req.GuestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return res, fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !guestExists {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	available, err := s.availability.CheckAvailability(ctx, req.PropertyID, stay, constant.Empty)
	if err != nil {
		return res, fmt.Errorf("failed to check availability: %w", err)
	}

	if !available {
		metrics.BookingConflicts.WithLabelValues("check").Inc()

		return res, failure.Conflict(errUnavailable) // nolint:wrapcheck
	}

	quote, err := s.availability.CalculateBookingPrice(ctx, req.PropertyID, stay, req.NumberOfGuests)
	if err != nil {
		return res, fmt.Errorf("failed to price booking: %w", err)
	}

	booking := req.ToModel(user, stay, quote)
	if err = s.repo.Insert(ctx, booking); err != nil {
		if failure.IsConflict(err) {
			metrics.BookingConflicts.WithLabelValues("store").Inc()

			return res, err
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	metrics.BookingsCreated.Inc()
	log.Info().Str("booking_id", booking.ID).Str("property_id", booking.PropertyID).
		Int("nights", booking.NumberOfNights).Float64("total", booking.TotalAmount).Msg("booking created")

	s.publish(ctx, model.EventCreated, booking)
	s.invalidate(ctx, booking.ID)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Update changes the dates, guest count, source or notes of a pending or confirmed
// booking. The stay is re-checked against every other booking and re-priced.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if !booking.Status.Editable() {
		return res, failure.BadRequestFromString(fmt.Sprintf("a %s booking can no longer be edited", booking.Status)) // nolint:wrapcheck
	}

	stay, err := mergeStay(booking.Stay(), req.CheckIn, req.CheckOut)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	guests := booking.NumberOfGuests
	if req.NumberOfGuests != nil {
		guests = *req.NumberOfGuests
	}

	if !stay.Equal(booking.Stay()) {
		available, err := s.availability.CheckAvailability(ctx, booking.PropertyID, stay, booking.ID)
		if err != nil {
			return res, fmt.Errorf("failed to check availability: %w", err)
		}

		if !available {
			metrics.BookingConflicts.WithLabelValues("check").Inc()

			return res, failure.Conflict(errUnavailable) // nolint:wrapcheck
		}
	}

	quote, err := s.availability.CalculateBookingPrice(ctx, booking.PropertyID, stay, guests)
	if err != nil {
		return res, fmt.Errorf("failed to price booking: %w", err)
	}

	booking.CheckIn, booking.CheckOut = stay.CheckIn, stay.CheckOut
	booking.NumberOfGuests = guests
	booking.NumberOfNights = quote.Nights
	booking.BaseAmount = quote.BaseAmount
	booking.CleaningFee = quote.CleaningFee
	booking.ServiceFee = quote.ServiceFee
	booking.TotalAmount = quote.TotalAmount

	if req.Source != constant.Empty {
		booking.Source = req.Source
	}

	if req.Notes != nil {
		booking.Notes = *req.Notes
	}

	booking.ModifiedAt = timezone.Now()
	booking.ModifiedBy = user

	fields := map[string]any{
		model.FieldCheckIn:        booking.CheckIn,
		model.FieldCheckOut:       booking.CheckOut,
		model.FieldNumberOfGuests: booking.NumberOfGuests,
		model.FieldNumberOfNights: booking.NumberOfNights,
		model.FieldBaseAmount:     booking.BaseAmount,
		model.FieldCleaningFee:    booking.CleaningFee,
		model.FieldServiceFee:     booking.ServiceFee,
		model.FieldTotalAmount:    booking.TotalAmount,
		model.FieldSource:         string(booking.Source),
		model.FieldNotes:          booking.Notes,
		constant.FieldModifiedAt:  booking.ModifiedAt,
		constant.FieldModifiedBy:  booking.ModifiedBy,
	}

	if err = s.compareAndSet(ctx, booking, fields); err != nil {
		return res, err
	}

	s.publish(ctx, model.EventUpdated, booking)
	s.invalidate(ctx, booking.ID)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Confirm(ctx context.Context, id string) (dto.BookingResponse, error) {
	return s.transition(ctx, id, model.StatusConfirmed)
}

func (s *serviceImpl) CheckIn(ctx context.Context, id string) (dto.BookingResponse, error) {
	return s.transition(ctx, id, model.StatusCheckedIn)
}

func (s *serviceImpl) CheckOut(ctx context.Context, id string) (dto.BookingResponse, error) {
	return s.transition(ctx, id, model.StatusCheckedOut)
}

// Cancel keeps the row and releases its dates.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (dto.BookingResponse, error) {
	return s.transition(ctx, id, model.StatusCancelled)
}

func (s *serviceImpl) transition(ctx context.Context, id string, next model.Status) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Transition")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("booking.next_status", string(next))

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if !booking.Status.CanTransitionTo(next) {
		return res, failure.BadRequestFromString(fmt.Sprintf("cannot move booking from %s to %s", booking.Status, next)) // nolint:wrapcheck
	}

	modifiedAt := timezone.Now()
	fields := map[string]any{
		model.FieldStatus:        string(next),
		constant.FieldModifiedAt: modifiedAt,
		constant.FieldModifiedBy: user,
	}

	if err = s.compareAndSet(ctx, booking, fields); err != nil {
		return res, err
	}

	log.Info().Str("booking_id", booking.ID).Str("from", string(booking.Status)).Str("to", string(next)).Msg("booking status changed")

	booking.Status = next
	booking.ModifiedAt = modifiedAt
	booking.ModifiedBy = user

	s.publish(ctx, model.EventStatusChanged, booking)
	s.invalidate(ctx, booking.ID)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) UpdatePayment(ctx context.Context, req dto.UpdatePaymentRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdatePayment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !req.PaymentStatus.IsValid() {
		return res, failure.BadRequestFromString("payment_status is not a valid payment status") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	booking.PaymentStatus = req.PaymentStatus
	booking.ModifiedAt = timezone.Now()
	booking.ModifiedBy = user

	fields := map[string]any{
		model.FieldPaymentStatus: string(booking.PaymentStatus),
		constant.FieldModifiedAt: booking.ModifiedAt,
		constant.FieldModifiedBy: booking.ModifiedBy,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking payment")

		return res, fmt.Errorf("failed to update booking payment: %w", err)
	}

	s.publish(ctx, model.EventUpdated, booking)
	s.invalidate(ctx, booking.ID)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// compareAndSet applies fields only while the row still has the status that was read.
func (s *serviceImpl) compareAndSet(ctx context.Context, booking model.Booking, fields map[string]any) error {
	filter := shared.FilterByID(booking.ID, model.FieldID, model.TableName)
	filter.Filters = append(filter.Filters, gDto.Filter{
		ArgName:  "current_status",
		Field:    model.FieldStatus,
		Value:    string(booking.Status),
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	affected, err := s.repo.UpdateAffected(ctx, fields, filter)
	if err != nil {
		if failure.IsConflict(err) {
			metrics.BookingConflicts.WithLabelValues("store").Inc()

			return err
		}

		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	if affected == 0 {
		return failure.Conflict(errConcurrentWrite) // nolint:wrapcheck
	}

	return nil
}

// publish emits the booking event in the background. A failed publish never fails the write.
func (s *serviceImpl) publish(ctx context.Context, eventType string, booking model.Booking) {
	if len(s.cfg.Kafka.Brokers) == 0 {
		return
	}

	event := model.NewEvent(eventType, booking, timezone.Now())

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, s.cfg.Kafka.BookingTopic, kafka.Message{Key: booking.PropertyID, Value: event})
		if err != nil {
			log.Error().Err(err).Str("type", eventType).Str("booking_id", booking.ID).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

// mergeStay overlays the optional new dates on the current stay.
func mergeStay(current daterange.Range, checkIn, checkOut string) (daterange.Range, error) {
	stay := current

	if checkIn != constant.Empty {
		d, err := daterange.ParseDate(checkIn)
		if err != nil {
			return stay, err
		}

		stay.CheckIn = d
	}

	if checkOut != constant.Empty {
		d, err := daterange.ParseDate(checkOut)
		if err != nil {
			return stay, err
		}

		stay.CheckOut = d
	}

	return stay, stay.Validate()
}
