package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"time"

	"stayops/config"
	"stayops/infras/metrics"
	"stayops/infras/otel"
	"stayops/internal/domains/availability/model"
	bookingModel "stayops/internal/domains/booking/model"
	propertyModel "stayops/internal/domains/property/model"
	"stayops/shared/constant"
	"stayops/shared/daterange"
	"stayops/shared/failure"

	"github.com/rs/zerolog/log"
)

// BookingStore is the read side of the booking repository.
type BookingStore interface {
	ListBookings(ctx context.Context, filter bookingModel.Filter) ([]bookingModel.Booking, error)
}

// PropertyCatalog resolves properties, failing with NotFound for unknown ids.
type PropertyCatalog interface {
	GetPropertyByID(ctx context.Context, id string) (propertyModel.Property, error)
}

type Availability interface {
	CheckAvailability(ctx context.Context, propertyID string, stay daterange.Range, excludeBookingID string) (bool, error)
	GetAvailableDates(ctx context.Context, propertyID string, start time.Time, days int) ([]time.Time, error)
	CalculateBookingPrice(ctx context.Context, propertyID string, stay daterange.Range, guests int) (model.Quote, error)
	GetBookingCalendar(ctx context.Context, propertyID string, year, month int) ([]bookingModel.Booking, error)
}

// Bookings in these states no longer hold the property for new stays.
var releasedStatuses = []bookingModel.Status{bookingModel.StatusCancelled, bookingModel.StatusCheckedOut}

// Cancelled bookings are the only ones hidden from date listings and calendars.
var hiddenStatuses = []bookingModel.Status{bookingModel.StatusCancelled}

type serviceImpl struct {
	store   BookingStore
	catalog PropertyCatalog
	cfg     *config.Config
	otel    otel.Otel
}

func New(store BookingStore, catalog PropertyCatalog, cfg *config.Config, otel otel.Otel) Availability {
	return &serviceImpl{
		store:   store,
		catalog: catalog,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, propertyID string, stay daterange.Range, excludeBookingID string) (available bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.CheckAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = stay.Validate(); err != nil {
		return false, failure.BadRequest(err) // nolint:wrapcheck
	}

	if _, err = s.catalog.GetPropertyByID(ctx, propertyID); err != nil {
		return false, fmt.Errorf("failed to resolve property: %w", err)
	}

	bookings, err := s.store.ListBookings(ctx, bookingModel.Filter{
		PropertyID:      propertyID,
		ExcludeID:       excludeBookingID,
		ExcludeStatuses: releasedStatuses,
		CheckInBefore:   &stay.CheckOut,
		CheckOutAfter:   &stay.CheckIn,
	})
	if err != nil {
		log.Error().Err(err).Str("property_id", propertyID).Msg("failed to list bookings for availability")

		return false, fmt.Errorf("failed to list bookings: %w", err)
	}

	for _, booking := range bookings {
		if stay.Overlaps(booking.Stay()) {
			scope.SetAttribute("availability.blocking_booking", booking.ID)

			return false, nil
		}
	}

	return true, nil
}

func (s *serviceImpl) GetAvailableDates(ctx context.Context, propertyID string, start time.Time, days int) (dates []time.Time, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.GetAvailableDates")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if days < 0 {
		return nil, failure.BadRequestFromString("days must be greater than or equal to 0") // nolint:wrapcheck
	}

	if limit := s.cfg.Pricing.MaxHorizonDays; limit > 0 && days > limit {
		return nil, failure.BadRequestFromString(fmt.Sprintf("days must be less than or equal to %d", limit)) // nolint:wrapcheck
	}

	if _, err = s.catalog.GetPropertyByID(ctx, propertyID); err != nil {
		return nil, fmt.Errorf("failed to resolve property: %w", err)
	}

	start = daterange.Truncate(start)
	// The horizon includes its last day, so the store window ends one day later.
	windowEnd := daterange.AddDays(start, days+1)

	bookings, err := s.store.ListBookings(ctx, bookingModel.Filter{
		PropertyID:      propertyID,
		ExcludeStatuses: hiddenStatuses,
		CheckInBefore:   &windowEnd,
		CheckOutAfter:   &start,
	})
	if err != nil {
		log.Error().Err(err).Str("property_id", propertyID).Msg("failed to list bookings for available dates")

		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	booked := map[string]struct{}{}
	for _, booking := range bookings {
		for _, night := range booking.Stay().Dates() {
			booked[daterange.Format(night)] = struct{}{}
		}
	}

	dates = slices.Collect(freeDates(start, days, booked))
	if dates == nil {
		dates = []time.Time{}
	}

	return dates, nil
}

// freeDates walks [start, start+days] and yields the dates absent from booked.
func freeDates(start time.Time, days int, booked map[string]struct{}) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for i := range days + 1 {
			d := daterange.AddDays(start, i)
			if _, taken := booked[daterange.Format(d)]; taken {
				continue
			}

			if !yield(d) {
				return
			}
		}
	}
}

func (s *serviceImpl) CalculateBookingPrice(ctx context.Context, propertyID string, stay daterange.Range, guests int) (quote model.Quote, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.CalculateBookingPrice")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = stay.Validate(); err != nil {
		return quote, failure.BadRequest(err) // nolint:wrapcheck
	}

	if guests < 1 {
		return quote, failure.BadRequestFromString("number of guests must be at least 1") // nolint:wrapcheck
	}

	property, err := s.catalog.GetPropertyByID(ctx, propertyID)
	if err != nil {
		return quote, fmt.Errorf("failed to resolve property: %w", err)
	}

	if property.MaxGuests > 0 && guests > property.MaxGuests {
		return quote, failure.BadRequestFromString(fmt.Sprintf("property accepts at most %d guests", property.MaxGuests)) // nolint:wrapcheck
	}

	quote = CalculatePrice(property, stay, s.serviceFeeRate())

	metrics.BookingQuotes.Inc()
	scope.SetAttributes(map[string]any{
		"quote.nights": quote.Nights,
		"quote.total":  quote.TotalAmount,
	})

	return quote, nil
}

func (s *serviceImpl) GetBookingCalendar(ctx context.Context, propertyID string, year, month int) (bookings []bookingModel.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.GetBookingCalendar")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if month < 1 || month > 12 {
		return nil, failure.BadRequestFromString("month must be between 1 and 12") // nolint:wrapcheck
	}

	if year < 1 || year > 9999 {
		return nil, failure.BadRequestFromString("year must be between 1 and 9999") // nolint:wrapcheck
	}

	if _, err = s.catalog.GetPropertyByID(ctx, propertyID); err != nil {
		return nil, fmt.Errorf("failed to resolve property: %w", err)
	}

	window := daterange.Month(year, time.Month(month))

	listed, err := s.store.ListBookings(ctx, bookingModel.Filter{
		PropertyID:      propertyID,
		ExcludeStatuses: hiddenStatuses,
		CheckInBefore:   &window.CheckOut,
		CheckOutAfter:   &window.CheckIn,
	})
	if err != nil {
		log.Error().Err(err).Str("property_id", propertyID).Msg("failed to list bookings for calendar")

		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookings = make([]bookingModel.Booking, 0, len(listed))
	for _, booking := range listed {
		if window.Overlaps(booking.Stay()) {
			bookings = append(bookings, booking)
		}
	}

	slices.SortStableFunc(bookings, func(a, b bookingModel.Booking) int {
		return a.CheckIn.Compare(b.CheckIn)
	})

	return bookings, nil
}

// serviceFeeRate falls back to the default only for a Config that did not come from config.Load.
func (s *serviceImpl) serviceFeeRate() float64 {
	if s.cfg.Pricing.ServiceFeeRate > 0 {
		return s.cfg.Pricing.ServiceFeeRate
	}

	return DefaultServiceFeeRate
}
