package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stayops/config"
	otelMocks "stayops/infras/otel/mocks"
	"stayops/internal/domains/availability/mocks"
	"stayops/internal/domains/availability/model"
	"stayops/internal/domains/availability/service"
	bookingModel "stayops/internal/domains/booking/model"
	propertyModel "stayops/internal/domains/property/model"
	"stayops/shared/daterange"
	"stayops/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const propertyID = "prop-1"

type fixture struct {
	svc     service.Availability
	store   *mocks.MockBookingStore
	catalog *mocks.MockPropertyCatalog
	cfg     *config.Config
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockBookingStore(ctrl)
	catalog := mocks.NewMockPropertyCatalog(ctrl)

	cfg := &config.Config{}
	cfg.Pricing.MaxHorizonDays = 730

	return fixture{
		svc:     service.New(store, catalog, cfg, otelMocks.NewOtel()),
		store:   store,
		catalog: catalog,
		cfg:     cfg,
	}
}

func date(t *testing.T, value string) time.Time {
	t.Helper()

	d, err := daterange.ParseDate(value)
	require.NoError(t, err)

	return d
}

func booking(t *testing.T, id, in, out string, status bookingModel.Status) bookingModel.Booking {
	t.Helper()

	return bookingModel.Booking{
		ID:         id,
		PropertyID: propertyID,
		CheckIn:    date(t, in),
		CheckOut:   date(t, out),
		Status:     status,
	}
}

func (f fixture) knownProperty(property propertyModel.Property) {
	property.ID = propertyID
	f.catalog.EXPECT().GetPropertyByID(gomock.Any(), propertyID).Return(property, nil)
}

func (f fixture) unknownProperty() {
	f.catalog.EXPECT().GetPropertyByID(gomock.Any(), propertyID).Return(propertyModel.Property{}, failure.NotFound("property"))
}

func TestAvailability_CheckAvailability(t *testing.T) {
	existing := func(t *testing.T) []bookingModel.Booking {
		return []bookingModel.Booking{booking(t, "b1", "2025-06-10", "2025-06-15", bookingModel.StatusConfirmed)}
	}

	tests := []struct {
		name      string
		in, out   string
		bookings  func(t *testing.T) []bookingModel.Booking
		expected  bool
		wantErrIs func(error) bool
	}{
		{name: "no bookings", in: "2025-06-10", out: "2025-06-15", bookings: func(*testing.T) []bookingModel.Booking { return nil }, expected: true},
		{name: "disjoint before", in: "2025-06-01", out: "2025-06-05", bookings: existing, expected: true},
		{name: "disjoint after", in: "2025-06-20", out: "2025-06-22", bookings: existing, expected: true},
		{name: "check-in on existing check-out", in: "2025-06-15", out: "2025-06-18", bookings: existing, expected: true},
		{name: "check-out on existing check-in", in: "2025-06-07", out: "2025-06-10", bookings: existing, expected: true},
		{name: "overlaps start", in: "2025-06-08", out: "2025-06-11", bookings: existing, expected: false},
		{name: "overlaps end", in: "2025-06-14", out: "2025-06-16", bookings: existing, expected: false},
		{name: "inside existing", in: "2025-06-11", out: "2025-06-12", bookings: existing, expected: false},
		{name: "contains existing", in: "2025-06-01", out: "2025-06-30", bookings: existing, expected: false},
		{name: "identical range", in: "2025-06-10", out: "2025-06-15", bookings: existing, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			stay := stay(t, tt.in, tt.out)

			f.knownProperty(propertyModel.Property{BaseRate: 100})
			f.store.EXPECT().
				ListBookings(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, filter bookingModel.Filter) ([]bookingModel.Booking, error) {
					assert.Equal(t, propertyID, filter.PropertyID)
					assert.ElementsMatch(t, []bookingModel.Status{bookingModel.StatusCancelled, bookingModel.StatusCheckedOut}, filter.ExcludeStatuses)
					assert.Equal(t, stay.CheckOut, *filter.CheckInBefore)
					assert.Equal(t, stay.CheckIn, *filter.CheckOutAfter)

					return tt.bookings(t), nil
				})

			available, err := f.svc.CheckAvailability(context.Background(), propertyID, stay, "")

			require.NoError(t, err)
			assert.Equal(t, tt.expected, available)
		})
	}
}

func TestAvailability_CheckAvailability_ExcludesBooking(t *testing.T) {
	f := newFixture(t)

	f.knownProperty(propertyModel.Property{BaseRate: 100})
	f.store.EXPECT().
		ListBookings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter bookingModel.Filter) ([]bookingModel.Booking, error) {
			assert.Equal(t, "b1", filter.ExcludeID)

			return nil, nil
		})

	available, err := f.svc.CheckAvailability(context.Background(), propertyID, stay(t, "2025-06-10", "2025-06-12"), "b1")

	require.NoError(t, err)
	assert.True(t, available)
}

func TestAvailability_CheckAvailability_Errors(t *testing.T) {
	t.Run("invalid range", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CheckAvailability(context.Background(), propertyID, daterange.Range{
			CheckIn:  date(t, "2025-06-10"),
			CheckOut: date(t, "2025-06-10"),
		}, "")

		assert.True(t, failure.IsValidation(err))
	})

	t.Run("unknown property", func(t *testing.T) {
		f := newFixture(t)
		f.unknownProperty()

		_, err := f.svc.CheckAvailability(context.Background(), propertyID, stay(t, "2025-06-10", "2025-06-12"), "")

		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("store error", func(t *testing.T) {
		f := newFixture(t)
		f.knownProperty(propertyModel.Property{BaseRate: 100})
		f.store.EXPECT().ListBookings(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := f.svc.CheckAvailability(context.Background(), propertyID, stay(t, "2025-06-10", "2025-06-12"), "")

		assert.Error(t, err)
	})
}

func TestAvailability_GetAvailableDates(t *testing.T) {
	t.Run("empty property lists every day of the horizon", func(t *testing.T) {
		f := newFixture(t)
		f.knownProperty(propertyModel.Property{BaseRate: 100})
		f.store.EXPECT().
			ListBookings(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter bookingModel.Filter) ([]bookingModel.Booking, error) {
				assert.Equal(t, []bookingModel.Status{bookingModel.StatusCancelled}, filter.ExcludeStatuses)
				assert.Equal(t, date(t, "2025-06-11"), *filter.CheckInBefore)
				assert.Equal(t, date(t, "2025-06-01"), *filter.CheckOutAfter)

				return nil, nil
			})

		dates, err := f.svc.GetAvailableDates(context.Background(), propertyID, date(t, "2025-06-01"), 9)

		require.NoError(t, err)
		require.Len(t, dates, 10)
		assert.Equal(t, date(t, "2025-06-01"), dates[0])
		assert.Equal(t, date(t, "2025-06-10"), dates[9])
	})

	t.Run("booked nights are removed and check-out day stays free", func(t *testing.T) {
		f := newFixture(t)
		f.knownProperty(propertyModel.Property{BaseRate: 100})
		f.store.EXPECT().ListBookings(gomock.Any(), gomock.Any()).Return([]bookingModel.Booking{
			booking(t, "b1", "2025-06-02", "2025-06-04", bookingModel.StatusConfirmed),
			booking(t, "b2", "2025-05-28", "2025-06-01", bookingModel.StatusCheckedOut),
			booking(t, "b3", "2025-06-05", "2025-06-09", bookingModel.StatusPending),
		}, nil)

		dates, err := f.svc.GetAvailableDates(context.Background(), propertyID, date(t, "2025-06-01"), 6)

		require.NoError(t, err)
		assert.Equal(t, []time.Time{date(t, "2025-06-01"), date(t, "2025-06-04")}, dates)
	})

	t.Run("zero days checks the start date only", func(t *testing.T) {
		f := newFixture(t)
		f.knownProperty(propertyModel.Property{BaseRate: 100})
		f.store.EXPECT().ListBookings(gomock.Any(), gomock.Any()).Return([]bookingModel.Booking{
			booking(t, "b1", "2025-06-01", "2025-06-02", bookingModel.StatusConfirmed),
		}, nil)

		dates, err := f.svc.GetAvailableDates(context.Background(), propertyID, date(t, "2025-06-01"), 0)

		require.NoError(t, err)
		assert.NotNil(t, dates)
		assert.Empty(t, dates)
	})

	t.Run("start time of day is dropped", func(t *testing.T) {
		f := newFixture(t)
		f.knownProperty(propertyModel.Property{BaseRate: 100})
		f.store.EXPECT().ListBookings(gomock.Any(), gomock.Any()).Return(nil, nil)

		dates, err := f.svc.GetAvailableDates(context.Background(), propertyID, time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC), 1)

		require.NoError(t, err)
		assert.Equal(t, []time.Time{date(t, "2025-06-01"), date(t, "2025-06-02")}, dates)
	})

	t.Run("negative days", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetAvailableDates(context.Background(), propertyID, date(t, "2025-06-01"), -1)

		assert.True(t, failure.IsValidation(err))
	})

	t.Run("horizon too long", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetAvailableDates(context.Background(), propertyID, date(t, "2025-06-01"), 731)

		assert.True(t, failure.IsValidation(err))
	})

	t.Run("unknown property", func(t *testing.T) {
		f := newFixture(t)
		f.unknownProperty()

		_, err := f.svc.GetAvailableDates(context.Background(), propertyID, date(t, "2025-06-01"), 30)

		assert.True(t, failure.IsNotFound(err))
	})
}

func TestAvailability_CalculateBookingPrice(t *testing.T) {
	t.Run("scenario quote", func(t *testing.T) {
		f := newFixture(t)
		f.knownProperty(propertyModel.Property{BaseRate: 65000, CleaningFee: 5000, MaxGuests: 4})

		quote, err := f.svc.CalculateBookingPrice(context.Background(), propertyID, stay(t, "2025-06-01", "2025-06-03"), 2)

		require.NoError(t, err)
		assert.Equal(t, model.Quote{Nights: 2, BaseAmount: 130000, CleaningFee: 5000, ServiceFee: 6500, TotalAmount: 141500}, quote)
	})

	t.Run("configured service fee rate", func(t *testing.T) {
		f := newFixture(t)
		f.cfg.Pricing.ServiceFeeRate = 0.1
		f.knownProperty(propertyModel.Property{BaseRate: 100})

		quote, err := f.svc.CalculateBookingPrice(context.Background(), propertyID, stay(t, "2025-06-02", "2025-06-04"), 1)

		require.NoError(t, err)
		assert.Equal(t, 20.0, quote.ServiceFee)
		assert.Equal(t, 220.0, quote.TotalAmount)
	})

	t.Run("too many guests", func(t *testing.T) {
		f := newFixture(t)
		f.knownProperty(propertyModel.Property{BaseRate: 100, MaxGuests: 2})

		_, err := f.svc.CalculateBookingPrice(context.Background(), propertyID, stay(t, "2025-06-02", "2025-06-04"), 3)

		assert.True(t, failure.IsValidation(err))
	})

	t.Run("no guests", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CalculateBookingPrice(context.Background(), propertyID, stay(t, "2025-06-02", "2025-06-04"), 0)

		assert.True(t, failure.IsValidation(err))
	})

	t.Run("invalid range", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CalculateBookingPrice(context.Background(), propertyID, daterange.Range{}, 1)

		assert.True(t, failure.IsValidation(err))
	})

	t.Run("unknown property", func(t *testing.T) {
		f := newFixture(t)
		f.unknownProperty()

		_, err := f.svc.CalculateBookingPrice(context.Background(), propertyID, stay(t, "2025-06-02", "2025-06-04"), 1)

		assert.True(t, failure.IsNotFound(err))
	})
}

func TestAvailability_GetBookingCalendar(t *testing.T) {
	t.Run("keeps overlapping bookings ordered by check-in", func(t *testing.T) {
		f := newFixture(t)
		f.knownProperty(propertyModel.Property{BaseRate: 100})
		f.store.EXPECT().
			ListBookings(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter bookingModel.Filter) ([]bookingModel.Booking, error) {
				assert.Equal(t, date(t, "2025-07-01"), *filter.CheckInBefore)
				assert.Equal(t, date(t, "2025-06-01"), *filter.CheckOutAfter)

				return []bookingModel.Booking{
					booking(t, "late", "2025-06-25", "2025-07-03", bookingModel.StatusConfirmed),
					booking(t, "spill", "2025-05-29", "2025-06-02", bookingModel.StatusCheckedOut),
					booking(t, "mid", "2025-06-10", "2025-06-12", bookingModel.StatusPending),
					booking(t, "edge", "2025-05-25", "2025-06-01", bookingModel.StatusCheckedOut),
				}, nil
			})

		bookings, err := f.svc.GetBookingCalendar(context.Background(), propertyID, 2025, 6)

		require.NoError(t, err)

		ids := make([]string, len(bookings))
		for i, b := range bookings {
			ids[i] = b.ID
		}

		assert.Equal(t, []string{"spill", "mid", "late"}, ids)
	})

	t.Run("empty month", func(t *testing.T) {
		f := newFixture(t)
		f.knownProperty(propertyModel.Property{BaseRate: 100})
		f.store.EXPECT().ListBookings(gomock.Any(), gomock.Any()).Return(nil, nil)

		bookings, err := f.svc.GetBookingCalendar(context.Background(), propertyID, 2025, 2)

		require.NoError(t, err)
		assert.NotNil(t, bookings)
		assert.Empty(t, bookings)
	})

	t.Run("invalid month", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetBookingCalendar(context.Background(), propertyID, 2025, 13)

		assert.True(t, failure.IsValidation(err))
	})

	t.Run("invalid year", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.GetBookingCalendar(context.Background(), propertyID, 0, 1)

		assert.True(t, failure.IsValidation(err))
	})

	t.Run("unknown property", func(t *testing.T) {
		f := newFixture(t)
		f.unknownProperty()

		_, err := f.svc.GetBookingCalendar(context.Background(), propertyID, 2025, 6)

		assert.True(t, failure.IsNotFound(err))
	})
}
