package availability_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	otelMocks "stayops/infras/otel/mocks"
	"stayops/internal/domains/availability/mocks"
	"stayops/internal/domains/availability/model"
	bookingModel "stayops/internal/domains/booking/model"
	"stayops/internal/handlers/availability"
	"stayops/shared/daterange"
	"stayops/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *mocks.MockAvailability) {
	t.Helper()

	svc := mocks.NewMockAvailability(gomock.NewController(t))
	handler := availability.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func date(day int) time.Time {
	return time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC)
}

func serve(router http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestCheckAvailability(t *testing.T) {
	t.Run("available stay", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().
			CheckAvailability(gomock.Any(), "p1", daterange.Range{CheckIn: date(1), CheckOut: date(3)}, "b9").
			Return(true, nil)

		rec := serve(router, "/properties/p1/availability?check_in=2025-06-01&check_out=2025-06-03&exclude_booking_id=b9")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"data":{"property_id":"p1","check_in":"2025-06-01","check_out":"2025-06-03","available":true}}`,
			rec.Body.String())
	})

	t.Run("missing check_out", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, "/properties/p1/availability?check_in=2025-06-01")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("check_out before check_in", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, "/properties/p1/availability?check_in=2025-06-03&check_out=2025-06-01")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown property", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().CheckAvailability(gomock.Any(), "nope", gomock.Any(), "").Return(false, failure.NotFound("property not found"))

		rec := serve(router, "/properties/nope/availability?check_in=2025-06-01&check_out=2025-06-03")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetAvailableDates(t *testing.T) {
	t.Run("explicit window", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().GetAvailableDates(gomock.Any(), "p1", date(1), 2).Return([]time.Time{date(1), date(3)}, nil)

		rec := serve(router, "/properties/p1/available-dates?start=2025-06-01&days=2")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"data":{"property_id":"p1","start_date":"2025-06-01","days":2,"dates":["2025-06-01","2025-06-03"]}}`,
			rec.Body.String())
	})

	t.Run("defaults to thirty days", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().GetAvailableDates(gomock.Any(), "p1", gomock.Any(), 30).Return([]time.Time{}, nil)

		rec := serve(router, "/properties/p1/available-dates")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"dates":[]`)
	})

	t.Run("non numeric days", func(t *testing.T) {
		router, _ := newRouter(t)

		assert.Equal(t, http.StatusBadRequest, serve(router, "/properties/p1/available-dates?days=ten").Code)
	})

	t.Run("negative days", func(t *testing.T) {
		router, _ := newRouter(t)

		assert.Equal(t, http.StatusBadRequest, serve(router, "/properties/p1/available-dates?days=-1").Code)
	})
}

func TestCalculateBookingPrice(t *testing.T) {
	t.Run("quote", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().
			CalculateBookingPrice(gomock.Any(), "p1", daterange.Range{CheckIn: date(1), CheckOut: date(3)}, 2).
			Return(model.Quote{Nights: 2, BaseAmount: 130000, CleaningFee: 5000, ServiceFee: 6500, TotalAmount: 141500}, nil)

		rec := serve(router, "/properties/p1/quote?check_in=2025-06-01&check_out=2025-06-03&guests=2")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{
			"property_id":"p1","check_in":"2025-06-01","check_out":"2025-06-03","guests":2,
			"nights":2,"base_amount":130000,"cleaning_fee":5000,"service_fee":6500,"total_amount":141500}}`,
			rec.Body.String())
	})

	t.Run("zero guests", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, "/properties/p1/quote?check_in=2025-06-01&check_out=2025-06-03&guests=0")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("over capacity", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().CalculateBookingPrice(gomock.Any(), "p1", gomock.Any(), 9).
			Return(model.Quote{}, failure.BadRequestFromString("property allows at most 4 guests"))

		rec := serve(router, "/properties/p1/quote?check_in=2025-06-01&check_out=2025-06-03&guests=9")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "at most 4 guests")
	})
}

func TestGetBookingCalendar(t *testing.T) {
	t.Run("month listing", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().GetBookingCalendar(gomock.Any(), "p1", 2025, 6).Return([]bookingModel.Booking{
			{ID: "b1", PropertyID: "p1", CheckIn: date(2), CheckOut: date(5), Status: bookingModel.StatusConfirmed},
		}, nil)

		rec := serve(router, "/properties/p1/calendar?year=2025&month=6")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"b1"`)
		assert.Contains(t, rec.Body.String(), `"check_in":"2025-06-02"`)
	})

	t.Run("month out of range", func(t *testing.T) {
		router, _ := newRouter(t)

		assert.Equal(t, http.StatusBadRequest, serve(router, "/properties/p1/calendar?year=2025&month=13").Code)
	})
}
