package availability

import (
	"net/http"
	"net/url"
	"strconv"

	"stayops/infras/otel"
	"stayops/internal/domains/availability/model/dto"
	"stayops/internal/domains/availability/service"
	"stayops/shared/constant"
	"stayops/shared/failure"
	"stayops/shared/timezone"
	"stayops/shared/validator"
	"stayops/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const (
	queryCheckIn          = "check_in"
	queryCheckOut         = "check_out"
	queryExcludeBookingID = "exclude_booking_id"
	queryStart            = "start"
	queryDays             = "days"
	queryGuests           = "guests"
	queryYear             = "year"
	queryMonth            = "month"

	defaultDays = 30
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/properties/{id}/availability", handler.CheckAvailability)
	router.Get("/properties/{id}/available-dates", handler.GetAvailableDates)
	router.Get("/properties/{id}/quote", handler.CalculateBookingPrice)
	router.Get("/properties/{id}/calendar", handler.GetBookingCalendar)
}

// CheckAvailability reports whether a stay is free of overlapping bookings.
// @Summary Check availability for a stay
// @Description Stays are half-open: a check-out day may be another stay's check-in day.
// @Tags Availability
// @Produce json
// @Param id path string true "Property ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param exclude_booking_id query string false "Booking to ignore, used when editing it"
// @Success 200 {object} response.Data[dto.AvailabilityResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/availability [get]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	propertyID := chi.URLParam(r, constant.RequestParamID)
	query := r.URL.Query()

	req := dto.AvailabilityQuery{
		StayQuery:        stayQuery(query),
		ExcludeBookingID: query.Get(queryExcludeBookingID),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		handler.fail(w, scope, err, "failed to validate availability query")

		return
	}

	stay, err := req.Range()
	if err != nil {
		handler.fail(w, scope, failure.BadRequest(err), "invalid stay")

		return
	}

	available, err := handler.service.CheckAvailability(ctx, propertyID, stay, req.ExcludeBookingID)
	if err != nil {
		handler.fail(w, scope, err, "failed to check availability")

		return
	}

	response.WithJSON(w, http.StatusOK, dto.NewAvailabilityResponse(propertyID, stay, available))
}

// GetAvailableDates lists free nights starting at a date.
// @Summary Get available dates
// @Description Returns every free night from start through start plus days, inclusive.
// @Tags Availability
// @Produce json
// @Param id path string true "Property ID"
// @Param start query string false "First date to scan (YYYY-MM-DD), defaults to today"
// @Param days query int false "Days to scan past start, defaults to 30"
// @Success 200 {object} response.Data[dto.AvailableDatesResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/available-dates [get]
func (handler *Handler) GetAvailableDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableDates")
	defer scope.End()

	propertyID := chi.URLParam(r, constant.RequestParamID)
	query := r.URL.Query()

	days, err := intParam(query, queryDays, defaultDays)
	if err != nil {
		handler.fail(w, scope, err, "invalid days")

		return
	}

	req := dto.AvailableDatesQuery{StartDate: query.Get(queryStart), Days: days}

	if err = validator.ValidateStruct(&req); err != nil {
		handler.fail(w, scope, err, "failed to validate available dates query")

		return
	}

	start, err := req.Start(timezone.Today())
	if err != nil {
		handler.fail(w, scope, failure.BadRequest(err), "invalid start date")

		return
	}

	dates, err := handler.service.GetAvailableDates(ctx, propertyID, start, req.Days)
	if err != nil {
		handler.fail(w, scope, err, "failed to get available dates")

		return
	}

	response.WithJSON(w, http.StatusOK, dto.NewAvailableDatesResponse(propertyID, start, req.Days, dates))
}

// CalculateBookingPrice prices a stay without reserving it.
// @Summary Quote a stay
// @Tags Availability
// @Produce json
// @Param id path string true "Property ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param guests query int false "Number of guests, defaults to 1"
// @Success 200 {object} response.Data[dto.QuoteResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/quote [get]
func (handler *Handler) CalculateBookingPrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CalculateBookingPrice")
	defer scope.End()

	propertyID := chi.URLParam(r, constant.RequestParamID)
	query := r.URL.Query()

	guests, err := intParam(query, queryGuests, 1)
	if err != nil {
		handler.fail(w, scope, err, "invalid guests")

		return
	}

	req := dto.QuoteQuery{StayQuery: stayQuery(query), Guests: guests}

	if err = validator.ValidateStruct(&req); err != nil {
		handler.fail(w, scope, err, "failed to validate quote query")

		return
	}

	stay, err := req.Range()
	if err != nil {
		handler.fail(w, scope, failure.BadRequest(err), "invalid stay")

		return
	}

	quote, err := handler.service.CalculateBookingPrice(ctx, propertyID, stay, req.Guests)
	if err != nil {
		handler.fail(w, scope, err, "failed to calculate booking price")

		return
	}

	response.WithJSON(w, http.StatusOK, dto.NewQuoteResponse(propertyID, stay, req.Guests, quote))
}

// GetBookingCalendar lists the bookings touching a calendar month.
// @Summary Get the booking calendar for a month
// @Tags Availability
// @Produce json
// @Param id path string true "Property ID"
// @Param year query int false "Calendar year, defaults to the current year"
// @Param month query int false "Calendar month 1-12, defaults to the current month"
// @Success 200 {object} response.Data[dto.CalendarResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/properties/{id}/calendar [get]
func (handler *Handler) GetBookingCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingCalendar")
	defer scope.End()

	propertyID := chi.URLParam(r, constant.RequestParamID)
	query := r.URL.Query()
	today := timezone.Today()

	year, err := intParam(query, queryYear, today.Year())
	if err != nil {
		handler.fail(w, scope, err, "invalid year")

		return
	}

	month, err := intParam(query, queryMonth, int(today.Month()))
	if err != nil {
		handler.fail(w, scope, err, "invalid month")

		return
	}

	req := dto.CalendarQuery{Year: year, Month: month}

	if err = validator.ValidateStruct(&req); err != nil {
		handler.fail(w, scope, err, "failed to validate calendar query")

		return
	}

	bookings, err := handler.service.GetBookingCalendar(ctx, propertyID, req.Year, req.Month)
	if err != nil {
		handler.fail(w, scope, err, "failed to get booking calendar")

		return
	}

	response.WithJSON(w, http.StatusOK, dto.NewCalendarResponse(propertyID, req.Year, req.Month, bookings))
}

func (handler *Handler) fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)

	response.WithError(w, err)
}

func stayQuery(query url.Values) dto.StayQuery {
	return dto.StayQuery{
		CheckIn:  query.Get(queryCheckIn),
		CheckOut: query.Get(queryCheckOut),
	}
}

func intParam(query url.Values, key string, fallback int) (int, error) {
	raw := query.Get(key)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, failure.BadRequestFromString(key + " must be an integer")
	}

	return value, nil
}
