package maintenance

import (
	"net/http"

	"stayops/infras/otel"
	"stayops/internal/domains/maintenance/model"
	"stayops/internal/domains/maintenance/model/dto"
	"stayops/internal/domains/maintenance/service"
	"stayops/shared/constant"
	gDto "stayops/shared/dto"
	"stayops/shared/validator"
	"stayops/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Maintenance
	otel    otel.Otel
}

func New(service service.Maintenance, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/maintenance", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMaintenance)
		routerGroup.Get("/", handler.GetMaintenanceLogs)
		routerGroup.Get("/{id}", handler.GetMaintenanceByID)
		routerGroup.Patch("/{id}", handler.UpdateMaintenance)
		routerGroup.Post("/{id}/complete", handler.CompleteMaintenance)
		routerGroup.Delete("/{id}", handler.DeleteMaintenance)
	})
}

// CreateMaintenance logs a maintenance task against a property.
// @Summary Create a maintenance log
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param request body dto.CreateMaintenanceRequest true "Create Maintenance Request"
// @Success 201 {object} response.Data[dto.MaintenanceResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance [post]
func (handler *Handler) CreateMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMaintenance")
	defer scope.End()

	req := dto.CreateMaintenanceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logError(err, "failed to validate request body")

		response.WithError(w, err)

		return
	}

	entry, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		logError(err, "failed to create maintenance log")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, entry)
}

// GetMaintenanceLogs lists maintenance logs.
// @Summary Get all maintenance logs
// @Tags Maintenance
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param property_id query string false "Filter by property"
// @Param booking_id query string false "Filter by booking"
// @Param category query string false "Filter by category (cleaning, repair, inspection, other)"
// @Param status query string false "Filter by status (open, in-progress, completed)"
// @Success 200 {object} response.Data[dto.GetMaintenanceLogsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance [get]
func (handler *Handler) GetMaintenanceLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMaintenanceLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true, model.SortableFields...)

	filterGroup := gDto.EqualsFromQuery(r.URL.Query(), model.TableName,
		model.FieldPropertyID, model.FieldBookingID, model.FieldCategory, model.FieldStatus)

	logs, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		logError(err, "failed to get maintenance logs")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, logs)
}

// GetMaintenanceByID retrieves a maintenance log.
// @Summary Get a maintenance log by ID
// @Tags Maintenance
// @Produce json
// @Param id path string true "Maintenance log ID"
// @Success 200 {object} response.Data[dto.MaintenanceResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/{id} [get]
func (handler *Handler) GetMaintenanceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMaintenanceByID")
	defer scope.End()

	entry, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		logError(err, "failed to get maintenance log by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, entry)
}

// UpdateMaintenance edits an open or in-progress log.
// @Summary Update a maintenance log by ID
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance log ID"
// @Param request body dto.UpdateMaintenanceRequest true "Update Maintenance Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/{id} [patch]
func (handler *Handler) UpdateMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMaintenance")
	defer scope.End()

	req := dto.UpdateMaintenanceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		logError(err, "failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		logError(err, "failed to update maintenance log")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Maintenance log updated successfully")
}

// CompleteMaintenance closes a log, optionally recording its final cost.
// @Summary Complete a maintenance log
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance log ID"
// @Param request body dto.CompleteMaintenanceRequest false "Completion details"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/{id}/complete [post]
func (handler *Handler) CompleteMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteMaintenance")
	defer scope.End()

	req := dto.CompleteMaintenanceRequest{}
	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			logError(err, "failed to validate request body")

			response.WithError(w, err)

			return
		}
	}

	if err := handler.service.Complete(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		logError(err, "failed to complete maintenance log")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Maintenance log completed")
}

// DeleteMaintenance removes a log.
// @Summary Delete a maintenance log by ID
// @Tags Maintenance
// @Produce json
// @Param id path string true "Maintenance log ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/{id} [delete]
func (handler *Handler) DeleteMaintenance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMaintenance")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		logError(err, "failed to delete maintenance log")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Maintenance log deleted successfully")
}

func logError(err error, msg string) {
	log.Error().Err(err).Msg(msg)
}
