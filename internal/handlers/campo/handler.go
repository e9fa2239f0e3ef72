package campo

import (
	"net/http"

	"arena/infras/otel"
	"arena/internal/domains/campo/model"
	"arena/internal/domains/campo/model/dto"
	"arena/internal/domains/campo/service"
	"arena/shared"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	"arena/shared/validator"
	"arena/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Campo
	otel    otel.Otel
}

func New(service service.Campo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/campi", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCampo)
		routerGroup.Get("/", handler.GetCampi)
		routerGroup.Get("/{id}", handler.GetCampoByID)
		routerGroup.Patch("/{id}", handler.UpdateCampo)
		routerGroup.Delete("/{id}", handler.DeleteCampo)
	})
}

// CreateCampo handles the creation of a new field.
// @Summary Create a new campo
// @Description Create a new bookable field inside a venue.
// @Tags Campo
// @Accept json
// @Produce json
// @Param request body dto.CreateCampoRequest true "Create Campo Request"
// @Success 201 {object} response.Message "Campo created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/campi [post]
// @Security BearerAuth
func (handler *Handler) CreateCampo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCampo")
	defer scope.End()

	req := dto.CreateCampoRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create campo")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Campo created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Campo created successfully")
}

// GetCampi retrieves all fields based on query parameters.
// @Summary Get all campi
// @Description Retrieve all fields with optional filtering and pagination.
// @Tags Campo
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param sport query string false "Filter by sport"
// @Param struttura_id query string false "Filter by struttura ID"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.CampoResponse] "List of campi"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/campi [get]
func (handler *Handler) GetCampi(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCampi")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)
	sport := r.URL.Query().Get(model.FieldSport)
	strutturaID := r.URL.Query().Get(model.FieldStrutturaID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    name,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldSport,
				Operator: gDto.FilterOperatorLike,
				Value:    sport,
				Table:    model.TableName,
			},
		},
	}

	if strutturaID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStrutturaID,
			Operator: gDto.FilterOperatorEq,
			Value:    strutturaID,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	campi, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get campi")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Campi retrieved successfully")

	response.WithJSON(w, http.StatusOK, campi)
}

// GetCampoByID retrieves a field by its ID.
// @Summary Get a campo by ID
// @Description Retrieve a field by its unique identifier.
// @Tags Campo
// @Accept json
// @Produce json
// @Param id path string true "Campo ID"
// @Success 200 {object} response.Data[dto.CampoResponse] "Campo details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/campi/{id} [get]
func (handler *Handler) GetCampoByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCampoByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	campo, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get campo by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Campo retrieved successfully")

	response.WithJSON(w, http.StatusOK, campo)
}

// UpdateCampo updates an existing field by its ID.
// @Summary Update a campo by ID
// @Description Update the details of an existing field.
// @Tags Campo
// @Accept json
// @Produce json
// @Param id path string true "Campo ID"
// @Param request body dto.UpdateCampoRequest true "Update Campo Request"
// @Success 200 {object} response.Message "Campo updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/campi/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCampo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCampo")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCampoRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update campo")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Campo updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Campo updated successfully")
}

// DeleteCampo deletes a field by its ID.
// @Summary Delete a campo by ID
// @Description Delete a field using its unique identifier.
// @Tags Campo
// @Accept json
// @Produce json
// @Param id path string true "Campo ID"
// @Success 200 {object} response.Message "Campo deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/campi/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCampo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCampo")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete campo")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Campo deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Campo deleted successfully")
}
