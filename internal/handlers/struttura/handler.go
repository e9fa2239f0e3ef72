package struttura

import (
	"net/http"

	"arena/infras/otel"
	"arena/internal/domains/struttura/model"
	"arena/internal/domains/struttura/model/dto"
	"arena/internal/domains/struttura/service"
	"arena/shared"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	"arena/shared/validator"
	"arena/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Struttura
	otel    otel.Otel
}

func New(service service.Struttura, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/strutture", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateStruttura)
		routerGroup.Get("/", handler.GetStrutture)
		routerGroup.Get("/{id}", handler.GetStrutturaByID)
		routerGroup.Patch("/{id}", handler.UpdateStruttura)
		routerGroup.Delete("/{id}", handler.DeleteStruttura)
	})
}

// CreateStruttura handles the creation of a new venue.
// @Summary Create a new struttura
// @Description Create a new venue with the provided details.
// @Tags Struttura
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Venue name"
// @Param address formData string false "Venue address"
// @Param city formData string false "Venue city"
// @Param active formData boolean false "Venue active status"
// @Param image formData file false "Venue image"
// @Success 201 {object} response.Message "Struttura created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/strutture [post]
// @Security BearerAuth
func (handler *Handler) CreateStruttura(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStruttura")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateStrutturaRequest{
		Name:    request.FormValue("name"),
		Address: request.FormValue("address"),
		City:    request.FormValue("city"),
	}

	if activeStr := request.FormValue("active"); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := request.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create struttura")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Struttura created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Struttura created successfully")
}

// GetStrutture retrieves all venues based on query parameters.
// @Summary Get all strutture
// @Description Retrieve all venues with optional filtering and pagination.
// @Tags Struttura
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param city query string false "Filter by city"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.StrutturaResponse] "List of strutture"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/strutture [get]
func (handler *Handler) GetStrutture(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStrutture")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)
	city := r.URL.Query().Get(model.FieldCity)

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
				Field:    model.FieldCity,
				Operator: gDto.FilterOperatorLike,
				Value:    city,
				Table:    model.TableName,
			},
		},
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	strutture, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get strutture")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Strutture retrieved successfully")

	response.WithJSON(w, http.StatusOK, strutture)
}

// GetStrutturaByID retrieves a venue by its ID.
// @Summary Get a struttura by ID
// @Description Retrieve a venue by its unique identifier.
// @Tags Struttura
// @Accept json
// @Produce json
// @Param id path string true "Struttura ID"
// @Success 200 {object} response.Data[dto.StrutturaResponse] "Struttura details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/strutture/{id} [get]
func (handler *Handler) GetStrutturaByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStrutturaByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	struttura, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get struttura by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Struttura retrieved successfully")

	response.WithJSON(w, http.StatusOK, struttura)
}

// UpdateStruttura updates an existing venue by its ID.
// @Summary Update a struttura by ID
// @Description Update the details of an existing venue.
// @Tags Struttura
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Struttura ID"
// @Param name formData string false "Venue name"
// @Param address formData string false "Venue address"
// @Param city formData string false "Venue city"
// @Param active formData boolean false "Venue active status"
// @Param image formData file false "Venue image"
// @Success 200 {object} response.Message "Struttura updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/strutture/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStruttura(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStruttura")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateStrutturaRequest{
		Name:    r.FormValue("name"),
		Address: r.FormValue("address"),
		City:    r.FormValue("city"),
	}

	if activeStr := r.FormValue("active"); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update struttura")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Struttura updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Struttura updated successfully")
}

// DeleteStruttura deletes a venue by its ID.
// @Summary Delete a struttura by ID
// @Description Delete a venue using its unique identifier.
// @Tags Struttura
// @Accept json
// @Produce json
// @Param id path string true "Struttura ID"
// @Success 200 {object} response.Message "Struttura deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/strutture/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteStruttura(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStruttura")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete struttura")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Struttura deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Struttura deleted successfully")
}
