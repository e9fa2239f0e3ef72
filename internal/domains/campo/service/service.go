package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"arena/config"
	"arena/infras/otel"
	"arena/internal/domains/campo/model"
	"arena/internal/domains/campo/model/dto"
	"arena/internal/domains/campo/repository"
	strutturaModel "arena/internal/domains/struttura/model"
	strutturaRepo "arena/internal/domains/struttura/repository"
	"arena/shared"
	"arena/shared/cache"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	"arena/shared/failure"
)

const (
	cacheGetCampo    = "campo:get"
	cacheGetAllCampo = "campo:gets"
	cacheCountCampo  = "campo:count"
)

type Campo interface {
	Create(ctx context.Context, req dto.CreateCampoRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCampiResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.CampoResponse, error)
	Update(ctx context.Context, req dto.UpdateCampoRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo          repository.Campo
	strutturaRepo strutturaRepo.Struttura
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(repo repository.Campo, strutturaRepo strutturaRepo.Struttura, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Campo {
	return &serviceImpl{
		repo:          repo,
		strutturaRepo: strutturaRepo,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCampoRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	strutturaExists, err := s.strutturaRepo.Exist(ctx, shared.FilterByID(req.StrutturaID, strutturaModel.FieldID, strutturaModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if struttura exists")

		return fmt.Errorf("failed to check if struttura exists: %w", err)
	}

	if !strutturaExists {
		return failure.BadRequestFromString("struttura does not exist") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create campo")

		return fmt.Errorf("failed to create campo: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCampo)
		shared.InvalidateCaches(c, s.cache, cacheCountCampo)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCampiResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCampo, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for campi")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count campi")

		return res, fmt.Errorf("failed to count campi: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get campi")

		return res, fmt.Errorf("failed to get campi: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save campi to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCampo, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for campo count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count campi")

		return res, fmt.Errorf("failed to count campi: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save campo count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CampoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetCampo, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for campo")

		return res, nil
	}

	campo, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get campo")

		return res, fmt.Errorf("failed to get campo: %w", err)
	}

	if campo.ID == constant.Empty {
		return res, failure.NotFound("campo not found") // nolint:wrapcheck
	}

	res.FromModel(campo)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save campo to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCampoRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if campo exists")

		return fmt.Errorf("failed to check if campo exists: %w", err)
	}

	if !exist {
		log.Error().Msg("campo not found")

		return failure.NotFound("campo not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update campo")

		return fmt.Errorf("failed to update campo: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCampo, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete campo from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCampo)
		shared.InvalidateCaches(c, s.cache, cacheCountCampo)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if campo exists")

		return fmt.Errorf("failed to check if campo exists: %w", err)
	}

	if !exist {
		log.Error().Msg("campo not found")

		return failure.NotFound("campo not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete campo")

		return fmt.Errorf("failed to delete campo: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCampo, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete campo from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCampo)
		shared.InvalidateCaches(c, s.cache, cacheCountCampo)
	}()

	return nil
}
