package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"arena/infras/otel"
	"arena/infras/postgres"
	"arena/internal/domains/campo/model"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	gRepo "arena/shared/repository"
)

type Campo interface {
	Insert(ctx context.Context, model model.Campo) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Campo, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Campo, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetByStrutture(ctx context.Context, strutturaIDs []string) ([]model.Campo, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Campo]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Campo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Campo](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByStrutture loads every active field belonging to the given venues.
func (repo *repositoryImpl) GetByStrutture(ctx context.Context, strutturaIDs []string) (res []model.Campo, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".campo.GetByStrutture")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(strutturaIDs) == 0 {
		return []model.Campo{}, nil
	}

	query, args, err := sqlx.In(
		"SELECT * FROM "+model.TableName+" WHERE struttura_id IN (?) AND active = true",
		strutturaIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build campi query: %w", err)
	}

	query = repo.db.Read.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	res = []model.Campo{}
	if err = repo.db.Read.SelectContext(ctx, &res, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get campi by strutture: %w", err)
	}

	return res, nil
}
