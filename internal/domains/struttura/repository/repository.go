package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"arena/infras/otel"
	"arena/infras/postgres"
	"arena/internal/domains/struttura/model"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	gRepo "arena/shared/repository"
)

type Struttura interface {
	Insert(ctx context.Context, model model.Struttura) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Struttura, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Struttura, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetByOwner(ctx context.Context, ownerID string) ([]model.Struttura, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Struttura]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Struttura {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Struttura](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByOwner loads every active venue belonging to an owner.
func (repo *repositoryImpl) GetByOwner(ctx context.Context, ownerID string) (res []model.Struttura, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".struttura.GetByOwner")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := "SELECT * FROM " + model.TableName + " WHERE owner_id = $1 AND active = true"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	res = []model.Struttura{}
	if err = repo.db.Read.SelectContext(ctx, &res, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to get strutture by owner: %w", err)
	}

	return res, nil
}
