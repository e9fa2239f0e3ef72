package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"arena/infras/otel"
	"arena/infras/postgres"
	"arena/internal/domains/booking/model"
	campoModel "arena/internal/domains/campo/model"
	userModel "arena/internal/domains/user/model"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	gRepo "arena/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetByCampi(ctx context.Context, campoIDs []string) ([]model.BookingWithContext, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByCampi loads every booking on the given fields, joined with the owning
// venue and the booker's name so callers can build a stats snapshot in one
// round trip.
func (repo *repositoryImpl) GetByCampi(ctx context.Context, campoIDs []string) (res []model.BookingWithContext, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetByCampi")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(campoIDs) == 0 {
		return []model.BookingWithContext{}, nil
	}

	query, args, err := sqlx.In(
		"SELECT b.*, c.struttura_id AS struttura_id, u.name AS user_name, u.surname AS user_surname"+
			" FROM "+model.TableName+" b"+
			" JOIN "+campoModel.TableName+" c ON c.id = b.campo_id"+
			" LEFT JOIN "+userModel.TableName+" u ON u.id = b.user_id"+
			" WHERE b.campo_id IN (?)",
		campoIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build bookings query: %w", err)
	}

	query = repo.db.Read.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	res = []model.BookingWithContext{}
	if err = repo.db.Read.SelectContext(ctx, &res, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get bookings by campi: %w", err)
	}

	return res, nil
}
