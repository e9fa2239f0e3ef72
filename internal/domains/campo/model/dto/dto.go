package dto

import (
	"arena/internal/domains/campo/model"
	"arena/shared"
	gDto "arena/shared/dto"
	gModel "arena/shared/model"
	"arena/shared/timezone"

	"github.com/google/uuid"
)

type CreateCampoRequest struct {
	Name           string               `json:"name"            validate:"required,max=100"`
	Sport          string               `json:"sport"           validate:"required,max=50"`
	StrutturaID    string               `json:"struttura_id"    validate:"required"`
	PricePerHour   float64              `json:"price_per_hour"  validate:"omitempty,min=0"`
	WeeklySchedule model.WeeklySchedule `json:"weekly_schedule" validate:"omitempty"`
	Active         *bool                `json:"active"          validate:"omitempty"`
}

func (c *CreateCampoRequest) ToModel(user string) model.Campo {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Campo{
		ID:             uuid.NewString(),
		Name:           c.Name,
		Sport:          c.Sport,
		StrutturaID:    c.StrutturaID,
		PricePerHour:   c.PricePerHour,
		WeeklySchedule: c.WeeklySchedule,
		Active:         active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCampoRequest struct {
	Name           string               `db:"name"            json:"name"            validate:"omitempty,max=100"`
	Sport          string               `db:"sport"           json:"sport"           validate:"omitempty,max=50"`
	PricePerHour   *float64             `db:"price_per_hour"  json:"price_per_hour"  validate:"omitempty,min=0"`
	WeeklySchedule model.WeeklySchedule `db:"weekly_schedule" json:"weekly_schedule" validate:"omitempty"`
	Active         *bool                `db:"active"          json:"active"          validate:"omitempty"`
}

type CampoResponse struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Sport          string               `json:"sport"`
	StrutturaID    string               `json:"struttura_id"`
	PricePerHour   float64              `json:"price_per_hour"`
	WeeklySchedule model.WeeklySchedule `json:"weekly_schedule"`
	Active         bool                 `json:"active"`
	gDto.Metadata
}

func (r *CampoResponse) FromModel(model model.Campo) {
	r.ID = model.ID
	r.Name = model.Name
	r.Sport = model.Sport
	r.StrutturaID = model.StrutturaID
	r.PricePerHour = model.PricePerHour
	r.WeeklySchedule = model.WeeklySchedule
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetCampiResponse struct {
	Campi     []CampoResponse `json:"campi"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetCampiResponse) FromModels(models []model.Campo, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Campi = make([]CampoResponse, len(models))
	for i, mod := range models {
		r.Campi[i].FromModel(mod)
	}
}
