package dto

import (
	"mime/multipart"

	"arena/internal/domains/struttura/model"
	"arena/shared"
	gDto "arena/shared/dto"
	gModel "arena/shared/model"
	"arena/shared/timezone"

	"github.com/google/uuid"
)

type CreateStrutturaRequest struct {
	Name      string                `json:"name"    validate:"required,max=100"`
	Address   string                `json:"address" validate:"omitempty,max=200"`
	City      string                `json:"city"    validate:"omitempty,max=100"`
	Image     *multipart.FileHeader `json:"image"   validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile multipart.File        `json:"-"`
	Active    *bool                 `json:"active"  validate:"omitempty"`
}

func (c *CreateStrutturaRequest) ToModel(user string, imageURL string) model.Struttura {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Struttura{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Address: c.Address,
		City:    c.City,
		OwnerID: user,
		Image:   imageURL,
		Active:  active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateStrutturaRequest struct {
	Name      string                `db:"name"    json:"name"    validate:"omitempty,max=100"`
	Address   string                `db:"address" json:"address" validate:"omitempty,max=200"`
	City      string                `db:"city"    json:"city"    validate:"omitempty,max=100"`
	Image     *multipart.FileHeader `json:"image" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile multipart.File        `json:"-"`
	Active    *bool                 `db:"active"  json:"active"  validate:"omitempty"`
}

type StrutturaResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	OwnerID string `json:"owner_id"`
	Image   string `json:"image"`
	Active  bool   `json:"active"`
	gDto.Metadata
}

func (r *StrutturaResponse) FromModel(model model.Struttura) {
	r.ID = model.ID
	r.Name = model.Name
	r.Address = model.Address
	r.City = model.City
	r.OwnerID = model.OwnerID
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetStruttureResponse struct {
	Strutture []StrutturaResponse `json:"strutture"`
	TotalPage int                 `json:"total_page"`
	TotalData int                 `json:"total_data"`
}

func (r *GetStruttureResponse) FromModels(models []model.Struttura, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Strutture = make([]StrutturaResponse, len(models))
	for i, mod := range models {
		r.Strutture[i].FromModel(mod)
	}
}
