package request

import (
	"github.com/atomospherebrand-bot/relese/internal/domain/master"
	"github.com/atomospherebrand-bot/relese/internal/domain/service"
)

type CreateMasterRequest struct {
	Name           string  `json:"name" binding:"required,max=255"`
	Nickname       string  `json:"nickname" binding:"required,max=255"`
	Telegram       *string `json:"telegram,omitempty"`
	Specialization string  `json:"specialization"`
	Avatar         *string `json:"avatar,omitempty"`
	TeletypeURL    *string `json:"teletypeUrl,omitempty"`
	IsActive       *bool   `json:"isActive,omitempty"`
}

func (r CreateMasterRequest) ToDomain() master.Params {
	return master.Params{
		Name:           r.Name,
		Nickname:       r.Nickname,
		Telegram:       normalizeTelegram(r.Telegram),
		Specialization: r.Specialization,
		Avatar:         r.Avatar,
		TeletypeURL:    r.TeletypeURL,
		IsActive:       r.IsActive,
	}
}

type UpdateMasterRequest struct {
	Name           *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Nickname       *string `json:"nickname,omitempty" binding:"omitempty,max=255"`
	Telegram       *string `json:"telegram,omitempty"`
	Specialization *string `json:"specialization,omitempty"`
	Avatar         *string `json:"avatar,omitempty"`
	TeletypeURL    *string `json:"teletypeUrl,omitempty"`
	IsActive       *bool   `json:"isActive,omitempty"`
}

func (r UpdateMasterRequest) ToDomain() master.Changes {
	return master.Changes{
		Name:           r.Name,
		Nickname:       r.Nickname,
		Telegram:       normalizeTelegram(r.Telegram),
		Specialization: r.Specialization,
		Avatar:         r.Avatar,
		TeletypeURL:    r.TeletypeURL,
		IsActive:       r.IsActive,
	}
}

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Duration    int    `json:"duration" binding:"required,min=1"`
	Price       int    `json:"price" binding:"min=0"`
	Description string `json:"description"`
}

func (r CreateServiceRequest) ToDomain() (*service.Service, error) {
	return service.New(r.Name, r.Duration, r.Price, r.Description)
}

type UpdateServiceRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Duration    *int    `json:"duration,omitempty"`
	Price       *int    `json:"price,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r UpdateServiceRequest) ToDomain() service.Changes {
	return service.Changes{
		Name:        r.Name,
		Duration:    r.Duration,
		Price:       r.Price,
		Description: r.Description,
	}
}
