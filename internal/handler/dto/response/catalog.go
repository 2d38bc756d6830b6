package response

import "github.com/atomospherebrand-bot/relese/internal/usecase/queries"

type MasterResponse struct {
	Master *queries.MasterView `json:"master"`
}

type MasterListResponse struct {
	Masters []*queries.MasterView `json:"masters"`
}

type ServiceResponse struct {
	Service *queries.ServiceView `json:"service"`
}

type ServiceListResponse struct {
	Services []*queries.ServiceView `json:"services"`
}

func NewMasterList(items []*queries.MasterView) MasterListResponse {
	if items == nil {
		items = []*queries.MasterView{}
	}
	return MasterListResponse{Masters: items}
}

func NewServiceList(items []*queries.ServiceView) ServiceListResponse {
	if items == nil {
		items = []*queries.ServiceView{}
	}
	return ServiceListResponse{Services: items}
}
