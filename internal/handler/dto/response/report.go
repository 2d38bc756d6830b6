package response

import "github.com/atomospherebrand-bot/relese/internal/usecase/queries"

type ClientListResponse struct {
	Clients []*queries.ClientSummary `json:"clients"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

func NewClientList(items []*queries.ClientSummary) ClientListResponse {
	if items == nil {
		items = []*queries.ClientSummary{}
	}
	return ClientListResponse{Clients: items}
}
