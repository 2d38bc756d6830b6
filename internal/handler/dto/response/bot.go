package response

import (
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"

	"github.com/google/uuid"
)

// MasterSummary is the slim master shape the bot shows in pickers.
type MasterSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Nickname string    `json:"nickname"`
}

type MasterSummaryListResponse struct {
	Masters []MasterSummary `json:"masters"`
}

func NewMasterSummaryList(items []*queries.MasterView) MasterSummaryListResponse {
	out := make([]MasterSummary, 0, len(items))
	for _, m := range items {
		out = append(out, MasterSummary{ID: m.ID, Name: m.Name, Nickname: m.Nickname})
	}
	return MasterSummaryListResponse{Masters: out}
}
