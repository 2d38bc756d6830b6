package response

import "github.com/atomospherebrand-bot/relese/internal/usecase/queries"

type MessageListResponse struct {
	Messages []*queries.MessageView `json:"messages"`
}

type SettingsResponse struct {
	Settings *queries.SettingsView `json:"settings"`
}

// SaveSettingsResponse also reports the bot process command the save queued.
type SaveSettingsResponse struct {
	Settings          *queries.SettingsView `json:"settings"`
	BotRestarted      bool                  `json:"botRestarted"`
	BotAction         string                `json:"botAction,omitempty"`
	BotRestartMessage string                `json:"botRestartMessage,omitempty"`
}

type PortfolioItemResponse struct {
	Item *queries.PortfolioView `json:"item"`
}

type CertificateResponse struct {
	Certificate *queries.CertificateView `json:"certificate"`
}

type CertificateListResponse struct {
	Certificates []*queries.CertificateView `json:"certificates"`
}

type UploadResponse struct {
	URL       string  `json:"url"`
	MediaType string  `json:"mediaType"`
	Thumbnail *string `json:"thumbnail,omitempty"`
}

func NewMessageList(items []*queries.MessageView) MessageListResponse {
	if items == nil {
		items = []*queries.MessageView{}
	}
	return MessageListResponse{Messages: items}
}

func NewCertificateList(items []*queries.CertificateView) CertificateListResponse {
	if items == nil {
		items = []*queries.CertificateView{}
	}
	return CertificateListResponse{Certificates: items}
}
