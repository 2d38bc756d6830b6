package queries

import (
	"github.com/atomospherebrand-bot/relese/internal/domain/master"
	"github.com/atomospherebrand-bot/relese/internal/domain/portfolio"
	"github.com/atomospherebrand-bot/relese/internal/domain/service"
	"github.com/atomospherebrand-bot/relese/internal/domain/studio"
)

func ToMasterView(m *master.Master) MasterView {
	return MasterView{
		ID:             m.ID,
		Name:           m.Name,
		Nickname:       m.Nickname,
		Telegram:       m.Telegram,
		Specialization: m.Specialization,
		Avatar:         m.Avatar,
		TeletypeURL:    m.TeletypeURL,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
	}
}

func ToServiceView(s *service.Service) ServiceView {
	return ServiceView{
		ID:          s.ID,
		Name:        s.Name,
		Duration:    s.Duration,
		Price:       s.Price,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
}

func ToPortfolioView(item *portfolio.Item, masterName *string) PortfolioView {
	return PortfolioView{
		ID:         item.ID,
		URL:        item.URL,
		Title:      item.Title,
		MasterID:   item.MasterID,
		MasterName: masterName,
		Style:      item.Style,
		MediaType:  string(item.MediaType),
		Thumbnail:  item.Thumbnail,
		CreatedAt:  item.CreatedAt,
	}
}

func ToSettingsView(s studio.Settings) *SettingsView {
	return &SettingsView{
		BotToken:       s.BotToken,
		StudioName:     s.StudioName,
		Address:        s.Address,
		YandexMapURL:   s.YandexMapURL,
		Latitude:       s.Latitude,
		Longitude:      s.Longitude,
		PaymentMethods: s.PaymentMethods,
		WorkingHours:   s.WorkingHours,
		UpdatedAt:      s.UpdatedAt,
	}
}

func ToCertificateView(c *studio.Certificate) CertificateView {
	return CertificateView{
		ID:         c.ID,
		URL:        c.URL,
		Type:       string(c.Type),
		Caption:    c.Caption,
		UploadedAt: c.UploadedAt,
	}
}

func ToMessageView(m studio.Message) MessageView {
	return MessageView{
		Key:      m.Key,
		Label:    m.Label,
		Value:    m.Value,
		Type:     string(m.Type),
		ImageURL: m.ImageURL,
	}
}
