package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookingView is a booking with master and service names joined at read time.
type BookingView struct {
	ID             uuid.UUID `json:"id"`
	ClientName     string    `json:"clientName"`
	ClientPhone    string    `json:"clientPhone"`
	ClientTelegram *string   `json:"clientTelegram,omitempty"`
	MasterID       uuid.UUID `json:"masterId"`
	MasterName     string    `json:"masterName"`
	MasterNickname string    `json:"masterNickname"`
	MasterTelegram *string   `json:"masterTelegram,omitempty"`
	ServiceID      uuid.UUID `json:"serviceId"`
	ServiceName    string    `json:"service"`
	ServicePrice   int       `json:"servicePrice"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Duration       int       `json:"duration"`
	Status         string    `json:"status"`
	Notes          *string   `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// MasterLabel is the public name: the nickname when set, the name otherwise.
func (v *BookingView) MasterLabel() string {
	if v.MasterNickname != "" {
		return v.MasterNickname
	}
	return v.MasterName
}

type MasterView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Nickname       string    `json:"nickname"`
	Telegram       *string   `json:"telegram,omitempty"`
	Specialization string    `json:"specialization"`
	Avatar         *string   `json:"avatar,omitempty"`
	TeletypeURL    *string   `json:"teletypeUrl,omitempty"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Duration    int       `json:"duration"`
	Price       int       `json:"price"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type PortfolioView struct {
	ID         uuid.UUID  `json:"id"`
	URL        string     `json:"url"`
	Title      *string    `json:"title,omitempty"`
	MasterID   *uuid.UUID `json:"masterId,omitempty"`
	MasterName *string    `json:"masterName,omitempty"`
	Style      *string    `json:"style,omitempty"`
	MediaType  string     `json:"mediaType"`
	Thumbnail  *string    `json:"thumbnail,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type PortfolioPage struct {
	Items    []*PortfolioView `json:"items"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

type PortfolioFilters struct {
	Masters []*MasterView `json:"masters"`
	Styles  []string      `json:"styles"`
}

type MessageView struct {
	Key      string  `json:"key"`
	Label    string  `json:"label"`
	Value    string  `json:"value"`
	Type     string  `json:"type"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

type SettingsView struct {
	BotToken       string    `json:"botToken,omitempty"`
	StudioName     string    `json:"studioName"`
	Address        string    `json:"address"`
	YandexMapURL   string    `json:"yandexMapUrl"`
	Latitude       string    `json:"latitude"`
	Longitude      string    `json:"longitude"`
	PaymentMethods string    `json:"paymentMethods"`
	WorkingHours   string    `json:"workingHours"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CertificateView struct {
	ID         uuid.UUID `json:"id"`
	URL        string    `json:"url"`
	Type       string    `json:"type"`
	Caption    *string   `json:"caption,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// ClientSummary is derived from bookings grouped by phone.
type ClientSummary struct {
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Telegram  *string `json:"telegram,omitempty"`
	Bookings  int     `json:"bookings"`
	LastVisit string  `json:"lastVisit"`
}

type DashboardStats struct {
	BookingsToday   int     `json:"bookingsToday"`
	ActiveMasters   int     `json:"activeMasters"`
	RevenueWeek     int     `json:"revenueWeek"`
	AverageDuration float64 `json:"averageDuration"`
}

type Dashboard struct {
	Stats          DashboardStats `json:"stats"`
	RecentBookings []*BookingView `json:"recentBookings"`
}

type Stats struct {
	TotalMasters      int            `json:"totalMasters"`
	TotalServices     int            `json:"totalServices"`
	TotalBookings     int            `json:"totalBookings"`
	TodayBookings     int            `json:"todayBookings"`
	Upcoming7d        int            `json:"upcoming7d"`
	TotalClients      int            `json:"totalClients"`
	PortfolioCount    int            `json:"portfolioCount"`
	CertsCount        int            `json:"certsCount"`
	BookingsPerStatus map[string]int `json:"bookingsPerStatus"`
}

type CalendarDay struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
}
