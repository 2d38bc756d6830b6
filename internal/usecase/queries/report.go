package queries

import (
	"context"
	"strings"

	"github.com/atomospherebrand-bot/relese/internal/domain/schedule"
	"github.com/atomospherebrand-bot/relese/internal/pkg/clock"
)

const recentBookingsLimit = 5

type ReportReadStore interface {
	DashboardStats(ctx context.Context, today, weekStart schedule.Date) (DashboardStats, error)
	RecentBookings(ctx context.Context, limit int) ([]*BookingView, error)
	Stats(ctx context.Context, today, horizon schedule.Date) (*Stats, error)
	Clients(ctx context.Context, query string) ([]*ClientSummary, error)
}

type ReportQueries interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	Stats(ctx context.Context) (*Stats, error)
	Clients(ctx context.Context, query string) ([]*ClientSummary, error)
	// ExportRows lists bookings for the spreadsheet, oldest first.
	ExportRows(ctx context.Context, from, to *schedule.Date) ([]*BookingView, error)
}

type reportQueriesImpl struct {
	store    ReportReadStore
	bookings BookingQueries
	clock    clock.Clock
}

func NewReportQueries(store ReportReadStore, bookings BookingQueries, clk clock.Clock) ReportQueries {
	return &reportQueriesImpl{store: store, bookings: bookings, clock: clk}
}

func (q *reportQueriesImpl) Dashboard(ctx context.Context) (*Dashboard, error) {
	today := schedule.DateOf(q.clock.Now())
	stats, err := q.store.DashboardStats(ctx, today, today.AddDays(-6))
	if err != nil {
		return nil, err
	}
	recent, err := q.store.RecentBookings(ctx, recentBookingsLimit)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []*BookingView{}
	}
	return &Dashboard{Stats: stats, RecentBookings: recent}, nil
}

func (q *reportQueriesImpl) Stats(ctx context.Context) (*Stats, error) {
	today := schedule.DateOf(q.clock.Now())
	return q.store.Stats(ctx, today, today.AddDays(7))
}

func (q *reportQueriesImpl) Clients(ctx context.Context, query string) ([]*ClientSummary, error) {
	clients, err := q.store.Clients(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, err
	}
	if clients == nil {
		clients = []*ClientSummary{}
	}
	return clients, nil
}

func (q *reportQueriesImpl) ExportRows(ctx context.Context, from, to *schedule.Date) ([]*BookingView, error) {
	rows, err := q.bookings.List(ctx, BookingFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}
	// listing is newest first
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}
