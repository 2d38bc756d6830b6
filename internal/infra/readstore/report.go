package readstore

import (
	"context"

	"github.com/atomospherebrand-bot/relese/internal/domain/booking"
	"github.com/atomospherebrand-bot/relese/internal/domain/schedule"
	"github.com/atomospherebrand-bot/relese/internal/infra"
	"github.com/atomospherebrand-bot/relese/internal/infra/db"
	"github.com/atomospherebrand-bot/relese/internal/pkg/pgconv"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	dashboardStatsSQL = `
SELECT
    (SELECT count(*) FROM bookings WHERE date = $1::date AND status <> 'cancelled'),
    (SELECT count(*) FROM masters WHERE is_active),
    (SELECT COALESCE(sum(s.price), 0)
       FROM bookings b JOIN services s ON s.id = b.service_id
      WHERE b.date >= $2::date AND b.status = 'confirmed'),
    (SELECT COALESCE(avg(duration), 0)::float8 FROM bookings WHERE status <> 'cancelled')`

	recentBookingsSQL = bookingViewColumns + `
ORDER BY b.created_at DESC
LIMIT $1`

	statsSQL = `
SELECT
    (SELECT count(*) FROM masters),
    (SELECT count(*) FROM services),
    (SELECT count(*) FROM bookings),
    (SELECT count(*) FROM bookings WHERE date = $1::date),
    (SELECT count(*) FROM bookings WHERE date BETWEEN $1::date AND $2::date AND status <> 'cancelled'),
    (SELECT count(DISTINCT client_phone) FROM bookings),
    (SELECT count(*) FROM portfolio_items),
    (SELECT count(*) FROM certificates)`

	statusCountsSQL = `SELECT status, count(*) FROM bookings GROUP BY status`

	// The latest booking of a phone provides its name and telegram.
	clientsSQL = `
WITH grouped AS (
    SELECT client_phone, count(*) AS bookings, max(date) AS last_visit
    FROM bookings
    GROUP BY client_phone
), latest AS (
    SELECT DISTINCT ON (client_phone) client_phone, client_name, client_telegram
    FROM bookings
    ORDER BY client_phone, date DESC, start_time DESC, created_at DESC
)
SELECT l.client_name, l.client_phone, l.client_telegram, g.bookings, g.last_visit
FROM grouped g
JOIN latest l USING (client_phone)
WHERE $1::text = ''
   OR l.client_name ILIKE '%' || $1::text || '%'
   OR l.client_phone ILIKE '%' || $1::text || '%'
   OR l.client_telegram ILIKE '%' || $1::text || '%'
ORDER BY g.last_visit DESC, l.client_name`
)

type ReportReadStore struct {
	db db.DBTX
}

func NewReportReadStore(db db.DBTX) *ReportReadStore {
	return &ReportReadStore{db: db}
}

func (r *ReportReadStore) DashboardStats(ctx context.Context, today, weekStart schedule.Date) (queries.DashboardStats, error) {
	var (
		bookingsToday, activeMasters, revenue int64
		avgDuration                           float64
	)
	err := r.db.QueryRow(ctx, dashboardStatsSQL, pgconv.DateToPgtype(today), pgconv.DateToPgtype(weekStart)).
		Scan(&bookingsToday, &activeMasters, &revenue, &avgDuration)
	if err != nil {
		return queries.DashboardStats{}, infra.WrapRepoErr("failed to compute dashboard stats", err)
	}
	return queries.DashboardStats{
		BookingsToday:   int(bookingsToday),
		ActiveMasters:   int(activeMasters),
		RevenueWeek:     int(revenue),
		AverageDuration: avgDuration,
	}, nil
}

func (r *ReportReadStore) RecentBookings(ctx context.Context, limit int) ([]*queries.BookingView, error) {
	return NewBookingReadStore(r.db).queryViews(ctx, recentBookingsSQL, limit)
}

func (r *ReportReadStore) Stats(ctx context.Context, today, horizon schedule.Date) (*queries.Stats, error) {
	var c [8]int64
	err := r.db.QueryRow(ctx, statsSQL, pgconv.DateToPgtype(today), pgconv.DateToPgtype(horizon)).
		Scan(&c[0], &c[1], &c[2], &c[3], &c[4], &c[5], &c[6], &c[7])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute stats", err)
	}

	perStatus := make(map[string]int, 3)
	for _, s := range booking.AllStatuses() {
		perStatus[s.String()] = 0
	}
	rows, err := r.db.Query(ctx, statusCountsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings per status", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			status string
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, infra.WrapRepoErr("failed to scan status count", err)
		}
		perStatus[status] = int(n)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate status counts", err)
	}

	return &queries.Stats{
		TotalMasters:      int(c[0]),
		TotalServices:     int(c[1]),
		TotalBookings:     int(c[2]),
		TodayBookings:     int(c[3]),
		Upcoming7d:        int(c[4]),
		TotalClients:      int(c[5]),
		PortfolioCount:    int(c[6]),
		CertsCount:        int(c[7]),
		BookingsPerStatus: perStatus,
	}, nil
}

func (r *ReportReadStore) Clients(ctx context.Context, query string) ([]*queries.ClientSummary, error) {
	rows, err := r.db.Query(ctx, clientsSQL, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients", err)
	}
	defer rows.Close()

	result := make([]*queries.ClientSummary, 0)
	for rows.Next() {
		var (
			c     queries.ClientSummary
			count int64
			last  pgtype.Date
		)
		if err := rows.Scan(&c.Name, &c.Phone, &c.Telegram, &count, &last); err != nil {
			return nil, infra.WrapRepoErr("failed to scan client", err)
		}
		d, err := pgconv.DateFromPgtype(last)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid visit date", err, infra.KindDBFailure)
		}
		c.Bookings = int(count)
		c.LastVisit = d.String()
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate clients", err)
	}
	return result, nil
}
