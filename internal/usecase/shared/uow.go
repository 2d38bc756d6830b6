package shared

import (
	"context"

	"github.com/atomospherebrand-bot/relese/internal/domain/booking"
	"github.com/atomospherebrand-bot/relese/internal/domain/master"
	"github.com/atomospherebrand-bot/relese/internal/domain/portfolio"
	"github.com/atomospherebrand-bot/relese/internal/domain/schedule"
	"github.com/atomospherebrand-bot/relese/internal/domain/service"
	"github.com/atomospherebrand-bot/relese/internal/domain/studio"
	"github.com/atomospherebrand-bot/relese/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Masters() MasterRepository
	Services() ServiceRepository
	Portfolio() PortfolioRepository
	Studio() StudioRepository
	DB() db.DBTX
}

type BookingRepository interface {
	// LockSlot serializes writers of one master's day until the transaction ends.
	LockSlot(ctx context.Context, masterID uuid.UUID, date schedule.Date) error
	// BusyIntervals lists the occupied ranges of non-cancelled bookings.
	BusyIntervals(ctx context.Context, masterID uuid.UUID, date schedule.Date, exclude *uuid.UUID) ([]schedule.Interval, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Create(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type MasterRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*master.Master, error)
	Create(ctx context.Context, m *master.Master) error
	Update(ctx context.Context, m *master.Master) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type ServiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*service.Service, error)
	Create(ctx context.Context, s *service.Service) error
	Update(ctx context.Context, s *service.Service) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type PortfolioRepository interface {
	Create(ctx context.Context, item *portfolio.Item) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type StudioRepository interface {
	GetSettings(ctx context.Context) (studio.Settings, error)
	SaveSettings(ctx context.Context, s studio.Settings) (studio.Settings, error)
	UpsertMessage(ctx context.Context, m studio.Message) error
	CreateCertificate(ctx context.Context, c *studio.Certificate) error
	DeleteCertificate(ctx context.Context, id uuid.UUID) (bool, error)
}
