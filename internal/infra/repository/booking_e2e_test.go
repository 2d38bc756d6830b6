//go:build e2e

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/atomospherebrand-bot/relese/internal/domain/booking"
	"github.com/atomospherebrand-bot/relese/internal/domain/master"
	"github.com/atomospherebrand-bot/relese/internal/domain/schedule"
	"github.com/atomospherebrand-bot/relese/internal/domain/service"
	"github.com/atomospherebrand-bot/relese/internal/infra"
	"github.com/atomospherebrand-bot/relese/internal/infra/db"
	"github.com/atomospherebrand-bot/relese/internal/infra/repository"
	"github.com/atomospherebrand-bot/relese/internal/infra/uow"
	"github.com/atomospherebrand-bot/relese/internal/pkg/config"
	"github.com/atomospherebrand-bot/relese/internal/usecase/shared"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var errSlotTaken = errors.New("slot taken")

const (
	testUser     = "test"
	testPassword = "testpass"
	testDB       = "studio"
)

type BookingStoreSuite struct {
	suite.Suite
	container testcontainers.Container
	pool      *pgxpool.Pool
	uow       shared.UnitOfWork

	masterID  uuid.UUID
	serviceID uuid.UUID
	date      schedule.Date
}

func TestBookingStoreSuite(t *testing.T) {
	suite.Run(t, new(BookingStoreSuite))
}

func (s *BookingStoreSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
		Cmd:   []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off"},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
				testUser, testPassword, host, port.Port(), testDB)
		}).WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	s.Require().NoError(err, "failed to start postgres")
	s.container = container

	host, err := container.Host(ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	s.Require().NoError(err)

	pool, _, err := db.Connect(config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   testDB,
		SSLMode:  "disable",
		TimeZone: "Europe/Moscow",
	})
	s.Require().NoError(err)
	s.pool = pool
	s.Require().NoError(db.Migrate(ctx, pool, slog.Default()))
	s.uow = uow.NewPostgresUoW(pool, slog.Default())
}

func (s *BookingStoreSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.container.Terminate(ctx); err != nil {
			slog.Warn("failed to terminate postgres container", "error", err.Error())
		}
	}
}

func (s *BookingStoreSuite) SetupTest() {
	ctx := context.Background()
	_, err := s.pool.Exec(ctx, `TRUNCATE bookings, portfolio_items, masters, services CASCADE`)
	s.Require().NoError(err)

	m, err := master.New(master.Params{Name: "Иван", Nickname: "ivan_ink"})
	s.Require().NoError(err)
	svc, err := service.New("Сеанс 2ч", 120, 8000, "")
	s.Require().NoError(err)

	s.Require().NoError(repository.NewMasterRepository(s.pool).Create(ctx, m))
	s.Require().NoError(repository.NewServiceRepository(s.pool).Create(ctx, svc))

	s.masterID = m.ID
	s.serviceID = svc.ID
	s.date = schedule.MustParseDate("2030-03-14")
}

func (s *BookingStoreSuite) newBooking(at string, status booking.Status) *booking.Booking {
	b, err := booking.New(booking.NewParams{
		ClientName:  "Анна",
		ClientPhone: "+79990000000",
		MasterID:    s.masterID,
		ServiceID:   s.serviceID,
		Date:        s.date.String(),
		Time:        at,
		Status:      status,
	}, 120, time.Now())
	s.Require().NoError(err)
	return b
}

func (s *BookingStoreSuite) TestExclusionConstraintRejectsOverlap() {
	ctx := context.Background()
	repo := repository.NewBookingRepository(s.pool)

	s.Require().NoError(repo.Create(ctx, s.newBooking("14:00", booking.StatusConfirmed)))

	err := repo.Create(ctx, s.newBooking("15:00", booking.StatusPending))
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindConflict), "got %v", err)

	// touching intervals are allowed
	s.Require().NoError(repo.Create(ctx, s.newBooking("16:00", booking.StatusPending)))
}

func (s *BookingStoreSuite) TestOverlapIsCheckedPerDate() {
	ctx := context.Background()
	repo := repository.NewBookingRepository(s.pool)

	s.Require().NoError(repo.Create(ctx, s.newBooking("23:00", booking.StatusConfirmed)))

	s.date = s.date.AddDays(1)
	s.Require().NoError(repo.Create(ctx, s.newBooking("00:30", booking.StatusPending)))
}

func (s *BookingStoreSuite) TestCancelledBookingsDoNotBlock() {
	ctx := context.Background()
	repo := repository.NewBookingRepository(s.pool)

	cancelled := s.newBooking("14:00", booking.StatusCancelled)
	s.Require().NoError(repo.Create(ctx, cancelled))
	s.Require().NoError(repo.Create(ctx, s.newBooking("14:30", booking.StatusPending)))

	busy, err := repo.BusyIntervals(ctx, cancelled.MasterID(), s.date, nil)
	s.Require().NoError(err)
	s.Require().Len(busy, 1)
	s.Equal("14:30", busy[0].Start.Format(schedule.TimeLayout))

	// reactivating the cancelled one now collides
	err = repo.UpdateStatus(ctx, cancelled.ID(), booking.StatusPending)
	s.True(infra.IsKind(err, infra.KindConflict), "got %v", err)
}

func (s *BookingStoreSuite) TestBusyIntervalsExcludesGivenBooking() {
	ctx := context.Background()
	repo := repository.NewBookingRepository(s.pool)

	b := s.newBooking("11:00", booking.StatusPending)
	s.Require().NoError(repo.Create(ctx, b))

	id := b.ID()
	busy, err := repo.BusyIntervals(ctx, b.MasterID(), s.date, &id)
	s.Require().NoError(err)
	s.Empty(busy)
}

func (s *BookingStoreSuite) TestLockedWritersWithinTransactions() {
	ctx := context.Background()
	const writers = 6

	errCh := make(chan error, writers)
	for range writers {
		b := s.newBooking("18:00", booking.StatusPending)
		go func() {
			errCh <- s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				if err := tx.Bookings().LockSlot(ctx, b.MasterID(), b.Date()); err != nil {
					return err
				}
				busy, err := tx.Bookings().BusyIntervals(ctx, b.MasterID(), b.Date(), nil)
				if err != nil {
					return err
				}
				if !schedule.IsFree(b.Interval(), busy) {
					return errSlotTaken
				}
				return tx.Bookings().Create(ctx, b)
			})
		}()
	}

	var ok, taken int
	for range writers {
		switch err := <-errCh; {
		case err == nil:
			ok++
		case errors.Is(err, errSlotTaken):
			taken++
		default:
			s.Failf("unexpected error", "%v", err)
		}
	}
	s.Equal(1, ok)
	s.Equal(writers-1, taken)
}

func (s *BookingStoreSuite) TestServiceInUseCannotBeDeleted() {
	ctx := context.Background()
	s.Require().NoError(repository.NewBookingRepository(s.pool).Create(ctx, s.newBooking("12:00", booking.StatusPending)))

	_, err := repository.NewServiceRepository(s.pool).Delete(ctx, s.serviceID)
	s.True(infra.IsKind(err, infra.KindForeignKeyViolated), "got %v", err)
}

func (s *BookingStoreSuite) TestDeletingMasterCascadesToBookings() {
	ctx := context.Background()
	repo := repository.NewBookingRepository(s.pool)
	b := s.newBooking("12:00", booking.StatusPending)
	s.Require().NoError(repo.Create(ctx, b))

	removed, err := repository.NewMasterRepository(s.pool).Delete(ctx, b.MasterID())
	s.Require().NoError(err)
	s.True(removed)

	_, err = repo.FindByID(ctx, b.ID())
	s.True(infra.IsKind(err, infra.KindNotFound), "got %v", err)
}
