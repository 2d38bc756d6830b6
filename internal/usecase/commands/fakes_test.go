//go:build unit

package commands_test

import (
	"context"
	"errors"
	"maps"
	"sync"

	"github.com/atomospherebrand-bot/relese/internal/domain/booking"
	"github.com/atomospherebrand-bot/relese/internal/domain/master"
	"github.com/atomospherebrand-bot/relese/internal/domain/portfolio"
	"github.com/atomospherebrand-bot/relese/internal/domain/schedule"
	"github.com/atomospherebrand-bot/relese/internal/domain/service"
	"github.com/atomospherebrand-bot/relese/internal/domain/studio"
	"github.com/atomospherebrand-bot/relese/internal/infra"
	"github.com/atomospherebrand-bot/relese/internal/infra/db"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"
	"github.com/atomospherebrand-bot/relese/internal/usecase/shared"

	"github.com/google/uuid"
)

var errNoRow = errors.New("no rows in result set")

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, errNoRow, infra.KindNotFound)
}

// memStore is an in-memory UnitOfWork. Transactions run one at a time and
// a failed transaction leaves the state untouched.
type memStore struct {
	mu           sync.Mutex
	bookings     map[uuid.UUID]*booking.Booking
	masters      map[uuid.UUID]*master.Master
	services     map[uuid.UUID]*service.Service
	portfolio    map[uuid.UUID]*portfolio.Item
	certificates map[uuid.UUID]*studio.Certificate
	messages     map[string]studio.Message
	settings     studio.Settings
	// serviceInUse makes service deletes fail like a foreign key violation.
	serviceInUse bool
}

func newMemStore() *memStore {
	return &memStore{
		bookings:     map[uuid.UUID]*booking.Booking{},
		masters:      map[uuid.UUID]*master.Master{},
		services:     map[uuid.UUID]*service.Service{},
		portfolio:    map[uuid.UUID]*portfolio.Item{},
		certificates: map[uuid.UUID]*studio.Certificate{},
		messages:     map[string]studio.Message{},
		settings:     studio.DefaultSettings(),
	}
}

func (s *memStore) addMaster(name string) *master.Master {
	m, err := master.New(master.Params{Name: name, Nickname: name})
	if err != nil {
		panic(err)
	}
	s.masters[m.ID] = m
	return m
}

func (s *memStore) addService(name string, duration int) *service.Service {
	svc, err := service.New(name, duration, 1000, "")
	if err != nil {
		panic(err)
	}
	s.services[svc.ID] = svc
	return svc
}

func (s *memStore) bookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.clone()
	if err := fn(ctx, &memTx{s: s}); err != nil {
		s.restore(snapshot)
		return err
	}
	return nil
}

func (s *memStore) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *memStore) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *memStore) clone() *memStore {
	return &memStore{
		bookings:     maps.Clone(s.bookings),
		masters:      maps.Clone(s.masters),
		services:     maps.Clone(s.services),
		portfolio:    maps.Clone(s.portfolio),
		certificates: maps.Clone(s.certificates),
		messages:     maps.Clone(s.messages),
		settings:     s.settings,
	}
}

func (s *memStore) restore(o *memStore) {
	s.bookings, s.masters, s.services = o.bookings, o.masters, o.services
	s.portfolio, s.certificates, s.messages = o.portfolio, o.certificates, o.messages
	s.settings = o.settings
}

type memTx struct{ s *memStore }

func (t *memTx) Bookings() shared.BookingRepository    { return memBookings{t.s} }
func (t *memTx) Masters() shared.MasterRepository      { return memMasters{t.s} }
func (t *memTx) Services() shared.ServiceRepository    { return memServices{t.s} }
func (t *memTx) Portfolio() shared.PortfolioRepository { return memPortfolio{t.s} }
func (t *memTx) Studio() shared.StudioRepository       { return memStudio{t.s} }
func (t *memTx) DB() db.DBTX                           { return nil }

type memBookings struct{ s *memStore }

func (r memBookings) LockSlot(context.Context, uuid.UUID, schedule.Date) error { return nil }

func (r memBookings) BusyIntervals(_ context.Context, masterID uuid.UUID, date schedule.Date, exclude *uuid.UUID) ([]schedule.Interval, error) {
	var out []schedule.Interval
	for id, b := range r.s.bookings {
		if exclude != nil && id == *exclude {
			continue
		}
		if b.MasterID() != masterID || !b.Date().Equal(date) || !b.Blocks() {
			continue
		}
		out = append(out, b.Interval())
	}
	return out, nil
}

func (r memBookings) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	cp := *b
	return &cp, nil
}

func (r memBookings) Create(_ context.Context, b *booking.Booking) error {
	cp := *b
	r.s.bookings[b.ID()] = &cp
	return nil
}

func (r memBookings) Update(_ context.Context, b *booking.Booking) error {
	if _, ok := r.s.bookings[b.ID()]; !ok {
		return notFound("booking not found")
	}
	cp := *b
	r.s.bookings[b.ID()] = &cp
	return nil
}

func (r memBookings) UpdateStatus(_ context.Context, id uuid.UUID, status booking.Status) error {
	b, ok := r.s.bookings[id]
	if !ok {
		return notFound("booking not found")
	}
	r.s.bookings[id] = booking.Reconstruct(b.ID(), b.ClientName(), b.ClientPhone(), b.ClientTelegram(),
		b.MasterID(), b.ServiceID(), b.Date(), b.Start(), b.DurationMinutes(), status, b.Notes(), b.CreatedAt())
	return nil
}

func (r memBookings) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.s.bookings[id]; !ok {
		return false, nil
	}
	delete(r.s.bookings, id)
	return true, nil
}

type memMasters struct{ s *memStore }

func (r memMasters) FindByID(_ context.Context, id uuid.UUID) (*master.Master, error) {
	m, ok := r.s.masters[id]
	if !ok {
		return nil, notFound("master not found")
	}
	cp := *m
	return &cp, nil
}

func (r memMasters) Create(_ context.Context, m *master.Master) error {
	cp := *m
	r.s.masters[m.ID] = &cp
	return nil
}

func (r memMasters) Update(_ context.Context, m *master.Master) error {
	cp := *m
	r.s.masters[m.ID] = &cp
	return nil
}

func (r memMasters) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.s.masters[id]; !ok {
		return false, nil
	}
	delete(r.s.masters, id)
	return true, nil
}

type memServices struct{ s *memStore }

func (r memServices) FindByID(_ context.Context, id uuid.UUID) (*service.Service, error) {
	svc, ok := r.s.services[id]
	if !ok {
		return nil, notFound("service not found")
	}
	cp := *svc
	return &cp, nil
}

func (r memServices) Create(_ context.Context, svc *service.Service) error {
	cp := *svc
	r.s.services[svc.ID] = &cp
	return nil
}

func (r memServices) Update(_ context.Context, svc *service.Service) error {
	cp := *svc
	r.s.services[svc.ID] = &cp
	return nil
}

func (r memServices) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if r.s.serviceInUse {
		return false, infra.WrapRepoErr("service is referenced", errors.New("fk"), infra.KindForeignKeyViolated)
	}
	if _, ok := r.s.services[id]; !ok {
		return false, nil
	}
	delete(r.s.services, id)
	return true, nil
}

type memPortfolio struct{ s *memStore }

func (r memPortfolio) Create(_ context.Context, item *portfolio.Item) error {
	cp := *item
	r.s.portfolio[item.ID] = &cp
	return nil
}

func (r memPortfolio) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.s.portfolio[id]; !ok {
		return false, nil
	}
	delete(r.s.portfolio, id)
	return true, nil
}

type memStudio struct{ s *memStore }

func (r memStudio) GetSettings(context.Context) (studio.Settings, error) {
	return r.s.settings, nil
}

func (r memStudio) SaveSettings(_ context.Context, settings studio.Settings) (studio.Settings, error) {
	r.s.settings = settings
	return settings, nil
}

func (r memStudio) UpsertMessage(_ context.Context, m studio.Message) error {
	r.s.messages[m.Key] = m
	return nil
}

func (r memStudio) CreateCertificate(_ context.Context, c *studio.Certificate) error {
	cp := *c
	r.s.certificates[c.ID] = &cp
	return nil
}

func (r memStudio) DeleteCertificate(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := r.s.certificates[id]; !ok {
		return false, nil
	}
	delete(r.s.certificates, id)
	return true, nil
}

// memViews serves the read side of the commands from the same store.
type memViews struct{ s *memStore }

func (v memViews) GetByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	b, ok := v.s.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	view := &queries.BookingView{
		ID:             b.ID(),
		ClientName:     b.ClientName(),
		ClientPhone:    b.ClientPhone(),
		ClientTelegram: b.ClientTelegram(),
		MasterID:       b.MasterID(),
		ServiceID:      b.ServiceID(),
		Date:           b.Date().String(),
		Time:           b.Start().String(),
		Duration:       b.DurationMinutes(),
		Status:         string(b.Status()),
		Notes:          b.Notes(),
		CreatedAt:      b.CreatedAt(),
	}
	if m, ok := v.s.masters[b.MasterID()]; ok {
		view.MasterName, view.MasterNickname = m.Name, m.Nickname
	}
	if svc, ok := v.s.services[b.ServiceID()]; ok {
		view.ServiceName, view.ServicePrice = svc.Name, svc.Price
	}
	return view, nil
}

func (v memViews) List(context.Context, queries.BookingFilter) ([]*queries.BookingView, error) {
	return nil, errors.New("not used")
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls []*queries.BookingView
}

func (n *recordingNotifier) NotifyStatusChange(_ context.Context, b *queries.BookingView) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, b)
}

func (n *recordingNotifier) statuses() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.calls))
	for _, c := range n.calls {
		out = append(out, c.Status)
	}
	return out
}
