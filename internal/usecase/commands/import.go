package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/atomospherebrand-bot/relese/internal/domain/booking"
	reqdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/request"
	"github.com/atomospherebrand-bot/relese/internal/infra/excel"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"
)

const defaultClientName = "Гость"

var (
	dottedDate = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
	isoDate    = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})`)
	shortTime  = regexp.MustCompile(`^(\d{1,2}):(\d{2})(:\d{2})?$`)
)

var statusLabels = map[string]booking.Status{
	"pending":      booking.StatusPending,
	"confirmed":    booking.StatusConfirmed,
	"cancelled":    booking.StatusCancelled,
	"canceled":     booking.StatusCancelled,
	"ожидает":      booking.StatusPending,
	"в обработке":  booking.StatusPending,
	"подтверждена": booking.StatusConfirmed,
	"подтверждено": booking.StatusConfirmed,
	"подтвержден":  booking.StatusConfirmed,
	"отменена":     booking.StatusCancelled,
	"отменено":     booking.StatusCancelled,
}

type ImportError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type ImportResult struct {
	Imported int           `json:"imported"`
	Skipped  int           `json:"skipped"`
	Errors   []ImportError `json:"errors"`
}

type ImportCommands interface {
	ImportBookings(ctx context.Context, r io.Reader) (*ImportResult, error)
}

type importCommandsImpl struct {
	bookings BookingCommands
	catalog  queries.CatalogQueries
	logger   *slog.Logger
}

func NewImportCommands(bookings BookingCommands, catalog queries.CatalogQueries, logger *slog.Logger) ImportCommands {
	if logger == nil {
		logger = slog.Default()
	}
	return &importCommandsImpl{bookings: bookings, catalog: catalog, logger: logger}
}

// ImportBookings creates one booking per sheet row through the regular
// create path, so overlapping rows are rejected like any other request.
// A bad row is reported and skipped; it never aborts the import.
func (c *importCommandsImpl) ImportBookings(ctx context.Context, r io.Reader) (*ImportResult, error) {
	rows, err := excel.ReadBookings(r)
	if err != nil {
		return nil, errs.Kind(err, errs.ErrValidation)
	}

	masters, err := c.catalog.ListMasters(ctx, true)
	if err != nil {
		return nil, err
	}
	services, err := c.catalog.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	lookup := newCatalogIndex(masters, services)

	result := &ImportResult{Errors: []ImportError{}}
	for _, row := range rows {
		req, err := lookup.request(row)
		if err == nil {
			_, err = c.bookings.Create(ctx, req, SourceImport)
		}
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, ImportError{Row: row.Line, Message: rowMessage(err)})
			continue
		}
		result.Imported++
	}

	c.logger.Info("bookings imported", "imported", result.Imported, "skipped", result.Skipped)
	return result, nil
}

type catalogIndex struct {
	masters  map[string]*queries.MasterView
	services map[string]*queries.ServiceView
}

func newCatalogIndex(masters []*queries.MasterView, services []*queries.ServiceView) catalogIndex {
	idx := catalogIndex{
		masters:  make(map[string]*queries.MasterView, len(masters)*2),
		services: make(map[string]*queries.ServiceView, len(services)),
	}
	// Nicknames win over names when both match different masters.
	for _, m := range masters {
		if key := fold(m.Name); key != "" {
			idx.masters[key] = m
		}
	}
	for _, m := range masters {
		if key := fold(m.Nickname); key != "" {
			idx.masters[key] = m
		}
	}
	for _, s := range services {
		idx.services[fold(s.Name)] = s
	}
	return idx
}

func (idx catalogIndex) request(row excel.Row) (reqdto.CreateBookingRequest, error) {
	masterName := row.Get(excel.ColMaster)
	serviceName := row.Get(excel.ColService)
	if masterName == "" || serviceName == "" || row.Get(excel.ColDate) == "" || row.Get(excel.ColTime) == "" {
		return reqdto.CreateBookingRequest{}, errs.New("master, service, date and time are required")
	}

	m, ok := idx.masters[fold(masterName)]
	if !ok {
		return reqdto.CreateBookingRequest{}, errs.Newf("unknown master %q", masterName)
	}
	s, ok := idx.services[fold(serviceName)]
	if !ok {
		return reqdto.CreateBookingRequest{}, errs.Newf("unknown service %q", serviceName)
	}

	date, err := normalizeDate(row.Get(excel.ColDate))
	if err != nil {
		return reqdto.CreateBookingRequest{}, err
	}
	at, err := normalizeTime(row.Get(excel.ColTime))
	if err != nil {
		return reqdto.CreateBookingRequest{}, err
	}

	client := row.Get(excel.ColClient)
	if client == "" {
		client = defaultClientName
	}
	status := string(parseStatusLabel(row.Get(excel.ColStatus)))

	req := reqdto.CreateBookingRequest{
		ClientName:  client,
		ClientPhone: row.Get(excel.ColPhone),
		MasterID:    m.ID,
		ServiceID:   s.ID,
		Date:        date,
		Time:        at,
		Status:      &status,
	}
	if tg := row.Get(excel.ColTelegram); tg != "" {
		req.ClientTelegram = &tg
	}
	if notes := row.Get(excel.ColNotes); notes != "" {
		req.Notes = &notes
	}
	return req, nil
}

// parseStatusLabel falls back to pending for unknown labels.
func parseStatusLabel(label string) booking.Status {
	if s, ok := statusLabels[fold(label)]; ok {
		return s
	}
	return booking.StatusPending
}

func normalizeDate(v string) (string, error) {
	var y, mo, d string
	if m := dottedDate.FindStringSubmatch(v); m != nil {
		y, mo, d = m[3], m[2], m[1]
	} else if m := isoDate.FindStringSubmatch(v); m != nil {
		y, mo, d = m[1], m[2], m[3]
	} else {
		return "", errs.Newf("unrecognised date %q", v)
	}
	month, _ := strconv.Atoi(mo)
	day, _ := strconv.Atoi(d)
	return fmt.Sprintf("%s-%02d-%02d", y, month, day), nil
}

func normalizeTime(v string) (string, error) {
	m := shortTime.FindStringSubmatch(v)
	if m == nil {
		return "", errs.Newf("unrecognised time %q", v)
	}
	hour, _ := strconv.Atoi(m[1])
	return fmt.Sprintf("%02d:%s", hour, m[2]), nil
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func rowMessage(err error) string {
	switch {
	case errs.Is(err, errs.ErrSlotOccupied):
		return errs.ErrSlotOccupied.Error()
	case errs.Is(err, errs.ErrServiceNotFound):
		return errs.ErrServiceNotFound.Error()
	case errs.Is(err, errs.ErrMasterNotFound):
		return errs.ErrMasterNotFound.Error()
	}
	return err.Error()
}
