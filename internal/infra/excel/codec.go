package excel

import (
	"io"
	"strconv"
	"strings"

	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"

	"github.com/xuri/excelize/v2"
)

const (
	SheetBookings = "Записи"
	ContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	ErrNoSheet   = errs.New("workbook has no sheets")
	ErrNoHeader  = errs.New("header row not found")
	ErrBadFormat = errs.New("file is not a valid xlsx workbook")
)

// Column identifies a logical import/export column regardless of the
// header language.
type Column string

const (
	ColDate     Column = "date"
	ColTime     Column = "time"
	ColMaster   Column = "master"
	ColService  Column = "service"
	ColClient   Column = "client"
	ColPhone    Column = "phone"
	ColTelegram Column = "telegram"
	ColStatus   Column = "status"
	ColNotes    Column = "notes"
)

var exportHeader = []string{"Дата", "Время", "Мастер", "Услуга", "Клиент", "Телефон", "Telegram", "Статус"}

var headerAliases = map[string]Column{
	"дата":     ColDate,
	"date":     ColDate,
	"время":    ColTime,
	"time":     ColTime,
	"мастер":   ColMaster,
	"master":   ColMaster,
	"услуга":   ColService,
	"service":  ColService,
	"клиент":   ColClient,
	"client":   ColClient,
	"телефон":  ColPhone,
	"phone":    ColPhone,
	"telegram": ColTelegram,
	"телеграм": ColTelegram,
	"tg":       ColTelegram,
	"статус":   ColStatus,
	"status":   ColStatus,
	"заметки":  ColNotes,
	"notes":    ColNotes,
}

// WriteBookings renders bookings as one sheet with a header row.
func WriteBookings(w io.Writer, bookings []*queries.BookingView) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetBookings); err != nil {
		return errs.Wrap(err, "failed to name sheet")
	}

	if err := f.SetSheetRow(SheetBookings, "A1", &exportHeader); err != nil {
		return errs.Wrap(err, "failed to write header")
	}
	if style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	}); err == nil {
		_ = f.SetCellStyle(SheetBookings, "A1", "H1", style)
	}

	for i, b := range bookings {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errs.Wrap(err, "failed to address row")
		}
		telegram := ""
		if b.ClientTelegram != nil {
			telegram = *b.ClientTelegram
		}
		row := []any{
			displayDate(b.Date),
			b.Time,
			b.MasterLabel(),
			b.ServiceName,
			b.ClientName,
			b.ClientPhone,
			telegram,
			b.Status,
		}
		if err := f.SetSheetRow(SheetBookings, cell, &row); err != nil {
			return errs.Wrapf(err, "failed to write row %d", i+2)
		}
	}

	_ = f.SetColWidth(SheetBookings, "A", "H", 18)

	if _, err := f.WriteTo(w); err != nil {
		return errs.Wrap(err, "failed to write workbook")
	}
	return nil
}

// Row is one data row of an imported sheet. Line is the 1-based sheet row.
type Row struct {
	Line   int
	Values map[Column]string
}

func (r Row) Get(c Column) string {
	return strings.TrimSpace(r.Values[c])
}

// ReadBookings reads the first sheet. The first row is the header; unknown
// headers are ignored and blank rows are skipped.
func ReadBookings(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errs.Mark(err, ErrBadFormat)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errs.Wrap(err, "failed to read rows")
	}
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}

	columns := make(map[int]Column, len(rows[0]))
	for i, h := range rows[0] {
		if c, ok := headerAliases[strings.ToLower(strings.TrimSpace(h))]; ok {
			columns[i] = c
		}
	}
	if len(columns) == 0 {
		return nil, ErrNoHeader
	}

	out := make([]Row, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		row := Row{Line: i + 2, Values: make(map[Column]string, len(columns))}
		blank := true
		for idx, c := range columns {
			if idx >= len(cells) {
				continue
			}
			v := strings.TrimSpace(cells[idx])
			if v != "" {
				blank = false
			}
			row.Values[c] = v
		}
		if blank {
			continue
		}
		if d, ok := serialDate(row.Values[ColDate]); ok {
			row.Values[ColDate] = d
		}
		out = append(out, row)
	}
	return out, nil
}

// displayDate turns YYYY-MM-DD into DD.MM.YYYY.
func displayDate(iso string) string {
	parts := strings.Split(iso, "-")
	if len(parts) != 3 {
		return iso
	}
	return parts[2] + "." + parts[1] + "." + parts[0]
}

// serialDate converts an unformatted Excel date serial into YYYY-MM-DD.
func serialDate(v string) (string, bool) {
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || n < 1 {
		return "", false
	}
	t, err := excelize.ExcelDateToTime(n, false)
	if err != nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}
