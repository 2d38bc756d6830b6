//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"testing"

	reqdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/request"
	"github.com/atomospherebrand-bot/relese/internal/infra/excel"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/testutil"
	commandsmock "github.com/atomospherebrand-bot/relese/internal/testutil/mock/commands"
	queriesmock "github.com/atomospherebrand-bot/relese/internal/testutil/mock/queries"
	"github.com/atomospherebrand-bot/relese/internal/usecase/commands"
	"github.com/atomospherebrand-bot/relese/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func workbook(t *testing.T, rows ...[]any) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

var importHeader = []any{"Дата", "Время", "Мастер", "Услуга", "Клиент", "Телефон", "Telegram", "Статус"}

type importFixture struct {
	bookings *commandsmock.MockBookingCommands
	catalog  *queriesmock.MockCatalogQueries
	cmds     commands.ImportCommands
	master   *queries.MasterView
	service  *queries.ServiceView
}

func newImportFixture(t *testing.T) importFixture {
	ctrl := gomock.NewController(t)
	fx := importFixture{
		bookings: commandsmock.NewMockBookingCommands(ctrl),
		catalog:  queriesmock.NewMockCatalogQueries(ctrl),
		master:   &queries.MasterView{ID: uuid.New(), Name: "Иван Петров", Nickname: "ivan_ink"},
		service:  &queries.ServiceView{ID: uuid.New(), Name: "Сеанс", Duration: 120},
	}
	fx.cmds = commands.NewImportCommands(fx.bookings, fx.catalog, nil)
	return fx
}

func (fx importFixture) expectCatalog() {
	fx.catalog.EXPECT().ListMasters(gomock.Any(), true).Return([]*queries.MasterView{fx.master}, nil)
	fx.catalog.EXPECT().ListServices(gomock.Any()).Return([]*queries.ServiceView{fx.service}, nil)
}

func TestImportBookings_NormalizesRows(t *testing.T) {
	fx := newImportFixture(t)
	fx.expectCatalog()

	want := reqdto.CreateBookingRequest{
		ClientName:     "Анна",
		ClientPhone:    "+79990000000",
		ClientTelegram: testutil.Ptr("anna"),
		MasterID:       fx.master.ID,
		ServiceID:      fx.service.ID,
		Date:           "2025-10-23",
		Time:           "09:30",
		Status:         testutil.Ptr("confirmed"),
	}
	fx.bookings.EXPECT().Create(gomock.Any(), want, commands.SourceImport).Return(&queries.BookingView{}, nil)

	result, err := fx.cmds.ImportBookings(context.Background(), workbook(t,
		importHeader,
		[]any{"23.10.2025", "9:30", "IVAN_INK", "сеанс", "Анна", "+79990000000", "anna", "Подтверждена"},
	))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Zero(t, result.Skipped)
	assert.Empty(t, result.Errors)
}

func TestImportBookings_ReportsBadRows(t *testing.T) {
	fx := newImportFixture(t)
	fx.expectCatalog()

	fx.bookings.EXPECT().
		Create(gomock.Any(), gomock.Any(), commands.SourceImport).
		DoAndReturn(func(_ context.Context, req reqdto.CreateBookingRequest, _ commands.Source) (*queries.BookingView, error) {
			if req.Time == "14:00" {
				return nil, errs.Kind(errs.ErrSlotOccupied, errs.ErrConflict)
			}
			return &queries.BookingView{}, nil
		}).
		Times(3)

	result, err := fx.cmds.ImportBookings(context.Background(), workbook(t,
		importHeader,
		[]any{"2025-10-23", "12:00", "Иван Петров", "Сеанс", "", "", "", ""},
		[]any{"2025-10-23", "14:00", "Иван Петров", "Сеанс", "Олег", "+7", "", "pending"},
		[]any{"2025-10-23", "16:00", "Пётр", "Сеанс", "Олег", "+7", "", ""},
		[]any{"завтра", "16:00", "ivan_ink", "Сеанс", "Олег", "+7", "", ""},
		[]any{"2025-10-24", "10:00", "ivan_ink", "Сеанс", "Олег", "+7", "", "непонятно"},
		[]any{"", "", "", "", "", "", "", ""},
	))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 3, result.Skipped)
	assert.Equal(t, []commands.ImportError{
		{Row: 3, Message: errs.ErrSlotOccupied.Error()},
		{Row: 4, Message: `unknown master "Пётр"`},
		{Row: 5, Message: `unrecognised date "завтра"`},
	}, result.Errors)
}

func TestImportBookings_DefaultsMissingClient(t *testing.T) {
	fx := newImportFixture(t)
	fx.expectCatalog()

	fx.bookings.EXPECT().
		Create(gomock.Any(), gomock.Any(), commands.SourceImport).
		DoAndReturn(func(_ context.Context, req reqdto.CreateBookingRequest, _ commands.Source) (*queries.BookingView, error) {
			assert.Equal(t, "Гость", req.ClientName)
			require.NotNil(t, req.Status)
			assert.Equal(t, "pending", *req.Status)
			assert.Nil(t, req.ClientTelegram)
			return &queries.BookingView{}, nil
		})

	result, err := fx.cmds.ImportBookings(context.Background(), workbook(t,
		[]any{"date", "time", "master", "service"},
		[]any{"2025-10-23", "18:00", "ivan_ink", "Сеанс"},
	))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
}

func TestImportBookings_InvalidWorkbook(t *testing.T) {
	tests := []struct {
		name string
		body *bytes.Reader
		want error
	}{
		{name: "not a workbook", body: bytes.NewReader([]byte("plain text")), want: excel.ErrBadFormat},
		{name: "no known headers", body: workbook(t, []any{"foo", "bar"}), want: excel.ErrNoHeader},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newImportFixture(t)

			_, err := fx.cmds.ImportBookings(context.Background(), tt.body)
			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.want))
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestImportBookings_CatalogFailure(t *testing.T) {
	fx := newImportFixture(t)
	fx.catalog.EXPECT().ListMasters(gomock.Any(), true).Return(nil, errs.ErrDatabaseOperationFailed)

	_, err := fx.cmds.ImportBookings(context.Background(), workbook(t, importHeader))
	assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
}
