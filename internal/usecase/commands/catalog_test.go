//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/request"
	"github.com/atomospherebrand-bot/relese/internal/pkg/clock"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/testutil"
	"github.com/atomospherebrand-bot/relese/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalogNow = time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)

func newCatalogCommands(store *memStore) commands.CatalogCommands {
	return commands.NewCatalogCommands(store, clock.NewMockClock(catalogNow), nil)
}

func TestCatalogCommands_CreateMaster(t *testing.T) {
	store := newMemStore()
	cmds := newCatalogCommands(store)

	view, err := cmds.CreateMaster(context.Background(), reqdto.CreateMasterRequest{
		Name:     "Иван Петров",
		Nickname: "ivan_ink",
		Telegram: testutil.Ptr("@ivan"),
	})
	require.NoError(t, err)
	assert.True(t, view.IsActive, "masters start active")
	assert.Equal(t, catalogNow, view.CreatedAt)
	require.NotNil(t, view.Telegram)
	assert.Equal(t, "ivan", *view.Telegram)
	assert.Contains(t, store.masters, view.ID)

	_, err = cmds.CreateMaster(context.Background(), reqdto.CreateMasterRequest{Name: " ", Nickname: "x"})
	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestCatalogCommands_UpdateMaster(t *testing.T) {
	store := newMemStore()
	m := store.addMaster("Ольга")
	cmds := newCatalogCommands(store)

	view, err := cmds.UpdateMaster(context.Background(), m.ID, reqdto.UpdateMasterRequest{IsActive: testutil.Ptr(false)})
	require.NoError(t, err)
	assert.False(t, view.IsActive)
	assert.Equal(t, "Ольга", view.Name, "absent fields keep their value")

	_, err = cmds.UpdateMaster(context.Background(), uuid.New(), reqdto.UpdateMasterRequest{Name: testutil.Ptr("x")})
	assert.True(t, errs.Is(err, errs.ErrNotFound))

	_, err = cmds.UpdateMaster(context.Background(), m.ID, reqdto.UpdateMasterRequest{Name: testutil.Ptr("")})
	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestCatalogCommands_DeleteMaster(t *testing.T) {
	store := newMemStore()
	m := store.addMaster("Ольга")
	cmds := newCatalogCommands(store)

	require.NoError(t, cmds.DeleteMaster(context.Background(), m.ID))
	assert.NotContains(t, store.masters, m.ID)

	err := cmds.DeleteMaster(context.Background(), m.ID)
	assert.True(t, errs.Is(err, errs.ErrNotFound))
	assert.True(t, errs.Is(err, errs.ErrMasterNotFound))
}

func TestCatalogCommands_Services(t *testing.T) {
	tests := []struct {
		name string
		req  reqdto.CreateServiceRequest
		kind error
	}{
		{name: "valid", req: reqdto.CreateServiceRequest{Name: "Тату", Duration: 90, Price: 5000}},
		{name: "zero duration", req: reqdto.CreateServiceRequest{Name: "Тату", Duration: 0}, kind: errs.ErrValidation},
		{name: "negative price", req: reqdto.CreateServiceRequest{Name: "Тату", Duration: 30, Price: -1}, kind: errs.ErrValidation},
		{name: "blank name", req: reqdto.CreateServiceRequest{Name: "  ", Duration: 30}, kind: errs.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds := newCatalogCommands(newMemStore())
			view, err := cmds.CreateService(context.Background(), tt.req)
			if tt.kind != nil {
				assert.True(t, errs.Is(err, tt.kind), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.req.Duration, view.Duration)
		})
	}
}

func TestCatalogCommands_UpdateService(t *testing.T) {
	store := newMemStore()
	svc := store.addService("Сеанс", 60)
	cmds := newCatalogCommands(store)

	view, err := cmds.UpdateService(context.Background(), svc.ID, reqdto.UpdateServiceRequest{Duration: testutil.Ptr(180)})
	require.NoError(t, err)
	assert.Equal(t, 180, view.Duration)
	assert.Equal(t, "Сеанс", view.Name)
	assert.Equal(t, 180, store.services[svc.ID].Duration)

	_, err = cmds.UpdateService(context.Background(), uuid.New(), reqdto.UpdateServiceRequest{})
	assert.True(t, errs.Is(err, errs.ErrServiceNotFound))
}

func TestCatalogCommands_DeleteService(t *testing.T) {
	store := newMemStore()
	svc := store.addService("Сеанс", 60)
	cmds := newCatalogCommands(store)

	store.serviceInUse = true
	err := cmds.DeleteService(context.Background(), svc.ID)
	assert.True(t, errs.Is(err, errs.ErrConflict))
	assert.Contains(t, store.services, svc.ID)

	store.serviceInUse = false
	require.NoError(t, cmds.DeleteService(context.Background(), svc.ID))

	err = cmds.DeleteService(context.Background(), svc.ID)
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}
