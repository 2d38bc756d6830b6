//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/atomospherebrand-bot/relese/internal/domain/studio"
	reqdto "github.com/atomospherebrand-bot/relese/internal/handler/dto/request"
	"github.com/atomospherebrand-bot/relese/internal/pkg/clock"
	"github.com/atomospherebrand-bot/relese/internal/pkg/errs"
	"github.com/atomospherebrand-bot/relese/internal/testutil"
	"github.com/atomospherebrand-bot/relese/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type botCall struct {
	action     studio.TokenAction
	prev, next string
}

type recordingBot struct {
	mu    sync.Mutex
	calls []botCall
}

func (b *recordingBot) Apply(action studio.TokenAction, prev, next string) studio.BotCommand {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, botCall{action: action, prev: prev, next: next})
	return studio.BotCommand{Action: action, Queued: true, Message: "queued"}
}

type ContentCommandsTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memStore
	bot   *recordingBot
	cmds  commands.ContentCommands
	now   time.Time
}

func (s *ContentCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = newMemStore()
	s.bot = &recordingBot{}
	s.now = time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)
	s.cmds = commands.NewContentCommands(s.store, s.bot, clock.NewMockClock(s.now), nil)
}

func TestContentCommandsSuite(t *testing.T) {
	suite.Run(t, new(ContentCommandsTestSuite))
}

func (s *ContentCommandsTestSuite) settings(token string) reqdto.SaveSettingsRequest {
	return reqdto.SaveSettingsRequest{BotToken: token, StudioName: "INKMAN", Address: "Москва"}
}

func (s *ContentCommandsTestSuite) TestSaveSettings_TokenLifecycle() {
	_, err := s.cmds.SaveSettings(s.ctx, s.settings("tok-1"))
	s.Require().NoError(err)
	unchanged, err := s.cmds.SaveSettings(s.ctx, s.settings("tok-1"))
	s.Require().NoError(err)
	s.Equal(studio.BotCommand{}, unchanged.Bot)
	_, err = s.cmds.SaveSettings(s.ctx, s.settings("tok-2"))
	s.Require().NoError(err)
	saved, err := s.cmds.SaveSettings(s.ctx, s.settings(""))
	s.Require().NoError(err)

	s.Equal("INKMAN", saved.Settings.StudioName)
	s.Empty(saved.Settings.BotToken)
	s.Equal(studio.BotCommand{Action: studio.TokenActionStop, Queued: true, Message: "queued"}, saved.Bot)
	s.Equal([]botCall{
		{action: studio.TokenActionStart, prev: "", next: "tok-1"},
		{action: studio.TokenActionRestart, prev: "tok-1", next: "tok-2"},
		{action: studio.TokenActionStop, prev: "tok-2", next: ""},
	}, s.bot.calls)
}

func (s *ContentCommandsTestSuite) TestSaveMessages() {
	views, err := s.cmds.SaveMessages(s.ctx, reqdto.SaveMessagesRequest{Messages: []reqdto.BotMessageRequest{
		{Key: "welcome", Value: "Привет!"},
		{Key: " contacts ", Label: "Контакты", Value: "...", Type: "textarea"},
	}})
	s.Require().NoError(err)
	s.Require().Len(views, 2)
	s.Equal("welcome", views[0].Label, "label falls back to the key")
	s.Equal("text", views[0].Type)
	s.Equal("contacts", views[1].Key)
	s.Len(s.store.messages, 2)
}

func (s *ContentCommandsTestSuite) TestSaveMessages_RejectsWholeBatch() {
	_, err := s.cmds.SaveMessages(s.ctx, reqdto.SaveMessagesRequest{Messages: []reqdto.BotMessageRequest{
		{Key: "welcome", Value: "Привет!"},
		{Key: "broken", Type: "html"},
	}})
	s.True(errs.Is(err, errs.ErrValidation))
	s.Empty(s.store.messages)
}

func (s *ContentCommandsTestSuite) TestCreatePortfolioItem() {
	m := s.store.addMaster("Иван")

	view, err := s.cmds.CreatePortfolioItem(s.ctx, reqdto.CreatePortfolioItemRequest{
		URL:      "/uploads/a.jpg",
		MasterID: &m.ID,
		Style:    testutil.Ptr(" realism "),
	})
	s.Require().NoError(err)
	s.Equal("image", view.MediaType)
	s.Equal(s.now, view.CreatedAt)
	s.Require().NotNil(view.MasterName)
	s.Equal(m.Label(), *view.MasterName)
	s.Require().NotNil(view.Style)
	s.Equal("realism", *view.Style)

	unknown := uuid.New()
	_, err = s.cmds.CreatePortfolioItem(s.ctx, reqdto.CreatePortfolioItemRequest{URL: "/uploads/b.jpg", MasterID: &unknown})
	s.True(errs.Is(err, errs.ErrMasterNotFound))

	_, err = s.cmds.CreatePortfolioItem(s.ctx, reqdto.CreatePortfolioItemRequest{URL: "ftp://host/c.jpg"})
	s.True(errs.Is(err, errs.ErrValidation))

	s.Len(s.store.portfolio, 1)
}

func (s *ContentCommandsTestSuite) TestDeletePortfolioItem() {
	view, err := s.cmds.CreatePortfolioItem(s.ctx, reqdto.CreatePortfolioItemRequest{URL: "https://cdn.example.com/a.mp4", MediaType: "video"})
	s.Require().NoError(err)

	s.Require().NoError(s.cmds.DeletePortfolioItem(s.ctx, view.ID))
	err = s.cmds.DeletePortfolioItem(s.ctx, view.ID)
	s.True(errs.Is(err, errs.ErrPortfolioItemNotFound))
	s.True(errs.Is(err, errs.ErrNotFound))
}

func (s *ContentCommandsTestSuite) TestCertificates() {
	view, err := s.cmds.CreateCertificate(s.ctx, reqdto.CreateCertificateRequest{URL: "/uploads/cert.pdf", Type: "pdf"})
	s.Require().NoError(err)
	s.Equal("pdf", view.Type)

	_, err = s.cmds.CreateCertificate(s.ctx, reqdto.CreateCertificateRequest{URL: " "})
	s.True(errs.Is(err, errs.ErrValidation))

	s.Require().NoError(s.cmds.DeleteCertificate(s.ctx, view.ID))
	err = s.cmds.DeleteCertificate(s.ctx, view.ID)
	s.True(errs.Is(err, errs.ErrCertificateNotFound))
}

func TestContentCommands_NilBotController(t *testing.T) {
	cmds := commands.NewContentCommands(newMemStore(), nil, clock.NewMockClock(time.Now()), nil)

	saved, err := cmds.SaveSettings(context.Background(), reqdto.SaveSettingsRequest{BotToken: "tok", StudioName: "INKMAN"})
	require.NoError(t, err)
	assert.Equal(t, "tok", saved.Settings.BotToken)
	assert.Equal(t, studio.TokenActionStart, saved.Bot.Action)
	assert.False(t, saved.Bot.Queued)
}
