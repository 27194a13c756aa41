package services

import (
	"testing"

	"github.com/popsorte/backend/internal/config"
	"github.com/popsorte/backend/internal/models"
	"github.com/popsorte/backend/pkg/telegram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationService() (*NotificationService, *telegram.MockGateway) {
	gateway := telegram.NewMockGateway()
	cfg := &config.Config{Telegram: config.TelegramConfig{ChatID: "-100123"}}
	return NewNotificationService(gateway, cfg), gateway
}

func TestAnnounceResult(t *testing.T) {
	s, gateway := newNotificationService()

	err := s.AnnounceResult(&models.DrawResult{
		Contest:        "2100",
		DrawDate:       "2025-03-03",
		WinningNumbers: []int{5, 12, 23, 44, 70},
	})
	require.NoError(t, err)
	require.Len(t, gateway.Sent, 1)
	assert.Contains(t, gateway.Sent[0], "2100")
	assert.Contains(t, gateway.Sent[0], "05, 12, 23, 44, 70")
}

func TestAnnounceWinnersMasksGameID(t *testing.T) {
	s, gateway := newNotificationService()

	err := s.AnnounceWinners("2100", []models.Winner{
		{
			Ticket:         models.Ticket{GameID: "1234567890"},
			Contest:        "2100",
			Matches:        3,
			MatchedNumbers: []int{5, 12, 23},
			PrizeShare:     500,
		},
	})
	require.NoError(t, err)
	require.Len(t, gateway.Sent, 1)
	assert.Contains(t, gateway.Sent[0], "******7890")
	assert.NotContains(t, gateway.Sent[0], "1234567890")
}

func TestAnnounceWinnersEmptyListSendsNothing(t *testing.T) {
	s, gateway := newNotificationService()

	require.NoError(t, s.AnnounceWinners("2100", nil))
	assert.Empty(t, gateway.Sent)
}
