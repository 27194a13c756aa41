package services

import (
	"fmt"
	"strings"

	"github.com/popsorte/backend/internal/config"
	"github.com/popsorte/backend/internal/models"
	"github.com/popsorte/backend/pkg/telegram"
	"golang.org/x/exp/slog"
)

// NotificationService announces draw results and winners on the channel
type NotificationService struct {
	gateway telegram.Gateway
	chatID  string
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(gateway telegram.Gateway, cfg *config.Config) *NotificationService {
	return &NotificationService{
		gateway: gateway,
		chatID:  cfg.Telegram.ChatID,
	}
}

// AnnounceResult posts the winning numbers of a contest
func (s *NotificationService) AnnounceResult(result *models.DrawResult) error {
	text := fmt.Sprintf(
		"<b>Resultado do concurso %s</b> (%s)\nNúmeros sorteados: %s",
		result.Contest, result.DrawDate, joinNumbers(result.WinningNumbers),
	)
	_, err := s.gateway.SendMessage(s.chatID, text)
	if err != nil {
		slog.Error("failed to announce result", "contest", result.Contest, "error", err)
	}
	return err
}

// AnnounceWinners posts the winner list of a contest. Game IDs are masked
// to their last four digits.
func (s *NotificationService) AnnounceWinners(contest string, winners []models.Winner) error {
	if len(winners) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<b>GANHADOR(ES) do concurso %s</b>\n", contest)
	for _, w := range winners {
		fmt.Fprintf(&b, "ID %s — %d acertos (%s) — R$ %.2f\n",
			maskGameID(w.Ticket.GameID), w.Matches, joinNumbers(w.MatchedNumbers), w.PrizeShare)
	}

	_, err := s.gateway.SendMessage(s.chatID, b.String())
	if err != nil {
		slog.Error("failed to announce winners", "contest", contest, "error", err)
	}
	return err
}

func joinNumbers(numbers []int) string {
	parts := make([]string, 0, len(numbers))
	for _, n := range numbers {
		parts = append(parts, fmt.Sprintf("%02d", n))
	}
	return strings.Join(parts, ", ")
}

// maskGameID keeps only the last four digits visible
func maskGameID(gameID string) string {
	if len(gameID) <= 4 {
		return gameID
	}
	return "******" + gameID[len(gameID)-4:]
}
