// Package telegram handles the integration with the Telegram Bot API.
// It posts complaint-category reports to a configured admin chat so the
// operations team sees them without polling the API.
package telegram

import (
	"fmt"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"wheely/backend/internal/models"
)

// Notifier forwards created reports to an admin chat.
type Notifier struct {
	BotAPI *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier creates a Notifier for the given bot token and chat id.
func NewNotifier(token, chatID string) (*Notifier, error) {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid admin chat id %q: %w", chatID, err)
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("✅ Authorized on account %s", bot.Self.UserName)

	return &Notifier{BotAPI: bot, chatID: id}, nil
}

// ReportCreated sends a notification for complaint reports. Other
// categories are routine and stay out of the admin chat.
func (n *Notifier) ReportCreated(rep models.Report) {
	if rep.Category != models.CategoryComplaint {
		return
	}
	msg := tgbotapi.NewMessage(n.chatID, FormatReportMessage(rep))
	if _, err := n.BotAPI.Send(msg); err != nil {
		log.Printf("failed to notify admins about report %d: %v", rep.ID, err)
	}
}

// FormatReportMessage renders the admin chat text for a report.
func FormatReportMessage(rep models.Report) string {
	return fmt.Sprintf("New %s on route %d\n%s\n\n%s\n(report #%d by account %d)",
		models.CategoryNames[rep.Category], rep.RouteID, rep.Title, rep.Body, rep.ID, rep.AuthorID)
}
