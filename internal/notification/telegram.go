package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
	"github.com/what2do/eventsphere/internal/domain"
)

const dateLayout = "02.01.2006 15:04"

type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	logger      logger.Logger
	purchaseTTL time.Duration
}

func NewTelegramNotifier(token string, purchaseTTL time.Duration, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger, purchaseTTL: purchaseTTL}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger, purchaseTTL: purchaseTTL}, nil
}

func (n *TelegramNotifier) NotifyPurchaseCreated(ctx context.Context, user *domain.User, event *domain.Event, purchases []*domain.Purchase) {
	n.send(ctx, user.TelegramChatID, purchaseCreatedText(event, purchases, n.purchaseTTL))
}

func (n *TelegramNotifier) NotifyPurchaseConfirmed(ctx context.Context, user *domain.User, event *domain.Event, purchase *domain.Purchase) {
	text := fmt.Sprintf(
		"*Оплата подтверждена!*\n\n"+"Мероприятие: %s\n"+"Дата (время указано в UTC): %s\n"+"Билеты: %s",
		event.Title,
		event.StartsAt.Format(dateLayout),
		ticketCodes(purchase),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyPurchaseCancelled(ctx context.Context, user *domain.User, event *domain.Event, purchase *domain.Purchase) {
	text := fmt.Sprintf(
		"*Покупка отменена (истекло время оплаты)*\n\n"+"Мероприятие: %s\n"+"Дата (время указано в UTC): %s\n"+"Билетов: %d",
		event.Title,
		event.StartsAt.Format(dateLayout),
		purchase.Quantity,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func purchaseCreatedText(event *domain.Event, purchases []*domain.Purchase, ttl time.Duration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Билеты забронированы!*\n\nМероприятие: %s\nДата (время указано в UTC): %s\n",
		event.Title, event.StartsAt.Format(dateLayout))

	var total int64
	pending := false
	for _, p := range purchases {
		total += p.TotalPrice
		if p.Status == domain.PurchaseStatusPending {
			pending = true
		}
		fmt.Fprintf(&b, "%d x %s: %s\n", p.Quantity, formatPrice(p.UnitPrice), ticketCodes(p))
	}
	fmt.Fprintf(&b, "Итого: %s", formatPrice(total))

	if pending {
		fmt.Fprintf(&b, "\nОплатите покупку в течение %s, иначе она будет отменена.", ttl.String())
	}
	return b.String()
}

func ticketCodes(p *domain.Purchase) string {
	codes := make([]string, 0, len(p.Tickets))
	for _, t := range p.Tickets {
		codes = append(codes, t.Code)
	}
	return strings.Join(codes, ", ")
}

// formatPrice renders minor units as a decimal amount.
func formatPrice(minor int64) string {
	if minor == 0 {
		return "бесплатно"
	}
	return fmt.Sprintf("%d.%02d", minor/100, minor%100)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
