// Package telegram wires the dispatch pipeline to the Telegram Bot API:
// admin commands, spreadsheet uploads, summary replies and the audit
// channel report.
package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kiransada/duebot/pkg/config"
	"github.com/kiransada/duebot/pkg/history"
	"github.com/kiransada/duebot/pkg/metrics"
	"github.com/kiransada/duebot/pkg/reminder"
	"github.com/kiransada/duebot/pkg/sheet"
)

// Bot runs the Telegram side of the dispatcher. A single admin identity
// is authorized; everyone else is turned away.
type Bot struct {
	api    *tgbotapi.BotAPI
	cfg    config.Config
	runner *reminder.Runner
	store  history.Store
	log    zerolog.Logger
}

// New connects to the Bot API and prepares the upload directory.
func New(cfg config.Config, sink reminder.Sink, store history.Store, log zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Bot{
		api:    api,
		cfg:    cfg,
		runner: &reminder.Runner{Rule: cfg.Rule, Sink: sink, Log: log},
		store:  store,
		log:    log,
	}, nil
}

// Run consumes updates until ctx is cancelled, in the configured
// delivery mode.
func (b *Bot) Run(ctx context.Context) error {
	var updates tgbotapi.UpdatesChannel
	switch b.cfg.Mode {
	case config.ModeWebhook:
		ch, err := b.listenWebhook()
		if err != nil {
			return err
		}
		updates = ch
	default:
		u := tgbotapi.NewUpdate(0)
		u.Timeout = 30
		updates = b.api.GetUpdatesChan(u)
		defer b.api.StopReceivingUpdates()
	}

	b.log.Info().Str("mode", b.cfg.Mode).Str("bot", b.api.Self.UserName).Msg("bot running")
	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

// listenWebhook registers the webhook with Telegram and serves it on the
// configured port. The update path embeds the bot token, as the Bot API
// docs recommend.
func (b *Bot) listenWebhook() (tgbotapi.UpdatesChannel, error) {
	if b.cfg.WebhookBaseURL == "" {
		return nil, fmt.Errorf("webhook mode requires WEBHOOK_BASE_URL")
	}
	wh, err := tgbotapi.NewWebhook(b.cfg.WebhookBaseURL + "/" + b.api.Token)
	if err != nil {
		return nil, fmt.Errorf("build webhook config: %w", err)
	}
	if _, err := b.api.Request(wh); err != nil {
		return nil, fmt.Errorf("register webhook: %w", err)
	}

	updates := b.api.ListenForWebhook("/" + b.api.Token)
	go func() {
		if err := http.ListenAndServe(":"+b.cfg.Port, nil); err != nil {
			b.log.Error().Err(err).Msg("webhook server failed")
		}
	}()
	return updates, nil
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	switch {
	case msg.IsCommand() && msg.Command() == "start":
		if !b.isAdmin(msg.From.ID) {
			b.send(msg.Chat.ID, "⛔ You are not authorized to use this bot.")
			return
		}
		b.send(msg.Chat.ID, "✅ Welcome Admin! Please send me the Excel file (.xlsx).")

	case msg.IsCommand() && msg.Command() == "history":
		if !b.isAdmin(msg.From.ID) {
			b.send(msg.Chat.ID, "⛔ You are not authorized.")
			return
		}
		b.handleHistory(msg.Chat.ID)

	case msg.Document != nil:
		if !b.isAdmin(msg.From.ID) {
			b.send(msg.Chat.ID, "⛔ You are not authorized.")
			return
		}
		b.handleDocument(ctx, msg)
	}
}

func (b *Bot) isAdmin(userID int64) bool { return userID == b.cfg.AdminID }

// handleDocument downloads the uploaded workbook, runs the batch and
// reports: summary to the admin chat, full per-row report to the log
// channel, batch record to the history store. File-level failures are
// reported once and abort the batch.
func (b *Bot) handleDocument(ctx context.Context, msg *tgbotapi.Message) {
	path, err := b.download(msg.Document)
	if err != nil {
		b.send(msg.Chat.ID, fmt.Sprintf("❌ Error processing file: %v", err))
		return
	}
	b.send(msg.Chat.ID, "📂 File received. Processing...")

	rows, err := sheet.Decode(path)
	if err != nil {
		b.send(msg.Chat.ID, fmt.Sprintf("❌ Error processing file: %v", err))
		return
	}

	rep := b.runner.Run(ctx, rows, b.cfg.PaymentLink)
	metrics.RecordBatch(rep.Sent, rep.Skipped)

	b.send(msg.Chat.ID, fmt.Sprintf("✅ Finished sending.\n📩 Sent: %d\n⏭️ Skipped: %d", rep.Sent, rep.Skipped))

	report := BuildReport(rep.Lines)
	for _, chunk := range SplitMessage(report, maxMessageLen) {
		out := tgbotapi.NewMessage(b.cfg.LogChannelID, chunk)
		out.ParseMode = tgbotapi.ModeMarkdown
		if _, err := b.api.Send(out); err != nil {
			b.log.Error().Err(err).Msg("send report to log channel")
		}
	}

	if b.store != nil {
		batch := history.Batch{
			ID:        uuid.NewString(),
			FileName:  msg.Document.FileName,
			Sent:      rep.Sent,
			Skipped:   rep.Skipped,
			Report:    report,
			CreatedAt: time.Now(),
		}
		if err := b.store.SaveBatch(batch); err != nil {
			b.log.Warn().Err(err).Msg("failed to persist batch")
		}
	}
}

func (b *Bot) handleHistory(chatID int64) {
	if b.store == nil {
		b.send(chatID, "History is not enabled.")
		return
	}
	batches, err := b.store.RecentBatches(5)
	if err != nil {
		b.send(chatID, fmt.Sprintf("❌ Error reading history: %v", err))
		return
	}
	b.send(chatID, FormatHistory(batches))
}

// download fetches the document through the Bot API file endpoint into
// the upload directory.
func (b *Bot) download(doc *tgbotapi.Document) (string, error) {
	url, err := b.api.GetFileDirectURL(doc.FileID)
	if err != nil {
		return "", fmt.Errorf("resolve file: %w", err)
	}

	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download file: status %d", resp.StatusCode)
	}

	name := filepath.Base(doc.FileName)
	if name == "." || name == string(filepath.Separator) {
		name = doc.FileID + ".xlsx"
	}
	path := filepath.Join(b.cfg.UploadDir, name)
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path, nil
}

func (b *Bot) send(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.log.Error().Err(err).Int64("chat", chatID).Msg("send message")
	}
}
