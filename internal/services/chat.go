package services

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/sbilibin2017/gw-currency-chat/internal/formatter"
	"github.com/sbilibin2017/gw-currency-chat/internal/logger"
	"github.com/sbilibin2017/gw-currency-chat/internal/models"
)

//go:generate mockgen -source=chat.go -destination=mock_chat.go -package=services

// ChatSender posts a message to the chat backend.
type ChatSender interface {
	Send(ctx context.Context, message string) (*models.ChatEnvelope, int, error)
}

// Renderer displays chat messages. Implementations decide how.
type Renderer interface {
	RenderMessage(msg models.Message)
	RenderConversion(view models.ConversionView)
	ShowLoading()
	HideLoading()
}

// ErrorMessage is shown when a reply cannot be obtained or carries no error text.
const ErrorMessage = "حدث خطأ أثناء معالجة رسالتك."

var ErrUnknownShortcut = errors.New("unknown shortcut")

var shortcuts = map[string]string{
	"usd-egp": "حول 100 دولار إلى جنيه مصري",
	"eur-usd": "كم يساوي 50 يورو بالدولار الأمريكي؟",
	"gbp-egp": "حول 100 جنيه استرليني إلى جنيه مصري",
	"eur-jpy": "كم يساوي 50 يورو بالين الياباني؟",
	"sar-egp": "حول 500 ريال سعودي إلى جنيه مصري",
}

// Shortcuts returns the names of the predefined queries, sorted.
func Shortcuts() []string {
	names := make([]string, 0, len(shortcuts))
	for name := range shortcuts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ShortcutQuery returns the query text behind a shortcut name.
func ShortcutQuery(name string) (string, bool) {
	q, ok := shortcuts[name]
	return q, ok
}

type ChatService struct {
	sender   ChatSender
	renderer Renderer
}

// NewChatService creates a new service instance
func NewChatService(sender ChatSender, renderer Renderer) *ChatService {
	return &ChatService{
		sender:   sender,
		renderer: renderer,
	}
}

// Submit renders the user's message, sends it and renders the reply.
// Blank messages are ignored. Failures are rendered, not returned; the
// returned error only reports that no usable reply was received.
func (svc *ChatService) Submit(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return nil
	}

	svc.renderer.RenderMessage(models.Message{Kind: models.MessageKindUser, Text: message})

	svc.renderer.ShowLoading()
	defer svc.renderer.HideLoading()

	env, status, err := svc.sender.Send(ctx, message)
	if err != nil {
		logger.Log.Errorw("chat request failed", "error", err)
		svc.renderBot(ErrorMessage)
		return err
	}

	if status != http.StatusOK || env.Error != "" {
		logger.Log.Warnw("chat request rejected", "status", status, "error", env.Error)
		text := env.Error
		if text == "" {
			text = ErrorMessage
		}
		svc.renderBot(text)
		return nil
	}

	if env.Response == nil {
		logger.Log.Warnw("chat reply without response", "status", status)
		svc.renderBot(ErrorMessage)
		return nil
	}

	svc.renderResponse(env.Response)
	return nil
}

// Shortcut submits the predefined query registered under name.
func (svc *ChatService) Shortcut(ctx context.Context, name string) error {
	q, ok := ShortcutQuery(name)
	if !ok {
		return ErrUnknownShortcut
	}
	return svc.Submit(ctx, q)
}

func (svc *ChatService) renderResponse(resp *models.ChatResponse) {
	if resp.Type == models.ResponseTypeConversion && resp.Data != nil {
		svc.renderer.RenderConversion(ConversionView(resp.Data))
		return
	}
	svc.renderBot(resp.Text)
}

func (svc *ChatService) renderBot(text string) {
	svc.renderer.RenderMessage(models.Message{Kind: models.MessageKindBot, Text: text})
}

// ConversionView formats both amounts of a conversion for display.
func ConversionView(c *models.Conversion) models.ConversionView {
	return models.ConversionView{
		Original:  formatter.FormatValue(c.Amount.Value(), c.BaseCurrency),
		Converted: formatter.FormatValue(c.Result.Value(), c.TargetCurrency),
	}
}
