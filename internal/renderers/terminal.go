package renderers

import (
	"fmt"
	"io"
	"sync"

	"github.com/sbilibin2017/gw-currency-chat/internal/models"
)

// Prefixes used by TerminalRenderer.
const (
	UserPrefix    = "you> "
	BotPrefix     = "bot> "
	LoadingLine   = "bot> ..."
	ConversionTag = "نتيجة التحويل: "
)

// TerminalRenderer writes the chat transcript as plain lines.
type TerminalRenderer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTerminalRenderer(w io.Writer) *TerminalRenderer {
	return &TerminalRenderer{w: w}
}

func (r *TerminalRenderer) RenderMessage(msg models.Message) {
	prefix := BotPrefix
	if msg.Kind == models.MessageKindUser {
		prefix = UserPrefix
	}
	r.println(prefix + msg.Text)
}

func (r *TerminalRenderer) RenderConversion(view models.ConversionView) {
	r.println(BotPrefix + ConversionTag + view.Original + " = " + view.Converted)
}

func (r *TerminalRenderer) ShowLoading() {
	r.println(LoadingLine)
}

// HideLoading is a no-op; a line already printed stays on screen.
func (r *TerminalRenderer) HideLoading() {}

func (r *TerminalRenderer) println(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.w, s)
}
