package renderers

import (
	"bytes"
	"html/template"
	"strings"
	"sync"

	"github.com/sbilibin2017/gw-currency-chat/internal/models"
)

var (
	messageTmpl = template.Must(template.New("message").Parse(
		`<div class="message {{.Kind}}-message"><div class="message-content"><p>{{.Text}}</p></div></div>`))

	conversionTmpl = template.Must(template.New("conversion").Parse(
		`<div class="message bot-message"><div class="message-content conversion-result">` +
			`<p>نتيجة التحويل: <span class="amount">{{.Original}}</span> = <span class="amount">{{.Converted}}</span></p>` +
			`</div></div>`))
)

const loadingFragment = `<div class="message bot-message"><div class="message-content loading-dots">` +
	`<span class="dot"></span><span class="dot"></span><span class="dot"></span></div></div>`

// HTMLRenderer builds the chat list as HTML fragments using the widget's
// markup. Text is escaped.
type HTMLRenderer struct {
	mu        sync.Mutex
	fragments []string
	loading   int // index of the loading fragment, -1 when hidden
}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{loading: -1}
}

func (r *HTMLRenderer) RenderMessage(msg models.Message) {
	r.append(execute(messageTmpl, msg))
}

func (r *HTMLRenderer) RenderConversion(view models.ConversionView) {
	r.append(execute(conversionTmpl, view))
}

func (r *HTMLRenderer) ShowLoading() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loading >= 0 {
		return
	}
	r.fragments = append(r.fragments, loadingFragment)
	r.loading = len(r.fragments) - 1
}

func (r *HTMLRenderer) HideLoading() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loading < 0 {
		return
	}
	r.fragments = append(r.fragments[:r.loading], r.fragments[r.loading+1:]...)
	r.loading = -1
}

// Fragments returns the rendered messages in order.
func (r *HTMLRenderer) Fragments() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.fragments))
	copy(out, r.fragments)
	return out
}

// HTML returns all fragments joined, newline separated.
func (r *HTMLRenderer) HTML() string {
	return strings.Join(r.Fragments(), "\n")
}

func (r *HTMLRenderer) append(fragment string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fragments = append(r.fragments, fragment)
}

func execute(t *template.Template, data any) string {
	var buf bytes.Buffer
	// the templates only reference fields that exist, so Execute cannot fail
	_ = t.Execute(&buf, data)
	return buf.String()
}
