package renderers

import "github.com/sbilibin2017/gw-currency-chat/internal/models"

// Renderer is satisfied by every renderer in this package.
type Renderer interface {
	RenderMessage(msg models.Message)
	RenderConversion(view models.ConversionView)
	ShowLoading()
	HideLoading()
}

// MultiRenderer forwards every call to each of its renderers in order.
type MultiRenderer []Renderer

func NewMultiRenderer(rs ...Renderer) MultiRenderer {
	return MultiRenderer(rs)
}

func (m MultiRenderer) RenderMessage(msg models.Message) {
	for _, r := range m {
		r.RenderMessage(msg)
	}
}

func (m MultiRenderer) RenderConversion(view models.ConversionView) {
	for _, r := range m {
		r.RenderConversion(view)
	}
}

func (m MultiRenderer) ShowLoading() {
	for _, r := range m {
		r.ShowLoading()
	}
}

func (m MultiRenderer) HideLoading() {
	for _, r := range m {
		r.HideLoading()
	}
}
