package update

import (
	"fmt"

	"github.com/sandeepkv93/tasklist/internal/views"
)

func (m Model) renderHelpView() string {
	var plain []string
	for _, group := range m.Keys.FullHelp() {
		for _, b := range group {
			h := b.Help()
			plain = append(plain, fmt.Sprintf("- `%s` %s", h.Key, h.Desc))
		}
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.FullHelpView(m.Keys.FullHelp()),
	})
}

func (m Model) renderFooter() string {
	return m.helpModel.ShortHelpView(m.Keys.ShortHelp())
}
