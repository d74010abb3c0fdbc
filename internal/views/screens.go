package views

import (
	"fmt"
	"strings"
)

type TaskListPanelData struct {
	ListView string
	Count    int
}

type PromptPanelData struct {
	Title     string
	Message   string
	InputView string
}

type ConfirmPanelData struct {
	TaskTitle string
	Row       int
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

func RenderTaskListPanel(data TaskListPanelData) string {
	if data.Count == 0 {
		return "No tasks yet. Press [a] to add one."
	}
	return data.ListView
}

func RenderPromptPanel(data PromptPanelData) string {
	var b strings.Builder
	b.WriteString(data.Title + "\n")
	if data.Message != "" {
		b.WriteString(data.Message + "\n")
	}
	b.WriteString(data.InputView + "\n")
	b.WriteString("[enter] ok  [esc] cancel")
	return b.String()
}

func RenderConfirmPanel(data ConfirmPanelData) string {
	return fmt.Sprintf("Delete task #%d?\n%q\n[y/enter] delete  [n/esc] cancel", data.Row, data.TaskTitle)
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "command:\n" + inputView + "\n/add TITLE · /rename ROW TITLE · /delete ROW · /reload"
}

func RenderHelpPanel(data HelpPanelData) string {
	md := "## Keys\n\n" + strings.Join(data.Bindings, "\n")
	return strings.TrimSpace(RenderMarkdown(md) + "\n" + data.HelpView)
}
