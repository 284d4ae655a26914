package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	width := m.width
	if width == 0 {
		width = config.DefaultWidth
	}
	inner := width - m.theme.Base.GetHorizontalFrameSize()
	if inner < config.MinProgressWidth {
		inner = config.MinProgressWidth
	}

	sections := []string{
		m.renderTabs(),
		m.theme.Clock.Render(m.view.clock()),
		m.progress.ViewAs(m.view.progress / 100),
		m.theme.Toggle.Render(m.view.toggle),
		m.renderStatus(inner),
	}
	if m.view.hint != "" {
		sections = append(sections, m.theme.Hint.Render(truncateLabel(m.view.hint, inner)))
	}
	sections = append(sections, "", m.renderSettings(inner))
	panel := lipgloss.PlaceHorizontal(inner, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Center, sections...))

	rows := []string{}
	if width >= config.CompactModeThreshold || m.field.Active() {
		rows = append(rows, m.field.Render(inner, config.ConfettiRows))
	}
	rows = append(rows, panel, "", m.renderFooter(inner))
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(models.Modes))
	for _, mode := range models.Modes {
		style := m.theme.Tab
		if mode == m.view.mode {
			style = m.theme.ActiveTab
		}
		tabs = append(tabs, style.Render(mode.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderStatus(width int) string {
	style := m.theme.Status
	if m.view.mode == models.ModeBreak {
		style = m.theme.Break
	}
	return style.Render(truncateLabel(m.view.status, width))
}

func (m Model) renderSettings(width int) string {
	if m.editing != editNone {
		return m.input.View()
	}
	parts := []string{
		fmt.Sprintf("Focus %s", formatMinutesInput(m.ctrl.Duration(models.ModeFocus))),
		fmt.Sprintf("Break %s", formatMinutesInput(m.ctrl.Duration(models.ModeBreak))),
	}
	if label := m.ctrl.State().FocusLabel; label != "" {
		parts = append(parts, "Label: "+label)
	}
	return m.theme.Dim.Render(truncateLabel(strings.Join(parts, "  |  "), width))
}

func (m Model) renderFooter(width int) string {
	help := m.registry.Help(m.viewMode())
	footer := fmt.Sprintf("%s  |  %s v%s", help, m.theme.Name, VersionLabel())
	return m.theme.Dim.Render(truncateLabel(footer, width))
}
