package ui

import (
	"maps"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/aidfinder/internal/locale"
	"github.com/five82/aidfinder/internal/share"
)

// actionMsg reports the outcome of an open, share or copy command.
type actionMsg struct {
	okKey   string
	failKey string
	target  string
	err     error
}

func (m *Model) handleAction(msg actionMsg) {
	if msg.err != nil {
		m.logger.Warn("action failed",
			zap.String("action", msg.okKey),
			zap.String("target", msg.target),
			zap.Error(msg.err))
		m.setStatus(m.t(msg.failKey), true)
		return
	}
	m.logger.Debug("action completed",
		zap.String("action", msg.okKey),
		zap.String("target", msg.target))
	m.setStatus(m.t(msg.okKey), false)
}

// toggleFavorite flips the selected program's saved state and highlights it
// briefly.
func (m Model) toggleFavorite() (tea.Model, tea.Cmd) {
	p, ok := m.selectedProgram()
	if !ok {
		m.setStatus(m.t("status.no_program"), true)
		return m, nil
	}
	id := p.ID()
	m.favs.Toggle(m.ctx, id)
	if m.favs.IsFavorite(id) {
		m.setStatus(m.t("status.saved"), false)
	} else {
		m.setStatus(m.t("status.unsaved"), false)
	}

	if m.choice.Mode == locale.ModeSaved {
		m.refresh()
	}

	m.flashSeq++
	m.flashing = maps.Clone(m.flashing)
	if m.flashing == nil {
		m.flashing = map[string]int{}
	}
	m.flashing[id] = m.flashSeq
	return m, flashCmd(id, m.flashSeq)
}

// openSelected opens the selected program's application page.
func (m *Model) openSelected() tea.Cmd {
	p, ok := m.selectedProgram()
	if !ok {
		m.setStatus(m.t("status.no_program"), true)
		return nil
	}
	return openCmd(m.opener, p.Link, "status.opened", "status.open_failed")
}

// shareMail copies the mailto link and hands it to the mail client.
func (m *Model) shareMail() tea.Cmd {
	p, ok := m.selectedProgram()
	if !ok {
		m.setStatus(m.t("status.no_program"), true)
		return nil
	}
	uri := share.MailtoURI(p, m.lang)
	opener, copier, logger := m.opener, m.copier, m.logger
	return func() tea.Msg {
		if err := copier(uri); err != nil {
			logger.Debug("copy mail link failed", zap.Error(err))
		}
		return actionMsg{
			okKey:   "status.share_mail",
			failKey: "status.open_failed",
			target:  uri,
			err:     opener(uri),
		}
	}
}

// shareWhatsApp opens the WhatsApp share page for the selected program.
func (m *Model) shareWhatsApp() tea.Cmd {
	p, ok := m.selectedProgram()
	if !ok {
		m.setStatus(m.t("status.no_program"), true)
		return nil
	}
	return openCmd(m.opener, share.WhatsAppURI(p, m.lang), "status.share_whatsapp", "status.open_failed")
}

// copySelected puts the selected program's link on the clipboard.
func (m *Model) copySelected() tea.Cmd {
	p, ok := m.selectedProgram()
	if !ok {
		m.setStatus(m.t("status.no_program"), true)
		return nil
	}
	copier, link := m.copier, p.Link
	return func() tea.Msg {
		return actionMsg{
			okKey:   "status.copied",
			failKey: "status.copy_failed",
			target:  link,
			err:     copier(link),
		}
	}
}

func openCmd(opener share.Opener, target, okKey, failKey string) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{
			okKey:   okKey,
			failKey: failKey,
			target:  target,
			err:     opener(target),
		}
	}
}
