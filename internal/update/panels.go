package update

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sandeepkv93/plantd/internal/model"
)

func (m *Model) notify(kind model.EventKind, title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	n := Notification{
		Kind:  kind,
		Title: title,
		Body:  body,
		Level: level,
		At:    m.clock.Now(),
	}
	m.Notifications = append(m.Notifications, n)
	if limit := m.cfg.NotificationLimit; len(m.Notifications) > limit {
		m.Notifications = m.Notifications[len(m.Notifications)-limit:]
	}
	if m.cfg.DesktopNotifications && m.notifier != nil {
		if err := m.notifier.Send(n); err != nil {
			m.log.Warn("desktop notification failed", zap.Error(err))
		}
	}
}

// NotificationsOf returns the notifications raised for one event kind, oldest first.
func (m Model) NotificationsOf(kind model.EventKind) []Notification {
	var out []Notification
	for _, n := range m.Notifications {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

func (m Model) latestNotification() (Notification, bool) {
	if len(m.Notifications) == 0 {
		return Notification{}, false
	}
	return m.Notifications[len(m.Notifications)-1], true
}
