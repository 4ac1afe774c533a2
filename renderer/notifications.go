package renderer

import (
	"bytes"

	"github.com/etnz/cryptofolio"
	md "github.com/nao1215/markdown"
)

// NotificationsMarkdown renders the notification panel. Unread
// notifications are flagged as new.
func NotificationsMarkdown(ns []cryptofolio.Notification) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Notifications")
	blank(doc)
	if len(ns) == 0 {
		doc.PlainText("No notifications")
		return doc.String()
	}
	items := make([]string, len(ns))
	for i, n := range ns {
		items[i] = NotificationLine(n)
	}
	doc.BulletList(items...)
	return doc.String()
}

// NotificationLine renders a single notification, like
// "12:03:44 - ALERT: ...".
func NotificationLine(n cryptofolio.Notification) string {
	line := n.Timestamp() + " - " + n.Message
	if !n.Read {
		line += " (new)"
	}
	return line
}
