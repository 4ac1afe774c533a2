package cryptofolio

import "time"

// TimeFormat is the layout used to display notification times.
const TimeFormat = "15:04:05"

// Notification is a message emitted by the session.
type Notification struct {
	Message string
	Time    time.Time
	Read    bool
}

// Timestamp returns the time of the notification formatted with TimeFormat.
func (n Notification) Timestamp() string { return n.Time.Format(TimeFormat) }

// Notifications is the unbounded list of notifications of a session.
type Notifications struct {
	list []Notification
}

// Append adds notifications at the end of the list.
func (ns *Notifications) Append(n ...Notification) { ns.list = append(ns.list, n...) }

// List returns a copy of the notifications, oldest first.
func (ns *Notifications) List() []Notification {
	out := make([]Notification, len(ns.list))
	copy(out, ns.list)
	return out
}

// Unread returns the number of notifications not read yet.
func (ns *Notifications) Unread() (n int) {
	for _, x := range ns.list {
		if !x.Read {
			n++
		}
	}
	return n
}

// MarkRead marks all notifications as read.
func (ns *Notifications) MarkRead() {
	for i := range ns.list {
		ns.list[i].Read = true
	}
}

// Len returns the number of notifications.
func (ns *Notifications) Len() int { return len(ns.list) }

// Clear removes all notifications.
func (ns *Notifications) Clear() { ns.list = nil }
