// notify/notify.go - transition notification dispatch
package notify

import (
	"fmt"
	"log"

	"taskhub/models"
)

// Event identifies the task transition that triggered a notification.
type Event string

const (
	EventAssigned Event = "assigned"
	EventUpdated  Event = "updated"
)

// Payload is the mail-shaped message handed to the Sender.
type Payload struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers a payload. Delivery is best effort; the dispatcher
// discards failures.
type Sender interface {
	Send(p Payload) error
}

// NopSender discards every payload. Used when no mail transport is
// configured.
type NopSender struct{}

func (NopSender) Send(Payload) error {
	return nil
}

// Dispatcher builds transition notifications and hands them to a Sender.
// Delivery happens in a goroutine and its outcome never reaches the
// caller; a failure is logged and dropped.
type Dispatcher struct {
	sender Sender
	from   string
}

func NewDispatcher(sender Sender, from string) *Dispatcher {
	return &Dispatcher{sender: sender, from: from}
}

// Notify dispatches asynchronously. Callers must not depend on delivery.
func (d *Dispatcher) Notify(event Event, task *models.Task, recipient *models.User) {
	if d == nil || d.sender == nil || recipient == nil {
		return
	}
	payload := d.buildPayload(event, task, recipient)
	go func() {
		if err := d.sender.Send(payload); err != nil {
			log.Printf("notify: failed to send %s notification to %s: %v", event, payload.To, err)
		}
	}()
}

func (d *Dispatcher) buildPayload(event Event, task *models.Task, recipient *models.User) Payload {
	p := Payload{From: d.from, To: recipient.Email}
	switch event {
	case EventAssigned:
		p.Subject = "New task assigned: " + task.Title
		p.Text = fmt.Sprintf("Hi %s,\n\nYou have been assigned the task %q, due on %s.",
			recipient.FirstName, task.Title, task.DueDate)
		p.HTML = fmt.Sprintf("<p>Hi %s,</p><p>You have been assigned the task <strong>%s</strong>, due on <strong>%s</strong>.</p>",
			recipient.FirstName, task.Title, task.DueDate)
	case EventUpdated:
		p.Subject = "Task updated: " + task.Title
		p.Text = fmt.Sprintf("Hi %s,\n\nThe task %q assigned to you has been updated.",
			recipient.FirstName, task.Title)
		p.HTML = fmt.Sprintf("<p>Hi %s,</p><p>The task <strong>%s</strong> assigned to you has been updated.</p>",
			recipient.FirstName, task.Title)
	}
	return p
}
