// Package notification provides INotifier implementations.
package notification

import (
	"context"
	"log"
	"sync"

	"portail_immigration/internal/usecase/interfaces"
)

type Message struct {
	Severity interfaces.Severity
	Text     string
}

// Collector keeps the messages raised while serving one request so they can be
// returned with the response.
type Collector struct {
	mu       sync.Mutex
	messages []Message
}

var _ interfaces.INotifier = (*Collector)(nil)

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Notify(_ context.Context, severity interfaces.Severity, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, Message{Severity: severity, Text: message})
}

// Messages returns a copy in arrival order.
func (c *Collector) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// LogNotifier writes messages to the process log. The admin CLI has no other
// surface for them.
type LogNotifier struct {
	Area string
}

var _ interfaces.INotifier = LogNotifier{}

func (n LogNotifier) Notify(_ context.Context, severity interfaces.Severity, message string) {
	area := n.Area
	if area == "" {
		area = "notify"
	}
	log.Printf("[%s][%s] %s", area, severity, message)
}
