package broker

import (
	"sync"
	"time"
)

// Topics published by the ledger after an accepted submission. Clients
// subscribe to these instead of polling.
const (
	TopicPaperUpdated       = "paper.updated"
	TopicLeaderboardUpdated = "leaderboard.updated"
)

// Event describes a single ledger change.
type Event struct {
	Topic       string    `json:"topic"`
	PaperID     string    `json:"paperId,omitempty"`
	UserID      string    `json:"userId,omitempty"`
	ReviewID    string    `json:"reviewId,omitempty"`
	ReviewCount int       `json:"reviewCount,omitempty"`
	AvgScore    float64   `json:"avgScore,omitempty"`
	Points      int       `json:"points,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type Broker struct {
	subscribers map[string][]chan Event
	mu          sync.RWMutex
}

func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[string][]chan Event),
	}
}

func (b *Broker) Subscribe(topic string) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan Event, 16)
	b.subscribers[topic] = append(b.subscribers[topic], ch)
	return ch
}

func (b *Broker) Unsubscribe(topic string, ch <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if chans, ok := b.subscribers[topic]; ok {
		for i, c := range chans {
			if c == ch {
				b.subscribers[topic] = append(chans[:i], chans[i+1:]...)
				close(c)
				break
			}
		}
	}
}

// Publish delivers the event to every subscriber of its topic. Delivery is
// best effort: a subscriber whose buffer is full is skipped rather than
// allowed to block the publisher.
func (b *Broker) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if chans, ok := b.subscribers[event.Topic]; ok {
		for _, ch := range chans {
			select {
			case ch <- event:
			default:
			}
		}
	}
}
