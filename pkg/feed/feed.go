// Package feed is the in-process change feed behind the live checklist.
// Subscribers get row-level deltas with a monotonic sequence; a viewer that
// falls behind is handed a single resync marker instead of a backlog.
package feed

import "sync"

type Op string

const (
	OpInsert Op = "insert"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	// OpResync tells the subscriber to refetch everything; deltas were
	// dropped because it consumed too slowly.
	OpResync Op = "resync"
)

type Change struct {
	Seq   uint64 `json:"seq"`
	Table string `json:"table"`
	RowID string `json:"row_id"`
	Op    Op     `json:"op"`
}

const subscriberBuffer = 16

type subscriber struct {
	ch chan Change
}

type Feed struct {
	mu     sync.Mutex
	seq    uint64
	nextID int
	topics map[string]map[int]*subscriber
}

func New() *Feed {
	return &Feed{topics: map[string]map[int]*subscriber{}}
}

// Subscribe registers a listener on a topic (one topic per activation).
// The returned cancel func must be called exactly once; it closes the channel.
func (f *Feed) Subscribe(topic string) (<-chan Change, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.topics[topic] == nil {
		f.topics[topic] = map[int]*subscriber{}
	}
	id := f.nextID
	f.nextID++
	sub := &subscriber{ch: make(chan Change, subscriberBuffer)}
	f.topics[topic][id] = sub

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if s, ok := f.topics[topic][id]; ok {
			delete(f.topics[topic], id)
			close(s.ch)
			if len(f.topics[topic]) == 0 {
				delete(f.topics, topic)
			}
		}
	}
	return sub.ch, cancel
}

// Publish fans a change out to every subscriber of the topic. Never blocks:
// a full subscriber buffer is drained and replaced with one resync marker.
func (f *Feed) Publish(topic, table, rowID string, op Op) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	c := Change{Seq: f.seq, Table: table, RowID: rowID, Op: op}
	for _, sub := range f.topics[topic] {
		select {
		case sub.ch <- c:
		default:
			f.drainLocked(sub)
			sub.ch <- Change{Seq: f.seq, Op: OpResync}
		}
	}
}

func (f *Feed) drainLocked(sub *subscriber) {
	for {
		select {
		case <-sub.ch:
		default:
			return
		}
	}
}

// Subscribers reports the listener count for a topic.
func (f *Feed) Subscribers(topic string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.topics[topic])
}
