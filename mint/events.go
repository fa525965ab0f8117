package mint

// EventKind names the three lifecycle notifications.
type EventKind string

const (
	EventMintRequested  EventKind = "mint_requested"
	EventRandomReceived EventKind = "random_number_received"
	EventRecordCreated  EventKind = "record_created"
)

// Event is one append-only lifecycle notification. Seq is the position in
// the log; events for a record appear in causal order.
type Event struct {
	Seq   uint64
	Kind  EventKind
	Token Token  // mint_requested, random_number_received
	ID    uint64 // all kinds
	Value Seed   // random_number_received
	URI   string // record_created
}

func (m *Minter) emit(ev Event) {
	ev.Seq = uint64(len(m.events))
	m.events = append(m.events, ev)

	e := m.log.Info().Str("event", string(ev.Kind)).Uint64("id", ev.ID)
	switch ev.Kind {
	case EventMintRequested:
		e.Str("token", string(ev.Token))
	case EventRandomReceived:
		e.Str("token", string(ev.Token)).Str("value", ev.Value.Hex())
	case EventRecordCreated:
		e.Str("cid", m.records[ev.ID].CID)
	}
	e.Msg("lifecycle event")
}

// Events returns a copy of the notification log.
func (m *Minter) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}
