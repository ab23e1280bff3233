// ABOUTME: Presence aggregator with last-write-wins state per user
// ABOUTME: Updates fan out to the global channel and every conversation hub

package room

// UpdatePresence records the latest state for a user, replacing any
// previous entry. The event is published on the global presence channel
// and injected into every conversation hub so message-stream subscribers
// see presence changes inline.
func (r *Registry) UpdatePresence(userID, state string) PresenceEvent {
	event := PresenceEvent{
		UserID:    userID,
		State:     state,
		UpdatedAt: r.nowMS(),
	}

	r.presenceMu.Lock()
	r.presence[userID] = event
	r.presenceMu.Unlock()

	r.mu.RLock()
	hubs := make([]*Hub[ChatEvent], 0, len(r.records))
	for _, rec := range r.records {
		hubs = append(hubs, rec.hub)
	}
	r.mu.RUnlock()

	for _, hub := range hubs {
		hub.Publish(PresenceChatEvent(event))
	}
	r.presenceHub.Publish(event)

	return event
}

// PresenceSnapshot returns the latest presence event per user, unordered.
func (r *Registry) PresenceSnapshot() []PresenceEvent {
	r.presenceMu.RLock()
	defer r.presenceMu.RUnlock()
	out := make([]PresenceEvent, 0, len(r.presence))
	for _, event := range r.presence {
		out = append(out, event)
	}
	return out
}

// SubscribePresence returns a subscription on the global presence
// channel, independent of any conversation.
func (r *Registry) SubscribePresence() *Subscription[PresenceEvent] {
	return r.presenceHub.Subscribe()
}
