package handlers

import (
	"sync"

	"airline/internal/events"
)

var (
	depsMu        sync.RWMutex
	publisher     events.Publisher = events.NopPublisher{}
	voucherSecret []byte
)

// Configure installs the collaborators handlers share. Call before serving.
func Configure(pub events.Publisher, secret []byte) {
	depsMu.Lock()
	defer depsMu.Unlock()
	if pub == nil {
		pub = events.NopPublisher{}
	}
	publisher = pub
	voucherSecret = append([]byte(nil), secret...)
}

func currentPublisher() events.Publisher {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return publisher
}

func currentVoucherSecret() []byte {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return voucherSecret
}
