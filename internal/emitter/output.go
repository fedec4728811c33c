package emitter

import "github.com/gg582/hancomb/internal/combiner"

// Output represents the operations required by the engine to emit characters,
// update preedit text, and forward raw key events to the host. It is
// satisfied by Buffer and Terminal and enables tests to substitute
// lightweight fakes.
type Output interface {
	Close() error
	ForwardKey(ev combiner.Event) error
	SendBackspace(count int) error
	SendText(text string) error
}

var (
	_ Output = (*Buffer)(nil)
	_ Output = (*Terminal)(nil)
)
