package bench

// Listener receives a callback after every finished match. It may be
// called from multiple worker goroutines at once.
type Listener interface {
	GameFinished(MatchRecord)
}

// NopListener ignores every callback.
type NopListener struct{}

func (NopListener) GameFinished(MatchRecord) {}
