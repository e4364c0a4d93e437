package domain

// Publisher defines the interface for making a completed snapshot visible to
// consumers. Publish must never block the sampling round.
type Publisher interface {
	Publish(stats SystemStats)
}
