package contract

// Store bundles the three logical collections behind one backend. The
// backend (Postgres, Mongo, in-memory) is chosen once at startup; callers
// must observe identical behavior regardless of which one is wired.
type Store interface {
	Users() UserRepository
	ChatSessions() ChatSessionRepository
	ChatMessages() ChatMessageRepository
}
