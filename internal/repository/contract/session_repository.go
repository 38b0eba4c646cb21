package contract

import "deal-insights-be/pkg/store"

type SessionRepository interface {
	Save(session *store.Session)
	Get(sessionId string) (*store.Session, bool)
	Delete(sessionId string) bool
	Count() int
}
