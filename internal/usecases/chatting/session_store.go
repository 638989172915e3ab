package chatting

import (
	"time"

	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/domain"
	gocache "github.com/patrickmn/go-cache"
)

// SessionStore guarda o histórico das conversas em um cache com TTL.
// O estado é volátil: expira por inatividade e se perde em restart.
type SessionStore struct {
	cache      *gocache.Cache
	maxHistory int
}

func NewSessionStore(ttl time.Duration, maxHistory int) *SessionStore {
	return &SessionStore{
		cache:      gocache.New(ttl, ttl/2),
		maxHistory: maxHistory,
	}
}

// Append adiciona uma mensagem ao histórico da sessão, renovando o TTL.
// Histórico acima do limite perde as mensagens mais antigas.
// Escritas concorrentes na mesma sessão são last-write-wins.
func (s *SessionStore) Append(sessionID string, message domain.ChatMessage) []domain.ChatMessage {
	history := s.History(sessionID)
	history = append(history, message)

	if len(history) > s.maxHistory {
		history = history[len(history)-s.maxHistory:]
	}

	s.cache.Set(sessionID, history, gocache.DefaultExpiration)
	return history
}

// History retorna o histórico da sessão; sessão desconhecida retorna vazio
func (s *SessionStore) History(sessionID string) []domain.ChatMessage {
	if cached, ok := s.cache.Get(sessionID); ok {
		if history, ok := cached.([]domain.ChatMessage); ok {
			return history
		}
	}

	return nil
}

// Clear remove o histórico da sessão; seguro para sessões inexistentes
func (s *SessionStore) Clear(sessionID string) {
	s.cache.Delete(sessionID)
}

// ActiveSessions conta as sessões não expiradas
func (s *SessionStore) ActiveSessions() int {
	return s.cache.ItemCount()
}

// DeleteExpired força a remoção das sessões expiradas
func (s *SessionStore) DeleteExpired() {
	s.cache.DeleteExpired()
}
