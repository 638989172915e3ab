package chatting

import (
	"fmt"
	"testing"
	"time"

	"github.com/cauacarvalhoCW/ad-intelligence-hub-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
)

func userMessage(content string) domain.ChatMessage {
	return domain.ChatMessage{
		Role:      domain.ChatRoleUser,
		Content:   content,
		Timestamp: time.Now(),
	}
}

func TestSessionStore_Append(t *testing.T) {
	t.Run("Append acumula mensagens na ordem", func(t *testing.T) {
		store := NewSessionStore(time.Minute, 50)

		store.Append("session-1", userMessage("primeira"))
		history := store.Append("session-1", userMessage("segunda"))

		assert.Len(t, history, 2)
		assert.Equal(t, "primeira", history[0].Content)
		assert.Equal(t, "segunda", history[1].Content)
	})

	t.Run("Histórico acima do limite perde as mensagens mais antigas", func(t *testing.T) {
		store := NewSessionStore(time.Minute, 3)

		for i := 1; i <= 5; i++ {
			store.Append("session-1", userMessage(fmt.Sprintf("mensagem %d", i)))
		}

		history := store.History("session-1")

		assert.Len(t, history, 3)
		assert.Equal(t, "mensagem 3", history[0].Content)
		assert.Equal(t, "mensagem 5", history[2].Content)
	})

	t.Run("Sessões são independentes", func(t *testing.T) {
		store := NewSessionStore(time.Minute, 50)

		store.Append("session-1", userMessage("oi"))
		store.Append("session-2", userMessage("olá"))

		assert.Len(t, store.History("session-1"), 1)
		assert.Len(t, store.History("session-2"), 1)
		assert.Equal(t, 2, store.ActiveSessions())
	})
}

func TestSessionStore_History(t *testing.T) {
	store := NewSessionStore(time.Minute, 50)

	// Sessão desconhecida retorna vazio, não erro
	assert.Empty(t, store.History("nunca-vista"))
}

func TestSessionStore_Clear(t *testing.T) {
	store := NewSessionStore(time.Minute, 50)

	store.Append("session-1", userMessage("oi"))
	store.Clear("session-1")

	assert.Empty(t, store.History("session-1"))
	assert.Equal(t, 0, store.ActiveSessions())

	// Clear de sessão inexistente é seguro
	store.Clear("nunca-vista")
}

func TestSessionStore_Expiration(t *testing.T) {
	store := NewSessionStore(10*time.Millisecond, 50)

	store.Append("session-1", userMessage("oi"))
	assert.Equal(t, 1, store.ActiveSessions())

	time.Sleep(20 * time.Millisecond)
	store.DeleteExpired()

	assert.Empty(t, store.History("session-1"))
	assert.Equal(t, 0, store.ActiveSessions())
}
