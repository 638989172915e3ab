package domain

import "time"

// Competitor é um concorrente monitorado, referenciado pelos anúncios
type Competitor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	HomeURL   string    `json:"home_url"`
	CreatedAt time.Time `json:"created_at"`
}
