package entity

import "time"

// Company representa una organización dueña de bodegas.
type Company struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
