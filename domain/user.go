// Package domain contains core concepts of the chat system.
// No runtime, network, or UI logic should be added here.
package domain

import "time"

// User is immutable once created, except for display-name updates.
type User struct {
	ID          string
	DisplayName string
	CreatedAt   time.Time
}
