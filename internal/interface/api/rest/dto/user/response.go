package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the external shape of an identity record. The password hash
// never leaves the service layer.
type User struct {
	UUID      uuid.UUID `json:"uuid"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
