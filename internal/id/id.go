package id

import "github.com/google/uuid"

// UUID generates a UUID v4 (random).
func UUID() string {
	return uuid.NewString()
}
