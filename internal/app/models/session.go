package models

import "time"

// Session is the Redis-held login session payload. The session id is
// embedded in the access JWT; deleting the Redis key invalidates every
// access token minted for it.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	LoginAt   time.Time `json:"login_at"`
}
