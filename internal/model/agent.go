package model

import "time"

// Agent represents a check-in agent account as stored in the
// `agents` table.  Agents authenticate with email/password and call
// the check-in endpoints from the gate or the counter.  Supervisors
// carry the SUPERVISOR role and have the same seat-assignment
// permissions today; the role split exists for future auditing.
//
// Fields:
//  ID           – primary key identifier of the agent.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Role         – role name (AGENT or SUPERVISOR).
//  IsActive     – whether the account is active.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type Agent struct {
	ID           uint64    // agents.id
	Email        string    // agents.email
	PasswordHash string    // agents.password_hash
	Role         string    // agents.role
	IsActive     bool      // agents.is_active
	CreatedAt    time.Time // agents.created_at
	UpdatedAt    time.Time // agents.updated_at
}

// RefreshToken models an entry in the `refresh_tokens` table.  Each
// refresh token belongs to an agent and contains metadata for expiry
// and revocation.  The plain token is not stored; only its SHA-256
// hash.
//
// Fields:
//  ID        – primary key identifier.
//  AgentID   – owner of the token.
//  TokenHash – SHA-256 hex digest of the token value.
//  ExpiresAt – expiration timestamp of the token.
//  RevokedAt – when the token was revoked (null if still active).
//  CreatedAt – timestamp of creation.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	AgentID   uint64     // refresh_tokens.agent_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
