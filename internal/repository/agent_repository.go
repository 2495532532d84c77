package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/andesair/checkin-api/internal/model"
	"github.com/andesair/checkin-api/internal/utils"
)

var ErrEmailExists = errors.New("email already exists")

// AgentRepo persists check-in agent accounts ('agents' table).
type AgentRepo struct{ DB *sql.DB }

func NewAgentRepo(db *sql.DB) *AgentRepo { return &AgentRepo{DB: db} }

// Create inserts an agent and returns its ID.
func (r *AgentRepo) Create(ctx context.Context, email, password, role string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO agents (email, password_hash, role) VALUES (?,?,?)",
		email, hash, role)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches an agent by normalized email.
func (r *AgentRepo) GetByEmail(ctx context.Context, email string) (model.Agent, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var a model.Agent
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,role,is_active,created_at,updated_at FROM agents WHERE email=? LIMIT 1",
		email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// GetByID fetches an agent by id.
func (r *AgentRepo) GetByID(ctx context.Context, id uint64) (model.Agent, error) {
	var a model.Agent
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,role,is_active,created_at,updated_at FROM agents WHERE id=? LIMIT 1",
		id).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}
