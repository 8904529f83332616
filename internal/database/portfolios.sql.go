package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
)

const getPortfolioByUser = `-- name: GetPortfolioByUser :one
SELECT id, user_id, name, title, bio, email, phone, location, skills, education, experience, resume_object_key, resume_original_name, created_at, updated_at FROM portfolios WHERE user_id=$1
`

func (q *Queries) GetPortfolioByUser(ctx context.Context, userID uuid.UUID) (Portfolio, error) {
	row := q.db.QueryRowContext(ctx, getPortfolioByUser, userID)
	var i Portfolio
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Name,
		&i.Title,
		&i.Bio,
		&i.Email,
		&i.Phone,
		&i.Location,
		&i.Skills,
		&i.Education,
		&i.Experience,
		&i.ResumeObjectKey,
		&i.ResumeOriginalName,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertPortfolio = `-- name: UpsertPortfolio :exec
INSERT INTO portfolios (
user_id, name, title, bio, email, phone, location, skills, education, experience, resume_object_key, resume_original_name)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (user_id)
DO UPDATE SET
    name = EXCLUDED.name,
    title = EXCLUDED.title,
    bio = EXCLUDED.bio,
    email = EXCLUDED.email,
    phone = EXCLUDED.phone,
    location = EXCLUDED.location,
    skills = EXCLUDED.skills,
    education = EXCLUDED.education,
    experience = EXCLUDED.experience,
    resume_object_key = EXCLUDED.resume_object_key,
    resume_original_name = EXCLUDED.resume_original_name,
    updated_at = CURRENT_TIMESTAMP
`

type UpsertPortfolioParams struct {
	UserID             uuid.UUID
	Name               string
	Title              string
	Bio                string
	Email              string
	Phone              string
	Location           string
	Skills             json.RawMessage
	Education          json.RawMessage
	Experience         json.RawMessage
	ResumeObjectKey    sql.NullString
	ResumeOriginalName sql.NullString
}

func (q *Queries) UpsertPortfolio(ctx context.Context, arg UpsertPortfolioParams) error {
	_, err := q.db.ExecContext(ctx, upsertPortfolio,
		arg.UserID,
		arg.Name,
		arg.Title,
		arg.Bio,
		arg.Email,
		arg.Phone,
		arg.Location,
		arg.Skills,
		arg.Education,
		arg.Experience,
		arg.ResumeObjectKey,
		arg.ResumeOriginalName,
	)
	return err
}
