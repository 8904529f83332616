package database

import (
	"context"

	"github.com/google/uuid"
)

const getResume = `-- name: GetResume :one
SELECT id, user_id, original_filename, mime, size_bytes, object_key, upload_status, created_at FROM resumes WHERE id=$1
`

func (q *Queries) GetResume(ctx context.Context, id uuid.UUID) (Resume, error) {
	row := q.db.QueryRowContext(ctx, getResume, id)
	var i Resume
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.OriginalFilename,
		&i.Mime,
		&i.SizeBytes,
		&i.ObjectKey,
		&i.UploadStatus,
		&i.CreatedAt,
	)
	return i, err
}

const updateResumeStatus = `-- name: UpdateResumeStatus :exec
UPDATE resumes
SET upload_status=$1
WHERE id=$2
`

type UpdateResumeStatusParams struct {
	UploadStatus string
	ID           uuid.UUID
}

func (q *Queries) UpdateResumeStatus(ctx context.Context, arg UpdateResumeStatusParams) error {
	_, err := q.db.ExecContext(ctx, updateResumeStatus, arg.UploadStatus, arg.ID)
	return err
}
