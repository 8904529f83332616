package database

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Resume struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	OriginalFilename string
	Mime             string
	SizeBytes        int64
	ObjectKey        string
	UploadStatus     string
	CreatedAt        time.Time
}

type Portfolio struct {
	ID                 uuid.UUID
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
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
