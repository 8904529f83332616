package main

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"github.com/folioworks/resumeworker/internal/database"
	"github.com/folioworks/resumeworker/internal/extract"
)

type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

type WorkerConfig struct {
	DB          *database.Queries
	R2          *R2Config
	AwsConfig   *aws.Config
	RabbitConn  *amqp.Connection
	RABBITMQUrl string
	Extractor   *extract.Extractor
}

// ResumeJob is the message the upload API publishes to the resume_uploads
// queue after storing a resume in R2.
type ResumeJob struct {
	ResumeID uuid.UUID `json:"resume_id"`
	UserID   uuid.UUID `json:"user_id"`
}
