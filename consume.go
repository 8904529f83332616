package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	_ "github.com/lib/pq"
	"github.com/streadway/amqp"

	"github.com/folioworks/resumeworker/internal/database"
)

// retry retries a function up to `attempts` times with exponential backoff
func retry[T any](attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		wait := time.Duration(500*(i+1)) * time.Millisecond
		time.Sleep(wait)
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

// processResume runs the extraction pipeline for one uploaded resume.
// It handles downloading, text extraction, merge, and DB persistence.
// Failures are retried selectively: network & DB retries only where needed.
func processResume(job ResumeJob, workerConfig *WorkerConfig) error {
	ctx := context.Background()

	resume, err := workerConfig.DB.GetResume(ctx, job.ResumeID)
	if err != nil {
		return fmt.Errorf("error getting resume: %v, err: %w", job.ResumeID, err)
	}

	awsClient := s3.NewFromConfig(*workerConfig.AwsConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", workerConfig.R2.AccountID))
	})

	// Retry downloading file (network failures are transient)
	fileBytes, err := retry(3, func() ([]byte, error) {
		return DownloadFromR2(ctx, awsClient, workerConfig.R2.Bucket, resume.ObjectKey)
	})
	if err != nil {
		return fmt.Errorf("file download error for %s after retries: %w", resume.ObjectKey, err)
	}

	// The extractor never fails on document internals; a corrupt file
	// just produces a sparse profile the user completes by hand.
	profile := workerConfig.Extractor.Extract(fileBytes, resume.OriginalFilename)

	var existing *database.Portfolio
	stored, err := workerConfig.DB.GetPortfolioByUser(ctx, resume.UserID)
	switch {
	case err == nil:
		existing = &stored
	case errors.Is(err, sql.ErrNoRows):
		// first upload, nothing to merge against
	default:
		return fmt.Errorf("error getting portfolio for user %v: %w", resume.UserID, err)
	}

	params := mergeProfile(existing, profile, resume)

	_, err = retry(3, func() (any, error) {
		return nil, workerConfig.DB.UpsertPortfolio(ctx, params)
	})
	if err != nil {
		return fmt.Errorf("failed to save portfolio after retries: %w", err)
	}

	message := "resume processed"
	if !profile.HasInfo() {
		message = "no information could be extracted, manual entry required"
	}
	update := map[string]any{
		"resume_id": resume.ID,
		"user_id":   resume.UserID,
		"status":    "completed",
		"message":   message,
		"has_info":  profile.HasInfo(),
		"timestamp": time.Now(),
	}
	if err := publishPortfolioUpdate(workerConfig.RabbitConn, resume.UserID.String(), update); err != nil {
		log.Println("failed to publish update:", err)
	}

	return nil
}

func worker(id int, workerConfig *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()
	//    to consume message on the queue
	conn, err := amqp.Dial(workerConfig.RABBITMQUrl)
	if err != nil {
		log.Fatal("error dialling rabbitmq: " + err.Error())
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("error connecting to rabbitmq channel: " + err.Error())
	}
	defer ch.Close()
	_, err = ch.QueueDeclare(
		"resume_uploads", // queue name
		true,             // durable (survives broker restarts)
		false,            // auto-delete when unused
		false,            // exclusive
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		log.Fatalf("Failed to declare queue: %v", err)
	}

	msgs, err := ch.Consume(
		"resume_uploads", // queue name
		"",               // consumer tag
		true,             // auto-ack
		false,            // exclusive
		false,            // no-local
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		log.Fatal("error consuming rabbitmq message: " + err.Error())
	}

	for msg := range msgs {
		job := ResumeJob{}
		err = json.Unmarshal(msg.Body, &job)
		if err != nil {
			log.Printf("error unmarshalling message body. err: %v", err)
			continue
		}
		log.Printf("Worker %d processing resume. resume_id: %s", id+1, job.ResumeID)

		workerConfig.DB.UpdateResumeStatus(context.Background(), database.UpdateResumeStatusParams{
			UploadStatus: "processing",
			ID:           job.ResumeID,
		})
		update := map[string]any{
			"resume_id": job.ResumeID,
			"user_id":   job.UserID,
			"status":    "processing",
			"message":   "extraction started",
			"timestamp": time.Now(),
		}
		err := publishPortfolioUpdate(workerConfig.RabbitConn, job.UserID.String(), update)
		if err != nil {
			log.Println("failed to publish update:", err)
		}

		err = processResume(job, workerConfig)
		if err != nil {
			log.Printf("error processing resume_id: %v. err: %v", job.ResumeID, err)

			workerConfig.DB.UpdateResumeStatus(context.Background(), database.UpdateResumeStatusParams{
				UploadStatus: "failed",
				ID:           job.ResumeID,
			})
			update := map[string]any{
				"resume_id": job.ResumeID,
				"user_id":   job.UserID,
				"status":    "failed",
				"message":   "extraction failed",
				"timestamp": time.Now(),
			}
			err := publishPortfolioUpdate(workerConfig.RabbitConn, job.UserID.String(), update)
			if err != nil {
				log.Println("failed to publish update:", err)
			}
			continue
		}

		workerConfig.DB.UpdateResumeStatus(context.Background(), database.UpdateResumeStatusParams{
			UploadStatus: "completed",
			ID:           job.ResumeID,
		})
	}

}

func (workerConfig *WorkerConfig) StartConsumerWorkerPool(numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := 0; i < numWorkers; i++ {
		log.Println("worker id ", i+1, "started")
		go worker(i, workerConfig, &wg)
	}
	wg.Wait() // block until all workers finish

}
