package api

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"resume-extract/internal/extract"
	"resume-extract/internal/storage"
)

// saveJob represents a background result-persistence task. Extraction is
// synchronous per document; only the database write is deferred.
type saveJob struct {
	Record    *storage.ExtractionRecord
	Timestamp time.Time
}

// StartBackgroundWorkers initializes background job workers
func (a *API) StartBackgroundWorkers() {
	go a.saveWorker()

	log.Println("[BackgroundJobs] Workers started (result persistence)")
}

// saveWorker drains the persistence queue.
func (a *API) saveWorker() {
	log.Println("[SaveWorker] Started")

	for job := range a.saveQueue {
		if a.store == nil {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := a.store.SaveExtraction(ctx, job.Record)
		cancel()

		if err != nil {
			log.Printf("[SaveWorker] Failed to save extraction (%s): %v", job.Record.Source, err)
			continue
		}

		log.Printf("[SaveWorker] Saved extraction %s (%s, queued %v ago)",
			job.Record.ID, job.Record.Source, time.Since(job.Timestamp))
	}
}

// queueSave enqueues a successful extraction for persistence. Best-effort:
// a full queue drops the save rather than blocking the response.
func (a *API) queueSave(result *extract.Result, source, filename string, textLength int) {
	if a.store == nil || a.saveQueue == nil {
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		log.Printf("[BackgroundJobs] Failed to marshal result for %s: %v", source, err)
		return
	}

	job := saveJob{
		Record: &storage.ExtractionRecord{
			Filename:   filename,
			Source:     source,
			TextLength: textLength,
			Result:     payload,
		},
		Timestamp: time.Now(),
	}

	// Non-blocking send
	select {
	case a.saveQueue <- job:
	default:
		log.Printf("[BackgroundJobs] Queue full! Dropping save for %s extraction", source)
	}
}
