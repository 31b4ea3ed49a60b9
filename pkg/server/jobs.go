package server

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/blogforge/blogforge/pkg/agents"
)

// JobStatus is the lifecycle state of a generation job. Running jobs have
// exactly three terminal states.
type JobStatus string

const (
	JobRunning   JobStatus = "running"
	JobComplete  JobStatus = "complete"
	JobError     JobStatus = "error"
	JobCancelled JobStatus = "cancelled"
)

// Job tracks one generation request. Each job runs on its own goroutine
// with its own context; jobs never share intermediate state.
type Job struct {
	ID         string         `json:"id"`
	Topic      string         `json:"topic"`
	Status     JobStatus      `json:"status"`
	Result     *agents.Result `json:"result,omitempty"`
	Error      string         `json:"error,omitempty"`
	StartedAt  time.Time      `json:"startedAt"`
	FinishedAt time.Time      `json:"finishedAt,omitzero"`

	cancel context.CancelFunc
}

func (j *Job) terminal() bool {
	return j.Status != JobRunning
}

type jobRegistry struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

func newJobRegistry() *jobRegistry {
	return &jobRegistry{jobs: make(map[string]*Job)}
}

// Add registers a new running job and returns its generated id.
func (r *jobRegistry) Add(topic string, cancel context.CancelFunc) string {
	id := uuid.NewString()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[id] = &Job{
		ID:        id,
		Topic:     topic,
		Status:    JobRunning,
		StartedAt: time.Now().UTC(),
		cancel:    cancel,
	}
	return id
}

// Get returns a snapshot of the job, so callers never observe concurrent
// mutation.
func (r *jobRegistry) Get(id string) (Job, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	if !ok {
		return Job{}, false
	}
	return *job, true
}

// Complete marks a running job as finished with its result.
func (r *jobRegistry) Complete(id string, result *agents.Result) {
	r.finish(id, JobComplete, result, "")
}

// Fail marks a running job as errored.
func (r *jobRegistry) Fail(id string, errMsg string) {
	r.finish(id, JobError, nil, errMsg)
}

// Cancel aborts a running job. Returns false when the job is unknown or
// already terminal.
func (r *jobRegistry) Cancel(id string) bool {
	r.mu.Lock()
	job, ok := r.jobs[id]
	if !ok || job.terminal() {
		r.mu.Unlock()
		return false
	}
	cancel := job.cancel
	job.Status = JobCancelled
	job.FinishedAt = time.Now().UTC()
	r.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	return true
}

func (r *jobRegistry) finish(id string, status JobStatus, result *agents.Result, errMsg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok || job.terminal() {
		return
	}
	job.Status = status
	job.Result = result
	job.Error = errMsg
	job.FinishedAt = time.Now().UTC()
	job.cancel = nil
}

// Prune drops terminal jobs that finished before the retention window.
// Returns the number of jobs removed.
func (r *jobRegistry) Prune(retention time.Duration) int {
	cutoff := time.Now().UTC().Add(-retention)
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, job := range r.jobs {
		if job.terminal() && job.FinishedAt.Before(cutoff) {
			delete(r.jobs, id)
			removed++
		}
	}
	return removed
}
