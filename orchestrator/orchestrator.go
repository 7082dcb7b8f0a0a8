// Package orchestrator runs transcript formatting tasks concurrently under
// a worker limit.
package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mudler/xlog"

	"transcript/models"
)

// RunFunc performs the work of a task. It reports failures through the
// returned FileResult rather than an error.
type RunFunc func(ctx context.Context) *models.FileResult

// Task represents a unit of work
type Task struct {
	ID        string
	Run       RunFunc
	Status    TaskStatus
	Error     error
	Result    *models.FileResult
	StartTime time.Time
	EndTime   time.Time
}

// TaskStatus represents the current state of a task
type TaskStatus int

const (
	TaskPending TaskStatus = iota
	TaskRunning
	TaskCompleted
	TaskFailed
)

// String returns the lowercase status name
func (s TaskStatus) String() string {
	switch s {
	case TaskPending:
		return "pending"
	case TaskRunning:
		return "running"
	case TaskCompleted:
		return "completed"
	case TaskFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Orchestrator manages task execution with a bounded number of workers
type Orchestrator struct {
	tasks      map[string]*Task
	order      []string
	maxWorkers int
	tasksMutex sync.RWMutex

	// Progress tracking
	onProgress    func(completed, total int, task *Task)
	progressMutex sync.Mutex
	completed     int
}

// NewOrchestrator creates a new orchestrator running at most maxWorkers
// tasks at once. Values below 1 are treated as 1.
func NewOrchestrator(maxWorkers int) *Orchestrator {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Orchestrator{
		tasks:      make(map[string]*Task),
		maxWorkers: maxWorkers,
	}
}

// MaxWorkers returns the concurrency limit
func (o *Orchestrator) MaxWorkers() int {
	return o.maxWorkers
}

// AddTask adds a task to the orchestrator
func (o *Orchestrator) AddTask(task *Task) error {
	if task == nil || task.ID == "" {
		return fmt.Errorf("task must have an ID")
	}
	if task.Run == nil {
		return fmt.Errorf("task %s has nothing to run", task.ID)
	}

	o.tasksMutex.Lock()
	defer o.tasksMutex.Unlock()

	if _, exists := o.tasks[task.ID]; exists {
		return fmt.Errorf("task %s already exists", task.ID)
	}

	task.Status = TaskPending
	o.tasks[task.ID] = task
	o.order = append(o.order, task.ID)
	return nil
}

// SetProgressCallback sets a callback for progress updates.
// The callback is never invoked concurrently with itself.
func (o *Orchestrator) SetProgressCallback(callback func(completed, total int, task *Task)) {
	o.onProgress = callback
}

// Execute runs all pending tasks and returns their results in the order
// the tasks were added.
//
// Once ctx is cancelled no further tasks start; the ones left pending are
// marked failed with the context error. Tasks already running are passed
// the same context.
func (o *Orchestrator) Execute(ctx context.Context) []*models.FileResult {
	o.tasksMutex.RLock()
	pending := make([]*Task, 0, len(o.order))
	for _, id := range o.order {
		if task := o.tasks[id]; task.Status == TaskPending {
			pending = append(pending, task)
		}
	}
	o.tasksMutex.RUnlock()

	total := len(pending)
	o.completed = 0
	slots := make(chan struct{}, o.maxWorkers)
	var wg sync.WaitGroup

	xlog.Debug("Executing tasks", "tasks", total, "workers", o.maxWorkers)

	for _, task := range pending {
		select {
		case <-ctx.Done():
			o.finishTask(task, nil, ctx.Err())
			o.notify(total, task)
			continue
		case slots <- struct{}{}:
		}

		// select picks at random when a slot frees up after cancellation
		if err := ctx.Err(); err != nil {
			<-slots
			o.finishTask(task, nil, err)
			o.notify(total, task)
			continue
		}

		wg.Add(1)
		go func(task *Task) {
			defer wg.Done()
			defer func() { <-slots }()
			o.executeTask(ctx, task)
			o.notify(total, task)
		}(task)
	}

	wg.Wait()

	results := make([]*models.FileResult, 0, total)
	o.tasksMutex.RLock()
	for _, task := range pending {
		results = append(results, task.Result)
	}
	o.tasksMutex.RUnlock()

	return results
}

// executeTask runs a single task
func (o *Orchestrator) executeTask(ctx context.Context, task *Task) {
	o.tasksMutex.Lock()
	task.Status = TaskRunning
	task.StartTime = time.Now()
	o.tasksMutex.Unlock()

	result := task.Run(ctx)
	o.finishTask(task, result, nil)
}

// finishTask records the outcome of a task. A nil result with a nil error
// is recorded as a failure.
func (o *Orchestrator) finishTask(task *Task, result *models.FileResult, err error) {
	if result == nil {
		if err == nil {
			err = fmt.Errorf("task %s returned no result", task.ID)
		}
		result, _ = models.NewFileResultFailure(task.ID, err)
	}

	o.tasksMutex.Lock()
	defer o.tasksMutex.Unlock()

	task.EndTime = time.Now()
	if task.StartTime.IsZero() {
		task.StartTime = task.EndTime
	}
	task.Result = result

	if result.Success {
		task.Status = TaskCompleted
		task.Error = nil
	} else {
		task.Status = TaskFailed
		task.Error = result.Error
	}
}

// notify reports a finished task to the progress callback
func (o *Orchestrator) notify(total int, task *Task) {
	o.progressMutex.Lock()
	defer o.progressMutex.Unlock()

	o.completed++
	if o.onProgress != nil {
		o.onProgress(o.completed, total, task)
	}
}

// GetTaskStatus returns the status of a task
func (o *Orchestrator) GetTaskStatus(taskID string) (TaskStatus, error) {
	o.tasksMutex.RLock()
	defer o.tasksMutex.RUnlock()

	task, exists := o.tasks[taskID]
	if !exists {
		return TaskPending, fmt.Errorf("task %s not found", taskID)
	}

	return task.Status, nil
}

// GetStats returns execution statistics
func (o *Orchestrator) GetStats() map[string]int {
	o.tasksMutex.RLock()
	defer o.tasksMutex.RUnlock()

	stats := map[string]int{
		"total":     len(o.tasks),
		"pending":   0,
		"running":   0,
		"completed": 0,
		"failed":    0,
	}

	for _, task := range o.tasks {
		stats[task.Status.String()]++
	}

	return stats
}
