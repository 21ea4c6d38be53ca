package cleanup

import (
	"log/slog"
	"sync"
)

type Job struct {
	Name string
	F    func() error
}

var (
	mu   sync.Mutex
	jobs []*Job
)

func Register(j *Job) {
	mu.Lock()
	defer mu.Unlock()
	jobs = append(jobs, j)
}

// CleanUp runs registered jobs in reverse registration order and forgets them.
func CleanUp() {
	mu.Lock()
	pending := jobs
	jobs = nil
	mu.Unlock()
	for i := len(pending) - 1; i >= 0; i-- {
		j := pending[i]
		logger := slog.Default().With(slog.String("job", j.Name))
		logger.Info("cleanup job started")
		if err := j.F(); err != nil {
			logger.Error("cleanup job failed", slog.String("error", err.Error()))
			continue
		}
		logger.Info("cleaned")
	}
}
