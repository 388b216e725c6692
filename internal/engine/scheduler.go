package engine

import (
	"sync"
	"time"
)

// Scheduler runs each registered job on its own ticker goroutine until Stop.
// Jobs are independent: a slow job never delays another one.
type Scheduler struct {
	jobs []job

	done      chan struct{}
	wg        sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once
}

type job struct {
	name   string
	period time.Duration
	fn     func()
}

// NewScheduler creates an idle scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{done: make(chan struct{})}
}

// Every registers fn to run once per period. Must be called before Start.
// Jobs with a non-positive period are ignored.
func (s *Scheduler) Every(name string, period time.Duration, fn func()) {
	if period <= 0 {
		return
	}
	s.jobs = append(s.jobs, job{name: name, period: period, fn: fn})
}

// Jobs returns the names of the registered jobs.
func (s *Scheduler) Jobs() []string {
	names := make([]string, len(s.jobs))
	for i, j := range s.jobs {
		names[i] = j.name
	}
	return names
}

// Start launches one goroutine per job. Calling it again has no effect.
func (s *Scheduler) Start() {
	s.startOnce.Do(func() {
		for _, j := range s.jobs {
			s.wg.Add(1)
			go s.run(j)
		}
	})
}

// Stop signals every job to finish and waits for them. Safe to call more
// than once, and before Start.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
	s.wg.Wait()
}

func (s *Scheduler) run(j job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.fn()
		case <-s.done:
			return
		}
	}
}
