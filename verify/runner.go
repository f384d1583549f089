package verify

import (
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Runner executes independent trials on a goroutine pool. Trials must not
// share slices; every sort still runs on a single goroutine.
type Runner struct {
	workers int
	logger  logrus.FieldLogger
}

type Option func(*Runner)

func WithWorkers(n int) Option { return func(r *Runner) { r.workers = n } }

func WithLogger(l logrus.FieldLogger) Option { return func(r *Runner) { r.logger = l } }

func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		workers: runtime.GOMAXPROCS(0),
		logger:  logrus.StandardLogger(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run calls trial for 0..n-1 and returns the error of the lowest-numbered
// failing trial. Every trial runs even after a failure.
func (r *Runner) Run(n int, trial func(i int) error) error {
	pool, err := ants.NewPool(max(r.workers, 1))
	if err != nil {
		return errors.Wrap(err, "verify: create pool")
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failed   int
		first    = -1
		firstErr error
	)
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			if err := trial(i); err != nil {
				r.logger.WithError(err).WithField("trial", i).Warn("trial failed")
				mu.Lock()
				failed++
				if first < 0 || i < first {
					first, firstErr = i, err
				}
				mu.Unlock()
			}
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return errors.Wrapf(err, "verify: submit trial %d", i)
		}
	}
	wg.Wait()

	r.logger.WithFields(logrus.Fields{"trials": n, "failed": failed}).Debug("trials finished")
	if firstErr != nil {
		return errors.Wrapf(firstErr, "trial %d", first)
	}
	return nil
}
