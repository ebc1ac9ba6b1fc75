package framework

// Reporter receives the lifecycle events of a test run and turns them into output.
//
// For each unit, StartTest is called once, followed by zero or more calls to Failure,
// followed by exactly one call to EndTest. A Reporter is used by one unit at a time.
// Close writes any trailing output and must be called once after the run.
type Reporter interface {
	StartTest(id TestID)
	EndTest(passed bool)
	Failure(f Failure)
	FailureCount() int
	Close() error
}

// NullReporter produces no output; it only counts failures.
type NullReporter struct {
	failures int
}

func (r *NullReporter) StartTest(TestID) {}

func (r *NullReporter) EndTest(bool) {}

func (r *NullReporter) Failure(Failure) {
	r.failures++
}

func (r *NullReporter) FailureCount() int {
	return r.failures
}

func (r *NullReporter) Close() error {
	return nil
}

type multiReporter struct {
	primary Reporter
	all     []Reporter
}

// MultiReporter returns a Reporter that passes every event to all of the specified reporters.
// Its failure count is that of the primary reporter.
func MultiReporter(primary Reporter, others ...Reporter) Reporter {
	return &multiReporter{
		primary: primary,
		all:     append([]Reporter{primary}, others...),
	}
}

func (m *multiReporter) StartTest(id TestID) {
	for _, r := range m.all {
		r.StartTest(id)
	}
}

func (m *multiReporter) EndTest(passed bool) {
	for _, r := range m.all {
		r.EndTest(passed)
	}
}

func (m *multiReporter) Failure(f Failure) {
	for _, r := range m.all {
		r.Failure(f)
	}
}

func (m *multiReporter) FailureCount() int {
	return m.primary.FailureCount()
}

// Close closes every reporter and returns the first error encountered.
func (m *multiReporter) Close() error {
	var firstErr error
	for _, r := range m.all {
		if err := r.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
