package gate

// Result is the outcome of one executed step.
//
// Err is nil when the step passed. A non-nil Err covers every failure kind
// the gate recognizes, which is exactly one: the step did not succeed,
// whether it exited non-zero, died abnormally, or could not be started at
// all. The error text surfaces in the run summary; nothing else about the
// step (output, timing) is retained.
type Result struct {
	Step Step
	Err  error
}

// Passed reports whether the step succeeded.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Report is the aggregate outcome of a gate run.
type Report struct {
	// Results holds one entry per attempted step, in execution order.
	Results []Result
}

// Failed reports whether any step failed. Once any step fails the run is
// failed; later successes cannot clear it.
func (r Report) Failed() bool {
	for _, res := range r.Results {
		if !res.Passed() {
			return true
		}
	}
	return false
}

// FailureCount returns the number of failed steps.
func (r Report) FailureCount() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed() {
			n++
		}
	}
	return n
}

// ExitCode converts the aggregate outcome into the process exit code
// contract: 0 when every step passed, 1 when at least one failed. The value
// stays 1 no matter how many steps failed.
func (r Report) ExitCode() int {
	if r.Failed() {
		return 1
	}
	return 0
}
