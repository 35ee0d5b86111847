package exec

import (
	"context"
	"sync"
)

// RecordedCall captures one invocation made through a RecordingRunner.
type RecordedCall struct {
	Name string
	Args []string
	Opts RunOpts
}

// RecordingRunner is a CommandRunner fake that records invocations instead of
// executing them. Results are returned in FIFO order from the queued stubs;
// when the queue is empty a zero-exit result is returned.
type RecordingRunner struct {
	mu      sync.Mutex
	calls   []RecordedCall
	results []stubResult
}

type stubResult struct {
	result CmdResult
	err    error
}

// NewRecordingRunner creates an empty RecordingRunner.
func NewRecordingRunner() *RecordingRunner {
	return &RecordingRunner{}
}

// Stub queues a result to return from the next Run call.
func (r *RecordingRunner) Stub(result CmdResult, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, stubResult{result: result, err: err})
}

// Run records the call and returns the next queued stub.
func (r *RecordingRunner) Run(_ context.Context, name string, args []string, opts RunOpts) (CmdResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, RecordedCall{Name: name, Args: args, Opts: opts})

	if len(r.results) == 0 {
		return CmdResult{ExitCode: 0}, nil
	}

	next := r.results[0]
	r.results = r.results[1:]
	return next.result, next.err
}

// Calls returns a copy of the recorded invocations.
func (r *RecordingRunner) Calls() []RecordedCall {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]RecordedCall, len(r.calls))
	copy(out, r.calls)
	return out
}
