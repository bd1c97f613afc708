package framework

import (
	"errors"
	"sync"
)

// Recorder is the host's result-recording hook. A test engine calls Record exactly once for
// every test it is asked to run.
type Recorder interface {
	Record(result TestResult)
}

// RecorderFunc adapts an ordinary function to the Recorder interface.
type RecorderFunc func(result TestResult)

func (f RecorderFunc) Record(result TestResult) {
	f(result)
}

var errNotRecorded = errors.New("test run finished without recording a result")

// onceRecorder forwards the first result it receives and counts the rest, so that the host
// can detect an engine that records zero or several outcomes for one test.
type onceRecorder struct {
	target Recorder
	count  int
	lock   sync.Mutex
}

func (r *onceRecorder) Record(result TestResult) {
	r.lock.Lock()
	r.count++
	first := r.count == 1
	r.lock.Unlock()
	if first {
		r.target.Record(result)
	}
}

func (r *onceRecorder) timesRecorded() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.count
}
