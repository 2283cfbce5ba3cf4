package txmanager

import (
	"sync"

	"github.com/pkg/errors"
)

// StartStopOnce guards a service that may be started and stopped at most once.
type StartStopOnce struct {
	state StartStopOnceState
	sync.RWMutex
}

type StartStopOnceState int

const (
	StartStopOnce_Unstarted StartStopOnceState = iota
	StartStopOnce_Started
	StartStopOnce_Stopped
)

func (s StartStopOnceState) String() string {
	switch s {
	case StartStopOnce_Unstarted:
		return "unstarted"
	case StartStopOnce_Started:
		return "started"
	case StartStopOnce_Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// StartOnce runs fn if the service was never started. A failing fn leaves
// the service unstarted.
func (once *StartStopOnce) StartOnce(name string, fn func() error) error {
	return once.transition(name, StartStopOnce_Unstarted, StartStopOnce_Started, fn)
}

// StopOnce runs fn if the service is running.
func (once *StartStopOnce) StopOnce(name string, fn func() error) error {
	return once.transition(name, StartStopOnce_Started, StartStopOnce_Stopped, fn)
}

func (once *StartStopOnce) transition(name string, from, to StartStopOnceState, fn func() error) error {
	once.Lock()
	defer once.Unlock()

	if once.state != from {
		return errors.Errorf("%s cannot become %s, it is %s", name, to, once.state)
	}
	if err := fn(); err != nil {
		return err
	}
	once.state = to
	return nil
}

func (once *StartStopOnce) State() StartStopOnceState {
	once.RLock()
	defer once.RUnlock()
	return once.state
}

// WrapIfError decorates a named error return from a deferred call:
//
//	defer WrapIfError(&err, "resolving tx %s", hash)
func WrapIfError(err *error, format string, args ...interface{}) {
	if *err != nil {
		*err = errors.Wrapf(*err, format, args...)
	}
}
