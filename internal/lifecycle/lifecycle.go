// Package lifecycle implements the reference-counted init/finalize contract
// the solver API requires before any other call: Init increments, Finish
// decrements, and the package only considers itself uninitialized once the
// count returns to zero. Mirrors original_source/src/csp.c's counter, with
// the printf edge-triggered logging translated to structured logrus calls.
package lifecycle

import (
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

var counter atomic.Int64

// Init increments the reference count and reports whether the library is
// now (or remains) initialized. Always returns true: unlike the C original,
// nothing here can fail short of an int64 overflow.
func Init() bool {
	if counter.Add(1) == 1 {
		log.Debug("csp: library initialised")
	}
	return true
}

// Finish decrements the reference count. Returns false if the library was
// not initialized — there is nothing to finish.
func Finish() bool {
	for {
		cur := counter.Load()
		if cur <= 0 {
			return false
		}
		if counter.CompareAndSwap(cur, cur-1) {
			if cur-1 == 0 {
				log.Debug("csp: library finished")
			}
			return true
		}
	}
}

// Initialised reports whether the library's reference count is above zero.
func Initialised() bool {
	return counter.Load() > 0
}
