package selftest

import (
	"fmt"
	"strings"

	"git.fractalqb.de/fractalqb/icontainer/islist"
)

// Entry is the result of one unit.
type Entry struct {
	Unit    string
	OK      bool
	Details string
}

func (e Entry) String() string {
	if e.OK {
		return e.Unit + "\n\tSuccess."
	}
	return e.Unit + "\n\tFailure: " + e.Details
}

// Log records the entries of a run in the order the units were run.
type Log struct {
	Entries []Entry
}

func (l *Log) Success(unit string) {
	l.Entries = append(l.Entries, Entry{Unit: unit, OK: true})
}

func (l *Log) Failure(unit, details string) {
	l.Entries = append(l.Entries, Entry{Unit: unit, Details: details})
}

func (l *Log) Failed() (n int) {
	for _, e := range l.Entries {
		if !e.OK {
			n++
		}
	}
	return n
}

func (l *Log) String() string {
	var sb strings.Builder
	for _, e := range l.Entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FailureCount is returned by Runner.Run if units failed.
type FailureCount int

func (fc FailureCount) Error() string {
	return fmt.Sprintf("%d failed units", fc)
}

// FailureFunc is called for each failed unit.
type FailureFunc func(e Entry) (abort bool)

// Runner runs units. A zero value is valid for use and can be reused.
type Runner struct {
	// Specifies the number of failed units after which the run is aborted.
	// If FailLimit == 0, do not abort.
	FailLimit int
	// OnFailure is called on each failed unit
	OnFailure FailureFunc
	// A failed unit is queued again behind the remaining units up to Retries
	// times before its failure is logged.
	Retries int
}

// Run runs units in the given order and logs one entry per unit that was
// run. A unit that is retried is logged when it succeeds or has no retries
// left. The returned error is a FailureCount if any unit failed.
func (r Runner) Run(units []Unit) (*Log, error) {
	log := new(Log)
	if len(units) == 0 {
		return log, nil
	}
	queue := islist.New(&queued{unit: units[0]})
	for _, u := range units[1:] {
		queue.PushBack(&queued{unit: u})
	}
	fails := 0
	for queue.Len() > 0 {
		q := queue.Front().(*queued)
		queue.Drop(1)
		c := new(Check)
		runUnit(q.unit, c)
		if !c.Failed() {
			log.Success(q.unit.Name)
			continue
		}
		if q.attempt < r.Retries {
			queue.PushBack(&queued{unit: q.unit, attempt: q.attempt + 1})
			continue
		}
		log.Failure(q.unit.Name, c.details())
		fails++
		if r.OnFailure != nil && r.OnFailure(log.Entries[len(log.Entries)-1]) {
			break
		}
		if r.FailLimit > 0 && fails >= r.FailLimit {
			break
		}
	}
	if fails > 0 {
		return log, FailureCount(fails)
	}
	return log, nil
}

func runUnit(u Unit, c *Check) {
	defer func() {
		if p := recover(); p != nil {
			c.Errorf("panic: %v", p)
		}
	}()
	u.Run(c)
}

type queued struct {
	unit    Unit
	attempt int
	next    *queued
}

// ListNext to implement intrusive singly linked list
func (q *queued) ListNext() islist.Node {
	if q.next == nil {
		return nil
	}
	return q.next
}

// SetListNext to implement intrusive singly linked list
func (q *queued) SetListNext(n islist.Node) {
	if n == nil {
		q.next = nil
	} else {
		q.next = n.(*queued)
	}
}
