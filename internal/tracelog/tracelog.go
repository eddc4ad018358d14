// Package tracelog renders a boxx evaluation's step-by-step reductions
// as a JSON document: one run, identified by a correlation ID, holding
// an array of per-step term snapshots appended incrementally.
package tracelog

import (
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/mpgarate/boxx/internal/ast"
)

// Recorder accumulates a step trace as JSON text, appending one entry
// per observed reduction via its TraceFunc-shaped Record method.
type Recorder struct {
	runID string
	doc   string
}

// NewRecorder starts a trace document with a fresh run correlation ID.
func NewRecorder() *Recorder {
	doc, _ := sjson.Set("{}", "run_id", uuid.NewString())
	return &Recorder{runID: gjson.Get(doc, "run_id").String(), doc: doc}
}

// RunID reports the correlation ID assigned to this trace.
func (r *Recorder) RunID() string { return r.runID }

// Record appends one step's term rendering to the trace document. Its
// signature matches interp.TraceFunc.
func (r *Recorder) Record(i int, term ast.Expr) {
	path := "steps.-1"
	doc, err := sjson.Set(r.doc, path, map[string]any{
		"i":    i,
		"term": term.String(),
	})
	if err != nil {
		return
	}
	r.doc = doc
}

// JSON returns the accumulated trace document.
func (r *Recorder) JSON() string { return r.doc }

// StepCount reports how many steps have been recorded so far.
func (r *Recorder) StepCount() int {
	return len(gjson.Get(r.doc, "steps").Array())
}
