// Package recording captures the primitives a cmdchain chain records.
//
// A Recorder implements cmdchain.Recorder by storing every primitive as a
// typed command struct instead of sending it to a GPU. The resulting
// Recording can be printed, compared with another Recording, or replayed
// into any other cmdchain.Recorder.
//
// # Basic Usage
//
//	rec := recording.NewRecorder()
//	if err := chain.Build(rec); err != nil {
//	    return err
//	}
//	r := rec.Finish()
//
//	for _, cmd := range r.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//
//	// Replay into a HAL compute pass
//	err := r.Playback(pass)
//
// # Fault Injection
//
// WithFailure makes one primitive fail, which is how tests exercise the
// error path of a recording pass:
//
//	rec := recording.NewRecorder(recording.WithFailure(2, nil))
//	err := chain.Build(rec) // fails on the third primitive
//
// # Targets
//
// Recorder factories are registered by name, following the database/sql
// driver pattern. The "trace" target is always available:
//
//	rec, err := recording.NewTarget("trace")
package recording
