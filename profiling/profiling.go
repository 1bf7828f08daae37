// Package profiling provides an optional pprof-compatible sampling
// session a caller wraps around its own step loop. It is pure ambient
// tooling: physics never imports it, and a Session records nothing
// unless RecordStep is called explicitly from outside Step.
package profiling

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/google/pprof/profile"

	"github.com/determinisk/kernel/logger"
)

// Option configures a Session.
type Option func(*Session)

// WithPath controls the profile destination file. If blank, the
// profile is collected in memory but never written to disk.
//
// Defaults to ./determinisk.pprof.
func WithPath(path string) Option {
	return func(s *Session) { s.filePath = path }
}

// WithNoOutput is equivalent to WithPath("").
func WithNoOutput() Option {
	return func(s *Session) { s.filePath = "" }
}

// Session is an active step-profiling session. It is not safe for
// concurrent use from multiple goroutines — callers that step several
// worlds concurrently (see package batch) should run one Session per
// goroutine.
type Session struct {
	filePath string

	mu        sync.Mutex
	pprof     profile.Profile
	functions map[string]*profile.Function
	locations map[uintptr]*profile.Location
}

// Start begins a new profiling session.
func Start(options ...Option) *Session {
	s := &Session{
		filePath:  filepath.Join(".", "determinisk.pprof"),
		functions: make(map[string]*profile.Function),
		locations: make(map[uintptr]*profile.Location),
	}
	s.pprof.SampleType = []*profile.ValueType{{Type: "steps", Unit: "count"}}

	for _, opt := range options {
		opt(s)
	}

	log := logger.Logger()
	if s.filePath == "" {
		log.Warn().Msg("profiling enabled [not writing to disk]")
	} else {
		log.Info().Str("path", s.filePath).Msg("profiling enabled")
	}
	return s
}

// RecordStep adds one sample attributed to the caller's call stack.
// A caller typically invokes this immediately after World.DoStep, so
// samples attribute time to "who called Step", not to Step's own
// internals (which never call back out).
func (s *Session) RecordStep() {
	pc := make([]uintptr, 32)
	n := runtime.Callers(2, pc)
	if n == 0 {
		return
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	var locs []*profile.Location

	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		frame, more := frames.Next()
		locs = append(locs, s.location(frame))
		if !more {
			break
		}
	}

	s.pprof.Sample = append(s.pprof.Sample, &profile.Sample{
		Location: locs,
		Value:    []int64{1},
	})
}

func (s *Session) location(frame runtime.Frame) *profile.Location {
	if l, ok := s.locations[frame.PC]; ok {
		return l
	}
	key := frame.File + frame.Function
	f, ok := s.functions[key]
	if !ok {
		parts := strings.Split(frame.Function, "/")
		f = &profile.Function{
			ID:         uint64(len(s.functions) + 1),
			Name:       parts[len(parts)-1],
			SystemName: frame.Function,
			Filename:   frame.File,
		}
		s.functions[key] = f
		s.pprof.Function = append(s.pprof.Function, f)
	}
	l := &profile.Location{
		ID:   uint64(len(s.locations) + 1),
		Line: []profile.Line{{Function: f, Line: int64(frame.Line)}},
	}
	s.locations[frame.PC] = l
	s.pprof.Location = append(s.pprof.Location, l)
	return l
}

// NbSteps returns the number of step samples collected so far.
func (s *Session) NbSteps() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pprof.Sample)
}

// Stop finalizes the session and, unless WithNoOutput/WithPath("")
// was used, writes it to disk in pprof format.
func (s *Session) Stop() error {
	log := logger.Logger()
	if s.filePath == "" {
		log.Warn().Msg("profiling disabled [not writing to disk]")
		return nil
	}

	f, err := os.Create(s.filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.pprof.Write(f); err != nil {
		return err
	}
	log.Info().Str("path", s.filePath).Msg("profiling disabled")
	return nil
}
