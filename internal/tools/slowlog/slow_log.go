package slowlog

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Logger interface {
	Start(name string)
	Stop(name string) time.Duration
}

type slowLogger struct {
	log       *zerolog.Logger
	threshold time.Duration
	started   map[string]time.Time
	sync.Mutex
}

// CreateLogger returns a breakpoint timer. Every Stop logs the measured
// duration at debug level; once it reaches threshold the line goes out at
// warn level instead. A zero threshold keeps everything at debug.
func CreateLogger(log *zerolog.Logger, threshold time.Duration) *slowLogger {
	logger := log.With().Str("label", "slowlog").Logger()

	return &slowLogger{
		log:       &logger,
		threshold: threshold,
		started:   make(map[string]time.Time),
	}
}

func (s *slowLogger) Start(name string) {
	s.Lock()
	s.started[name] = time.Now()
	s.Unlock()
}

func (s *slowLogger) Stop(name string) time.Duration {
	s.Lock()
	start := s.started[name]
	delete(s.started, name)
	s.Unlock()

	duration := time.Since(start)

	event := s.log.Debug()
	if s.threshold > 0 && duration >= s.threshold {
		event = s.log.Warn()
	}

	event.
		Float64("duration", duration.Seconds()).
		Str("breakpoint_name", name).
		Msg("")

	return duration
}
