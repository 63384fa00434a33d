package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Sink is the text sink players and the round driver narrate through. A disabled
// (or nil) Sink silently drops everything, which keeps bulk training quiet and cheap.
type Sink struct {
	logger  zerolog.Logger
	enabled bool
}

// New returns an enabled sink writing plain lines to w.
func New(w io.Writer) *Sink {
	s := &Sink{}
	s.Enable(w)
	return s
}

// Disabled returns a sink that drops all output until Enable is called.
func Disabled() *Sink {
	return &Sink{logger: zerolog.Nop()}
}

// Enable (re)directs the sink to w.
func (s *Sink) Enable(w io.Writer) {
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.MessageFieldName},
		FormatMessage: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return fmt.Sprint(i)
		},
	}
	s.logger = zerolog.New(console)
	s.enabled = true
}

func (s *Sink) Disable() {
	s.logger = zerolog.Nop()
	s.enabled = false
}

func (s *Sink) Enabled() bool {
	return s != nil && s.enabled
}

// Printf writes one line.
func (s *Sink) Printf(format string, args ...any) {
	if !s.Enabled() {
		return
	}
	s.logger.Log().Msgf(format, args...)
}

// Board writes a title line followed by the rendered board.
func (s *Sink) Board(title string, b fmt.Stringer) {
	if !s.Enabled() {
		return
	}
	for _, line := range strings.Split(strings.TrimRight(title+"\n"+b.String(), "\n"), "\n") {
		s.logger.Log().Msg(line)
	}
}
