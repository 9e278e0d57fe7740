// Package log provides the application logger and its bbolt-backed store.
package log

// API inspired by zerolog https://github.com/rs/zerolog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Level defines log level.
type Level uint8

// Logging levels.
const (
	LevelError   Level = 16
	LevelWarning Level = 24
	LevelInfo    Level = 32
	LevelDebug   Level = 48
)

// UnixMillisecond .
type UnixMillisecond uint64

// Entry defines a log entry.
type Entry struct {
	Level   Level           `json:"level"`
	Time    UnixMillisecond `json:"time"`
	Msg     string          `json:"msg"`
	Src     string          `json:"src"`
	Session string          `json:"session"` // Source capture session id.
}

// Event is a log entry under construction.
type Event struct {
	level   Level
	time    UnixMillisecond
	src     string
	session string

	logger *Logger
}

// Src sets event source.
func (e *Event) Src(source string) *Event {
	e.src = source
	return e
}

// Session sets the source capture session.
func (e *Event) Session(id string) *Event {
	e.session = id
	return e
}

// Time sets event time.
func (e *Event) Time(t time.Time) *Event {
	e.time = UnixMillisecond(t.UnixMilli())
	return e
}

// Msg sends the *Event with msg added as the message field.
func (e *Event) Msg(msg string) {
	e.logger.feed <- Entry{
		Level:   e.level,
		Time:    e.time,
		Msg:     msg,
		Src:     e.src,
		Session: e.session,
	}
}

// Msgf sends the event with formatted msg added as the message field.
func (e *Event) Msgf(format string, v ...interface{}) {
	e.Msg(fmt.Sprintf(format, v...))
}

type entryFeed chan Entry

// Logger fans log entries out to subscribers.
type Logger struct {
	feed  entryFeed      // feed of log entries.
	sub   chan entryFeed // subscribe requests.
	unsub chan entryFeed // unsubscribe requests.

	wg *sync.WaitGroup

	// Ctx is canceled when the logger stops, subscribers use it to
	// avoid blocking on a dead feed.
	Ctx context.Context
}

// NewLogger returns a logger. Start must be called before any event is sent.
func NewLogger(wg *sync.WaitGroup) *Logger {
	return &Logger{
		feed:  make(entryFeed),
		sub:   make(chan entryFeed),
		unsub: make(chan entryFeed),
		wg:    wg,
	}
}

// NewMockLogger used for testing.
func NewMockLogger() *Logger {
	logger := NewLogger(&sync.WaitGroup{})
	logger.Ctx = context.Background()
	return logger
}

// Start the fan-out loop.
func (l *Logger) Start(ctx context.Context) error {
	l.Ctx = ctx

	l.wg.Add(1)
	go func() {
		subs := map[entryFeed]struct{}{}
		for {
			select {
			case <-ctx.Done():
				l.wg.Done()
				return

			case ch := <-l.sub:
				subs[ch] = struct{}{}

			case ch := <-l.unsub:
				close(ch)
				delete(subs, ch)

			case entry := <-l.feed:
				for ch := range subs {
					ch <- entry
				}
			}
		}
	}()
	return nil
}

// CancelFunc cancels log feed subscription.
type CancelFunc func()

// Subscribe returns a new chan with the log feed and a CancelFunc.
func (l *Logger) Subscribe() (<-chan Entry, CancelFunc) {
	feed := make(entryFeed)
	l.sub <- feed

	cancel := func() {
		l.unSubscribe(feed)
	}
	return feed, cancel
}

func (l *Logger) unSubscribe(feed entryFeed) {
	// Read feed until the unsub request is accepted.
	for {
		select {
		case l.unsub <- feed:
			return
		case <-feed:
		}
	}
}

// LogToStdout prints the log feed to stdout until ctx is canceled.
func (l *Logger) LogToStdout(ctx context.Context) {
	feed, cancel := l.Subscribe()
	defer cancel()
	for {
		select {
		case entry := <-feed:
			printEntry(entry)
		case <-ctx.Done():
			return
		}
	}
}

func printEntry(entry Entry) {
	var b strings.Builder

	switch entry.Level {
	case LevelError:
		b.WriteString("[ERROR] ")
	case LevelWarning:
		b.WriteString("[WARNING] ")
	case LevelInfo:
		b.WriteString("[INFO] ")
	case LevelDebug:
		b.WriteString("[DEBUG] ")
	}

	if entry.Session != "" {
		b.WriteString(entry.Session + ": ")
	}
	if entry.Src != "" {
		b.WriteString(entry.Src + ": ")
	}

	b.WriteString(entry.Msg)
	fmt.Println(b.String())
}

// Error starts a new message with error level.
// You must call Msg on the returned event in order to send the event.
func (l *Logger) Error() *Event {
	return l.event(LevelError)
}

// Warn starts a new message with warn level.
// You must call Msg on the returned event in order to send the event.
func (l *Logger) Warn() *Event {
	return l.event(LevelWarning)
}

// Info starts a new message with info level.
// You must call Msg on the returned event in order to send the event.
func (l *Logger) Info() *Event {
	return l.event(LevelInfo)
}

// Debug starts a new message with debug level.
// You must call Msg on the returned event in order to send the event.
func (l *Logger) Debug() *Event {
	return l.event(LevelDebug)
}

func (l *Logger) event(level Level) *Event {
	return &Event{
		level:  level,
		time:   UnixMillisecond(time.Now().UnixMilli()),
		logger: l,
	}
}
