// Package capture receives chunked WebM streams and turns them into
// stored recordings with a fixed frame rate.
package capture

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/conundrumer/canvas-recorder/pkg/log"
	"github.com/conundrumer/canvas-recorder/pkg/storage"
	"github.com/conundrumer/canvas-recorder/pkg/webm"
)

// Session errors.
var (
	ErrSessionExist    = errors.New("session already exists")
	ErrSessionClosed   = errors.New("session is closed")
	ErrSessionTooLarge = errors.New("session exceeds size limit")
	ErrInvalidFPS      = errors.New("fps must be between 1 and 1000")
	ErrEmptySession    = errors.New("session has no data")
)

const (
	maxSessionBytes = 512 * 1000 * 1000
	maxFPS          = 1000
)

// Manager keeps track of active capture sessions.
type Manager struct {
	storage *storage.Manager
	logger  *log.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager returns a new manager.
func NewManager(storage *storage.Manager, logger *log.Logger) *Manager {
	return &Manager{
		storage:  storage,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// Start creates a new session. A random time-prefixed ID is
// generated when id is empty.
func (m *Manager) Start(id string, fps float64) (*Session, error) {
	if fps <= 0 || fps > maxFPS {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFPS, fps)
	}

	startTime := time.Now().UTC()
	if id == "" {
		id = newSessionID(startTime)
	}
	if err := storage.ValidateRecordingID(id); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exist := m.sessions[id]; exist {
		return nil, fmt.Errorf("%w: %v", ErrSessionExist, id)
	}

	session := &Session{
		ID:        id,
		fps:       fps,
		startTime: startTime,
		lastWrite: startTime,
		manager:   m,
	}
	m.sessions[id] = session

	m.logger.Debug().Src("capture").Session(id).
		Msgf("session started, fps=%v", fps)

	return session, nil
}

func newSessionID(t time.Time) string {
	suffix := make([]byte, 4)
	rand.Read(suffix) //nolint:errcheck
	return t.Format("2006-01-02_15-04-05") + "_" + hex.EncodeToString(suffix)
}

// SessionCount returns the number of active sessions.
func (m *Manager) SessionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// ReapLoop aborts sessions that have been idle for longer than
// timeout. Runs until the context is canceled.
func (m *Manager) ReapLoop(ctx context.Context, timeout time.Duration) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(timeout / 2):
			m.reap(timeout)
		}
	}
}

func (m *Manager) reap(timeout time.Duration) {
	deadline := time.Now().Add(-timeout)

	m.mu.Lock()
	var idle []*Session
	for _, session := range m.sessions {
		session.mu.Lock()
		if session.lastWrite.Before(deadline) {
			idle = append(idle, session)
		}
		session.mu.Unlock()
	}
	m.mu.Unlock()

	for _, session := range idle {
		m.logger.Warn().Src("capture").Session(session.ID).
			Msg("aborting idle session")
		session.Abort()
	}
}

// Session is a single in-progress capture.
type Session struct {
	ID string

	fps       float64
	startTime time.Time
	manager   *Manager

	mu        sync.Mutex
	chunks    [][]byte
	size      int
	lastWrite time.Time
	closed    bool
}

// Append adds a chunk of container bytes to the session.
func (s *Session) Append(chunk []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if s.size+len(chunk) > maxSessionBytes {
		return fmt.Errorf("%w: %v", ErrSessionTooLarge, s.ID)
	}

	s.chunks = append(s.chunks, bytes.Clone(chunk))
	s.size += len(chunk)
	s.lastWrite = time.Now()
	return nil
}

// Abort discards the session without storing anything.
func (s *Session) Abort() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.chunks = nil
	s.mu.Unlock()

	s.manager.remove(s.ID)
}

// Finish rewrites the captured stream to a fixed frame rate and
// stores it. The raw bytes are stored unmodified if the rewrite
// fails, a capture is better than no capture.
func (s *Session) Finish(frameCount int) (*storage.Recording, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrSessionClosed
	}
	s.closed = true
	chunks := s.chunks
	s.chunks = nil
	s.mu.Unlock()

	s.manager.remove(s.ID)

	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrEmptySession, s.ID)
	}
	raw := bytes.Join(chunks, nil)

	logger := s.manager.logger

	rec := storage.Recording{
		ID:         s.ID,
		StartTime:  s.startTime,
		FPS:        s.fps,
		FrameCount: frameCount,
		Fixed:      true,
	}

	video, err := webm.FixFrameRate(raw, s.fps, frameCount)
	if err != nil {
		logger.Warn().Src("capture").Session(s.ID).
			Msgf("could not fix frame rate, storing raw stream: %v", err)
		video = raw
		rec.Fixed = false
		rec.FixError = err.Error()
	}

	info, err := webm.Probe(video)
	if err != nil {
		logger.Warn().Src("capture").Session(s.ID).
			Msgf("could not probe stream: %v", err)
	} else {
		rec.FramesProbed = info.Frames
		rec.Keyframes = info.Keyframes
		rec.Codec = info.CodecID
		rec.Width = info.Width
		rec.Height = info.Height

		if info.Frames != frameCount {
			logger.Warn().Src("capture").Session(s.ID).
				Msgf("reported frame count %v does not match stream %v",
					frameCount, info.Frames)
		}
	}

	rec.Size = int64(len(video))
	if err := s.manager.storage.SaveRecording(rec, video); err != nil {
		return nil, fmt.Errorf("save recording: %w", err)
	}

	logger.Info().Src("capture").Session(s.ID).
		Msgf("stored recording, %v frames", rec.FramesProbed)

	return &rec, nil
}
