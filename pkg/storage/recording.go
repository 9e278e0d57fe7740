package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Recording metadata, stored next to the video file.
type Recording struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`

	FPS        float64 `json:"fps"`
	FrameCount int     `json:"frameCount"` // As reported by the producer.

	// Probed from the stored container.
	FramesProbed int    `json:"framesProbed"`
	Keyframes    int    `json:"keyframes"`
	Codec        string `json:"codec"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`

	// False if the frame rate fix failed and the raw bytes were kept.
	Fixed    bool   `json:"fixed"`
	FixError string `json:"fixError,omitempty"`

	Size int64 `json:"size"`
}

// Recording errors.
var (
	ErrInvalidRecordingID = errors.New("invalid recording id")
	ErrRecordingNotExist  = errors.New("recording does not exist")
)

// ValidateRecordingID rejects anything that could escape the
// recordings directory.
func ValidateRecordingID(id string) error {
	if id == "" {
		return ErrInvalidRecordingID
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidRecordingID, id)
		}
	}
	return nil
}

// SaveRecording writes the video and its metadata.
func (s *Manager) SaveRecording(rec Recording, video []byte) error {
	if err := ValidateRecordingID(rec.ID); err != nil {
		return err
	}
	rec.Size = int64(len(video))

	videoPath := filepath.Join(s.RecordingsDir(), rec.ID+".webm")
	if err := os.WriteFile(videoPath, video, 0o600); err != nil {
		return fmt.Errorf("write video: %w", err)
	}

	meta, _ := json.MarshalIndent(rec, "", "    ")
	metaPath := filepath.Join(s.RecordingsDir(), rec.ID+".json")
	if err := os.WriteFile(metaPath, meta, 0o600); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	return nil
}

// ListRecordings returns all stored recordings, newest first.
func (s *Manager) ListRecordings() ([]Recording, error) {
	files, err := os.ReadDir(s.RecordingsDir())
	if err != nil {
		return nil, fmt.Errorf("read recordings directory: %w", err)
	}

	var recordings []Recording
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}

		raw, err := os.ReadFile(filepath.Join(s.RecordingsDir(), file.Name()))
		if err != nil {
			return nil, err
		}

		var rec Recording
		if err := json.Unmarshal(raw, &rec); err != nil {
			s.logger.Warn().Src("storage").
				Msgf("skipping unreadable metadata %v: %v", file.Name(), err)
			continue
		}
		recordings = append(recordings, rec)
	}

	// IDs are time-prefixed, lexical order is temporal order.
	sort.Slice(recordings, func(i, j int) bool {
		return recordings[i].ID > recordings[j].ID
	})
	return recordings, nil
}

// QueryRecordings returns up to limit recordings older than before,
// newest first. An empty before starts from the newest.
func (s *Manager) QueryRecordings(limit int, before string) ([]Recording, error) {
	recordings, err := s.ListRecordings()
	if err != nil {
		return nil, err
	}

	if before != "" {
		for len(recordings) > 0 && recordings[0].ID >= before {
			recordings = recordings[1:]
		}
	}
	if limit > 0 && len(recordings) > limit {
		recordings = recordings[:limit]
	}
	return recordings, nil
}

// VideoPath returns the path of a recording's video file.
func (s *Manager) VideoPath(id string) (string, error) {
	if err := ValidateRecordingID(id); err != nil {
		return "", err
	}

	path := filepath.Join(s.RecordingsDir(), id+".webm")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %v", ErrRecordingNotExist, id)
		}
		return "", err
	}
	return path, nil
}

// DeleteRecording removes a recording's video and metadata.
func (s *Manager) DeleteRecording(id string) error {
	if err := ValidateRecordingID(id); err != nil {
		return err
	}

	videoPath := filepath.Join(s.RecordingsDir(), id+".webm")
	if _, err := os.Stat(videoPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %v", ErrRecordingNotExist, id)
		}
		return err
	}

	if err := os.Remove(videoPath); err != nil {
		return err
	}
	return os.Remove(filepath.Join(s.RecordingsDir(), id+".json"))
}
