package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidateRecordingID(t *testing.T) {
	cases := []struct {
		id string
		ok bool
	}{
		{"2026-01-01_00-00-00_abcdef", true},
		{"abc123", true},
		{"", false},
		{"a.webm", false},
		{"../escape", false},
		{"a/b", false},
		{"UPPER", false},
	}

	for _, tc := range cases {
		t.Run(tc.id, func(t *testing.T) {
			err := ValidateRecordingID(tc.id)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidRecordingID)
			}
		})
	}
}

func TestSaveRecording(t *testing.T) {
	s := newTestManager(t, 1)

	rec := Recording{
		ID:           "2026-01-01_00-00-00_abcdef",
		StartTime:    time.Unix(1000, 0).UTC(),
		FPS:          60,
		FrameCount:   10,
		FramesProbed: 10,
		Keyframes:    1,
		Codec:        "V_VP9",
		Width:        640,
		Height:       480,
		Fixed:        true,
	}
	video := []byte{1, 2, 3}

	err := s.SaveRecording(rec, video)
	require.NoError(t, err)

	videoPath, err := s.VideoPath(rec.ID)
	require.NoError(t, err)

	stored, err := os.ReadFile(videoPath)
	require.NoError(t, err)
	require.Equal(t, video, stored)

	recordings, err := s.ListRecordings()
	require.NoError(t, err)
	require.Len(t, recordings, 1)

	rec.Size = 3
	require.Equal(t, rec, recordings[0])
}

func TestSaveRecordingInvalidID(t *testing.T) {
	s := newTestManager(t, 1)

	err := s.SaveRecording(Recording{ID: "../x"}, nil)
	require.ErrorIs(t, err, ErrInvalidRecordingID)
}

func TestListRecordings(t *testing.T) {
	s := newTestManager(t, 1)

	ids := []string{
		"2026-01-01_00-00-00_a",
		"2026-01-01_00-00-02_c",
		"2026-01-01_00-00-01_b",
	}
	for _, id := range ids {
		err := s.SaveRecording(Recording{ID: id}, nil)
		require.NoError(t, err)
	}

	// Unreadable metadata is skipped.
	err := os.WriteFile(
		filepath.Join(s.RecordingsDir(), "2026-01-01_00-00-03_d.json"),
		[]byte("{"), 0o600)
	require.NoError(t, err)

	recordings, err := s.ListRecordings()
	require.NoError(t, err)

	var actual []string
	for _, rec := range recordings {
		actual = append(actual, rec.ID)
	}
	require.Equal(t, []string{
		"2026-01-01_00-00-02_c",
		"2026-01-01_00-00-01_b",
		"2026-01-01_00-00-00_a",
	}, actual)
}

func TestQueryRecordings(t *testing.T) {
	s := newTestManager(t, 1)

	for _, id := range []string{"aa", "bb", "cc", "dd"} {
		err := s.SaveRecording(Recording{ID: id}, nil)
		require.NoError(t, err)
	}

	query := func(limit int, before string) []string {
		recordings, err := s.QueryRecordings(limit, before)
		require.NoError(t, err)

		var ids []string
		for _, rec := range recordings {
			ids = append(ids, rec.ID)
		}
		return ids
	}

	require.Equal(t, []string{"dd", "cc", "bb", "aa"}, query(0, ""))
	require.Equal(t, []string{"dd", "cc"}, query(2, ""))
	require.Equal(t, []string{"bb", "aa"}, query(0, "cc"))
	require.Equal(t, []string{"bb"}, query(1, "cc"))
	require.Nil(t, query(0, "aa"))
}

func TestVideoPathNotExist(t *testing.T) {
	s := newTestManager(t, 1)

	_, err := s.VideoPath("missing")
	require.ErrorIs(t, err, ErrRecordingNotExist)
}

func TestDeleteRecording(t *testing.T) {
	s := newTestManager(t, 1)

	err := s.SaveRecording(Recording{ID: "aa"}, []byte{1})
	require.NoError(t, err)

	err = s.DeleteRecording("aa")
	require.NoError(t, err)

	require.NoFileExists(t, filepath.Join(s.RecordingsDir(), "aa.webm"))
	require.NoFileExists(t, filepath.Join(s.RecordingsDir(), "aa.json"))

	err = s.DeleteRecording("aa")
	require.ErrorIs(t, err, ErrRecordingNotExist)
}
