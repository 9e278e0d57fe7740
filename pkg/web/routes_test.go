package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/conundrumer/canvas-recorder/pkg/capture"
	"github.com/conundrumer/canvas-recorder/pkg/log"
	"github.com/conundrumer/canvas-recorder/pkg/storage"
	"github.com/conundrumer/canvas-recorder/pkg/web/auth"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *log.Logger {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := log.NewMockLogger()
	require.NoError(t, logger.Start(ctx))
	return logger
}

func newTestStorage(t *testing.T) *storage.Manager {
	t.Helper()

	storageDir := t.TempDir()
	env := storage.ConfigEnv{StorageDir: storageDir}
	require.NoError(t, env.PrepareEnvironment())

	return storage.NewManager(storageDir, 1, newTestLogger(t))
}

func TestTimeZone(t *testing.T) {
	w := httptest.NewRecorder()
	TimeZone("America/New_York").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "\"America/New_York\"\n", w.Body.String())
}

func TestParseCSV(t *testing.T) {
	cases := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"a,b,c", []string{"a", "b", "c"}},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.expected, parseCSV(tc.input))
		})
	}
}

func TestParseLevels(t *testing.T) {
	levels, err := parseLevels("16,48")
	require.NoError(t, err)
	require.Equal(t, []log.Level{log.LevelError, log.LevelDebug}, levels)

	_, err = parseLevels("nil")
	require.Error(t, err)
}

func TestRecordingQuery(t *testing.T) {
	manager := newTestStorage(t)
	for _, id := range []string{"aa", "bb"} {
		require.NoError(t, manager.SaveRecording(storage.Recording{ID: id}, nil))
	}
	handler := RecordingQuery(manager, newTestLogger(t))

	t.Run("ok", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?limit=1", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var recordings []storage.Recording
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recordings))
		require.Len(t, recordings, 1)
		require.Equal(t, "bb", recordings[0].ID)
	})
	t.Run("badLimit", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?limit=nil", nil))
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("methodNotAllowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
		require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestRecordingVideo(t *testing.T) {
	manager := newTestStorage(t)
	video := []byte{1, 2, 3}
	require.NoError(t, manager.SaveRecording(storage.Recording{ID: "aa"}, video))

	handler := RecordingVideo(manager)

	t.Run("ok", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recording/video/aa", nil))
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, video, w.Body.Bytes())
		require.Equal(t, "video/webm", w.Header().Get("Content-Type"))
	})
	t.Run("notExist", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recording/video/bb", nil))
		require.Equal(t, http.StatusNotFound, w.Code)
	})
	t.Run("invalidID", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recording/video/%2e%2e", nil))
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRecordingDelete(t *testing.T) {
	manager := newTestStorage(t)
	require.NoError(t, manager.SaveRecording(storage.Recording{ID: "aa"}, nil))

	handler := RecordingDelete(manager)

	t.Run("ok", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/?id=aa", nil))
		require.Equal(t, http.StatusOK, w.Code)

		_, err := manager.VideoPath("aa")
		require.ErrorIs(t, err, storage.ErrRecordingNotExist)
	})
	t.Run("notExist", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/?id=aa", nil))
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func newCaptureServer(t *testing.T) *websocket.Conn {
	t.Helper()

	logger := newTestLogger(t)
	manager := capture.NewManager(newTestStorage(t), logger)

	server := httptest.NewServer(CaptureSocket(manager, logger))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	return c
}

// Two keyframe-flagged blocks with jittery timecodes.
func testContainer() []byte {
	el := func(id []byte, payload ...byte) []byte {
		out := append(append([]byte{}, id...), byte(0x80|len(payload)))
		return append(out, payload...)
	}
	block := func(timecode byte) []byte {
		return el([]byte{0xa3}, 0x81, 0x00, timecode, 0x80, 0xde, 0xad)
	}

	var buf []byte
	buf = append(buf, el([]byte{0x1a, 0x45, 0xdf, 0xa3},
		el([]byte{0x42, 0x82}, 'w', 'e', 'b', 'm')...)...)
	buf = append(buf, 0x18, 0x53, 0x80, 0x67, 0xff)
	buf = append(buf, el([]byte{0x15, 0x49, 0xa9, 0x66},
		el([]byte{0x2a, 0xd7, 0xb1}, 0x0f, 0x42, 0x40)...)...)
	buf = append(buf, 0x1f, 0x43, 0xb6, 0x75, 0xff)
	buf = append(buf, el([]byte{0xe7}, 0x03)...)
	buf = append(buf, block(3)...)
	buf = append(buf, block(39)...)
	return buf
}

func TestCaptureSocket(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		c := newCaptureServer(t)

		err := c.WriteJSON(captureStart{ID: "aa", FPS: 60})
		require.NoError(t, err)

		var started captureStarted
		require.NoError(t, c.ReadJSON(&started))
		require.Equal(t, "aa", started.ID)

		err = c.WriteMessage(websocket.BinaryMessage, testContainer())
		require.NoError(t, err)

		frameCount := 2
		require.NoError(t, c.WriteJSON(captureFinish{FrameCount: &frameCount}))

		var rec storage.Recording
		require.NoError(t, c.ReadJSON(&rec))
		require.Equal(t, "aa", rec.ID)
		require.True(t, rec.Fixed)
		require.Equal(t, 2, rec.FramesProbed)
	})
	t.Run("invalidStart", func(t *testing.T) {
		c := newCaptureServer(t)

		err := c.WriteMessage(websocket.TextMessage, []byte("{"))
		require.NoError(t, err)

		var res struct {
			Error string `json:"error"`
		}
		require.NoError(t, c.ReadJSON(&res))
		require.NotEmpty(t, res.Error)
	})
	t.Run("invalidFPS", func(t *testing.T) {
		c := newCaptureServer(t)

		require.NoError(t, c.WriteJSON(captureStart{FPS: -1}))

		var res struct {
			Error string `json:"error"`
		}
		require.NoError(t, c.ReadJSON(&res))
		require.Contains(t, res.Error, "fps")
	})
	t.Run("invalidFinish", func(t *testing.T) {
		c := newCaptureServer(t)

		require.NoError(t, c.WriteJSON(captureStart{ID: "aa", FPS: 60}))

		var started captureStarted
		require.NoError(t, c.ReadJSON(&started))

		require.NoError(t, c.WriteMessage(websocket.TextMessage, []byte("{}")))

		var res struct {
			Error string `json:"error"`
		}
		require.NoError(t, c.ReadJSON(&res))
		require.Equal(t, "invalid finish message", res.Error)
	})
}

func newDisabledAuth(t *testing.T) *auth.Authenticator {
	t.Helper()

	a, err := auth.NewAuthenticator(
		storage.ConfigEnv{ConfigDir: t.TempDir()}, newTestLogger(t))
	require.NoError(t, err)
	return a
}

func TestLogFeed(t *testing.T) {
	logger := newTestLogger(t)

	server := httptest.NewServer(LogFeed(logger, newDisabledAuth(t)))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "?sources=capture"
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	// Publish until the feed subscription is up.
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-done:
				return
			default:
			}
			logger.Info().Src("app").Msg("nope")
			logger.Info().Src("capture").Msg("yes")
			time.Sleep(10 * time.Millisecond)
		}
	}()

	var entry log.Entry
	require.NoError(t, c.ReadJSON(&entry))
	require.Equal(t, "yes", entry.Msg)
	require.Equal(t, "capture", entry.Src)
}
