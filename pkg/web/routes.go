// Package web contains the http handlers.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/conundrumer/canvas-recorder/pkg/capture"
	"github.com/conundrumer/canvas-recorder/pkg/log"
	"github.com/conundrumer/canvas-recorder/pkg/storage"
	"github.com/conundrumer/canvas-recorder/pkg/system"
	"github.com/conundrumer/canvas-recorder/pkg/web/auth"

	"github.com/gorilla/websocket"
)

const jsonContentType = "application/json"

// TimeZone returns system timeZone.
func TimeZone(timeZone string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "invalid request method", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", jsonContentType)
		if err := json.NewEncoder(w).Encode(timeZone); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

// Status returns the system status in json format.
func Status(sys *system.System) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "invalid request method", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", jsonContentType)
		if err := json.NewEncoder(w).Encode(sys.Status()); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

// RecordingQuery returns stored recordings in json format, newest
// first. Optional "limit" and "before" parameters page the result.
func RecordingQuery(manager *storage.Manager, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "invalid request method", http.StatusMethodNotAllowed)
			return
		}
		query := r.URL.Query()

		limit := 0
		if limitStr := query.Get("limit"); limitStr != "" {
			var err error
			limit, err = strconv.Atoi(limitStr)
			if err != nil {
				http.Error(w, fmt.Sprintf("could not convert limit to int: %v", err),
					http.StatusBadRequest)
				return
			}
		}

		recordings, err := manager.QueryRecordings(limit, query.Get("before"))
		if err != nil {
			logger.Error().Src("app").
				Msgf("could not process recording query: %v", err)
			http.Error(w, "see logs for details", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", jsonContentType)
		if err := json.NewEncoder(w).Encode(recordings); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

// RecordingVideo serves a recording's video file by id.
func RecordingVideo(manager *storage.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "invalid request method", http.StatusMethodNotAllowed)
			return
		}
		id := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]

		path, err := manager.VideoPath(id)
		if err != nil {
			if errors.Is(err, storage.ErrRecordingNotExist) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "video/webm")
		http.ServeFile(w, r, path)
	})
}

// RecordingDelete deletes a recording by id.
func RecordingDelete(manager *storage.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.Error(w, "invalid request method", http.StatusMethodNotAllowed)
			return
		}
		id := r.URL.Query().Get("id")

		if err := manager.DeleteRecording(id); err != nil {
			if errors.Is(err, storage.ErrRecordingNotExist) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	})
}

// Users returns a censored user list in json format.
func Users(a *auth.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "invalid request method", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", jsonContentType)
		if err := json.NewEncoder(w).Encode(a.UsersList()); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

// UserSet saves user to disk.
func UserSet(a *auth.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			http.Error(w, "invalid request method", http.StatusMethodNotAllowed)
			return
		}

		var req auth.SetUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := a.UserSet(req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	})
}

// UserDelete deletes a user by id.
func UserDelete(a *auth.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.Error(w, "invalid request method", http.StatusMethodNotAllowed)
			return
		}

		if err := a.UserDelete(r.URL.Query().Get("id")); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	})
}

// LogFeed opens a websocket with system logs.
func LogFeed(logger *log.Logger, a *auth.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "invalid request method", http.StatusMethodNotAllowed)
			return
		}
		query := r.URL.Query()

		levels, err := parseLevels(query.Get("levels"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		sources := parseCSV(query.Get("sources"))
		sessions := parseCSV(query.Get("sessions"))

		upgrader := websocket.Upgrader{}
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer c.Close()

		feed, cancel := logger.Subscribe()
		defer cancel()

		for {
			var entry log.Entry
			select {
			case entry = <-feed:
			case <-logger.Ctx.Done():
				return
			}

			if !log.LevelInLevels(entry.Level, levels) {
				continue
			}
			if !log.StringInStrings(entry.Src, sources) {
				continue
			}
			if !log.StringInStrings(entry.Session, sessions) {
				continue
			}

			// Validate auth before each message.
			if !a.AuthDisabled() {
				res := a.ValidateRequest(r)
				if !res.IsValid || !res.User.IsAdmin {
					return
				}
			}

			if err := c.WriteJSON(entry); err != nil {
				return
			}
		}
	})
}

// LogQuery handles log queries.
func LogQuery(logDB *log.DB) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "invalid request method", http.StatusMethodNotAllowed)
			return
		}
		query := r.URL.Query()

		limit := query.Get("limit")
		if limit == "" {
			http.Error(w, "limit missing", http.StatusBadRequest)
			return
		}
		limitInt, err := strconv.Atoi(limit)
		if err != nil {
			http.Error(w, fmt.Sprintf("could not convert limit to int: %v", err),
				http.StatusBadRequest)
			return
		}

		levels, err := parseLevels(query.Get("levels"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var time int
		if timeStr := query.Get("time"); timeStr != "" {
			time, err = strconv.Atoi(timeStr)
			if err != nil {
				http.Error(w, fmt.Sprintf("could not convert time to int: %v", err),
					http.StatusBadRequest)
				return
			}
		}

		q := log.Query{
			Levels:   levels,
			Sources:  parseCSV(query.Get("sources")),
			Sessions: parseCSV(query.Get("sessions")),
			Time:     log.UnixMillisecond(time),
			Limit:    limitInt,
		}

		entries, err := logDB.Query(q)
		if err != nil {
			http.Error(w, "could not query logs", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", jsonContentType)
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

func parseLevels(csv string) ([]log.Level, error) {
	var levels []log.Level
	for _, levelStr := range parseCSV(csv) {
		levelInt, err := strconv.Atoi(levelStr)
		if err != nil {
			return nil, fmt.Errorf("invalid levels list: %v %w", csv, err)
		}
		levels = append(levels, log.Level(levelInt))
	}
	return levels, nil
}

func parseCSV(csv string) []string {
	if csv == "" {
		return nil
	}
	return strings.Split(csv, ",")
}

// Messages on the capture socket.
type (
	captureStart struct {
		ID  string  `json:"id"`
		FPS float64 `json:"fps"`
	}
	captureStarted struct {
		ID string `json:"id"`
	}
	captureFinish struct {
		FrameCount *int `json:"frameCount"`
	}
)

// CaptureSocket opens a websocket that receives a chunked WebM
// stream. The first message is json with the frame rate, binary
// messages carry container bytes and a final json message with the
// total frame count stores the recording. Disconnecting before the
// final message discards the session.
func CaptureSocket(manager *capture.Manager, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "invalid request method", http.StatusMethodNotAllowed)
			return
		}

		upgrader := websocket.Upgrader{}
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer c.Close()

		_, first, err := c.ReadMessage()
		if err != nil {
			return
		}

		var start captureStart
		if err := json.Unmarshal(first, &start); err != nil {
			writeSocketError(c, fmt.Sprintf("invalid start message: %v", err))
			return
		}

		session, err := manager.Start(start.ID, start.FPS)
		if err != nil {
			writeSocketError(c, err.Error())
			return
		}
		defer session.Abort()

		if err := c.WriteJSON(captureStarted{ID: session.ID}); err != nil {
			return
		}

		for {
			msgType, msg, err := c.ReadMessage()
			if err != nil {
				// Disconnect, the deferred abort discards the session.
				return
			}

			if msgType == websocket.BinaryMessage {
				if err := session.Append(msg); err != nil {
					writeSocketError(c, err.Error())
					return
				}
				continue
			}

			var finish captureFinish
			if err := json.Unmarshal(msg, &finish); err != nil || finish.FrameCount == nil {
				writeSocketError(c, "invalid finish message")
				return
			}

			rec, err := session.Finish(*finish.FrameCount)
			if err != nil {
				logger.Error().Src("capture").Session(session.ID).
					Msgf("could not store recording: %v", err)
				writeSocketError(c, err.Error())
				return
			}

			c.WriteJSON(rec) //nolint:errcheck
			return
		}
	})
}

func writeSocketError(c *websocket.Conn, msg string) {
	c.WriteJSON(struct { //nolint:errcheck
		Error string `json:"error"`
	}{Error: msg})
}
