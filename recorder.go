// Package canvasrecorder ties the capture pipeline together
// and serves the api.
package canvasrecorder

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/conundrumer/canvas-recorder/pkg/capture"
	"github.com/conundrumer/canvas-recorder/pkg/log"
	"github.com/conundrumer/canvas-recorder/pkg/storage"
	"github.com/conundrumer/canvas-recorder/pkg/system"
	"github.com/conundrumer/canvas-recorder/pkg/web"
	"github.com/conundrumer/canvas-recorder/pkg/web/auth"
)

const (
	purgeInterval      = 10 * time.Minute
	sessionIdleTimeout = time.Minute
)

// Run blocks until a fatal error or a stop signal.
func Run() error {
	envFlag := flag.String("env", "", "path to env.yaml")
	flag.Parse()

	if *envFlag == "" {
		flag.Usage()
		return nil
	}

	envPath, err := filepath.Abs(*envFlag)
	if err != nil {
		return fmt.Errorf("could not get absolute path of env.yaml: %w", err)
	}

	wg := &sync.WaitGroup{}
	app, err := newApp(envPath, wg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fatal := make(chan error, 1)
	go func() { fatal <- app.run(ctx) }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err = <-fatal:
		app.Logger.Info().Src("app").Msgf("fatal error: %v", err)
	case signal := <-stop:
		app.Logger.Info().Src("app").Msgf("received %v, stopping", signal)
	}

	cancel()
	wg.Wait()

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()

	if err != nil {
		return err
	}
	return app.server.Shutdown(ctx2)
}

func newApp(envPath string, wg *sync.WaitGroup) (*App, error) {
	// Environment config.
	envYAML, err := os.ReadFile(envPath)
	if err != nil {
		return nil, fmt.Errorf("could not read env.yaml: %w", err)
	}

	env, err := storage.NewConfigEnv(envPath, envYAML)
	if err != nil {
		return nil, fmt.Errorf("could not get environment config: %w", err)
	}

	// Logs.
	logger := log.NewLogger(wg)
	logDB := log.NewDB(filepath.Join(env.StorageDir, "logs.db"), wg)

	// Authentication.
	a, err := auth.NewAuthenticator(*env, logger)
	if err != nil {
		return nil, fmt.Errorf("could not create authenticator: %w", err)
	}

	// Storage and capture.
	storageManager := storage.NewManager(env.StorageDir, env.DiskSpaceGB, logger)
	captureManager := capture.NewManager(storageManager, logger)

	// System status.
	sys := system.New(func() (storage.DiskUsage, error) {
		return storageManager.DiskUsage(10 * time.Minute)
	}, logger)

	timeZone, err := sys.TimeZone()
	if err != nil {
		timeZone = "UTC"
	}

	// Routes.
	mux := http.NewServeMux()

	mux.Handle("/api/capture", a.User(web.CaptureSocket(captureManager, logger)))

	mux.Handle("/api/recording/query", a.User(web.RecordingQuery(storageManager, logger)))
	mux.Handle("/api/recording/video/", a.User(web.RecordingVideo(storageManager)))
	mux.Handle("/api/recording/delete", a.User(a.CSRF(web.RecordingDelete(storageManager))))

	mux.Handle("/api/system/status", a.Admin(web.Status(sys)))
	mux.Handle("/api/system/time-zone", a.User(web.TimeZone(timeZone)))

	mux.Handle("/api/users", a.Admin(web.Users(a)))
	mux.Handle("/api/user/set", a.Admin(a.CSRF(web.UserSet(a))))
	mux.Handle("/api/user/delete", a.Admin(a.CSRF(web.UserDelete(a))))
	mux.Handle("/api/user/my-token", a.Admin(a.MyToken()))

	mux.Handle("/api/log/feed", a.Admin(web.LogFeed(logger, a)))
	mux.Handle("/api/log/query", a.Admin(web.LogQuery(logDB)))

	return &App{
		WG:      wg,
		Logger:  logger,
		logDB:   logDB,
		Env:     *env,
		Auth:    a,
		Storage: storageManager,
		Capture: captureManager,
		System:  sys,
		Mux:     mux,
	}, nil
}

// App is the main application struct.
type App struct {
	WG      *sync.WaitGroup
	Logger  *log.Logger
	logDB   *log.DB
	Env     storage.ConfigEnv
	Auth    *auth.Authenticator
	Storage *storage.Manager
	Capture *capture.Manager
	System  *system.System
	Mux     *http.ServeMux
	server  *http.Server
}

func (app *App) run(ctx context.Context) error {
	address := ":" + strconv.Itoa(app.Env.Port)
	app.server = &http.Server{Addr: address, Handler: app.Mux}

	if err := app.Logger.Start(ctx); err != nil {
		return fmt.Errorf("could not start logger: %w", err)
	}

	go app.Logger.LogToStdout(ctx)

	if err := app.Env.PrepareEnvironment(); err != nil {
		return fmt.Errorf("could not prepare environment: %w", err)
	}

	if err := app.logDB.Init(ctx); err != nil {
		// Continue even if log database is corrupt.
		time.Sleep(10 * time.Millisecond)
		app.Logger.Error().Src("app").Msgf("could not initialize log database: %v", err)
	} else {
		go app.logDB.SaveLogs(ctx, app.Logger)
		time.Sleep(10 * time.Millisecond)
	}

	app.Logger.Info().Src("app").Msg("Starting..")

	if app.Auth.AuthDisabled() {
		app.Logger.Warn().Src("app").
			Msg("no accounts exist, authentication is disabled")
	}

	go app.System.StatusLoop(ctx)
	go app.Storage.PurgeLoop(ctx, purgeInterval)
	go app.Capture.ReapLoop(ctx, sessionIdleTimeout)

	app.Logger.Info().Src("app").Msgf("Serving app on port %v", app.Env.Port)
	return app.server.ListenAndServe()
}
