// Package auth blocks unauthenticated requests and stores user accounts.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/conundrumer/canvas-recorder/pkg/log"
	"github.com/conundrumer/canvas-recorder/pkg/storage"

	"golang.org/x/crypto/bcrypt"
)

// Account contains user information.
type Account struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password []byte `json:"password"` // Hashed password.
	IsAdmin  bool   `json:"isAdmin"`
	Token    string `json:"-"` // CSRF token.
}

// AccountObfuscated Account without sensitive information.
type AccountObfuscated struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// ValidateResponse ValidateRequest response.
type ValidateResponse struct {
	IsValid bool
	User    Account
}

// SetUserRequest set user details request.
type SetUserRequest struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	PlainPassword string `json:"plainPassword,omitempty"`
	IsAdmin       bool   `json:"isAdmin"`
}

// DefaultHashCost bcrypt hash cost.
const DefaultHashCost = 10

// Authenticator uses HTTP basic auth backed by a json account file.
type Authenticator struct {
	path      string // Path to save user information.
	accounts  map[string]Account
	authCache map[string]ValidateResponse

	hashCost int

	logger *log.Logger
	mu     sync.Mutex
}

// NewAuthenticator reads accounts from "users.json" in the config
// directory. A missing file means no accounts yet, UserSet creates it.
func NewAuthenticator(env storage.ConfigEnv, logger *log.Logger) (*Authenticator, error) {
	path := filepath.Join(env.ConfigDir, "users.json")
	a := Authenticator{
		path:      path,
		accounts:  make(map[string]Account),
		authCache: make(map[string]ValidateResponse),

		hashCost: DefaultHashCost,
		logger:   logger,
	}

	file, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	} else if err := json.Unmarshal(file, &a.accounts); err != nil {
		return nil, fmt.Errorf("unmarshal users file: %w", err)
	}

	a.resetTokens()

	return &a, nil
}

// ValidateRequest Should always take the same amount of
// time to run, even when username or password is invalid.
func (a *Authenticator) ValidateRequest(r *http.Request) ValidateResponse {
	req := r.Header.Get("Authorization")
	defer a.mu.Unlock()
	a.mu.Lock()
	if res, cacheExist := a.authCache[req]; cacheExist {
		return res
	}
	a.mu.Unlock()

	name, pass := parseBasicAuth(req)
	user, found := a.userByName(name)

	res := ValidateResponse{}

	if !found || name != user.Username {
		// Generate fake hash to prevent timing based attacks.
		bcrypt.GenerateFromPassword([]byte(name), a.hashCost) //nolint:errcheck
	} else if passwordsMatch(user.Password, pass) {
		res = ValidateResponse{IsValid: true, User: user}
	}
	a.mu.Lock()

	a.authCache[req] = res
	return res
}

func (a *Authenticator) userByName(name string) (Account, bool) {
	defer a.mu.Unlock()
	a.mu.Lock()

	for _, u := range a.accounts {
		if u.Username == name {
			return u, true
		}
	}
	return Account{}, false
}

// Modified from net/http. Link:
// https://cs.opensource.google/go/go/+/refs/tags/go1.17.8:src/net/http/request.go;l=949
func parseBasicAuth(str string) (username, password string) {
	const prefix = "Basic "
	if len(str) < len(prefix) || !strings.EqualFold(str[:len(prefix)], prefix) {
		return
	}
	c, err := base64.StdEncoding.DecodeString(str[len(prefix):])
	if err != nil {
		return
	}
	cs := string(c)
	s := strings.IndexByte(cs, ':')
	if s < 0 {
		return
	}
	return cs[:s], cs[s+1:]
}

func passwordsMatch(hash []byte, plaintext string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(plaintext)) == nil
}

func genToken() string {
	b := make([]byte, 32)
	rand.Read(b) //nolint:errcheck
	return hex.EncodeToString(b)
}

// resetTokens creates new random token for each user.
func (a *Authenticator) resetTokens() {
	a.mu.Lock()
	for id, user := range a.accounts {
		user.Token = genToken()
		a.accounts[id] = user
	}
	a.mu.Unlock()
}

// AuthDisabled reports if all requests should be allowed.
// True while no accounts exist, so a first admin can be created.
func (a *Authenticator) AuthDisabled() bool {
	defer a.mu.Unlock()
	a.mu.Lock()
	return len(a.accounts) == 0
}

// UsersList returns a obfuscated user list.
func (a *Authenticator) UsersList() map[string]AccountObfuscated {
	defer a.mu.Unlock()
	a.mu.Lock()

	list := make(map[string]AccountObfuscated)
	for id, user := range a.accounts {
		list[id] = AccountObfuscated{
			ID:       user.ID,
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
		}
	}
	return list
}

// Errors.
var (
	ErrIDMissing       = errors.New("missing ID")
	ErrUsernameMissing = errors.New("missing username")
	ErrPasswordMissing = errors.New("password is required for new users")
	ErrUserNotExist    = errors.New("user does not exist")
)

// UserSet set user details.
func (a *Authenticator) UserSet(req SetUserRequest) error {
	defer a.mu.Unlock()
	a.mu.Lock()

	if req.ID == "" {
		return ErrIDMissing
	}
	if req.Username == "" {
		return ErrUsernameMissing
	}

	user, exists := a.accounts[req.ID]
	if !exists && req.PlainPassword == "" {
		return ErrPasswordMissing
	}
	a.mu.Unlock()

	user.ID = req.ID
	user.Username = req.Username
	user.IsAdmin = req.IsAdmin
	if req.PlainPassword != "" {
		hashedNewPassword, _ := bcrypt.GenerateFromPassword([]byte(req.PlainPassword), a.hashCost)
		user.Password = hashedNewPassword
	}
	user.Token = genToken()

	a.mu.Lock()
	a.accounts[user.ID] = user
	a.authCache = make(map[string]ValidateResponse)

	if err := a.saveUsersToFile(); err != nil {
		return fmt.Errorf("could not save users to file: %w", err)
	}
	return nil
}

// UserDelete deletes user by id.
func (a *Authenticator) UserDelete(id string) error {
	defer a.mu.Unlock()
	a.mu.Lock()
	if _, exists := a.accounts[id]; !exists {
		return ErrUserNotExist
	}
	delete(a.accounts, id)

	// Reset cache.
	a.authCache = make(map[string]ValidateResponse)

	return a.saveUsersToFile()
}

// Caller must hold the lock.
func (a *Authenticator) saveUsersToFile() error {
	users, _ := json.MarshalIndent(a.accounts, "", "  ")
	return os.WriteFile(a.path, users, 0o600)
}

// User blocks unauthorized requests and prompts for login.
func (a *Authenticator) User(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.AuthDisabled() {
			next.ServeHTTP(w, r)
			return
		}

		res := a.ValidateRequest(r)
		if !res.IsValid {
			a.logFailedLogin(r)
			w.Header().Set("WWW-Authenticate", `Basic realm=""`)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Admin blocks requests from non-admin users.
func (a *Authenticator) Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.AuthDisabled() {
			next.ServeHTTP(w, r)
			return
		}

		res := a.ValidateRequest(r)
		if !res.IsValid || !res.User.IsAdmin {
			a.logFailedLogin(r)
			w.Header().Set("WWW-Authenticate", `Basic realm=""`)
			http.Error(w, "Unauthorized.", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// CSRF blocks invalid Cross-site request forgery tokens.
// Each user has a unique token. The request needs to
// have a matching token in the "X-CSRF-TOKEN" header.
func (a *Authenticator) CSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.AuthDisabled() {
			next.ServeHTTP(w, r)
			return
		}

		res := a.ValidateRequest(r)
		token := r.Header.Get("X-CSRF-TOKEN")

		if token != res.User.Token {
			http.Error(w, "Invalid CSRF-token.", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// MyToken return CSRF token for requesting user.
func (a *Authenticator) MyToken() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res := a.ValidateRequest(r)
		if res.User.Token == "" {
			http.Error(w, "token does not exist", http.StatusInternalServerError)
			return
		}
		if _, err := w.Write([]byte(res.User.Token)); err != nil {
			http.Error(w, "could not write", http.StatusInternalServerError)
			return
		}
	})
}

// logFailedLogin finds and logs the ip.
func (a *Authenticator) logFailedLogin(r *http.Request) {
	if r.Header.Get("Authorization") == "" {
		return
	}
	username, _ := parseBasicAuth(r.Header.Get("Authorization"))

	ip := ""
	realIP := r.Header.Get("X-Real-Ip")
	if realIP != "" {
		ip += "real:" + realIP + " "
	}
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" && forwarded != realIP {
		ip += "forwarded:" + forwarded + " "
	}
	remoteAddr := r.RemoteAddr
	if remoteAddr != "" && remoteAddr != forwarded {
		ip += "addr:" + remoteAddr
	}

	a.logger.Info().Src("auth").Msgf("failed login: username: %v %v", username, ip)
}
