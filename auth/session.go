package auth

import (
	"encoding/base64"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// SessionGate guards admin writes with a single shared secret and a single
// in-memory session token. There is no expiry and no multi-session support:
// every successful login overwrites the previous token, so logging in
// elsewhere invalidates the earlier session. The slot is mutex-guarded to
// make concurrent logins a defined last-writer-wins.
type SessionGate struct {
	password     string
	passwordHash string

	mu    sync.Mutex
	token string
}

// NewSessionGate takes the shared secret either as plain text or as a
// bcrypt hash. When both are set the hash wins.
func NewSessionGate(password, passwordHash string) *SessionGate {
	return &SessionGate{password: password, passwordHash: passwordHash}
}

// Login checks the supplied password against the configured secret. On a
// match it mints a fresh opaque token, stores it as the only active session
// and returns it. On a mismatch the stored session is left untouched.
func (g *SessionGate) Login(password string) (string, bool) {
	if !g.checkPassword(password) {
		return "", false
	}

	token := base64.StdEncoding.EncodeToString([]byte(uuid.New().String()))
	g.mu.Lock()
	g.token = token
	g.mu.Unlock()
	return token, true
}

// Verify reports whether the supplied token exactly matches the last-issued
// one. A gate that has never issued a token rejects everything.
func (g *SessionGate) Verify(token string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.token != "" && g.token == token
}

func (g *SessionGate) checkPassword(password string) bool {
	if g.passwordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(g.passwordHash), []byte(password)) == nil
	}
	return g.password != "" && g.password == password
}

// Gate is the process-wide admin session, initialized from config in main.
var Gate *SessionGate

func Init(password, passwordHash string) {
	Gate = NewSessionGate(password, passwordHash)
}
