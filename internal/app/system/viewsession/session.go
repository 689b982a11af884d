// Package viewsession ties a browser to its view through a signed session
// cookie that carries the view id.
package viewsession

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session constants                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	DefaultName = "userdir-session"

	viewIDKey = "view_id"
)

type ctxKey string

const viewIDCtxKey ctxKey = "viewID"

// Manager issues and reads the view-id cookie.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewManager builds a Manager. An empty sessionKey gets a random key, which
// means cookies do not survive a restart; that is only acceptable in dev.
//
// In production (secure=true), cookies are Secure + SameSite=None.
// In local dev over http://localhost, use secure=false so cookies are accepted.
func NewManager(sessionKey, name, domain string, secure bool, logger *zap.Logger) (*Manager, error) {
	key := []byte(sessionKey)
	if sessionKey == "" {
		key = securecookie.GenerateRandomKey(32)
		if key == nil {
			return nil, fmt.Errorf("generate session key: no randomness available")
		}
		logger.Warn("session key is empty; using an ephemeral random key")
	} else if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}
	if name == "" {
		name = DefaultName
	}

	store := sessions.NewCookieStore(key)
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &Manager{store: store, name: name, log: logger}, nil
}

// Name returns the cookie name.
func (m *Manager) Name() string { return m.name }

// ViewID returns the view id stored in the request's session, issuing and
// saving a new one when the cookie is missing, unreadable, or malformed.
func (m *Manager) ViewID(w http.ResponseWriter, r *http.Request) (string, error) {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		// A cookie signed with an old key decodes to an error and a new session.
		m.log.Debug("session decode failed; issuing new view id", zap.Error(err))
	}

	if id, ok := sess.Values[viewIDKey].(string); ok {
		if _, perr := uuid.Parse(id); perr == nil {
			return id, nil
		}
	}

	id := uuid.NewString()
	sess.Values[viewIDKey] = id
	if err := sess.Save(r, w); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return id, nil
}

// LoadViewID is middleware that ensures every request carries a view id in
// its context, readable with CurrentViewID.
func (m *Manager) LoadViewID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := m.ViewID(w, r)
		if err != nil {
			m.log.Error("view id unavailable", zap.Error(err))
			http.Error(w, "session unavailable", http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, WithViewID(r, id))
	})
}

// WithViewID returns r carrying id. Handlers and tests use it to bypass the cookie.
func WithViewID(r *http.Request, id string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), viewIDCtxKey, id))
}

// CurrentViewID returns the view id placed in context by LoadViewID.
func CurrentViewID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(viewIDCtxKey).(string)
	return id, ok && id != ""
}
