// Package session binds a logged-in user to a browser and carries one-shot
// notices between requests. Both cookies are signed with the process secret.
package session

import (
	"encoding/gob"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const (
	authCookieName  = "volunteer_auth"
	flashCookieName = "volunteer_flash"
)

// Flash categories.
const (
	Success = "success"
	Info    = "info"
	Warning = "warning"
	Danger  = "danger"
)

// Flash is a notice shown once on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register(Flash{})
}

var (
	// ErrNoPrincipal is returned when the request carries no auth cookie.
	ErrNoPrincipal = errors.New("no authenticated principal")
	// ErrInvalidToken is returned when the auth cookie is present but forged,
	// expired or signed with another secret.
	ErrInvalidToken = errors.New("invalid session token")
)

// Options configure a Manager.
type Options struct {
	Secret []byte
	TTL    time.Duration
	Secure bool
	Now    func() time.Time
}

// Manager issues and reads session cookies.
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
	flash  *sessions.CookieStore
}

// NewManager builds a Manager. An empty secret is replaced by a random key,
// so sessions then last only as long as the process.
func NewManager(opts Options) (*Manager, error) {
	secret := opts.Secret
	if len(secret) == 0 {
		secret = securecookie.GenerateRandomKey(32)
		if secret == nil {
			return nil, errors.New("generate session secret")
		}
	}
	if opts.TTL <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %s", opts.TTL)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		secret: secret,
		ttl:    opts.TTL,
		secure: opts.Secure,
		now:    opts.Now,
		flash:  store,
	}, nil
}

// Login sets the auth cookie for userID.
func (m *Manager) Login(w http.ResponseWriter, userID int64) error {
	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(m.ttl),
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Logout expires the auth cookie.
func (m *Manager) Logout(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// PrincipalID returns the user id bound to r.
func (m *Manager) PrincipalID(r *http.Request) (int64, error) {
	cookie, err := r.Cookie(authCookieName)
	if err != nil || cookie.Value == "" {
		return 0, ErrNoPrincipal
	}

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(cookie.Value, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, claims.Subject)
	}
	return id, nil
}

// AddFlash queues a notice for the next rendered page.
func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, category, message string) error {
	// a tampered or stale cookie yields a fresh session along with the error
	sess, _ := m.flash.Get(r, flashCookieName)
	sess.AddFlash(Flash{Category: category, Message: message})
	return sess.Save(r, w)
}

// Flashes drains the queued notices.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) ([]Flash, error) {
	sess, _ := m.flash.Get(r, flashCookieName)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil, nil
	}

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	if err := sess.Save(r, w); err != nil {
		return flashes, fmt.Errorf("save flash session: %w", err)
	}
	return flashes, nil
}
