package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// SessionCookieName is the cookie the backend sets on login and the mobile
// client replays on every authenticated request.
const SessionCookieName = "coop_sessionid"

// SessionManager stores mobile sessions in Redis, keyed by an opaque
// session id mapping to the member id. Each authenticated request slides
// the expiry forward.
type SessionManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewSessionManager(rdb *redis.Client, ttl time.Duration) *SessionManager {
	return &SessionManager{redis: rdb, ttl: ttl}
}

func sessionKey(sid string) string {
	return fmt.Sprintf("session:%s", sid)
}

// Create stores a new session for the member and returns its id.
func (sm *SessionManager) Create(ctx context.Context, memberID int) (string, error) {
	sid := uuid.NewString()
	if err := sm.redis.Set(ctx, sessionKey(sid), strconv.Itoa(memberID), sm.ttl).Err(); err != nil {
		return "", err
	}
	return sid, nil
}

// Resolve returns the member id for a session id, refreshing its expiry.
func (sm *SessionManager) Resolve(ctx context.Context, sid string) (int, error) {
	val, err := sm.redis.Get(ctx, sessionKey(sid)).Result()
	if err != nil {
		return 0, err
	}
	memberID, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("corrupt session value %q: %w", val, err)
	}
	if err := sm.redis.Expire(ctx, sessionKey(sid), sm.ttl).Err(); err != nil {
		log.Printf("[SESSION] Failed to refresh expiry for session: %v", err)
	}
	return memberID, nil
}

// Destroy removes a session. Destroying an absent session is not an error.
func (sm *SessionManager) Destroy(ctx context.Context, sid string) error {
	return sm.redis.Del(ctx, sessionKey(sid)).Err()
}

// Cookie builds the session cookie carrying sid.
func (sm *SessionManager) Cookie(sid string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(sm.ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie builds a cookie that clears the session on the client.
func (sm *SessionManager) ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   "Authentication required",
	})
}

// Middleware authorizes requests by session cookie. The member id ends up
// in the request context under "memberID"; the session id under "sessionID".
func (sm *SessionManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			unauthorized(w)
			return
		}

		memberID, err := sm.Resolve(r.Context(), cookie.Value)
		if err != nil {
			if err != redis.Nil {
				log.Printf("[SESSION] Session lookup failed: %v", err)
			}
			unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), "memberID", memberID)
		ctx = context.WithValue(ctx, "sessionID", cookie.Value)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// MemberID extracts the authenticated member id from a request context.
func MemberID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value("memberID").(int)
	return id, ok
}
