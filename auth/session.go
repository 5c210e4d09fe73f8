package auth

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"secretsapp/models"
)

// The session carries the entire user row, not a reference. Protected reads
// still re-fetch the secret from the store, so staleness is confined to the
// identity fields.
const (
	sessionUserKey  = "user"
	sessionStateKey = "oauth_state"
)

func init() {
	gob.Register(models.User{})
}

// Establish binds the user to the request's session.
func Establish(c *gin.Context, user *models.User) error {
	sess := sessions.Default(c)
	sess.Set(sessionUserKey, *user)
	return sess.Save()
}

// CurrentUser returns the session-bound user, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v := sessions.Default(c).Get(sessionUserKey)
	user, ok := v.(models.User)
	if !ok {
		return nil, false
	}
	return &user, true
}

// Terminate invalidates the session binding. The error is returned to the
// caller; logout must not be assumed successful without checking it.
func Terminate(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	return sess.Save()
}

// SetOAuthState stashes the anti-forgery state for the federated flow.
func SetOAuthState(c *gin.Context, state string) error {
	sess := sessions.Default(c)
	sess.Set(sessionStateKey, state)
	return sess.Save()
}

// ConsumeOAuthState returns the stashed state and removes it, so a callback
// can only be replayed once per initiation.
func ConsumeOAuthState(c *gin.Context) (string, bool) {
	sess := sessions.Default(c)
	v := sess.Get(sessionStateKey)
	state, ok := v.(string)
	if !ok {
		return "", false
	}
	sess.Delete(sessionStateKey)
	if err := sess.Save(); err != nil {
		return "", false
	}
	return state, true
}
