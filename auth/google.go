package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

// Claim is the slice of the provider's userinfo response this application
// relies on. Email is the only field reconciled against the local store.
type Claim struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Google drives the relying-party side of the federated flow: redirect out
// with a state, exchange the returned code, fetch the userinfo claim.
type Google struct {
	config      *oauth2.Config
	userInfoURL string
}

func NewGoogle(clientID, clientSecret, callbackURL string) *Google {
	return &Google{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
		userInfoURL: googleUserInfoURL,
	}
}

// AuthCodeURL returns the provider URL to redirect the browser to.
func (g *Google) AuthCodeURL(state string) string {
	return g.config.AuthCodeURL(state)
}

// Exchange trades the authorization code for a token and fetches the
// identity assertion. An assertion without an email claim is a failure; the
// local account cannot be resolved without one.
func (g *Google) Exchange(ctx context.Context, code string) (*Claim, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}

	resp, err := g.config.Client(ctx, token).Get(g.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetching userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned %s", resp.Status)
	}

	var claim Claim
	if err := json.NewDecoder(resp.Body).Decode(&claim); err != nil {
		return nil, fmt.Errorf("decoding userinfo: %w", err)
	}
	if claim.Email == "" {
		return nil, errors.New("userinfo response missing email claim")
	}

	return &claim, nil
}

// RandomState generates the anti-forgery state carried through the flow.
func RandomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
