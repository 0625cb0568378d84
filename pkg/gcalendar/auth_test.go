package gcalendar

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

const desktopCredentials = `{"installed":{"client_id":"cid.apps.googleusercontent.com","client_secret":"shh",
"auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token",
"redirect_uris":["http://localhost"]}}`

func TestDesktopAuthURL(t *testing.T) {
	auth, err := NewDesktopAuth([]byte(desktopCredentials))
	require.NoError(t, err)

	u := auth.AuthCodeURL("state-1")
	assert.Contains(t, u, "client_id=cid.apps.googleusercontent.com")
	assert.Contains(t, u, "access_type=offline")
	assert.Contains(t, u, "state=state-1")

	_, err = NewDesktopAuth([]byte(`{}`))
	assert.Error(t, err)
}

func TestSaveLoadToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), TokenFile)
	tok := &oauth2.Token{
		AccessToken:  "at",
		RefreshToken: "rt",
		TokenType:    "Bearer",
		Expiry:       time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC),
	}

	require.NoError(t, SaveToken(path, tok))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "rt", got.RefreshToken)
	assert.True(t, tok.Expiry.Equal(got.Expiry))

	_, err = LoadToken(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
