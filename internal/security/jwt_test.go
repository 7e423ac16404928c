package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	tok, err := MakeSession("secret", "64b0c8f3a1b2c3d4e5f60708", time.Hour)
	require.NoError(t, err)

	c, err := ParseSession("secret", tok)
	require.NoError(t, err)
	require.Equal(t, "64b0c8f3a1b2c3d4e5f60708", c.UID)
}

func TestParseSession_WrongSecret(t *testing.T) {
	tok, err := MakeSession("secret", "uid", time.Hour)
	require.NoError(t, err)

	_, err = ParseSession("other-secret", tok)
	require.Error(t, err)
}

func TestParseSession_Expired(t *testing.T) {
	tok, err := MakeSession("secret", "uid", -time.Minute)
	require.NoError(t, err)

	_, err = ParseSession("secret", tok)
	require.Error(t, err)
}

func TestParseSession_Garbage(t *testing.T) {
	_, err := ParseSession("secret", "not.a.jwt")
	require.Error(t, err)
}
