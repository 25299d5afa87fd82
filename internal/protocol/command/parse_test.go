package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domaintypes "remotesms/internal/domain/types"
	"remotesms/internal/protocol/command"
)

func TestParse_WellFormed(t *testing.T) {
	cases := []struct {
		body      string
		wantAuth  string
		wantToken string
	}{
		{"#1234 #GET_BATTERY", "1234", "#GET_BATTERY"},
		{"#secret light_on", "secret", "LIGHT_ON"},
		{"  #Secret\tget_gps \n", "Secret", "GET_GPS"},
		{"nohash GET_SMS", "nohash", "GET_SMS"},
		{"##double foo", "#double", "FOO"},
	}
	for _, tc := range cases {
		t.Run(tc.body, func(t *testing.T) {
			p, err := command.Parse(tc.body)
			require.NoError(t, err)
			assert.Equal(t, tc.wantAuth, p.Auth)
			assert.Equal(t, tc.wantToken, p.Token)
		})
	}
}

func TestParse_NotTwoTokens_IsFormatError(t *testing.T) {
	for _, body := range []string{
		"",
		"   ",
		"#1234",
		"#1234GET_BATTERY",
		"#1234 GET_BATTERY extra",
		"#1234 LIGHT_ON LIGHT_OFF",
	} {
		_, err := command.Parse(body)
		require.Error(t, err, "body %q", body)
		assert.Equal(t, domaintypes.KindFormat, domaintypes.KindOf(err), "body %q", body)
		assert.Equal(t, command.FormatHint, err.Error())
	}
}

func TestParse_AuthIsCaseSensitive(t *testing.T) {
	p, err := command.Parse("#PassWord x")
	require.NoError(t, err)
	assert.Equal(t, "PassWord", p.Auth)
}

func TestKeyword(t *testing.T) {
	assert.Equal(t, "GET_BATTERY", command.Keyword("#get_battery"))
	assert.Equal(t, "GET_BATTERY", command.Keyword("GET_BATTERY"))
	assert.Equal(t, "#X", command.Keyword("##x"))
}
