package command

import (
	"strings"

	domaintypes "remotesms/internal/domain/types"
)

// Marker prefixes the password token and, optionally, the command token.
const Marker = "#"

// FormatHint is the reply text for a body that does not parse.
const FormatHint = "Format: #password #COMMAND"

// Parsed is a successfully split message body.
type Parsed struct {
	Auth  string // password candidate, marker removed, case preserved
	Token string // command token, upper-cased, marker kept
}

// Parse splits body into the auth token and the raw command token.
// It fails with a KindFormat error unless body holds exactly two tokens.
func Parse(body string) (Parsed, error) {
	fields := strings.Fields(strings.TrimSpace(body))
	if len(fields) != 2 {
		return Parsed{}, domaintypes.NewError(domaintypes.KindFormat, FormatHint)
	}
	return Parsed{
		Auth:  strings.TrimPrefix(fields[0], Marker),
		Token: strings.ToUpper(fields[1]),
	}, nil
}

// Keyword returns the lookup key for a command token: upper-cased, with one
// leading marker removed.
func Keyword(token string) string {
	return strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(token)), Marker)
}
