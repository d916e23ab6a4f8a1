package logs

import (
	"log/slog"
	"strings"
)

const emailAttrKey = "email"

// obfuscateEmailAttr masks the local part of any string attribute named "email",
// keeping the first visible characters: test.mail@gmail.com -> te*******@gmail.com.
func obfuscateEmailAttr(visible int) func(groups []string, a slog.Attr) slog.Attr {
	return func(_ []string, a slog.Attr) slog.Attr {
		if a.Key != emailAttrKey || a.Value.Kind() != slog.KindString {
			return a
		}

		return slog.String(a.Key, ObfuscateEmail(a.Value.String(), visible))
	}
}

// ObfuscateEmail hides all but the first visible characters of the local part.
// Values without an @ are masked completely.
func ObfuscateEmail(email string, visible int) string {
	local, domain, found := strings.Cut(email, "@")
	if !found {
		return strings.Repeat("*", len(email))
	}

	if visible < 0 {
		visible = 0
	}
	if visible > len(local) {
		visible = len(local)
	}

	return local[:visible] + strings.Repeat("*", len(local)-visible) + "@" + domain
}
