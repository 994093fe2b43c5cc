package config

import (
	"os"
	"regexp"
	"strings"
)

// envVarPattern matches ${NAME}, ${NAME:-default} and $NAME references.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([a-zA-Z_][a-zA-Z0-9_]*)`)

// ExpandEnv replaces environment references in s. ${NAME:-default} yields
// default when NAME is unset or empty; other unset names expand to "".
//
// Color values such as "#ff0000" contain no "$" and pass through unchanged.
func ExpandEnv(s string) string {
	if !strings.Contains(s, "$") {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if strings.HasPrefix(match, "${") {
			inner := match[2 : len(match)-1]
			name, def, hasDefault := strings.Cut(inner, ":-")
			if val := os.Getenv(name); val != "" || !hasDefault {
				return val
			}
			return def
		}
		return os.Getenv(match[1:])
	})
}
