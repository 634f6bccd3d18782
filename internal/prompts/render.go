package prompts

import (
	"fmt"
	"strings"
)

// Render replaces every {key} occurrence in the template body with the
// corresponding value from vars. Each key is substituted in a single pass,
// so a value that itself contains {otherKey} is never re-expanded.
//
// Placeholders with no entry in vars are left in the output unchanged;
// callers own completeness. Values are inserted as-is with no escaping,
// which means a value containing brace syntax can later confuse JSON
// extraction if it circulates back through a response. Known limitation.
func Render(body string, vars map[string]string) string {
	result := body
	for key, value := range vars {
		placeholder := fmt.Sprintf("{%s}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}
