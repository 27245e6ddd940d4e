package utils

import (
	"log"
	"strings"
)

var lineBreaks = strings.NewReplacer("\r", " ", "\n", " ")

// LogEvent prints one key=value line per service event. Keep message
// summarized; never pass request bodies or tokens.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	if req == "" {
		req = "-"
	}
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, lineBreaks.Replace(message))
}
