package logutil

// TruncateForLog keeps the first maxLen bytes of s followed by "...".
// Session tokens and ids are logged through it so only a prefix is visible.
func TruncateForLog(s string, maxLen int) string {
	if maxLen <= 0 {
		return "..."
	}
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
