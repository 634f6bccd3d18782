package llm

// HasRequiredFields reports whether every name in required is present as a
// top-level key of payload. Values are not inspected; an explicit null
// still counts as present. The check is shallow and never recurses into
// nested objects or arrays.
func HasRequiredFields(payload map[string]any, required []string) bool {
	for _, field := range required {
		if _, ok := payload[field]; !ok {
			return false
		}
	}
	return true
}

// MissingFields returns the required field names absent from payload, in
// the order they were requested. Empty when HasRequiredFields is true.
func MissingFields(payload map[string]any, required []string) []string {
	var missing []string
	for _, field := range required {
		if _, ok := payload[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}
