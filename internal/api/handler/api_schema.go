package handler

// apiEnvelope is the response wrapper shared by the recommendation and
// catalog services ("success" as the boolean key; the auth service keeps its
// own "status"-keyed envelope).
type apiEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	// Cached reports whether a catalog read was served from the cache. It is
	// omitted on endpoints where caching does not apply.
	Cached *bool `json:"cached,omitempty"`
	// Errors carries per-field validation detail on 400 responses.
	Errors []FieldError `json:"errors,omitempty"`
	// Error carries the raw failure message outside production.
	Error string `json:"error,omitempty"`
}

func cachedFlag(v bool) *bool { return &v }

// serviceDescriptor is the root endpoint body each service serves.
type serviceDescriptor struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
