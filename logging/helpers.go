package logging

// Helper functions for common middleware bundle configurations.

// WithDefaultRedaction creates config entries for both the secret and PII
// redaction middleware with their default orders.
func WithDefaultRedaction() []MiddlewareConfig {
	return []MiddlewareConfig{
		{Name: "redact-secrets", Enabled: true, Order: 10},
		{Name: "redact-pii", Enabled: true, Order: 15},
	}
}

// WithMinimalRedaction creates a config entry for secret redaction only.
func WithMinimalRedaction() []MiddlewareConfig {
	return []MiddlewareConfig{
		{Name: "redact-secrets", Enabled: true, Order: 10},
	}
}

// WithCorrelation creates a correlation middleware config entry.
func WithCorrelation() MiddlewareConfig {
	return MiddlewareConfig{Name: "correlation", Enabled: true, Order: 5}
}

// BundleSimpleWithRedaction creates a middleware bundle for the SIMPLE
// profile: secret redaction only.
func BundleSimpleWithRedaction() []MiddlewareConfig {
	return WithMinimalRedaction()
}

// BundleStructuredWithRedaction creates a middleware bundle for the
// STRUCTURED profile: correlation IDs plus full redaction.
func BundleStructuredWithRedaction() []MiddlewareConfig {
	bundle := []MiddlewareConfig{WithCorrelation()}
	return append(bundle, WithDefaultRedaction()...)
}
