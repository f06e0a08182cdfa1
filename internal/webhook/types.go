package webhook

// SignatureHeader is the header Linear signs its payloads with: an
// HMAC-SHA256 hex digest of the raw request body.
const SignatureHeader = "Linear-Signature"

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret           string   // Shared secret for signature verification
	BypassValidation bool     // Skip signature verification (test environments only)
	AllowedIPs       []string // IP whitelist (optional)
	RateLimitPerMin  int      // Max requests per minute
}
