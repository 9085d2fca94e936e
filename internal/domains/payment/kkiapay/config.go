package kkiapay

// Config carries the KkiaPay API credentials. The private key
// authenticates server-side verification calls; the public key is only
// ever used by the browser widget and is exposed to the frontend.
type Config struct {
	PublicKey  string
	PrivateKey string
	Secret     string
	APIURL     string
	Sandbox    bool
}

const (
	liveAPIURL    = "https://api.kkiapay.me"
	sandboxAPIURL = "https://api-sandbox.kkiapay.me"
)

// BaseURL picks the configured endpoint, falling back to the official
// live/sandbox hosts.
func (c *Config) BaseURL() string {
	if c.APIURL != "" {
		return c.APIURL
	}
	if c.Sandbox {
		return sandboxAPIURL
	}
	return liveAPIURL
}
