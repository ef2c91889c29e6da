package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// BaseURL prefixes the API links sent in verification mails.
	BaseURL string `json:"base_url" yaml:"base_url"`
	// FrontendURL hosts the reset password page. Falls back to BaseURL.
	FrontendURL string `json:"frontend_url" yaml:"frontend_url"`
	// SlugSalt salts the hash suffix of article slugs.
	SlugSalt string `json:"slug_salt" yaml:"slug_salt"`
	NodeID   int64  `json:"node_id" yaml:"node_id"`
}
