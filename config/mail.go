package config

import "time"

type Mail struct {
	From string `json:"from" yaml:"from"`
	// VerifyTTL and ResetTTL are link lifetimes in seconds.
	VerifyTTL int64 `json:"verify_ttl" yaml:"verify_ttl"`
	ResetTTL  int64 `json:"reset_ttl" yaml:"reset_ttl"`
}

func (m *Mail) VerifyExpire() time.Duration {
	return time.Duration(m.VerifyTTL) * time.Second
}

func (m *Mail) ResetExpire() time.Duration {
	return time.Duration(m.ResetTTL) * time.Second
}
