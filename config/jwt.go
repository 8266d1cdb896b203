package config

import "time"

type Jwt struct {
	Secret      string `json:"secret" yaml:"secret"`
	ExpireHours int    `json:"expire_hours" yaml:"expire_hours"`
}

func (j *Jwt) Expire() time.Duration {
	return time.Duration(j.ExpireHours) * time.Hour
}

// Session controls the cookie that carries the session token.
type Session struct {
	CookieName string `json:"cookie_name" yaml:"cookie_name"`
	Domain     string `json:"domain" yaml:"domain"`
	Secure     bool   `json:"secure" yaml:"secure"`
}
