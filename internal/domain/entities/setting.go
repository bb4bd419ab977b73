package entities

import "strings"

const (
	SettingKeyFonnteToken = "fonnte_token"
	SettingKeyWAEnabled   = "wa_enabled"
)

// Setting is a flat key/value row of the settings table (PK: key).
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// IntegrationConfig is the WhatsApp gateway configuration resolved for one call.
type IntegrationConfig struct {
	Token   string
	Enabled bool
}

// Ready reports whether a message may be sent with this configuration.
func (c IntegrationConfig) Ready() bool {
	return c.Enabled && strings.TrimSpace(c.Token) != ""
}
