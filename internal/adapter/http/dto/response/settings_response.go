package response

import (
	"strings"

	"smart_laundry/internal/domain/entities"
)

type PricingResponse struct {
	ServiceType     string  `json:"service_type"`
	Label           string  `json:"label"`
	UnitPrice       float64 `json:"unit_price"`
	TurnaroundHours int     `json:"turnaround_hours"`
}

func FromPricingTable(table []entities.ServicePricing) []PricingResponse {
	out := make([]PricingResponse, 0, len(table))
	for _, p := range table {
		price, _ := p.UnitPrice.Float64()
		out = append(out, PricingResponse{
			ServiceType:     string(p.ServiceType),
			Label:           p.Label,
			UnitPrice:       price,
			TurnaroundHours: p.TurnaroundHours,
		})
	}
	return out
}

// IntegrationResponse never carries the full token.
type IntegrationResponse struct {
	Enabled     bool   `json:"enabled"`
	TokenSet    bool   `json:"token_set"`
	TokenMasked string `json:"token_masked,omitempty"`
	Ready       bool   `json:"ready"`
}

func FromIntegrationConfig(cfg entities.IntegrationConfig) IntegrationResponse {
	return IntegrationResponse{
		Enabled:     cfg.Enabled,
		TokenSet:    cfg.Token != "",
		TokenMasked: MaskToken(cfg.Token),
		Ready:       cfg.Ready(),
	}
}

// MaskToken keeps the last four characters visible.
func MaskToken(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}
	const visible = 4
	if len(token) <= visible {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-visible) + token[len(token)-visible:]
}

type UserResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{Username: u.Username, Role: string(u.Role)}
}
