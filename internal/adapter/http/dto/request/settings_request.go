package request

// UpdateIntegrationRequest changes only the fields that are present.
type UpdateIntegrationRequest struct {
	Token   *string `json:"token"`
	Enabled *bool   `json:"enabled"`
}

func (r UpdateIntegrationRequest) Empty() bool {
	return r.Token == nil && r.Enabled == nil
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
