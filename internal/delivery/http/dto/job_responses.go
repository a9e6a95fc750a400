package dto

// PinToggleResponse reports the pin flag after a toggle.
type PinToggleResponse struct {
	Pinned  bool   `json:"pinned"`
	Message string `json:"message"`
}

// TokenPairResponse carries a freshly minted access/refresh pair.
type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
