package models

// UserProfile is the server-owned profile read model. Trust and reputation
// fields mirror server state exactly; the client never derives them.
type UserProfile struct {
	ID              int          `json:"id"`
	Email           string       `json:"email"`
	EmailVerified   bool         `json:"email_verified"`
	EmailVerifiedAt string       `json:"email_verified_at,omitempty"`
	Phone           string       `json:"phone,omitempty"`
	PhoneVerified   bool         `json:"phone_verified"`
	PhoneVerifiedAt string       `json:"phone_verified_at,omitempty"`
	TrustLevel      string       `json:"trust_level"`
	ReputationScore int          `json:"reputation_score"`
	OauthLinked     *OauthLinked `json:"oauth_linked,omitempty"`
	LastLoginAt     string       `json:"last_login_at,omitempty"`
	LastActivityAt  string       `json:"last_activity_at,omitempty"`
	Account         *UserAccount `json:"account,omitempty"`
	Locale          string       `json:"locale,omitempty"`
}

type OauthLinked struct {
	Google bool `json:"google"`
	Apple  bool `json:"apple"`
}

// UserAccount is the profile sub-record with display and notification
// preferences. BalanceGrosze is the wallet balance in grosze (1/100 PLN).
type UserAccount struct {
	FirstName            string `json:"first_name,omitempty"`
	LastName             string `json:"last_name,omitempty"`
	FullName             string `json:"full_name,omitempty"`
	AvatarURL            string `json:"avatar_url,omitempty"`
	AvatarThumbnailURL   string `json:"avatar_thumbnail_url,omitempty"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	QuietHoursStart      string `json:"quiet_hours_start,omitempty"`
	QuietHoursEnd        string `json:"quiet_hours_end,omitempty"`
	Locale               string `json:"locale,omitempty"`
	BalanceGrosze        int    `json:"balance_grosze"`
	BalanceUpdatedAt     string `json:"balance_updated_at,omitempty"`
}

// UpdateProfileAccountRequest carries the user-editable account fields.
type UpdateProfileAccountRequest struct {
	FirstName            string `json:"first_name,omitempty"`
	LastName             string `json:"last_name,omitempty"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	QuietHoursStart      string `json:"quiet_hours_start,omitempty"`
	QuietHoursEnd        string `json:"quiet_hours_end,omitempty"`
}
