package domain

// Tier represents the urgency classification of an item's expiry offset.
type Tier string

const (
	TierExpired      Tier = "expired"
	TierExpiresToday Tier = "expires_today"
	TierExpiresSoon  Tier = "expires_soon"
	TierReminder     Tier = "reminder"
)

func (t Tier) String() string {
	return string(t)
}

// IsUrgent reports whether the tier needs same-day attention.
func (t Tier) IsUrgent() bool {
	return t == TierExpired || t == TierExpiresToday
}
