package domain

// TrackedItem is one inventory entry owned by a single user.
// ExpiryDate keeps the raw calendar string from the store ("YYYY-MM-DD");
// items without one are exempt from notification.
type TrackedItem struct {
	ID         string
	OwnerID    string
	Name       string
	Category   string
	Quantity   int
	ExpiryDate string
}

func (i *TrackedItem) HasExpiry() bool {
	return i.ExpiryDate != ""
}

// Owner is an authenticated account. Email may be empty, in which case the
// owner's items are never notified.
type Owner struct {
	ID    string
	Email string
}

func (o *Owner) Notifiable() bool {
	return o.Email != ""
}
