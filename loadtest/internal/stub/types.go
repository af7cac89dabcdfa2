package stub

// Seed payloads describe a pantry in day offsets so a load run does not
// depend on the wall-clock date it starts on.

type SeedRequest struct {
	Owners []SeedOwner `json:"owners"`
}

type SeedOwner struct {
	ID    string     `json:"id"`
	Email string     `json:"email"`
	Items []SeedItem `json:"items"`
}

type SeedItem struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Quantity int    `json:"quantity"`
	// DaysUntilExpiry is resolved against the stub's clock at seed time;
	// negative values seed already-expired products.
	DaysUntilExpiry int `json:"days_until_expiry"`
}

// Firestore REST and Identity Toolkit shapes served back to the scanner.

type listDocumentsResponse struct {
	Documents     []document `json:"documents"`
	NextPageToken string     `json:"nextPageToken,omitempty"`
}

type document struct {
	Name   string           `json:"name"`
	Fields map[string]value `json:"fields"`
}

type value struct {
	StringValue string `json:"stringValue,omitempty"`
}

type lookupRequest struct {
	LocalID []string `json:"localId"`
}

type lookupUser struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
}

type emailSendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams map[string]any `json:"template_params"`
}

type DeliveryResponse struct {
	To          string `json:"to"`
	ProductName string `json:"product_name"`
	Subject     string `json:"subject"`
	ReceivedAt  string `json:"received_at"`
}
