package inventory

// Wire types for the Firestore REST API. The mobile app stores every product
// field as a string (including quantity), so both string and integer values
// are accepted where it matters.

type listDocumentsResponse struct {
	Documents     []document `json:"documents"`
	NextPageToken string     `json:"nextPageToken"`
}

type document struct {
	Name   string           `json:"name"`
	Fields map[string]value `json:"fields"`
}

type value struct {
	StringValue  string `json:"stringValue,omitempty"`
	IntegerValue string `json:"integerValue,omitempty"`
}

type lookupRequest struct {
	LocalID        []string `json:"localId,omitempty"`
	ReturnUserInfo bool     `json:"returnUserInfo,omitempty"`
}

type lookupResponse struct {
	Users []lookupUser `json:"users"`
}

type lookupUser struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
}
