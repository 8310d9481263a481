package models

// Signature records a client sign-off on an estimate. EstimateID is a
// loose reference. At most one signature per estimate in normal
// operation; the signing queue hides already-signed estimates rather
// than the store enforcing uniqueness.
type Signature struct {
	ID            string `json:"id"`
	EstimateID    string `json:"estimateId"`
	SignerName    string `json:"signerName"`
	SignerEmail   string `json:"signerEmail"`
	SignatureData string `json:"signatureData"` // opaque image payload
	SignedAt      string `json:"signedAt"`
	IPAddress     string `json:"ipAddress"` // display-only provenance
}
