package models

type EstimateStatus string

const (
	EstimateDraft    EstimateStatus = "draft"
	EstimateSent     EstimateStatus = "sent"
	EstimateApproved EstimateStatus = "approved"
	EstimateRejected EstimateStatus = "rejected"
)

var AllEstimateStatuses = []EstimateStatus{
	EstimateDraft, EstimateSent, EstimateApproved, EstimateRejected,
}

// ProjectTypes are the preset descriptions offered when creating
// projects and estimates.
var ProjectTypes = []string{
	"Renovation",
	"Remodel",
	"New Construction",
	"Commercial Build-Out",
	"Addition",
}

// EstimateLineItem is one priced row of an estimate. MaterialCost is a
// unit cost; the line total multiplies everything by Quantity.
type EstimateLineItem struct {
	ID           string  `json:"id"`
	Description  string  `json:"description"`
	Trade        Trade   `json:"trade"`
	ManHours     float64 `json:"manHours"`
	LaborRate    float64 `json:"laborRate"`
	MaterialCost float64 `json:"materialCost"`
	Quantity     float64 `json:"quantity"`
}

// Estimate is a priced proposal document. Status carries no enforced
// transition order; any status is reachable from any other. Signature
// fields are populated only by the signing flow.
type Estimate struct {
	ID            string             `json:"id"`
	ProjectID     string             `json:"projectId,omitempty"`
	ClientName    string             `json:"clientName"`
	ClientEmail   string             `json:"clientEmail"`
	ProjectType   string             `json:"projectType"`
	SqFootage     float64            `json:"sqFootage"`
	ScopeItems    []string           `json:"scopeItems"`
	LineItems     []EstimateLineItem `json:"lineItems"` // insertion order is display order
	Notes         string             `json:"notes"`
	Status        EstimateStatus     `json:"status"`
	SignatureData string             `json:"signatureData,omitempty"`
	SignedAt      string             `json:"signedAt,omitempty"`
	CreatedAt     string             `json:"createdAt"`
	UpdatedAt     string             `json:"updatedAt"`
}
