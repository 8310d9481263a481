package storage

import "github.com/rzacher/sitebook/internal/models"

// Collection names as persisted. These match the keys of the exported
// snapshot format, so an export from one provider imports into another.
const (
	CollectionProjects   = "projects"
	CollectionPunchItems = "punchItems"
	CollectionSubs       = "subs"
	CollectionEstimates  = "estimates"
	CollectionAnalyses   = "photoAnalyses"
	CollectionSignatures = "signatures"
)

// Provider is the persistence gateway. Each getter returns the whole
// named collection (empty when absent) and each saver replaces it
// wholesale; there are no partial writes. Order is preserved across a
// save/load round trip. Implementations are not safe for concurrent
// use; sitebook is a single-writer tool.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Collections
	GetProjects() ([]models.Project, error)
	SaveProjects([]models.Project) error
	GetPunchItems() ([]models.PunchItem, error)
	SavePunchItems([]models.PunchItem) error
	GetSubs() ([]models.SubContractor, error)
	SaveSubs([]models.SubContractor) error
	GetEstimates() ([]models.Estimate, error)
	SaveEstimates([]models.Estimate) error
	GetAnalyses() ([]models.PhotoAnalysis, error)
	SaveAnalyses([]models.PhotoAnalysis) error
	GetSignatures() ([]models.Signature, error)
	SaveSignatures([]models.Signature) error

	// Settings is a singleton: reads fall back to the default profile,
	// writes replace the whole record.
	GetSettings() (models.AppSettings, error)
	SaveSettings(models.AppSettings) error

	// Utils
	GetConfigPath() string
}
