package lead

// Audit action and entity constants for the import pipeline.
const (
	AuditActionImport = "IMPORT"
	AuditEntityLead   = "LEAD"
)

// Actor is the authenticated user performing an operation.
type Actor struct {
	ID   string
	Name string
	Role string
}

// RoleAdmin is the role required for import operations.
const RoleAdmin = "admin"

// AuditEntry is one audit-log record. EntityID is nil for batch-scoped
// entries such as an import summary.
type AuditEntry struct {
	Action     string
	EntityType string
	EntityID   *string
	ActorID    string
	Detail     string
}
