package portal

// Record status values shared by catalog entities and relationship rows.
// Retired rows are kept for history and can be re-activated; nothing in
// the portal hard-deletes a link row.
const (
	RecordActive  = "ACTIVE"
	RecordRetired = "RETIRED"
)
