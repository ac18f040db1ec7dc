package requirements

import "time"

// StatusPending is the only status this system ever writes; requirements
// are triaged elsewhere.
const StatusPending = "pending"

// Requirement is one submitted client requirement. Created exactly once
// per successful submission and never updated afterwards.
type Requirement struct {
	ID          string
	Description string
	FileURL     string
	FileName    string
	UserID      string
	UserEmail   string
	Status      string
	CreatedAt   time.Time
}

// UploadResult is what a completed upload hands back to the submission
// workflow: the public address plus the original display name.
type UploadResult struct {
	URL      string
	FileName string
	Key      string
}
