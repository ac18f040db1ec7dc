package requirements

import "time"

// SubmitRequest is the JSON body of a submission attempt. The file
// fields come from a previously completed upload.
type SubmitRequest struct {
	Description string `json:"description"`
	FileURL     string `json:"fileUrl"`
	FileName    string `json:"fileName"`
}

// UploadResponse is the outward-facing upload result.
type UploadResponse struct {
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
}

// RequirementResponse is the outward-facing representation of a
// submitted requirement.
type RequirementResponse struct {
	RequirementID string    `json:"requirementId"`
	Description   string    `json:"description"`
	FileURL       string    `json:"fileUrl"`
	FileName      string    `json:"fileName"`
	Status        string    `json:"status"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

func toResponse(rec Requirement) RequirementResponse {
	return RequirementResponse{
		RequirementID: rec.ID,
		Description:   rec.Description,
		FileURL:       rec.FileURL,
		FileName:      rec.FileName,
		Status:        rec.Status,
		SubmittedAt:   rec.CreatedAt,
	}
}
