package models

// Resource is a shared learning document. Type is a display hint
// ("pdf", "doc", "xls", "ppt"), not a validated MIME type.
type Resource struct {
	ID       int    `json:"id"`
	FileName string `json:"fileName"`
	Subject  string `json:"subject"`
	Uploader string `json:"uploader"`
	Date     string `json:"date"`
	Type     string `json:"type"`
}

// Sortable resource columns accepted by the listing endpoint.
const (
	ResourceSortFileName = "fileName"
	ResourceSortSubject  = "subject"
	ResourceSortUploader = "uploader"
	ResourceSortDate     = "date"
)

// ResourceFilter narrows and orders the resource listing.
type ResourceFilter struct {
	Search    string
	Subject   string
	SortBy    string
	SortOrder string
}
