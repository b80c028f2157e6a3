package models

// Category and Department are static reference rows, read-only here.
type Category struct {
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
}

type Department struct {
	DepartmentID   int64  `json:"department_id"`
	DepartmentName string `json:"department_name"`
}

// Issue is a citizen-filed report. Rows are never updated after creation;
// status changes live in issue_history.
type Issue struct {
	IssueID         int64  `json:"issue_id,omitempty"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	CategoryID      int64  `json:"category_id"`
	DepartmentID    int64  `json:"department_id"`
	LocationID      int64  `json:"location_id"`
	UserID          int64  `json:"user_id"`
	CurrentStatusID int64  `json:"current_status_id"`
}

// IssueHistory is one entry of the append-only status log for an issue.
type IssueHistory struct {
	HistoryID int64  `json:"history_id,omitempty"`
	IssueID   int64  `json:"issue_id"`
	StatusID  int64  `json:"status_id"`
	UpdatedBy *int64 `json:"updated_by"`
	Remarks   string `json:"remarks"`
}

// IssueImage links an issue to an already-uploaded image URL.
type IssueImage struct {
	ImageID  int64  `json:"image_id,omitempty"`
	IssueID  int64  `json:"issue_id"`
	ImageURL string `json:"image_url"`
}
