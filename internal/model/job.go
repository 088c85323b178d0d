package model

// JobPosting is one entry on the job board.
//
// Postings are static records. Salary and Posted are display strings, not
// parsed amounts/timestamps — the board never sorts or computes on them.
// IsRemote is separate from Location on purpose: a posting can list a city
// office and still be remote-friendly, and the location filter treats
// "Remote" as matching either.
type JobPosting struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Salary       string   `json:"salary"`
	Posted       string   `json:"posted"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	PostedBy     string   `json:"postedBy"`
	IsRemote     bool     `json:"isRemote"`
}
