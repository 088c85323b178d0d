package model

// AlumniProfile is one entry in the alumni directory.
//
// Directory entries are static, read-only records: there is no create/update
// lifecycle here, only search. Batch is the graduation year kept as an int so
// the batch-range filter can bucket it without reparsing.
type AlumniProfile struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Designation string   `json:"designation"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Batch       int      `json:"batch"`
	Skills      []string `json:"skills"`
	IsMentor    bool     `json:"isMentor"`
	Avatar      string   `json:"avatar,omitempty"`
}
