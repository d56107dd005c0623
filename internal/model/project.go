package model

// Project is a read-only view of one board entry, taken from the page.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ExtraInfo   string `json:"extra_info"`
	Status      string `json:"status"` // "active" | "finished"
	Action      string `json:"action"` // label on the switch control

	Tooltip *Tooltip `json:"tooltip,omitempty"`
}

// Tooltip is the card currently open on a project, if any.
type Tooltip struct {
	Text string `json:"text"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// Finished reports whether the project sits in the finished list.
func (p Project) Finished() bool { return p.Status == "finished" }
