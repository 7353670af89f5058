package models

type TeamMember struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Image     string `json:"image,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Github    string `json:"github,omitempty"`
	SortOrder int    `json:"sort_order"`
}
