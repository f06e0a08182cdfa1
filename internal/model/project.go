package model

// ProjectState is the workflow status of a project ("Planned", "In Progress", ...).
type ProjectState struct {
	Name string `json:"name"`
}

// ProjectLead identifies the person responsible for a project.
type ProjectLead struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProjectInitiative is the initiative a project belongs to.
type ProjectInitiative struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ProjectPayload is the project snapshot delivered with a Project event.
// Optional nested objects are pointers so absence is distinguishable from
// an empty value.
type ProjectPayload struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	URL         string             `json:"url"`
	Description string             `json:"description"`
	CreatedAt   string             `json:"createdAt"`
	UpdatedAt   string             `json:"updatedAt"`
	StartDate   string             `json:"startDate"`
	TargetDate  string             `json:"targetDate"`
	Health      string             `json:"health"`
	State       *ProjectState      `json:"state"`
	Lead        *ProjectLead       `json:"lead"`
	Initiative  *ProjectInitiative `json:"initiative"`
}

// Validate checks that the required fields are present and non-empty.
func (p ProjectPayload) Validate() bool {
	return p.ID != "" && p.Name != "" && p.URL != ""
}

// ProjectRef references an existing project by its external id.
type ProjectRef struct {
	ID string `json:"id"`
}

// ProjectUpdatePayload is a narrative update delivered with a ProjectUpdate
// event. It always targets an existing post via Project.ID and never
// creates a new one.
type ProjectUpdatePayload struct {
	ID        string        `json:"id"`
	Project   ProjectRef    `json:"project"`
	Body      string        `json:"body"`
	Health    string        `json:"health"`
	State     *ProjectState `json:"state"`
	URL       string        `json:"url"`
	User      *ProjectLead  `json:"user"`
	UpdatedBy *ProjectLead  `json:"updatedBy"`
}

// Validate checks that the referenced project id is present.
func (u ProjectUpdatePayload) Validate() bool {
	return u.Project.ID != ""
}

// Author returns the attribution label for an update comment.
func (u ProjectUpdatePayload) Author() string {
	if u.User != nil && u.User.Name != "" {
		return u.User.Name
	}
	if u.UpdatedBy != nil && u.UpdatedBy.Name != "" {
		return u.UpdatedBy.Name
	}
	return "Linear"
}
