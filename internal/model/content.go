package model

// Go models for the editor-side content aggregate. JSON tags are the
// camelCase editor shape; the snake_case backend shape lives in
// internal/adapter/wire.

// LocationType is the work-site arrangement of an experience entry.
type LocationType string

const (
	OnSite LocationType = "on-site"
	Remote LocationType = "remote"
	Hybrid LocationType = "hybrid"
)

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	// Portfolio-only fields; empty on CVs.
	Title   string `json:"title,omitempty"`
	Summary string `json:"summary,omitempty"`
	Avatar  string `json:"avatar,omitempty"`
}

type Experience struct {
	ID             *string      `json:"id"`
	JobTitle       string       `json:"jobTitle"`
	Position       string       `json:"position"`
	Company        string       `json:"company"`
	CompanyURL     string       `json:"companyUrl"`
	CompanyLogo    string       `json:"companyLogo"`
	Location       string       `json:"location"`
	LocationType   LocationType `json:"locationType"`
	EmploymentType string       `json:"employmentType"`
	Industry       string       `json:"industry"`
	StartDate      string       `json:"startDate"`
	EndDate        string       `json:"endDate"` // empty means present
	Description    string       `json:"description"`
}

type Education struct {
	ID          *string `json:"id"`
	Degree      string  `json:"degree"`
	Institution string  `json:"institution"`
	Location    string  `json:"location"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	GPA         string  `json:"gpa"`
	Honors      string  `json:"honors"`
}

type Skill struct {
	ID       *string `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
}

type Technology struct {
	Technology string `json:"technology"`
}

// LinkSource discriminates where a link entry hangs off of.
type LinkSource string

const (
	LinkFromProject     LinkSource = "project"
	LinkFromPublication LinkSource = "publication"
)

type Link struct {
	Label      string     `json:"label"`
	URL        string     `json:"url"`
	SourceType LinkSource `json:"sourceType"`
}

type Project struct {
	ID           *string      `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Technologies []Technology `json:"technologies"`
	Links        []Link       `json:"links"`
}

type Publication struct {
	ID      *string  `json:"id"`
	Title   string   `json:"title"`
	Journal string   `json:"journal"`
	Year    string   `json:"year"`
	Authors []string `json:"authors,omitempty"` // portfolio
	Links   []Link   `json:"links,omitempty"`   // cv
}

type Certificate struct {
	ID         *string `json:"id"`
	Title      string  `json:"title"`
	Issuer     string  `json:"issuer"`
	IssueDate  string  `json:"issueDate"`
	FileURL    string  `json:"fileUrl"`
}

// Content is the full section aggregate of one document. It is persisted
// atomically as a single JSON object per save.
type Content struct {
	PersonalInfo PersonalInfo  `json:"personalInfo"`
	Experiences  []Experience  `json:"experiences"`
	Education    []Education   `json:"education"`
	Skills       []Skill       `json:"skills"`
	Projects     []Project     `json:"projects"`
	Publications []Publication `json:"publications"`
	Certificates []Certificate `json:"certificates"`
}
