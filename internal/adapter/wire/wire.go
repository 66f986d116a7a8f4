// Package wire is the single translation point between the editor's
// camelCase content aggregate and the backend's snake_case persistence
// shape. Every call site goes through here; per-component ad hoc mapping is
// how field names drift.
package wire

import (
	"encoding/json"

	"career-studio/internal/model"
)

type PersonalInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Title    string `json:"title,omitempty"`
	Summary  string `json:"summary,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

type Experience struct {
	ID             *string `json:"id"`
	JobTitle       string  `json:"job_title"`
	Position       string  `json:"position"`
	Company        string  `json:"company"`
	CompanyURL     string  `json:"company_url,omitempty"`
	CompanyLogo    string  `json:"company_logo,omitempty"`
	Location       string  `json:"location,omitempty"`
	LocationType   string  `json:"location_type,omitempty"`
	EmploymentType string  `json:"employment_type,omitempty"`
	Industry       string  `json:"industry,omitempty"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date,omitempty"`
	Description    string  `json:"description,omitempty"`
}

type Education struct {
	ID          *string `json:"id"`
	Degree      string  `json:"degree"`
	Institution string  `json:"institution"`
	Location    string  `json:"location,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date,omitempty"`
	GPA         string  `json:"gpa,omitempty"`
	Honors      string  `json:"honors,omitempty"`
}

type Skill struct {
	ID       *string `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
}

// Technology carries one project-technology entry. Historic payloads used
// either "technology" or "name" for the same value; decoding accepts both,
// encoding always emits "technology".
type Technology struct {
	Technology string `json:"technology"`
}

func (t *Technology) UnmarshalJSON(b []byte) error {
	var raw struct {
		Technology string `json:"technology"`
		Name       string `json:"name"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	t.Technology = raw.Technology
	if t.Technology == "" {
		t.Technology = raw.Name
	}
	return nil
}

type Link struct {
	Label      string `json:"label"`
	URL        string `json:"url"`
	SourceType string `json:"source_type"`
}

type Project struct {
	ID           *string      `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Technologies []Technology `json:"technologies"`
	Links        []Link       `json:"links"`
}

type Publication struct {
	ID      *string  `json:"id"`
	Title   string   `json:"title"`
	Journal string   `json:"journal,omitempty"`
	Year    string   `json:"year,omitempty"`
	Authors []string `json:"authors,omitempty"`
	Links   []Link   `json:"links,omitempty"`
}

type Certificate struct {
	ID        *string `json:"id"`
	Title     string  `json:"title"`
	Issuer    string  `json:"issuer,omitempty"`
	IssueDate string  `json:"issue_date,omitempty"`
	FileURL   string  `json:"file_url,omitempty"`
}

// Content is the snake_case aggregate the backend persists as one JSON
// object per save.
type Content struct {
	PersonalInfo PersonalInfo  `json:"personal_info"`
	Experiences  []Experience  `json:"experiences"`
	Education    []Education   `json:"education"`
	Skills       []Skill       `json:"skills"`
	Projects     []Project     `json:"projects"`
	Publications []Publication `json:"publications"`
	Certificates []Certificate `json:"certificates"`
}

// FromContent maps the editor aggregate onto the backend shape. nil ids stay
// nil (encoded as JSON null), never "".
func FromContent(c model.Content) Content {
	out := Content{
		PersonalInfo: PersonalInfo{
			FullName: c.PersonalInfo.FullName,
			Email:    c.PersonalInfo.Email,
			Phone:    c.PersonalInfo.Phone,
			Address:  c.PersonalInfo.Address,
			Title:    c.PersonalInfo.Title,
			Summary:  c.PersonalInfo.Summary,
			Avatar:   c.PersonalInfo.Avatar,
		},
		Experiences:  make([]Experience, len(c.Experiences)),
		Education:    make([]Education, len(c.Education)),
		Skills:       make([]Skill, len(c.Skills)),
		Projects:     make([]Project, len(c.Projects)),
		Publications: make([]Publication, len(c.Publications)),
		Certificates: make([]Certificate, len(c.Certificates)),
	}
	for i, e := range c.Experiences {
		out.Experiences[i] = Experience{
			ID:             e.ID,
			JobTitle:       e.JobTitle,
			Position:       e.Position,
			Company:        e.Company,
			CompanyURL:     e.CompanyURL,
			CompanyLogo:    e.CompanyLogo,
			Location:       e.Location,
			LocationType:   string(e.LocationType),
			EmploymentType: e.EmploymentType,
			Industry:       e.Industry,
			StartDate:      e.StartDate,
			EndDate:        e.EndDate,
			Description:    e.Description,
		}
	}
	for i, e := range c.Education {
		out.Education[i] = Education{
			ID:          e.ID,
			Degree:      e.Degree,
			Institution: e.Institution,
			Location:    e.Location,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			GPA:         e.GPA,
			Honors:      e.Honors,
		}
	}
	for i, s := range c.Skills {
		out.Skills[i] = Skill{ID: s.ID, Name: s.Name, Category: s.Category}
	}
	for i, p := range c.Projects {
		techs := make([]Technology, len(p.Technologies))
		for j, t := range p.Technologies {
			techs[j] = Technology{Technology: t.Technology}
		}
		out.Projects[i] = Project{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			Technologies: techs,
			Links:        linksFromModel(p.Links),
		}
	}
	for i, p := range c.Publications {
		out.Publications[i] = Publication{
			ID:      p.ID,
			Title:   p.Title,
			Journal: p.Journal,
			Year:    p.Year,
			Authors: append([]string(nil), p.Authors...),
			Links:   linksFromModel(p.Links),
		}
	}
	for i, ct := range c.Certificates {
		out.Certificates[i] = Certificate{
			ID:        ct.ID,
			Title:     ct.Title,
			Issuer:    ct.Issuer,
			IssueDate: ct.IssueDate,
			FileURL:   ct.FileURL,
		}
	}
	return out
}

// ToContent maps a backend payload back into the editor shape. Absent
// optionals decode to "" (string zero value), never to a distinct
// missing-vs-empty state, which keeps editor field bindings stable.
func ToContent(w Content) model.Content {
	out := model.Content{
		PersonalInfo: model.PersonalInfo{
			FullName: w.PersonalInfo.FullName,
			Email:    w.PersonalInfo.Email,
			Phone:    w.PersonalInfo.Phone,
			Address:  w.PersonalInfo.Address,
			Title:    w.PersonalInfo.Title,
			Summary:  w.PersonalInfo.Summary,
			Avatar:   w.PersonalInfo.Avatar,
		},
		Experiences:  make([]model.Experience, len(w.Experiences)),
		Education:    make([]model.Education, len(w.Education)),
		Skills:       make([]model.Skill, len(w.Skills)),
		Projects:     make([]model.Project, len(w.Projects)),
		Publications: make([]model.Publication, len(w.Publications)),
		Certificates: make([]model.Certificate, len(w.Certificates)),
	}
	for i, e := range w.Experiences {
		out.Experiences[i] = model.Experience{
			ID:             e.ID,
			JobTitle:       e.JobTitle,
			Position:       e.Position,
			Company:        e.Company,
			CompanyURL:     e.CompanyURL,
			CompanyLogo:    e.CompanyLogo,
			Location:       e.Location,
			LocationType:   model.LocationType(e.LocationType),
			EmploymentType: e.EmploymentType,
			Industry:       e.Industry,
			StartDate:      e.StartDate,
			EndDate:        e.EndDate,
			Description:    e.Description,
		}
	}
	for i, e := range w.Education {
		out.Education[i] = model.Education{
			ID:          e.ID,
			Degree:      e.Degree,
			Institution: e.Institution,
			Location:    e.Location,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			GPA:         e.GPA,
			Honors:      e.Honors,
		}
	}
	for i, s := range w.Skills {
		out.Skills[i] = model.Skill{ID: s.ID, Name: s.Name, Category: s.Category}
	}
	for i, p := range w.Projects {
		techs := make([]model.Technology, len(p.Technologies))
		for j, t := range p.Technologies {
			techs[j] = model.Technology{Technology: t.Technology}
		}
		out.Projects[i] = model.Project{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			Technologies: techs,
			Links:        linksToModel(p.Links),
		}
	}
	for i, p := range w.Publications {
		out.Publications[i] = model.Publication{
			ID:      p.ID,
			Title:   p.Title,
			Journal: p.Journal,
			Year:    p.Year,
			Authors: append([]string(nil), p.Authors...),
			Links:   linksToModel(p.Links),
		}
	}
	for i, ct := range w.Certificates {
		out.Certificates[i] = model.Certificate{
			ID:        ct.ID,
			Title:     ct.Title,
			Issuer:    ct.Issuer,
			IssueDate: ct.IssueDate,
			FileURL:   ct.FileURL,
		}
	}
	return out
}

func linksFromModel(ls []model.Link) []Link {
	out := make([]Link, len(ls))
	for i, l := range ls {
		out[i] = Link{Label: l.Label, URL: l.URL, SourceType: string(l.SourceType)}
	}
	return out
}

func linksToModel(ls []Link) []model.Link {
	out := make([]model.Link, len(ls))
	for i, l := range ls {
		out[i] = model.Link{Label: l.Label, URL: l.URL, SourceType: model.LinkSource(l.SourceType)}
	}
	return out
}
