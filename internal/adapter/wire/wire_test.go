package wire

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"career-studio/internal/model"
)

func sampleModelContent() model.Content {
	exp, skill, proj := "7", "21", "33"
	return model.Content{
		PersonalInfo: model.PersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "+33 1 23 45 67 89",
			Address:  "Paris",
			Title:    "Backend Engineer",
			Summary:  "Ten years of systems work.",
			Avatar:   "https://cdn.example.com/jane.png",
		},
		Experiences: []model.Experience{{
			ID:             &exp,
			JobTitle:       "Engineer",
			Position:       "Backend",
			Company:        "ACME",
			CompanyURL:     "https://acme.example.com",
			CompanyLogo:    "https://cdn.example.com/acme.png",
			Location:       "Paris",
			LocationType:   model.Remote,
			EmploymentType: "full-time",
			Industry:       "Software",
			StartDate:      "2020-03-01",
			EndDate:        "",
			Description:    "Built the billing pipeline.",
		}},
		Education: []model.Education{{
			ID:          nil,
			Degree:      "MSc Computer Science",
			Institution: "Sorbonne",
			Location:    "Paris",
			StartDate:   "2014-09-01",
			EndDate:     "2016-06-01",
			GPA:         "3.8",
			Honors:      "cum laude",
		}},
		Skills: []model.Skill{{ID: &skill, Name: "Go", Category: "Languages"}},
		Projects: []model.Project{{
			ID:           &proj,
			Name:         "orchestrator",
			Description:  "Job scheduler.",
			Technologies: []model.Technology{{Technology: "Go"}, {Technology: "Postgres"}},
			Links:        []model.Link{{Label: "source", URL: "https://example.com/x", SourceType: model.LinkFromProject}},
		}},
		Publications: []model.Publication{{
			ID:      nil,
			Title:   "On queues",
			Journal: "SysConf",
			Year:    "2022",
			Authors: []string{"Jane Doe", "John Roe"},
			Links:   []model.Link{{Label: "paper", URL: "https://example.com/p", SourceType: model.LinkFromPublication}},
		}},
		Certificates: []model.Certificate{{
			ID:        nil,
			Title:     "CKA",
			Issuer:    "CNCF",
			IssueDate: "2021-01-01",
			FileURL:   "https://cdn.example.com/cka.pdf",
		}},
	}
}

func TestRoundTrip(t *testing.T) {
	c := sampleModelContent()
	got := ToContent(FromContent(c))
	if !reflect.DeepEqual(c, got) {
		t.Fatalf("round trip diverged:\n in: %+v\nout: %+v", c, got)
	}
}

func TestSnakeCaseFieldNames(t *testing.T) {
	b, err := json.Marshal(FromContent(sampleModelContent()))
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	for _, key := range []string{
		`"full_name"`, `"job_title"`, `"company_url"`, `"company_logo"`,
		`"location_type"`, `"employment_type"`, `"start_date"`,
		`"personal_info"`, `"source_type"`, `"issue_date"`, `"file_url"`,
	} {
		if !strings.Contains(s, key) {
			t.Errorf("wire payload missing %s", key)
		}
	}
	for _, key := range []string{`"jobTitle"`, `"companyUrl"`, `"fullName"`} {
		if strings.Contains(s, key) {
			t.Errorf("wire payload leaked camelCase key %s", key)
		}
	}
}

func TestNilIDEncodesAsNull(t *testing.T) {
	c := model.Content{
		Education: []model.Education{{Degree: "BSc", Institution: "X"}},
	}
	b, err := json.Marshal(FromContent(c))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"id":null`) {
		t.Fatalf("nil id must encode as null, payload: %s", b)
	}
	if strings.Contains(string(b), `"id":""`) {
		t.Fatalf("nil id coerced to empty string: %s", b)
	}
}

// Old payloads carry project technologies under "name"; both spellings must
// decode into the canonical key.
func TestTechnologyKeyNormalization(t *testing.T) {
	raw := `{"projects":[{"id":null,"name":"x","technologies":[{"technology":"Go"},{"name":"Postgres"}],"links":[]}]}`
	var w Content
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		t.Fatal(err)
	}
	techs := w.Projects[0].Technologies
	if techs[0].Technology != "Go" || techs[1].Technology != "Postgres" {
		t.Fatalf("technologies = %+v", techs)
	}

	b, err := json.Marshal(w.Projects[0])
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), `"name":"Postgres"`) {
		t.Fatalf("encode must emit the canonical key only: %s", b)
	}
	if !strings.Contains(string(b), `"technology":"Postgres"`) {
		t.Fatalf("canonical key missing: %s", b)
	}
}

// Absent optionals come back as empty strings after a decode, keeping
// editor bindings stable.
func TestAbsentOptionalsDefaultToEmpty(t *testing.T) {
	raw := `{"personal_info":{"full_name":"Jane","email":"j@x"},"education":[{"id":"1","degree":"BSc","institution":"X"}]}`
	var w Content
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		t.Fatal(err)
	}
	c := ToContent(w)
	e := c.Education[0]
	if e.GPA != "" || e.Honors != "" || e.Location != "" {
		t.Fatalf("optionals must default to empty: %+v", e)
	}
	if e.ID == nil || *e.ID != "1" {
		t.Fatalf("id lost in decode: %+v", e)
	}
}
