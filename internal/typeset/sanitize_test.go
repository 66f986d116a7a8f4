package typeset

import (
	"testing"

	"career-studio/internal/model"
)

func TestSanitizeContent(t *testing.T) {
	id := "7"
	in := model.Content{
		PersonalInfo: model.PersonalInfo{FullName: "Jane & John", Email: "jane@example.com"},
		Experiences: []model.Experience{{
			ID:        &id,
			JobTitle:  "R&D Lead",
			Company:   "ACME",
			StartDate: "2020-03",
			EndDate:   "",
		}},
		Skills: []model.Skill{{Name: "C++ & Co.", Category: "Languages"}},
	}

	out := SanitizeContent(in)

	if got := out.PersonalInfo.FullName; got != `Jane \& John` {
		t.Errorf("name = %q", got)
	}
	if got := out.Experiences[0].JobTitle; got != `R\&D Lead` {
		t.Errorf("job title = %q", got)
	}
	if got := out.Experiences[0].StartDate; got != "2020-03-01" {
		t.Errorf("start date = %q", got)
	}
	if out.Experiences[0].EndDate != "" {
		t.Errorf("empty end date must stay empty (means present), got %q", out.Experiences[0].EndDate)
	}
	if got := out.Skills[0].Name; got != `C++ \& Co.` {
		t.Errorf("skill = %q", got)
	}
	if out.Experiences[0].ID == nil || *out.Experiences[0].ID != "7" {
		t.Errorf("ids must survive sanitization")
	}

	// input untouched
	if in.PersonalInfo.FullName != "Jane & John" {
		t.Errorf("input mutated: %q", in.PersonalInfo.FullName)
	}
	if in.Skills[0].Name != "C++ & Co." {
		t.Errorf("input skill mutated: %q", in.Skills[0].Name)
	}
}
