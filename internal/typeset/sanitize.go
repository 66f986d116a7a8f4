package typeset

import "career-studio/internal/model"

// SanitizeContent returns a copy of c with every human-text field escaped
// and every date field normalized. URLs, avatars and logos are left alone:
// they never reach the typesetter as text. Pure; the input is not touched.
//
// This runs exactly once per outbound payload, on the save/render/generate
// path. Skipping it corrupts the generated PDF; running it twice
// double-escapes.
func SanitizeContent(c model.Content) model.Content {
	p := c.PersonalInfo
	p.FullName = Escape(p.FullName)
	p.Email = Escape(p.Email)
	p.Phone = Escape(p.Phone)
	p.Address = Escape(p.Address)
	p.Title = Escape(p.Title)
	p.Summary = Escape(p.Summary)
	c.PersonalInfo = p

	exps := make([]model.Experience, len(c.Experiences))
	for i, e := range c.Experiences {
		e.JobTitle = Escape(e.JobTitle)
		e.Position = Escape(e.Position)
		e.Company = Escape(e.Company)
		e.Location = Escape(e.Location)
		e.EmploymentType = Escape(e.EmploymentType)
		e.Industry = Escape(e.Industry)
		e.Description = Escape(e.Description)
		e.StartDate = NormalizeDate(e.StartDate)
		if e.EndDate != "" {
			e.EndDate = NormalizeDate(e.EndDate)
		}
		exps[i] = e
	}
	c.Experiences = exps

	edus := make([]model.Education, len(c.Education))
	for i, e := range c.Education {
		e.Degree = Escape(e.Degree)
		e.Institution = Escape(e.Institution)
		e.Location = Escape(e.Location)
		e.Honors = Escape(e.Honors)
		e.StartDate = NormalizeDate(e.StartDate)
		if e.EndDate != "" {
			e.EndDate = NormalizeDate(e.EndDate)
		}
		edus[i] = e
	}
	c.Education = edus

	skills := make([]model.Skill, len(c.Skills))
	for i, s := range c.Skills {
		s.Name = Escape(s.Name)
		s.Category = Escape(s.Category)
		skills[i] = s
	}
	c.Skills = skills

	projs := make([]model.Project, len(c.Projects))
	for i, p := range c.Projects {
		p.Name = Escape(p.Name)
		p.Description = Escape(p.Description)
		techs := make([]model.Technology, len(p.Technologies))
		for j, t := range p.Technologies {
			t.Technology = Escape(t.Technology)
			techs[j] = t
		}
		p.Technologies = techs
		links := make([]model.Link, len(p.Links))
		for j, l := range p.Links {
			l.Label = Escape(l.Label)
			links[j] = l
		}
		p.Links = links
		projs[i] = p
	}
	c.Projects = projs

	pubs := make([]model.Publication, len(c.Publications))
	for i, p := range c.Publications {
		p.Title = Escape(p.Title)
		p.Journal = Escape(p.Journal)
		authors := make([]string, len(p.Authors))
		for j, a := range p.Authors {
			authors[j] = Escape(a)
		}
		p.Authors = authors
		links := make([]model.Link, len(p.Links))
		for j, l := range p.Links {
			l.Label = Escape(l.Label)
			links[j] = l
		}
		p.Links = links
		pubs[i] = p
	}
	c.Publications = pubs

	certs := make([]model.Certificate, len(c.Certificates))
	for i, ct := range c.Certificates {
		ct.Title = Escape(ct.Title)
		ct.Issuer = Escape(ct.Issuer)
		ct.IssueDate = NormalizeDate(ct.IssueDate)
		certs[i] = ct
	}
	c.Certificates = certs

	return c
}
