package model

// Pure section mutations. Every helper returns a Content whose changed
// section is a fresh slice and whose untouched sections share their backing
// arrays with the input, so consumers can detect changes by reference.

func replaceAt[T any](xs []T, i int, v T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	if i >= 0 && i < len(out) {
		out[i] = v
	}
	return out
}

func removeAt[T any](xs []T, i int) []T {
	if i < 0 || i >= len(xs) {
		out := make([]T, len(xs))
		copy(out, xs)
		return out
	}
	out := make([]T, 0, len(xs)-1)
	out = append(out, xs[:i]...)
	return append(out, xs[i+1:]...)
}

func appendEntry[T any](xs []T, v T) []T {
	out := make([]T, len(xs), len(xs)+1)
	copy(out, xs)
	return append(out, v)
}

func (c Content) WithPersonalInfo(p PersonalInfo) Content {
	c.PersonalInfo = p
	return c
}

func (c Content) ReplaceExperience(i int, e Experience) Content {
	c.Experiences = replaceAt(c.Experiences, i, e)
	return c
}

// AppendExperience adds a locally created entry; the id stays nil until the
// backend assigns one.
func (c Content) AppendExperience(e Experience) Content {
	e.ID = nil
	c.Experiences = appendEntry(c.Experiences, e)
	return c
}

func (c Content) RemoveExperience(i int) Content {
	c.Experiences = removeAt(c.Experiences, i)
	return c
}

func (c Content) ReplaceEducation(i int, e Education) Content {
	c.Education = replaceAt(c.Education, i, e)
	return c
}

func (c Content) AppendEducation(e Education) Content {
	e.ID = nil
	c.Education = appendEntry(c.Education, e)
	return c
}

func (c Content) RemoveEducation(i int) Content {
	c.Education = removeAt(c.Education, i)
	return c
}

func (c Content) ReplaceSkill(i int, s Skill) Content {
	c.Skills = replaceAt(c.Skills, i, s)
	return c
}

func (c Content) AppendSkill(s Skill) Content {
	s.ID = nil
	c.Skills = appendEntry(c.Skills, s)
	return c
}

func (c Content) RemoveSkill(i int) Content {
	c.Skills = removeAt(c.Skills, i)
	return c
}

func (c Content) ReplaceProject(i int, p Project) Content {
	c.Projects = replaceAt(c.Projects, i, p)
	return c
}

func (c Content) AppendProject(p Project) Content {
	p.ID = nil
	c.Projects = appendEntry(c.Projects, p)
	return c
}

func (c Content) RemoveProject(i int) Content {
	c.Projects = removeAt(c.Projects, i)
	return c
}

func (c Content) ReplacePublication(i int, p Publication) Content {
	c.Publications = replaceAt(c.Publications, i, p)
	return c
}

func (c Content) AppendPublication(p Publication) Content {
	p.ID = nil
	c.Publications = appendEntry(c.Publications, p)
	return c
}

func (c Content) RemovePublication(i int) Content {
	c.Publications = removeAt(c.Publications, i)
	return c
}

func (c Content) ReplaceCertificate(i int, ct Certificate) Content {
	c.Certificates = replaceAt(c.Certificates, i, ct)
	return c
}

func (c Content) AppendCertificate(ct Certificate) Content {
	ct.ID = nil
	c.Certificates = appendEntry(c.Certificates, ct)
	return c
}

func (c Content) RemoveCertificate(i int) Content {
	c.Certificates = removeAt(c.Certificates, i)
	return c
}

// StripIDs rewrites every entry id to nil so the next save creates fresh
// rows server-side. This is the "save as new version" path; plain saves keep
// ids intact.
func StripIDs(c Content) Content {
	exps := make([]Experience, len(c.Experiences))
	for i, e := range c.Experiences {
		e.ID = nil
		exps[i] = e
	}
	edus := make([]Education, len(c.Education))
	for i, e := range c.Education {
		e.ID = nil
		edus[i] = e
	}
	skills := make([]Skill, len(c.Skills))
	for i, s := range c.Skills {
		s.ID = nil
		skills[i] = s
	}
	projs := make([]Project, len(c.Projects))
	for i, p := range c.Projects {
		p.ID = nil
		projs[i] = p
	}
	pubs := make([]Publication, len(c.Publications))
	for i, p := range c.Publications {
		p.ID = nil
		pubs[i] = p
	}
	certs := make([]Certificate, len(c.Certificates))
	for i, ct := range c.Certificates {
		ct.ID = nil
		certs[i] = ct
	}
	c.Experiences = exps
	c.Education = edus
	c.Skills = skills
	c.Projects = projs
	c.Publications = pubs
	c.Certificates = certs
	return c
}

// SkillGroup is one display bucket of skills sharing a category.
type SkillGroup struct {
	Category string
	Skills   []Skill
}

// GroupSkills buckets skills by category. Group order is the first-seen
// order of each category in the input, so the editor's display is stable
// across re-renders.
func GroupSkills(skills []Skill) []SkillGroup {
	idx := map[string]int{}
	groups := []SkillGroup{}
	for _, s := range skills {
		i, ok := idx[s.Category]
		if !ok {
			i = len(groups)
			idx[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}
