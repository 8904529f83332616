package extract

// Profile is the best-effort structured data recovered from a résumé.
// Every field is always present: strings default to "" and the slices are
// never nil, so callers can read any key without checking. Values are raw
// extracted text; nothing is escaped here, callers rendering untrusted
// content must sanitize first.
type Profile struct {
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Title      string            `json:"title"`
	Bio        string            `json:"bio"`
	Location   string            `json:"location"`
	Skills     []string          `json:"skills"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
}

// EducationEntry always carries an institution name; degree and the other
// fields may be empty. Whether a degreeless entry is acceptable is a
// persistence rule owned by the caller.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartYear   string `json:"startYear"`
	EndYear     string `json:"endYear"`
}

type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartYear   string `json:"startYear"`
	EndYear     string `json:"endYear"`
	Description string `json:"description"`
}

// HasInfo reports whether the extraction recovered anything a user would
// consider meaningful. The upload flow uses this to tell the user manual
// entry is needed instead of treating a sparse parse as an error.
func (p *Profile) HasInfo() bool {
	return len(p.Skills) > 0 || len(p.Education) > 0 || len(p.Experience) > 0 ||
		p.Name != "" || p.Email != "" || p.Phone != "" || p.Title != ""
}

func emptyProfile() *Profile {
	return &Profile{
		Skills:     []string{},
		Education:  []EducationEntry{},
		Experience: []ExperienceEntry{},
	}
}
