package main

import (
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/folioworks/resumeworker/internal/database"
	"github.com/folioworks/resumeworker/internal/extract"
)

// The non-destructive merge policy: when a user re-uploads a resume, a
// stored portfolio field is overwritten only if the fresh extraction
// produced a non-empty value. User edits survive a bad parse.

func pick(fresh, stored string) string {
	if strings.TrimSpace(fresh) != "" {
		return fresh
	}
	return stored
}

// storableEducation drops entries without a degree; the portfolio schema
// requires one on every education row.
func storableEducation(entries []extract.EducationEntry) []extract.EducationEntry {
	var kept []extract.EducationEntry
	for _, e := range entries {
		if strings.TrimSpace(e.Degree) != "" {
			kept = append(kept, e)
		}
	}
	return kept
}

// mergeProfile builds the upsert parameters for a user's portfolio from
// the freshly extracted profile and whatever is already stored. existing
// is nil when the user has no portfolio yet.
func mergeProfile(existing *database.Portfolio, p *extract.Profile, resume database.Resume) database.UpsertPortfolioParams {
	params := database.UpsertPortfolioParams{
		UserID:             resume.UserID,
		Skills:             json.RawMessage("[]"),
		Education:          json.RawMessage("[]"),
		Experience:         json.RawMessage("[]"),
		ResumeObjectKey:    sql.NullString{String: resume.ObjectKey, Valid: true},
		ResumeOriginalName: sql.NullString{String: resume.OriginalFilename, Valid: true},
	}

	if existing != nil {
		params.Name = existing.Name
		params.Title = existing.Title
		params.Bio = existing.Bio
		params.Email = existing.Email
		params.Phone = existing.Phone
		params.Location = existing.Location
		if len(existing.Skills) > 0 {
			params.Skills = existing.Skills
		}
		if len(existing.Education) > 0 {
			params.Education = existing.Education
		}
		if len(existing.Experience) > 0 {
			params.Experience = existing.Experience
		}
	}

	params.Name = pick(p.Name, params.Name)
	params.Title = pick(p.Title, params.Title)
	params.Bio = pick(p.Bio, params.Bio)
	params.Email = pick(p.Email, params.Email)
	params.Phone = pick(p.Phone, params.Phone)
	params.Location = pick(p.Location, params.Location)

	if len(p.Skills) > 0 {
		params.Skills, _ = json.Marshal(p.Skills)
	}
	if kept := storableEducation(p.Education); len(kept) > 0 {
		params.Education, _ = json.Marshal(kept)
	}
	if len(p.Experience) > 0 {
		params.Experience, _ = json.Marshal(p.Experience)
	}

	return params
}
