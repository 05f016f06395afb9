// Package skills extracts canonical skills from free text and computes the
// overlap between a resume's skills and a job description.
package skills

import (
	"sort"
	"strings"

	"github.com/halee5027/RecruitNova/internal/engine/taxonomy"
)

// Extract returns the canonical names of every taxonomy skill found in the
// text, sorted alphabetically. A skill is found when any of its synonyms is
// a case-insensitive substring of the text. Substring semantics are kept for
// score compatibility even though short synonyms can match inside longer
// words.
func Extract(text string) []string {
	if text == "" {
		return []string{}
	}

	lower := strings.ToLower(text)
	found := make([]string, 0, 8)
	taxonomy.Visit(func(entry taxonomy.Entry) {
		for _, syn := range entry.Synonyms {
			if strings.Contains(lower, syn) {
				found = append(found, entry.Canonical)
				break
			}
		}
	})
	sort.Strings(found)
	return found
}

// MatchJob re-extracts skills from the job text and returns the percentage
// of job skills also present in resumeSkills, clamped to [0,100]. Either
// side being empty yields 0.
func MatchJob(resumeSkills []string, jobText string) float64 {
	if jobText == "" || len(resumeSkills) == 0 {
		return 0
	}
	jobSkills := Extract(jobText)
	if len(jobSkills) == 0 {
		return 0
	}

	have := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		have[s] = true
	}
	common := 0
	for _, s := range jobSkills {
		if have[s] {
			common++
		}
	}

	pct := float64(common) / float64(len(jobSkills)) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Intersect returns resume ∩ job skills, sorted alphabetically.
func Intersect(resumeSkills, jobSkills []string) []string {
	have := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		have[s] = true
	}
	out := make([]string, 0, len(jobSkills))
	for _, s := range jobSkills {
		if have[s] {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// Missing returns job skills absent from the resume, sorted alphabetically.
func Missing(resumeSkills, jobSkills []string) []string {
	have := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		have[s] = true
	}
	out := make([]string, 0, len(jobSkills))
	for _, s := range jobSkills {
		if !have[s] {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
