// Package keywords compares a resume against a job description at the
// raw-keyword level and produces ATS-style optimization guidance: which
// terms to add, how they break down by category, and a rough before/after
// ATS score estimate.
package keywords

import (
	"fmt"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode"
)

// tokenPattern accepts tech-flavored tokens such as "ci/cd", "c++" and
// "node.js" in addition to plain words. Minimum length is three characters.
var tokenPattern = regexp.MustCompile(`\b[a-zA-Z][a-zA-Z+#./\-]{2,}\b`)

var headingPattern = regexp.MustCompile(`(?i)(skills|technical skills|technologies|core competencies)`)

var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "from": true, "have": true, "will": true, "your": true,
	"are": true, "can": true, "work": true, "team": true, "year": true,
	"years": true, "skills": true, "experience": true, "education": true,
	"also": true, "must": true, "should": true, "would": true, "could": true,
	"about": true, "been": true, "being": true, "into": true, "more": true,
	"than": true, "them": true, "then": true, "they": true, "their": true,
	"there": true, "these": true, "those": true, "what": true, "when": true,
	"where": true, "which": true, "while": true, "such": true, "each": true,
	"other": true, "some": true, "able": true, "well": true,
	"including": true, "within": true, "across": true, "strong": true,
	"knowledge": true, "using": true, "time": true, "role": true,
	"part": true, "join": true, "looking": true, "help": true, "plus": true,
	"like": true, "company": true, "position": true, "opportunity": true,
	"working": true, "related": true, "required": true, "preferred": true,
	"minimum": true, "equivalent": true, "bonus": true, "apply": true,
	"based": true,
}

var techIndicators = map[string]bool{
	"python": true, "java": true, "javascript": true, "typescript": true,
	"react": true, "angular": true, "vue": true, "node": true,
	"django": true, "flask": true, "spring": true, "sql": true,
	"nosql": true, "mongodb": true, "postgresql": true, "mysql": true,
	"redis": true, "graphql": true, "rest": true, "api": true,
	"microservices": true, "docker": true, "kubernetes": true, "aws": true,
	"azure": true, "gcp": true, "terraform": true, "jenkins": true,
	"git": true, "c++": true, "c#": true, "rust": true, "golang": true,
	"scala": true, "kotlin": true, "swift": true, "ruby": true,
	"html": true, "css": true, "sass": true, "webpack": true, "vite": true,
	"nextjs": true, "tailwind": true, "tensorflow": true, "pytorch": true,
	"pandas": true, "numpy": true, "spark": true, "hadoop": true,
	"kafka": true, "elasticsearch": true, "linux": true, "unix": true,
	"bash": true, "powershell": true, "nginx": true, "agile": true,
	"scrum": true, "kanban": true, "jira": true, "confluence": true,
	"ci/cd": true, "devops": true, "machine": true, "learning": true,
	"deep": true, "data": true, "analytics": true, "cloud": true,
	"native": true, "serverless": true, "lambda": true, "blockchain": true,
	"cybersecurity": true,
}

var toolIndicators = map[string]bool{
	"figma": true, "sketch": true, "photoshop": true, "illustrator": true,
	"tableau": true, "powerbi": true, "excel": true, "word": true,
	"slack": true, "notion": true, "trello": true, "asana": true,
	"github": true, "gitlab": true, "bitbucket": true, "postman": true,
	"swagger": true, "datadog": true, "splunk": true, "grafana": true,
	"prometheus": true, "sentry": true, "newrelic": true,
	"salesforce": true, "hubspot": true, "zapier": true, "selenium": true,
	"cypress": true, "playwright": true, "jest": true, "mocha": true,
	"pytest": true, "junit": true, "maven": true, "gradle": true,
	"npm": true, "yarn": true, "pip": true,
}

var softIndicators = map[string]bool{
	"leadership": true, "communication": true, "collaboration": true,
	"teamwork": true, "problem-solving": true, "analytical": true,
	"creative": true, "innovative": true, "detail-oriented": true,
	"proactive": true, "adaptable": true, "flexible": true,
	"organized": true, "strategic": true, "critical": true,
	"thinking": true, "mentoring": true, "coaching": true,
	"stakeholder": true, "presentation": true, "negotiation": true,
	"interpersonal": true, "self-motivated": true, "driven": true,
	"passionate": true, "empathetic": true, "ownership": true,
	"accountability": true, "prioritization": true, "multitasking": true,
}

var techSubstrings = []string{"develop", "engineer", "architect", "program"}

// Categories splits a keyword list into rough buckets.
type Categories struct {
	Technical  []string `json:"technical"`
	Tools      []string `json:"tools"`
	SoftSkills []string `json:"soft_skills"`
	Other      []string `json:"other"`
}

// RankedKeyword is a job-description keyword together with how often the
// posting repeats it.
type RankedKeyword struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// Optimization is the full keyword report for one resume/job pair.
type Optimization struct {
	KeywordsToAdd         []string        `json:"keywords_to_add"`
	MatchedKeywords       []string        `json:"matched_keywords"`
	MatchPercentage       int             `json:"match_percentage"`
	ATSBefore             int             `json:"ats_before"`
	ATSAfter              int             `json:"ats_after"`
	CategorizedMissing    Categories      `json:"categorized_missing"`
	CategorizedMatched    Categories      `json:"categorized_matched"`
	HighImportanceMissing []RankedKeyword `json:"high_importance_missing"`
	Tips                  []string        `json:"tips"`
	OptimizedText         string          `json:"optimized_text"`
	TotalJobKeywords      int             `json:"total_job_keywords"`
	ResumeWordCount       int             `json:"resume_word_count"`
}

// Optimizer runs keyword comparisons. The random source only feeds the small
// jitter on the estimated ATS score; inject a seeded one in tests. Safe for
// concurrent use: the mutex serializes draws from the shared source.
type Optimizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns an Optimizer using the given random source. A nil rng falls
// back to a time-seeded one.
func New(rng *rand.Rand) *Optimizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Optimizer{rng: rng}
}

// Optimize compares resumeText with jobText and builds the report.
func (o *Optimizer) Optimize(resumeText, jobText string) Optimization {
	jobRaw := tokenPattern.FindAllString(jobText, -1)
	resumeRaw := tokenPattern.FindAllString(resumeText, -1)

	jobWords := lowerSet(jobRaw)
	resumeWords := lowerSet(resumeRaw)

	var matched, missing []string
	for w := range jobWords {
		if stopwords[w] {
			continue
		}
		if resumeWords[w] {
			matched = append(matched, w)
		} else if len(w) > 2 && !isDigits(w) {
			missing = append(missing, w)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	totalJobKeywords := 0
	for w := range jobWords {
		if !stopwords[w] {
			totalJobKeywords++
		}
	}
	denom := totalJobKeywords
	if denom < 1 {
		denom = 1
	}
	matchPercentage := len(matched) * 100 / denom

	// Capitalized words in the posting are usually proper nouns or product
	// names; missing ones go to the front of the suggestion list.
	capitalized := capitalizedWords(jobText)
	var priority, normal []string
	for _, w := range missing {
		if capitalized[w] {
			priority = append(priority, w)
		} else {
			normal = append(normal, w)
		}
	}
	finalMissing := append(capSlice(priority, 8), capSlice(normal, 7)...)
	if finalMissing == nil {
		finalMissing = []string{}
	}

	o.mu.Lock()
	jitter := o.rng.Intn(11) - 5
	o.mu.Unlock()
	atsBefore := matchPercentage + jitter
	if atsBefore < 15 {
		atsBefore = 15
	}
	if atsBefore > 95 {
		atsBefore = 95
	}
	boost := len(finalMissing) * 3
	if boost > 30 {
		boost = 30
	}
	atsAfter := atsBefore + boost
	if atsAfter > 95 {
		atsAfter = 95
	}

	// Keywords the posting repeats carry the most ATS weight.
	freq := map[string]int{}
	for _, w := range jobRaw {
		wl := strings.ToLower(w)
		if !stopwords[wl] && len(wl) > 2 {
			freq[wl]++
		}
	}
	ranked := make([]RankedKeyword, 0, len(freq))
	for w, c := range freq {
		ranked = append(ranked, RankedKeyword{Keyword: w, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Keyword < ranked[j].Keyword
	})
	ranked = ranked[:minInt(8, len(ranked))]
	highMissing := []RankedKeyword{}
	for _, rk := range ranked {
		if !resumeWords[rk.Keyword] {
			highMissing = append(highMissing, rk)
		}
	}

	return Optimization{
		KeywordsToAdd:         finalMissing,
		MatchedKeywords:       capSlice(matched, 15),
		MatchPercentage:       matchPercentage,
		ATSBefore:             atsBefore,
		ATSAfter:              atsAfter,
		CategorizedMissing:    categorize(finalMissing),
		CategorizedMatched:    categorize(matched),
		HighImportanceMissing: highMissing,
		Tips: []string{
			"Place technical keywords in a dedicated 'Technical Skills' section",
			"Mirror the exact phrasing from the job description (e.g., 'CI/CD pipelines' not just 'CI/CD')",
			"Weave keywords into achievement bullets: 'Leveraged [Keyword] to reduce deploy time by 40%'",
			"Quantify your impact with each skill when possible",
			"Mention tools in context of results, not just as a list",
		},
		OptimizedText:    insertSuggestions(resumeText, finalMissing),
		TotalJobKeywords: totalJobKeywords,
		ResumeWordCount:  len(strings.Fields(resumeText)),
	}
}

func categorize(keywords []string) Categories {
	c := Categories{
		Technical:  []string{},
		Tools:      []string{},
		SoftSkills: []string{},
		Other:      []string{},
	}
	for _, kw := range keywords {
		kl := strings.ToLower(kw)
		switch {
		case techIndicators[kl] || containsAny(kl, techSubstrings):
			c.Technical = append(c.Technical, kw)
		case toolIndicators[kl]:
			c.Tools = append(c.Tools, kw)
		case softIndicators[kl]:
			c.SoftSkills = append(c.SoftSkills, kw)
		default:
			c.Other = append(c.Other, kw)
		}
	}
	return c
}

// insertSuggestions appends the missing keywords right under the resume's
// skills heading when one exists, otherwise prepends a short block.
func insertSuggestions(resumeText string, missing []string) string {
	titled := make([]string, len(missing))
	for i, w := range missing {
		titled[i] = titleWord(w)
	}
	joined := strings.Join(titled, ", ")

	loc := headingPattern.FindStringIndex(resumeText)
	if loc == nil {
		return "RECOMMENDED SKILLS TO ADD:\n• " + joined + "\n\n" + resumeText
	}
	// No newline after the heading means the heading is the last thing on
	// the line; insert right at the end of the heading match.
	at := strings.Index(resumeText[loc[1]:], "\n")
	if at == -1 {
		at = loc[1]
	} else {
		at += loc[1]
	}
	insertion := fmt.Sprintf("\n• Recommended Additions: %s", joined)
	return resumeText[:at] + insertion + resumeText[at:]
}

func lowerSet(words []string) map[string]bool {
	s := make(map[string]bool, len(words))
	for _, w := range words {
		s[strings.ToLower(w)] = true
	}
	return s
}

func capitalizedWords(text string) map[string]bool {
	out := map[string]bool{}
	for _, w := range strings.Fields(text) {
		if len(w) > 2 {
			r := []rune(w)
			if unicode.IsUpper(r[0]) {
				out[strings.ToLower(w)] = true
			}
		}
	}
	return out
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func capSlice(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// titleWord upper-cases the first letter of each dash- or space-separated
// part, mirroring how suggestions are usually displayed.
func titleWord(w string) string {
	var b strings.Builder
	up := true
	for _, r := range w {
		if up && unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
			up = false
		} else {
			b.WriteRune(r)
		}
		if r == ' ' || r == '-' || r == '/' || r == '.' {
			up = true
		}
	}
	return b.String()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
