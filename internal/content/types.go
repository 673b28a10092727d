// Package content defines the static portfolio tables and loads them from
// the content file.
package content

import "fmt"

// Profile is the site owner's identity card.
type Profile struct {
	Name         string   `yaml:"name" json:"name"`
	Title        string   `yaml:"title,omitempty" json:"title,omitempty"`
	Affiliation  string   `yaml:"affiliation,omitempty" json:"affiliation,omitempty"`
	Email        string   `yaml:"email,omitempty" json:"email,omitempty"`
	ProfileURL   string   `yaml:"profile_url,omitempty" json:"profile_url,omitempty"`
	ProfileLabel string   `yaml:"profile_label,omitempty" json:"profile_label,omitempty"`
	Photo        string   `yaml:"photo,omitempty" json:"photo,omitempty"`
	CV           string   `yaml:"cv,omitempty" json:"cv,omitempty"`
	Intro        []string `yaml:"intro,omitempty" json:"intro,omitempty"`
	Highlight    string   `yaml:"highlight,omitempty" json:"highlight,omitempty"`
}

// ExternalLabel is the text for the external profile link.
func (p Profile) ExternalLabel() string {
	if p.ProfileLabel != "" {
		return p.ProfileLabel
	}
	return "LinkedIn"
}

// Paper is a job-market paper, working paper or work in progress.
type Paper struct {
	Title     string `yaml:"title" json:"title"`
	Coauthors string `yaml:"coauthors,omitempty" json:"coauthors,omitempty"`
	Abstract  string `yaml:"abstract,omitempty" json:"abstract,omitempty"`
	PDF       string `yaml:"pdf,omitempty" json:"pdf,omitempty"`
	Slides    string `yaml:"slides,omitempty" json:"slides,omitempty"`
}

// HasAbstract reports whether the paper carries abstract text.
func (p Paper) HasAbstract() bool { return p.Abstract != "" }

// TeachingEntry is one course taught or assisted.
type TeachingEntry struct {
	Role        string `yaml:"role" json:"role"`
	Course      string `yaml:"course" json:"course"`
	Institution string `yaml:"institution,omitempty" json:"institution,omitempty"`
	Term        string `yaml:"term,omitempty" json:"term,omitempty"`
	Notes       string `yaml:"notes,omitempty" json:"notes,omitempty"`
	Syllabus    string `yaml:"syllabus,omitempty" json:"syllabus,omitempty"`
	CoursePage  string `yaml:"course_page,omitempty" json:"course_page,omitempty"`
}

// RoleLine joins role and institution as "role, institution", dropping
// whichever half is missing.
func (e TeachingEntry) RoleLine() string {
	switch {
	case e.Role == "":
		return e.Institution
	case e.Institution == "":
		return e.Role
	default:
		return e.Role + ", " + e.Institution
	}
}

// Content is the complete set of tables for one build.
type Content struct {
	Profile         Profile         `yaml:"profile" json:"profile"`
	JobMarketPaper  *Paper          `yaml:"job_market_paper,omitempty" json:"job_market_paper,omitempty"`
	WorkingPapers   []Paper         `yaml:"working_papers,omitempty" json:"working_papers"`
	WorksInProgress []Paper         `yaml:"works_in_progress,omitempty" json:"works_in_progress"`
	Teaching        []TeachingEntry `yaml:"teaching,omitempty" json:"teaching"`
}

// Validate checks the few fields a page cannot be drawn without.
func (c *Content) Validate() error {
	if c.Profile.Name == "" {
		return fmt.Errorf("profile.name is required")
	}
	if c.JobMarketPaper != nil && c.JobMarketPaper.Title == "" {
		return fmt.Errorf("job_market_paper.title is required when job_market_paper is set")
	}
	for i, p := range c.WorkingPapers {
		if p.Title == "" {
			return fmt.Errorf("working_papers[%d].title is required", i)
		}
	}
	for i, p := range c.WorksInProgress {
		if p.Title == "" {
			return fmt.Errorf("works_in_progress[%d].title is required", i)
		}
	}
	for i, e := range c.Teaching {
		if e.Course == "" {
			return fmt.Errorf("teaching[%d].course is required", i)
		}
	}
	return nil
}
