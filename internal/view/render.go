// Package view turns a route, the content tables and the abstract
// visibility state into an HTML document.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/router"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	// EmptyPapersText replaces an empty paper list.
	EmptyPapersText = "None yet."
	// EmptyTeachingText replaces an empty teaching list.
	EmptyTeachingText = "No teaching listed yet."
)

// Options configures a Renderer.
type Options struct {
	// BasePath is the URL prefix the site is deployed under. Root-relative
	// asset paths in the content are joined to it. Defaults to "/".
	BasePath string

	// SiteTitle overrides the profile name in the page title.
	SiteTitle string

	// BuildID is appended to stylesheet and script URLs to bust caches.
	BuildID string

	// LiveReload makes the page script connect to the dev server's
	// reload socket.
	LiveReload bool

	// RenderEndpoint, when set, is where the page script sends navigation
	// to a route the current document does not contain.
	RenderEndpoint string

	// Now supplies the footer year. Defaults to time.Now.
	Now func() time.Time
}

// Renderer draws portfolio pages. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
	md   *content.Markdown
	opts Options
}

// New parses the page templates.
func New(opts Options) (*Renderer, error) {
	opts.BasePath = normalizeBasePath(opts.BasePath)
	if opts.Now == nil {
		opts.Now = time.Now
	}
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing view templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, md: content.NewMarkdown(), opts: opts}, nil
}

// Document renders a page containing only the view for route.
func (r *Renderer) Document(w io.Writer, route router.Route, c *content.Content, vis *Visibility) error {
	return r.render(w, route, []router.Route{route}, c, vis)
}

// Shell renders a page containing every view, with all but active hidden.
// The page script switches between them as the fragment changes.
func (r *Renderer) Shell(w io.Writer, active router.Route, c *content.Content, vis *Visibility) error {
	return r.render(w, active, router.Routes, c, vis)
}

func (r *Renderer) render(w io.Writer, active router.Route, routes []router.Route, c *content.Content, vis *Visibility) error {
	p, err := r.buildPage(active, routes, c, vis)
	if err != nil {
		return err
	}
	// Buffer so a template failure never leaves a half-written page.
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", p); err != nil {
		return fmt.Errorf("rendering %s: %w", active, err)
	}
	_, err = buf.WriteTo(w)
	return err
}

type navLink struct {
	Label  string
	Href   string
	Active bool
}

type page struct {
	Title          string
	Owner          string
	Active         router.Route
	Nav            []navLink
	CV             string
	Views          []viewSection
	Year           int
	StyleURL       string
	HighlightURL   string
	ScriptURL      string
	LiveReload     bool
	RenderEndpoint string
}

type viewSection struct {
	Route    router.Route
	Hidden   bool
	Home     *homeView
	Research *researchView
	Teaching *teachingView
}

type homeView struct {
	Name         string
	Title        string
	Affiliation  string
	Photo        string
	Intro        []template.HTML
	Highlight    string
	Mailto       string
	ProfileURL   string
	ProfileLabel string
	CV           string
	ResearchHref string
	TeachingHref string
}

type paperItem struct {
	Key         ItemKey
	Title       string
	Coauthors   string
	Abstract    template.HTML
	HasAbstract bool
	Expanded    bool
	PDF         string
	Slides      string
}

type researchView struct {
	JobMarket        *paperItem
	DraftComingSoon  bool
	WorkingPapers    []paperItem
	WorksInProgress  []paperItem
	EmptyPlaceholder string
}

type teachingItem struct {
	Course     string
	Term       string
	RoleLine   string
	Notes      template.HTML
	Syllabus   string
	CoursePage string
}

type teachingView struct {
	Entries          []teachingItem
	EmptyPlaceholder string
}

func (r *Renderer) buildPage(active router.Route, routes []router.Route, c *content.Content, vis *Visibility) (*page, error) {
	title := r.opts.SiteTitle
	if title == "" {
		title = c.Profile.Name
	}
	if active != router.Home {
		title = active.Title() + " | " + title
	}

	p := &page{
		Title:          title,
		Owner:          c.Profile.Name,
		Active:         active,
		CV:             r.asset(c.Profile.CV),
		Year:           r.opts.Now().Year(),
		StyleURL:       r.staticURL("style.css"),
		HighlightURL:   r.staticURL("highlight.css"),
		ScriptURL:      r.staticURL("script.js"),
		LiveReload:     r.opts.LiveReload,
		RenderEndpoint: r.opts.RenderEndpoint,
	}
	for _, rt := range router.Routes {
		p.Nav = append(p.Nav, navLink{Label: rt.Title(), Href: rt.Fragment(), Active: rt == active})
	}

	for _, rt := range routes {
		sec := viewSection{Route: rt, Hidden: rt != active}
		var err error
		switch rt {
		case router.Research:
			sec.Research, err = r.research(c, vis)
		case router.Teaching:
			sec.Teaching, err = r.teaching(c)
		default:
			sec.Home, err = r.home(c)
		}
		if err != nil {
			return nil, fmt.Errorf("building %s view: %w", rt, err)
		}
		p.Views = append(p.Views, sec)
	}
	return p, nil
}

func (r *Renderer) home(c *content.Content) (*homeView, error) {
	prof := c.Profile
	h := &homeView{
		Name:         prof.Name,
		Title:        prof.Title,
		Affiliation:  prof.Affiliation,
		Photo:        r.asset(prof.Photo),
		Highlight:    prof.Highlight,
		ProfileURL:   prof.ProfileURL,
		ProfileLabel: prof.ExternalLabel(),
		CV:           r.asset(prof.CV),
		ResearchHref: router.Research.Fragment(),
		TeachingHref: router.Teaching.Fragment(),
	}
	if prof.Email != "" {
		h.Mailto = (&url.URL{Scheme: "mailto", Opaque: prof.Email}).String()
	}
	for _, para := range prof.Intro {
		out, err := r.md.Render(para)
		if err != nil {
			return nil, err
		}
		h.Intro = append(h.Intro, out)
	}
	return h, nil
}

func (r *Renderer) research(c *content.Content, vis *Visibility) (*researchView, error) {
	rv := &researchView{EmptyPlaceholder: EmptyPapersText}
	if jmp := c.JobMarketPaper; jmp != nil {
		item, err := r.paper(JobMarketKey, *jmp, vis)
		if err != nil {
			return nil, err
		}
		rv.JobMarket = &item
		rv.DraftComingSoon = jmp.PDF == ""
	}
	var err error
	if rv.WorkingPapers, err = r.papers(c.WorkingPapers, WorkingPaperKey, vis); err != nil {
		return nil, err
	}
	if rv.WorksInProgress, err = r.papers(c.WorksInProgress, WorkInProgressKey, vis); err != nil {
		return nil, err
	}
	return rv, nil
}

func (r *Renderer) papers(list []content.Paper, key func(int) ItemKey, vis *Visibility) ([]paperItem, error) {
	items := make([]paperItem, 0, len(list))
	for i, p := range list {
		item, err := r.paper(key(i), p, vis)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *Renderer) paper(key ItemKey, p content.Paper, vis *Visibility) (paperItem, error) {
	abstract, err := r.md.Render(p.Abstract)
	if err != nil {
		return paperItem{}, fmt.Errorf("abstract of %q: %w", p.Title, err)
	}
	return paperItem{
		Key:         key,
		Title:       p.Title,
		Coauthors:   p.Coauthors,
		Abstract:    abstract,
		HasAbstract: abstract != "",
		Expanded:    vis.Expanded(key),
		PDF:         r.asset(p.PDF),
		Slides:      r.asset(p.Slides),
	}, nil
}

func (r *Renderer) teaching(c *content.Content) (*teachingView, error) {
	tv := &teachingView{EmptyPlaceholder: EmptyTeachingText}
	for _, e := range c.Teaching {
		notes, err := r.md.Render(e.Notes)
		if err != nil {
			return nil, fmt.Errorf("notes of %q: %w", e.Course, err)
		}
		tv.Entries = append(tv.Entries, teachingItem{
			Course:     e.Course,
			Term:       e.Term,
			RoleLine:   e.RoleLine(),
			Notes:      notes,
			Syllabus:   r.asset(e.Syllabus),
			CoursePage: r.asset(e.CoursePage),
		})
	}
	return tv, nil
}

// asset resolves a content path against the base path. Root-relative paths
// are prefixed; relative paths and absolute URLs are returned unchanged.
func (r *Renderer) asset(p string) string {
	return AssetURL(r.opts.BasePath, p)
}

func (r *Renderer) staticURL(name string) string {
	u := r.opts.BasePath + name
	if r.opts.BuildID != "" {
		u += "?v=" + url.QueryEscape(r.opts.BuildID)
	}
	return u
}

// AssetURL joins a root-relative path to basePath. Empty paths stay empty.
func AssetURL(basePath, p string) string {
	switch {
	case p == "":
		return ""
	case strings.HasPrefix(p, "//"), strings.Contains(p, "://"), strings.HasPrefix(p, "mailto:"):
		return p
	case strings.HasPrefix(p, "/"):
		return strings.TrimSuffix(normalizeBasePath(basePath), "/") + p
	default:
		return p
	}
}

// normalizeBasePath makes basePath start and end with a slash.
func normalizeBasePath(basePath string) string {
	basePath = strings.TrimSpace(basePath)
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return basePath
}
