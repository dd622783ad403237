package server

import (
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/igcsenotes/site/internal/catalog"
	"github.com/igcsenotes/site/internal/model"
	"github.com/igcsenotes/site/internal/seo"
	"github.com/igcsenotes/site/internal/topics"
)

// Site-wide defaults used when the corresponding documents are
// absent from the content store.
const (
	homeTitle       = "CIE IGCSE Study Notes | Comprehensive Revision Materials"
	homeDescription = "Access comprehensive CIE IGCSE study notes, revision materials, and exam preparation resources for all subjects. Expert-curated content to help you excel in your IGCSE examinations."
	homeKeywords    = "CIE IGCSE, study notes, revision, exam preparation, IGCSE subjects, Cambridge International"

	subjectsTitle       = "All Subjects - CIE IGCSE Notes"
	subjectsDescription = "Explore our comprehensive collection of CIE IGCSE study materials across all subjects."
	subjectsKeywords    = "IGCSE, CIE, subjects, notes, study materials"

	requestTitleFallback       = "Can't find your subject?"
	requestDescriptionFallback = "We're constantly adding new subjects and updating our content. If you don't see your subject listed, let us know and we'll prioritize it."
	requestButtonTextFallback  = "Request a Subject"
)

// pageData is the shared view model embedded by every page.
type pageData struct {
	Meta             seo.Metadata
	Header           *model.Header
	Footer           *model.Footer
	NoFollowExternal bool
}

type homeView struct {
	pageData
	Hero        *model.Hero
	Grid        *model.SubjectGrid
	WhyChooseUs *model.WhyChooseUs
	FAQ         *model.FAQ
}

type subjectsView struct {
	pageData
	PageTitle          string
	PageDescription    string
	Entries            []catalog.Entry
	RequestTitle       string
	RequestDescription string
	RequestButtonText  string
	RequestButtonHref  string
}

type subjectView struct {
	pageData
	PageTitle       string
	PageDescription string
	BackgroundColor string
	Topics          []topicView
}

type contactView struct {
	pageData
	Section *model.ContactSection
}

type topicView struct {
	Name         string
	Description  string
	Color        string
	HasSubtopics bool
	Subtopics    []subtopicView
}

type subtopicView struct {
	Name         string
	URL          string
	IsComingSoon bool
	IsExpandable bool
	IsLink       bool
	Children     []leafView
}

type leafView struct {
	Name         string
	URL          string
	IsComingSoon bool
	IsLink       bool
}

// --- Failure-isolated fetch helpers ---
//
// One content source failing must not take the others down: each
// fetch logs its error and degrades to absent.

func (s *Server) headerData(ctx context.Context) *model.Header {
	h, err := s.cms.Header(ctx)
	if err != nil {
		log.Errorf("Error fetching header data: %v", err)
		return nil
	}
	return h
}

func (s *Server) footerData(ctx context.Context) *model.Footer {
	f, err := s.cms.Footer(ctx)
	if err != nil {
		log.Errorf("Error fetching footer data: %v", err)
		return nil
	}
	return f
}

func (s *Server) heroData(ctx context.Context) *model.Hero {
	h, err := s.cms.Hero(ctx)
	if err != nil {
		log.Errorf("Error fetching hero data: %v", err)
		return nil
	}
	return h
}

func (s *Server) subjectGridData(ctx context.Context) *model.SubjectGrid {
	g, err := s.cms.SubjectGrid(ctx)
	if err != nil {
		log.Errorf("Error fetching subject grid data: %v", err)
		return nil
	}
	return g
}

func (s *Server) whyChooseUsData(ctx context.Context) *model.WhyChooseUs {
	w, err := s.cms.WhyChooseUs(ctx)
	if err != nil {
		log.Errorf("Error fetching why-choose-us data: %v", err)
		return nil
	}
	return w
}

func (s *Server) faqData(ctx context.Context) *model.FAQ {
	f, err := s.cms.FAQ(ctx)
	if err != nil {
		log.Errorf("Error fetching FAQ data: %v", err)
		return nil
	}
	return f
}

func (s *Server) subjectsPageData(ctx context.Context) *model.SubjectsPage {
	p, err := s.cms.SubjectsPage(ctx)
	if err != nil {
		log.Errorf("Error fetching subjects page data: %v", err)
		return nil
	}
	return p
}

func (s *Server) publishedSubjectsData(ctx context.Context) []model.SubjectPage {
	pubs, err := s.cms.PublishedSubjects(ctx)
	if err != nil {
		log.Errorf("Error fetching published subjects: %v", err)
		return nil
	}
	return pubs
}

func (s *Server) seoSettingsData(ctx context.Context) *model.SEOSettings {
	settings, err := s.cms.SEOSettings(ctx)
	if err != nil {
		log.Errorf("Error fetching SEO settings: %v", err)
		return nil
	}
	return settings
}

func (s *Server) globalSEOData(ctx context.Context) *model.SEOFields {
	fields, err := s.cms.GlobalSEO(ctx)
	if err != nil {
		log.Errorf("Error fetching global SEO settings: %v", err)
		return nil
	}
	return fields
}

func (s *Server) contactSectionData(ctx context.Context) *model.ContactSection {
	c, err := s.cms.ContactSection(ctx)
	if err != nil {
		log.Errorf("Error fetching contact form section data: %v", err)
		return nil
	}
	return c
}

// --- Page Handlers ---

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		header      *model.Header
		hero        *model.Hero
		grid        *model.SubjectGrid
		whyChooseUs *model.WhyChooseUs
		faq         *model.FAQ
		footer      *model.Footer
		settings    *model.SEOSettings
	)

	var wg sync.WaitGroup
	fetch := func(f func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}
	fetch(func() { header = s.headerData(ctx) })
	fetch(func() { hero = s.heroData(ctx) })
	fetch(func() { grid = s.subjectGridData(ctx) })
	fetch(func() { whyChooseUs = s.whyChooseUsData(ctx) })
	fetch(func() { faq = s.faqData(ctx) })
	fetch(func() { footer = s.footerData(ctx) })
	fetch(func() { settings = s.seoSettingsData(ctx) })
	wg.Wait()

	meta := s.resolveMeta(seo.PageOverrides{
		Title:        homeTitle,
		Description:  homeDescription,
		Keywords:     homeKeywords,
		CanonicalURL: s.opts.BaseURL,
	}, seo.SettingsFields(settings))

	data := homeView{
		pageData:    s.pageData(meta, header, footer, settings),
		Hero:        hero,
		Grid:        grid,
		WhyChooseUs: whyChooseUs,
		FAQ:         faq,
	}
	s.render(w, http.StatusOK, "home.html", data)
}

func (s *Server) handleSubjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		header    *model.Header
		footer    *model.Footer
		grid      *model.SubjectGrid
		page      *model.SubjectsPage
		published []model.SubjectPage
		settings  *model.SEOSettings
	)

	var wg sync.WaitGroup
	fetch := func(f func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}
	fetch(func() { header = s.headerData(ctx) })
	fetch(func() { footer = s.footerData(ctx) })
	fetch(func() { grid = s.subjectGridData(ctx) })
	fetch(func() { page = s.subjectsPageData(ctx) })
	fetch(func() { published = s.publishedSubjectsData(ctx) })
	fetch(func() { settings = s.seoSettingsData(ctx) })
	wg.Wait()

	var gridSubjects []model.GridSubject
	if grid != nil {
		gridSubjects = grid.Subjects
	}

	policy := catalog.OrderCustom
	includeAdditional := true
	var additional []model.AdditionalSubject
	var section *model.SEOFields

	view := subjectsView{
		PageTitle:          subjectsTitle,
		PageDescription:    subjectsDescription,
		RequestTitle:       requestTitleFallback,
		RequestDescription: requestDescriptionFallback,
		RequestButtonText:  requestButtonTextFallback,
		RequestButtonHref:  "/contact",
	}
	if page != nil {
		policy = catalog.OrderPolicy(page.SubjectGridDisplayOrder)
		includeAdditional = page.ShowAdditionalSubjects
		additional = page.AdditionalSubjects
		section = page.SEO
		if page.PageTitle != "" {
			view.PageTitle = page.PageTitle
		}
		if page.PageDescription != "" {
			view.PageDescription = page.PageDescription
		}
		if page.RequestTitle != "" {
			view.RequestTitle = page.RequestTitle
		}
		if page.RequestDescription != "" {
			view.RequestDescription = page.RequestDescription
		}
		if page.RequestButton.Text != "" {
			view.RequestButtonText = page.RequestButton.Text
		}
		if href := page.RequestButton.Destination(); href != "" {
			view.RequestButtonHref = href
		}
	}

	view.Entries = catalog.Merge(gridSubjects, additional, published, policy, includeAdditional)

	meta := s.resolveMeta(seo.PageOverrides{
		Title:       view.PageTitle + " - CIE IGCSE Notes",
		Description: view.PageDescription,
		Keywords:    subjectsKeywords,
	}, section)

	view.pageData = s.pageData(meta, header, footer, settings)
	s.render(w, http.StatusOK, "subjects.html", view)
}

func (s *Server) handleSubject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "subject")

	var (
		header   *model.Header
		footer   *model.Footer
		page     *model.SubjectPage
		settings *model.SEOSettings
	)

	var wg sync.WaitGroup
	fetch := func(f func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}
	fetch(func() { header = s.headerData(ctx) })
	fetch(func() { footer = s.footerData(ctx) })
	fetch(func() { settings = s.seoSettingsData(ctx) })
	fetch(func() {
		p, err := s.cms.SubjectBySlug(ctx, slug)
		if err != nil {
			log.Errorf("Error fetching subject page data for %q: %v", slug, err)
			return
		}
		page = p
	})
	wg.Wait()

	if page == nil {
		s.renderNotFound(w, header, footer, settings)
		return
	}

	section := page.SEO
	if section == nil {
		section = s.globalSEOData(ctx)
	}
	meta := s.resolveMeta(seo.PageOverrides{
		Title:        page.PageTitle + " - CIE IGCSE Notes",
		Description:  page.PageDescription,
		CanonicalURL: s.opts.BaseURL + "/" + page.SubjectSlug.Current,
	}, section)

	data := subjectView{
		pageData:        s.pageData(meta, header, footer, settings),
		PageTitle:       page.PageTitle,
		PageDescription: page.PageDescription,
		BackgroundColor: page.BackgroundColor,
		Topics:          buildTopicViews(page.Topics),
	}
	s.render(w, http.StatusOK, "subject.html", data)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		header   *model.Header
		footer   *model.Footer
		section  *model.ContactSection
		settings *model.SEOSettings
	)

	var wg sync.WaitGroup
	fetch := func(f func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}
	fetch(func() { header = s.headerData(ctx) })
	fetch(func() { footer = s.footerData(ctx) })
	fetch(func() { section = s.contactSectionData(ctx) })
	fetch(func() { settings = s.seoSettingsData(ctx) })
	wg.Wait()

	meta := s.resolveMeta(seo.PageOverrides{
		Title:       "Contact Us | CIE IGCSE Notes",
		Description: "Get in touch with us to hire a tutor or ask questions about our CIE IGCSE study materials and tutoring services.",
	}, nil)

	data := contactView{
		pageData: s.pageData(meta, header, footer, settings),
		Section:  section,
	}
	s.render(w, http.StatusOK, "contact.html", data)
}

func (s *Server) renderNotFound(w http.ResponseWriter, header *model.Header, footer *model.Footer, settings *model.SEOSettings) {
	meta := s.resolveMeta(seo.PageOverrides{
		Title:       "Subject Not Found - CIE IGCSE Notes",
		Description: "The requested subject page could not be found.",
	}, nil)
	meta.NoIndex = true

	data := struct{ pageData }{s.pageData(meta, header, footer, settings)}
	s.render(w, http.StatusNotFound, "notfound.html", data)
}

// --- View construction ---

func (s *Server) resolveMeta(over seo.PageOverrides, section *model.SEOFields) seo.Metadata {
	return seo.Resolve(over, section, seo.ResolveOptions{
		DefaultImage: s.opts.DefaultOGImage,
		FollowPolicy: s.opts.FollowPolicy,
	})
}

func (s *Server) pageData(meta seo.Metadata, header *model.Header, footer *model.Footer, settings *model.SEOSettings) pageData {
	noFollowExternal := false
	if settings != nil {
		noFollowExternal = settings.NoFollowExternal
	}
	return pageData{
		Meta:             meta,
		Header:           header,
		Footer:           footer,
		NoFollowExternal: noFollowExternal,
	}
}

func buildTopicViews(ts []model.Topic) []topicView {
	sorted := topics.Sort(ts)
	views := make([]topicView, 0, len(sorted))
	for _, t := range sorted {
		tv := topicView{
			Name:        t.Name,
			Description: t.Description,
			Color:       t.Color,
		}
		valid := topics.Valid(t.Subtopics)
		tv.HasSubtopics = len(valid) > 0
		for _, sub := range valid {
			sv := subtopicView{
				Name: sub.Name,
				URL:  sub.URL,
			}
			switch topics.Classify(sub) {
			case topics.KindComingSoon:
				sv.IsComingSoon = true
			case topics.KindExpandable:
				sv.IsExpandable = true
				for _, leaf := range sub.SubSubtopics {
					if leaf.Name == "" {
						continue
					}
					lv := leafView{Name: leaf.Name, URL: leaf.URL}
					switch topics.ClassifyLeaf(leaf) {
					case topics.KindComingSoon:
						lv.IsComingSoon = true
					case topics.KindLink:
						lv.IsLink = true
					}
					sv.Children = append(sv.Children, lv)
				}
			case topics.KindLink:
				sv.IsLink = true
			}
			tv.Subtopics = append(tv.Subtopics, sv)
		}
		views = append(views, tv)
	}
	return views
}
