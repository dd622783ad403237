// Package model defines the content documents fetched from the CMS
// and the contact submission record.
package model

import "time"

// Asset is an expanded image asset reference.
type Asset struct {
	ID  string `json:"_id,omitempty"`
	Ref string `json:"_ref,omitempty"`
	URL string `json:"url,omitempty"`
}

// Image is a CMS image. It may carry a direct URL, an expanded asset
// reference with a URL, or neither.
type Image struct {
	URL   string `json:"url,omitempty"`
	Alt   string `json:"alt,omitempty"`
	Asset *Asset `json:"asset,omitempty"`
}

// Link is a labelled navigation link.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Button is a call-to-action button. Curated documents use either
// "href" or "url" for the destination depending on their age.
type Button struct {
	Text string `json:"text"`
	Href string `json:"href,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Destination returns the button target, preferring href over url.
func (b Button) Destination() string {
	if b.Href != "" {
		return b.Href
	}
	return b.URL
}

// Slug wraps a CMS slug field.
type Slug struct {
	Current string `json:"current"`
}

// Header is the site header document.
type Header struct {
	ID         string `json:"_id"`
	Title      string `json:"title"`
	Logo       *Image `json:"logo,omitempty"`
	Navigation []Link `json:"navigation"`
	CTAButton  Button `json:"ctaButton"`
}

// Statistic is one hero statistic (label plus figure).
type Statistic struct {
	Text  string `json:"text"`
	Stats string `json:"stats"`
}

// HeroStatistics groups the three hero figures.
type HeroStatistics struct {
	StudentsHelped  Statistic `json:"studentsHelped"`
	SubjectsCovered Statistic `json:"subjectsCovered"`
	SuccessRate     Statistic `json:"successRate"`
}

// FloatingCard is a decorative hero card.
type FloatingCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HeroButtons pairs the hero call-to-action buttons.
type HeroButtons struct {
	Primary   Button `json:"primaryButton"`
	Secondary Button `json:"secondaryButton"`
}

// Hero is the home-page hero document.
type Hero struct {
	ID                      string         `json:"_id"`
	Title                   string         `json:"title"`
	PremiumTag              string         `json:"premiumTag"`
	SectionTitle            string         `json:"sectionTitle"`
	SectionTitleHighlighted string         `json:"sectionTitleHighlighted"`
	Description             string         `json:"description"`
	CTAButtons              HeroButtons    `json:"ctaButtons"`
	Statistics              HeroStatistics `json:"statistics"`
	FloatingCards           []FloatingCard `json:"floatingCards"`
}

// GridSubject is one curated subject card in the subject grid.
type GridSubject struct {
	Name            string `json:"name"`
	Image           *Image `json:"image,omitempty"`
	Description     string `json:"description,omitempty"`
	Color           string `json:"color"`
	DateUpdated     string `json:"dateUpdated,omitempty"`
	ViewNotesButton Button `json:"viewNotesButton"`
}

// SubjectGrid is the curated subject-grid document.
type SubjectGrid struct {
	ID                 string        `json:"_id"`
	Title              string        `json:"title"`
	SectionTitle       string        `json:"sectionTitle"`
	SectionDescription string        `json:"sectionDescription"`
	Subjects           []GridSubject `json:"subjects"`
	ViewAllButton      Button        `json:"viewAllButton"`
}

// AdditionalSubject is a curated subject on the subjects page that is
// not part of the main grid. DisplayOrder governs its position.
type AdditionalSubject struct {
	GridSubject
	DisplayOrder int `json:"displayOrder"`
}

// SubjectsPage is the subjects-page configuration document.
type SubjectsPage struct {
	ID                      string              `json:"_id"`
	PageTitle               string              `json:"pageTitle"`
	PageDescription         string              `json:"pageDescription"`
	SubjectGridDisplayOrder string              `json:"subjectGridDisplayOrder"`
	ShowAdditionalSubjects  bool                `json:"showAdditionalSubjects"`
	AdditionalSubjects      []AdditionalSubject `json:"additionalSubjects"`
	RequestTitle            string              `json:"additionalSubjectRequestTitle"`
	RequestDescription      string              `json:"additionalSubjectRequestDescription"`
	RequestButton           Button              `json:"additionalSubjectRequestButton"`
	SEO                     *SEOFields          `json:"seo,omitempty"`
}

// SubSubtopic is the deepest level of the topic tree. A URL is
// required to navigate; coming-soon disables the node regardless.
type SubSubtopic struct {
	Name         string `json:"subSubtopicName"`
	URL          string `json:"subSubtopicUrl"`
	IsComingSoon bool   `json:"isComingSoon"`
}

// Subtopic is the middle level of the topic tree. Nodes without a
// name are authoring noise and are skipped at render time.
type Subtopic struct {
	Name         string        `json:"subtopicName"`
	URL          string        `json:"subtopicUrl,omitempty"`
	IsComingSoon bool          `json:"isComingSoon"`
	SubSubtopics []SubSubtopic `json:"subSubtopics,omitempty"`
}

// Topic is the top level of a subject's topic tree.
type Topic struct {
	Name         string     `json:"topicName"`
	Description  string     `json:"topicDescription,omitempty"`
	Color        string     `json:"color"`
	DisplayOrder int        `json:"displayOrder"`
	Subtopics    []Subtopic `json:"subtopics"`
}

// SubjectPage is a published dynamic subject page.
type SubjectPage struct {
	ID              string     `json:"_id"`
	Title           string     `json:"title"`
	SubjectSlug     Slug       `json:"subjectSlug"`
	SubjectName     string     `json:"subjectName"`
	PageTitle       string     `json:"pageTitle"`
	PageDescription string     `json:"pageDescription"`
	BackgroundColor string     `json:"topicBlockBackgroundColor,omitempty"`
	Topics          []Topic    `json:"topics"`
	IsPublished     bool       `json:"isPublished"`
	SEO             *SEOFields `json:"seo,omitempty"`
}

// WhyChooseUsHighlight is one highlight card.
type WhyChooseUsHighlight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// WhyChooseUs is the why-choose-us section document.
type WhyChooseUs struct {
	ID                 string               `json:"_id"`
	SectionTitle       string               `json:"sectionTitle"`
	SectionDescription string               `json:"sectionDescription"`
	Highlight1         WhyChooseUsHighlight `json:"highlight1"`
	Highlight2         WhyChooseUsHighlight `json:"highlight2"`
	Highlight3         WhyChooseUsHighlight `json:"highlight3"`
	Highlight4         WhyChooseUsHighlight `json:"highlight4"`
}

// FAQItem is a single question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ContactSupport is the optional support block under the FAQ list.
type ContactSupport struct {
	Description string `json:"description,omitempty"`
	ButtonText  string `json:"buttonText,omitempty"`
	ButtonLink  string `json:"buttonLink,omitempty"`
}

// FAQ is the FAQ section document.
type FAQ struct {
	ID                 string          `json:"_id"`
	SectionTitle       string          `json:"sectionTitle"`
	SectionDescription string          `json:"sectionDescription"`
	Items              []FAQItem       `json:"faqs"`
	ContactSupport     *ContactSupport `json:"contactSupport,omitempty"`
}

// FooterSection is a titled group of footer links.
type FooterSection struct {
	SectionTitle string `json:"sectionTitle"`
	Links        []Link `json:"links"`
}

// FooterSocial holds the optional social-media profile URLs.
type FooterSocial struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

// FooterLayout holds footer display settings.
type FooterLayout struct {
	ShowCopyright bool   `json:"showCopyright"`
	CopyrightText string `json:"copyrightText,omitempty"`
}

// Footer is the site footer document.
type Footer struct {
	ID                 string         `json:"_id"`
	WebsiteTitle       string         `json:"websiteTitle"`
	WebsiteDescription string         `json:"websiteDescription"`
	QuickLinks         *FooterSection `json:"quickLinks,omitempty"`
	PopularSubjects    *FooterSection `json:"popularSubjects,omitempty"`
	Support            *FooterSection `json:"support,omitempty"`
	SocialMedia        *FooterSocial  `json:"socialMedia,omitempty"`
	LayoutSettings     FooterLayout   `json:"layoutSettings"`
}

// SuccessMessage is the confirmation copy shown after a submission.
type SuccessMessage struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FormSettings holds contact-form presentation settings.
type FormSettings struct {
	SuccessMessage   SuccessMessage `json:"successMessage"`
	SubmitButtonText string         `json:"submitButtonText"`
}

// ContactSection is the contact-form-section document.
type ContactSection struct {
	ID                 string       `json:"_id"`
	SectionTitle       string       `json:"sectionTitle"`
	SectionDescription string       `json:"sectionDescription"`
	TutorChaseLink     string       `json:"tutorChaseLink,omitempty"`
	FormSettings       FormSettings `json:"formSettings"`
}

// SEOFields are the SEO fields attached directly to a content
// document. All fields are optional; absent values fall through the
// resolver's fallback chain.
type SEOFields struct {
	MetaTitle          string `json:"metaTitle,omitempty"`
	MetaDescription    string `json:"metaDescription,omitempty"`
	MetaKeywords       string `json:"metaKeywords,omitempty"`
	OGTitle            string `json:"ogTitle,omitempty"`
	OGDescription      string `json:"ogDescription,omitempty"`
	OGImage            *Image `json:"ogImage,omitempty"`
	TwitterTitle       string `json:"twitterTitle,omitempty"`
	TwitterDescription string `json:"twitterDescription,omitempty"`
	TwitterImage       *Image `json:"twitterImage,omitempty"`
	CanonicalURL       string `json:"canonicalUrl,omitempty"`
	NoIndex            bool   `json:"noIndex,omitempty"`
	NoFollow           bool   `json:"noFollow,omitempty"`
}

// SEOSettings is the site-wide SEO settings document.
type SEOSettings struct {
	ID               string `json:"_id"`
	MetaTitle        string `json:"metaTitle,omitempty"`
	MetaDescription  string `json:"metaDescription,omitempty"`
	NoFollowExternal bool   `json:"noFollowExternal"`
}

// Submission is one contact-form submission.
type Submission struct {
	ID              string    `json:"id"`
	FullName        string    `json:"fullName"`
	Country         string    `json:"country"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	TutoringDetails string    `json:"tutoringDetails"`
	HourlyBudget    string    `json:"hourlyBudget"`
	SubmittedAt     time.Time `json:"submittedAt"`
}
