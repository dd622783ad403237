// Package content is the query client for the headless content
// store. All page copy, navigation data and SEO settings come from
// here; every query filters on the document's active/published flag
// and takes the first match.
package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"

	"github.com/igcsenotes/site/internal/model"
)

// Config holds the content-store connection details. It is passed in
// explicitly at construction; the client never reads the environment.
type Config struct {
	Endpoint   string
	Dataset    string
	APIVersion string
	AuthToken  string
	Timeout    time.Duration
}

// Client queries the content store over HTTP.
type Client struct {
	http *resty.Client
	cfg  Config
}

// New creates a content client from explicit configuration.
func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	httpClient := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Accept", "application/json")
	if cfg.AuthToken != "" {
		httpClient.SetHeader("Authorization", "Bearer "+cfg.AuthToken)
	}
	return &Client{http: httpClient, cfg: cfg}
}

// Close releases the underlying HTTP client resources.
func (c *Client) Close() error {
	return c.http.Close()
}

func (c *Client) queryURL() string {
	return fmt.Sprintf("%s/v%s/data/query/%s", c.cfg.Endpoint, c.cfg.APIVersion, c.cfg.Dataset)
}

func (c *Client) mutateURL() string {
	return fmt.Sprintf("%s/v%s/data/mutate/%s", c.cfg.Endpoint, c.cfg.APIVersion, c.cfg.Dataset)
}

// query runs a GROQ query and decodes the result envelope into out.
func (c *Client) query(ctx context.Context, groq string, params map[string]string, out any) error {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("query", groq)
	for k, v := range params {
		req.SetQueryParam("$"+k, v)
	}

	resp, err := req.Get(c.queryURL())
	if err != nil {
		return fmt.Errorf("content query failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("content query HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal([]byte(resp.String()), &envelope); err != nil {
		return fmt.Errorf("decode content response: %w", err)
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("decode content result: %w", err)
	}
	return nil
}

const imageProjection = `{asset->{_id,_ref,url},alt}`

const headerQuery = `*[_type == "header" && isActive == true][0]{_id,title,logo` + imageProjection + `,navigation[]{label,href},ctaButton{text,href}}`

const heroQuery = `*[_type == "hero" && isActive == true][0]{_id,title,premiumTag,sectionTitle,sectionTitleHighlighted,description,ctaButtons{primaryButton{text,href},secondaryButton{text,href}},statistics{studentsHelped{text,stats},subjectsCovered{text,stats},successRate{text,stats}},floatingCards[]{title,description}}`

const subjectGridQuery = `*[_type == "subjectGrid" && isActive == true][0]{_id,title,sectionTitle,sectionDescription,subjects[]{name,image` + imageProjection + `,description,color,dateUpdated,viewNotesButton{text,url}},viewAllButton{text,url}}`

const whyChooseUsQuery = `*[_type == "whyChooseUs" && isActive == true][0]{_id,sectionTitle,sectionDescription,highlight1{title,description},highlight2{title,description},highlight3{title,description},highlight4{title,description}}`

const faqQuery = `*[_type == "faq" && isActive == true][0]{_id,sectionTitle,sectionDescription,faqs[]{question,answer},contactSupport{description,buttonText,buttonLink}}`

const contactSectionQuery = `*[_type == "contactFormSection" && isActive == true][0]{_id,sectionTitle,sectionDescription,tutorChaseLink,formSettings{successMessage{title,description},submitButtonText}}`

const footerQuery = `*[_type == "footer" && isActive == true][0]{_id,websiteTitle,websiteDescription,quickLinks{sectionTitle,links[]{label,href}},popularSubjects{sectionTitle,links[]{label,href}},support{sectionTitle,links[]{label,href}},socialMedia{facebook,twitter,instagram,linkedin,youtube},layoutSettings{showCopyright,copyrightText}}`

const subjectsPageQuery = `*[_type == "subjectsPage" && isActive == true][0]{_id,pageTitle,pageDescription,subjectGridDisplayOrder,showAdditionalSubjects,additionalSubjects[]{name,image` + imageProjection + `,description,color,dateUpdated,viewNotesButton{text,href},displayOrder},additionalSubjectRequestTitle,additionalSubjectRequestDescription,additionalSubjectRequestButton{text,href},seo{metaTitle,metaDescription,metaKeywords}}`

const topicsProjection = `topics[]{topicName,topicDescription,color,displayOrder,subtopics[]{subtopicName,subtopicUrl,isComingSoon,subSubtopics[]{subSubtopicName,subSubtopicUrl,isComingSoon}}}`

const publishedSubjectsQuery = `*[_type == "subjectPage" && isPublished == true]{_id,title,subjectSlug,subjectName,pageTitle,pageDescription,isPublished}`

const subjectBySlugQuery = `*[_type == "subjectPage" && subjectSlug.current == $slug && isPublished == true][0]{_id,title,subjectSlug,subjectName,pageTitle,pageDescription,topicBlockBackgroundColor,` + topicsProjection + `,isPublished,seo{metaTitle,metaDescription,metaKeywords,ogTitle,ogDescription,ogImage` + imageProjection + `,twitterTitle,twitterDescription,twitterImage` + imageProjection + `,canonicalUrl,noIndex,noFollow}}`

const subjectSlugsQuery = `*[_type == "subjectPage" && isPublished == true].subjectSlug.current`

const seoSettingsQuery = `*[_type == "homepageSEO" && isActive == true][0]{_id,metaTitle,metaDescription,noFollowExternal}`

const globalSEOQuery = `*[_type == "seoSettings" && isGlobal == true][0].seo{metaTitle,metaDescription,metaKeywords,ogTitle,ogDescription,canonicalUrl,noIndex,noFollow}`

// Header fetches the site header document.
func (c *Client) Header(ctx context.Context) (*model.Header, error) {
	var out *model.Header
	if err := c.query(ctx, headerQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Hero fetches the home-page hero document.
func (c *Client) Hero(ctx context.Context) (*model.Hero, error) {
	var out *model.Hero
	if err := c.query(ctx, heroQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubjectGrid fetches the curated subject grid.
func (c *Client) SubjectGrid(ctx context.Context) (*model.SubjectGrid, error) {
	var out *model.SubjectGrid
	if err := c.query(ctx, subjectGridQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WhyChooseUs fetches the why-choose-us section.
func (c *Client) WhyChooseUs(ctx context.Context) (*model.WhyChooseUs, error) {
	var out *model.WhyChooseUs
	if err := c.query(ctx, whyChooseUsQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FAQ fetches the FAQ section.
func (c *Client) FAQ(ctx context.Context) (*model.FAQ, error) {
	var out *model.FAQ
	if err := c.query(ctx, faqQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ContactSection fetches the contact-form-section document.
func (c *Client) ContactSection(ctx context.Context) (*model.ContactSection, error) {
	var out *model.ContactSection
	if err := c.query(ctx, contactSectionQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Footer fetches the site footer document.
func (c *Client) Footer(ctx context.Context) (*model.Footer, error) {
	var out *model.Footer
	if err := c.query(ctx, footerQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubjectsPage fetches the subjects-page configuration document.
func (c *Client) SubjectsPage(ctx context.Context) (*model.SubjectsPage, error) {
	var out *model.SubjectsPage
	if err := c.query(ctx, subjectsPageQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PublishedSubjects fetches all published subject pages, without
// their topic trees.
func (c *Client) PublishedSubjects(ctx context.Context) ([]model.SubjectPage, error) {
	var out []model.SubjectPage
	if err := c.query(ctx, publishedSubjectsQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubjectBySlug fetches one published subject page with its full
// topic tree. Returns nil when no published page matches.
func (c *Client) SubjectBySlug(ctx context.Context, slug string) (*model.SubjectPage, error) {
	var out *model.SubjectPage
	params := map[string]string{"slug": strconv.Quote(slug)}
	if err := c.query(ctx, subjectBySlugQuery, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubjectSlugs fetches the slugs of all published subject pages.
func (c *Client) SubjectSlugs(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.query(ctx, subjectSlugsQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SEOSettings fetches the active site-wide SEO settings document.
func (c *Client) SEOSettings(ctx context.Context) (*model.SEOSettings, error) {
	var out *model.SEOSettings
	if err := c.query(ctx, seoSettingsQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GlobalSEO fetches the global SEO fields used as a fallback for
// pages without their own.
func (c *Client) GlobalSEO(ctx context.Context) (*model.SEOFields, error) {
	var out *model.SEOFields
	if err := c.query(ctx, globalSEOQuery, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSubmission persists a contact submission to the content
// store. Requires an auth token with write access.
func (c *Client) CreateSubmission(ctx context.Context, sub *model.Submission) error {
	payload := map[string]any{
		"mutations": []map[string]any{
			{
				"create": map[string]any{
					"_type":           "contactForm",
					"fullName":        sub.FullName,
					"country":         sub.Country,
					"phone":           sub.Phone,
					"email":           sub.Email,
					"tutoringDetails": sub.TutoringDetails,
					"hourlyBudget":    sub.HourlyBudget,
					"submissionDate":  sub.SubmittedAt.Format(time.RFC3339),
				},
			},
		},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(c.mutateURL())
	if err != nil {
		return fmt.Errorf("content mutation failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("content mutation HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}

	log.Debugf("Persisted contact submission %s to content store", sub.ID)
	return nil
}
