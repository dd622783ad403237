package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/igcsenotes/site/internal/model"
	"github.com/igcsenotes/site/internal/sitemap"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type contactRequest struct {
	FullName        string `json:"fullName"`
	Country         string `json:"country"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	TutoringDetails string `json:"tutoringDetails"`
	HourlyBudget    string `json:"hourlyBudget"`
}

// validate returns the name of the first missing field, or flags a
// malformed email address.
func (c contactRequest) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"fullName", c.FullName},
		{"country", c.Country},
		{"phone", c.Phone},
		{"email", c.Email},
		{"tutoringDetails", c.TutoringDetails},
		{"hourlyBudget", c.HourlyBudget},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%s is required", f.name)
		}
	}
	if !emailPattern.MatchString(c.Email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	if err := req.validate(); err != nil {
		log.Infof("Contact form validation failed: %v", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sub := &model.Submission{
		ID:              uuid.NewString(),
		FullName:        req.FullName,
		Country:         req.Country,
		Phone:           req.Phone,
		Email:           req.Email,
		TutoringDetails: req.TutoringDetails,
		HourlyBudget:    req.HourlyBudget,
		SubmittedAt:     time.Now().UTC(),
	}

	// Journal locally first, then persist to the content store and
	// send the notification. All three are independent best-effort
	// steps; a failure is logged and never fails the request.
	journaled := false
	if err := s.store.AddSubmission(sub); err != nil {
		log.Errorf("Failed to journal submission %s: %v", sub.ID, err)
	} else {
		journaled = true
	}

	cmsSaved := false
	if err := s.cms.CreateSubmission(r.Context(), sub); err != nil {
		log.Errorf("Failed to persist submission %s to content store: %v", sub.ID, err)
	} else {
		cmsSaved = true
	}

	emailSent := false
	if s.mailer != nil && s.mailer.Enabled() {
		if err := s.mailer.SendSubmission(r.Context(), sub); err != nil {
			log.Errorf("Failed to send notification for submission %s: %v", sub.ID, err)
		} else {
			emailSent = true
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":   "Form submitted successfully",
		"id":        sub.ID,
		"journaled": journaled,
		"cmsSaved":  cmsSaved,
		"emailSent": emailSent,
	})
}

func (s *Server) handleSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := s.store.GetSubmissions()
	if err != nil {
		log.Errorf("Failed to list submissions: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to list submissions"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"submissions": subs,
		"total":       len(subs),
	})
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	slugs, err := s.cms.SubjectSlugs(r.Context())
	if err != nil {
		// Fall back to a homepage-only sitemap.
		log.Errorf("Error fetching subject slugs for sitemap: %v", err)
		slugs = nil
	}

	body, err := sitemap.Build(s.opts.BaseURL, slugs, time.Now())
	if err != nil {
		log.Errorf("Error generating sitemap: %v", err)
		http.Error(w, "Failed to generate sitemap", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Header().Set("Cache-Control", "s-maxage=86400, stale-while-revalidate=43200")
	w.Write(body)
}

func (s *Server) handleRobots(w http.ResponseWriter, r *http.Request) {
	robots := fmt.Sprintf(`User-agent: *
Allow: /
Disallow: /studio/
Disallow: /api/

Sitemap: %s/sitemap.xml
`, s.opts.BaseURL)

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Cache-Control", "s-maxage=60")
	fmt.Fprint(w, robots)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
