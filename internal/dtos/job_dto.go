package dtos

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/nexthire/job-board/internal/models"
)

const (
	MaxTags      = 10
	MaxTagLength = 25
)

// Tags allow alphanumerics plus the characters common in tech names
// (c#, c++, node.js, ci/cd, full-stack).
var tagPattern = regexp.MustCompile(`^[a-zA-Z0-9#+./-]+$`)

// Poster usernames: alphanumerics, underscores and spaces.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_ ]+$`)

// JobCreateRequest is the POST /jobs body.
type JobCreateRequest struct {
	Title           string   `json:"title" binding:"required,min=1,max=100"`
	CompanyName     string   `json:"company_name" binding:"required,min=1,max=100"`
	Location        string   `json:"location" binding:"omitempty,max=100"`
	Description     string   `json:"description" binding:"required,min=1,max=5000"`
	ApplicationInfo string   `json:"application_info" binding:"required,min=1,max=255"`
	JobType         string   `json:"job_type" binding:"omitempty,oneof=full-time part-time contract freelance internship"`
	SalaryMin       *int     `json:"salary_min" binding:"omitempty,gte=0"`
	SalaryMax       *int     `json:"salary_max" binding:"omitempty,gte=0"`
	SalaryCurrency  string   `json:"salary_currency" binding:"omitempty,oneof=USD EUR GBP CAD AUD"`
	PosterUsername  string   `json:"poster_username"`
	Tags            []string `json:"tags"`
}

// Normalize applies the cross-field rules gin's binding tags cannot express:
// application_info must be an email or http(s) URL, tags are cleaned and
// deduplicated, the salary range must be coherent, and the currency is
// defaulted or cleared depending on whether a salary bound is present.
func (r *JobCreateRequest) Normalize() error {
	if err := validateApplicationInfo(r.ApplicationInfo); err != nil {
		return err
	}
	if r.PosterUsername != "" {
		if err := validateUsername(r.PosterUsername); err != nil {
			return err
		}
	}

	tags, err := normalizeTags(r.Tags)
	if err != nil {
		return err
	}
	r.Tags = tags

	if r.SalaryMin != nil && r.SalaryMax != nil && *r.SalaryMax < *r.SalaryMin {
		return errors.New("maximum salary cannot be less than minimum salary")
	}
	if r.SalaryMin != nil || r.SalaryMax != nil {
		if r.SalaryCurrency == "" {
			r.SalaryCurrency = "USD"
		}
	} else {
		r.SalaryCurrency = ""
	}
	return nil
}

// JobUpdateRequest is the PATCH /jobs/:id body. Pointer fields distinguish
// "absent" from "set to zero value".
type JobUpdateRequest struct {
	Title           *string   `json:"title" binding:"omitempty,min=1,max=100"`
	CompanyName     *string   `json:"company_name" binding:"omitempty,min=1,max=100"`
	Location        *string   `json:"location" binding:"omitempty,max=100"`
	Description     *string   `json:"description" binding:"omitempty,min=1,max=5000"`
	ApplicationInfo *string   `json:"application_info" binding:"omitempty,min=1,max=255"`
	JobType         *string   `json:"job_type" binding:"omitempty,oneof=full-time part-time contract freelance internship"`
	SalaryMin       *int      `json:"salary_min" binding:"omitempty,gte=0"`
	SalaryMax       *int      `json:"salary_max" binding:"omitempty,gte=0"`
	SalaryCurrency  *string   `json:"salary_currency" binding:"omitempty,oneof=USD EUR GBP CAD AUD"`
	Tags            *[]string `json:"tags"`
}

// Normalize validates the fields that are present. Cross-field salary checks
// against the stored record happen in the service, which has the full row.
func (r *JobUpdateRequest) Normalize() error {
	if r.ApplicationInfo != nil {
		if err := validateApplicationInfo(*r.ApplicationInfo); err != nil {
			return err
		}
	}
	if r.Tags != nil {
		tags, err := normalizeTags(*r.Tags)
		if err != nil {
			return err
		}
		*r.Tags = tags
	}
	if r.SalaryMin != nil && r.SalaryMax != nil && *r.SalaryMax < *r.SalaryMin {
		return errors.New("maximum salary cannot be less than minimum salary")
	}
	return nil
}

// Empty reports whether the patch carries no fields at all.
func (r *JobUpdateRequest) Empty() bool {
	return r.Title == nil && r.CompanyName == nil && r.Location == nil &&
		r.Description == nil && r.ApplicationInfo == nil && r.JobType == nil &&
		r.SalaryMin == nil && r.SalaryMax == nil && r.SalaryCurrency == nil &&
		r.Tags == nil
}

// JobListQuery binds the GET /jobs query string.
type JobListQuery struct {
	Skip           int    `form:"skip,default=0" binding:"gte=0"`
	Limit          int    `form:"limit,default=20" binding:"gte=1,lte=100"`
	Search         string `form:"search" binding:"omitempty,min=1,max=100"`
	Tags           string `form:"tags"`
	SortBy         string `form:"sort_by,default=created_at" binding:"omitempty,oneof=created_at updated_at title company_name location"`
	SortOrder      string `form:"sort_order,default=desc" binding:"omitempty,oneof=asc desc"`
	JobType        string `form:"job_type" binding:"omitempty,oneof=full-time part-time contract freelance internship"`
	Location       string `form:"location" binding:"omitempty,min=1,max=100"`
	CompanyName    string `form:"company_name" binding:"omitempty,min=1,max=100"`
	SalaryMin      *int   `form:"salary_min" binding:"omitempty,gte=0"`
	SalaryMax      *int   `form:"salary_max" binding:"omitempty,gte=0"`
	SalaryCurrency string `form:"salary_currency" binding:"omitempty,len=3"`
}

// TagList splits the comma-separated tags parameter, lowercased.
func (q *JobListQuery) TagList() []string {
	if q.Tags == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(q.Tags, ",") {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JobWithModificationCode is returned only from create and update, where the
// caller has already proven possession of the code.
type JobWithModificationCode struct {
	models.Job
	ModificationCode string `json:"modification_code"`
}

type JobListResponse struct {
	Jobs  []models.Job `json:"jobs"`
	Limit int          `json:"limit"`
	Skip  int          `json:"skip"`
	Total int64        `json:"total"`
}

type JobDeleteResponse struct {
	Message string    `json:"message"`
	JobID   uuid.UUID `json:"job_id"`
}

// JobIDsPayload is the POST /jobs/saved body.
type JobIDsPayload struct {
	JobIDs []uuid.UUID `json:"job_ids" binding:"required"`
}

// ModificationCodePayload is the POST /jobs/:id/verify body.
type ModificationCodePayload struct {
	ModificationCode string `json:"modification_code" binding:"required,len=8"`
}

type VerificationResponse struct {
	Verified bool    `json:"verified"`
	Error    *string `json:"error"`
}

func validateApplicationInfo(s string) error {
	if u, err := url.Parse(s); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return nil
	}
	if addr, err := mail.ParseAddress(s); err == nil && addr.Address == s {
		return nil
	}
	return errors.New("application_info must be a valid email address or http(s) URL")
}

func validateUsername(s string) error {
	if len(s) < 3 || len(s) > 50 {
		return errors.New("poster_username must be between 3 and 50 characters")
	}
	if !usernamePattern.MatchString(s) {
		return errors.New("poster_username may only contain letters, digits, underscores and spaces")
	}
	return nil
}

// normalizeTags strips, lowercases, validates and deduplicates, preserving
// first-seen order.
func normalizeTags(in []string) ([]string, error) {
	tags := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, raw := range in {
		tag := strings.TrimSpace(raw)
		if tag == "" {
			continue
		}
		if len(tag) > MaxTagLength {
			return nil, errors.Errorf("tag %q must be between 1 and %d characters long", tag, MaxTagLength)
		}
		if !tagPattern.MatchString(tag) {
			return nil, errors.Errorf("tag %q contains invalid characters; allowed: alphanumeric and # + . / -", tag)
		}
		tag = strings.ToLower(tag)
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	if len(tags) > MaxTags {
		return nil, errors.Errorf("at most %d tags are allowed", MaxTags)
	}
	return tags, nil
}
