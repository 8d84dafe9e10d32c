package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nexthire/job-board/internal/dtos"
	"github.com/nexthire/job-board/internal/models"
	"github.com/nexthire/job-board/internal/sanitize"
)

// JobService owns all access to the jobs table.
type JobService struct {
	DB  *gorm.DB
	log *zap.Logger

	// Row cap for new postings; 0 disables the cap.
	maxPostings int64
}

func NewJobService(db *gorm.DB, log *zap.Logger, maxPostings int64) *JobService {
	return &JobService{
		DB:          db,
		log:         log,
		maxPostings: maxPostings,
	}
}

// MaxPostings reports the configured row cap (0 means uncapped).
func (s *JobService) MaxPostings() int64 { return s.maxPostings }

// Create inserts a new posting. The description is sanitized, a poster
// username is generated when absent, and a fresh unique modification code is
// attached. Returns ErrPostingCapReached when the table is full.
func (s *JobService) Create(req *dtos.JobCreateRequest) (*models.Job, error) {
	if s.maxPostings > 0 {
		var count int64
		if err := s.DB.Model(&models.Job{}).Count(&count).Error; err != nil {
			return nil, errors.Wrap(err, "count jobs")
		}
		if count >= s.maxPostings {
			return nil, ErrPostingCapReached
		}
	}

	username := req.PosterUsername
	if username == "" {
		generated, err := s.generatePosterUsername()
		if err != nil {
			return nil, err
		}
		username = generated
	}

	code, err := s.generateModificationCode()
	if err != nil {
		return nil, err
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	job := &models.Job{
		Title:            req.Title,
		CompanyName:      req.CompanyName,
		Location:         req.Location,
		Description:      sanitize.Description(req.Description),
		ApplicationInfo:  req.ApplicationInfo,
		JobType:          req.JobType,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		SalaryCurrency:   req.SalaryCurrency,
		PosterUsername:   username,
		Tags:             pq.StringArray(tags),
		ModificationCode: code,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, errors.Wrap(err, "create job")
	}

	s.log.Info("job created",
		zap.String("job_id", job.ID.String()),
		zap.String("company", job.CompanyName))
	return job, nil
}

// Get returns a single posting by ID.
func (s *JobService) Get(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := s.DB.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, errors.Wrap(err, "get job")
	}
	return &job, nil
}

// GetByIDs fetches postings in batch. Unknown IDs are silently omitted.
func (s *JobService) GetByIDs(ids []uuid.UUID) ([]models.Job, error) {
	jobs := []models.Job{}
	if len(ids) == 0 {
		return jobs, nil
	}
	if err := s.DB.Where("id IN ?", ids).Find(&jobs).Error; err != nil {
		return nil, errors.Wrap(err, "get jobs by ids")
	}
	return jobs, nil
}

// List applies search, filters, sorting and pagination, returning the page
// plus the total number of rows matching the criteria.
func (s *JobService) List(q *dtos.JobListQuery) ([]models.Job, int64, error) {
	tx := s.DB.Model(&models.Job{})

	if q.Search != "" {
		term := "%" + strings.ToLower(q.Search) + "%"
		tx = tx.Where(
			"LOWER(title) LIKE ? OR LOWER(company_name) LIKE ? OR LOWER(description) LIKE ?",
			term, term, term,
		)
	}
	if tags := q.TagList(); len(tags) > 0 {
		// Array overlap: the posting has at least one of the wanted tags.
		tx = tx.Where("tags && ?", pq.Array(tags))
	}
	if q.JobType != "" {
		tx = tx.Where("job_type = ?", q.JobType)
	}
	if q.Location != "" {
		tx = tx.Where("LOWER(location) = ?", strings.ToLower(q.Location))
	}
	if q.CompanyName != "" {
		tx = tx.Where("LOWER(company_name) = ?", strings.ToLower(q.CompanyName))
	}
	if q.SalaryMin != nil {
		tx = tx.Where("salary_max >= ? OR (salary_max IS NULL AND salary_min >= ?)", *q.SalaryMin, *q.SalaryMin)
	}
	if q.SalaryMax != nil {
		tx = tx.Where("salary_min <= ? OR (salary_min IS NULL AND salary_max <= ?)", *q.SalaryMax, *q.SalaryMax)
	}
	if q.SalaryCurrency != "" {
		tx = tx.Where("salary_currency = ?", strings.ToUpper(q.SalaryCurrency))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count jobs")
	}

	tx = tx.Order(orderClause(q.SortBy, q.SortOrder))

	jobs := []models.Job{}
	if err := tx.Offset(q.Skip).Limit(q.Limit).Find(&jobs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list jobs")
	}
	return jobs, total, nil
}

// orderClause builds the ORDER BY for a whitelisted column. Title sorting is
// case-insensitive so "amazon" and "Apple" interleave naturally.
func orderClause(sortBy, sortOrder string) string {
	dir := "DESC"
	if sortOrder == "asc" {
		dir = "ASC"
	}
	switch sortBy {
	case "title":
		return "LOWER(title) " + dir
	case "updated_at", "company_name", "location":
		return sortBy + " " + dir
	default:
		return "created_at " + dir
	}
}

// VerifyCode checks a modification code without mutating anything.
// Returns ErrJobNotFound when the posting does not exist.
func (s *JobService) VerifyCode(id uuid.UUID, code string) (bool, error) {
	job, err := s.Get(id)
	if err != nil {
		return false, err
	}
	return job.ModificationCode == code, nil
}

// Update applies a partial update guarded by the modification code.
func (s *JobService) Update(id uuid.UUID, req *dtos.JobUpdateRequest, code string) (*models.Job, error) {
	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if job.ModificationCode != code {
		return nil, ErrWrongCode
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.CompanyName != nil {
		job.CompanyName = *req.CompanyName
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Description != nil {
		job.Description = sanitize.Description(*req.Description)
	}
	if req.ApplicationInfo != nil {
		job.ApplicationInfo = *req.ApplicationInfo
	}
	if req.JobType != nil {
		job.JobType = *req.JobType
	}
	if req.SalaryMin != nil {
		job.SalaryMin = req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = req.SalaryMax
	}
	if req.SalaryCurrency != nil {
		job.SalaryCurrency = *req.SalaryCurrency
	}
	if req.Tags != nil {
		job.Tags = pq.StringArray(*req.Tags)
	}

	// Cross-field salary rules against the merged record.
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMax < *job.SalaryMin {
		return nil, errors.WithMessage(ErrValidation, "maximum salary cannot be less than minimum salary")
	}
	if job.SalaryMin == nil && job.SalaryMax == nil {
		job.SalaryCurrency = ""
	} else if job.SalaryCurrency == "" {
		job.SalaryCurrency = "USD"
	}

	if err := s.DB.Save(job).Error; err != nil {
		return nil, errors.Wrap(err, "update job")
	}

	s.log.Info("job updated", zap.String("job_id", job.ID.String()))
	return job, nil
}

// Delete removes a posting guarded by the modification code and returns the
// deleted row.
func (s *JobService) Delete(id uuid.UUID, code string) (*models.Job, error) {
	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if job.ModificationCode != code {
		return nil, ErrWrongCode
	}

	if err := s.DB.Delete(&models.Job{}, "id = ?", id).Error; err != nil {
		return nil, errors.Wrap(err, "delete job")
	}

	s.log.Info("job deleted", zap.String("job_id", job.ID.String()))
	return job, nil
}

// Related returns up to limit postings sharing at least one tag with the
// given posting, newest first. A posting without tags has no related jobs.
func (s *JobService) Related(id uuid.UUID, limit int) ([]models.Job, error) {
	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	related := []models.Job{}
	if len(job.Tags) == 0 {
		return related, nil
	}

	if err := s.DB.
		Where("id <> ? AND tags && ?", id, pq.Array([]string(job.Tags))).
		Order("created_at DESC").
		Limit(limit).
		Find(&related).Error; err != nil {
		return nil, errors.Wrap(err, "related jobs")
	}
	return related, nil
}

// UniqueTags lists every distinct tag across all postings.
func (s *JobService) UniqueTags() ([]string, error) {
	tags := []string{}
	err := s.DB.Raw(
		`SELECT DISTINCT unnest(tags) AS tag
		 FROM jobs
		 WHERE tags IS NOT NULL AND cardinality(tags) > 0
		 ORDER BY tag`,
	).Scan(&tags).Error
	if err != nil {
		return nil, errors.Wrap(err, "unique tags")
	}
	return tags, nil
}
