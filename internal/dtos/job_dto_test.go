package dtos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func validCreate() JobCreateRequest {
	return JobCreateRequest{
		Title:           "Backend Engineer",
		CompanyName:     "Acme",
		Description:     "<p>Build things</p>",
		ApplicationInfo: "jobs@acme.example",
	}
}

func TestCreateNormalize_ApplicationInfo(t *testing.T) {
	cases := []struct {
		name  string
		value string
		ok    bool
	}{
		{"email", "jobs@acme.example", true},
		{"https url", "https://acme.example/careers", true},
		{"http url", "http://acme.example/apply", true},
		{"bare word", "applyhere", false},
		{"ftp url", "ftp://acme.example", false},
		{"email with display name", "Jobs <jobs@acme.example>", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreate()
			req.ApplicationInfo = tc.value
			err := req.Normalize()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCreateNormalize_Tags(t *testing.T) {
	req := validCreate()
	req.Tags = []string{" Go ", "go", "C++", "c#", "node.js", ""}

	require.NoError(t, req.Normalize())
	assert.Equal(t, []string{"go", "c++", "c#", "node.js"}, req.Tags)
}

func TestCreateNormalize_TagRejections(t *testing.T) {
	cases := []struct {
		name string
		tags []string
	}{
		{"invalid characters", []string{"<script>"}},
		{"spaces inside", []string{"machine learning"}},
		{"too long", []string{"abcdefghijklmnopqrstuvwxyz"}},
		{"too many", []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreate()
			req.Tags = tc.tags
			assert.Error(t, req.Normalize())
		})
	}
}

func TestCreateNormalize_SalaryRules(t *testing.T) {
	t.Run("max below min rejected", func(t *testing.T) {
		req := validCreate()
		req.SalaryMin = intp(100000)
		req.SalaryMax = intp(50000)
		assert.Error(t, req.Normalize())
	})

	t.Run("currency defaults to USD when salary present", func(t *testing.T) {
		req := validCreate()
		req.SalaryMin = intp(50000)
		require.NoError(t, req.Normalize())
		assert.Equal(t, "USD", req.SalaryCurrency)
	})

	t.Run("currency cleared when no salary", func(t *testing.T) {
		req := validCreate()
		req.SalaryCurrency = "EUR"
		require.NoError(t, req.Normalize())
		assert.Empty(t, req.SalaryCurrency)
	})
}

func TestCreateNormalize_Username(t *testing.T) {
	req := validCreate()
	req.PosterUsername = "Jane_Doe 42"
	assert.NoError(t, req.Normalize())

	req = validCreate()
	req.PosterUsername = "x"
	assert.Error(t, req.Normalize(), "too short")

	req = validCreate()
	req.PosterUsername = "bad!name"
	assert.Error(t, req.Normalize(), "invalid characters")
}

func TestUpdateNormalize(t *testing.T) {
	t.Run("empty patch detected", func(t *testing.T) {
		var req JobUpdateRequest
		assert.True(t, req.Empty())
	})

	t.Run("tags normalized in place", func(t *testing.T) {
		tags := []string{"Go", "GO"}
		req := JobUpdateRequest{Tags: &tags}
		require.NoError(t, req.Normalize())
		assert.Equal(t, []string{"go"}, *req.Tags)
		assert.False(t, req.Empty())
	})

	t.Run("bad application info rejected", func(t *testing.T) {
		info := "not-a-url"
		req := JobUpdateRequest{ApplicationInfo: &info}
		assert.Error(t, req.Normalize())
	})

	t.Run("incoherent salary pair rejected", func(t *testing.T) {
		req := JobUpdateRequest{SalaryMin: intp(90), SalaryMax: intp(10)}
		assert.Error(t, req.Normalize())
	})
}

func TestJobListQueryTagList(t *testing.T) {
	q := JobListQuery{Tags: " Go, python ,,REACT "}
	assert.Equal(t, []string{"go", "python", "react"}, q.TagList())

	q = JobListQuery{}
	assert.Nil(t, q.TagList())
}
