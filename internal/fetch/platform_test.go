package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://www.naukri.com/job-listings-data-analyst", PlatformNaukri},
		{"https://www.linkedin.com/jobs/view/123456", PlatformLinkedIn},
		{"https://in.indeed.com/viewjob?jk=abc", PlatformIndeed},
		{"https://boards.greenhouse.io/acme/jobs/1", PlatformGreenhouse},
		{"https://jobs.lever.co/acme/uuid", PlatformLever},
		{"https://careers.example.com/jobs/1", PlatformUnknown},
		{"::bad url::", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

func TestPlatformContentSelectors(t *testing.T) {
	// Every platform gets a non-empty selector list.
	platforms := []Platform{
		PlatformNaukri, PlatformLinkedIn, PlatformIndeed,
		PlatformGreenhouse, PlatformLever, PlatformUnknown,
	}
	for _, p := range platforms {
		assert.NotEmpty(t, PlatformContentSelectors(p), "platform %s", p)
	}

	// Unknown falls back to the generic job posting selectors.
	assert.Equal(t, JobPostingSelectors(), PlatformContentSelectors(PlatformUnknown))
}

func TestPlatformNoiseSelectors_IncludesCommon(t *testing.T) {
	for _, p := range []Platform{PlatformNaukri, PlatformLinkedIn, PlatformUnknown} {
		selectors := PlatformNoiseSelectors(p)
		assert.Contains(t, selectors, "form")
		assert.Contains(t, selectors, ".cookie-banner")
	}
}
