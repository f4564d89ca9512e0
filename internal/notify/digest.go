package notify

import (
	"fmt"
	"strings"
	"time"

	"jobwatch/internal/domain"
)

const delimiter = "------------------------------------------------------------"

// BuildDigest formats the subject and plain-text body for one run's new jobs.
func BuildDigest(jobs []domain.Job, now time.Time) (subject, body string) {
	date := now.UTC().Format("2006-01-02 15:04") + " UTC"
	subject = fmt.Sprintf("New SDE intern openings — %d new — %s", len(jobs), date)

	lines := make([]string, 0, len(jobs)*4)
	for _, j := range jobs {
		lines = append(lines,
			"Company: "+j.Company,
			"URL: "+j.URL,
			"Snippet: "+j.Snippet,
			delimiter,
		)
	}
	return subject, strings.Join(lines, "\n")
}
