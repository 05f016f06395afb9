package fetch

import (
	"context"
	"errors"
	"fmt"

	"github.com/halee5027/RecruitNova/internal/queue"
	"github.com/halee5027/RecruitNova/internal/screening"
)

// Processor executes queued screening jobs: it downloads the resume named by
// the message and runs it through the screening service under the job's ID.
// Download and validation failures are recorded as failed reports so the job
// is not retried for an unfetchable document.
type Processor struct {
	Fetcher *Fetcher
	Svc     *screening.Service
}

// ProcessScreening handles one queued job.
func (p *Processor) ProcessScreening(ctx context.Context, msg queue.Message) error {
	if p.Fetcher == nil || p.Svc == nil {
		return errors.New("fetch processor not configured")
	}

	result := p.Fetcher.FromURL(ctx, msg.SourceURL)
	if result.Status != "success" {
		_, err := p.Svc.RecordFailure(ctx, msg.ScreeningID, result.Filename, msg.JobTitle, result.Message)
		return err
	}

	if valid, detail := ValidateContent(result.Content); !valid {
		_, err := p.Svc.RecordFailure(ctx, msg.ScreeningID, result.Filename, msg.JobTitle, detail)
		return err
	}

	if _, err := p.Svc.ScreenWithID(ctx, msg.ScreeningID, result.Content, result.Filename, msg.JobTitle, msg.JobDescription, msg.RequiredYears); err != nil {
		return fmt.Errorf("screen fetched resume: %w", err)
	}
	return nil
}
