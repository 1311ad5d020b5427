package schedule

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gymdesk/internal/domain"
	"gymdesk/internal/repository"
)

// Service materializes recurring class templates into dated class
// instances. Preview and Apply share the same planning step; Apply adds the
// writes. Idempotency comes from the generation ledger, never from
// application-side bookkeeping.
type Service struct {
	templates TemplateRepository
	instances InstanceStore
	ledger    GenerationLedger
	orgs      OrganizationSettings
	defaultTZ string
}

func NewService(
	templates TemplateRepository,
	instances InstanceStore,
	ledger GenerationLedger,
	orgs OrganizationSettings,
	defaultTZ string,
) *Service {
	return &Service{
		templates: templates,
		instances: instances,
		ledger:    ledger,
		orgs:      orgs,
		defaultTZ: defaultTZ,
	}
}

// templatePlan classifies one template's candidate dates within a period.
type templatePlan struct {
	template         domain.ClassTemplate
	candidateDates   []time.Time
	alreadyGenerated []time.Time
	toGenerate       []time.Time
}

// plan enumerates candidate dates per template and splits them by ledger
// presence. Read-only: preview renders the result as-is, apply executes it.
func (s *Service) plan(ctx context.Context, templates []domain.ClassTemplate, period Period) ([]templatePlan, error) {
	plans := make([]templatePlan, 0, len(templates))

	for _, t := range templates {
		candidates := enumerateWeekday(t.Weekday, period.Start, period.LastDate())

		keys := make([]string, 0, len(candidates))
		for _, d := range candidates {
			keys = append(keys, d.Format(dateLayout))
		}

		generated, err := s.ledger.FindGenerated(ctx, t.ID, keys)
		if err != nil {
			return nil, fmt.Errorf("ledger lookup for template %d: %w", t.ID, err)
		}

		p := templatePlan{template: t, candidateDates: candidates}
		for _, d := range candidates {
			if generated[d.Format(dateLayout)] {
				p.alreadyGenerated = append(p.alreadyGenerated, d)
			} else {
				p.toGenerate = append(p.toGenerate, d)
			}
		}
		plans = append(plans, p)
	}

	return plans, nil
}

// Preview reports what Apply would create, without writing anything. Safe
// to call repeatedly.
func (s *Service) Preview(ctx context.Context, orgID int64, req GenerateRequest) (*PreviewResponse, error) {
	period, err := ResolvePeriod(req.Period, req.StartDate)
	if err != nil {
		return nil, err
	}

	templates, err := s.templates.ListActive(ctx, orgID, req.TemplateIDs)
	if err != nil {
		return nil, err
	}

	plans, err := s.plan(ctx, templates, period)
	if err != nil {
		return nil, err
	}

	resp := &PreviewResponse{
		PeriodStart: period.Start.Format(dateLayout),
		PeriodEnd:   period.End.Format(dateLayout),
		Templates:   make([]TemplatePlan, 0, len(plans)),
	}
	for _, p := range plans {
		resp.Templates = append(resp.Templates, TemplatePlan{
			TemplateID:       p.template.ID,
			Title:            p.template.Title,
			CandidateDates:   formatDates(p.candidateDates),
			AlreadyGenerated: formatDates(p.alreadyGenerated),
			ToGenerate:       formatDates(p.toGenerate),
		})
		resp.TotalToGenerate += len(p.toGenerate)
	}
	return resp, nil
}

// Apply materializes every planned (template, date) slot. Failures are
// per-item: one bad date never blocks sibling dates or templates. A ledger
// conflict means a concurrent run already handled the slot and is skipped
// silently. Retrying after a partial failure is the designed recovery path:
// slots that made it into the ledger are simply planned away next time.
func (s *Service) Apply(ctx context.Context, orgID int64, req GenerateRequest) (*ApplyResult, error) {
	period, err := ResolvePeriod(req.Period, req.StartDate)
	if err != nil {
		return nil, err
	}

	loc, err := s.location(ctx, orgID)
	if err != nil {
		return nil, err
	}

	templates, err := s.templates.ListActive(ctx, orgID, req.TemplateIDs)
	if err != nil {
		return nil, err
	}

	plans, err := s.plan(ctx, templates, period)
	if err != nil {
		return nil, err
	}

	result := &ApplyResult{}
	for _, p := range plans {
		s.executeTemplate(ctx, p, loc, result)
	}
	return result, nil
}

func (s *Service) executeTemplate(ctx context.Context, p templatePlan, loc *time.Location, result *ApplyResult) {
	t := p.template

	for _, date := range p.toGenerate {
		startsAt, err := combineInstant(date, t.StartTime, loc)
		if err != nil {
			result.Errors = append(result.Errors, itemError(t, date, err))
			continue
		}
		endsAt, err := combineInstant(date, t.EndTime, loc)
		if err != nil {
			result.Errors = append(result.Errors, itemError(t, date, err))
			continue
		}

		inst := domain.ClassInstance{
			OrganizationID: t.OrganizationID,
			TemplateID:     t.ID,
			Title:          t.Title,
			Description:    t.Description,
			Capacity:       t.Capacity,
			BookingOpensH:  t.BookingOpensH,
			BookingClosesM: t.BookingClosesM,
			TrainerID:      t.TrainerID,
			Location:       t.Location,
			StartsAt:       startsAt,
			EndsAt:         endsAt,
		}
		if err := s.instances.Create(ctx, &inst); err != nil {
			result.Errors = append(result.Errors, itemError(t, date, err))
			continue
		}

		entry := domain.GenerationLogEntry{
			OrganizationID: t.OrganizationID,
			TemplateID:     t.ID,
			GeneratedDate:  date.Format(dateLayout),
			InstanceID:     inst.ID,
		}
		if err := s.ledger.Record(ctx, &entry); err != nil {
			if errors.Is(err, repository.ErrDuplicateGeneration) {
				// A concurrent run won the slot. The ledger is the sole
				// idempotency authority, so the instance we just inserted
				// stays behind as an orphan and is not counted.
				log.Printf("schedule: slot already generated template_id=%d date=%s orphan_instance_id=%d",
					t.ID, entry.GeneratedDate, inst.ID)
				continue
			}
			result.Errors = append(result.Errors, itemError(t, date, err))
			continue
		}

		result.ClassesCreated++
	}
}

// ListClasses returns the organization's instances within [from, to). Empty
// bounds default to the next 7 days.
func (s *Service) ListClasses(ctx context.Context, orgID int64, fromStr, toStr string) ([]domain.ClassInstance, error) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if fromStr != "" {
		parsed, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			return nil, ErrInvalidDate
		}
		from = parsed
	}

	to := from.AddDate(0, 0, 7)
	if toStr != "" {
		parsed, err := time.Parse(dateLayout, toStr)
		if err != nil {
			return nil, ErrInvalidDate
		}
		to = parsed
	}

	return s.instances.ListByOrg(ctx, orgID, from, to)
}

func (s *Service) location(ctx context.Context, orgID int64) (*time.Location, error) {
	tz, err := s.orgs.GetTimezone(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc, nil
		}
		log.Printf("schedule: invalid organization timezone org_id=%d tz=%q, falling back to %s", orgID, tz, s.defaultTZ)
	}
	return time.LoadLocation(s.defaultTZ)
}

func itemError(t domain.ClassTemplate, date time.Time, err error) string {
	return fmt.Sprintf("template %d (%s) on %s: %v", t.ID, t.Title, date.Format(dateLayout), err)
}

func formatDates(dates []time.Time) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(dateLayout))
	}
	return out
}
