// Package absence implements the record lifecycle: category-specific reason
// derivation, derived end/return dates, and the mutate-then-persist cycle
// over the CSV-backed repository.
package absence

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hrtools-br/ausencias-backend-go/internal/domain/absence"
	"github.com/hrtools-br/ausencias-backend-go/internal/pkg/dates"
)

// RecordService holds the authoritative in-memory sequence. Every mutation
// rewrites the durable store synchronously before returning. Callers address
// records by the IDs minted at load/create time; IDs are not persisted and do
// not survive a restart.
type RecordService struct {
	mu      sync.Mutex
	repo    absence.Repository
	lookup  absence.DescriptionLookup
	records []absence.Record
}

// NewRecordService loads the durable store into memory. Load never fails on
// a bad file (the repository degrades to an empty sequence), so an error here
// is strictly unexpected I/O trouble.
func NewRecordService(ctx context.Context, repo absence.Repository, lookup absence.DescriptionLookup) (*RecordService, error) {
	records, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load absence records: %w", err)
	}
	return &RecordService{
		repo:    repo,
		lookup:  lookup,
		records: records,
	}, nil
}

func (s *RecordService) Add(ctx context.Context, req absence.CreateRecordRequest) (absence.Record, time.Time, error) {
	if err := req.Validate(); err != nil {
		return absence.Record{}, time.Time{}, err
	}

	start, _ := dates.Parse(req.StartDate)
	end, ret, err := dates.Calculate(start, req.Days)
	if err != nil {
		return absence.Record{}, time.Time{}, err
	}

	record := absence.Record{
		ID:           uuid.NewString(),
		EmployeeName: strings.TrimSpace(req.EmployeeName),
		StartDate:    start,
		Days:         req.Days,
		EndDate:      end,
		Category:     absence.Category(req.Category),
	}

	switch record.Category {
	case absence.CategoryMedicalCertificate:
		record.CID = strings.ToUpper(strings.TrimSpace(req.CID))
		description := s.lookup.Lookup(ctx, record.CID)
		record.Reason = fmt.Sprintf("%s - %s", record.CID, description)
	case absence.CategoryScheduledLeave:
		record.Reason = req.Reason
	case absence.CategoryTimeBankCompensation:
		record.Reason = absence.ReasonTimeBankCompensation
	case absence.CategoryUnexcusedAbsence:
		record.Reason = absence.ReasonUnexcusedAbsence
	default:
		return absence.Record{}, time.Time{}, absence.ErrInvalidCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
	if err := s.repo.Save(ctx, s.records); err != nil {
		// Roll the append back so memory and disk stay in step.
		s.records = s.records[:len(s.records)-1]
		return absence.Record{}, time.Time{}, fmt.Errorf("failed to persist absence records: %w", err)
	}

	return record, ret, nil
}

func (s *RecordService) Update(ctx context.Context, id string, req absence.UpdateRecordRequest) (absence.Record, time.Time, error) {
	if err := req.Validate(); err != nil {
		return absence.Record{}, time.Time{}, err
	}

	start, _ := dates.Parse(req.StartDate)
	end, ret, err := dates.Calculate(start, req.Days)
	if err != nil {
		return absence.Record{}, time.Time{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return absence.Record{}, time.Time{}, absence.ErrRecordNotFound
	}

	original := s.records[i]
	updated := original
	updated.EmployeeName = strings.TrimSpace(req.EmployeeName)
	updated.StartDate = start
	updated.Days = req.Days
	updated.EndDate = end

	// The category never changes on update. Only an Atestado with a changed
	// CID re-consults the lookup; everything else keeps the stored reason.
	if original.Category == absence.CategoryMedicalCertificate {
		cid := strings.ToUpper(strings.TrimSpace(req.CID))
		if cid != original.CID {
			description := s.lookup.Lookup(ctx, cid)
			updated.Reason = fmt.Sprintf("%s - %s", cid, description)
		}
		updated.CID = cid
	} else {
		updated.CID = ""
	}

	s.records[i] = updated
	if err := s.repo.Save(ctx, s.records); err != nil {
		s.records[i] = original
		return absence.Record{}, time.Time{}, fmt.Errorf("failed to persist absence records: %w", err)
	}

	return updated, ret, nil
}

func (s *RecordService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return absence.ErrRecordNotFound
	}

	removed := s.records[i]
	s.records = append(s.records[:i], s.records[i+1:]...)
	if err := s.repo.Save(ctx, s.records); err != nil {
		s.records = append(s.records[:i], append([]absence.Record{removed}, s.records[i:]...)...)
		return fmt.Errorf("failed to persist absence records: %w", err)
	}
	return nil
}

// List returns a copy ordered by start date descending. Records whose start
// date could not be parsed from a legacy file sort after all dated records.
func (s *RecordService) List(ctx context.Context) []absence.Record {
	s.mu.Lock()
	snapshot := make([]absence.Record, len(s.records))
	copy(snapshot, s.records)
	s.mu.Unlock()

	sort.SliceStable(snapshot, func(i, j int) bool {
		a, b := snapshot[i].StartDate, snapshot[j].StartDate
		switch {
		case a.IsZero():
			return false
		case b.IsZero():
			return true
		default:
			return a.After(b)
		}
	})
	return snapshot
}

// ListByEmployee groups the List ordering per employee, with groups sorted by
// name. Each group carries its record count and the latest end date.
func (s *RecordService) ListByEmployee(ctx context.Context) []absence.EmployeeGroup {
	listed := s.List(ctx)

	byName := make(map[string]*absence.EmployeeGroup)
	var names []string
	for _, record := range listed {
		group, ok := byName[record.EmployeeName]
		if !ok {
			group = &absence.EmployeeGroup{EmployeeName: record.EmployeeName}
			byName[record.EmployeeName] = group
			names = append(names, record.EmployeeName)
		}
		group.Records = append(group.Records, record)
		group.RecordCount++
		if record.EndDate.After(group.LastEndDate) {
			group.LastEndDate = record.EndDate
		}
	}

	sort.Strings(names)
	groups := make([]absence.EmployeeGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, *byName[name])
	}
	return groups
}

// indexOf must be called with the mutex held.
func (s *RecordService) indexOf(id string) int {
	for i, record := range s.records {
		if record.ID == id {
			return i
		}
	}
	return -1
}
