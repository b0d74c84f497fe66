package usecase

import (
	"errors"
	"testing"
	"time"

	"site-portal/internal/model"
	"site-portal/internal/utils"
)

type stubEmployeeRepo struct {
	employees map[string]*model.Employee
}

func (s *stubEmployeeRepo) GetAll(search string) ([]model.Employee, error) { return nil, nil }
func (s *stubEmployeeRepo) GetByID(id string) (*model.Employee, error) {
	emp, ok := s.employees[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return emp, nil
}
func (s *stubEmployeeRepo) Create(employee *model.Employee) error { return nil }
func (s *stubEmployeeRepo) Update(employee *model.Employee) error { return nil }
func (s *stubEmployeeRepo) Delete(id string) error                { return nil }

type stubAttendanceRepo struct {
	existing map[string]bool
	created  []model.AttendanceRecord
	ranged   []model.AttendanceRecord
}

func (s *stubAttendanceRepo) Create(record *model.AttendanceRecord) error {
	s.created = append(s.created, *record)
	return nil
}
func (s *stubAttendanceRepo) Exists(employeeID string, date string) (bool, error) {
	return s.existing[employeeID+"|"+date], nil
}
func (s *stubAttendanceRepo) GetByEmployee(employeeID string, startDate string, endDate string) ([]model.AttendanceRecord, error) {
	return s.ranged, nil
}
func (s *stubAttendanceRepo) GetByDateRange(startDate string, endDate string) ([]model.AttendanceRecord, error) {
	return s.ranged, nil
}
func (s *stubAttendanceRepo) Delete(id string) error { return nil }

func newTestUsecase(employees map[string]*model.Employee, records *stubAttendanceRepo) *AttendanceUsecase {
	return NewAttendanceUsecase(&stubEmployeeRepo{employees: employees}, records)
}

func TestSubmitMissingSelection(t *testing.T) {
	records := &stubAttendanceRepo{}
	u := newTestUsecase(nil, records)

	_, err := u.Submit(SubmitAttendanceInput{EmployeeID: "", Date: "2025-01-10"})
	if !errors.Is(err, ErrMissingSelection) {
		t.Fatalf("expected ErrMissingSelection, got %v", err)
	}
	if len(records.created) != 0 {
		t.Fatalf("no record should be created, got %d", len(records.created))
	}
}

func TestSubmitUnknownEmployee(t *testing.T) {
	u := newTestUsecase(map[string]*model.Employee{}, &stubAttendanceRepo{})

	_, err := u.Submit(SubmitAttendanceInput{EmployeeID: "ghost", Date: "2025-01-10", WorkType: model.WorkTypeMasuk})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestSubmitRejectsDuplicateBeforeCreate(t *testing.T) {
	employees := map[string]*model.Employee{"e1": {ID: "e1", Name: "Asep"}}
	records := &stubAttendanceRepo{existing: map[string]bool{"e1|2025-01-10": true}}
	u := newTestUsecase(employees, records)

	_, err := u.Submit(SubmitAttendanceInput{
		EmployeeID: "e1",
		Date:       "2025-01-10",
		WorkType:   model.WorkTypeDayOff,
	})
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}
	if len(records.created) != 0 {
		t.Fatalf("duplicate must not reach Create, got %d records", len(records.created))
	}
}

func TestSubmitMasukRequiresLocationAndActivity(t *testing.T) {
	employees := map[string]*model.Employee{"e1": {ID: "e1", Name: "Asep"}}
	u := newTestUsecase(employees, &stubAttendanceRepo{})

	_, err := u.Submit(SubmitAttendanceInput{
		EmployeeID:     "e1",
		Date:           "2025-01-10",
		WorkType:       model.WorkTypeMasuk,
		Location:       "   ",
		ActivityDetail: "Penanaman bibit",
	})
	if !errors.Is(err, ErrMissingWorkDetail) {
		t.Fatalf("expected ErrMissingWorkDetail, got %v", err)
	}
}

func TestSubmitMasukRequiresPhotoForFlaggedPosition(t *testing.T) {
	employees := map[string]*model.Employee{
		"e1": {ID: "e1", Name: "Asep", RequirePhotoDocumentation: true},
	}
	u := newTestUsecase(employees, &stubAttendanceRepo{})

	_, err := u.Submit(SubmitAttendanceInput{
		EmployeeID:     "e1",
		Date:           "2025-01-10",
		WorkType:       model.WorkTypeMasuk,
		Location:       "Blok A",
		ActivityDetail: "Penanaman bibit",
	})
	if !errors.Is(err, ErrPhotoRequired) {
		t.Fatalf("expected ErrPhotoRequired, got %v", err)
	}
}

func TestSubmitRejectsBadPhoto(t *testing.T) {
	employees := map[string]*model.Employee{"e1": {ID: "e1", Name: "Asep"}}
	u := newTestUsecase(employees, &stubAttendanceRepo{})

	_, err := u.Submit(SubmitAttendanceInput{
		EmployeeID:     "e1",
		Date:           "2025-01-10",
		WorkType:       model.WorkTypeMasuk,
		Location:       "Blok A",
		ActivityDetail: "Penanaman bibit",
		PhotoURL:       "data:image/gif;base64,R0lGODdh",
	})
	if !errors.Is(err, utils.ErrImageFormat) {
		t.Fatalf("expected ErrImageFormat, got %v", err)
	}
}

func TestSubmitDayOffClearsWorkFields(t *testing.T) {
	employees := map[string]*model.Employee{"e1": {ID: "e1", Name: "Asep"}}
	records := &stubAttendanceRepo{}
	u := newTestUsecase(employees, records)

	rec, err := u.Submit(SubmitAttendanceInput{
		EmployeeID:     "e1",
		Date:           "2025-01-10",
		WorkType:       model.WorkTypeDayOff,
		Location:       "Blok A",
		ActivityDetail: "sisa isian form",
		Notes:          "catatan",
		PhotoURL:       "data:image/jpeg;base64,xxxx",
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if rec.Location != "" || rec.ActivityDetail != "" || rec.Notes != "" || rec.PhotoURL != "" {
		t.Fatalf("day off record must be stored without work details: %+v", rec)
	}
	if len(records.created) != 1 {
		t.Fatalf("expected 1 created record, got %d", len(records.created))
	}
}

func TestSummarizeCountsAndOrder(t *testing.T) {
	budi := &model.Employee{ID: "e1", Name: "Budi"}
	sari := &model.Employee{ID: "e2", Name: "Sari"}
	records := []model.AttendanceRecord{
		{EmployeeID: "e1", Employee: budi, WorkType: model.WorkTypeMasuk},
		{EmployeeID: "e2", Employee: sari, WorkType: model.WorkTypeDayOff},
		{EmployeeID: "e1", Employee: budi, WorkType: model.WorkTypeMasuk},
		{EmployeeID: "e1", Employee: budi, WorkType: model.WorkTypeDayOff},
	}

	entries := Summarize(records)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Employee.ID != "e1" || entries[1].Employee.ID != "e2" {
		t.Fatalf("entries must follow first appearance order")
	}
	if entries[0].Present != 2 || entries[0].DayOff != 1 {
		t.Fatalf("unexpected counts for e1: %+v", entries[0])
	}

	total := 0
	for _, e := range entries {
		total += e.Present + e.DayOff
	}
	if total != len(records) {
		t.Fatalf("sum of counts %d must equal record count %d", total, len(records))
	}
}

func TestSummarizeKeepsOrphans(t *testing.T) {
	records := []model.AttendanceRecord{
		{EmployeeID: "gone", Employee: nil, WorkType: model.WorkTypeMasuk},
		{EmployeeID: "gone", Employee: nil, WorkType: model.WorkTypeMasuk},
	}

	entries := Summarize(records)
	if len(entries) != 1 {
		t.Fatalf("expected orphan entry to be kept, got %d entries", len(entries))
	}
	if entries[0].Employee != nil {
		t.Fatalf("orphan entry must have nil employee")
	}
	if entries[0].Present != 2 {
		t.Fatalf("expected 2 present, got %d", entries[0].Present)
	}
}

func TestSummaryReportsOrphanCount(t *testing.T) {
	records := &stubAttendanceRepo{ranged: []model.AttendanceRecord{
		{EmployeeID: "e1", Employee: &model.Employee{ID: "e1"}, WorkType: model.WorkTypeMasuk},
		{EmployeeID: "gone", Employee: nil, WorkType: model.WorkTypeDayOff},
	}}
	u := newTestUsecase(nil, records)

	entries, orphans, err := u.Summary("2025-01-01", "2025-01-31")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if orphans != 1 {
		t.Fatalf("expected 1 orphan, got %d", orphans)
	}
}

func TestCurrentPayPeriod(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	start, end := CurrentPayPeriod(now)
	if start != "2025-02-25" || end != "2025-03-24" {
		t.Fatalf("unexpected period: %s - %s", start, end)
	}
}

func TestCurrentPayPeriodJanuary(t *testing.T) {
	now := time.Date(2025, 1, 5, 8, 0, 0, 0, time.UTC)
	start, end := CurrentPayPeriod(now)
	if start != "2024-12-25" || end != "2025-01-24" {
		t.Fatalf("unexpected period across year boundary: %s - %s", start, end)
	}
}
