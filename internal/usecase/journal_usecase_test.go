package usecase

import (
	"bytes"
	"fmt"
	"testing"

	"site-portal/internal/model"
)

func makeRecords(n int) []model.AttendanceRecord {
	records := make([]model.AttendanceRecord, n)
	for i := range records {
		records[i] = model.AttendanceRecord{
			EmployeeID:     "e1",
			Date:           fmt.Sprintf("2025-01-%02d", i+1),
			WorkType:       model.WorkTypeMasuk,
			Location:       "Blok A",
			ActivityDetail: "Penanaman bibit",
		}
	}
	return records
}

func TestPaginateRecords(t *testing.T) {
	pages := PaginateRecords(makeRecords(10), JournalRecordsPerPage)
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if len(pages[0]) != 7 || len(pages[1]) != 3 {
		t.Fatalf("expected pages of 7 and 3, got %d and %d", len(pages[0]), len(pages[1]))
	}
}

func TestPaginateRecordsExactMultiple(t *testing.T) {
	pages := PaginateRecords(makeRecords(14), JournalRecordsPerPage)
	if len(pages) != 2 {
		t.Fatalf("expected 2 full pages, got %d", len(pages))
	}
}

func TestPaginateRecordsEmpty(t *testing.T) {
	if pages := PaginateRecords(nil, JournalRecordsPerPage); len(pages) != 0 {
		t.Fatalf("expected no pages for empty input, got %d", len(pages))
	}
}

func TestJournalFileName(t *testing.T) {
	got := JournalFileName("Asep Saepudin", "2024-12-25", "2025-01-24")
	want := "Jurnal_Asep Saepudin_2024-12-25_2025-01-24.pdf"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestBuildJournalPDFPageCount(t *testing.T) {
	employee := model.Employee{Name: "Asep Saepudin", Position: "Field Supervisor", Unit: "Citanduy"}

	pdf := BuildJournalPDF(employee, makeRecords(10), "2025-01-01", "2025-01-10")
	if pdf.PageCount() != 2 {
		t.Fatalf("expected 2 pages for 10 records, got %d", pdf.PageCount())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("pdf output: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected non-empty pdf output")
	}
}

func TestBuildJournalPDFSkipsBrokenPhoto(t *testing.T) {
	employee := model.Employee{Name: "Asep Saepudin", Position: "Field Supervisor", Unit: "Citanduy"}
	records := makeRecords(2)
	records[0].PhotoURL = "data:image/jpeg;base64,bukan-gambar!!"

	pdf := BuildJournalPDF(employee, records, "2025-01-01", "2025-01-02")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("broken photo must not fail the document: %v", err)
	}
}
