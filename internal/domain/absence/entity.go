package absence

import "time"

// Category is the absence type. The values are the strings persisted in the
// Tipo column of the data file, kept in Portuguese for compatibility with
// files written by earlier versions of the tool.
type Category string

const (
	// CategoryMedicalCertificate covers absences backed by a medical
	// certificate carrying a CID diagnosis code.
	CategoryMedicalCertificate Category = "Atestado"
	// CategoryTimeBankCompensation is time off compensating banked hours.
	CategoryTimeBankCompensation Category = "Banco de Horas"
	// CategoryUnexcusedAbsence is an unjustified absence.
	CategoryUnexcusedAbsence Category = "Falta"
	// CategoryScheduledLeave is planned leave with a free-text reason.
	CategoryScheduledLeave Category = "Folga"
)

// Fixed reasons recorded for the categories that do not accept user input.
const (
	ReasonTimeBankCompensation = "Compensação de Banco de Horas"
	ReasonUnexcusedAbsence     = "Falta"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryMedicalCertificate, CategoryTimeBankCompensation,
		CategoryUnexcusedAbsence, CategoryScheduledLeave:
		return true
	}
	return false
}

// Record is one absence event.
//
// ID is assigned when the record enters memory (creation or load) and is
// stable for the lifetime of the process; it is not persisted, so a restart
// mints fresh IDs. EndDate is always derived from StartDate and Days.
// StartDate may be the zero time for legacy rows whose date could not be
// parsed; such rows sort after all dated ones.
type Record struct {
	ID           string
	EmployeeName string
	StartDate    time.Time
	Days         int
	EndDate      time.Time
	CID          string
	Category     Category
	Reason       string
}

// ReturnDate is the first day the employee is expected back. It is a
// presentation value, never persisted.
func (r Record) ReturnDate() time.Time {
	if r.EndDate.IsZero() {
		return time.Time{}
	}
	return r.EndDate.AddDate(0, 0, 1)
}

// EmployeeGroup is the per-person view: that person's records in the listing
// order, plus the group count and the most recent end date.
type EmployeeGroup struct {
	EmployeeName string
	Records      []Record
	RecordCount  int
	LastEndDate  time.Time
}
