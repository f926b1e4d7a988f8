package absence

import (
	"github.com/hrtools-br/ausencias-backend-go/internal/pkg/dates"
	"github.com/hrtools-br/ausencias-backend-go/internal/pkg/validator"
)

type CreateRecordRequest struct {
	EmployeeName string `json:"employee_name"`
	StartDate    string `json:"start_date"`
	Days         int    `json:"days"`
	Category     string `json:"category"`
	CID          string `json:"cid,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if r.Days < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must be at least 1",
		})
	}

	category := Category(r.Category)
	if !category.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of Atestado, Banco de Horas, Falta, Folga",
		})
	}

	switch category {
	case CategoryMedicalCertificate:
		if validator.IsEmpty(r.CID) {
			errs = append(errs, validator.ValidationError{
				Field:   "cid",
				Message: "cid is required for Atestado records",
			})
		}
	case CategoryScheduledLeave:
		if validator.IsEmpty(r.Reason) {
			errs = append(errs, validator.ValidationError{
				Field:   "reason",
				Message: "reason is required for Folga records",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRecordRequest struct {
	EmployeeName string `json:"employee_name"`
	StartDate    string `json:"start_date"`
	Days         int    `json:"days"`
	CID          string `json:"cid,omitempty"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_name",
			Message: "employee_name is required",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if r.Days < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RecordResponse is the wire shape of one record, with the derived return
// date included.
type RecordResponse struct {
	ID           string `json:"id"`
	EmployeeName string `json:"employee_name"`
	StartDate    string `json:"start_date,omitempty"`
	Days         int    `json:"days"`
	EndDate      string `json:"end_date,omitempty"`
	ReturnDate   string `json:"return_date,omitempty"`
	CID          string `json:"cid,omitempty"`
	Category     string `json:"category"`
	Reason       string `json:"reason"`
}

func NewRecordResponse(r Record) RecordResponse {
	resp := RecordResponse{
		ID:           r.ID,
		EmployeeName: r.EmployeeName,
		Days:         r.Days,
		CID:          r.CID,
		Category:     string(r.Category),
		Reason:       r.Reason,
	}
	if !r.StartDate.IsZero() {
		resp.StartDate = r.StartDate.Format(dates.Layout)
	}
	if !r.EndDate.IsZero() {
		resp.EndDate = r.EndDate.Format(dates.Layout)
		resp.ReturnDate = r.ReturnDate().Format(dates.Layout)
	}
	return resp
}

func NewRecordResponses(records []Record) []RecordResponse {
	responses := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, NewRecordResponse(r))
	}
	return responses
}

// EmployeeGroupResponse is the wire shape of the per-person view.
type EmployeeGroupResponse struct {
	EmployeeName string           `json:"employee_name"`
	RecordCount  int              `json:"record_count"`
	LastEndDate  string           `json:"last_end_date,omitempty"`
	Records      []RecordResponse `json:"records"`
}

func NewEmployeeGroupResponse(g EmployeeGroup) EmployeeGroupResponse {
	resp := EmployeeGroupResponse{
		EmployeeName: g.EmployeeName,
		RecordCount:  g.RecordCount,
		Records:      NewRecordResponses(g.Records),
	}
	if !g.LastEndDate.IsZero() {
		resp.LastEndDate = g.LastEndDate.Format(dates.Layout)
	}
	return resp
}
