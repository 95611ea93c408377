package validator

import (
	"strings"

	"enoki-admin/modules/teacher/dto"
)

type ValidationResult struct {
	Errors []string `json:"errors"`
}

func (r *ValidationResult) HasError() bool {
	return len(r.Errors) > 0
}

func (r *ValidationResult) add(msg string) {
	r.Errors = append(r.Errors, msg)
}

func ValidateTeacherRequest(req *dto.TeacherRequest) *ValidationResult {
	result := &ValidationResult{}

	if strings.TrimSpace(req.Name) == "" {
		result.add("name is required")
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		result.add("email is required")
	} else if !strings.Contains(email, "@") {
		result.add("email is invalid")
	}
	if len(req.Schedule) != 0 && len(req.Schedule) != 7 {
		result.add("schedule must cover all 7 days")
	}

	return result
}
