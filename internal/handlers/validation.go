package handlers

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxFieldLength    = 150
	minPasswordLength = 8
	dateLayout        = "2006-01-02"
)

var allowedSexes = map[string]struct{}{
	"male":   {},
	"female": {},
	"other":  {},
}

// Validators return a map keyed by field name so callers can re-display
// every failing field at once, not just the first one.

func validateRegisterRequest(req registerRequest) map[string]string {
	errs := map[string]string{}

	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		errs["email"] = "email must be a valid address"
	}
	if req.UserName != nil && utf8.RuneCountInString(*req.UserName) > maxFieldLength {
		errs["user_name"] = "user_name must be at most 150 characters"
	}
	if len(req.Password1) < minPasswordLength {
		errs["password"] = "password must be at least 8 characters"
	} else if req.Password1 != req.Password2 {
		errs["password"] = "passwords do not match"
	}

	return errs
}

func validateLoginRequest(req loginRequest) map[string]string {
	errs := map[string]string{}

	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		errs["email"] = "email must be a valid address"
	}
	if req.Password == "" {
		errs["password"] = "password is required"
	}

	return errs
}

func validateEditProfileRequest(req updateAccountRequest) map[string]string {
	errs := map[string]string{}

	if req.Email == nil || strings.TrimSpace(*req.Email) == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(strings.TrimSpace(*req.Email)); err != nil {
		errs["email"] = "email must be a valid address"
	}
	if req.UserName != nil && utf8.RuneCountInString(*req.UserName) > maxFieldLength {
		errs["user_name"] = "user_name must be at most 150 characters"
	}
	if req.FirstName != nil && utf8.RuneCountInString(*req.FirstName) > maxFieldLength {
		errs["first_name"] = "first_name must be at most 150 characters"
	}
	if req.Name != nil && utf8.RuneCountInString(*req.Name) > maxFieldLength {
		errs["name"] = "name must be at most 150 characters"
	}
	if req.Birth != nil {
		if _, err := time.Parse(dateLayout, *req.Birth); err != nil {
			errs["birth"] = "birth must be a date formatted as YYYY-MM-DD"
		}
	}
	if req.Height != nil && *req.Height < 0 {
		errs["height"] = "height must be 0 or greater"
	}
	if req.Weight != nil && *req.Weight < 0 {
		errs["weight"] = "weight must be 0 or greater"
	}
	if req.Sexe != nil {
		if _, ok := allowedSexes[strings.TrimSpace(*req.Sexe)]; !ok {
			errs["sexe"] = "sexe must be one of: male, female, other"
		}
	}

	return errs
}

func validateAddSessionRequest(req addSessionRequest) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "name is required"
	} else if utf8.RuneCountInString(req.Name) > maxFieldLength {
		errs["name"] = "name must be at most 150 characters"
	}
	if strings.TrimSpace(req.Date) == "" {
		errs["date"] = "date is required"
	} else if _, err := time.Parse(dateLayout, req.Date); err != nil {
		errs["date"] = "date must be formatted as YYYY-MM-DD"
	}

	return errs
}

func validateAddActivityRequest(req addActivityRequest) map[string]string {
	errs := map[string]string{}

	if req.ExerciseID <= 0 {
		errs["exercise_id"] = "exercise_id is required"
	}
	if req.Sets < 0 {
		errs["sets"] = "sets must be 0 or greater"
	}
	if req.Repetition < 0 {
		errs["repetition"] = "repetition must be 0 or greater"
	}
	if req.Rest < 0 {
		errs["rest"] = "rest must be 0 or greater"
	}
	if req.Weight < 0 {
		errs["weight"] = "weight must be 0 or greater"
	}

	return errs
}

func validateContactRequest(req contactRequest) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(req.Subject) == "" {
		errs["subject"] = "subject is required"
	} else if utf8.RuneCountInString(req.Subject) > maxFieldLength {
		errs["subject"] = "subject must be at most 150 characters"
	}
	if strings.TrimSpace(req.Content) == "" {
		errs["content"] = "content is required"
	}

	return errs
}
