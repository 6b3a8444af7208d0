// Package validation checks portfolio records against their schema and
// reports cross-collection inconsistencies. Nothing here returns a Go error:
// callers decide whether a failed check blocks or only warns.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MaybeJaydeep/gaming-portfolio-sub000/internal/domain/content"

	"github.com/go-playground/validator/v10"
)

type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return &Validator{v: v}
}

func (v *Validator) Skill(s content.Skill) Result {
	return v.check(s)
}

// Project validates the record; categories, when non-empty, is the set of
// declared category ids the project must belong to.
func (v *Validator) Project(p content.Project, categories map[string]struct{}) Result {
	res := v.check(p)
	if len(categories) > 0 && p.Category != "" {
		if _, ok := categories[p.Category]; !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("category %q is not a declared category", p.Category))
			res.IsValid = false
		}
	}
	return res
}

func (v *Validator) Category(c content.Category) Result {
	return v.check(c)
}

func (v *Validator) Tournament(t content.Tournament) Result {
	return v.check(t)
}

func (v *Validator) Achievement(a content.Achievement) Result {
	res := v.check(a)
	if a.Progress != nil && a.MaxProgress != nil && *a.Progress > *a.MaxProgress {
		res.Errors = append(res.Errors, "progress must not exceed maxProgress")
		res.IsValid = false
	}
	return res
}

func (v *Validator) Profile(p content.UserProfile) Result {
	return v.check(p)
}

func (v *Validator) check(s any) Result {
	res := Result{IsValid: true, Errors: []string{}}
	err := v.v.Struct(s)
	if err == nil {
		return res
	}

	res.IsValid = false
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		res.Errors = append(res.Errors, err.Error())
		return res
	}
	for _, fe := range verrs {
		res.Errors = append(res.Errors, message(fe))
	}
	return res
}

func message(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "url":
		return field + " must be a valid URL"
	case "datetime":
		return field + " must be a date formatted YYYY-MM-DD"
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
