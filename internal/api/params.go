package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// counterParams are the path parameters shared by the counter routes.
// Number is only checked on routes that carry one.
type counterParams struct {
	Name   string `validate:"required,max=255"`
	Number int64  `validate:"min=0,max=2147483647"`
}

var validate = validator.New()

// pathParam returns the decoded value of a path parameter. chi matches
// against the raw path when the request carries one, so only then does the
// value still need unescaping. Values must be valid UTF-8.
func pathParam(r *http.Request, key string) (string, error) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath != "" {
		decoded, err := url.PathUnescape(v)
		if err != nil {
			return "", fmt.Errorf("%s is not a valid path segment", key)
		}
		v = decoded
	}
	if !utf8.ValidString(v) {
		return "", fmt.Errorf("%s must be valid UTF-8", key)
	}
	return v, nil
}

// parseName extracts and validates the {name} path parameter.
func parseName(r *http.Request) (string, error) {
	name, err := pathParam(r, "name")
	if err != nil {
		return "", err
	}
	if err := validate.Var(name, "required,max=255"); err != nil {
		return "", describe(err, "name")
	}
	return name, nil
}

// parseCounterParams extracts and validates {name} and {number}.
func parseCounterParams(r *http.Request) (counterParams, error) {
	var p counterParams
	name, err := pathParam(r, "name")
	if err != nil {
		return p, err
	}
	p.Name = name

	raw := chi.URLParam(r, "number")
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return p, fmt.Errorf("number must be a non-negative integer, got %q", raw)
	}
	p.Number = n

	if err := validate.Struct(p); err != nil {
		return p, describe(err, "")
	}
	return p, nil
}

// describe turns validator errors into a single client-facing message.
func describe(err error, field string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	if field == "" {
		field = strings.ToLower(fe.Field())
	}
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "max":
		if field == "number" {
			return fmt.Errorf("number must be at most %s", fe.Param())
		}
		return fmt.Errorf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Errorf("%s must be a non-negative integer", field)
	default:
		return fmt.Errorf("%s is invalid", field)
	}
}
