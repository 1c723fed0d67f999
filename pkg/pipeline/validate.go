// Copyright 2025 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kraklabs/jobpipe/pkg/model"
)

// jobValidator runs the Job record invariants (id prefix, two-letter
// country code, RFC-3339 posted) once per job before it enters the write
// buffer. Built once, safe for concurrent use across workers, same as
// every other shared read-only engine.
var jobValidator = newJobValidator()

func newJobValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("rfc3339_or_empty", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, err := time.Parse(time.RFC3339, s)
		return err == nil
	})
	return v
}

// validateJob checks the struct-tag invariants on model.Job: required id
// and title, two-letter country code, and the empty-or-RFC-3339 posted
// timestamp; then that the id carries its "<ats>-" prefix. By the time a
// job reaches the buffer, annotate has already blanked any posted value the
// normalizer couldn't parse, so a failure here means a bug upstream, not a
// bad vendor date.
func validateJob(j model.Job) error {
	if err := jobValidator.Struct(j); err != nil {
		return err
	}
	if prefix := string(j.Ats) + "-"; !strings.HasPrefix(j.ID, prefix) {
		return fmt.Errorf("job id %q does not start with %q", j.ID, prefix)
	}
	return nil
}
