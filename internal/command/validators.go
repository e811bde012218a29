// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tfctl/confkit/internal/output"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	if s, ok := value.(string); ok && slices.Contains(output.Formats, s) {
		return nil
	}
	return fmt.Errorf("must be one of %v", output.Formats)
}

// SortValidator accepts a comma-separated list of table columns, each
// optionally prefixed with - (descending) and ! (case sensitive).
func SortValidator(value any) error {
	s, _ := value.(string)
	for col := range strings.SplitSeq(s, ",") {
		col = strings.TrimLeft(strings.TrimSpace(col), "-!")
		if col == "" {
			continue
		}
		if col != "path" && !slices.Contains(output.Columns, col) {
			return fmt.Errorf("cannot sort by %q, columns are %v", col, output.Columns)
		}
	}
	return nil
}
