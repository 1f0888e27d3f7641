/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package signage

import (
	"errors"
	"fmt"
)

// ErrNoKickoff is returned when a tournament has no scheduled match and
// therefore no date to print.
var ErrNoKickoff = errors.New("tournament has no match with a kickoff")

// ConfigError reports an invalid or missing option. A run that hits one
// aborts before anything is fetched.
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid configuration: %v %v: %v", e.Field, e.Reason,
			e.Err)
	}
	return fmt.Sprintf("invalid configuration: %v %v", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is or wraps a *ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
