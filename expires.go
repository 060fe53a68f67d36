/*
 * Copyright 2022 Michael Graff.
 *
 * Licensed under the Apache License, Version 2.0 (the "License")
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package jwthmac

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var periodPattern = regexp.MustCompile(`^\+? ?(\d+) ?([a-z]+)$`)

var unitSeconds = map[string]int64{
	"s": 1, "sec": 1, "secs": 1, "second": 1, "seconds": 1,
	"m": 60, "min": 60, "mins": 60, "minute": 60, "minutes": 60,
	"h": 3600, "hr": 3600, "hrs": 3600, "hour": 3600, "hours": 3600,
	"d": 86400, "day": 86400, "days": 86400,
	"w": 604800, "week": 604800, "weeks": 604800,
	// 365.25 days
	"y": 31557600, "yr": 31557600, "yrs": 31557600, "year": 31557600, "years": 31557600,
}

// ParsePeriod parses a relative period such as "30s", "15 minutes",
// "2h", "7d", "1 week" or "+1y".  The amount is a non-negative integer
// and the unit is case-insensitive.  A year is 365.25 days.
func ParsePeriod(expr string) (time.Duration, error) {
	secs, err := periodSeconds(expr)
	if err != nil {
		return 0, err
	}
	if secs > int64(math.MaxInt64/time.Second) {
		return 0, fmt.Errorf("period %q overflows: %w", expr, ErrInvalidExpiry)
	}
	return time.Duration(secs) * time.Second, nil
}

func periodSeconds(expr string) (int64, error) {
	m := periodPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(expr)))
	if m == nil {
		return 0, fmt.Errorf("period %q: %w", expr, ErrInvalidExpiry)
	}
	unit, ok := unitSeconds[m[2]]
	if !ok {
		return 0, fmt.Errorf("period %q has unknown unit %q: %w", expr, m[2], ErrInvalidExpiry)
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || n > math.MaxInt64/unit {
		return 0, fmt.Errorf("period %q overflows: %w", expr, ErrInvalidExpiry)
	}
	return n * unit, nil
}

// expirationFromExpr resolves an expiration expression against now.  A
// string of digits is taken literally as a unix timestamp; anything
// else must be a period accepted by ParsePeriod.
func expirationFromExpr(expr string, now time.Time) (int64, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed != "" && strings.Trim(trimmed, "0123456789") == "" {
		ts, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("timestamp %q: %w", expr, ErrInvalidExpiry)
		}
		return ts, nil
	}
	secs, err := periodSeconds(expr)
	if err != nil {
		return 0, err
	}
	base := now.Unix()
	if secs > math.MaxInt64-base {
		return 0, fmt.Errorf("period %q overflows: %w", expr, ErrInvalidExpiry)
	}
	return base + secs, nil
}
