/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"testing"
	"time"
)

func TestParseDateOrZero(t *testing.T) {
	cases := []struct {
		in       string
		want     time.Time
		wantZero bool
	}{
		{in: "", wantZero: true},
		{in: "null", wantZero: true},
		{in: "10/19/2026", want: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)},
		{in: "03/04/2026", want: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseDateOrZero(c.in)
			if err != nil {
				t.Fatalf("ParseDateOrZero(%q) error: %v", c.in, err)
			}
			if c.wantZero {
				if !got.IsZero() {
					t.Errorf("ParseDateOrZero(%q) = %v; want zero", c.in, got)
				}
				return
			}
			if got.Year() != c.want.Year() || got.Month() != c.want.Month() ||
				got.Day() != c.want.Day() {
				t.Errorf("ParseDateOrZero(%q) = %v; want %v", c.in, got, c.want)
			}
		})
	}
}
