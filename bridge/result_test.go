/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bridge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseResult(t *testing.T) {
	cases := []struct {
		in      string
		want    Result
		wantVal float64
		wantErr bool
	}{
		{in: "0", want: ResultZero, wantVal: 0},
		{in: "x", want: ResultHalf, wantVal: 0.5},
		{in: "0.5", want: ResultHalf, wantVal: 0.5},
		{in: "1", want: ResultOne, wantVal: 1},
		{in: "1x", want: ResultOneAndHalf, wantVal: 1.5},
		{in: "1.5", want: ResultOneAndHalf, wantVal: 1.5},
		{in: "2", want: ResultTwo, wantVal: 2},
		{in: "", wantErr: true},
		{in: "X", wantErr: true},
		{in: "2.5", wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseResult(c.in)
			if c.wantErr {
				if err == nil {
					t.Errorf("ParseResult(%q) = %q; want error", c.in, got)
				}
				return
			}
			if err != nil || got != c.want {
				t.Fatalf("ParseResult(%q) = %q, %v; want %q", c.in, got, err, c.want)
			}
			if v, ok := got.Value(); !ok || v != c.wantVal {
				t.Errorf("Value() = %v, %v; want %v", v, ok, c.wantVal)
			}
		})
	}
}

func TestResultFileForm(t *testing.T) {
	for _, r := range append(AllResults, ResultNone) {
		if back := resultFromFile(r.fileForm()); back != r {
			t.Errorf("%q -> %q -> %q", r, r.fileForm(), back)
		}
	}
	if ResultHalf.fileForm() != "0.5" || ResultOneAndHalf.fileForm() != "1.5" {
		t.Errorf("unexpected on-disk forms")
	}
}

func TestScoreMatrixCounts(t *testing.T) {
	var m ScoreMatrix
	m[0][0] = ResultOne
	for slot := 0; slot < NumTeams; slot++ {
		m[1][slot] = ResultOne
	}

	if !m.BoardScored(1) || m.BoardComplete(1) {
		t.Errorf("board 1 should be scored but incomplete")
	}
	if !m.BoardComplete(2) {
		t.Errorf("board 2 should be complete")
	}
	if m.BoardsScored() != 2 || m.Complete() {
		t.Errorf("BoardsScored = %d, Complete = %v", m.BoardsScored(), m.Complete())
	}
	if m.TeamTotal(1) != 2 || m.TeamTotal(2) != 1 {
		t.Errorf("unexpected totals %v %v", m.TeamTotal(1), m.TeamTotal(2))
	}
}

func TestParseResults(t *testing.T) {
	tests := []struct {
		in      string
		want    [NumTeams]Result
		wantErr bool
	}{
		{
			in: "2,1x,1x,x,x,0",
			want: [NumTeams]Result{ResultTwo,
				ResultOneAndHalf, ResultOneAndHalf,
				ResultHalf, ResultHalf, ResultZero},
		},
		{
			in: "1 1 1, 1 1 1",
			want: [NumTeams]Result{ResultOne,
				ResultOne, ResultOne, ResultOne,
				ResultOne, ResultOne},
		},
		{in: "1,1,1,1,1", wantErr: true},
		{in: "1,1,1,1,1,3", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseResults(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseResults(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseResults(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParseResults(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}
