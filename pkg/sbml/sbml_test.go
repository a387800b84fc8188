package sbml

import (
	"fmt"
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestMain flushes unused snapshots after the suite runs, the standard
// go-snaps wiring (see the teacher's go.sum for the same dependency).
func TestMain(m *testing.M) {
	code := m.Run()
	snaps.Clean(m)
	os.Exit(code)
}

// programs mirrors spec.md §8's scenario table plus a couple of the
// language's trickier corners, snapshotting captured `print` output the
// way the teacher's fixture suite snapshots whole-program runs, scaled down
// to SBML's much smaller example corpus (SPEC_FULL.md §2).
var programs = []struct {
	name   string
	source string
}{
	{"arithmetic_precedence", `{ print(1 + 2 * 3); }`},
	{"list_index_assign", `{ a = [1,2,3]; a[1] = 20; print(a); }`},
	{"tuple_index", `{ print(#2 (10, 20, 30)); }`},
	{"cons", `{ print(1 :: [2,3]); }`},
	{"while_loop", `{ i = 0; while (i < 3) { print(i); i = i + 1; } }`},
	{"nested_collections", `{ print([(1, "a"), (2, "b")]); }`},
	{"string_concat_and_membership", `{ print("foo" + "bar"); print("oo" in "foobar"); }`},
	{"if_else_both_branches", `{
		if (1 < 2) { print("yes"); } else { print("no"); }
		if (2 < 1) { print("yes"); } else { print("no"); }
	}`},
}

func TestProgramSnapshots(t *testing.T) {
	for _, tt := range programs {
		t.Run(tt.name, func(t *testing.T) {
			output, err := Run(tt.source)
			if err != nil {
				t.Fatalf("Run(%q) returned unexpected error: %v", tt.name, err)
			}
			snaps.MatchSnapshot(t, output)
		})
	}
}

func TestErrorProgramSnapshots(t *testing.T) {
	errorPrograms := []struct {
		name   string
		source string
	}{
		{"semantic_type_mismatch", `{ print(1 + "a"); }`},
		{"semantic_division_by_zero", `{ print(3 / 0); }`},
		{"semantic_unbound_identifier", `{ print(x); }`},
		{"syntax_dangling_operator", `{ print(1 + ); }`},
	}

	for _, tt := range errorPrograms {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(tt.source)
			if err == nil {
				t.Fatalf("Run(%q) expected an error, got none", tt.name)
			}
			snaps.MatchSnapshot(t, fmt.Sprintf("%s: %s", tt.name, err.Error()))
		})
	}
}
