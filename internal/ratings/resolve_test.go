package ratings

import (
	"reflect"
	"strings"
	"testing"

	"github.com/teamsmith/teamsmith/internal/errors"
)

func testSource(t *testing.T) *Source {
	t.Helper()
	input := "name,rank,true_skill\nAlice,1,30\nBob,2,20\n"
	src, err := Parse(strings.NewReader(input), ',')
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return src
}

func TestResolveReportPolicy(t *testing.T) {
	src := testSource(t)

	res := Resolve([]string{"alice", "Mallory", "bob", "Trent"}, src, PolicyReport, 25)

	if len(res.Players) != 2 {
		t.Fatalf("len(Players) = %d, want 2", len(res.Players))
	}
	// Rated players keep the spelling from the ratings file.
	if res.Players[0].Name != "Alice" || res.Players[0].Skill != 30 {
		t.Errorf("player 0 = %+v, want Alice/30", res.Players[0])
	}

	wantUnrated := []string{"Mallory", "Trent"}
	if !reflect.DeepEqual(res.Unrated, wantUnrated) {
		t.Errorf("Unrated = %v, want %v", res.Unrated, wantUnrated)
	}
}

func TestResolveDefaultPolicy(t *testing.T) {
	src := testSource(t)

	res := Resolve([]string{"alice", "Mallory"}, src, PolicyDefault, 25)

	if len(res.Players) != 2 {
		t.Fatalf("len(Players) = %d, want 2", len(res.Players))
	}
	if res.Players[1].Name != "Mallory" || res.Players[1].Skill != 25 {
		t.Errorf("unrated player = %+v, want Mallory at default skill 25", res.Players[1])
	}
	if len(res.Unrated) != 0 {
		t.Errorf("Unrated = %v, want empty under default policy", res.Unrated)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    Policy
		wantErr bool
	}{
		{input: "report", want: PolicyReport},
		{input: "default", want: PolicyDefault},
		{input: "ignore", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePolicy(tt.input)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrUnknownPolicy) {
					t.Errorf("ParsePolicy(%q) error = %v, want ErrUnknownPolicy", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePolicy(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePolicy(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPolicyString(t *testing.T) {
	if PolicyReport.String() != "report" {
		t.Errorf("PolicyReport.String() = %q", PolicyReport.String())
	}
	if PolicyDefault.String() != "default" {
		t.Errorf("PolicyDefault.String() = %q", PolicyDefault.String())
	}
}
