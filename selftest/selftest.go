// Package selftest runs the built-in batch check of the card engine against a
// fixed list of sample numbers.
package selftest

import (
	_ "embed"
	"fmt"
	"io"

	"git.thinkinpower.net/cardcheck/card"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

type Case struct {
	Description string `yaml:"description"`
	Number      string `yaml:"number"`
	Checksum    bool   `yaml:"checksum"`
	Brand       string `yaml:"brand"`
	Status      string `yaml:"status"`
}

type Outcome struct {
	Case
	Result card.Result
	Passed bool
}

type Report struct {
	Outcomes []Outcome
	Failed   int
}

func (r Report) OK() bool {
	return r.Failed == 0
}

// Fixtures returns the embedded sample numbers.
func Fixtures() ([]Case, error) {
	return ParseFixtures(fixturesYAML)
}

func ParseFixtures(data []byte) ([]Case, error) {
	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, errors.Wrap(err, "parse self-test fixtures")
	}
	for i, c := range cases {
		if c.Description == "" {
			return nil, errors.Errorf("fixture %d has no description", i+1)
		}
	}
	return cases, nil
}

// Check runs one case through the engine. The status is compared only when
// the fixture names one.
func Check(c Case) Outcome {
	r := card.ValidateAndIdentify(c.Number)
	passed := r.ChecksumValid == c.Checksum && r.Brand == c.Brand
	if c.Status != "" && r.Status.String() != c.Status {
		passed = false
	}
	return Outcome{Case: c, Result: r, Passed: passed}
}

// Run checks every case and prints the outcome of each, then a summary.
func Run(w io.Writer, cases []Case) Report {
	report := Report{Outcomes: make([]Outcome, 0, len(cases))}
	fmt.Fprintln(w, "--- Running self-test ---")
	for _, c := range cases {
		o := Check(c)
		report.Outcomes = append(report.Outcomes, o)
		fmt.Fprintf(w, "\nTesting: %s - Card: %s\n%s\n", c.Description, c.Number, o.Result.Message)
		if o.Passed {
			fmt.Fprintln(w, "PASS")
			continue
		}
		report.Failed++
		fmt.Fprintf(w, "FAIL: expected checksum=%t brand=%q status=%s, got checksum=%t brand=%q status=%s\n",
			c.Checksum, c.Brand, c.Status, o.Result.ChecksumValid, o.Result.Brand, o.Result.Status)
	}
	fmt.Fprintln(w, "\n--- End of self-test ---")
	if report.OK() {
		fmt.Fprintf(w, "All %d cases passed.\n", len(cases))
	} else {
		fmt.Fprintf(w, "%d of %d cases failed.\n", report.Failed, len(cases))
	}
	return report
}
