/*
roster.go - YAML birth rosters

PURPOSE:
  Loads lists of named birth records (celebrity sets, team rosters) from
  YAML and computes each entry's constitution with a configured engine.

FORMAT:
  profiles:
    - id: bts-rm            # optional, a UUID is assigned when missing
      name: RM
      category: kpop        # optional
      birth_date: 1994-09-12
      birth_hour: 7         # optional, 0-23

DUPLICATES:
  Later entries reusing an earlier id are dropped and counted in
  Roster.Duplicates. The first occurrence wins.

SEE ALSO:
  - store/sqlite: where computed rosters are persisted
  - cmd/saju: `saju roster <file>`
*/
package roster

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/warp/saju-engine/saju"
)

var validate = validator.New()

// ErrEmptyRoster is returned when a document has no profiles.
var ErrEmptyRoster = errors.New("roster has no profiles")

// Entry is one birth record.
type Entry struct {
	ID        string `yaml:"id" json:"id" validate:"omitempty,max=128"`
	Name      string `yaml:"name" json:"name" validate:"required,max=200"`
	Category  string `yaml:"category,omitempty" json:"category,omitempty" validate:"omitempty,max=64"`
	BirthDate string `yaml:"birth_date" json:"birth_date" validate:"required"`
	BirthHour *int   `yaml:"birth_hour,omitempty" json:"birth_hour,omitempty" validate:"omitempty,min=0,max=23"`
}

// Roster is a parsed document.
type Roster struct {
	Profiles   []Entry `yaml:"profiles"`
	Duplicates int     `yaml:"-"`
}

// Computed is an entry with its engine result.
type Computed struct {
	Entry
	Constitution saju.ConstitutionType `json:"constitution"`
	Code         saju.ConstitutionCode `json:"code"`
}

// EntryError locates a validation failure inside a roster.
type EntryError struct {
	Index int
	Name  string
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("profile #%d (%s): %v", e.Index+1, e.Name, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// =============================================================================
// PARSING
// =============================================================================

// Load reads and parses a roster file.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a roster document. Entries without an id get
// a random UUID.
func Parse(data []byte) (*Roster, error) {
	var doc Roster
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid roster yaml: %w", err)
	}
	if len(doc.Profiles) == 0 {
		return nil, ErrEmptyRoster
	}

	seen := make(map[string]bool, len(doc.Profiles))
	out := &Roster{Profiles: make([]Entry, 0, len(doc.Profiles))}

	for i, e := range doc.Profiles {
		if err := validateEntry(e); err != nil {
			return nil, &EntryError{Index: i, Name: e.Name, Err: err}
		}
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if seen[e.ID] {
			out.Duplicates++
			continue
		}
		seen[e.ID] = true
		out.Profiles = append(out.Profiles, e)
	}

	return out, nil
}

// validateEntry runs the struct tags, then the engine's own date and hour
// checks so that a parsed roster always computes.
func validateEntry(e Entry) error {
	if err := validate.Struct(e); err != nil {
		return err
	}
	if _, err := saju.ParseDate(e.BirthDate); err != nil {
		return err
	}
	return saju.ValidateHour(e.BirthHour)
}

// =============================================================================
// COMPUTATION
// =============================================================================

// Compute derives the constitution of every entry, in roster order.
func Compute(r *Roster, engine *saju.Engine) ([]Computed, error) {
	out := make([]Computed, 0, len(r.Profiles))
	for i, e := range r.Profiles {
		c, err := engine.Constitution(e.BirthDate, e.BirthHour)
		if err != nil {
			return nil, &EntryError{Index: i, Name: e.Name, Err: err}
		}
		out = append(out, Computed{Entry: e, Constitution: c, Code: c.Code()})
	}
	return out, nil
}
