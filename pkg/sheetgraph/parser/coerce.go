package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // zone names must resolve without a system zoneinfo

	"github.com/araddon/dateparse"
	"github.com/tj/go-naturaldate"
	"github.com/ukaji3/sheetgraph-go/pkg/sheetgraph/models"
)

// ExpectPrefix marks a raw cell as an expected value rather than live data.
const ExpectPrefix = "expect:"

// UnknownTypeError reports a column header whose type tag is not one of
// models.ValueTypes.
type UnknownTypeError struct {
	Header string
	Type   models.ValueType
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown column type %q in header %q", e.Type, e.Header)
}

// Config controls coercion and row assembly.
type Config struct {
	// Trim removes surrounding whitespace from string-typed values.
	Trim bool
	// ExcludeMetadata leaves Cell.Metadata nil.
	ExcludeMetadata bool
	// Now is the reference clock for relative dates. Nil means time.Now.
	Now func() time.Time
}

// coercion is the per-cell context a coerceFunc runs with.
type coercion struct {
	target string
	trim   bool
	loc    *time.Location
	now    time.Time
}

// relativeDate matches the words a relative date expression is built from.
// naturaldate returns its reference instant for text it does not
// understand, so text without any of these words is never handed to it.
var relativeDate = regexp.MustCompile(`(?i)\b(now|today|yesterday|tomorrow|ago|last|next|noon|midnight|` +
	`(second|minute|hour|day|week|fortnight|month|year)s?|` +
	`monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)

type coerceFunc func(raw string, c coercion) *models.Value

// coercers holds exactly one coercion per models.ValueType.
var coercers = map[models.ValueType]coerceFunc{
	models.TypeString: coerceString,
	models.TypeNum:    coerceNum,
	models.TypeDate:   coerceDate,
	models.TypeTZ:     coerceTZ,
	models.TypeRef:    coerceRef,
}

// Coercer converts raw cell text into typed cells.
// A Coercer is not safe for concurrent use.
type Coercer struct {
	cfg       Config
	now       time.Time
	locations map[string]*time.Location
}

// NewCoercer returns a Coercer whose relative dates are anchored at a
// single instant taken from cfg.Now.
func NewCoercer(cfg Config) *Coercer {
	now := time.Now
	if cfg.Now != nil {
		now = cfg.Now
	}
	return &Coercer{
		cfg:       cfg,
		now:       now(),
		locations: make(map[string]*time.Location),
	}
}

// CheckType reports an UnknownTypeError when h declares an unknown type.
func CheckType(h Header) error {
	if _, ok := coercers[h.Type]; !ok {
		return &UnknownTypeError{Header: h.Raw, Type: h.Type}
	}
	return nil
}

// Coerce builds the cell for column h. present is false for an absent
// cell. tz is the companion timezone for the field, or empty.
func (c *Coercer) Coerce(h Header, raw string, present bool, tz string) (models.Cell, error) {
	fn, ok := coercers[h.Type]
	if !ok {
		return models.Cell{}, &UnknownTypeError{Header: h.Raw, Type: h.Type}
	}

	cell := models.Cell{Slot: models.SlotValue}
	content := raw
	if present && strings.HasPrefix(raw, ExpectPrefix) {
		cell.Slot = models.SlotExpect
		content = strings.TrimPrefix(raw, ExpectPrefix)
	}

	// A bare "expect:" still expects something: the empty remainder.
	if present && (content != "" || cell.Slot == models.SlotExpect) {
		ctx := coercion{target: h.RefTarget, trim: c.cfg.Trim, loc: time.UTC, now: c.now}
		if h.Type == models.TypeDate && tz != "" {
			ctx.loc = c.location(tz)
		}
		cell.Data = fn(content, ctx)
	}

	if !c.cfg.ExcludeMetadata {
		md := &models.Metadata{
			Header:    h.Raw,
			Name:      h.Name,
			Type:      h.Type,
			RefTarget: h.RefTarget,
		}
		if present {
			r := raw
			md.Raw = &r
		}
		if h.Type == models.TypeDate {
			md.TZ = tz
		}
		cell.Metadata = md
	}

	return cell, nil
}

// location resolves a zone name, falling back to UTC for unknown names.
func (c *Coercer) location(name string) *time.Location {
	if loc, ok := c.locations[name]; ok {
		return loc
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		loc = time.UTC
	}
	c.locations[name] = loc
	return loc
}

func coerceString(raw string, c coercion) *models.Value {
	text := raw
	if c.trim {
		text = strings.TrimSpace(text)
	}
	return &models.Value{Type: models.TypeString, Raw: raw, Text: text}
}

func coerceNum(raw string, _ coercion) *models.Value {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		n = math.NaN()
	}
	return &models.Value{Type: models.TypeNum, Raw: raw, Num: n}
}

// coerceDate reads absolute dates first and falls back to relative
// expressions such as "2 days ago". Unparseable text yields nil.
func coerceDate(raw string, c coercion) *models.Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	t, err := dateparse.ParseIn(s, c.loc)
	if err != nil {
		if !relativeDate.MatchString(s) {
			return nil
		}
		t, err = naturaldate.Parse(s, c.now.In(c.loc), naturaldate.WithDirection(naturaldate.Past))
		if err != nil {
			return nil
		}
	}
	return &models.Value{Type: models.TypeDate, Raw: raw, Time: t.UTC()}
}

func coerceTZ(raw string, _ coercion) *models.Value {
	return &models.Value{Type: models.TypeTZ, Raw: raw, Text: raw}
}

func coerceRef(raw string, c coercion) *models.Value {
	return &models.Value{Type: models.TypeRef, Raw: raw, Text: raw, Target: c.target}
}
