package horoscope

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Source returns uniform draws in [0, n).
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource draws from the process-wide math/rand/v2 generator, which is
// safe for concurrent use.
var DefaultSource Source = globalSource{}

// Generator fills in the decorative fields of a card for one request.
type Generator struct {
	dataset []Record
	rnd     Source
	now     func() time.Time
}

// NewGenerator builds a generator over a loaded dataset. A nil source or
// clock falls back to DefaultSource and time.Now.
func NewGenerator(dataset []Record, rnd Source, now func() time.Time) *Generator {
	if rnd == nil {
		rnd = DefaultSource
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{dataset: dataset, rnd: rnd, now: now}
}

// Generate picks a message and randomizes the extras for sign. The returned
// record is a copy; the dataset is never modified.
func (g *Generator) Generate(sign Sign) (Record, error) {
	if len(g.dataset) == 0 {
		return Record{}, ErrEmptyDataset
	}
	rec := g.dataset[g.rnd.IntN(len(g.dataset))]
	rec.Sign = sign.Name
	rec.Birthdates = sign.Birthdates
	rec.Date = CardDate(g.now())
	rec.Match = "Sign Match: " + Signs[g.rnd.IntN(len(Signs))].Name
	rec.Number = fmt.Sprintf("Lucky Number: %d", g.rnd.IntN(100))
	rec.Color = Palette[g.rnd.IntN(len(Palette))]
	rec.Time = g.luckyTime()
	return rec, nil
}

// CardDate pins the date shown on a card to May 23 of now's year.
func CardDate(now time.Time) string {
	d := time.Date(now.Year(), time.May, 23, 0, 0, 0, 0, now.Location())
	return d.Format("Mon Jan 02 2006")
}

// luckyTime formats h:mm AM|PM; each minute digit is drawn independently.
func (g *Generator) luckyTime() string {
	hour := g.rnd.IntN(12) + 1
	tens := g.rnd.IntN(10)
	ones := g.rnd.IntN(10)
	ampm := [...]string{"AM", "PM"}[g.rnd.IntN(2)]
	return fmt.Sprintf("%d:%d%d %s", hour, tens, ones, ampm)
}
