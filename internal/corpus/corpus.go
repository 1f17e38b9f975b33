// Package corpus loads the read-only Zhouyi corpus: hexagrams, trigrams and
// learning materials.
package corpus

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/rcliao/yijing/internal/model"
)

// HexagramCount is the size of the hexagram corpus.
const HexagramCount = 64

//go:embed data/corpus.yaml
var embedded []byte

// Unknown stands in for a hexagram id the corpus does not contain.
var Unknown = model.Hexagram{Name: "未知", Symbol: "?", Description: "未知卦象"}

// Corpus is the static reference data.
type Corpus struct {
	Hexagrams []model.Hexagram `yaml:"hexagrams"`
	Trigrams  []model.Trigram  `yaml:"trigrams"`
	Materials []model.Material `yaml:"materials"`

	hexByID  map[int]int
	triByKey map[string]int
	matByID  map[int]int
}

var (
	defaultOnce   sync.Once
	defaultCorpus *Corpus
)

// Default returns the embedded corpus. It panics if the embedded data is
// malformed, which is a build defect.
func Default() *Corpus {
	defaultOnce.Do(func() {
		c, err := Load(embedded)
		if err != nil {
			panic(fmt.Sprintf("corpus: embedded data: %v", err))
		}
		defaultCorpus = c
	})
	return defaultCorpus
}

// Load parses and validates corpus YAML.
func Load(data []byte) (*Corpus, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Corpus
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Corpus) index() error {
	var errs []error

	c.triByKey = make(map[string]int, len(c.Trigrams))
	for i, t := range c.Trigrams {
		if _, dup := c.triByKey[t.Name]; dup {
			errs = append(errs, fmt.Errorf("duplicate trigram %q", t.Name))
		}
		c.triByKey[t.Name] = i
	}

	if len(c.Hexagrams) != HexagramCount {
		errs = append(errs, fmt.Errorf("expected %d hexagrams, got %d", HexagramCount, len(c.Hexagrams)))
	}
	c.hexByID = make(map[int]int, len(c.Hexagrams))
	for i, h := range c.Hexagrams {
		if _, dup := c.hexByID[h.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate hexagram id %d", h.ID))
		}
		c.hexByID[h.ID] = i
		if !slices.Contains(model.Fortunes, h.Fortune) {
			errs = append(errs, fmt.Errorf("hexagram %d: unknown fortune %q", h.ID, h.Fortune))
		}
		if _, ok := c.triByKey[h.UpperTrigram]; !ok {
			errs = append(errs, fmt.Errorf("hexagram %d: unknown upper trigram %q", h.ID, h.UpperTrigram))
		}
		if _, ok := c.triByKey[h.LowerTrigram]; !ok {
			errs = append(errs, fmt.Errorf("hexagram %d: unknown lower trigram %q", h.ID, h.LowerTrigram))
		}
	}

	c.matByID = make(map[int]int, len(c.Materials))
	for i, m := range c.Materials {
		if _, dup := c.matByID[m.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate material id %d", m.ID))
		}
		c.matByID[m.ID] = i
	}

	return errors.Join(errs...)
}

// Hexagram looks up a hexagram by id.
func (c *Corpus) Hexagram(id int) (model.Hexagram, bool) {
	i, ok := c.hexByID[id]
	if !ok {
		return model.Hexagram{}, false
	}
	return c.Hexagrams[i], true
}

// HexagramOrUnknown looks up a hexagram, substituting Unknown for a missing id.
func (c *Corpus) HexagramOrUnknown(id int) model.Hexagram {
	if h, ok := c.Hexagram(id); ok {
		return h
	}
	return Unknown
}

// SelectRandom picks a hexagram uniformly at random.
func (c *Corpus) SelectRandom(rng *rand.Rand) model.Hexagram {
	return c.Hexagrams[rng.Intn(len(c.Hexagrams))]
}

// Trigram looks up a trigram by name.
func (c *Corpus) Trigram(name string) (model.Trigram, bool) {
	i, ok := c.triByKey[name]
	if !ok {
		return model.Trigram{}, false
	}
	return c.Trigrams[i], true
}

// Material looks up a learning material by its lesson id.
func (c *Corpus) Material(id int) (model.Material, bool) {
	i, ok := c.matByID[id]
	if !ok {
		return model.Material{}, false
	}
	return c.Materials[i], true
}
