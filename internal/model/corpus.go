package model

// Fortune labels attached to hexagrams.
const (
	FortuneGreat    = "大吉"
	FortuneGood     = "吉"
	FortuneModerate = "中吉"
	FortuneNeutral  = "中平"
	FortuneBad      = "凶"
)

// Fortunes is the fixed set of fortune labels.
var Fortunes = []string{FortuneGreat, FortuneGood, FortuneModerate, FortuneNeutral, FortuneBad}

// Hexagram is one of the 64 corpus hexagrams.
type Hexagram struct {
	ID           int           `yaml:"id" json:"id"`
	Name         string        `yaml:"name" json:"name"`
	Symbol       string        `yaml:"symbol" json:"symbol"`
	UpperTrigram string        `yaml:"upper" json:"upperTrigram"`
	LowerTrigram string        `yaml:"lower" json:"lowerTrigram"`
	Description  string        `yaml:"description" json:"description"`
	Judgment     string        `yaml:"judgment" json:"judgment"`
	Image        string        `yaml:"image" json:"image"`
	Meaning      string        `yaml:"meaning" json:"meaning"`
	Advice       string        `yaml:"advice" json:"advice"`
	Fortune      string        `yaml:"fortune" json:"fortune"`
	Lines        []LineComment `yaml:"lines,omitempty" json:"lines,omitempty"`
	Vocabulary   []Vocab       `yaml:"vocabulary,omitempty" json:"vocabulary,omitempty"`
}

// LineComment is the commentary for one line of a hexagram.
type LineComment struct {
	Position string `yaml:"position" json:"position"`
	Text     string `yaml:"text" json:"text"`
	Meaning  string `yaml:"meaning" json:"meaning"`
}

// Vocab is an annotated word from the hexagram text.
type Vocab struct {
	Word    string `yaml:"word" json:"word"`
	Pinyin  string `yaml:"pinyin" json:"pinyin"`
	Meaning string `yaml:"meaning" json:"meaning"`
}

// Trigram is one of the eight trigrams.
type Trigram struct {
	Name      string `yaml:"name" json:"name"`
	Symbol    string `yaml:"symbol" json:"symbol"`
	Element   string `yaml:"element" json:"element"`
	Direction string `yaml:"direction" json:"direction"`
	Meaning   string `yaml:"meaning" json:"meaning"`
}

// Material is a learning-material entry; its ID doubles as the lesson id.
type Material struct {
	ID          int      `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Difficulty  string   `yaml:"difficulty" json:"difficulty"`
	Description string   `yaml:"description" json:"description"`
	Content     []string `yaml:"content" json:"content"`
}
