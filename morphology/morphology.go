package morphology

type Morphology interface {
	Analyze(string) []MorphologyToken
}

type MorphologyToken struct {
	Term    string
	Kana    string
	Feature string
}

func NewMorphologyToken(term, kana, feature string) MorphologyToken {
	return MorphologyToken{
		Term:    term,
		Kana:    kana,
		Feature: feature,
	}
}
