package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/k0kubun/pp"

	"github.com/kotaroooo0/vertigo"
)

// Frequency analysis over a vertical corpus: how often a word form occurs,
// normalized (ipm) and dispersion-weighted (arf), broken down by lemma.
func main() {
	var (
		corpusPath = flag.String("corpus", "", "path to a vertical corpus file")
		formatPath = flag.String("format", "", "YAML format declaration (defaults to the prose format)")
		word       = flag.String("word", "", "word form to analyze")
		report     = flag.Int("report", 0, "log progress every N input lines (0 disables)")
	)
	flag.Parse()
	if *corpusPath == "" || *word == "" {
		flag.Usage()
		os.Exit(2)
	}

	vertical, err := openVertical(*corpusPath, *formatPath)
	if err != nil {
		log.Fatal(err)
	}

	match := func(p vertigo.Position, _ vertigo.Sattrs) bool {
		return p.Field("word") == *word
	}
	count := func(p vertigo.Position, _ vertigo.Sattrs) []string {
		return []string{p.Field("lemma")}
	}

	var options []vertigo.StreamOption
	if *report > 0 {
		options = append(options, vertigo.WithReportEvery(*report))
	}

	index, n, err := vertical.Search(match, count, options...)
	if err != nil {
		log.Fatal(err)
	}
	rows, err := vertigo.Report(index, n)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("corpus size: %d positions\n", n)
	pp.Println(rows)
}

func openVertical(corpusPath, formatPath string) (*vertigo.Vertical, error) {
	if formatPath == "" {
		return vertigo.NewProseVertical(corpusPath)
	}
	decl, err := vertigo.LoadFormat(formatPath)
	if err != nil {
		return nil, err
	}
	return decl.Vertical(corpusPath)
}
