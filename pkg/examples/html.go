/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: html.go
Description: HTML example extraction. Collects the trimmed text of elements matched by
CSS selectors, in document order, using goquery.
*/

package examples

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kleascm/regsynth/pkg/synth"
)

const (
	DefaultValidSelector   = `[data-example="valid"]`
	DefaultInvalidSelector = `[data-example="invalid"]`
)

// DecodeHTML extracts valid and invalid examples from an HTML document.
// Empty selectors fall back to the data-example defaults.
func DecodeHTML(r io.Reader, validSelector, invalidSelector string) (*synth.ExampleSet, error) {
	if validSelector == "" {
		validSelector = DefaultValidSelector
	}
	if invalidSelector == "" {
		invalidSelector = DefaultInvalidSelector
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	set := &synth.ExampleSet{
		Valid:   collectText(doc, validSelector),
		Invalid: collectText(doc, invalidSelector),
	}
	return set, nil
}

func collectText(doc *goquery.Document, selector string) []string {
	var out []string
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		out = append(out, strings.TrimSpace(sel.Text()))
	})
	return out
}
