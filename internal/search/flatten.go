package search

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

var ErrInvalidResponse = errors.New("search: response is not valid JSON")

// reshapes a raw Discovery Engine search response; absent fields become empty values
func Flatten(raw []byte) (*Response, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidResponse
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, ErrInvalidResponse
	}

	results := []Result{}
	eachElement(doc.Get("results"), func(r gjson.Result) {
		results = append(results, flattenResult(r))
	})

	return &Response{
		Results: results,
		Summary: flattenSummary(doc.Get("summary")),
	}, nil
}

func flattenResult(r gjson.Result) Result {
	data := r.Get("document.derivedStructData")

	snippets := []string{}
	eachElement(data.Get("snippets"), func(s gjson.Result) {
		if snippet := s.Get("snippet"); snippet.Exists() {
			snippets = append(snippets, snippet.String())
		}
	})

	return Result{
		ID:       lastSegment(r.Get("document.name").String()),
		Title:    data.Get("title").String(),
		Snippets: snippets,
		Link:     data.Get("link").String(),
	}
}

func flattenSummary(s gjson.Result) Summary {
	categories := []string{}
	eachElement(s.Get("safetyAttributes.categories"), func(v gjson.Result) {
		categories = append(categories, v.String())
	})

	scores := []float64{}
	eachElement(s.Get("safetyAttributes.scores"), func(v gjson.Result) {
		scores = append(scores, v.Float())
	})

	references := []Reference{}
	eachElement(s.Get("summaryWithMetadata.references"), func(v gjson.Result) {
		references = append(references, Reference{
			Title:    v.Get("title").String(),
			Document: v.Get("document").String(),
		})
	})

	return Summary{
		SummaryText: s.Get("summaryText").String(),
		SafetyAttributes: SafetyAttributes{
			Categories: categories,
			Scores:     scores,
		},
		SummaryWithMetadata: SummaryWithMetadata{
			Summary:    s.Get("summaryWithMetadata.summary").String(),
			References: references,
		},
	}
}

// visits array elements; anything other than an array is treated as empty
func eachElement(r gjson.Result, fn func(gjson.Result)) {
	if !r.IsArray() {
		return
	}

	for _, v := range r.Array() {
		fn(v)
	}
}

func lastSegment(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}

	return name
}
