package search

// flattened search response returned to clients
type Response struct {
	Results []Result `json:"results"`
	Summary Summary  `json:"summary"`
}

// one matching document
type Result struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Snippets []string `json:"snippets"`
	Link     string   `json:"link"`
}

type Summary struct {
	SummaryText         string              `json:"summary_text"`
	SafetyAttributes    SafetyAttributes    `json:"safety_attributes"`
	SummaryWithMetadata SummaryWithMetadata `json:"summary_with_metadata"`
}

type SafetyAttributes struct {
	Categories []string  `json:"categories"`
	Scores     []float64 `json:"scores"`
}

type SummaryWithMetadata struct {
	Summary    string      `json:"summary"`
	References []Reference `json:"references"`
}

// document cited by the generated summary
type Reference struct {
	Title    string `json:"title"`
	Document string `json:"document"`
}

// Discovery Engine search request body
type searchRequest struct {
	Query               string              `json:"query"`
	PageSize            int                 `json:"pageSize"`
	ContentSearchSpec   contentSearchSpec   `json:"contentSearchSpec"`
	QueryExpansionSpec  queryExpansionSpec  `json:"queryExpansionSpec"`
	SpellCorrectionSpec spellCorrectionSpec `json:"spellCorrectionSpec"`
}

type contentSearchSpec struct {
	SnippetSpec snippetSpec `json:"snippetSpec"`
	SummarySpec summarySpec `json:"summarySpec"`
}

type snippetSpec struct {
	ReturnSnippet bool `json:"returnSnippet"`
}

type summarySpec struct {
	SummaryResultCount           int             `json:"summaryResultCount"`
	IncludeCitations             bool            `json:"includeCitations"`
	IgnoreAdversarialQuery       bool            `json:"ignoreAdversarialQuery"`
	IgnoreNonSummarySeekingQuery bool            `json:"ignoreNonSummarySeekingQuery"`
	ModelPromptSpec              modelPromptSpec `json:"modelPromptSpec"`
	ModelSpec                    modelSpec       `json:"modelSpec"`
}

type modelPromptSpec struct {
	Preamble string `json:"preamble"`
}

type modelSpec struct {
	Version string `json:"version"`
}

type queryExpansionSpec struct {
	Condition string `json:"condition"`
}

type spellCorrectionSpec struct {
	Mode string `json:"mode"`
}
