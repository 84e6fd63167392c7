package search

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullResponse = `{
  "results": [
    {
      "id": "doc-1",
      "document": {
        "name": "projects/123/locations/global/collections/default_collection/dataStores/ds/branches/0/documents/doc-1",
        "derivedStructData": {
          "title": "Pricing",
          "link": "gs://bucket/pricing.pdf",
          "snippets": [
            {"snippet": "first snippet", "snippet_status": "SUCCESS"},
            {"snippet": "second snippet", "snippet_status": "SUCCESS"}
          ]
        }
      }
    },
    {
      "document": {
        "name": "projects/123/locations/global/documents/doc-2",
        "derivedStructData": {}
      }
    }
  ],
  "summary": {
    "summaryText": "Plans start at **$10**.",
    "safetyAttributes": {
      "categories": ["Finance", "Health"],
      "scores": [0.1, 0.25]
    },
    "summaryWithMetadata": {
      "summary": "Plans start at $10.",
      "references": [
        {"title": "Pricing", "document": "projects/123/documents/doc-1"}
      ]
    }
  }
}`

func TestFlatten_FullResponse(t *testing.T) {
	resp, err := Flatten([]byte(fullResponse))

	require.NoError(t, err)
	require.Len(t, resp.Results, 2)

	first := resp.Results[0]
	assert.Equal(t, "doc-1", first.ID)
	assert.Equal(t, "Pricing", first.Title)
	assert.Equal(t, "gs://bucket/pricing.pdf", first.Link)
	assert.Equal(t, []string{"first snippet", "second snippet"}, first.Snippets)

	second := resp.Results[1]
	assert.Equal(t, "doc-2", second.ID)
	assert.Equal(t, "", second.Title)
	assert.Equal(t, "", second.Link)
	assert.NotNil(t, second.Snippets)
	assert.Empty(t, second.Snippets)

	assert.Equal(t, "Plans start at **$10**.", resp.Summary.SummaryText)
	assert.Equal(t, []string{"Finance", "Health"}, resp.Summary.SafetyAttributes.Categories)
	assert.Equal(t, []float64{0.1, 0.25}, resp.Summary.SafetyAttributes.Scores)
	assert.Equal(t, "Plans start at $10.", resp.Summary.SummaryWithMetadata.Summary)
	assert.Equal(t, []Reference{{Title: "Pricing", Document: "projects/123/documents/doc-1"}}, resp.Summary.SummaryWithMetadata.References)
}

func TestFlatten_SnippetWithoutTextIsSkipped(t *testing.T) {
	raw := `{"results":[{"document":{"name":"a/b/c","derivedStructData":{"snippets":[{"snippet_status":"NO_SNIPPET"},{"snippet":"kept"}]}}}]}`

	resp, err := Flatten([]byte(raw))

	require.NoError(t, err)
	assert.Equal(t, []string{"kept"}, resp.Results[0].Snippets)
	assert.Equal(t, "c", resp.Results[0].ID)
}

func TestFlatten_EmptyReferencesKeepSummaryText(t *testing.T) {
	raw := `{"summary":{"summaryText":"No results could be found.","summaryWithMetadata":{"summary":"","references":[]}}}`

	resp, err := Flatten([]byte(raw))

	require.NoError(t, err)
	assert.Equal(t, "No results could be found.", resp.Summary.SummaryText)
	assert.NotNil(t, resp.Summary.SummaryWithMetadata.References)
	assert.Empty(t, resp.Summary.SummaryWithMetadata.References)
}

func TestFlatten_EmptyObjectProducesFullShape(t *testing.T) {
	resp, err := Flatten([]byte(`{}`))
	require.NoError(t, err)

	out, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"results": [],
		"summary": {
			"summary_text": "",
			"safety_attributes": {"categories": [], "scores": []},
			"summary_with_metadata": {"summary": "", "references": []}
		}
	}`, string(out))
}

func TestFlatten_NameWithoutSlash(t *testing.T) {
	resp, err := Flatten([]byte(`{"results":[{"document":{"name":"plain"}}]}`))

	require.NoError(t, err)
	assert.Equal(t, "plain", resp.Results[0].ID)
}

func TestFlatten_WrongTypesTreatedAsEmpty(t *testing.T) {
	raw := `{"results":[{"document":{"name":"x/y","derivedStructData":{"snippets":"oops"}}}],"summary":{"safetyAttributes":{"categories":"none"}}}`

	resp, err := Flatten([]byte(raw))

	require.NoError(t, err)
	assert.Empty(t, resp.Results[0].Snippets)
	assert.Empty(t, resp.Summary.SafetyAttributes.Categories)
}

func TestFlatten_InvalidInput(t *testing.T) {
	for _, raw := range []string{"", "not json", `[1,2]`, `"text"`} {
		_, err := Flatten([]byte(raw))
		assert.ErrorIs(t, err, ErrInvalidResponse, "input %q", raw)
	}
}
