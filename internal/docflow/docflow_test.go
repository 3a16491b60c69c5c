package docflow

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adwitiya/lexio/internal/llm"
)

const sampleText = "The mitochondria is the powerhouse of the cell. Photosynthesis converts light energy into chemical energy stored in glucose."

func TestValidateShortCircuitsOnLength(t *testing.T) {
	provider := llm.NewMockProvider()
	f := New(provider)

	v, err := f.Validate(context.Background(), "too short")
	require.NoError(t, err)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Reason, "too short")
	// The model is never consulted for short documents.
	assert.Equal(t, 0, provider.CallCount())
}

func TestValidateAccepts(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"isValid":true,"reason":""}`),
	})
	f := New(provider)

	v, err := f.Validate(context.Background(), sampleText)
	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Empty(t, v.Reason)
}

func TestValidateRejectsWithReason(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"isValid":false,"reason":"The document appears to contain code, not learnable text."}`),
	})
	f := New(provider)

	v, err := f.Validate(context.Background(), strings.Repeat("func main() {}\n", 10))
	require.NoError(t, err)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Reason, "code")
}

func TestCategorize(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"category":"Science"}`),
	})
	f := New(provider)

	cat, err := f.Categorize(context.Background(), sampleText)
	require.NoError(t, err)
	assert.Equal(t, "Science", cat)
}

func TestCategorizeUnknownFallsBack(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"category":"Astrology"}`),
	})
	f := New(provider)

	cat, err := f.Categorize(context.Background(), sampleText)
	require.NoError(t, err)
	assert.Equal(t, DefaultCategory, cat)
}

func TestCategorizeTruncatesDocument(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"category":"General & Other"}`),
	})
	f := New(provider)

	long := strings.Repeat("y", 10000)
	_, err := f.Categorize(context.Background(), long)
	require.NoError(t, err)

	sent := provider.Calls[0].Messages[0].Content
	assert.Equal(t, maxDocumentChars, strings.Count(sent, "y"))
}

func TestExtractVocabulary(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"vocabularyList":["mitochondria"," photosynthesis ","","glucose"]}`),
	})
	f := New(provider)

	words, err := f.ExtractVocabulary(context.Background(), sampleText)
	require.NoError(t, err)
	assert.Equal(t, []string{"mitochondria", "photosynthesis", "glucose"}, words)
}

func TestTruncatePreservesRuneBoundaries(t *testing.T) {
	s := strings.Repeat("ü", 60) // two bytes per rune
	got := truncate(s, 99)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("ü", 49), got)
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, ValidCategory(c), c)
	}
	assert.False(t, ValidCategory("Miscellany"))
}
