package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTone(t *testing.T) {
	tests := map[string]Tone{
		"formal":     ToneFormal,
		" Casual ":   ToneCasual,
		"BALANCED":   ToneBalanced,
		"friendly":   ToneUnset,
		"":           ToneUnset,
		"formal-ish": ToneUnset,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseTone(in), in)
	}
}

func TestParseStyle(t *testing.T) {
	tests := map[string]Style{
		"detailed": StyleDetailed,
		"Concise":  StyleConcise,
		"moderate": StyleModerate,
		"verbose":  StyleUnset,
		"":         StyleUnset,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseStyle(in), in)
	}
}

func TestExtractionResult_IsEmpty(t *testing.T) {
	assert.True(t, ExtractionResult{}.IsEmpty())
	assert.True(t, ExtractionResult{KeyTerms: []string{}}.IsEmpty())
	assert.False(t, ExtractionResult{Industry: "retail"}.IsEmpty())
	assert.False(t, ExtractionResult{KeyTerms: []string{"NDA"}}.IsEmpty())
	assert.False(t, ExtractionResult{Tone: ToneFormal}.IsEmpty())
}

func TestGenerateRequest_Validate(t *testing.T) {
	valid := GenerateRequest{ContractType: "nda", ClientName: "Acme", FreelancerName: "Jane", ProjectScope: "design"}
	require.NoError(t, valid.Validate())

	// budget and timeline are optional
	valid.Budget, valid.Timeline = "", ""
	require.NoError(t, valid.Validate())

	err := GenerateRequest{ClientName: "Acme", FreelancerName: "  "}.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"contract_type", "freelancer_name", "project_scope"}, verr.Fields)
	assert.Equal(t, "missing required fields: contract_type, freelancer_name, project_scope", err.Error())
}

func TestWebhookKind_Valid(t *testing.T) {
	for _, k := range []WebhookKind{WebhookSlack, WebhookTeams, WebhookZapier, WebhookMake, WebhookGeneric} {
		assert.True(t, k.Valid(), k)
	}
	assert.False(t, WebhookKind("discord").Valid())
	assert.False(t, WebhookKind("").Valid())
}
