package cli

import (
	"encoding/json"
	"testing"

	"github.com/dmitrijs2005/founderstack/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []string
		wantErr bool
	}{
		{name: "empty", in: "   ", want: nil},
		{name: "plain", in: "account  platform=AWS cost=5", want: []string{"account", "platform=AWS", "cost=5"}},
		{name: "quoted spaces", in: `name="Acme Labs" x=1`, want: []string{`name="Acme Labs"`, "x=1"}},
		{name: "json list", in: `notes=["a b", "c"]`, want: []string{`notes=["a b", "c"]`}},
		{name: "json list then field", in: `notes=["a b", "c"] cost=5`, want: []string{`notes=["a b", "c"]`, "cost=5"}},
		{name: "bracket inside quotes", in: `notes=["x ]", "y"] z=1`, want: []string{`notes=["x ]", "y"]`, "z=1"}},
		{name: "nested objects", in: `subServices=[{"name": "Seats", "cost": 3}] name=Figma`, want: []string{`subServices=[{"name": "Seats", "cost": 3}]`, "name=Figma"}},
		{name: "escaped quote", in: `name="say \"hi\" now"`, want: []string{`name="say \"hi\" now"`}},
		{name: "empty quotes", in: `name=""`, want: []string{`name=""`}},
		{name: "unterminated", in: `name="oops`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitArgs(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, errUnterminatedQuote)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.want, got))
		})
	}
}

func TestParseFields(t *testing.T) {
	fields, err := parseFields([]string{"name=Acme", `desc="two words"`, "cost=12.5", "flag=true", "empty=", "notes=[\"x\"]"})
	require.NoError(t, err)

	want := map[string]string{
		"name":  `"Acme"`,
		"desc":  `"two words"`,
		"cost":  `12.5`,
		"flag":  `true`,
		"empty": `""`,
		"notes": `["x"]`,
	}
	got := make(map[string]string, len(fields))
	for k, v := range fields {
		got[k] = string(v)
	}
	assert.Equal(t, want, got)

	_, err = parseFields([]string{"novalue"})
	require.Error(t, err)
	_, err = parseFields([]string{"=x"})
	require.Error(t, err)
}

func TestDecodePatch(t *testing.T) {
	p, err := decodePatch(models.KindSubscription, []string{"name=Figma", "cost=15", `billingCycle="Yearly"`})
	require.NoError(t, err)

	sub, ok := p.(models.SubscriptionPatch)
	require.True(t, ok)
	assert.Equal(t, "Figma", *sub.Name)
	assert.Equal(t, 15.0, *sub.Cost)
	assert.Equal(t, "Yearly", *sub.BillingCycle)

	_, err = decodePatch(models.KindSubscription, []string{"cost=cheap"})
	require.Error(t, err)
}

func TestFormatFieldsRoundTrip(t *testing.T) {
	in := models.AccountPatch{
		Platform: models.Ptr("Notion Team"),
		Email:    models.Ptr("a@b.co"),
		Notes:    []string{"wiki", "docs & specs", "<draft>"},
	}

	line, err := formatFields(in)
	require.NoError(t, err)
	assert.Equal(t, `email="a@b.co" notes=["wiki","docs & specs","<draft>"] platform="Notion Team"`, line)

	tokens, err := splitArgs(line)
	require.NoError(t, err)
	out, err := decodePatch(models.KindAccount, tokens)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(in, out))
}

func TestDecodePatch_SpacedJSONList(t *testing.T) {
	tokens, err := splitArgs(`notes=["a b", "c"] platform=Slack`)
	require.NoError(t, err)

	p, err := decodePatch(models.KindAccount, tokens)
	require.NoError(t, err)
	acc := p.(models.AccountPatch)
	assert.Equal(t, []string{"a b", "c"}, acc.Notes)
	assert.Equal(t, "Slack", *acc.Platform)
}

func TestParseFieldsKeepsRawJSON(t *testing.T) {
	fields, err := parseFields([]string{`subServices=[{"id":"x","name":"Seats","cost":3,"status":"Active"}]`})
	require.NoError(t, err)
	assert.True(t, json.Valid(fields["subServices"]))
}
