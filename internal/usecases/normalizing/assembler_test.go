package normalizing

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
)

var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func sequenceIDs(ids ...string) func() (string, error) {
	index := 0
	return func() (string, error) {
		if index >= len(ids) {
			return "", errors.New("sem IDs")
		}
		id := ids[index]
		index++
		return id, nil
	}
}

func TestAssembler_Assemble_Meta(t *testing.T) {
	assembler := NewAssembler(MetaSchema, WithClock(func() time.Time { return fixedNow }))

	item := RawItem{
		"id":               "120210000000123456",
		"name":             "Campanha verão",
		"effective_status": "ACTIVE",
		"created_time":     "2024-02-15T10:00:00+0000",
		"creative": map[string]any{
			"title":               "Cardápio digital",
			"body":                "Venda mais pelo delivery",
			"call_to_action_type": "SIGN_UP",
			"link_url":            "https://exemplo.com",
			"image_url":           "https://cdn.exemplo.com/image.jpg",
		},
		"insights": map[string]any{
			"data": []any{
				map[string]any{
					"impressions": "1000",
					"clicks":      "25",
					"spend":       "100.00",
					"actions":     []any{map[string]any{"action_type": "lead", "value": "10"}},
				},
			},
		},
	}

	ad, err := assembler.Assemble(item, fixedNow)

	require.NoError(t, err)
	assert.Equal(t, "120210000000123456", ad.ID)
	assert.Equal(t, "AD-123456", ad.AdID)
	assert.False(t, ad.IDSynthetic)
	assert.Equal(t, "Cardápio digital", ad.Headline)
	assert.Equal(t, domain.AdStatusActive, ad.Status)
	assert.Equal(t, domain.PlatformFacebook, ad.Platform)
	assert.Equal(t, "2024-02-15T10:00:00+0000", ad.StartDate)
	assert.False(t, ad.StartDateEstimated)
	assert.Equal(t, "2024-03-10T12:00:00Z", ad.LastSeen)
	assert.True(t, ad.LastSeenEstimated)
	assert.Equal(t, "Meta Ads", ad.PageName)
	assert.Equal(t, []string{}, ad.Tags)
	assert.Equal(t, "", ad.Notes)
	require.NotNil(t, ad.AdMetrics)
	assert.Equal(t, 2.5, ad.CTR)
	assert.Equal(t, 10, ad.Leads)
	assert.Equal(t, 10.0, ad.CostPerLead)
}

func TestAssembler_Assemble_Library(t *testing.T) {
	assembler := NewAssembler(ScrapeCreatorsSchema.WithPageName("Cardápio Web"))

	ad, err := assembler.Assemble(RawItem{
		"ad_archive_id": "778899",
		"is_active":     true,
		"snapshot":      map[string]any{"title": "Oferta"},
	}, fixedNow)

	require.NoError(t, err)
	assert.Equal(t, "AD-8899", ad.AdID)
	assert.Equal(t, "Oferta", ad.Headline)
	assert.Equal(t, "Cardápio Web", ad.PageName)
	assert.Equal(t, domain.AdStatusActive, ad.Status)
	assert.Nil(t, ad.AdMetrics)
	assert.True(t, ad.StartDateEstimated)
}

func TestAssembler_Assemble_IDCurto(t *testing.T) {
	ad, err := NewAssembler(MetaSchema).Assemble(RawItem{"id": "42"}, fixedNow)

	require.NoError(t, err)
	assert.Equal(t, "AD-42", ad.AdID)
}

func TestAssembler_Assemble_SemID(t *testing.T) {
	assembler := NewAssembler(ApifySchema, WithIDGenerator(sequenceIDs("synthetic1")))

	ad, err := assembler.Assemble(RawItem{"snapshot": map[string]any{}}, fixedNow)

	require.NoError(t, err)
	assert.Equal(t, "synthetic1", ad.ID)
	assert.True(t, ad.IDSynthetic)
	assert.Equal(t, "AD-UNKNOWN", ad.AdID)
}

func TestAssembler_Assemble_Erros(t *testing.T) {
	_, err := NewAssembler(MetaSchema).Assemble(nil, fixedNow)
	assert.ErrorIs(t, err, ErrNotAnObject)

	failing := NewAssembler(MetaSchema, WithIDGenerator(func() (string, error) {
		return "", errors.New("falha no gerador")
	}))
	_, err = failing.Assemble(RawItem{}, fixedNow)
	assert.Error(t, err)
}

func TestAssembler_AssembleAll(t *testing.T) {
	assembler := NewAssembler(
		ApifySchema,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequenceIDs("dup", "dup", "unique")),
	)

	items := ToRawItems([]any{
		map[string]any{"ad_archive_id": "1111"},
		"não é objeto",
		map[string]any{"snapshot": map[string]any{}},
		map[string]any{"snapshot": map[string]any{}},
	})

	ads := assembler.AssembleAll(context.Background(), items)

	require.Len(t, ads, 3)
	assert.Equal(t, "1111", ads[0].ID)
	assert.Equal(t, "dup", ads[1].ID)
	assert.Equal(t, "unique", ads[2].ID)
	for _, ad := range ads {
		assert.Equal(t, "2024-03-10T12:00:00Z", ad.StartDate, fmt.Sprintf("anúncio %s", ad.ID))
	}
}
