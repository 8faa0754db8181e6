package normalizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
)

func TestExtract_MetaSchema(t *testing.T) {
	tests := []struct {
		name     string
		item     RawItem
		validate func(t *testing.T, fields ExtractedFields)
	}{
		{
			name: "Título do criativo tem prioridade",
			item: RawItem{
				"id":   "120210000000123456",
				"name": "Nome do anúncio",
				"creative": map[string]any{
					"title":               "Título do criativo",
					"name":                "Nome do criativo",
					"body":                "Texto principal",
					"call_to_action_type": "SIGN_UP",
					"link_url":            "https://exemplo.com/landing",
					"object_url":          "https://exemplo.com/objeto",
					"thumbnail_url":       "https://cdn.exemplo.com/thumb.jpg",
					"image_url":           "https://cdn.exemplo.com/image.jpg",
					"video_thumbnail_url": "https://cdn.exemplo.com/video.jpg",
				},
				"created_time": "2024-02-15T10:00:00+0000",
				"updated_time": "2024-02-20T10:00:00+0000",
			},
			validate: func(t *testing.T, fields ExtractedFields) {
				assert.Equal(t, "120210000000123456", fields.ID)
				assert.True(t, fields.IDFound)
				assert.Equal(t, "Título do criativo", fields.Headline)
				assert.Equal(t, "Texto principal", fields.Body)
				assert.Equal(t, "SIGN_UP", fields.CTAText)
				assert.Equal(t, "https://exemplo.com/landing", fields.DestinationURL)
				assert.Equal(t, "https://cdn.exemplo.com/thumb.jpg", fields.Thumbnail)
				assert.Equal(t, "Meta Ads", fields.PageName)
				assert.Equal(t, "2024-02-15T10:00:00+0000", fields.StartDate)
				assert.True(t, fields.StartDateFound)
			},
		},
		{
			name: "Sem título usa nome do criativo e depois do anúncio",
			item: RawItem{
				"id":       "1",
				"name":     "Nome do anúncio",
				"creative": map[string]any{"title": "", "image_url": "https://cdn.exemplo.com/image.jpg"},
			},
			validate: func(t *testing.T, fields ExtractedFields) {
				assert.Equal(t, "Nome do anúncio", fields.Headline)
				assert.Equal(t, "https://cdn.exemplo.com/image.jpg", fields.Thumbnail)
				assert.Equal(t, "LEARN_MORE", fields.CTAText)
				assert.Equal(t, "", fields.Body)
			},
		},
		{
			name: "Item vazio usa os padrões",
			item: RawItem{},
			validate: func(t *testing.T, fields ExtractedFields) {
				assert.False(t, fields.IDFound)
				assert.Equal(t, "Sem título", fields.Headline)
				assert.Equal(t, "LEARN_MORE", fields.CTAText)
				assert.Equal(t, "", fields.Thumbnail)
				assert.False(t, fields.StartDateFound)
				assert.False(t, fields.LastSeenFound)
			},
		},
		{
			name: "Criativo com tipo errado conta como ausente",
			item: RawItem{
				"id":       "2",
				"creative": "não é objeto",
				"name":     "Fallback",
			},
			validate: func(t *testing.T, fields ExtractedFields) {
				assert.Equal(t, "Fallback", fields.Headline)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Extract(tt.item, MetaSchema))
		})
	}
}

func TestExtract_LibrarySchemas(t *testing.T) {
	item := RawItem{
		"ad_archive_id":     "987654321",
		"page_name":         "Página Exemplo",
		"start_date_string": "2024-03-01T00:00:00.000Z",
		"snapshot": map[string]any{
			"title": "Título do snapshot",
			"body":  map[string]any{"text": "Texto do snapshot", "markup": "<p>markup</p>"},
			"cards": []any{
				map[string]any{"title": "Título do card", "video_preview_image_url": "https://cdn.exemplo.com/preview.jpg"},
			},
			"images": []any{},
		},
	}

	fields := Extract(item, ScrapeCreatorsSchema)
	assert.Equal(t, "Título do card", fields.Headline)
	assert.Equal(t, "Texto do snapshot", fields.Body)
	assert.Equal(t, "Learn More", fields.CTAText)
	assert.Equal(t, "https://cdn.exemplo.com/preview.jpg", fields.Thumbnail)
	assert.Equal(t, "Página Exemplo", fields.PageName)
	assert.Equal(t, "2024-03-01T00:00:00.000Z", fields.StartDate)
	assert.False(t, fields.LastSeenFound)

	fields = Extract(item, ApifySchema)
	assert.Equal(t, "<p>markup</p>", fields.Body)
	assert.False(t, fields.StartDateFound)

	empty := Extract(RawItem{"snapshot": map[string]any{}}, ApifySchema)
	assert.Equal(t, "No Headline", empty.Headline)
	assert.Equal(t, "No body text", empty.Body)
	assert.Equal(t, "Learn More", empty.CTAText)
}

func TestFieldRule_ResolveTimestamp_Epoch(t *testing.T) {
	rule := FieldRule{Paths: []string{"start_date"}}

	value, found := rule.ResolveTimestamp(RawItem{"start_date": float64(1709251200)})

	assert.True(t, found)
	assert.Equal(t, "2024-03-01T00:00:00Z", value)
}

func TestSchema_WithPageName(t *testing.T) {
	schema := ApifySchema.WithPageName("Minha Página")

	assert.Equal(t, "Minha Página", schema.PageName.Default)
	assert.Equal(t, "", ApifySchema.PageName.Default)
	assert.Equal(t, ApifySchema, ApifySchema.WithPageName(""))
}

func TestResolvePlatform(t *testing.T) {
	assert.Equal(t, domain.PlatformFacebook, ResolvePlatform(nil))
	assert.Equal(t, domain.PlatformInstagram, ResolvePlatform([]string{"INSTAGRAM"}))
	assert.Equal(t, domain.PlatformFacebook, ResolvePlatform([]string{"instagram", "facebook"}))
}
