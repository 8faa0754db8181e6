package normalizing

// FieldRule lista os caminhos candidatos em ordem de prioridade; o primeiro
// valor presente vence e Default cobre a ausência de todos.
type FieldRule struct {
	Paths   []string
	Default string
}

type StatusRule struct {
	// EffectiveStatusPath e ActiveToken cobrem origens com status explícito (Meta)
	EffectiveStatusPath string
	ActiveToken         string
	// ActiveFlagPath e StopTimePath cobrem as bibliotecas de anúncios
	ActiveFlagPath string
	StopTimePath   string
}

type MetricsRule struct {
	InsightPath        string
	ActionsField       string
	CostPerActionField string
	CurrencyField      string
}

// Schema descreve o formato bruto de uma origem e como cada campo canônico é lido.
type Schema struct {
	Name string

	ID FieldRule
	// DisplayIDSuffix é quantos caracteres finais do ID formam o adId
	DisplayIDSuffix int

	Headline       FieldRule
	Body           FieldRule
	CTAText        FieldRule
	DestinationURL FieldRule
	Thumbnail      FieldRule
	PageName       FieldRule
	StartDate      FieldRule
	LastSeen       FieldRule

	PublisherPlatformsPath string
	Status                 StatusRule
	// Metrics nulo indica uma origem sem dados de desempenho
	Metrics *MetricsRule
}

// WithPageName troca o nome de página padrão sem alterar a tabela original.
func (s Schema) WithPageName(name string) Schema {
	if name == "" {
		return s
	}

	rule := s.PageName
	rule.Paths = append([]string(nil), rule.Paths...)
	rule.Default = name
	s.PageName = rule
	return s
}

var MetaSchema = Schema{
	Name:            "meta",
	ID:              FieldRule{Paths: []string{"id"}},
	DisplayIDSuffix: 6,
	Headline: FieldRule{
		Paths:   []string{"creative.title", "creative.name", "name"},
		Default: "Sem título",
	},
	Body: FieldRule{
		Paths: []string{"creative.body", "creative.message"},
	},
	CTAText: FieldRule{
		Paths:   []string{"creative.call_to_action_type"},
		Default: "LEARN_MORE",
	},
	DestinationURL: FieldRule{
		Paths: []string{"creative.link_url", "creative.object_url"},
	},
	Thumbnail: FieldRule{
		Paths: []string{"creative.thumbnail_url", "creative.image_url", "creative.video_thumbnail_url"},
	},
	PageName:               FieldRule{Default: "Meta Ads"},
	StartDate:              FieldRule{Paths: []string{"created_time"}},
	LastSeen:               FieldRule{Paths: []string{"updated_time"}},
	PublisherPlatformsPath: "publisher_platforms",
	Status: StatusRule{
		EffectiveStatusPath: "effective_status",
		ActiveToken:         "ACTIVE",
	},
	Metrics: &MetricsRule{
		InsightPath:        "insights.data.0",
		ActionsField:       "actions",
		CostPerActionField: "cost_per_action_type",
		CurrencyField:      "account_currency",
	},
}

var ScrapeCreatorsSchema = Schema{
	Name:            "scrapecreators",
	ID:              FieldRule{Paths: []string{"ad_archive_id"}},
	DisplayIDSuffix: 4,
	Headline:        libraryHeadline,
	Body: FieldRule{
		Paths:   []string{"snapshot.cards.0.body", "snapshot.body.text", "snapshot.body.markup"},
		Default: "No body text",
	},
	CTAText:                libraryCTA,
	DestinationURL:         libraryDestination,
	Thumbnail:              libraryThumbnail,
	PageName:               FieldRule{Paths: []string{"page_name", "snapshot.page_name"}},
	StartDate:              FieldRule{Paths: []string{"start_date_string", "start_date"}},
	LastSeen:               FieldRule{Paths: []string{"end_date_string", "end_date"}},
	PublisherPlatformsPath: "publisher_platform",
	Status: StatusRule{
		ActiveFlagPath: "is_active",
		StopTimePath:   "end_date_string",
	},
}

var ApifySchema = Schema{
	Name:            "apify",
	ID:              FieldRule{Paths: []string{"ad_archive_id"}},
	DisplayIDSuffix: 4,
	Headline:        libraryHeadline,
	Body: FieldRule{
		Paths:   []string{"snapshot.cards.0.body", "snapshot.body.markup", "snapshot.body.text"},
		Default: "No body text",
	},
	CTAText:                libraryCTA,
	DestinationURL:         libraryDestination,
	Thumbnail:              libraryThumbnail,
	PageName:               FieldRule{Paths: []string{"snapshot.page_name", "page_name"}},
	StartDate:              FieldRule{Paths: []string{"start_date"}},
	LastSeen:               FieldRule{Paths: []string{"end_date"}},
	PublisherPlatformsPath: "publisher_platform",
	Status: StatusRule{
		ActiveFlagPath: "is_active",
		StopTimePath:   "ad_delivery_stop_time",
	},
}

// Regras comuns às bibliotecas de anúncios: primeiro card, depois o snapshot
var (
	libraryHeadline = FieldRule{
		Paths:   []string{"snapshot.cards.0.title", "snapshot.title"},
		Default: "No Headline",
	}
	libraryCTA = FieldRule{
		Paths:   []string{"snapshot.cards.0.cta_text", "snapshot.cta_text"},
		Default: "Learn More",
	}
	libraryDestination = FieldRule{
		Paths: []string{"snapshot.cards.0.link_url", "snapshot.link_url"},
	}
	libraryThumbnail = FieldRule{
		Paths: []string{
			"snapshot.cards.0.original_image_url",
			"snapshot.images.0.original_image_url",
			"snapshot.cards.0.video_preview_image_url",
			"snapshot.videos.0.video_preview_image_url",
		},
	}
)
