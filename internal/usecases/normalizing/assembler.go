package normalizing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/pkg/log"
	"github.com/vfg2006/ads-monitor-api/pkg/utils"
)

const unknownAdID = "AD-UNKNOWN"

var ErrNotAnObject = errors.New("item não é um objeto")

type Option func(*Assembler)

func WithClock(now func() time.Time) Option {
	return func(a *Assembler) {
		a.now = now
	}
}

func WithIDGenerator(generate func() (string, error)) Option {
	return func(a *Assembler) {
		a.newID = generate
	}
}

// Assembler transforma itens brutos de uma origem em anúncios canônicos.
type Assembler struct {
	schema Schema
	now    func() time.Time
	newID  func() (string, error)
}

func NewAssembler(schema Schema, opts ...Option) *Assembler {
	assembler := &Assembler{
		schema: schema,
		now:    time.Now,
		newID:  utils.GenerateID,
	}

	for _, opt := range opts {
		opt(assembler)
	}

	return assembler
}

func (a *Assembler) Schema() Schema {
	return a.schema
}

// Assemble monta um anúncio completo ou devolve erro; nunca um registro parcial.
// fetchedAt substitui datas ausentes, que ficam marcadas como estimadas.
func (a *Assembler) Assemble(item RawItem, fetchedAt time.Time) (domain.Ad, error) {
	if item == nil {
		return domain.Ad{}, ErrNotAnObject
	}

	fields := Extract(item, a.schema)
	fallbackTime := fetchedAt.UTC().Format(time.RFC3339)

	ad := domain.Ad{
		ID:             fields.ID,
		Headline:       fields.Headline,
		Body:           fields.Body,
		CTAText:        fields.CTAText,
		DestinationURL: fields.DestinationURL,
		Thumbnail:      fields.Thumbnail,
		Status:         ResolveStatus(item, a.schema.Status, fetchedAt),
		Platform:       ResolvePlatform(fields.PublisherPlatforms),
		StartDate:      fields.StartDate,
		LastSeen:       fields.LastSeen,
		PageName:       fields.PageName,
		Tags:           []string{},
		AdMetrics:      NormalizeMetrics(item, a.schema.Metrics),
	}

	if fields.IDFound {
		ad.AdID = displayID(fields.ID, a.schema.DisplayIDSuffix)
	} else {
		syntheticID, err := a.newID()
		if err != nil {
			return domain.Ad{}, fmt.Errorf("erro ao gerar ID sintético: %w", err)
		}
		ad.ID = syntheticID
		ad.IDSynthetic = true
		ad.AdID = unknownAdID
	}

	if !fields.StartDateFound {
		ad.StartDate = fallbackTime
		ad.StartDateEstimated = true
	}

	if !fields.LastSeenFound {
		ad.LastSeen = fallbackTime
		ad.LastSeenEstimated = true
	}

	return ad, nil
}

// AssembleAll monta todos os itens com um único instante de busca. Itens
// inválidos são descartados com log; IDs sintéticos não se repetem.
func (a *Assembler) AssembleAll(ctx context.Context, items []RawItem) []domain.Ad {
	logger := log.ForContext(ctx)
	fetchedAt := a.now()

	ads := make([]domain.Ad, 0, len(items))
	syntheticIDs := make(map[string]struct{})

	for index, item := range items {
		ad, err := a.Assemble(item, fetchedAt)
		if err != nil {
			logger.WithFields(log.Fields{
				"source": a.schema.Name,
				"index":  index,
				"error":  err.Error(),
			}).Warn("normalizing: item descartado")
			continue
		}

		if ad.IDSynthetic {
			uniqueID, err := a.uniqueSyntheticID(ad.ID, syntheticIDs)
			if err != nil {
				logger.WithFields(log.Fields{
					"source": a.schema.Name,
					"index":  index,
					"error":  err.Error(),
				}).Warn("normalizing: item descartado")
				continue
			}
			ad.ID = uniqueID

			logger.WithFields(log.Fields{
				"source":       a.schema.Name,
				"index":        index,
				"synthetic_id": ad.ID,
			}).Warn("normalizing: item sem ID recebeu identificador sintético")
		}

		ads = append(ads, ad)
	}

	return ads
}

const maxSyntheticIDAttempts = 5

func (a *Assembler) uniqueSyntheticID(candidate string, used map[string]struct{}) (string, error) {
	for attempt := 0; attempt < maxSyntheticIDAttempts; attempt++ {
		if _, repeated := used[candidate]; !repeated {
			used[candidate] = struct{}{}
			return candidate, nil
		}

		next, err := a.newID()
		if err != nil {
			return "", fmt.Errorf("erro ao gerar ID sintético: %w", err)
		}
		candidate = next
	}

	return "", errors.New("não foi possível gerar ID sintético único")
}

// ToRawItems converte a lista decodificada da origem; entradas que não são
// objetos viram nil e são descartadas na montagem.
func ToRawItems(values []any) []RawItem {
	items := make([]RawItem, 0, len(values))
	for _, value := range values {
		switch v := value.(type) {
		case map[string]any:
			items = append(items, RawItem(v))
		case RawItem:
			items = append(items, v)
		default:
			items = append(items, nil)
		}
	}
	return items
}

func displayID(id string, suffix int) string {
	runes := []rune(id)
	if suffix > 0 && len(runes) > suffix {
		runes = runes[len(runes)-suffix:]
	}
	return "AD-" + string(runes)
}
