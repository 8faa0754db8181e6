package normalizing

import (
	"strings"
	"time"

	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/pkg/utils"
)

// ExtractedFields são os campos descritivos já resolvidos pelas regras do schema.
type ExtractedFields struct {
	ID      string
	IDFound bool

	Headline       string
	Body           string
	CTAText        string
	DestinationURL string
	Thumbnail      string
	PageName       string

	StartDate      string
	StartDateFound bool
	LastSeen       string
	LastSeenFound  bool

	PublisherPlatforms []string
}

// Resolve devolve o primeiro candidato presente. found é falso quando o
// valor veio do Default.
func (r FieldRule) Resolve(item RawItem) (string, bool) {
	for _, path := range r.Paths {
		if value, ok := item.String(path); ok {
			return value, true
		}
	}
	return r.Default, false
}

// ResolveTimestamp aceita texto (mantido como veio) ou epoch em segundos.
func (r FieldRule) ResolveTimestamp(item RawItem) (string, bool) {
	for _, path := range r.Paths {
		value, ok := item.Lookup(path)
		if !ok {
			continue
		}

		switch v := value.(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return v, true
			}
		default:
			if seconds, ok := utils.ParseNumber(v); ok && seconds > 0 {
				return time.Unix(int64(seconds), 0).UTC().Format(time.RFC3339), true
			}
		}
	}
	return r.Default, false
}

// Extract aplica as regras do schema a um item. Nunca entra em pânico:
// tipos inesperados contam como ausentes.
func Extract(item RawItem, schema Schema) ExtractedFields {
	fields := ExtractedFields{}

	fields.ID, fields.IDFound = schema.ID.Resolve(item)
	fields.Headline, _ = schema.Headline.Resolve(item)
	fields.Body, _ = schema.Body.Resolve(item)
	fields.CTAText, _ = schema.CTAText.Resolve(item)
	fields.DestinationURL, _ = schema.DestinationURL.Resolve(item)
	fields.Thumbnail, _ = schema.Thumbnail.Resolve(item)
	fields.PageName, _ = schema.PageName.Resolve(item)
	fields.StartDate, fields.StartDateFound = schema.StartDate.ResolveTimestamp(item)
	fields.LastSeen, fields.LastSeenFound = schema.LastSeen.ResolveTimestamp(item)

	if schema.PublisherPlatformsPath != "" {
		fields.PublisherPlatforms = stringList(item, schema.PublisherPlatformsPath)
	}

	return fields
}

// ResolvePlatform só devolve Instagram quando é a única plataforma listada.
func ResolvePlatform(platforms []string) domain.Platform {
	if len(platforms) == 0 {
		return domain.PlatformFacebook
	}

	for _, platform := range platforms {
		if !strings.EqualFold(platform, "instagram") {
			return domain.PlatformFacebook
		}
	}

	return domain.PlatformInstagram
}

func stringList(item RawItem, path string) []string {
	values, ok := item.List(path)
	if !ok {
		if single, ok := item.String(path); ok {
			return []string{single}
		}
		return nil
	}

	result := make([]string, 0, len(values))
	for _, value := range values {
		if text, ok := value.(string); ok && text != "" {
			result = append(result, text)
		}
	}
	return result
}
