package normalizing

import (
	"strconv"
	"strings"

	"github.com/vfg2006/ads-monitor-api/pkg/utils"
)

// RawItem é um registro de anúncio como veio da origem, sem tipagem.
type RawItem map[string]any

// Lookup resolve caminhos com ponto, aceitando índices de lista
// ("snapshot.cards.0.title"). Valores nulos contam como ausentes.
func (r RawItem) Lookup(path string) (any, bool) {
	if r == nil || path == "" {
		return nil, false
	}

	var current any = map[string]any(r)
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok || value == nil {
				return nil, false
			}
			current = value
		case RawItem:
			value, ok := node[part]
			if !ok || value == nil {
				return nil, false
			}
			current = value
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) || node[index] == nil {
				return nil, false
			}
			current = node[index]
		default:
			return nil, false
		}
	}

	return current, true
}

// String devolve o texto não vazio do caminho. Números viram texto para
// acomodar IDs que algumas origens mandam como número.
func (r RawItem) String(path string) (string, bool) {
	value, ok := r.Lookup(path)
	if !ok {
		return "", false
	}

	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return "", false
		}
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case interface{ String() string }:
		text := v.String()
		return text, strings.TrimSpace(text) != ""
	}

	return "", false
}

func (r RawItem) Bool(path string) (bool, bool) {
	value, ok := r.Lookup(path)
	if !ok {
		return false, false
	}

	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		return parsed, err == nil
	}

	return false, false
}

func (r RawItem) Number(path string) (float64, bool) {
	value, ok := r.Lookup(path)
	if !ok {
		return 0, false
	}
	return utils.ParseNumber(value)
}

func (r RawItem) List(path string) ([]any, bool) {
	value, ok := r.Lookup(path)
	if !ok {
		return nil, false
	}

	list, ok := value.([]any)
	return list, ok
}

// Item devolve o objeto aninhado no caminho.
func (r RawItem) Item(path string) (RawItem, bool) {
	value, ok := r.Lookup(path)
	if !ok {
		return nil, false
	}

	switch v := value.(type) {
	case map[string]any:
		return RawItem(v), true
	case RawItem:
		return v, true
	}

	return nil, false
}
