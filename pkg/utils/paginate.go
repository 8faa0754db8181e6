package utils

import "context"

// PageFetcher busca uma página a partir do cursor e devolve o próximo cursor,
// vazio quando não há mais páginas.
type PageFetcher[T any] func(ctx context.Context, cursor string) (items []T, next string, err error)

// CollectPages percorre as páginas em sequência até acabar o cursor ou até
// acumular pelo menos maxItems. O limite é verificado entre páginas, então a
// última página nunca é cortada. Em erro, nada do que foi acumulado é devolvido.
func CollectPages[T any](ctx context.Context, first string, maxItems int, fetch PageFetcher[T]) ([]T, int, error) {
	var all []T
	cursor := first
	pages := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, pages, err
		}

		items, next, err := fetch(ctx, cursor)
		if err != nil {
			return nil, pages, err
		}

		pages++
		all = append(all, items...)

		if next == "" || (maxItems > 0 && len(all) >= maxItems) {
			break
		}

		cursor = next
	}

	return all, pages, nil
}
