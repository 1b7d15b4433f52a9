package geo

import (
	"context"
	"strings"

	"github.com/avc-dev/shortlink/internal/model"
)

// Resolver определяет местоположение посетителя по данным запроса
type Resolver interface {
	Resolve(ctx context.Context, visit model.Visit) string
}

// Placeholder всегда возвращает одну и ту же строку.
// Используется, пока реальная геолокация не подключена.
type Placeholder struct {
	location string
}

func NewPlaceholder(location string) Placeholder {
	return Placeholder{location: location}
}

func (p Placeholder) Resolve(context.Context, model.Visit) string {
	return p.location
}

// unknownCountry значение, которое CDN подставляют, когда страна не определена
const unknownCountry = "XX"

// HeaderResolver берёт страну из заголовка, который проставляет CDN или балансировщик
// (например CF-IPCountry), и откатывается на fallback, если заголовка нет.
type HeaderResolver struct {
	header   string
	fallback Resolver
}

func NewHeaderResolver(header string, fallback Resolver) *HeaderResolver {
	return &HeaderResolver{
		header:   header,
		fallback: fallback,
	}
}

func (r *HeaderResolver) Resolve(ctx context.Context, visit model.Visit) string {
	if visit.Header != nil {
		value := strings.TrimSpace(visit.Header.Get(r.header))
		if value != "" && !strings.EqualFold(value, unknownCountry) {
			return value
		}
	}

	return r.fallback.Resolve(ctx, visit)
}
