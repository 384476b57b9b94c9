package storage

import "strings"

// Resolver göreli resim yollarını S3 base URL'ine göre tam adrese çevirir.
// Feed'deki kayıtlar hem tam URL hem de bucket içi yol içerebiliyor.
type Resolver struct {
	baseURL string
}

func NewResolver(baseURL string) *Resolver {
	return &Resolver{baseURL: baseURL}
}

// Resolve http ile başlayan adresleri olduğu gibi bırakır,
// diğerlerini base URL ile birleştirir
func (r *Resolver) Resolve(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http") {
		return path
	}

	base := r.baseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + strings.TrimPrefix(path, "/")
}

// ResolveAll galeri listesi için toplu çözümleme
func (r *Resolver) ResolveAll(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	resolved := make([]string, len(paths))
	for i, p := range paths {
		resolved[i] = r.Resolve(p)
	}
	return resolved
}
