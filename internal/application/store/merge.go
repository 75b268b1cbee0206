package store

import "github.com/jhoicas/Funeraria-api/internal/domain/entity"

// Merge reconcilia la lista remota con la instantánea local.
//
// Resultado: primero los remotos en su orden, luego los registros creados localmente (id local)
// cuyo id no aparece en el remoto, en el orden de la caché. Un registro cacheado con id de
// servidor que ya no está en el remoto se descarta: fue eliminado en el backend.
// Un id repetido conserva su primera aparición, así que el remoto siempre reemplaza por
// completo al local con el mismo id.
func Merge[T entity.Record[T]](remote, cached []T) []T {
	seen := make(map[string]struct{}, len(remote)+len(cached))
	out := make([]T, 0, len(remote)+len(cached))
	keep := func(it T) {
		id := it.RecordBase().ID
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		out = append(out, it)
	}
	for _, it := range remote {
		keep(it)
	}
	for _, it := range cached {
		if entity.IsLocalID(it.RecordBase().ID) {
			keep(it)
		}
	}
	return out
}
