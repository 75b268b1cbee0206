package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// ErrRemoteUnavailable: fallo transitorio del backend remoto (red, timeout, servicio caído).
	// Se recupera localmente con la caché.
	ErrRemoteUnavailable = errors.New("backend remoto no disponible")
	// ErrRemoteRejected: el backend entendió la petición y la rechazó (validación, permisos, FK).
	ErrRemoteRejected = errors.New("petición rechazada por el backend remoto")
	// ErrCacheCorrupt: la instantánea local no se pudo deserializar; se trata como caché vacía.
	ErrCacheCorrupt = errors.New("caché local corrupta")
)

