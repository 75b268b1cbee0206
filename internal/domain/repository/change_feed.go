package repository

import "context"

// ChangeFeed canal de notificaciones de cambios remotos.
// Entrega al menos una vez y sin orden garantizado entre notificaciones.
type ChangeFeed interface {
	// Subscribe registra fn para la colección y parlor indicados. La función devuelta
	// cancela la suscripción.
	Subscribe(collection, parlorID string, fn func()) (unsubscribe func())
}

// Listener lo implementan los feeds que necesitan un bucle de escucha propio.
type Listener interface {
	Listen(ctx context.Context) error
}
