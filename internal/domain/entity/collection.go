package entity

// Nombres de colección. Cada uno usa una clave de caché distinta.
const (
	CollectionCases    = "cases"
	CollectionClients  = "clients"
	CollectionTasks    = "tasks"
	CollectionPayments = "payments"
)
