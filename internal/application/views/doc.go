// Package views deriva vistas filtradas y agregados a partir de una instantánea de colección.
// Funciones puras: sin I/O ni estado compartido.
package views
