// Package store implementa el almacén reconciliador de registros: una vista única y consistente
// de una colección acotada a un parlor, combinando el backend remoto con una caché local.
//
// Reglas:
//   - Lectura: remoto primero; si falla, la última instantánea persistida en la caché.
//   - Escritura: remoto primero; si falla, se guarda localmente y el resultado queda etiquetado.
//   - Borrado: solo tras confirmación remota (nunca optimista).
//   - Reconciliación: el remoto manda sobre cualquier registro local con el mismo id; solo los
//     registros con id local sobreviven sin contraparte remota.
//
// Caso conocido de pérdida de datos: una edición offline de un registro ya sincronizado se descarta
// en la siguiente carga exitosa, porque el remoto siempre gana por id (no hay comparación de
// timestamps).
package store
