package kvstore

import (
	"encoding/json"
	"reflect"
)

// Claves de las colecciones persistidas. Cada una guarda una secuencia de
// registros cuyo orden de inserción es el orden canónico.
const (
	KeyItems        = "items"
	KeyCategories   = "categories"
	KeyUsers        = "users"
	KeyTransactions = "transactions"
)

// Driver es el contrato de almacenamiento clave-valor que consume el núcleo.
// Load nunca falla: ante clave ausente o datos corruptos, dest conserva el
// valor por defecto que traía el caller. Save persiste el valor serializado
// como JSON.
type Driver interface {
	Load(key string, dest any)
	Save(key string, value any) error
	Close() error
}

// decodeInto deserializa raw sobre una copia fresca del tipo de dest y solo
// asigna si el JSON es válido completo. Evita dejar dest a medio llenar
// cuando los datos están corruptos.
func decodeInto(raw []byte, dest any) {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return
	}
	tmp := reflect.New(rv.Type().Elem())
	if err := json.Unmarshal(raw, tmp.Interface()); err != nil {
		return
	}
	rv.Elem().Set(tmp.Elem())
}
