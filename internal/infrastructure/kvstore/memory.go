package kvstore

import (
	"encoding/json"
	"fmt"
	"sync"
)

var _ Driver = (*MemoryDriver)(nil)

// MemoryDriver implementación en memoria del Driver. Guarda cada colección
// como JSON serializado, igual que el driver persistente, de modo que las
// lecturas devuelven siempre copias frescas y nunca comparten estado mutable
// con el caller.
type MemoryDriver struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryDriver construye un driver vacío.
func NewMemoryDriver() *MemoryDriver {
	return &MemoryDriver{data: make(map[string][]byte)}
}

// Load deserializa el valor bajo key en dest. Clave ausente o JSON corrupto
// dejan dest con su valor por defecto.
func (d *MemoryDriver) Load(key string, dest any) {
	d.mu.RLock()
	raw, ok := d.data[key]
	d.mu.RUnlock()
	if !ok {
		return
	}
	decodeInto(raw, dest)
}

// Save serializa value como JSON y lo guarda bajo key.
func (d *MemoryDriver) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar %q: %w", key, err)
	}
	d.mu.Lock()
	d.data[key] = raw
	d.mu.Unlock()
	return nil
}

// SaveRaw guarda bytes ya serializados bajo key (importación de snapshots).
func (d *MemoryDriver) SaveRaw(key string, raw []byte) {
	d.mu.Lock()
	d.data[key] = append([]byte(nil), raw...)
	d.mu.Unlock()
}

// Close no hace nada en el driver en memoria.
func (d *MemoryDriver) Close() error { return nil }
