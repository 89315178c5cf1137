package kvstore

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite" // driver sqlite puro Go
)

var _ Driver = (*SQLiteDriver)(nil)

// SQLiteDriver implementación persistente del Driver sobre una única tabla
// clave-valor en SQLite local. Sin red, sin servidor: un archivo.
type SQLiteDriver struct {
	db *sql.DB
}

// NewSQLiteDriver abre (o crea) la base en path y asegura el esquema.
func NewSQLiteDriver(path string) (*SQLiteDriver, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite %q: %w", path, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear esquema kv: %w", err)
	}
	return &SQLiteDriver{db: db}, nil
}

// Load deserializa el valor bajo key en dest. Clave ausente, error de lectura
// o JSON corrupto dejan dest con su valor por defecto: el contrato Load nunca
// propaga fallos.
func (d *SQLiteDriver) Load(key string, dest any) {
	var raw string
	err := d.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		// clave ausente o fila ilegible: mismo tratamiento, dest queda en default
		return
	}
	decodeInto([]byte(raw), dest)
}

// Save serializa value como JSON y hace upsert bajo key.
func (d *SQLiteDriver) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar %q: %w", key, err)
	}
	_, err = d.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(raw))
	if err != nil {
		return fmt.Errorf("guardar %q: %w", key, err)
	}
	return nil
}

// Close cierra la base.
func (d *SQLiteDriver) Close() error {
	return d.db.Close()
}
