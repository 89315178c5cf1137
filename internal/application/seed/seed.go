// Package seed carga los datos de demostración la primera vez que se abre un
// almacén vacío. Es idempotente: cada colección se siembra solo si está vacía.
package seed

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

type seedUser struct {
	username string
	name     string
	role     string
	password string
}

type seedItem struct {
	code     string
	name     string
	category string
	itemType string
	stock    int
	min      int
	barcode  string
}

var (
	defaultUsers = []seedUser{
		{"admin", "Admin de Almacén", entity.RoleAdmin, "admin123"},
		{"staff", "Personal de Almacén", entity.RoleStaff, "staff123"},
		{"manager", "Gerente de Almacén", entity.RoleManager, "manager123"},
		{"production", "Gerente de Producción", entity.RoleProduction, "production123"},
	}

	defaultCategories = []string{"Plástico", "Tinta", "Madera", "Papel", "Papelería"}

	defaultItems = []seedItem{
		{"MP-PLS-01", "Granulado Plástico", "Plástico", entity.ItemTypeRawMaterial, 500, 100, "PLS001"},
		{"MP-TNT-01", "Tinta Azul", "Tinta", entity.ItemTypeRawMaterial, 200, 50, "TNT001"},
		{"PT-BOL-01", "Bolígrafo Azul", "Papelería", entity.ItemTypeFinishedGood, 1000, 200, "BOL001"},
	}
)

// Run siembra usuarios, categorías e ítems de demostración en las
// colecciones que estén vacías. Las contraseñas se persisten como hash bcrypt.
func Run(
	users repository.UserRepository,
	categories repository.CategoryRepository,
	items repository.ItemRepository,
) error {
	now := time.Now()

	existing, err := users.List()
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		for _, su := range defaultUsers {
			hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hashear credencial de %s: %w", su.username, err)
			}
			u := &entity.User{
				ID:           uuid.New().String(),
				Username:     su.username,
				Name:         su.name,
				Role:         su.role,
				PasswordHash: string(hash),
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := users.Upsert(u); err != nil {
				return err
			}
		}
	}

	existingCats, err := categories.List()
	if err != nil {
		return err
	}
	if len(existingCats) == 0 {
		for _, name := range defaultCategories {
			c := &entity.Category{
				ID:        uuid.New().String(),
				Name:      name,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := categories.Upsert(c); err != nil {
				return err
			}
		}
	}

	existingItems, err := items.List()
	if err != nil {
		return err
	}
	if len(existingItems) == 0 {
		for _, si := range defaultItems {
			it := &entity.Item{
				ID:        uuid.New().String(),
				Code:      si.code,
				Name:      si.name,
				Category:  si.category,
				Type:      si.itemType,
				Stock:     si.stock,
				Min:       si.min,
				Barcode:   si.barcode,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := items.Upsert(it); err != nil {
				return err
			}
		}
	}

	return nil
}
