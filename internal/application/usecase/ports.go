package usecase

import (
	"context"

	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una misma sección crítica del
// almacén. Toda secuencia verificar-escribir de los maestros (unicidad de
// código, username o nombre de categoría; guards referenciales de borrado)
// corre bajo este runner, igual que el motor de aprobación corre bajo el suyo:
// el chequeo y la escritura son una sola unidad frente a escritores
// concurrentes.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		items repository.ItemRepository,
		categories repository.CategoryRepository,
		users repository.UserRepository,
		txs repository.TransactionRepository,
	) error) error
}
