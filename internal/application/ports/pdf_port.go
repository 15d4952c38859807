package ports

import (
	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
)

// CostSheetGenerator renders an HPP cost sheet as PDF bytes.
type CostSheetGenerator interface {
	GenerateCostSheet(sheet dto.CostSheet) ([]byte, error)
}
