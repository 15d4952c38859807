package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
	appinventory "github.com/sigitdim/fortisapp-sub002/internal/application/inventory"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
)

type InventoryHandler struct {
	uc *appinventory.UseCase
}

func NewInventoryHandler(uc *appinventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Movement returns the handler of POST /inventory/{tipe} for one movement type.
//
// @Summary      Record a stock movement (in, out, adjust, void)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        x-owner-id  header  string               true  "Owner ID"
// @Param        tipe        path    string               true  "in | out | adjust | void"
// @Param        body        body    dto.MovementRequest  true  "Movement"
// @Success      201  {object}  dto.DataResponse{data=dto.MovementResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /inventory/{tipe} [post]
func (h *InventoryHandler) Movement(tipe string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.MovementRequest
		if err := parseBody(c, &in); err != nil {
			return writeError(c, err)
		}
		out, err := h.uc.RecordMovement(c.UserContext(), appinventory.MovementInput{
			OwnerID:   GetOwnerID(c),
			BahanID:   in.BahanID,
			Tipe:      tipe,
			Qty:       in.Qty,
			Catatan:   in.Catatan,
			RefID:     in.RefID,
			HargaBeli: in.HargaBeli,
		})
		if err != nil {
			return writeError(c, err)
		}
		return respondOK(c, fiber.StatusCreated, out)
	}
}

// Summary godoc
// @Summary      Stock balance per ingredient
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        x-owner-id  header  string  true  "Owner ID"
// @Success      200  {object}  dto.DataResponse{data=[]dto.StockSummaryItem}
// @Router       /inventory/summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext(), GetOwnerID(c))
	if err != nil {
		return writeError(c, err)
	}
	return respondOK(c, fiber.StatusOK, out)
}

// History godoc
// @Summary      Ledger entries of one ingredient
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        x-owner-id  header  string  true   "Owner ID"
// @Param        bahan_id    query   string  true   "Ingredient ID"
// @Param        limit       query   int     false  "Most recent N entries"  default(100)
// @Success      200  {object}  dto.DataResponse{data=[]dto.LedgerEntryResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /inventory/history [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.UserContext(), GetOwnerID(c), c.Query("bahan_id"), c.QueryInt("limit", 0))
	if err != nil {
		return writeError(c, err)
	}
	return respondOK(c, fiber.StatusOK, out)
}

var movementTypes = []string{entity.MovementIn, entity.MovementOut, entity.MovementAdjust, entity.MovementVoid}
