package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sigitdim/fortisapp-sub002/internal/application/setup"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
)

// entityRequest is a request body that maps onto an entity.
type entityRequest[T any] interface {
	ToEntity() T
}

// CRUDHandler exposes one setup.Service over list/get/create/update/delete routes.
// Req is the request body type and Resp the response body type of the entity.
type CRUDHandler[T any, P entity.Record[T], Req entityRequest[T], Resp any] struct {
	svc    *setup.Service[T, P]
	toResp func(*T) Resp
}

// NewCRUDHandler takes the request type explicitly; the rest is inferred from svc and toResp.
func NewCRUDHandler[Req entityRequest[T], T any, P entity.Record[T], Resp any](
	svc *setup.Service[T, P],
	toResp func(*T) Resp,
) *CRUDHandler[T, P, Req, Resp] {
	return &CRUDHandler[T, P, Req, Resp]{svc: svc, toResp: toResp}
}

// Register mounts the routes on r.
func (h *CRUDHandler[T, P, Req, Resp]) Register(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *CRUDHandler[T, P, Req, Resp]) List(c *fiber.Ctx) error {
	rows, err := h.svc.List(c.UserContext(), GetOwnerID(c))
	if err != nil {
		return writeError(c, err)
	}
	out := make([]Resp, 0, len(rows))
	for _, r := range rows {
		out = append(out, h.toResp(r))
	}
	return respondOK(c, fiber.StatusOK, out)
}

func (h *CRUDHandler[T, P, Req, Resp]) Get(c *fiber.Ctx) error {
	rec, err := h.svc.Get(c.UserContext(), GetOwnerID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return respondOK(c, fiber.StatusOK, h.toResp(rec))
}

func (h *CRUDHandler[T, P, Req, Resp]) Create(c *fiber.Ctx) error {
	var in Req
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	rec, err := h.svc.Create(c.UserContext(), GetOwnerID(c), in.ToEntity())
	if err != nil {
		return writeError(c, err)
	}
	return respondOK(c, fiber.StatusCreated, h.toResp(rec))
}

func (h *CRUDHandler[T, P, Req, Resp]) Update(c *fiber.Ctx) error {
	var in Req
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	rec, err := h.svc.Update(c.UserContext(), GetOwnerID(c), c.Params("id"), in.ToEntity())
	if err != nil {
		return writeError(c, err)
	}
	return respondOK(c, fiber.StatusOK, h.toResp(rec))
}

func (h *CRUDHandler[T, P, Req, Resp]) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), GetOwnerID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return respondOK(c, fiber.StatusOK, fiber.Map{"id": c.Params("id"), "deleted": true})
}
