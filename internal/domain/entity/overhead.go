package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sigitdim/fortisapp-sub002/internal/domain"
)

// Overhead is a recurring monthly operating cost (rent, electricity, gas...).
type Overhead struct {
	ID           string
	OwnerID      string
	Nama         string
	BiayaBulanan decimal.Decimal
	Catatan      string
	Aktif        bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (o *Overhead) Key() string        { return o.ID }
func (o *Overhead) Owner() string      { return o.OwnerID }
func (o *Overhead) Created() time.Time { return o.CreatedAt }

func (o *Overhead) Stamp(id, ownerID string, created, updated time.Time) {
	o.ID, o.OwnerID, o.CreatedAt, o.UpdatedAt = id, ownerID, created, updated
}

func (o *Overhead) Validate() error {
	if strings.TrimSpace(o.Nama) == "" {
		return domain.Invalid("nama is required")
	}
	if o.BiayaBulanan.IsNegative() {
		return domain.Invalid("biaya_bulanan must not be negative")
	}
	return nil
}

// TenagaKerja is a labor cost line (monthly salary of one role or person).
type TenagaKerja struct {
	ID          string
	OwnerID     string
	Nama        string
	GajiBulanan decimal.Decimal
	Aktif       bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t *TenagaKerja) Key() string        { return t.ID }
func (t *TenagaKerja) Owner() string      { return t.OwnerID }
func (t *TenagaKerja) Created() time.Time { return t.CreatedAt }

func (t *TenagaKerja) Stamp(id, ownerID string, created, updated time.Time) {
	t.ID, t.OwnerID, t.CreatedAt, t.UpdatedAt = id, ownerID, created, updated
}

func (t *TenagaKerja) Validate() error {
	if strings.TrimSpace(t.Nama) == "" {
		return domain.Invalid("nama is required")
	}
	if t.GajiBulanan.IsNegative() {
		return domain.Invalid("gaji_bulanan must not be negative")
	}
	return nil
}
