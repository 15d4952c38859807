package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementRequest body of POST /inventory/{tipe}. RefID is only read for void and
// HargaBeli only for in.
type MovementRequest struct {
	BahanID   string           `json:"bahan_id"`
	Qty       decimal.Decimal  `json:"qty"`
	Catatan   string           `json:"catatan"`
	RefID     *string          `json:"ref_id"`
	HargaBeli *decimal.Decimal `json:"harga_beli"`
}

type MovementResponse struct {
	ID          string           `json:"id"`
	BahanID     string           `json:"bahan_id"`
	Tipe        string           `json:"tipe"`
	Before      decimal.Decimal  `json:"before"`
	After       decimal.Decimal  `json:"after"`
	HargaSatuan *decimal.Decimal `json:"harga_satuan,omitempty"`
}

type StockSummaryItem struct {
	BahanID   string          `json:"bahan_id"`
	BahanNama string          `json:"bahan_nama"`
	Satuan    string          `json:"satuan"`
	Saldo     decimal.Decimal `json:"saldo"`
	Low       bool            `json:"low"`
}

type LedgerEntryResponse struct {
	ID          string          `json:"id"`
	BahanID     string          `json:"bahan_id"`
	Tipe        string          `json:"tipe"`
	Qty         decimal.Decimal `json:"qty"`
	Catatan     string          `json:"catatan,omitempty"`
	RefID       *string         `json:"ref_id,omitempty"`
	SaldoBefore decimal.Decimal `json:"saldo_before"`
	SaldoAfter  decimal.Decimal `json:"saldo_after"`
	Voided      bool            `json:"voided"`
	CreatedAt   time.Time       `json:"created_at"`
}
