package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sigitdim/fortisapp-sub002/internal/application/inventory"
	"github.com/sigitdim/fortisapp-sub002/internal/application/pricing"
	"github.com/sigitdim/fortisapp-sub002/internal/application/setup"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/costing"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/repository"
)

var (
	_ repository.BahanRepository         = (*Table[entity.Bahan, *entity.Bahan])(nil)
	_ repository.KomposisiRepository     = (*KomposisiTable)(nil)
	_ repository.InventoryLogRepository  = (*InventoryLogs)(nil)
	_ repository.PricingLogRepository    = (*PricingLogs)(nil)
	_ repository.BahanPriceLogRepository = (*BahanPriceLogs)(nil)
	_ repository.SettingsRepository      = (*Settings)(nil)
	_ repository.LicenseRepository       = (*Licenses)(nil)
	_ repository.AllocationSource        = (*Store)(nil)
	_ inventory.TxRunner                 = (*Store)(nil)
	_ pricing.TxRunner                   = (*Store)(nil)
	_ setup.TxRunner                     = (*Store)(nil)
)

// Store holds every table of one process.
type Store struct {
	txMu         sync.Mutex
	defaultPorsi decimal.Decimal

	Bahan          *Table[entity.Bahan, *entity.Bahan]
	Produk         *Table[entity.Produk, *entity.Produk]
	Komposisi      *KomposisiTable
	Overhead       *Table[entity.Overhead, *entity.Overhead]
	TenagaKerja    *Table[entity.TenagaKerja, *entity.TenagaKerja]
	Promo          *Table[entity.Promo, *entity.Promo]
	InventoryLogs  *InventoryLogs
	PricingLogs    *PricingLogs
	BahanPriceLogs *BahanPriceLogs
	Settings       *Settings
	Licenses       *Licenses
}

// NewStore builds an empty store. defaultPorsi is the allocation basis for owners without settings.
func NewStore(defaultPorsi decimal.Decimal) *Store {
	return &Store{
		defaultPorsi:   defaultPorsi,
		Bahan:          NewTable[entity.Bahan, *entity.Bahan]("bahan"),
		Produk:         NewTable[entity.Produk, *entity.Produk]("produk"),
		Komposisi:      &KomposisiTable{NewTable[entity.Komposisi, *entity.Komposisi]("komposisi")},
		Overhead:       NewTable[entity.Overhead, *entity.Overhead]("overhead"),
		TenagaKerja:    NewTable[entity.TenagaKerja, *entity.TenagaKerja]("tenaga_kerja"),
		Promo:          NewTable[entity.Promo, *entity.Promo]("promo"),
		InventoryLogs:  &InventoryLogs{},
		PricingLogs:    &PricingLogs{},
		BahanPriceLogs: &BahanPriceLogs{},
		Settings:       &Settings{rows: make(map[string]entity.OwnerSettings)},
		Licenses:       &Licenses{rows: make(map[string]entity.License)},
	}
}

// RunPricing writes a product price and its audit row together or not at all.
func (s *Store) RunPricing(_ context.Context, _ string, fn func(
	produkRepo repository.ProdukRepository,
	logRepo repository.PricingLogRepository,
) error) error {
	return s.run(func(j *journal) error {
		return fn(txTable[entity.Produk, *entity.Produk]{s.Produk, j}, txPricingLogs{s.PricingLogs, j})
	})
}

// RunInventory writes a ledger entry and any price re-average together or not at all.
func (s *Store) RunInventory(_ context.Context, _ string, fn func(
	bahanRepo repository.BahanRepository,
	logRepo repository.InventoryLogRepository,
	priceLogRepo repository.BahanPriceLogRepository,
) error) error {
	return s.run(func(j *journal) error {
		return fn(
			txTable[entity.Bahan, *entity.Bahan]{s.Bahan, j},
			txInventoryLogs{s.InventoryLogs, j},
			txBahanPriceLogs{s.BahanPriceLogs, j},
		)
	})
}

// RunBahan writes an ingredient and its price log together or not at all.
func (s *Store) RunBahan(_ context.Context, _ string, fn func(
	bahanRepo repository.BahanRepository,
	priceLogRepo repository.BahanPriceLogRepository,
) error) error {
	return s.run(func(j *journal) error {
		return fn(txTable[entity.Bahan, *entity.Bahan]{s.Bahan, j}, txBahanPriceLogs{s.BahanPriceLogs, j})
	})
}

// PerPortion sums active overhead and labor and spreads them over the owner's monthly portions.
func (s *Store) PerPortion(ctx context.Context, ownerID string) (*repository.Allocation, error) {
	var a repository.Allocation
	overhead, _ := s.Overhead.List(ctx, ownerID)
	for _, o := range overhead {
		if o.Aktif {
			a.OverheadBulanan = a.OverheadBulanan.Add(o.BiayaBulanan)
		}
	}
	labor, _ := s.TenagaKerja.List(ctx, ownerID)
	for _, t := range labor {
		if t.Aktif {
			a.TenagaKerjaBulanan = a.TenagaKerjaBulanan.Add(t.GajiBulanan)
		}
	}
	a.PorsiBulanan = s.defaultPorsi
	if st, _ := s.Settings.Get(ctx, ownerID); st != nil && st.PorsiBulanan != nil {
		a.PorsiBulanan = *st.PorsiBulanan
	}
	a.OverheadPerPorsi, _ = costing.Allocate(a.OverheadBulanan, a.PorsiBulanan)
	a.TenagaKerjaPerPorsi, _ = costing.Allocate(a.TenagaKerjaBulanan, a.PorsiBulanan)
	return &a, nil
}

type Settings struct {
	mu   sync.RWMutex
	rows map[string]entity.OwnerSettings
}

func (s *Settings) Get(_ context.Context, ownerID string) (*entity.OwnerSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.rows[ownerID]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (s *Settings) Upsert(_ context.Context, v *entity.OwnerSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[v.OwnerID] = *v
	return nil
}

type Licenses struct {
	mu   sync.RWMutex
	rows map[string]entity.License
}

// Grant activates a license for ownerID; a nil expiry never expires.
func (l *Licenses) Grant(ownerID string, expiresAt *time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rows[ownerID] = entity.License{OwnerID: ownerID, Active: true, ExpiresAt: expiresAt}
}

func (l *Licenses) GetByOwner(_ context.Context, ownerID string) (*entity.License, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	v, ok := l.rows[ownerID]
	if !ok {
		return nil, nil
	}
	return &v, nil
}
