// internal/domain/address/service.go
package address

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Store persists the directory across restarts. The address book is the only
// commerce state that survives a restart.
type Store interface {
	Load() (addresses []Address, selectedID string, err error)
	Save(addresses []Address, selectedID string) error
}

// Directory holds the delivery addresses and resolves the selected and
// default/first address. A single instance is owned per application session
// and injected into consumers.
type Directory struct {
	mu         sync.RWMutex
	addresses  []Address
	selectedID string
	store      Store
	logger     *logrus.Logger
}

// NewDirectory creates a directory rehydrated from the store. A nil store
// yields a purely in-memory directory.
func NewDirectory(store Store, logger *logrus.Logger) (*Directory, error) {
	d := &Directory{store: store, logger: logger}

	if store != nil {
		addresses, selectedID, err := store.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load address book: %w", err)
		}
		d.addresses = addresses
		d.selectedID = selectedID
	}

	return d, nil
}

// AddAddressRequest represents address creation data.
type AddAddressRequest struct {
	Label       string `json:"label" binding:"required,oneof=Home Office Other"`
	HouseNumber string `json:"house_number" binding:"required"`
	Street      string `json:"street" binding:"required"`
	Landmark    string `json:"landmark"`
	Locality    string `json:"locality" binding:"required"`
	IsDefault   bool   `json:"is_default"`
}

// Add creates a new address with a fresh identifier. The new address becomes
// the selected one.
func (d *Directory) Add(req AddAddressRequest) (*Address, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	addr := Address{
		ID:          "addr-" + uuid.New().String(),
		Label:       req.Label,
		HouseNumber: req.HouseNumber,
		Street:      req.Street,
		Landmark:    req.Landmark,
		Locality:    req.Locality,
		IsDefault:   req.IsDefault,
	}

	d.addresses = append(d.addresses, addr)
	d.selectedID = addr.ID

	if err := d.persistLocked(); err != nil {
		return nil, err
	}
	return &addr, nil
}

// Remove deletes an address. If the removed address was selected, selection
// falls back to any remaining address, or to none.
func (d *Directory) Remove(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx := -1
	for i := range d.addresses {
		if d.addresses[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("address %q not found", id)
	}

	d.addresses = append(d.addresses[:idx], d.addresses[idx+1:]...)

	if d.selectedID == id {
		d.selectedID = ""
		if len(d.addresses) > 0 {
			d.selectedID = d.addresses[0].ID
		}
	}

	return d.persistLocked()
}

// Select marks an address as the selected one.
func (d *Directory) Select(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.addresses {
		if d.addresses[i].ID == id {
			d.selectedID = id
			return d.persistLocked()
		}
	}
	return fmt.Errorf("address %q not found", id)
}

// Selected returns the currently selected address, or nil.
func (d *Directory) Selected() *Address {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for i := range d.addresses {
		if d.addresses[i].ID == d.selectedID {
			addr := d.addresses[i]
			return &addr
		}
	}
	return nil
}

// DefaultOrFirst returns the address flagged as default, or the first address
// by insertion order if none is flagged, or nil if the directory is empty.
// The default flag wins over insertion order.
func (d *Directory) DefaultOrFirst() *Address {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for i := range d.addresses {
		if d.addresses[i].IsDefault {
			addr := d.addresses[i]
			return &addr
		}
	}
	if len(d.addresses) > 0 {
		addr := d.addresses[0]
		return &addr
	}
	return nil
}

// List returns all addresses in insertion order.
func (d *Directory) List() []Address {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Address, len(d.addresses))
	copy(out, d.addresses)
	return out
}

func (d *Directory) persistLocked() error {
	if d.store == nil {
		return nil
	}
	if err := d.store.Save(d.addresses, d.selectedID); err != nil {
		if d.logger != nil {
			d.logger.WithError(err).Error("Failed to persist address book")
		}
		return fmt.Errorf("failed to persist address book: %w", err)
	}
	return nil
}
