package badger

import (
	"context"
	"time"

	"github.com/cinerent/gearmatch/core"
	"github.com/cinerent/gearmatch/storage"
	"github.com/dgraph-io/badger/v4"
)

// MaterialRepository implements storage.MaterialRepository for BadgerDB.
type MaterialRepository struct {
	backend *Backend
}

var _ storage.MaterialRepository = (*MaterialRepository)(nil)

// NewMaterialRepository creates a new MaterialRepository.
func NewMaterialRepository(backend *Backend) (*MaterialRepository, error) {
	return &MaterialRepository{
		backend: backend,
	}, nil
}

// Close releases resources. MaterialRepository has no resources to release.
func (r *MaterialRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *MaterialRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddMaterials adds one or more materials to storage.
func (r *MaterialRepository) AddMaterials(ctx context.Context, materials ...*core.Material) ([]*core.Material, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, material := range materials {
			// Use content-based ID if not set
			if material.Id == 0 {
				material.Id = core.IDFromContent(material.Tuple())
			}

			// Set timestamps
			material.InsertedAt = time.Now().UTC()
			material.UpdatedAt = material.InsertedAt

			// Store primary record
			key := makeMaterialKey(material.Id)
			value := storage.MarshalMaterial(material)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Store name index
			nameKey := makeMaterialNameKey(material.Name)
			if err := tx.Set(nameKey, storage.MarshalID(material.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return materials, err
}

// UpdateMaterials updates existing materials.
func (r *MaterialRepository) UpdateMaterials(ctx context.Context, materials ...*core.Material) ([]*core.Material, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, material := range materials {
			key := makeMaterialKey(material.Id)

			// Read old material to detect changes
			old, err := readMaterial(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			// Update timestamp
			material.UpdatedAt = time.Now().UTC()

			// Store updated record
			value := storage.MarshalMaterial(material)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update name index if the name changed
			if old.Name != material.Name {
				oldNameKey := makeMaterialNameKey(old.Name)
				if err := tx.Delete(oldNameKey); err != nil {
					return err
				}
				newNameKey := makeMaterialNameKey(material.Name)
				if err := tx.Set(newNameKey, storage.MarshalID(material.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return materials, err
}

// GetMaterial retrieves a single material by ID.
func (r *MaterialRepository) GetMaterial(ctx context.Context, id core.ID) (*core.Material, error) {
	var result *core.Material
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeMaterialKey(id)
		var err error
		result, err = readMaterial(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// FindMaterialByName finds a material by its exact name.
func (r *MaterialRepository) FindMaterialByName(ctx context.Context, name string) (*core.Material, error) {
	var result *core.Material
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Look up ID from name index
		nameKey := makeMaterialNameKey(name)
		item, err := tx.Get(nameKey)
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var materialID core.ID
		err = item.Value(func(val []byte) error {
			materialID, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return err
		}

		// Look up full material
		materialKey := makeMaterialKey(materialID)
		result, err = readMaterial(tx, materialKey)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetAllMaterials retrieves the full inventory.
func (r *MaterialRepository) GetAllMaterials(ctx context.Context) ([]*core.Material, error) {
	var results []*core.Material
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := []byte(materialPrefix + ":")
		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			item := iter.Item()
			key := item.Key()

			// Stop if we've moved past material keys
			if !hasPrefix(key, prefix) {
				break
			}

			var material *core.Material
			err := item.Value(func(val []byte) error {
				var err error
				material, err = storage.UnmarshalMaterial(val)
				return err
			})
			if err != nil {
				return err
			}

			if material != nil {
				results = append(results, material)
			}
		}
		return nil
	}, false)

	return results, err
}

// Helper methods

// hasPrefix checks if a byte slice has a given prefix
func hasPrefix(s, prefix []byte) bool {
	return len(s) >= len(prefix) && string(s[:len(prefix)]) == string(prefix)
}

// readMaterial reads a material from the transaction.
func readMaterial(tx *badger.Txn, key []byte) (*core.Material, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var material *core.Material
	err = item.Value(func(val []byte) error {
		var err error
		material, err = storage.UnmarshalMaterial(val)
		return err
	})
	return material, err
}
