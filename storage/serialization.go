// Copyright 2026 Cinerent Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package storage

import (
	"fmt"

	"github.com/cinerent/gearmatch/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: id: %w", ErrSerializationFailed, err)
	}
	return id, nil
}

// MarshalReservation serializes a Reservation to bytes.
func MarshalReservation(reservation *core.Reservation) []byte {
	buf := make([]byte, core.ReservationMUS.Size(*reservation))
	core.ReservationMUS.Marshal(*reservation, buf)
	return buf
}

// UnmarshalReservation deserializes a Reservation from bytes.
func UnmarshalReservation(data []byte) (*core.Reservation, error) {
	reservation, _, err := core.ReservationMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: reservation: %w", ErrSerializationFailed, err)
	}
	return &reservation, nil
}

// MarshalMaterial serializes a Material to bytes.
func MarshalMaterial(material *core.Material) []byte {
	buf := make([]byte, core.MaterialMUS.Size(*material))
	core.MaterialMUS.Marshal(*material, buf)
	return buf
}

// UnmarshalMaterial deserializes a Material from bytes.
func UnmarshalMaterial(data []byte) (*core.Material, error) {
	material, _, err := core.MaterialMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: material: %w", ErrSerializationFailed, err)
	}
	return &material, nil
}
