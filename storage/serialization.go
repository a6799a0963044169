// Copyright 2025 Poiesic Systems
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

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/prodsearch/core"
)

// MarshalProductID serializes a product ID to bytes.
func MarshalProductID(id int) []byte {
	buf := make([]byte, varint.Int.Size(id))
	varint.Int.Marshal(id, buf)
	return buf
}

// UnmarshalProductID deserializes a product ID from bytes.
func UnmarshalProductID(data []byte) (int, error) {
	id, _, err := varint.Int.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return id, nil
}

func productSize(p *core.Product) int {
	return varint.Int.Size(p.ID) +
		ord.String.Size(p.Name) +
		ord.String.Size(p.Description) +
		ord.String.Size(p.Category)
}

// MarshalProduct serializes a Product to bytes.
// Fields are written in declaration order: ID, Name, Description, Category.
func MarshalProduct(p *core.Product) []byte {
	buf := make([]byte, productSize(p))
	n := varint.Int.Marshal(p.ID, buf)
	n += ord.String.Marshal(p.Name, buf[n:])
	n += ord.String.Marshal(p.Description, buf[n:])
	ord.String.Marshal(p.Category, buf[n:])
	return buf
}

// UnmarshalProduct deserializes a Product from bytes.
func UnmarshalProduct(data []byte) (*core.Product, error) {
	var (
		p   core.Product
		n   int
		err error
	)
	fail := func(field string, err error) (*core.Product, error) {
		return nil, fmt.Errorf("%w: product %s: %w", ErrSerializationFailed, field, err)
	}

	var used int
	if p.ID, used, err = varint.Int.Unmarshal(data); err != nil {
		return fail("id", err)
	}
	n += used
	if p.Name, used, err = ord.String.Unmarshal(data[n:]); err != nil {
		return fail("name", err)
	}
	n += used
	if p.Description, used, err = ord.String.Unmarshal(data[n:]); err != nil {
		return fail("description", err)
	}
	n += used
	if p.Category, used, err = ord.String.Unmarshal(data[n:]); err != nil {
		return fail("category", err)
	}
	n += used
	if n != len(data) {
		return fail("trailer", fmt.Errorf("%d unread bytes", len(data)-n))
	}
	return &p, nil
}
