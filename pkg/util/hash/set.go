// Copyright akinovak
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package hash

import (
	"bytes"
	"hash/fnv"
)

// Hasher provides a generic definition of a hashing function suitable for use
// within the Set.  Equality is included because the set must distinguish
// genuinely distinct items whose hashcodes collide.
type Hasher[T any] interface {
	// Check whether two items are equal (or not).
	Equals(T) bool
	// Return a suitable hashcode.
	Hash() uint64
}

// Set is a simple hashset which handles collisions gracefully using buckets,
// rather than assuming the hash function uniquely identifies the item.  The
// lookup checker stores (potentially many) table rows in here, hence the
// conservative design.
type Set[T Hasher[T]] struct {
	// items maps hashcodes to *buckets* of items.
	items map[uint64]setBucket[T]
}

// NewSet creates a new Set with a given underlying capacity.
func NewSet[T Hasher[T]](size uint) *Set[T] {
	items := make(map[uint64]setBucket[T], size)
	return &Set[T]{items}
}

// Size returns the number of unique items stored in this Set.
func (p *Set[T]) Size() uint {
	count := uint(0)
	for _, b := range p.items {
		count += uint(len(b.items))
	}

	return count
}

// Insert a new item into this set, returning true if it was already contained
// and false otherwise.
func (p *Set[T]) Insert(item T) bool {
	// Compute item's hashcode
	hash := item.Hash()
	// Lookup existing bucket
	b := p.items[hash]
	// Insert new item
	r := b.insert(item)
	// Update map
	p.items[hash] = b
	// Done
	return r
}

// Contains checks whether the given item is contained within this set, or not.
func (p *Set[T]) Contains(item T) bool {
	if bucket, ok := p.items[item.Hash()]; ok {
		return bucket.contains(item)
	}

	return false
}

// ============================================================================
// Bucket
// ============================================================================

type setBucket[T Hasher[T]] struct {
	items []T
}

// Insert a new item into this bucket.
func (b *setBucket[T]) insert(item T) bool {
	if b.contains(item) {
		// Item already present, so nothing to do.
		return true
	}
	// Append item
	b.items = append(b.items, item)
	// Item not present
	return false
}

// Check whether this bucket contains a given item, or not.
func (b *setBucket[T]) contains(item T) bool {
	for _, i := range b.items {
		if item.Equals(i) {
			return true
		}
	}
	//
	return false
}

// ============================================================================
// BytesKey
// ============================================================================

var _ Hasher[BytesKey] = BytesKey{}

// BytesKey wraps a byte array as something which can be safely placed into a
// Set.  The wrapped bytes are copied, since callers typically reuse their
// buffer between insertions.
type BytesKey struct {
	bytes []byte
}

// NewBytesKey constructs a new bytes key.
func NewBytesKey(data []byte) BytesKey {
	owned := make([]byte, len(data))
	copy(owned, data)
	//
	return BytesKey{owned}
}

// Equals compares two BytesKeys to check whether they represent the same
// underlying byte array (or not).
func (p BytesKey) Equals(other BytesKey) bool {
	return bytes.Equal(p.bytes, other.bytes)
}

// Hash generates a 64-bit hashcode from the underlying byte array.
func (p BytesKey) Hash() uint64 {
	hash := fnv.New64a()
	hash.Write(p.bytes)
	// Done
	return hash.Sum64()
}
