/**
 * Copyright 2026 The Symtree Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package symbolic

import (
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fingerprints are structural hashes usable as cache and deduplication keys.
// The invariant is consistency with Equal: equal trees hash equally, which
// means the child hashes of commutative operators combine order-insensitively.
// Unequal trees may collide.

func (v *Variable) Fingerprint() uint64 {
	return xxhash.Sum64String("v\x00" + v.Name)
}

func (n *Number) Fingerprint() uint64 {
	val := n.Value
	if val == 0 {
		val = 0 // -0 equals 0, so they must hash equally
	}

	return xxhash.Sum64String("n\x00" + strconv.FormatFloat(val, 'g', -1, 64))
}

func (b *BinaryOp) Fingerprint() uint64 {
	lh := b.L.Fingerprint()
	rh := b.R.Fingerprint()

	if b.Op.commutative() && lh > rh {
		lh, rh = rh, lh
	}

	var buf [18]byte
	buf[0] = 'b'
	buf[1] = byte(b.Op)
	binary.LittleEndian.PutUint64(buf[2:10], lh)
	binary.LittleEndian.PutUint64(buf[10:18], rh)

	return xxhash.Sum64(buf[:])
}
