// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 Trestle Systems
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainrecord

import (
	"encoding/binary"

	"github.com/trestle-systems/chainstore/blockdigest"
	"github.com/trestle-systems/chainstore/fault"
	"github.com/trestle-systems/chainstore/merkle"
)

// byte sizes for the header fields
const (
	VersionSize       = 2
	PreviousBlockSize = blockdigest.Length
	MerkleRootSize    = merkle.DigestLength
	TimestampSize     = 8
)

// offsets of the header fields
const (
	versionOffset       = 0
	previousBlockOffset = versionOffset + VersionSize
	merkleRootOffset    = previousBlockOffset + PreviousBlockSize
	timestampOffset     = merkleRootOffset + MerkleRootSize

	// HeaderSize - total bytes in a packed header
	HeaderSize = timestampOffset + TimestampSize
)

// PackedHeader - use fixed size array to simplify validation
type PackedHeader [HeaderSize]byte

// HeaderMetadata - table-populated state attached to a header value
//
// never packed into a row
type HeaderMetadata struct {
	Error          error  // validation failure reason, nil if valid or unvalidated
	Exists         bool   // a row for this header is stored
	Populated      bool   // the stored row has a transaction association
	Validated      bool   // validation state has been decided
	Candidate      bool   // member of the candidate index
	Confirmed      bool   // member of the confirmed index
	MedianTimePast uint64 // propagated for transaction confirmation
	Height         uint64 // height of the stored row
}

// Header - the unpacked header structure
type Header struct {
	Version       uint16             `json:"version"`
	PreviousBlock blockdigest.Digest `json:"previousBlock"`
	MerkleRoot    merkle.Digest      `json:"merkleRoot"`
	Timestamp     uint64             `json:"timestamp,string"`

	Metadata HeaderMetadata `json:"-"`

	digest *blockdigest.Digest // cached by Hash
}

// Pack - pack a header into its fixed row form
func (header *Header) Pack() PackedHeader {
	var record PackedHeader

	binary.LittleEndian.PutUint16(record[versionOffset:], header.Version)
	copy(record[previousBlockOffset:], header.PreviousBlock[:])
	copy(record[merkleRootOffset:], header.MerkleRoot[:])
	binary.LittleEndian.PutUint64(record[timestampOffset:], header.Timestamp)

	return record
}

// Unpack - turn a byte slice into a header
func (record PackedHeader) Unpack() *Header {
	header := &Header{}

	header.Version = binary.LittleEndian.Uint16(record[versionOffset:])
	copy(header.PreviousBlock[:], record[previousBlockOffset:merkleRootOffset])
	copy(header.MerkleRoot[:], record[merkleRootOffset:timestampOffset])
	header.Timestamp = binary.LittleEndian.Uint64(record[timestampOffset:])

	return header
}

// UnpackHeader - extract a header from the front of a byte slice
func UnpackHeader(buffer []byte) (*Header, error) {
	if len(buffer) < HeaderSize {
		return nil, fault.ErrInvalidBlockHeader
	}
	var record PackedHeader
	copy(record[:], buffer[:HeaderSize])
	return record.Unpack(), nil
}

// Hash - the digest identifying this header
//
// the digest is computed once and cached; a header must not be
// modified after its hash has been taken
func (header *Header) Hash() blockdigest.Digest {
	if nil == header.digest {
		record := header.Pack()
		digest := blockdigest.NewDigest(record[:])
		header.digest = &digest
	}
	return *header.digest
}
