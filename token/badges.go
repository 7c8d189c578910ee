// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/storage"
	"github.com/bitmark-inc/badged/util"
	"github.com/bitmark-inc/logger"
)

// key in BadgeCollections for the collection creation nonce
var collectionNonceKey = []byte("nonce")

// Collection - a soulbound badge collection
type Collection struct {
	Address     common.Address `json:"address"`
	Name        string         `json:"name"`
	Symbol      string         `json:"symbol"`
	Creator     common.Address `json:"creator"`
	TotalSupply uint64         `json:"totalSupply,string"`
}

// Badges - the badge token service
type Badges struct {
	log *logger.L
}

// NewBadges - create the badge token service
func NewBadges() *Badges {
	return &Badges{
		log: logger.New("badgetoken"),
	}
}

// Create - new badge collection owned by its creator
func (b *Badges) Create(trx storage.Transaction, creator common.Address, name string, symbol string) (common.Address, error) {
	if (common.Address{}) == creator {
		return common.Address{}, fault.ErrInvalidAddress
	}
	if "" == name || "" == symbol {
		return common.Address{}, fault.ErrMissingParameters
	}

	nonce, _ := trx.GetN(storage.Pool.BadgeCollections, collectionNonceKey)
	badge := crypto.CreateAddress(creator, nonce)
	trx.PutN(storage.Pool.BadgeCollections, collectionNonceKey, nonce+1)

	if trx.Has(storage.Pool.BadgeCollections, badge.Bytes()) {
		return common.Address{}, fault.ErrTokenAlreadyExists
	}

	b.writeCollection(trx, Collection{
		Address:     badge,
		Name:        name,
		Symbol:      symbol,
		Creator:     creator,
		TotalSupply: 0,
	})

	b.log.Infof("created collection: %s  %q (%s)  creator: %s", badge.Hex(), name, symbol, creator.Hex())
	return badge, nil
}

// Get - collection details
func (b *Badges) Get(trx storage.Transaction, badge common.Address) (Collection, error) {
	record := trx.Get(storage.Pool.BadgeCollections, badge.Bytes())
	if nil == record {
		return Collection{}, fault.ErrUnknownBadge
	}

	u := util.NewUnpacker(record)
	c := Collection{
		Address:     badge,
		Name:        u.String(),
		Symbol:      u.String(),
		Creator:     common.BytesToAddress(u.Bytes()),
		TotalSupply: u.Uint64(),
	}
	if err := u.Err(); nil != err {
		logger.Panicf("badgetoken: collection: %s  corrupt record: %x  error: %s", badge.Hex(), record, err)
	}
	return c, nil
}

// SetAuthorised - allow or deny a minter, only the creator may do this
func (b *Badges) SetAuthorised(trx storage.Transaction, caller common.Address, badge common.Address, minter common.Address, authorised bool) error {
	c, err := b.Get(trx, badge)
	if nil != err {
		return err
	}
	if caller != c.Creator {
		return fault.ErrUnauthorised
	}

	key := append(badge.Bytes(), minter.Bytes()...)
	if authorised {
		trx.Put(storage.Pool.BadgeMinters, key, []byte{0x01})
	} else {
		trx.Delete(storage.Pool.BadgeMinters, key)
	}

	b.log.Infof("collection: %s  minter: %s  authorised: %v", badge.Hex(), minter.Hex(), authorised)
	return nil
}

// IsAuthorised - check a minter
func (b *Badges) IsAuthorised(trx storage.Transaction, badge common.Address, minter common.Address) bool {
	key := append(badge.Bytes(), minter.Bytes()...)
	return trx.Has(storage.Pool.BadgeMinters, key)
}

// Mint - create the next token of a collection for a recipient
//
// token ids are sequential from zero
func (b *Badges) Mint(trx storage.Transaction, badge common.Address, minter common.Address, recipient common.Address, tokenURI string) (uint64, error) {
	c, err := b.Get(trx, badge)
	if nil != err {
		return 0, err
	}
	if !b.IsAuthorised(trx, badge, minter) {
		return 0, fault.ErrUnauthorisedMinter
	}
	if (common.Address{}) == recipient {
		return 0, fault.ErrInvalidAddress
	}

	tokenId := c.TotalSupply
	record := append(recipient.Bytes(), []byte(tokenURI)...)
	trx.Put(storage.Pool.BadgeTokens, tokenKey(badge, tokenId), record)

	c.TotalSupply += 1
	b.writeCollection(trx, c)

	b.log.Debugf("collection: %s  minted: %d  to: %s", badge.Hex(), tokenId, recipient.Hex())
	return tokenId, nil
}

// OwnerOf - holder of a token
func (b *Badges) OwnerOf(trx storage.Transaction, badge common.Address, tokenId uint64) (common.Address, error) {
	record, err := b.token(trx, badge, tokenId)
	if nil != err {
		return common.Address{}, err
	}
	return common.BytesToAddress(record[:common.AddressLength]), nil
}

// TokenURI - metadata location of a token
func (b *Badges) TokenURI(trx storage.Transaction, badge common.Address, tokenId uint64) (string, error) {
	record, err := b.token(trx, badge, tokenId)
	if nil != err {
		return "", err
	}
	return string(record[common.AddressLength:]), nil
}

// TotalSupply - number of tokens minted in a collection
func (b *Badges) TotalSupply(trx storage.Transaction, badge common.Address) (uint64, error) {
	c, err := b.Get(trx, badge)
	if nil != err {
		return 0, err
	}
	return c.TotalSupply, nil
}

func (b *Badges) token(trx storage.Transaction, badge common.Address, tokenId uint64) ([]byte, error) {
	record := trx.Get(storage.Pool.BadgeTokens, tokenKey(badge, tokenId))
	if nil == record {
		return nil, fault.ErrTokenNotFound
	}
	if len(record) < common.AddressLength {
		logger.Panicf("badgetoken: collection: %s  token: %d  truncated record: %x", badge.Hex(), tokenId, record)
	}
	return record, nil
}

func (b *Badges) writeCollection(trx storage.Transaction, c Collection) {
	record := util.Packed{}.
		PackString(c.Name).
		PackString(c.Symbol).
		PackBytes(c.Creator.Bytes()).
		PackUint64(c.TotalSupply)
	trx.Put(storage.Pool.BadgeCollections, c.Address.Bytes(), record)
}

// badge ++ token id
func tokenKey(badge common.Address, tokenId uint64) []byte {
	key := make([]byte, common.AddressLength+8)
	copy(key, badge.Bytes())
	binary.BigEndian.PutUint64(key[common.AddressLength:], tokenId)
	return key
}
