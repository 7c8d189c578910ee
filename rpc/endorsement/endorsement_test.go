// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package endorsement_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/badged/diamond/mocks"
	"github.com/bitmark-inc/badged/endorsement"
	"github.com/bitmark-inc/badged/fault"
	"github.com/bitmark-inc/badged/fixtures"
	rpcendorsement "github.com/bitmark-inc/badged/rpc/endorsement"
	"github.com/bitmark-inc/logger"
)

func token() *endorsement.TokenArguments {
	return &endorsement.TokenArguments{Badge: fixtures.Badge, TokenId: 0}
}

func TestEndorse(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDispatcher(ctl)
	d.EXPECT().DispatchSignature(gomock.Any(), endorsement.EndorseSignature, token(), fixtures.Bob).Return(nil, nil).Times(1)

	e := rpcendorsement.New(logger.New(fixtures.LogCategory), d)

	arg := rpcendorsement.ChangeArguments{
		Caller: fixtures.Bob,
		Badge:  fixtures.Badge,
	}
	err := e.Endorse(&arg, &rpcendorsement.Reply{})
	assert.Nil(t, err, "wrong Endorse")
}

func TestEndorseDisabled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDispatcher(ctl)
	d.EXPECT().DispatchSignature(gomock.Any(), endorsement.EndorseSignature, token(), fixtures.Bob).Return(nil, fault.ErrEndorsementDisabled).Times(1)

	e := rpcendorsement.New(logger.New(fixtures.LogCategory), d)

	arg := rpcendorsement.ChangeArguments{
		Caller: fixtures.Bob,
		Badge:  fixtures.Badge,
	}
	err := e.Endorse(&arg, &rpcendorsement.Reply{})
	assert.Equal(t, fault.ErrEndorsementDisabled, err, "wrong error")
}

func TestRevokeNothing(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDispatcher(ctl)
	d.EXPECT().DispatchSignature(gomock.Any(), endorsement.RevokeSignature, token(), fixtures.Carol).Return(nil, fault.ErrNoEndorsementToRevoke).Times(1)

	e := rpcendorsement.New(logger.New(fixtures.LogCategory), d)

	arg := rpcendorsement.ChangeArguments{
		Caller: fixtures.Carol,
		Badge:  fixtures.Badge,
	}
	err := e.Revoke(&arg, &rpcendorsement.Reply{})
	assert.Equal(t, fault.ErrNoEndorsementToRevoke, err, "wrong error")
}

func TestTotals(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockDispatcher(ctl)
	d.EXPECT().DispatchSignature(gomock.Any(), endorsement.TotalSignature, token(), common.Address{}).Return(uint64(1), nil).Times(1)
	d.EXPECT().DispatchSignature(gomock.Any(), endorsement.InfoTotalSignature, token(), common.Address{}).Return(uint64(2), nil).Times(1)

	e := rpcendorsement.New(logger.New(fixtures.LogCategory), d)

	arg := rpcendorsement.TokenArguments{Badge: fixtures.Badge}

	var total rpcendorsement.CountReply
	err := e.Total(&arg, &total)
	assert.Nil(t, err, "wrong Total")
	assert.Equal(t, uint64(1), total.Count, "wrong total")

	var info rpcendorsement.CountReply
	err = e.InfoTotal(&arg, &info)
	assert.Nil(t, err, "wrong InfoTotal")
	assert.Equal(t, uint64(2), info.Count, "wrong info total")
}

func TestGet20(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	page := make([]endorsement.Endorsement, endorsement.PageSize)
	page[0] = endorsement.Endorsement{
		Endorser:  fixtures.Bob,
		Timestamp: uint64(fixtures.Now.Unix()),
		Status:    endorsement.Endorsed,
	}

	expected := &endorsement.PageArguments{
		Badge:       fixtures.Badge,
		TokenId:     3,
		Offset:      1,
		SkipRevoked: true,
	}

	d := mocks.NewMockDispatcher(ctl)
	d.EXPECT().DispatchSignature(gomock.Any(), endorsement.Get20Signature, expected, common.Address{}).Return(page, nil).Times(1)

	e := rpcendorsement.New(logger.New(fixtures.LogCategory), d)

	arg := rpcendorsement.PageArguments{
		Badge:       fixtures.Badge,
		TokenId:     3,
		Offset:      1,
		SkipRevoked: true,
	}
	var reply rpcendorsement.PageReply
	err := e.Get20(&arg, &reply)
	assert.Nil(t, err, "wrong Get20")
	assert.Equal(t, endorsement.PageSize, len(reply.Endorsements), "wrong page size")
	assert.Equal(t, fixtures.Bob, reply.Endorsements[0].Endorser, "wrong endorser")
}

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	record := endorsement.Endorsement{
		Endorser:  fixtures.Carol,
		Timestamp: 1234,
		Status:    endorsement.Revoked,
	}

	d := mocks.NewMockDispatcher(ctl)
	d.EXPECT().DispatchSignature(
		gomock.Any(),
		endorsement.GetEndorsementSignature,
		&endorsement.EndorserArguments{Badge: fixtures.Badge, TokenId: 0, Endorser: fixtures.Carol},
		common.Address{},
	).Return(record, nil).Times(1)

	e := rpcendorsement.New(logger.New(fixtures.LogCategory), d)

	arg := rpcendorsement.GetArguments{
		Badge:    fixtures.Badge,
		Endorser: fixtures.Carol,
	}
	var reply endorsement.Endorsement
	err := e.Get(&arg, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, record, reply, "wrong record")
}
