// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/badged/fault"
)

// test that the platform errors land in the class an integrator would test for
func TestClasses(t *testing.T) {
	errorList := []struct {
		err        error
		exists     bool
		invalid    bool
		notFound   bool
		permission bool
		process    bool
		record     bool
	}{
		{fault.ErrDuplicateOperation, true, false, false, false, false, false},
		{fault.ErrOverlappingRegion, true, false, false, false, false, false},
		{fault.ErrMintDisabled, false, true, false, false, false, false},
		{fault.ErrEndorsementDisabled, false, true, false, false, false, false},
		{fault.ErrNoEndorsementToRevoke, false, true, false, false, false, false},
		{fault.ErrUnknownOperation, false, false, true, false, false, false},
		{fault.ErrOperationNotFound, false, false, true, false, false, false},
		{fault.ErrUnauthorised, false, false, false, true, false, false},
		{fault.ErrUnauthorisedMinter, false, false, false, true, false, false},
		{fault.ErrPaymentFailed, false, false, false, false, true, false},
		{fault.ErrReentrantCall, false, false, false, false, true, false},
		{fault.ErrWrongDatabaseVersion, false, false, false, false, false, true},
		{fault.ErrAlreadyInitialised, false, false, false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrPermission(err) != e.permission {
			t.Errorf("%d: expected 'permission' == %v for err = %v", i, e.permission, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
	}
}
